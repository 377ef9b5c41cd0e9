package service

import (
	"context"

	"github.com/nutech-integrasi/wallet-api/internal/domain"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type WalletService struct {
	userRepo domain.UserRepository
}

func NewWalletService(userRepo domain.UserRepository) *WalletService {
	return &WalletService{
		userRepo: userRepo,
	}
}

func (s *WalletService) GetBalance(ctx context.Context, email string) (decimal.Decimal, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "getting balance")
	}
	return user.Balance, nil
}

// TopUp увеличивает баланс юзера на amount и возвращает новый баланс.
func (s *WalletService) TopUp(ctx context.Context, email string, amount decimal.Decimal) (decimal.Decimal, error) {
	user, err := s.userRepo.UpdateBalance(ctx, email, amount)
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "topping up balance")
	}
	return user.Balance, nil
}

// Transact списывает amount с баланса юзера. Если средств не хватает -
// вернется ErrNotEnoughBalance, баланс не изменится.
func (s *WalletService) Transact(ctx context.Context, email string, amount decimal.Decimal) (decimal.Decimal, error) {
	user, err := s.userRepo.UpdateBalance(ctx, email, amount.Neg())
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "debiting balance")
	}
	return user.Balance, nil
}
