package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/nutech-integrasi/wallet-api/internal/domain"
	"github.com/nutech-integrasi/wallet-api/internal/service"
)

// UserServicer интерфейс исключительно для моков.
type UserServicer interface {
	Register(ctx context.Context, args service.RegisterUserArgs) (*domain.User, error)
	Login(ctx context.Context, args service.LoginUserArgs) (*domain.User, string, error)
}

type WalletServicer interface {
	GetBalance(ctx context.Context, email string) (decimal.Decimal, error)
	TopUp(ctx context.Context, email string, amount decimal.Decimal) (decimal.Decimal, error)
	Transact(ctx context.Context, email string, amount decimal.Decimal) (decimal.Decimal, error)
}
