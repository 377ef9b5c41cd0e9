package memrepo

import (
	"context"
	"sync"
	"time"

	"github.com/nutech-integrasi/wallet-api/internal/domain"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// UserRepository хранит юзеров в памяти процесса. Список упорядочен в
// порядке создания; все мутации выполняются под общим мьютексом, поэтому
// UpdateBalance является атомарной операцией для конкурентных запросов.
type UserRepository struct {
	mu    sync.RWMutex
	users []domain.User
}

var _ domain.UserRepository = (*UserRepository)(nil)

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) CreateUser(_ context.Context, user domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(user.Email) >= 0 {
		return nil, errors.Wrapf(domain.ErrDuplicateKey, "[repository/create user %s]", user.Email)
	}

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.Balance.IsZero() {
		user.Balance = decimal.Zero
	}
	r.users = append(r.users, user)

	created := user
	return &created, nil
}

func (r *UserRepository) FindUserByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(email)
	if i < 0 {
		return nil, errors.Wrapf(domain.ErrRecordNotFound, "[repository/find user %s]", email)
	}
	found := r.users[i]
	return &found, nil
}

func (r *UserRepository) UpdateBalance(
	_ context.Context,
	email string,
	delta decimal.Decimal,
) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(email)
	if i < 0 {
		return nil, errors.Wrapf(domain.ErrRecordNotFound, "[repository/update balance %s]", email)
	}

	newBalance := r.users[i].Balance.Add(delta)
	if newBalance.IsNegative() {
		return nil, errors.Wrapf(domain.ErrNotEnoughBalance, "[repository/update balance %s]", email)
	}

	r.users[i].Balance = newBalance
	r.users[i].UpdatedAt = time.Now()

	updated := r.users[i]
	return &updated, nil
}

// indexOf линейный поиск по email. Вызывающий обязан держать мьютекс.
func (r *UserRepository) indexOf(email string) int {
	for i := range r.users {
		if r.users[i].Email == email {
			return i
		}
	}
	return -1
}
