package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// UserRepository - единственная точка доступа к хранилищу юзеров. Реализация
// в памяти лежит в repository/memrepo; персистентный бекенд подключается
// здесь же, не трогая сервисы и хендлеры.
type UserRepository interface {
	CreateUser(ctx context.Context, user User) (*User, error)
	FindUserByEmail(ctx context.Context, email string) (*User, error)
	// UpdateBalance применяет дельту (со знаком) к балансу юзера одной
	// атомарной операцией. Если результат отрицательный - вернется
	// ErrNotEnoughBalance, баланс не изменится.
	UpdateBalance(ctx context.Context, email string, delta decimal.Decimal) (*User, error)
}
