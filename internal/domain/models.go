package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	Email     string
	FirstName string
	LastName  string
	Password  string
	Balance   decimal.Decimal
}
