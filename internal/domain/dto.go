package domain

type TransactionType string

const (
	TransactionCredit      TransactionType = "credit"
	TransactionGameVoucher TransactionType = "game_voucher"
)
