package models

import (
	"github.com/shopspring/decimal"
)

// AccountType mirrors domain.AccountType at the storage layer.
type AccountType string

// Account is the database row for a ledger account.
type Account struct {
	ID          int64           `db:"id"`
	Name        string          `db:"name"`
	Code        string          `db:"code"`
	AccountType AccountType     `db:"account_type"`
	Balance     decimal.Decimal `db:"balance"`
}
