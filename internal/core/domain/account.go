package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// Account represents a ledger account.
// Balance is maintained transactionally by journal entry creation: every posted
// entry locks the referenced accounts and applies the signed line amounts.
type Account struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Code        string          `json:"code"`
	AccountType AccountType     `json:"accountType"`
	Balance     decimal.Decimal `json:"balance"`
}
