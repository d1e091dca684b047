package dto

import (
	"github.com/bizsuite/erp_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a ledger account.
type CreateAccountRequest struct {
	Name        string             `json:"name" binding:"required"`
	Code        string             `json:"code"`
	AccountType domain.AccountType `json:"accountType" binding:"required,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Balance is never updated directly; it only moves through journal entries.
type UpdateAccountRequest struct {
	Name *string `json:"name"`
	Code *string `json:"code"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	ID          int64              `json:"id"`
	Name        string             `json:"name"`
	Code        string             `json:"code"`
	AccountType domain.AccountType `json:"accountType"`
	Balance     decimal.Decimal    `json:"balance"`
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	Skip  int    `form:"skip,default=0"`
	Limit int    `form:"limit,default=100"`
	Type  string `form:"type"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		ID:          a.ID,
		Name:        a.Name,
		Code:        a.Code,
		AccountType: a.AccountType,
		Balance:     a.Balance,
	}
}

// ToListAccountResponse converts a slice of domain.Account to response DTOs.
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, a := range accounts {
		res[i] = ToAccountResponse(&a)
	}
	return res
}
