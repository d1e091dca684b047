package repositories

import (
	"context"

	"github.com/bizsuite/erp_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// AccountReader defines read operations for account data.
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its identifier.
	FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error)

	// FindAccountsByIDs retrieves multiple accounts keyed by ID. A missing ID
	// is simply absent from the result map.
	FindAccountsByIDs(ctx context.Context, accountIDs []int64) (map[int64]domain.Account, error)

	// ListAccounts retrieves accounts in primary-key order, optionally filtered
	// by account type when accountType is non-empty.
	ListAccounts(ctx context.Context, accountType string, limit, offset int) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data.
type AccountWriter interface {
	// CreateAccount persists a new account and returns it with its generated ID.
	CreateAccount(ctx context.Context, account domain.Account) (*domain.Account, error)

	// UpdateAccount updates an existing account's name and code.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// DeleteAccount removes an account. Accounts referenced by journal lines
	// cannot be removed and surface a conflict.
	DeleteAccount(ctx context.Context, accountID int64) error
}

// AccountTransactionSupport defines operations used inside the journal entry
// transaction to maintain balances.
type AccountTransactionSupport interface {
	// FindAccountsByIDsForUpdate selects accounts and locks them FOR UPDATE
	// within the given transaction. Missing IDs yield ErrNotFound.
	FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []int64) (map[int64]domain.Account, error)

	// UpdateAccountBalancesInTx applies signed balance deltas within the given transaction.
	UpdateAccountBalancesInTx(ctx context.Context, tx pgx.Tx, balanceChanges map[int64]decimal.Decimal) error
}

// AccountRepositoryFacade combines all account-related repository interfaces.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
	AccountTransactionSupport
}
