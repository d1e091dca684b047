package pgsql

import (
	"context"
	"errors"

	"github.com/bizsuite/erp_backend/internal/apperrors"
	"github.com/bizsuite/erp_backend/internal/core/domain"
	portsrepo "github.com/bizsuite/erp_backend/internal/core/ports/repositories"
	"github.com/bizsuite/erp_backend/internal/models"
	"github.com/bizsuite/erp_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxAccountRepository struct {
	BaseRepository
}

func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

func (r *PgxAccountRepository) CreateAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	modelAcc := mapping.ToModelAccount(account)
	query := `
		INSERT INTO accounts (name, code, account_type, balance)
		VALUES ($1, $2, $3, $4)
		RETURNING id;
	`
	err := r.Pool.QueryRow(ctx, query,
		modelAcc.Name,
		modelAcc.Code,
		modelAcc.AccountType,
		modelAcc.Balance,
	).Scan(&modelAcc.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.NewConflictError("account with code " + modelAcc.Code + " already exists")
		}
		return nil, apperrors.NewAppError(500, "failed to insert account", err)
	}

	created := mapping.ToDomainAccount(modelAcc)
	return &created, nil
}

func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	query := `
		SELECT id, name, code, account_type, balance
		FROM accounts
		WHERE id = $1;
	`
	var modelAcc models.Account
	err := r.Pool.QueryRow(ctx, query, accountID).Scan(
		&modelAcc.ID,
		&modelAcc.Name,
		&modelAcc.Code,
		&modelAcc.AccountType,
		&modelAcc.Balance,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find account by ID", err)
	}

	acc := mapping.ToDomainAccount(modelAcc)
	return &acc, nil
}

func (r *PgxAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []int64) (map[int64]domain.Account, error) {
	if len(accountIDs) == 0 {
		return map[int64]domain.Account{}, nil
	}

	query := `
		SELECT id, name, code, account_type, balance
		FROM accounts
		WHERE id = ANY($1);
	`
	rows, err := r.Pool.Query(ctx, query, accountIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query accounts by IDs", err)
	}
	defer rows.Close()

	accounts := make(map[int64]domain.Account, len(accountIDs))
	for rows.Next() {
		var m models.Account
		if err := rows.Scan(&m.ID, &m.Name, &m.Code, &m.AccountType, &m.Balance); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan account row", err)
		}
		accounts[m.ID] = mapping.ToDomainAccount(m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating account rows", err)
	}

	return accounts, nil
}

func (r *PgxAccountRepository) ListAccounts(ctx context.Context, accountType string, limit, offset int) ([]domain.Account, error) {
	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT id, name, code, account_type, balance
		FROM accounts
	`
	args := []interface{}{}
	if accountType != "" {
		query += ` WHERE account_type = $1 ORDER BY id LIMIT $2 OFFSET $3;`
		args = append(args, accountType, limit, offset)
	} else {
		query += ` ORDER BY id LIMIT $1 OFFSET $2;`
		args = append(args, limit, offset)
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query accounts", err)
	}
	defer rows.Close()

	modelAccounts := []models.Account{}
	for rows.Next() {
		var m models.Account
		if err := rows.Scan(&m.ID, &m.Name, &m.Code, &m.AccountType, &m.Balance); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan account row", err)
		}
		modelAccounts = append(modelAccounts, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating account rows", err)
	}

	return mapping.ToDomainAccountSlice(modelAccounts), nil
}

func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	modelAcc := mapping.ToModelAccount(account)
	query := `
		UPDATE accounts
		SET name = $2, code = $3
		WHERE id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, modelAcc.ID, modelAcc.Name, modelAcc.Code)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewConflictError("account with code " + modelAcc.Code + " already exists")
		}
		return apperrors.NewAppError(500, "failed to update account", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxAccountRepository) DeleteAccount(ctx context.Context, accountID int64) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM accounts WHERE id = $1;`, accountID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return apperrors.NewConflictError("account is referenced by journal entry lines")
		}
		return apperrors.NewAppError(500, "failed to delete account", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindAccountsByIDsForUpdate selects the given accounts FOR UPDATE inside tx.
// Returns ErrNotFound if any requested account is missing.
func (r *PgxAccountRepository) FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []int64) (map[int64]domain.Account, error) {
	if len(accountIDs) == 0 {
		return map[int64]domain.Account{}, nil
	}

	query := `
		SELECT id, name, code, account_type, balance
		FROM accounts
		WHERE id = ANY($1)
		FOR UPDATE;
	`
	rows, err := tx.Query(ctx, query, accountIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to lock accounts for update", err)
	}
	defer rows.Close()

	accounts := make(map[int64]domain.Account, len(accountIDs))
	for rows.Next() {
		var m models.Account
		if err := rows.Scan(&m.ID, &m.Name, &m.Code, &m.AccountType, &m.Balance); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan locked account row", err)
		}
		accounts[m.ID] = mapping.ToDomainAccount(m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating locked account rows", err)
	}

	for _, id := range accountIDs {
		if _, ok := accounts[id]; !ok {
			return nil, apperrors.ErrNotFound
		}
	}

	return accounts, nil
}

// UpdateAccountBalancesInTx applies the signed deltas to account balances inside tx.
func (r *PgxAccountRepository) UpdateAccountBalancesInTx(ctx context.Context, tx pgx.Tx, balanceChanges map[int64]decimal.Decimal) error {
	batch := &pgx.Batch{}
	query := `UPDATE accounts SET balance = balance + $2 WHERE id = $1;`
	for accountID, delta := range balanceChanges {
		batch.Queue(query, accountID, delta)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to execute balance update batch", err)
	}
	return nil
}
