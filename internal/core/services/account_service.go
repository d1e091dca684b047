package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bizsuite/erp_backend/internal/apperrors"
	"github.com/bizsuite/erp_backend/internal/core/domain"
	portsrepo "github.com/bizsuite/erp_backend/internal/core/ports/repositories"
	portssvc "github.com/bizsuite/erp_backend/internal/core/ports/services"
	"github.com/bizsuite/erp_backend/internal/dto"
	"github.com/bizsuite/erp_backend/internal/middleware"
	"github.com/shopspring/decimal"
)

type accountService struct {
	accountRepo portsrepo.AccountRepositoryFacade
}

func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo}
}

// CreateAccount persists a new ledger account. Balance always starts at zero;
// it only moves through journal entries afterwards.
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account := domain.Account{
		Name:        req.Name,
		Code:        req.Code,
		AccountType: req.AccountType,
		Balance:     decimal.Zero,
	}

	saved, err := s.accountRepo.CreateAccount(ctx, account)
	if err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			logger.Error("Failed to create account", slog.String("error", err.Error()))
		}
		return nil, err
	}

	logger.Info("Account created", slog.Int64("account_id", saved.ID))
	return saved, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find account by ID", slog.String("error", err.Error()), slog.Int64("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

// ListAccounts retrieves accounts, optionally filtered by account type.
func (s *accountService) ListAccounts(ctx context.Context, accountType string, limit, offset int) ([]domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if accountType != "" {
		switch domain.AccountType(accountType) {
		case domain.Asset, domain.Liability, domain.Equity, domain.Revenue, domain.Expense:
		default:
			return nil, fmt.Errorf("%w: unknown account type '%s'", apperrors.ErrValidation, accountType)
		}
	}

	accounts, err := s.accountRepo.ListAccounts(ctx, accountType, limit, offset)
	if err != nil {
		logger.Error("Failed to list accounts", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// UpdateAccount applies a partial update to name and code. The account type
// and balance are immutable through this operation.
func (s *accountService) UpdateAccount(ctx context.Context, accountID int64, req dto.UpdateAccountRequest) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.Code != nil {
		account.Code = *req.Code
	}

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrDuplicate) {
			logger.Error("Failed to update account", slog.String("error", err.Error()), slog.Int64("account_id", accountID))
		}
		return nil, err
	}

	logger.Info("Account updated", slog.Int64("account_id", accountID))
	return account, nil
}

func (s *accountService) DeleteAccount(ctx context.Context, accountID int64) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := s.accountRepo.DeleteAccount(ctx, accountID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrDuplicate) {
			logger.Error("Failed to delete account", slog.String("error", err.Error()), slog.Int64("account_id", accountID))
		}
		return err
	}
	logger.Info("Account deleted", slog.Int64("account_id", accountID))
	return nil
}
