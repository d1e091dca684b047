package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bizsuite/erp_backend/internal/apperrors"
	"github.com/bizsuite/erp_backend/internal/core/domain"
	portsrepo "github.com/bizsuite/erp_backend/internal/core/ports/repositories"
	portssvc "github.com/bizsuite/erp_backend/internal/core/ports/services"
	"github.com/bizsuite/erp_backend/internal/dto"
	"github.com/bizsuite/erp_backend/internal/middleware"
	"github.com/bizsuite/erp_backend/internal/utils/accounting"
)

// journalService coordinates journal entry creation: double-entry validation,
// account existence checks and the balance deltas applied alongside the entry.
type journalService struct {
	journalRepo portsrepo.JournalRepositoryFacade
	accountRepo portsrepo.AccountRepositoryFacade
}

func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade, accountRepo portsrepo.AccountRepositoryFacade) portssvc.JournalSvcFacade {
	return &journalService{journalRepo: journalRepo, accountRepo: accountRepo}
}

// CreateEntry validates and persists a journal entry with its lines. The lines
// must balance (total debits equal total credits) and every referenced account
// must exist. The entry, its lines and the account balance updates are
// committed as one unit.
func (s *journalService) CreateEntry(ctx context.Context, req dto.CreateJournalEntryRequest) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entryDate, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be a YYYY-MM-DD date", apperrors.ErrValidation)
	}

	lines := req.ToDomainLines()
	if err := accounting.ValidateEntryLines(lines); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	accountIDs := uniqueAccountIDs(lines)
	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, accountIDs)
	if err != nil {
		logger.Error("Failed to fetch accounts for journal entry", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to fetch accounts: %w", err)
	}
	accountTypes := make(map[int64]domain.AccountType, len(accounts))
	for _, id := range accountIDs {
		account, ok := accounts[id]
		if !ok {
			return nil, fmt.Errorf("%w: account %d not found", apperrors.ErrNotFound, id)
		}
		accountTypes[id] = account.AccountType
	}

	balanceChanges, err := accounting.BalanceChanges(lines, accountTypes)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	entry := domain.JournalEntry{
		EntryDate: entryDate,
		Narration: req.Narration,
		Lines:     lines,
	}

	saved, err := s.journalRepo.SaveEntry(ctx, entry, balanceChanges)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to save journal entry", slog.String("error", err.Error()))
		}
		return nil, err
	}

	logger.Info("Journal entry created",
		slog.Int64("entry_id", saved.ID),
		slog.Int("line_count", len(saved.Lines)),
		slog.String("total_debit", saved.TotalDebit().String()),
	)
	return saved, nil
}

func (s *journalService) GetEntryByID(ctx context.Context, entryID int64) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find journal entry by ID", slog.String("error", err.Error()), slog.Int64("entry_id", entryID))
		}
		return nil, err
	}
	return entry, nil
}

func (s *journalService) ListEntries(ctx context.Context, limit, offset int) ([]domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	entries, err := s.journalRepo.ListEntries(ctx, limit, offset)
	if err != nil {
		logger.Error("Failed to list journal entries", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	return entries, nil
}

func uniqueAccountIDs(lines []domain.JournalEntryLine) []int64 {
	seen := make(map[int64]struct{}, len(lines))
	ids := make([]int64, 0, len(lines))
	for _, line := range lines {
		if _, ok := seen[line.AccountID]; ok {
			continue
		}
		seen[line.AccountID] = struct{}{}
		ids = append(ids, line.AccountID)
	}
	return ids
}
