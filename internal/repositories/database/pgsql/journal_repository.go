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

type PgxJournalRepository struct {
	BaseRepository
	accountRepo portsrepo.AccountRepositoryFacade
}

// newPgxJournalRepository creates a new repository for journal entry data.
// The account repository is injected for the in-transaction balance maintenance.
func newPgxJournalRepository(pool *pgxpool.Pool, accountRepo portsrepo.AccountRepositoryFacade) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accountRepo:    accountRepo,
	}
}

var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

// SaveEntry persists the entry header and its lines and applies balance deltas
// to the referenced accounts, all within a single database transaction. A
// failure at any step rolls back every prior insert; no header row without its
// lines ever becomes visible.
func (r *PgxJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry, balanceChanges map[int64]decimal.Decimal) (*domain.JournalEntry, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	// Ignored once the transaction is committed.
	defer r.Rollback(ctx, tx)

	// 1. Insert the header and obtain its generated identifier.
	modelEntry := mapping.ToModelJournalEntry(entry)
	headerQuery := `
		INSERT INTO journal_entries (entry_date, narration)
		VALUES ($1, $2)
		RETURNING id;
	`
	if err := tx.QueryRow(ctx, headerQuery, modelEntry.EntryDate, modelEntry.Narration).Scan(&modelEntry.ID); err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert journal entry header", err)
	}

	// 2. Lock the referenced accounts. Missing accounts surface as ErrNotFound
	// before any line is written.
	accountIDs := make([]int64, 0, len(balanceChanges))
	for accountID := range balanceChanges {
		accountIDs = append(accountIDs, accountID)
	}
	if _, err := r.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, accountIDs); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("journal line references a missing account")
		}
		return nil, err
	}

	// 3. Apply the balance deltas while the locks are held.
	if err := r.accountRepo.UpdateAccountBalancesInTx(ctx, tx, balanceChanges); err != nil {
		return nil, err
	}

	// 4. Insert the lines in input order, collecting generated IDs.
	lineQuery := `
		INSERT INTO journal_entry_lines (journal_entry_id, account_id, debit, credit, narration)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
	`
	batch := &pgx.Batch{}
	for _, line := range entry.Lines {
		batch.Queue(lineQuery, modelEntry.ID, line.AccountID, line.Debit, line.Credit, line.Narration)
	}

	br := tx.SendBatch(ctx, batch)
	savedLines := make([]domain.JournalEntryLine, len(entry.Lines))
	for i, line := range entry.Lines {
		line.JournalEntryID = modelEntry.ID
		if err := br.QueryRow().Scan(&line.ID); err != nil {
			br.Close()
			return nil, apperrors.NewAppError(500, "failed to insert journal entry line", err)
		}
		savedLines[i] = line
	}
	if err := br.Close(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to finalize journal line batch", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	saved := mapping.ToDomainJournalEntry(modelEntry)
	saved.Lines = savedLines
	return &saved, nil
}

// FindEntryByID retrieves a journal entry with its lines in insertion order.
func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, entryID int64) (*domain.JournalEntry, error) {
	headerQuery := `
		SELECT id, entry_date, narration
		FROM journal_entries
		WHERE id = $1;
	`
	var modelEntry models.JournalEntry
	err := r.Pool.QueryRow(ctx, headerQuery, entryID).Scan(
		&modelEntry.ID,
		&modelEntry.EntryDate,
		&modelEntry.Narration,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find journal entry by ID", err)
	}

	lines, err := r.findLinesByEntryIDs(ctx, []int64{entryID})
	if err != nil {
		return nil, err
	}

	entry := mapping.ToDomainJournalEntry(modelEntry)
	entry.Lines = lines[entryID]
	return &entry, nil
}

// ListEntries retrieves journal entries in primary-key order with lines attached.
func (r *PgxJournalRepository) ListEntries(ctx context.Context, limit, offset int) ([]domain.JournalEntry, error) {
	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT id, entry_date, narration
		FROM journal_entries
		ORDER BY id
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query journal entries", err)
	}
	defer rows.Close()

	modelEntries := []models.JournalEntry{}
	for rows.Next() {
		var m models.JournalEntry
		if err := rows.Scan(&m.ID, &m.EntryDate, &m.Narration); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan journal entry row", err)
		}
		modelEntries = append(modelEntries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating journal entry rows", err)
	}

	entryIDs := make([]int64, len(modelEntries))
	for i, m := range modelEntries {
		entryIDs[i] = m.ID
	}
	linesByEntry, err := r.findLinesByEntryIDs(ctx, entryIDs)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.JournalEntry, len(modelEntries))
	for i, m := range modelEntries {
		entries[i] = mapping.ToDomainJournalEntry(m)
		entries[i].Lines = linesByEntry[m.ID]
	}
	return entries, nil
}

// findLinesByEntryIDs fetches all lines for the given entries, grouped by entry
// ID, in insertion order. Entries without lines get an empty slice.
func (r *PgxJournalRepository) findLinesByEntryIDs(ctx context.Context, entryIDs []int64) (map[int64][]domain.JournalEntryLine, error) {
	linesByEntry := make(map[int64][]domain.JournalEntryLine, len(entryIDs))
	for _, id := range entryIDs {
		linesByEntry[id] = []domain.JournalEntryLine{}
	}
	if len(entryIDs) == 0 {
		return linesByEntry, nil
	}

	query := `
		SELECT id, journal_entry_id, account_id, debit, credit, narration
		FROM journal_entry_lines
		WHERE journal_entry_id = ANY($1)
		ORDER BY journal_entry_id, id;
	`
	rows, err := r.Pool.Query(ctx, query, entryIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query journal entry lines", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m models.JournalEntryLine
		if err := rows.Scan(&m.ID, &m.JournalEntryID, &m.AccountID, &m.Debit, &m.Credit, &m.Narration); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan journal entry line row", err)
		}
		linesByEntry[m.JournalEntryID] = append(linesByEntry[m.JournalEntryID], mapping.ToDomainJournalEntryLine(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating journal entry line rows", err)
	}

	return linesByEntry, nil
}
