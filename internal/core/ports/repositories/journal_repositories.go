package repositories

import (
	"context"

	"github.com/bizsuite/erp_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JournalReader defines read operations for journal entry data.
type JournalReader interface {
	// FindEntryByID retrieves a journal entry with its lines in insertion order.
	FindEntryByID(ctx context.Context, entryID int64) (*domain.JournalEntry, error)

	// ListEntries retrieves journal entries in primary-key order, each with its
	// lines attached.
	ListEntries(ctx context.Context, limit, offset int) ([]domain.JournalEntry, error)
}

// JournalWriter defines write operations for journal entry data.
type JournalWriter interface {
	// SaveEntry persists the entry header and all its lines, and applies the
	// given balance deltas to the referenced accounts, in one database
	// transaction. Returns the entry with generated identifiers attached.
	SaveEntry(ctx context.Context, entry domain.JournalEntry, balanceChanges map[int64]decimal.Decimal) (*domain.JournalEntry, error)
}

// JournalRepositoryFacade combines all journal-related repository interfaces.
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}
