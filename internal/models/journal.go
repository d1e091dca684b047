package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is the database row for a journal entry header.
type JournalEntry struct {
	ID        int64     `db:"id"`
	EntryDate time.Time `db:"entry_date"`
	Narration string    `db:"narration"`
}

// JournalEntryLine is the database row for a single debit/credit line.
type JournalEntryLine struct {
	ID             int64           `db:"id"`
	JournalEntryID int64           `db:"journal_entry_id"`
	AccountID      int64           `db:"account_id"`
	Debit          decimal.Decimal `db:"debit"`
	Credit         decimal.Decimal `db:"credit"`
	Narration      string          `db:"narration"`
}
