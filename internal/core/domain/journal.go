package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry represents a single financial event composed of multiple
// debit/credit lines. Lines are lifecycle-bound to their entry: they are
// created with it and removed with it, never shared.
type JournalEntry struct {
	ID        int64              `json:"id"`
	EntryDate time.Time          `json:"date"`
	Narration string             `json:"narration"`
	Lines     []JournalEntryLine `json:"lines"`
}

// JournalEntryLine is one side of a double entry: it carries either a debit or
// a credit (never both) against one account.
type JournalEntryLine struct {
	ID             int64           `json:"id"`
	JournalEntryID int64           `json:"journalEntryID"`
	AccountID      int64           `json:"accountID"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	Narration      string          `json:"narration"`
}

// TotalDebit sums the debit amounts across the entry's lines.
func (e *JournalEntry) TotalDebit() decimal.Decimal {
	sum := decimal.Zero
	for _, line := range e.Lines {
		sum = sum.Add(line.Debit)
	}
	return sum
}

// TotalCredit sums the credit amounts across the entry's lines.
func (e *JournalEntry) TotalCredit() decimal.Decimal {
	sum := decimal.Zero
	for _, line := range e.Lines {
		sum = sum.Add(line.Credit)
	}
	return sum
}
