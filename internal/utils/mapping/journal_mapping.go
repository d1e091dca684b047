package mapping

import (
	"github.com/bizsuite/erp_backend/internal/core/domain"
	"github.com/bizsuite/erp_backend/internal/models"
)

// ToModelJournalEntry converts a domain.JournalEntry header to its database model.
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		ID:        d.ID,
		EntryDate: d.EntryDate,
		Narration: d.Narration,
	}
}

// ToDomainJournalEntry converts a models.JournalEntry header; lines are attached separately.
func ToDomainJournalEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		ID:        m.ID,
		EntryDate: m.EntryDate,
		Narration: m.Narration,
	}
}

// ToDomainJournalEntryLine converts a single line model.
func ToDomainJournalEntryLine(m models.JournalEntryLine) domain.JournalEntryLine {
	return domain.JournalEntryLine{
		ID:             m.ID,
		JournalEntryID: m.JournalEntryID,
		AccountID:      m.AccountID,
		Debit:          m.Debit,
		Credit:         m.Credit,
		Narration:      m.Narration,
	}
}

// ToDomainJournalEntryLineSlice converts a slice of line models.
func ToDomainJournalEntryLineSlice(ms []models.JournalEntryLine) []domain.JournalEntryLine {
	ds := make([]domain.JournalEntryLine, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainJournalEntryLine(m)
	}
	return ds
}
