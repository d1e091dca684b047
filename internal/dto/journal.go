package dto

import (
	"time"

	"github.com/bizsuite/erp_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JournalLineRequest is one debit/credit line of a journal entry to create.
// Exactly one of debit/credit must be positive; the service enforces this.
type JournalLineRequest struct {
	AccountID int64           `json:"accountID" binding:"required"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
	Narration string          `json:"narration"`
}

// CreateJournalEntryRequest defines the payload to create a journal entry with its lines.
type CreateJournalEntryRequest struct {
	Date      string               `json:"date" binding:"required,datetime=2006-01-02"`
	Narration string               `json:"narration"`
	Lines     []JournalLineRequest `json:"lines" binding:"required"`
}

// ToDomainLines converts the request lines to domain journal lines.
func (r *CreateJournalEntryRequest) ToDomainLines() []domain.JournalEntryLine {
	lines := make([]domain.JournalEntryLine, len(r.Lines))
	for i, l := range r.Lines {
		lines[i] = domain.JournalEntryLine{
			AccountID: l.AccountID,
			Debit:     l.Debit,
			Credit:    l.Credit,
			Narration: l.Narration,
		}
	}
	return lines
}

// JournalLineResponse defines the data returned for a journal line.
type JournalLineResponse struct {
	ID        int64           `json:"id"`
	AccountID int64           `json:"accountID"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
	Narration string          `json:"narration"`
}

// JournalEntryResponse defines the data returned for a journal entry with its lines.
type JournalEntryResponse struct {
	ID        int64                 `json:"id"`
	Date      time.Time             `json:"date"`
	Narration string                `json:"narration"`
	Lines     []JournalLineResponse `json:"lines"`
}

// ToJournalEntryResponse converts a domain.JournalEntry to its response DTO.
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	lines := make([]JournalLineResponse, len(e.Lines))
	for i, l := range e.Lines {
		lines[i] = JournalLineResponse{
			ID:        l.ID,
			AccountID: l.AccountID,
			Debit:     l.Debit,
			Credit:    l.Credit,
			Narration: l.Narration,
		}
	}
	return JournalEntryResponse{
		ID:        e.ID,
		Date:      e.EntryDate,
		Narration: e.Narration,
		Lines:     lines,
	}
}

// ToListJournalEntryResponse converts a slice of domain.JournalEntry to response DTOs.
func ToListJournalEntryResponse(entries []domain.JournalEntry) []JournalEntryResponse {
	res := make([]JournalEntryResponse, len(entries))
	for i := range entries {
		res[i] = ToJournalEntryResponse(&entries[i])
	}
	return res
}
