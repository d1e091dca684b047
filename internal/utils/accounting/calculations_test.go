package accounting

import (
	"testing"

	"github.com/bizsuite/erp_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func debitLine(accountID int64, amount string) domain.JournalEntryLine {
	return domain.JournalEntryLine{AccountID: accountID, Debit: decimal.RequireFromString(amount)}
}

func creditLine(accountID int64, amount string) domain.JournalEntryLine {
	return domain.JournalEntryLine{AccountID: accountID, Credit: decimal.RequireFromString(amount)}
}

func TestSignedLineAmount(t *testing.T) {
	testCases := []struct {
		name        string
		line        domain.JournalEntryLine
		accountType domain.AccountType
		expected    string
	}{
		{"debit increases asset", debitLine(1, "100.50"), domain.Asset, "100.50"},
		{"credit decreases asset", creditLine(1, "100.50"), domain.Asset, "-100.50"},
		{"debit increases expense", debitLine(2, "25"), domain.Expense, "25"},
		{"credit decreases expense", creditLine(2, "25"), domain.Expense, "-25"},
		{"credit increases liability", creditLine(3, "40"), domain.Liability, "40"},
		{"debit decreases liability", debitLine(3, "40"), domain.Liability, "-40"},
		{"credit increases equity", creditLine(4, "1000"), domain.Equity, "1000"},
		{"debit decreases equity", debitLine(4, "1000"), domain.Equity, "-1000"},
		{"credit increases revenue", creditLine(5, "99.99"), domain.Revenue, "99.99"},
		{"debit decreases revenue", debitLine(5, "99.99"), domain.Revenue, "-99.99"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			delta, err := SignedLineAmount(tc.line, tc.accountType)
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tc.expected).Equal(delta),
				"expected %s, got %s", tc.expected, delta.String())
		})
	}
}

func TestSignedLineAmountUnknownType(t *testing.T) {
	_, err := SignedLineAmount(debitLine(7, "10"), domain.AccountType("BOGUS"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown account type")
}

func TestValidateEntryLines(t *testing.T) {
	t.Run("balanced entry passes", func(t *testing.T) {
		lines := []domain.JournalEntryLine{
			debitLine(1, "150.25"),
			creditLine(2, "100"),
			creditLine(3, "50.25"),
		}
		assert.NoError(t, ValidateEntryLines(lines))
	})

	t.Run("empty entry rejected", func(t *testing.T) {
		err := ValidateEntryLines(nil)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "at least one line")
	})

	t.Run("negative amount rejected", func(t *testing.T) {
		lines := []domain.JournalEntryLine{
			debitLine(1, "100"),
			{AccountID: 2, Credit: decimal.RequireFromString("-100")},
		}
		err := ValidateEntryLines(lines)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "must not be negative")
	})

	t.Run("line with both sides rejected", func(t *testing.T) {
		lines := []domain.JournalEntryLine{
			{AccountID: 1, Debit: decimal.RequireFromString("50"), Credit: decimal.RequireFromString("50")},
			creditLine(2, "50"),
		}
		err := ValidateEntryLines(lines)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not both")
	})

	t.Run("line with neither side rejected", func(t *testing.T) {
		lines := []domain.JournalEntryLine{
			debitLine(1, "50"),
			{AccountID: 2},
		}
		err := ValidateEntryLines(lines)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "must carry a debit or a credit")
	})

	t.Run("unbalanced entry rejected", func(t *testing.T) {
		lines := []domain.JournalEntryLine{
			debitLine(1, "100"),
			creditLine(2, "99.99"),
		}
		err := ValidateEntryLines(lines)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unbalanced")
	})
}

func TestBalanceChanges(t *testing.T) {
	// Cash sale: debit cash (asset), credit sales (revenue).
	lines := []domain.JournalEntryLine{
		debitLine(1, "100"),
		creditLine(2, "100"),
	}
	types := map[int64]domain.AccountType{
		1: domain.Asset,
		2: domain.Revenue,
	}

	changes, err := BalanceChanges(lines, types)
	require.NoError(t, err)
	require.Len(t, changes, 2)
	assert.True(t, changes[1].Equal(decimal.RequireFromString("100")))
	assert.True(t, changes[2].Equal(decimal.RequireFromString("100")))
}

func TestBalanceChangesAggregatesPerAccount(t *testing.T) {
	// Two debits against the same asset account collapse into one delta.
	lines := []domain.JournalEntryLine{
		debitLine(1, "60"),
		debitLine(1, "40"),
		creditLine(2, "100"),
	}
	types := map[int64]domain.AccountType{
		1: domain.Asset,
		2: domain.Liability,
	}

	changes, err := BalanceChanges(lines, types)
	require.NoError(t, err)
	require.Len(t, changes, 2)
	assert.True(t, changes[1].Equal(decimal.RequireFromString("100")))
	assert.True(t, changes[2].Equal(decimal.RequireFromString("100")))
}

func TestBalanceChangesMissingAccountType(t *testing.T) {
	lines := []domain.JournalEntryLine{debitLine(9, "10")}

	_, err := BalanceChanges(lines, map[int64]domain.AccountType{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "account type not found")
}
