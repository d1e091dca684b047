package accounting

import (
	"fmt"

	"github.com/bizsuite/erp_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SignedLineAmount converts a journal line into the signed balance delta for its
// account, following the standard convention:
// DEBIT to ASSET/EXPENSE increases the balance, CREDIT decreases it;
// DEBIT to LIABILITY/EQUITY/REVENUE decreases the balance, CREDIT increases it.
func SignedLineAmount(line domain.JournalEntryLine, accountType domain.AccountType) (decimal.Decimal, error) {
	amount := line.Debit
	isDebit := true
	if line.Debit.IsZero() {
		amount = line.Credit
		isDebit = false
	}

	switch accountType {
	case domain.Asset, domain.Expense:
		if !isDebit {
			amount = amount.Neg()
		}
	case domain.Liability, domain.Equity, domain.Revenue:
		if isDebit {
			amount = amount.Neg()
		}
	default:
		return decimal.Zero, fmt.Errorf("unknown account type '%s' for account ID %d", accountType, line.AccountID)
	}
	return amount, nil
}

// ValidateEntryLines checks the double-entry invariants for a journal entry:
// at least one line, each line carries exactly one of debit/credit (positive),
// and total debits equal total credits.
func ValidateEntryLines(lines []domain.JournalEntryLine) error {
	if len(lines) == 0 {
		return fmt.Errorf("journal entry must have at least one line")
	}

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero

	for i, line := range lines {
		if line.Debit.IsNegative() || line.Credit.IsNegative() {
			return fmt.Errorf("line %d: debit and credit amounts must not be negative", i)
		}
		hasDebit := line.Debit.IsPositive()
		hasCredit := line.Credit.IsPositive()
		if hasDebit && hasCredit {
			return fmt.Errorf("line %d: a line may carry a debit or a credit, not both", i)
		}
		if !hasDebit && !hasCredit {
			return fmt.Errorf("line %d: a line must carry a debit or a credit", i)
		}
		totalDebit = totalDebit.Add(line.Debit)
		totalCredit = totalCredit.Add(line.Credit)
	}

	if !totalDebit.Equal(totalCredit) {
		return fmt.Errorf("journal entry is unbalanced: debits %s, credits %s", totalDebit.String(), totalCredit.String())
	}

	return nil
}

// BalanceChanges aggregates the signed balance delta per account for an entry's lines.
func BalanceChanges(lines []domain.JournalEntryLine, accountTypes map[int64]domain.AccountType) (map[int64]decimal.Decimal, error) {
	changes := make(map[int64]decimal.Decimal, len(lines))
	for _, line := range lines {
		accountType, ok := accountTypes[line.AccountID]
		if !ok {
			return nil, fmt.Errorf("account type not found for account ID %d", line.AccountID)
		}
		delta, err := SignedLineAmount(line, accountType)
		if err != nil {
			return nil, err
		}
		changes[line.AccountID] = changes[line.AccountID].Add(delta)
	}
	return changes, nil
}
