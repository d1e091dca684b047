package mapping

import (
	"github.com/bizsuite/erp_backend/internal/core/domain"
	"github.com/bizsuite/erp_backend/internal/models"
)

// ToModelAccount converts a domain.Account to its database model.
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		ID:          d.ID,
		Name:        d.Name,
		Code:        d.Code,
		AccountType: models.AccountType(d.AccountType),
		Balance:     d.Balance,
	}
}

// ToDomainAccount converts a models.Account to its domain representation.
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		ID:          m.ID,
		Name:        m.Name,
		Code:        m.Code,
		AccountType: domain.AccountType(m.AccountType),
		Balance:     m.Balance,
	}
}

// ToDomainAccountSlice converts a slice of account models.
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}
