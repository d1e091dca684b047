package pgsql

import (
	portsrepo "github.com/bizsuite/erp_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)
	companyRepo := newPgxCompanyRepository(dbPool)
	productRepo := newPgxProductRepository(dbPool)
	employeeRepo := newPgxEmployeeRepository(dbPool)
	journalRepo := newPgxJournalRepository(dbPool, accountRepo)
	orderRepo := newPgxOrderRepository(dbPool)
	stockRepo := newPgxStockRepository(dbPool)

	return portsrepo.RepositoryProvider{
		UserRepo:     userRepo,
		CompanyRepo:  companyRepo,
		ProductRepo:  productRepo,
		EmployeeRepo: employeeRepo,
		AccountRepo:  accountRepo,
		JournalRepo:  journalRepo,
		OrderRepo:    orderRepo,
		StockRepo:    stockRepo,
	}
}
