package services

import (
	portsrepo "github.com/bizsuite/erp_backend/internal/core/ports/repositories"
	portssvc "github.com/bizsuite/erp_backend/internal/core/ports/services"
	"github.com/bizsuite/erp_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Auth = NewAuthService(cfg, repos.UserRepo)
	container.User = NewUserService(repos.UserRepo)
	container.Company = NewCompanyService(repos.CompanyRepo)
	container.Product = NewProductService(repos.ProductRepo)
	container.Employee = NewEmployeeService(repos.EmployeeRepo)
	container.Account = NewAccountService(repos.AccountRepo)
	container.Journal = NewJournalService(repos.JournalRepo, repos.AccountRepo)
	container.Order = NewOrderService(repos.OrderRepo, repos.CompanyRepo, repos.ProductRepo)
	container.Stock = NewStockService(repos.StockRepo, repos.ProductRepo)

	return container
}

// Compile-time checks that the implementations satisfy their facades.
var (
	_ portssvc.AuthSvcFacade     = (*authService)(nil)
	_ portssvc.UserSvcFacade     = (*userService)(nil)
	_ portssvc.CompanySvcFacade  = (*companyService)(nil)
	_ portssvc.ProductSvcFacade  = (*productService)(nil)
	_ portssvc.EmployeeSvcFacade = (*employeeService)(nil)
	_ portssvc.AccountSvcFacade  = (*accountService)(nil)
	_ portssvc.JournalSvcFacade  = (*journalService)(nil)
	_ portssvc.OrderSvcFacade    = (*orderService)(nil)
	_ portssvc.StockSvcFacade    = (*stockService)(nil)
)
