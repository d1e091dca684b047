package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	UserRepo     UserRepositoryFacade
	CompanyRepo  CompanyRepositoryFacade
	ProductRepo  ProductRepositoryFacade
	EmployeeRepo EmployeeRepositoryFacade
	AccountRepo  AccountRepositoryFacade
	JournalRepo  JournalRepositoryFacade
	OrderRepo    OrderRepositoryFacade
	StockRepo    StockRepositoryFacade
}
