package services

import (
	"context"

	"github.com/bizsuite/erp_backend/internal/core/domain"
	"github.com/bizsuite/erp_backend/internal/dto"
)

// ServiceContainer holds instances of all the application services.
// Handlers depend on this rather than on concrete service types.
type ServiceContainer struct {
	Auth     AuthSvcFacade
	User     UserSvcFacade
	Company  CompanySvcFacade
	Product  ProductSvcFacade
	Employee EmployeeSvcFacade
	Account  AccountSvcFacade
	Journal  JournalSvcFacade
	Order    OrderSvcFacade
	Stock    StockSvcFacade
}

// AuthSvcFacade defines registration and credential verification.
type AuthSvcFacade interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)
	Login(ctx context.Context, req dto.LoginRequest) (*domain.User, string, error)
}

// UserSvcFacade defines user management operations.
type UserSvcFacade interface {
	GetUserByID(ctx context.Context, userID int64) (*domain.User, error)
	ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error)
	UpdateUser(ctx context.Context, userID int64, req dto.UpdateUserRequest) (*domain.User, error)
	DeleteUser(ctx context.Context, userID int64) error
}

// CompanySvcFacade defines company management operations.
type CompanySvcFacade interface {
	CreateCompany(ctx context.Context, req dto.CreateCompanyRequest) (*domain.Company, error)
	GetCompanyByID(ctx context.Context, companyID int64) (*domain.Company, error)
	ListCompanies(ctx context.Context, limit, offset int) ([]domain.Company, error)
	UpdateCompany(ctx context.Context, companyID int64, req dto.UpdateCompanyRequest) (*domain.Company, error)
	DeleteCompany(ctx context.Context, companyID int64) error
}

// ProductSvcFacade defines product and category management operations.
type ProductSvcFacade interface {
	CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error)
	GetProductByID(ctx context.Context, productID int64) (*domain.Product, error)
	ListProducts(ctx context.Context, limit, offset int) ([]domain.Product, error)
	ListProductsByCategory(ctx context.Context, categoryID int64, limit, offset int) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, productID int64, req dto.UpdateProductRequest) (*domain.Product, error)
	DeleteProduct(ctx context.Context, productID int64) error

	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error)
	ListCategories(ctx context.Context, limit, offset int) ([]domain.Category, error)
}

// EmployeeSvcFacade defines employee management operations.
type EmployeeSvcFacade interface {
	CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*domain.Employee, error)
	GetEmployeeByID(ctx context.Context, employeeID int64) (*domain.Employee, error)
	ListEmployees(ctx context.Context, limit, offset int) ([]domain.Employee, error)
	UpdateEmployee(ctx context.Context, employeeID int64, req dto.UpdateEmployeeRequest) (*domain.Employee, error)
	DeleteEmployee(ctx context.Context, employeeID int64) error
}

// AccountSvcFacade defines ledger account management operations.
type AccountSvcFacade interface {
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)
	GetAccountByID(ctx context.Context, accountID int64) (*domain.Account, error)
	ListAccounts(ctx context.Context, accountType string, limit, offset int) ([]domain.Account, error)
	UpdateAccount(ctx context.Context, accountID int64, req dto.UpdateAccountRequest) (*domain.Account, error)
	DeleteAccount(ctx context.Context, accountID int64) error
}

// JournalSvcFacade defines journal entry operations.
type JournalSvcFacade interface {
	CreateEntry(ctx context.Context, req dto.CreateJournalEntryRequest) (*domain.JournalEntry, error)
	GetEntryByID(ctx context.Context, entryID int64) (*domain.JournalEntry, error)
	ListEntries(ctx context.Context, limit, offset int) ([]domain.JournalEntry, error)
}

// OrderSvcFacade defines sales order operations.
type OrderSvcFacade interface {
	CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (*domain.SalesOrder, error)
	GetOrderByID(ctx context.Context, orderID int64) (*domain.SalesOrder, error)
	ListOrders(ctx context.Context, limit, offset int) ([]domain.SalesOrder, error)
	ListOrdersByCompany(ctx context.Context, companyID int64, limit, offset int) ([]domain.SalesOrder, error)
	DeleteOrder(ctx context.Context, orderID int64) error
}

// StockSvcFacade defines warehouse and stock movement operations.
type StockSvcFacade interface {
	CreateWarehouse(ctx context.Context, req dto.CreateWarehouseRequest) (*domain.Warehouse, error)
	ListWarehouses(ctx context.Context, limit, offset int) ([]domain.Warehouse, error)

	CreateStockMovement(ctx context.Context, req dto.CreateStockMovementRequest) (*domain.StockMovement, error)
	ListStockMovements(ctx context.Context, productID int64, limit, offset int) ([]domain.StockMovement, error)
}
