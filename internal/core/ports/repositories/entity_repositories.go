package repositories

import (
	"context"

	"github.com/bizsuite/erp_backend/internal/core/domain"
)

// UserRepositoryFacade defines persistence operations for users.
type UserRepositoryFacade interface {
	CreateUser(ctx context.Context, user domain.User) (*domain.User, error)
	FindUserByID(ctx context.Context, userID int64) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error)
	UpdateUser(ctx context.Context, user domain.User) error
	DeleteUser(ctx context.Context, userID int64) error
}

// CompanyRepositoryFacade defines persistence operations for companies.
type CompanyRepositoryFacade interface {
	CreateCompany(ctx context.Context, company domain.Company) (*domain.Company, error)
	FindCompanyByID(ctx context.Context, companyID int64) (*domain.Company, error)
	FindCompanyByGSTIN(ctx context.Context, gstin string) (*domain.Company, error)
	ListCompanies(ctx context.Context, limit, offset int) ([]domain.Company, error)
	UpdateCompany(ctx context.Context, company domain.Company) error
	DeleteCompany(ctx context.Context, companyID int64) error
}

// ProductRepositoryFacade defines persistence operations for products and categories.
type ProductRepositoryFacade interface {
	CreateProduct(ctx context.Context, product domain.Product) (*domain.Product, error)
	FindProductByID(ctx context.Context, productID int64) (*domain.Product, error)
	FindProductBySKU(ctx context.Context, sku string) (*domain.Product, error)
	FindProductsByIDs(ctx context.Context, productIDs []int64) (map[int64]domain.Product, error)
	ListProducts(ctx context.Context, limit, offset int) ([]domain.Product, error)
	ListProductsByCategory(ctx context.Context, categoryID int64, limit, offset int) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, product domain.Product) error
	DeleteProduct(ctx context.Context, productID int64) error

	CreateCategory(ctx context.Context, category domain.Category) (*domain.Category, error)
	ListCategories(ctx context.Context, limit, offset int) ([]domain.Category, error)
}

// EmployeeRepositoryFacade defines persistence operations for employees.
type EmployeeRepositoryFacade interface {
	CreateEmployee(ctx context.Context, employee domain.Employee) (*domain.Employee, error)
	FindEmployeeByID(ctx context.Context, employeeID int64) (*domain.Employee, error)
	FindEmployeeByEmpCode(ctx context.Context, empCode string) (*domain.Employee, error)
	ListEmployees(ctx context.Context, limit, offset int) ([]domain.Employee, error)
	UpdateEmployee(ctx context.Context, employee domain.Employee) error
	DeleteEmployee(ctx context.Context, employeeID int64) error
}

// StockRepositoryFacade defines persistence operations for warehouses and stock movements.
type StockRepositoryFacade interface {
	CreateWarehouse(ctx context.Context, warehouse domain.Warehouse) (*domain.Warehouse, error)
	FindWarehouseByID(ctx context.Context, warehouseID int64) (*domain.Warehouse, error)
	ListWarehouses(ctx context.Context, limit, offset int) ([]domain.Warehouse, error)

	CreateStockMovement(ctx context.Context, movement domain.StockMovement) (*domain.StockMovement, error)
	// ListStockMovements lists movements newest first; productID 0 means no filter.
	ListStockMovements(ctx context.Context, productID int64, limit, offset int) ([]domain.StockMovement, error)
}
