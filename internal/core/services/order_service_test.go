package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/bizsuite/erp_backend/internal/apperrors"
	"github.com/bizsuite/erp_backend/internal/core/domain"
	portsrepo "github.com/bizsuite/erp_backend/internal/core/ports/repositories"
	portssvc "github.com/bizsuite/erp_backend/internal/core/ports/services"
	"github.com/bizsuite/erp_backend/internal/core/services"
	"github.com/bizsuite/erp_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockOrderRepository is a mock type for the OrderRepositoryFacade interface
type MockOrderRepository struct {
	mock.Mock
}

// Ensure MockOrderRepository implements portsrepo.OrderRepositoryFacade
var _ portsrepo.OrderRepositoryFacade = (*MockOrderRepository)(nil)

func (m *MockOrderRepository) SaveOrderWithItems(ctx context.Context, order domain.SalesOrder) (*domain.SalesOrder, error) {
	args := m.Called(ctx, order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SalesOrder), args.Error(1)
}

func (m *MockOrderRepository) FindOrderByID(ctx context.Context, orderID int64) (*domain.SalesOrder, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SalesOrder), args.Error(1)
}

func (m *MockOrderRepository) ListOrders(ctx context.Context, limit, offset int) ([]domain.SalesOrder, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SalesOrder), args.Error(1)
}

func (m *MockOrderRepository) ListOrdersByCompany(ctx context.Context, companyID int64, limit, offset int) ([]domain.SalesOrder, error) {
	args := m.Called(ctx, companyID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SalesOrder), args.Error(1)
}

func (m *MockOrderRepository) DeleteOrder(ctx context.Context, orderID int64) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

// MockCompanyRepository is a mock type for the CompanyRepositoryFacade interface
type MockCompanyRepository struct {
	mock.Mock
}

// Ensure MockCompanyRepository implements portsrepo.CompanyRepositoryFacade
var _ portsrepo.CompanyRepositoryFacade = (*MockCompanyRepository)(nil)

func (m *MockCompanyRepository) CreateCompany(ctx context.Context, company domain.Company) (*domain.Company, error) {
	args := m.Called(ctx, company)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) FindCompanyByID(ctx context.Context, companyID int64) (*domain.Company, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) FindCompanyByGSTIN(ctx context.Context, gstin string) (*domain.Company, error) {
	args := m.Called(ctx, gstin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) ListCompanies(ctx context.Context, limit, offset int) ([]domain.Company, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) UpdateCompany(ctx context.Context, company domain.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *MockCompanyRepository) DeleteCompany(ctx context.Context, companyID int64) error {
	args := m.Called(ctx, companyID)
	return args.Error(0)
}

// MockProductRepository is a mock type for the ProductRepositoryFacade interface
type MockProductRepository struct {
	mock.Mock
}

// Ensure MockProductRepository implements portsrepo.ProductRepositoryFacade
var _ portsrepo.ProductRepositoryFacade = (*MockProductRepository)(nil)

func (m *MockProductRepository) CreateProduct(ctx context.Context, product domain.Product) (*domain.Product, error) {
	args := m.Called(ctx, product)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) FindProductByID(ctx context.Context, productID int64) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) FindProductBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	args := m.Called(ctx, sku)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) FindProductsByIDs(ctx context.Context, productIDs []int64) (map[int64]domain.Product, error) {
	args := m.Called(ctx, productIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]domain.Product), args.Error(1)
}

func (m *MockProductRepository) ListProducts(ctx context.Context, limit, offset int) ([]domain.Product, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) ListProductsByCategory(ctx context.Context, categoryID int64, limit, offset int) ([]domain.Product, error) {
	args := m.Called(ctx, categoryID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) DeleteProduct(ctx context.Context, productID int64) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

func (m *MockProductRepository) CreateCategory(ctx context.Context, category domain.Category) (*domain.Category, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockProductRepository) ListCategories(ctx context.Context, limit, offset int) ([]domain.Category, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

// --- Test Suite Setup ---

type OrderServiceTestSuite struct {
	suite.Suite
	mockOrderRepo   *MockOrderRepository
	mockCompanyRepo *MockCompanyRepository
	mockProductRepo *MockProductRepository
	service         portssvc.OrderSvcFacade
}

func (suite *OrderServiceTestSuite) SetupTest() {
	suite.mockOrderRepo = new(MockOrderRepository)
	suite.mockCompanyRepo = new(MockCompanyRepository)
	suite.mockProductRepo = new(MockProductRepository)
	suite.service = services.NewOrderService(suite.mockOrderRepo, suite.mockCompanyRepo, suite.mockProductRepo)
}

func orderRequest() dto.CreateOrderRequest {
	return dto.CreateOrderRequest{
		CompanyID: 1,
		OrderDate: "2026-04-01",
		DueDate:   "2026-04-30",
		Notes:     "First order",
		Items: []dto.OrderItemRequest{
			{ProductID: 10, Quantity: 2, UnitPrice: decimal.RequireFromString("99.50")},
			{ProductID: 11, Quantity: 1, UnitPrice: decimal.RequireFromString("10")},
		},
	}
}

// --- Test Cases ---

func (suite *OrderServiceTestSuite) TestCreateOrder_Success() {
	ctx := context.Background()
	req := orderRequest()
	company := &domain.Company{ID: 1, Name: "Acme Traders"}
	products := map[int64]domain.Product{
		10: {ID: 10, Name: "Widget"},
		11: {ID: 11, Name: "Gadget"},
	}
	dueDate := time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC)
	saved := &domain.SalesOrder{
		ID:        7,
		CompanyID: 1,
		OrderDate: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		DueDate:   &dueDate,
		Notes:     req.Notes,
		Items: []domain.SalesOrderItem{
			{ID: 70, SalesOrderID: 7, ProductID: 10, Quantity: 2, UnitPrice: decimal.RequireFromString("99.50")},
			{ID: 71, SalesOrderID: 7, ProductID: 11, Quantity: 1, UnitPrice: decimal.RequireFromString("10")},
		},
	}

	suite.mockCompanyRepo.On("FindCompanyByID", ctx, int64(1)).Return(company, nil).Once()
	suite.mockProductRepo.On("FindProductsByIDs", ctx, []int64{10, 11}).Return(products, nil).Once()
	suite.mockOrderRepo.On("SaveOrderWithItems", ctx, mock.MatchedBy(func(o domain.SalesOrder) bool {
		return o.CompanyID == 1 && len(o.Items) == 2 && o.DueDate != nil
	})).Return(saved, nil).Once()

	order, err := suite.service.CreateOrder(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(order)
	suite.Equal(int64(7), order.ID)
	// 2 * 99.50 + 1 * 10 = 209
	suite.True(order.TotalAmount().Equal(decimal.RequireFromString("209")))

	suite.mockCompanyRepo.AssertExpectations(suite.T())
	suite.mockProductRepo.AssertExpectations(suite.T())
	suite.mockOrderRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestCreateOrder_NoItems() {
	ctx := context.Background()
	req := orderRequest()
	req.Items = nil

	order, err := suite.service.CreateOrder(ctx, req)

	suite.Require().Error(err)
	suite.Nil(order)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockCompanyRepo.AssertNotCalled(suite.T(), "FindCompanyByID", mock.Anything, mock.Anything)
}

func (suite *OrderServiceTestSuite) TestCreateOrder_NonPositiveQuantity() {
	ctx := context.Background()
	req := orderRequest()
	req.Items[1].Quantity = 0

	order, err := suite.service.CreateOrder(ctx, req)

	suite.Require().Error(err)
	suite.Nil(order)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *OrderServiceTestSuite) TestCreateOrder_NegativeUnitPrice() {
	ctx := context.Background()
	req := orderRequest()
	req.Items[0].UnitPrice = decimal.RequireFromString("-1")

	order, err := suite.service.CreateOrder(ctx, req)

	suite.Require().Error(err)
	suite.Nil(order)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *OrderServiceTestSuite) TestCreateOrder_BadOrderDate() {
	ctx := context.Background()
	req := orderRequest()
	req.OrderDate = "01/04/2026"

	order, err := suite.service.CreateOrder(ctx, req)

	suite.Require().Error(err)
	suite.Nil(order)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *OrderServiceTestSuite) TestCreateOrder_CompanyMissing() {
	ctx := context.Background()
	req := orderRequest()

	suite.mockCompanyRepo.On("FindCompanyByID", ctx, int64(1)).Return(nil, apperrors.ErrNotFound).Once()

	order, err := suite.service.CreateOrder(ctx, req)

	suite.Require().Error(err)
	suite.Nil(order)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "SaveOrderWithItems", mock.Anything, mock.Anything)

	suite.mockCompanyRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestCreateOrder_ProductMissing() {
	ctx := context.Background()
	req := orderRequest()
	company := &domain.Company{ID: 1, Name: "Acme Traders"}
	// Product 11 does not exist
	products := map[int64]domain.Product{
		10: {ID: 10, Name: "Widget"},
	}

	suite.mockCompanyRepo.On("FindCompanyByID", ctx, int64(1)).Return(company, nil).Once()
	suite.mockProductRepo.On("FindProductsByIDs", ctx, []int64{10, 11}).Return(products, nil).Once()

	order, err := suite.service.CreateOrder(ctx, req)

	suite.Require().Error(err)
	suite.Nil(order)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "SaveOrderWithItems", mock.Anything, mock.Anything)

	suite.mockCompanyRepo.AssertExpectations(suite.T())
	suite.mockProductRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestCreateOrder_SaveError() {
	ctx := context.Background()
	req := orderRequest()
	company := &domain.Company{ID: 1, Name: "Acme Traders"}
	products := map[int64]domain.Product{
		10: {ID: 10, Name: "Widget"},
		11: {ID: 11, Name: "Gadget"},
	}
	expectedErr := assert.AnError

	suite.mockCompanyRepo.On("FindCompanyByID", ctx, int64(1)).Return(company, nil).Once()
	suite.mockProductRepo.On("FindProductsByIDs", ctx, []int64{10, 11}).Return(products, nil).Once()
	suite.mockOrderRepo.On("SaveOrderWithItems", ctx, mock.AnythingOfType("domain.SalesOrder")).
		Return(nil, expectedErr).Once()

	order, err := suite.service.CreateOrder(ctx, req)

	suite.Require().Error(err)
	suite.Nil(order)
	suite.ErrorIs(err, expectedErr)

	suite.mockOrderRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestGetOrderByID_NotFound() {
	ctx := context.Background()

	suite.mockOrderRepo.On("FindOrderByID", ctx, int64(404)).Return(nil, apperrors.ErrNotFound).Once()

	order, err := suite.service.GetOrderByID(ctx, int64(404))

	suite.Require().Error(err)
	suite.Nil(order)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	suite.mockOrderRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestListOrdersByCompany_Success() {
	ctx := context.Background()
	company := &domain.Company{ID: 3, Name: "Globex"}
	expected := []domain.SalesOrder{
		{ID: 1, CompanyID: 3},
		{ID: 2, CompanyID: 3},
	}

	suite.mockCompanyRepo.On("FindCompanyByID", ctx, int64(3)).Return(company, nil).Once()
	suite.mockOrderRepo.On("ListOrdersByCompany", ctx, int64(3), 100, 0).Return(expected, nil).Once()

	orders, err := suite.service.ListOrdersByCompany(ctx, int64(3), 100, 0)

	suite.Require().NoError(err)
	suite.Equal(expected, orders)

	suite.mockCompanyRepo.AssertExpectations(suite.T())
	suite.mockOrderRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestListOrdersByCompany_CompanyMissing() {
	ctx := context.Background()

	suite.mockCompanyRepo.On("FindCompanyByID", ctx, int64(9)).Return(nil, apperrors.ErrNotFound).Once()

	orders, err := suite.service.ListOrdersByCompany(ctx, int64(9), 100, 0)

	suite.Require().Error(err)
	suite.Nil(orders)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "ListOrdersByCompany", mock.Anything, mock.Anything, mock.Anything, mock.Anything)

	suite.mockCompanyRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestDeleteOrder_Success() {
	ctx := context.Background()

	suite.mockOrderRepo.On("DeleteOrder", ctx, int64(7)).Return(nil).Once()

	err := suite.service.DeleteOrder(ctx, int64(7))

	suite.Require().NoError(err)
	suite.mockOrderRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestDeleteOrder_NotFound() {
	ctx := context.Background()

	suite.mockOrderRepo.On("DeleteOrder", ctx, int64(8)).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteOrder(ctx, int64(8))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	suite.mockOrderRepo.AssertExpectations(suite.T())
}

func TestOrderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}
