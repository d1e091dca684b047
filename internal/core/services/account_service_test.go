package services_test

import (
	"context"
	"testing"

	"github.com/bizsuite/erp_backend/internal/apperrors"
	"github.com/bizsuite/erp_backend/internal/core/domain"
	portsrepo "github.com/bizsuite/erp_backend/internal/core/ports/repositories"
	portssvc "github.com/bizsuite/erp_backend/internal/core/ports/services"
	"github.com/bizsuite/erp_backend/internal/core/services"
	"github.com/bizsuite/erp_backend/internal/dto"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockAccountRepository is a mock type for the AccountRepositoryFacade interface
type MockAccountRepository struct {
	mock.Mock
}

// Ensure MockAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) CreateAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	args := m.Called(ctx, account)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []int64) (map[int64]domain.Account, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, accountType string, limit, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, accountType, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) DeleteAccount(ctx context.Context, accountID int64) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []int64) (map[int64]domain.Account, error) {
	args := m.Called(ctx, tx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdateAccountBalancesInTx(ctx context.Context, tx pgx.Tx, balanceChanges map[int64]decimal.Decimal) error {
	args := m.Called(ctx, tx, balanceChanges)
	return args.Error(0)
}

// --- Test Suite Setup ---

type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAccountRepository
	service  portssvc.AccountSvcFacade
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Name:        "Cash in Hand",
		Code:        "1001",
		AccountType: domain.Asset,
	}
	saved := &domain.Account{
		ID:          1,
		Name:        req.Name,
		Code:        req.Code,
		AccountType: req.AccountType,
		Balance:     decimal.Zero,
	}

	// Expect CreateAccount to be called with a zero opening balance
	suite.mockRepo.On("CreateAccount", ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.Name == req.Name && a.AccountType == domain.Asset && a.Balance.IsZero()
	})).Return(saved, nil).Once()

	account, err := suite.service.CreateAccount(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(account)
	suite.Equal(int64(1), account.ID)
	suite.True(account.Balance.IsZero())

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Duplicate() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Name:        "Cash in Hand",
		Code:        "1001",
		AccountType: domain.Asset,
	}

	suite.mockRepo.On("CreateAccount", ctx, mock.AnythingOfType("domain.Account")).
		Return(nil, apperrors.ErrDuplicate).Once()

	account, err := suite.service.CreateAccount(ctx, req)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrDuplicate)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestGetAccountByID_Success() {
	ctx := context.Background()
	expected := &domain.Account{
		ID:          42,
		Name:        "Sales Revenue",
		Code:        "4001",
		AccountType: domain.Revenue,
		Balance:     decimal.RequireFromString("1250.75"),
	}

	suite.mockRepo.On("FindAccountByID", ctx, int64(42)).Return(expected, nil).Once()

	account, err := suite.service.GetAccountByID(ctx, int64(42))

	suite.Require().NoError(err)
	suite.Equal(expected, account)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestGetAccountByID_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindAccountByID", ctx, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	account, err := suite.service.GetAccountByID(ctx, int64(99))

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestListAccounts_Success() {
	ctx := context.Background()
	expected := []domain.Account{
		{ID: 1, Name: "Cash", AccountType: domain.Asset},
		{ID: 2, Name: "Bank", AccountType: domain.Asset},
	}

	suite.mockRepo.On("ListAccounts", ctx, "ASSET", 10, 0).Return(expected, nil).Once()

	accounts, err := suite.service.ListAccounts(ctx, "ASSET", 10, 0)

	suite.Require().NoError(err)
	suite.Equal(expected, accounts)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestListAccounts_InvalidType() {
	ctx := context.Background()

	accounts, err := suite.service.ListAccounts(ctx, "PROFIT", 10, 0)

	suite.Require().Error(err)
	suite.Nil(accounts)
	suite.ErrorIs(err, apperrors.ErrValidation)
	// Nothing should reach the repository
	suite.mockRepo.AssertNotCalled(suite.T(), "ListAccounts", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_Success() {
	ctx := context.Background()
	existing := &domain.Account{
		ID:          7,
		Name:        "Old Name",
		Code:        "1007",
		AccountType: domain.Expense,
		Balance:     decimal.Zero,
	}
	newName := "Office Supplies"

	suite.mockRepo.On("FindAccountByID", ctx, int64(7)).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateAccount", ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.ID == 7 && a.Name == newName && a.Code == "1007"
	})).Return(nil).Once()

	account, err := suite.service.UpdateAccount(ctx, int64(7), dto.UpdateAccountRequest{Name: &newName})

	suite.Require().NoError(err)
	suite.Require().NotNil(account)
	suite.Equal(newName, account.Name)
	suite.Equal("1007", account.Code)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_NotFound() {
	ctx := context.Background()
	newName := "Whatever"

	suite.mockRepo.On("FindAccountByID", ctx, int64(8)).Return(nil, apperrors.ErrNotFound).Once()

	account, err := suite.service.UpdateAccount(ctx, int64(8), dto.UpdateAccountRequest{Name: &newName})

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_Success() {
	ctx := context.Background()

	suite.mockRepo.On("DeleteAccount", ctx, int64(3)).Return(nil).Once()

	err := suite.service.DeleteAccount(ctx, int64(3))

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_Referenced() {
	ctx := context.Background()
	repoErr := apperrors.NewConflictError("account is referenced by journal entries and cannot be deleted")

	suite.mockRepo.On("DeleteAccount", ctx, int64(3)).Return(repoErr).Once()

	err := suite.service.DeleteAccount(ctx, int64(3))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockRepo.On("DeleteAccount", ctx, int64(4)).Return(expectedErr).Once()

	err := suite.service.DeleteAccount(ctx, int64(4))

	suite.Require().Error(err)
	suite.ErrorIs(err, expectedErr)

	suite.mockRepo.AssertExpectations(suite.T())
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
