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

// MockJournalRepository is a mock type for the JournalRepositoryFacade interface
type MockJournalRepository struct {
	mock.Mock
}

// Ensure MockJournalRepository implements portsrepo.JournalRepositoryFacade
var _ portsrepo.JournalRepositoryFacade = (*MockJournalRepository)(nil)

func (m *MockJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry, balanceChanges map[int64]decimal.Decimal) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entry, balanceChanges)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) FindEntryByID(ctx context.Context, entryID int64) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) ListEntries(ctx context.Context, limit, offset int) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

// --- Test Suite Setup ---

type JournalServiceTestSuite struct {
	suite.Suite
	mockJournalRepo *MockJournalRepository
	mockAccountRepo *MockAccountRepository
	service         portssvc.JournalSvcFacade
}

func (suite *JournalServiceTestSuite) SetupTest() {
	suite.mockJournalRepo = new(MockJournalRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewJournalService(suite.mockJournalRepo, suite.mockAccountRepo)
}

func balancedEntryRequest() dto.CreateJournalEntryRequest {
	// Cash sale: debit cash (asset 1), credit sales (revenue 2).
	return dto.CreateJournalEntryRequest{
		Date:      "2026-03-15",
		Narration: "Cash sale",
		Lines: []dto.JournalLineRequest{
			{AccountID: 1, Debit: decimal.RequireFromString("500")},
			{AccountID: 2, Credit: decimal.RequireFromString("500")},
		},
	}
}

// --- Test Cases ---

func (suite *JournalServiceTestSuite) TestCreateEntry_Success() {
	ctx := context.Background()
	req := balancedEntryRequest()
	accounts := map[int64]domain.Account{
		1: {ID: 1, Name: "Cash", AccountType: domain.Asset},
		2: {ID: 2, Name: "Sales", AccountType: domain.Revenue},
	}
	saved := &domain.JournalEntry{
		ID:        10,
		EntryDate: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		Narration: req.Narration,
		Lines: []domain.JournalEntryLine{
			{ID: 100, JournalEntryID: 10, AccountID: 1, Debit: decimal.RequireFromString("500")},
			{ID: 101, JournalEntryID: 10, AccountID: 2, Credit: decimal.RequireFromString("500")},
		},
	}

	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, []int64{1, 2}).Return(accounts, nil).Once()
	// The balance deltas must reflect the account types: both sides increase here.
	suite.mockJournalRepo.On("SaveEntry", ctx, mock.AnythingOfType("domain.JournalEntry"), mock.MatchedBy(func(changes map[int64]decimal.Decimal) bool {
		return len(changes) == 2 &&
			changes[1].Equal(decimal.RequireFromString("500")) &&
			changes[2].Equal(decimal.RequireFromString("500"))
	})).Return(saved, nil).Once()

	entry, err := suite.service.CreateEntry(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.Equal(int64(10), entry.ID)
	suite.Len(entry.Lines, 2)
	suite.True(entry.TotalDebit().Equal(entry.TotalCredit()))

	suite.mockAccountRepo.AssertExpectations(suite.T())
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestCreateEntry_BadDate() {
	ctx := context.Background()
	req := balancedEntryRequest()
	req.Date = "15-03-2026"

	entry, err := suite.service.CreateEntry(ctx, req)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestCreateEntry_NoLines() {
	ctx := context.Background()
	req := dto.CreateJournalEntryRequest{Date: "2026-03-15"}

	entry, err := suite.service.CreateEntry(ctx, req)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *JournalServiceTestSuite) TestCreateEntry_Unbalanced() {
	ctx := context.Background()
	req := balancedEntryRequest()
	req.Lines[1].Credit = decimal.RequireFromString("499.99")

	entry, err := suite.service.CreateEntry(ctx, req)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "FindAccountsByIDs", mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestCreateEntry_LineWithBothSides() {
	ctx := context.Background()
	req := balancedEntryRequest()
	req.Lines[0].Credit = decimal.RequireFromString("500")
	req.Lines[0].Debit = decimal.RequireFromString("500")

	entry, err := suite.service.CreateEntry(ctx, req)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *JournalServiceTestSuite) TestCreateEntry_AccountMissing() {
	ctx := context.Background()
	req := balancedEntryRequest()
	// Only account 1 exists
	accounts := map[int64]domain.Account{
		1: {ID: 1, Name: "Cash", AccountType: domain.Asset},
	}

	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, []int64{1, 2}).Return(accounts, nil).Once()

	entry, err := suite.service.CreateEntry(ctx, req)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything, mock.Anything)

	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestCreateEntry_SaveError() {
	ctx := context.Background()
	req := balancedEntryRequest()
	accounts := map[int64]domain.Account{
		1: {ID: 1, Name: "Cash", AccountType: domain.Asset},
		2: {ID: 2, Name: "Sales", AccountType: domain.Revenue},
	}
	expectedErr := assert.AnError

	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, []int64{1, 2}).Return(accounts, nil).Once()
	suite.mockJournalRepo.On("SaveEntry", ctx, mock.AnythingOfType("domain.JournalEntry"), mock.Anything).
		Return(nil, expectedErr).Once()

	entry, err := suite.service.CreateEntry(ctx, req)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, expectedErr)

	suite.mockAccountRepo.AssertExpectations(suite.T())
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestGetEntryByID_Success() {
	ctx := context.Background()
	expected := &domain.JournalEntry{
		ID:        5,
		EntryDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Narration: "Opening balance",
	}

	suite.mockJournalRepo.On("FindEntryByID", ctx, int64(5)).Return(expected, nil).Once()

	entry, err := suite.service.GetEntryByID(ctx, int64(5))

	suite.Require().NoError(err)
	suite.Equal(expected, entry)

	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestGetEntryByID_NotFound() {
	ctx := context.Background()

	suite.mockJournalRepo.On("FindEntryByID", ctx, int64(404)).Return(nil, apperrors.ErrNotFound).Once()

	entry, err := suite.service.GetEntryByID(ctx, int64(404))

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestListEntries_Success() {
	ctx := context.Background()
	expected := []domain.JournalEntry{
		{ID: 1, Narration: "Entry 1"},
		{ID: 2, Narration: "Entry 2"},
	}

	suite.mockJournalRepo.On("ListEntries", ctx, 100, 0).Return(expected, nil).Once()

	entries, err := suite.service.ListEntries(ctx, 100, 0)

	suite.Require().NoError(err)
	suite.Equal(expected, entries)

	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func TestJournalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JournalServiceTestSuite))
}
