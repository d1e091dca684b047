package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/bizsuite/erp_backend/internal/apperrors"
	"github.com/bizsuite/erp_backend/internal/core/domain"
	portssvc "github.com/bizsuite/erp_backend/internal/core/ports/services"
	"github.com/bizsuite/erp_backend/internal/dto"
	"github.com/bizsuite/erp_backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock JournalService ---
type MockJournalService struct {
	mock.Mock
}

func (m *MockJournalService) CreateEntry(ctx context.Context, req dto.CreateJournalEntryRequest) (*domain.JournalEntry, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) GetEntryByID(ctx context.Context, entryID int64) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) ListEntries(ctx context.Context, limit, offset int) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.JournalSvcFacade = (*MockJournalService)(nil)

// --- Test Suite Setup ---

type JournalHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockJournalService *MockJournalService
	jwtSecret          string
}

// generateTestToken creates a signed JWT for test requests.
func (suite *JournalHandlerTestSuite) generateTestToken(userID int64) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "erp-backend-test",
		Subject:   strconv.FormatInt(userID, 10),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *JournalHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockJournalService = new(MockJournalService)

	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(suite.jwtSecret))
	registerJournalRoutes(v1, suite.mockJournalService)
}

func (suite *JournalHandlerTestSuite) authorizedRequest(method, url string, body []byte) *http.Request {
	var req *http.Request
	if body != nil {
		req, _ = http.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, _ = http.NewRequest(method, url, nil)
	}
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(1))
	return req
}

// --- Test Cases ---

func (suite *JournalHandlerTestSuite) TestCreateEntry_Success() {
	reqBody := dto.CreateJournalEntryRequest{
		Date:      "2026-03-15",
		Narration: "Cash sale",
		Lines: []dto.JournalLineRequest{
			{AccountID: 1, Debit: decimal.RequireFromString("500")},
			{AccountID: 2, Credit: decimal.RequireFromString("500")},
		},
	}
	saved := &domain.JournalEntry{
		ID:        10,
		EntryDate: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		Narration: "Cash sale",
		Lines: []domain.JournalEntryLine{
			{ID: 100, JournalEntryID: 10, AccountID: 1, Debit: decimal.RequireFromString("500")},
			{ID: 101, JournalEntryID: 10, AccountID: 2, Credit: decimal.RequireFromString("500")},
		},
	}

	suite.mockJournalService.On("CreateEntry",
		mock.Anything,
		mock.MatchedBy(func(r dto.CreateJournalEntryRequest) bool {
			return r.Date == reqBody.Date && len(r.Lines) == 2
		}),
	).Return(saved, nil).Once()

	body, _ := json.Marshal(reqBody)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authorizedRequest(http.MethodPost, "/api/v1/accounts/journal-entries", body))

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.JournalEntryResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(10), resp.ID)
	suite.Len(resp.Lines, 2)

	suite.mockJournalService.AssertExpectations(suite.T())
}

func (suite *JournalHandlerTestSuite) TestCreateEntry_Unbalanced() {
	reqBody := dto.CreateJournalEntryRequest{
		Date: "2026-03-15",
		Lines: []dto.JournalLineRequest{
			{AccountID: 1, Debit: decimal.RequireFromString("500")},
			{AccountID: 2, Credit: decimal.RequireFromString("400")},
		},
	}

	suite.mockJournalService.On("CreateEntry", mock.Anything, mock.AnythingOfType("dto.CreateJournalEntryRequest")).
		Return(nil, fmt.Errorf("%w: journal entry is unbalanced: debits 500, credits 400", apperrors.ErrValidation)).Once()

	body, _ := json.Marshal(reqBody)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authorizedRequest(http.MethodPost, "/api/v1/accounts/journal-entries", body))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "unbalanced")

	suite.mockJournalService.AssertExpectations(suite.T())
}

func (suite *JournalHandlerTestSuite) TestCreateEntry_MalformedJSON() {
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authorizedRequest(http.MethodPost, "/api/v1/accounts/journal-entries", []byte("{not json")))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockJournalService.AssertNotCalled(suite.T(), "CreateEntry", mock.Anything, mock.Anything)
}

func (suite *JournalHandlerTestSuite) TestCreateEntry_Unauthenticated() {
	body, _ := json.Marshal(dto.CreateJournalEntryRequest{Date: "2026-03-15"})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/accounts/journal-entries", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	// No Authorization header

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockJournalService.AssertNotCalled(suite.T(), "CreateEntry", mock.Anything, mock.Anything)
}

func (suite *JournalHandlerTestSuite) TestGetEntry_Success() {
	expected := &domain.JournalEntry{
		ID:        5,
		EntryDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Narration: "Opening balance",
	}

	suite.mockJournalService.On("GetEntryByID", mock.Anything, int64(5)).Return(expected, nil).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authorizedRequest(http.MethodGet, "/api/v1/accounts/journal-entries/5", nil))

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.JournalEntryResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(5), resp.ID)
	suite.Equal("Opening balance", resp.Narration)

	suite.mockJournalService.AssertExpectations(suite.T())
}

func (suite *JournalHandlerTestSuite) TestGetEntry_NotFound() {
	suite.mockJournalService.On("GetEntryByID", mock.Anything, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authorizedRequest(http.MethodGet, "/api/v1/accounts/journal-entries/99", nil))

	suite.Equal(http.StatusNotFound, w.Code)

	suite.mockJournalService.AssertExpectations(suite.T())
}

func (suite *JournalHandlerTestSuite) TestGetEntry_BadID() {
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authorizedRequest(http.MethodGet, "/api/v1/accounts/journal-entries/abc", nil))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockJournalService.AssertNotCalled(suite.T(), "GetEntryByID", mock.Anything, mock.Anything)
}

func (suite *JournalHandlerTestSuite) TestListEntries_Success() {
	expected := []domain.JournalEntry{
		{ID: 1, Narration: "Entry 1"},
		{ID: 2, Narration: "Entry 2"},
	}

	suite.mockJournalService.On("ListEntries", mock.Anything, 10, 5).Return(expected, nil).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authorizedRequest(http.MethodGet, "/api/v1/accounts/journal-entries?limit=10&skip=5", nil))

	suite.Equal(http.StatusOK, w.Code)

	var resp []dto.JournalEntryResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 2)

	suite.mockJournalService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestJournalHandler(t *testing.T) {
	suite.Run(t, new(JournalHandlerTestSuite))
}
