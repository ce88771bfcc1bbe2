package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/IamSolomonChika/FundWise-BackEnd/internal/apperrors"
	"github.com/IamSolomonChika/FundWise-BackEnd/internal/core/domain"
	portssvc "github.com/IamSolomonChika/FundWise-BackEnd/internal/core/ports/services"
	"github.com/IamSolomonChika/FundWise-BackEnd/internal/dto"
	"github.com/IamSolomonChika/FundWise-BackEnd/internal/handlers"
	"github.com/IamSolomonChika/FundWise-BackEnd/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) GetBalance(ctx context.Context, userID string) (decimal.Decimal, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
func (m *MockLedgerService) RecomputeBalance(ctx context.Context, userID string) (decimal.Decimal, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
func (m *MockLedgerService) Reconcile(ctx context.Context, userID string) (decimal.Decimal, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Mock DepositService ---
type MockDepositService struct {
	mock.Mock
}

func (m *MockDepositService) Deposit(ctx context.Context, userID string, amount decimal.Decimal) (*domain.Deposit, decimal.Decimal, error) {
	args := m.Called(ctx, userID, amount)
	if args.Get(0) == nil {
		return nil, args.Get(1).(decimal.Decimal), args.Error(2)
	}
	return args.Get(0).(*domain.Deposit), args.Get(1).(decimal.Decimal), args.Error(2)
}
func (m *MockDepositService) ListDeposits(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Deposit, *string, error) {
	args := m.Called(ctx, userID, limit, nextToken)
	var deposits []domain.Deposit
	if args.Get(0) != nil {
		deposits = args.Get(0).([]domain.Deposit)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return deposits, token, args.Error(2)
}
func (m *MockDepositService) TotalDeposits(ctx context.Context, userID string) (decimal.Decimal, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

var _ portssvc.DepositSvcFacade = (*MockDepositService)(nil)

// --- Mock WithdrawalService ---
type MockWithdrawalService struct {
	mock.Mock
}

func (m *MockWithdrawalService) RequestWithdrawal(ctx context.Context, userID string, amount decimal.Decimal) (*domain.Withdrawal, decimal.Decimal, error) {
	args := m.Called(ctx, userID, amount)
	if args.Get(0) == nil {
		return nil, args.Get(1).(decimal.Decimal), args.Error(2)
	}
	return args.Get(0).(*domain.Withdrawal), args.Get(1).(decimal.Decimal), args.Error(2)
}
func (m *MockWithdrawalService) Approve(ctx context.Context, requestID string, adminID string) (*domain.WithdrawalRequest, error) {
	args := m.Called(ctx, requestID, adminID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WithdrawalRequest), args.Error(1)
}
func (m *MockWithdrawalService) Reject(ctx context.Context, requestID string, adminID string) (*domain.WithdrawalRequest, error) {
	args := m.Called(ctx, requestID, adminID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WithdrawalRequest), args.Error(1)
}
func (m *MockWithdrawalService) GetWithdrawalRequest(ctx context.Context, requestID string) (*domain.WithdrawalRequest, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WithdrawalRequest), args.Error(1)
}
func (m *MockWithdrawalService) ListWithdrawals(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Withdrawal, *string, error) {
	args := m.Called(ctx, userID, limit, nextToken)
	var withdrawals []domain.Withdrawal
	if args.Get(0) != nil {
		withdrawals = args.Get(0).([]domain.Withdrawal)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return withdrawals, token, args.Error(2)
}
func (m *MockWithdrawalService) ListWithdrawalRequests(ctx context.Context, status domain.WithdrawalStatus, userID string, rng domain.DateRange, limit int, nextToken *string) ([]domain.WithdrawalRequest, *string, error) {
	args := m.Called(ctx, status, userID, rng, limit, nextToken)
	var requests []domain.WithdrawalRequest
	if args.Get(0) != nil {
		requests = args.Get(0).([]domain.WithdrawalRequest)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return requests, token, args.Error(2)
}
func (m *MockWithdrawalService) TotalWithdrawals(ctx context.Context, userID string) (decimal.Decimal, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

var _ portssvc.WithdrawalSvcFacade = (*MockWithdrawalService)(nil)

// --- Mock InvestmentService ---
type MockInvestmentService struct {
	mock.Mock
}

func (m *MockInvestmentService) OpenInvestment(ctx context.Context, userID string, principal decimal.Decimal, durationDays int, interestRate decimal.Decimal) (*domain.Investment, decimal.Decimal, error) {
	args := m.Called(ctx, userID, principal, durationDays, interestRate)
	if args.Get(0) == nil {
		return nil, args.Get(1).(decimal.Decimal), args.Error(2)
	}
	return args.Get(0).(*domain.Investment), args.Get(1).(decimal.Decimal), args.Error(2)
}
func (m *MockInvestmentService) ListInvestments(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Investment, *string, error) {
	args := m.Called(ctx, userID, limit, nextToken)
	var investments []domain.Investment
	if args.Get(0) != nil {
		investments = args.Get(0).([]domain.Investment)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return investments, token, args.Error(2)
}
func (m *MockInvestmentService) ListProfits(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Profit, *string, error) {
	args := m.Called(ctx, userID, limit, nextToken)
	var profits []domain.Profit
	if args.Get(0) != nil {
		profits = args.Get(0).([]domain.Profit)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return profits, token, args.Error(2)
}
func (m *MockInvestmentService) TotalRunningPrincipal(ctx context.Context, userID string) (decimal.Decimal, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

var _ portssvc.InvestmentSvcFacade = (*MockInvestmentService)(nil)

// --- Test Suite ---
type CashflowHandlerTestSuite struct {
	suite.Suite
	router                *gin.Engine
	mockLedgerService     *MockLedgerService
	mockDepositService    *MockDepositService
	mockWithdrawalService *MockWithdrawalService
	mockInvestmentService *MockInvestmentService
	jwtSecret             string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *CashflowHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "fundwise-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedString, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signedString
}

func (suite *CashflowHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockLedgerService = new(MockLedgerService)
	suite.mockDepositService = new(MockDepositService)
	suite.mockWithdrawalService = new(MockWithdrawalService)
	suite.mockInvestmentService = new(MockInvestmentService)

	services := &portssvc.ServiceContainer{
		Ledger:     suite.mockLedgerService,
		Deposit:    suite.mockDepositService,
		Withdrawal: suite.mockWithdrawalService,
		Investment: suite.mockInvestmentService,
	}

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterCashflowRoutes(v1, services)
}

func (suite *CashflowHandlerTestSuite) serveAuthenticated(method, url, body, userID string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *CashflowHandlerTestSuite) TestGetBalance_Success() {
	userID := uuid.NewString()
	balance := decimal.NewFromInt(16000)

	suite.mockLedgerService.On("GetBalance", mock.Anything, userID).Return(balance, nil).Once()

	w := suite.serveAuthenticated(http.MethodGet, "/api/v1/balance", "", userID)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.BalanceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(userID, resp.UserID)
	suite.True(balance.Equal(resp.Balance))
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *CashflowHandlerTestSuite) TestGetBalance_Unauthenticated() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/balance", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockLedgerService.AssertNotCalled(suite.T(), "GetBalance")
}

func (suite *CashflowHandlerTestSuite) TestDeposit_Success() {
	userID := uuid.NewString()
	amount := decimal.NewFromInt(5000)
	newBalance := decimal.NewFromInt(21000)
	deposit := &domain.Deposit{
		DepositID: uuid.NewString(),
		UserID:    userID,
		Amount:    amount,
		CreatedAt: time.Now(),
	}

	suite.mockDepositService.On("Deposit", mock.Anything, userID, mock.MatchedBy(func(a decimal.Decimal) bool {
		return a.Equal(amount)
	})).Return(deposit, newBalance, nil).Once()

	w := suite.serveAuthenticated(http.MethodPost, "/api/v1/deposits", `{"amount": "5000"}`, userID)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.DepositResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(deposit.DepositID, resp.DepositID)
	suite.Require().NotNil(resp.NewBalance)
	suite.True(newBalance.Equal(*resp.NewBalance))
	suite.mockDepositService.AssertExpectations(suite.T())
}

func (suite *CashflowHandlerTestSuite) TestDeposit_BelowMinimum() {
	userID := uuid.NewString()

	suite.mockDepositService.On("Deposit", mock.Anything, userID, mock.Anything).
		Return(nil, decimal.Zero, fmt.Errorf("amount below minimum: %w", apperrors.ErrValidation)).Once()

	w := suite.serveAuthenticated(http.MethodPost, "/api/v1/deposits", `{"amount": "0.1"}`, userID)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockDepositService.AssertExpectations(suite.T())
}

func (suite *CashflowHandlerTestSuite) TestDeposit_MalformedBody() {
	userID := uuid.NewString()

	w := suite.serveAuthenticated(http.MethodPost, "/api/v1/deposits", `{"amount": }`, userID)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockDepositService.AssertNotCalled(suite.T(), "Deposit")
}

func (suite *CashflowHandlerTestSuite) TestListDeposits_Success() {
	userID := uuid.NewString()
	nextToken := "b3BhcXVl"
	deposits := []domain.Deposit{
		{DepositID: uuid.NewString(), UserID: userID, Amount: decimal.NewFromInt(100), CreatedAt: time.Now()},
		{DepositID: uuid.NewString(), UserID: userID, Amount: decimal.NewFromInt(200), CreatedAt: time.Now().Add(-time.Hour)},
	}

	suite.mockDepositService.On("ListDeposits", mock.Anything, userID, 10, (*string)(nil)).
		Return(deposits, &nextToken, nil).Once()

	w := suite.serveAuthenticated(http.MethodGet, "/api/v1/deposits?limit=10", "", userID)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ListDepositsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Deposits, 2)
	suite.Equal(deposits[0].DepositID, resp.Deposits[0].DepositID)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal(nextToken, *resp.NextToken)
	suite.mockDepositService.AssertExpectations(suite.T())
}

func (suite *CashflowHandlerTestSuite) TestRequestWithdrawal_Success() {
	userID := uuid.NewString()
	amount := decimal.NewFromInt(2000)
	newBalance := decimal.NewFromInt(14000)
	withdrawal := &domain.Withdrawal{
		WithdrawalID: uuid.NewString(),
		UserID:       userID,
		Amount:       amount,
		Status:       domain.WithdrawalPending,
		CreatedAt:    time.Now(),
	}

	suite.mockWithdrawalService.On("RequestWithdrawal", mock.Anything, userID, mock.MatchedBy(func(a decimal.Decimal) bool {
		return a.Equal(amount)
	})).Return(withdrawal, newBalance, nil).Once()

	w := suite.serveAuthenticated(http.MethodPost, "/api/v1/withdrawals", `{"amount": "2000"}`, userID)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.WithdrawalResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(withdrawal.WithdrawalID, resp.WithdrawalID)
	suite.Equal(string(domain.WithdrawalPending), resp.Status)
	suite.Require().NotNil(resp.NewBalance)
	suite.True(newBalance.Equal(*resp.NewBalance))
	suite.mockWithdrawalService.AssertExpectations(suite.T())
}

func (suite *CashflowHandlerTestSuite) TestRequestWithdrawal_InsufficientFunds() {
	userID := uuid.NewString()

	suite.mockWithdrawalService.On("RequestWithdrawal", mock.Anything, userID, mock.Anything).
		Return(nil, decimal.Zero, fmt.Errorf("balance too low: %w", apperrors.ErrInsufficientFunds)).Once()

	w := suite.serveAuthenticated(http.MethodPost, "/api/v1/withdrawals", `{"amount": "1000000"}`, userID)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.mockWithdrawalService.AssertExpectations(suite.T())
}

func (suite *CashflowHandlerTestSuite) TestOpenInvestment_Success() {
	userID := uuid.NewString()
	newBalance := decimal.NewFromInt(6000)
	opened := time.Now()
	investment := &domain.Investment{
		InvestmentID: uuid.NewString(),
		UserID:       userID,
		Principal:    decimal.NewFromInt(10000),
		DurationDays: 30,
		InterestRate: decimal.NewFromFloat(0.1),
		Status:       domain.InvestmentRunning,
		OpenedAt:     opened,
		MaturityAt:   opened.Add(30 * 24 * time.Hour),
	}

	suite.mockInvestmentService.On("OpenInvestment", mock.Anything, userID,
		mock.MatchedBy(func(p decimal.Decimal) bool { return p.Equal(decimal.NewFromInt(10000)) }),
		30,
		mock.MatchedBy(func(r decimal.Decimal) bool { return r.Equal(decimal.NewFromFloat(0.1)) }),
	).Return(investment, newBalance, nil).Once()

	body := `{"principal": "10000", "durationDays": 30, "interestRate": "0.1"}`
	w := suite.serveAuthenticated(http.MethodPost, "/api/v1/investments", body, userID)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.InvestmentResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(investment.InvestmentID, resp.InvestmentID)
	suite.Equal(string(domain.InvestmentRunning), resp.Status)
	suite.Equal(30, resp.DurationDays)
	suite.mockInvestmentService.AssertExpectations(suite.T())
}

func (suite *CashflowHandlerTestSuite) TestListProfits_Success() {
	userID := uuid.NewString()
	profits := []domain.Profit{
		{ProfitID: uuid.NewString(), InvestmentID: uuid.NewString(), UserID: userID, Amount: decimal.NewFromInt(1000), CreatedAt: time.Now()},
	}

	suite.mockInvestmentService.On("ListProfits", mock.Anything, userID, 20, (*string)(nil)).
		Return(profits, nil, nil).Once()

	w := suite.serveAuthenticated(http.MethodGet, "/api/v1/profits", "", userID)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ListProfitsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Profits, 1)
	suite.Equal(profits[0].ProfitID, resp.Profits[0].ProfitID)
	suite.Nil(resp.NextToken)
	suite.mockInvestmentService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestCashflowHandler(t *testing.T) {
	suite.Run(t, new(CashflowHandlerTestSuite))
}
