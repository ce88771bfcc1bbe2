package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/IamSolomonChika/FundWise-BackEnd/internal/apperrors"
	"github.com/IamSolomonChika/FundWise-BackEnd/internal/core/domain"
	portssvc "github.com/IamSolomonChika/FundWise-BackEnd/internal/core/ports/services"
	"github.com/IamSolomonChika/FundWise-BackEnd/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type WithdrawalServiceTestSuite struct {
	suite.Suite
	mockRepo *MockLedgerRepository
	service  portssvc.WithdrawalSvcFacade
}

func (suite *WithdrawalServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockLedgerRepository)
	suite.service = services.NewWithdrawalService(suite.mockRepo, decimal.NewFromInt(1), 0)
}

func (suite *WithdrawalServiceTestSuite) TestRequestWithdrawal_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	amount := decimal.NewFromInt(2000)
	newBalance := decimal.NewFromInt(8000)

	suite.mockRepo.On("SaveWithdrawal", ctx,
		mock.AnythingOfType("domain.Withdrawal"),
		mock.AnythingOfType("domain.WithdrawalRequest"),
	).Return(newBalance, nil).Once()

	withdrawal, balance, err := suite.service.RequestWithdrawal(ctx, userID, amount)

	suite.Require().NoError(err)
	suite.Require().NotNil(withdrawal)
	suite.NotEmpty(withdrawal.WithdrawalID)
	suite.Equal(userID, withdrawal.UserID)
	suite.Equal(domain.WithdrawalPending, withdrawal.Status)
	suite.True(amount.Equal(withdrawal.Amount))
	suite.True(newBalance.Equal(balance))

	// The approval request shares the withdrawal's identity and amount.
	savedRequest := suite.mockRepo.Calls[0].Arguments.Get(2).(domain.WithdrawalRequest)
	suite.Equal(withdrawal.WithdrawalID, savedRequest.WithdrawalID)
	suite.Equal(domain.WithdrawalPending, savedRequest.Status)
	suite.True(amount.Equal(savedRequest.Amount))

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *WithdrawalServiceTestSuite) TestRequestWithdrawal_NonPositiveAmount() {
	ctx := context.Background()

	withdrawal, _, err := suite.service.RequestWithdrawal(ctx, uuid.NewString(), decimal.NewFromInt(-5))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(withdrawal)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveWithdrawal")
}

func (suite *WithdrawalServiceTestSuite) TestRequestWithdrawal_InsufficientFunds() {
	ctx := context.Background()

	suite.mockRepo.On("SaveWithdrawal", ctx,
		mock.AnythingOfType("domain.Withdrawal"),
		mock.AnythingOfType("domain.WithdrawalRequest"),
	).Return(decimal.Zero, apperrors.ErrInsufficientFunds).Once()

	withdrawal, _, err := suite.service.RequestWithdrawal(ctx, uuid.NewString(), decimal.NewFromInt(1000000))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInsufficientFunds)
	suite.Nil(withdrawal)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *WithdrawalServiceTestSuite) TestApprove_Success() {
	ctx := context.Background()
	requestID := uuid.NewString()
	adminID := uuid.NewString()
	approved := &domain.WithdrawalRequest{
		RequestID: requestID,
		Status:    domain.WithdrawalApproved,
		DecidedBy: adminID,
	}

	suite.mockRepo.On("ApproveWithdrawalRequest", ctx, requestID, adminID, "", mock.AnythingOfType("time.Time")).
		Return(approved, nil).Once()

	request, err := suite.service.Approve(ctx, requestID, adminID)

	suite.Require().NoError(err)
	suite.Equal(domain.WithdrawalApproved, request.Status)
	suite.Equal(adminID, request.DecidedBy)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *WithdrawalServiceTestSuite) TestApprove_AlreadyDecided() {
	ctx := context.Background()
	requestID := uuid.NewString()

	suite.mockRepo.On("ApproveWithdrawalRequest", ctx, requestID, mock.Anything, "", mock.AnythingOfType("time.Time")).
		Return(nil, apperrors.ErrConflict).Once()

	request, err := suite.service.Approve(ctx, requestID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.Nil(request)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *WithdrawalServiceTestSuite) TestReject_Success() {
	ctx := context.Background()
	requestID := uuid.NewString()
	adminID := uuid.NewString()
	rejected := &domain.WithdrawalRequest{
		RequestID: requestID,
		Amount:    decimal.NewFromInt(2000),
		Status:    domain.WithdrawalRejected,
		DecidedBy: adminID,
	}

	suite.mockRepo.On("RejectWithdrawalRequest", ctx, requestID, adminID, mock.AnythingOfType("time.Time")).
		Return(rejected, nil).Once()

	request, err := suite.service.Reject(ctx, requestID, adminID)

	suite.Require().NoError(err)
	suite.Equal(domain.WithdrawalRejected, request.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *WithdrawalServiceTestSuite) TestReject_NotFound() {
	ctx := context.Background()
	requestID := uuid.NewString()

	suite.mockRepo.On("RejectWithdrawalRequest", ctx, requestID, mock.Anything, mock.AnythingOfType("time.Time")).
		Return(nil, apperrors.ErrNotFound).Once()

	request, err := suite.service.Reject(ctx, requestID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(request)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *WithdrawalServiceTestSuite) TestListWithdrawalRequests_PassesFilters() {
	ctx := context.Background()
	userID := uuid.NewString()
	rng := domain.DateRange{From: time.Now().Add(-24 * time.Hour)}
	requests := []domain.WithdrawalRequest{{RequestID: uuid.NewString(), Status: domain.WithdrawalPending}}

	suite.mockRepo.On("ListWithdrawalRequests", ctx, domain.WithdrawalPending, userID, rng, 10, (*string)(nil)).
		Return(requests, nil, nil).Once()

	got, nextToken, err := suite.service.ListWithdrawalRequests(ctx, domain.WithdrawalPending, userID, rng, 10, nil)

	suite.Require().NoError(err)
	suite.Len(got, 1)
	suite.Nil(nextToken)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestWithdrawalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WithdrawalServiceTestSuite))
}
