package services_test

import (
	"context"
	"testing"

	"github.com/IamSolomonChika/FundWise-BackEnd/internal/apperrors"
	portssvc "github.com/IamSolomonChika/FundWise-BackEnd/internal/core/ports/services"
	"github.com/IamSolomonChika/FundWise-BackEnd/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	mockRepo *MockLedgerRepository
	service  portssvc.LedgerSvcFacade
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockLedgerRepository)
	suite.service = services.NewLedgerService(suite.mockRepo, 0)
}

func (suite *LedgerServiceTestSuite) TestGetBalance() {
	ctx := context.Background()
	userID := uuid.NewString()
	balance := decimal.NewFromInt(16000)

	suite.mockRepo.On("GetBalance", ctx, userID).Return(balance, nil).Once()

	got, err := suite.service.GetBalance(ctx, userID)

	suite.Require().NoError(err)
	suite.True(balance.Equal(got))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestGetBalance_UnknownUser() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("GetBalance", ctx, userID).Return(decimal.Zero, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetBalance(ctx, userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *LedgerServiceTestSuite) TestReconcile_Match() {
	ctx := context.Background()
	userID := uuid.NewString()
	balance := decimal.NewFromInt(5000)

	suite.mockRepo.On("GetBalance", ctx, userID).Return(balance, nil).Once()
	suite.mockRepo.On("RecomputeBalance", ctx, userID).Return(balance, nil).Once()

	got, err := suite.service.Reconcile(ctx, userID)

	suite.Require().NoError(err)
	suite.True(balance.Equal(got))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestReconcile_Mismatch() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("GetBalance", ctx, userID).Return(decimal.NewFromInt(5000), nil).Once()
	suite.mockRepo.On("RecomputeBalance", ctx, userID).Return(decimal.NewFromInt(4000), nil).Once()

	_, err := suite.service.Reconcile(ctx, userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvariantViolation)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestReconcile_RecomputeError() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("GetBalance", ctx, userID).Return(decimal.NewFromInt(5000), nil).Once()
	suite.mockRepo.On("RecomputeBalance", ctx, userID).Return(decimal.Zero, assert.AnError).Once()

	_, err := suite.service.Reconcile(ctx, userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, assert.AnError)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
