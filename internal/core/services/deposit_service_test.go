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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type DepositServiceTestSuite struct {
	suite.Suite
	mockRepo *MockLedgerRepository
	service  portssvc.DepositSvcFacade
}

func (suite *DepositServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockLedgerRepository)
	suite.service = services.NewDepositService(suite.mockRepo, decimal.NewFromInt(1), 0)
}

func (suite *DepositServiceTestSuite) TestDeposit_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	amount := decimal.NewFromInt(5000)
	newBalance := decimal.NewFromInt(15000)

	suite.mockRepo.On("SaveDeposit", ctx, mock.AnythingOfType("domain.Deposit")).Return(newBalance, nil).Once()

	deposit, balance, err := suite.service.Deposit(ctx, userID, amount)

	suite.Require().NoError(err)
	suite.Require().NotNil(deposit)
	suite.NotEmpty(deposit.DepositID)
	suite.Equal(userID, deposit.UserID)
	suite.True(amount.Equal(deposit.Amount))
	suite.WithinDuration(time.Now(), deposit.CreatedAt, time.Second)
	suite.True(newBalance.Equal(balance))

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *DepositServiceTestSuite) TestDeposit_NonPositiveAmount() {
	ctx := context.Background()

	deposit, _, err := suite.service.Deposit(ctx, uuid.NewString(), decimal.Zero)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(deposit)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveDeposit")
}

func (suite *DepositServiceTestSuite) TestDeposit_BelowMinimum() {
	ctx := context.Background()

	deposit, _, err := suite.service.Deposit(ctx, uuid.NewString(), decimal.NewFromFloat(0.5))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(deposit)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveDeposit")
}

func (suite *DepositServiceTestSuite) TestDeposit_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockRepo.On("SaveDeposit", ctx, mock.AnythingOfType("domain.Deposit")).Return(decimal.Zero, expectedErr).Once()

	deposit, _, err := suite.service.Deposit(ctx, uuid.NewString(), decimal.NewFromInt(100))

	suite.Require().Error(err)
	suite.ErrorIs(err, expectedErr)
	suite.Nil(deposit)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *DepositServiceTestSuite) TestListDeposits_PassesThrough() {
	ctx := context.Background()
	userID := uuid.NewString()
	token := "next"
	deposits := []domain.Deposit{
		{DepositID: uuid.NewString(), UserID: userID, Amount: decimal.NewFromInt(100), CreatedAt: time.Now()},
	}

	suite.mockRepo.On("ListDeposits", ctx, userID, 20, (*string)(nil)).Return(deposits, &token, nil).Once()

	got, nextToken, err := suite.service.ListDeposits(ctx, userID, 20, nil)

	suite.Require().NoError(err)
	suite.Len(got, 1)
	suite.Require().NotNil(nextToken)
	suite.Equal(token, *nextToken)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *DepositServiceTestSuite) TestTotalDeposits() {
	ctx := context.Background()
	userID := uuid.NewString()
	total := decimal.NewFromInt(42000)

	suite.mockRepo.On("SumDeposits", ctx, userID).Return(total, nil).Once()

	got, err := suite.service.TotalDeposits(ctx, userID)

	suite.Require().NoError(err)
	suite.True(total.Equal(got))
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestDepositServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DepositServiceTestSuite))
}
