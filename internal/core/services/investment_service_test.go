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

type InvestmentServiceTestSuite struct {
	suite.Suite
	mockRepo *MockLedgerRepository
	service  portssvc.InvestmentSvcFacade
}

func (suite *InvestmentServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockLedgerRepository)
	suite.service = services.NewInvestmentService(suite.mockRepo, 0)
}

func (suite *InvestmentServiceTestSuite) TestOpenInvestment_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	principal := decimal.NewFromInt(10000)
	rate := decimal.NewFromFloat(0.1)
	newBalance := decimal.NewFromInt(5000)

	suite.mockRepo.On("SaveInvestment", ctx, mock.AnythingOfType("domain.Investment")).Return(newBalance, nil).Once()

	investment, balance, err := suite.service.OpenInvestment(ctx, userID, principal, 30, rate)

	suite.Require().NoError(err)
	suite.Require().NotNil(investment)
	suite.NotEmpty(investment.InvestmentID)
	suite.Equal(domain.InvestmentRunning, investment.Status)
	suite.Equal(30, investment.DurationDays)
	suite.True(principal.Equal(investment.Principal))
	suite.True(newBalance.Equal(balance))

	// Maturity is the open instant plus the full term.
	suite.WithinDuration(investment.OpenedAt.Add(30*24*time.Hour), investment.MaturityAt, time.Millisecond)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvestmentServiceTestSuite) TestOpenInvestment_InvalidTerms() {
	ctx := context.Background()
	userID := uuid.NewString()

	cases := []struct {
		name         string
		principal    decimal.Decimal
		durationDays int
		rate         decimal.Decimal
	}{
		{"zero principal", decimal.Zero, 30, decimal.NewFromFloat(0.1)},
		{"negative principal", decimal.NewFromInt(-100), 30, decimal.NewFromFloat(0.1)},
		{"zero duration", decimal.NewFromInt(100), 0, decimal.NewFromFloat(0.1)},
		{"zero rate", decimal.NewFromInt(100), 30, decimal.Zero},
	}

	for _, tc := range cases {
		investment, _, err := suite.service.OpenInvestment(ctx, userID, tc.principal, tc.durationDays, tc.rate)
		suite.Require().Error(err, tc.name)
		suite.ErrorIs(err, apperrors.ErrValidation, tc.name)
		suite.Nil(investment, tc.name)
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveInvestment")
}

func (suite *InvestmentServiceTestSuite) TestOpenInvestment_InsufficientFunds() {
	ctx := context.Background()

	suite.mockRepo.On("SaveInvestment", ctx, mock.AnythingOfType("domain.Investment")).
		Return(decimal.Zero, apperrors.ErrInsufficientFunds).Once()

	investment, _, err := suite.service.OpenInvestment(ctx, uuid.NewString(), decimal.NewFromInt(99999), 30, decimal.NewFromFloat(0.1))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInsufficientFunds)
	suite.Nil(investment)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvestmentServiceTestSuite) TestProfitAmount() {
	investment := domain.Investment{
		Principal:    decimal.NewFromInt(10000),
		InterestRate: decimal.NewFromFloat(0.1),
	}
	suite.True(decimal.NewFromInt(1000).Equal(investment.ProfitAmount()))
}

func (suite *InvestmentServiceTestSuite) TestTotalRunningPrincipal() {
	ctx := context.Background()
	userID := uuid.NewString()
	total := decimal.NewFromInt(10000)

	suite.mockRepo.On("SumRunningPrincipal", ctx, userID).Return(total, nil).Once()

	got, err := suite.service.TotalRunningPrincipal(ctx, userID)

	suite.Require().NoError(err)
	suite.True(total.Equal(got))
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestInvestmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvestmentServiceTestSuite))
}
