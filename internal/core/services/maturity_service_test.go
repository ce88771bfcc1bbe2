package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/IamSolomonChika/FundWise-BackEnd/internal/core/domain"
	portssvc "github.com/IamSolomonChika/FundWise-BackEnd/internal/core/ports/services"
	"github.com/IamSolomonChika/FundWise-BackEnd/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MaturityServiceTestSuite struct {
	suite.Suite
	mockRepo *MockLedgerRepository
	service  portssvc.MaturitySvcFacade
}

func (suite *MaturityServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockLedgerRepository)
	suite.service = services.NewMaturityService(suite.mockRepo, 100, 0)
}

func maturedInvestment(userID string, principal int64, rate float64) domain.Investment {
	opened := time.Now().Add(-31 * 24 * time.Hour)
	return domain.Investment{
		InvestmentID: uuid.NewString(),
		UserID:       userID,
		Principal:    decimal.NewFromInt(principal),
		DurationDays: 30,
		InterestRate: decimal.NewFromFloat(rate),
		Status:       domain.InvestmentRunning,
		OpenedAt:     opened,
		MaturityAt:   domain.MaturityFrom(opened, 30),
	}
}

func (suite *MaturityServiceTestSuite) TestResolveMatured_PaysPrincipalPlusProfit() {
	ctx := context.Background()
	userID := uuid.NewString()

	// 10000 invested at 10% for 30 days pays out 11000 at maturity.
	investment := maturedInvestment(userID, 10000, 0.1)

	suite.mockRepo.On("ListMaturedRunning", mock.Anything, mock.AnythingOfType("time.Time"), 100).
		Return([]domain.Investment{investment}, nil).Once()
	suite.mockRepo.On("CompleteInvestment", mock.Anything, investment, mock.MatchedBy(func(p domain.Profit) bool {
		return p.InvestmentID == investment.InvestmentID &&
			p.UserID == userID &&
			p.Amount.Equal(decimal.NewFromInt(1000))
	})).Return(true, nil).Once()

	resolved, err := suite.service.ResolveMatured(ctx)

	suite.Require().NoError(err)
	suite.Equal(1, resolved)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *MaturityServiceTestSuite) TestResolveMatured_NothingDue() {
	ctx := context.Background()

	suite.mockRepo.On("ListMaturedRunning", mock.Anything, mock.AnythingOfType("time.Time"), 100).
		Return([]domain.Investment{}, nil).Once()

	resolved, err := suite.service.ResolveMatured(ctx)

	suite.Require().NoError(err)
	suite.Equal(0, resolved)
	suite.mockRepo.AssertNotCalled(suite.T(), "CompleteInvestment")
}

func (suite *MaturityServiceTestSuite) TestResolveMatured_SecondSweepIsNoop() {
	ctx := context.Background()
	investment := maturedInvestment(uuid.NewString(), 10000, 0.1)

	// Another sweep already swapped the status; nothing is paid again.
	suite.mockRepo.On("ListMaturedRunning", mock.Anything, mock.AnythingOfType("time.Time"), 100).
		Return([]domain.Investment{investment}, nil).Once()
	suite.mockRepo.On("CompleteInvestment", mock.Anything, investment, mock.AnythingOfType("domain.Profit")).
		Return(false, nil).Once()

	resolved, err := suite.service.ResolveMatured(ctx)

	suite.Require().NoError(err)
	suite.Equal(0, resolved)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *MaturityServiceTestSuite) TestResolveMatured_FailureDoesNotAbortSweep() {
	ctx := context.Background()
	failing := maturedInvestment(uuid.NewString(), 5000, 0.05)
	succeeding := maturedInvestment(uuid.NewString(), 2000, 0.2)

	suite.mockRepo.On("ListMaturedRunning", mock.Anything, mock.AnythingOfType("time.Time"), 100).
		Return([]domain.Investment{failing, succeeding}, nil).Once()
	suite.mockRepo.On("CompleteInvestment", mock.Anything, failing, mock.AnythingOfType("domain.Profit")).
		Return(false, assert.AnError).Once()
	suite.mockRepo.On("CompleteInvestment", mock.Anything, succeeding, mock.AnythingOfType("domain.Profit")).
		Return(true, nil).Once()

	resolved, err := suite.service.ResolveMatured(ctx)

	suite.Require().NoError(err)
	suite.Equal(1, resolved)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *MaturityServiceTestSuite) TestResolveMatured_ListError() {
	ctx := context.Background()

	suite.mockRepo.On("ListMaturedRunning", mock.Anything, mock.AnythingOfType("time.Time"), 100).
		Return(nil, assert.AnError).Once()

	resolved, err := suite.service.ResolveMatured(ctx)

	suite.Require().Error(err)
	suite.Equal(0, resolved)
}

func (suite *MaturityServiceTestSuite) TestResolveMatured_CancelledContextStopsEarly() {
	ctx, cancel := context.WithCancel(context.Background())
	investments := []domain.Investment{
		maturedInvestment(uuid.NewString(), 1000, 0.1),
		maturedInvestment(uuid.NewString(), 1000, 0.1),
	}

	suite.mockRepo.On("ListMaturedRunning", mock.Anything, mock.AnythingOfType("time.Time"), 100).
		Return(investments, nil).Once()
	cancel()

	resolved, err := suite.service.ResolveMatured(ctx)

	suite.Require().Error(err)
	suite.ErrorIs(err, context.Canceled)
	suite.Equal(0, resolved)
	suite.mockRepo.AssertNotCalled(suite.T(), "CompleteInvestment")
}

func TestMaturityServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MaturityServiceTestSuite))
}
