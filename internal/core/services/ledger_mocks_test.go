package services_test

import (
	"context"
	"time"

	"github.com/IamSolomonChika/FundWise-BackEnd/internal/core/domain"
	portsrepo "github.com/IamSolomonChika/FundWise-BackEnd/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockLedgerRepository is a mock type for the LedgerRepositoryFacade interface
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) GetBalance(ctx context.Context, userID string) (decimal.Decimal, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockLedgerRepository) RecomputeBalance(ctx context.Context, userID string) (decimal.Decimal, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockLedgerRepository) ApplyDelta(ctx context.Context, userID string, delta decimal.Decimal, reason domain.DeltaReason) (decimal.Decimal, error) {
	args := m.Called(ctx, userID, delta, reason)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockLedgerRepository) SaveDeposit(ctx context.Context, deposit domain.Deposit) (decimal.Decimal, error) {
	args := m.Called(ctx, deposit)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockLedgerRepository) ListDeposits(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Deposit, *string, error) {
	args := m.Called(ctx, userID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return args.Get(0).([]domain.Deposit), token, args.Error(2)
}

func (m *MockLedgerRepository) SumDeposits(ctx context.Context, userID string) (decimal.Decimal, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockLedgerRepository) SaveWithdrawal(ctx context.Context, withdrawal domain.Withdrawal, request domain.WithdrawalRequest) (decimal.Decimal, error) {
	args := m.Called(ctx, withdrawal, request)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockLedgerRepository) ApproveWithdrawalRequest(ctx context.Context, requestID string, adminID string, gatewayReference string, decidedAt time.Time) (*domain.WithdrawalRequest, error) {
	args := m.Called(ctx, requestID, adminID, gatewayReference, decidedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WithdrawalRequest), args.Error(1)
}

func (m *MockLedgerRepository) RejectWithdrawalRequest(ctx context.Context, requestID string, adminID string, decidedAt time.Time) (*domain.WithdrawalRequest, error) {
	args := m.Called(ctx, requestID, adminID, decidedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WithdrawalRequest), args.Error(1)
}

func (m *MockLedgerRepository) FindWithdrawalRequestByID(ctx context.Context, requestID string) (*domain.WithdrawalRequest, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WithdrawalRequest), args.Error(1)
}

func (m *MockLedgerRepository) ListWithdrawals(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Withdrawal, *string, error) {
	args := m.Called(ctx, userID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return args.Get(0).([]domain.Withdrawal), token, args.Error(2)
}

func (m *MockLedgerRepository) ListWithdrawalRequests(ctx context.Context, status domain.WithdrawalStatus, userID string, rng domain.DateRange, limit int, nextToken *string) ([]domain.WithdrawalRequest, *string, error) {
	args := m.Called(ctx, status, userID, rng, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return args.Get(0).([]domain.WithdrawalRequest), token, args.Error(2)
}

func (m *MockLedgerRepository) SumWithdrawals(ctx context.Context, userID string) (decimal.Decimal, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockLedgerRepository) SaveInvestment(ctx context.Context, investment domain.Investment) (decimal.Decimal, error) {
	args := m.Called(ctx, investment)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockLedgerRepository) CompleteInvestment(ctx context.Context, investment domain.Investment, profit domain.Profit) (bool, error) {
	args := m.Called(ctx, investment, profit)
	return args.Bool(0), args.Error(1)
}

func (m *MockLedgerRepository) ListMaturedRunning(ctx context.Context, asOf time.Time, limit int) ([]domain.Investment, error) {
	args := m.Called(ctx, asOf, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Investment), args.Error(1)
}

func (m *MockLedgerRepository) ListInvestments(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Investment, *string, error) {
	args := m.Called(ctx, userID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return args.Get(0).([]domain.Investment), token, args.Error(2)
}

func (m *MockLedgerRepository) FindInvestmentByID(ctx context.Context, investmentID string) (*domain.Investment, error) {
	args := m.Called(ctx, investmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Investment), args.Error(1)
}

func (m *MockLedgerRepository) SumRunningPrincipal(ctx context.Context, userID string) (decimal.Decimal, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockLedgerRepository) ListProfits(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Profit, *string, error) {
	args := m.Called(ctx, userID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return args.Get(0).([]domain.Profit), token, args.Error(2)
}

// Ensure mock implements the interface
var _ portsrepo.LedgerRepositoryFacade = (*MockLedgerRepository)(nil)
