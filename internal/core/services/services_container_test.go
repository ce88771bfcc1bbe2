package services_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/IamSolomonChika/FundWise-BackEnd/internal/adapters/mailer"
	"github.com/IamSolomonChika/FundWise-BackEnd/internal/core/domain"
	"github.com/IamSolomonChika/FundWise-BackEnd/internal/core/ports/gateways"
	portsrepo "github.com/IamSolomonChika/FundWise-BackEnd/internal/core/ports/repositories"
	"github.com/IamSolomonChika/FundWise-BackEnd/internal/core/services"
	"github.com/IamSolomonChika/FundWise-BackEnd/internal/platform/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockReportingRepository is a mock type for the ReportingRepository interface
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) GetPlatformTotals(ctx context.Context, rng domain.DateRange) (*domain.PlatformTotals, error) {
	args := m.Called(ctx, rng)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlatformTotals), args.Error(1)
}

func (m *MockReportingRepository) SumDepositsInRange(ctx context.Context, rng domain.DateRange) (decimal.Decimal, error) {
	args := m.Called(ctx, rng)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockReportingRepository) SumWithdrawalsInRange(ctx context.Context, rng domain.DateRange) (decimal.Decimal, error) {
	args := m.Called(ctx, rng)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockReportingRepository) SumRunningInvestmentsInRange(ctx context.Context, rng domain.DateRange) (decimal.Decimal, error) {
	args := m.Called(ctx, rng)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockReportingRepository) CountUsers(ctx context.Context, activeOnly *bool, rng domain.DateRange) (int64, error) {
	args := m.Called(ctx, activeOnly, rng)
	return args.Get(0).(int64), args.Error(1)
}

var _ portsrepo.ReportingRepository = (*MockReportingRepository)(nil)

// MockPaymentGateway is a mock type for the PaymentGateway interface
type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) Transfer(ctx context.Context, order gateways.TransferOrder) (*gateways.TransferReceipt, error) {
	args := m.Called(ctx, order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gateways.TransferReceipt), args.Error(1)
}

func (m *MockPaymentGateway) Balance(ctx context.Context, currency string) (decimal.Decimal, error) {
	args := m.Called(ctx, currency)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

var _ gateways.PaymentGateway = (*MockPaymentGateway)(nil)

// TestNewServiceContainer wires the container exactly the way main does:
// repository provider by value, adapters behind their ports.
func TestNewServiceContainer(t *testing.T) {
	cfg := &config.Config{
		JWTSecret:         "test-secret-key-that-is-long-enough",
		StorageTimeout:    5 * time.Second,
		SweepBatchSize:    100,
		MinDepositAmount:  decimal.NewFromInt(5000),
		MinWithdrawAmount: decimal.NewFromInt(1000),
	}

	repos := portsrepo.RepositoryProvider{
		UserRepo:      new(MockUserRepository),
		KYCRepo:       new(MockKYCRepository),
		LedgerRepo:    new(MockLedgerRepository),
		ReportingRepo: new(MockReportingRepository),
	}

	container := services.NewServiceContainer(cfg, repos, new(MockPaymentGateway), mailer.NewNoopMailer(slog.Default()))

	require.NotNil(t, container)
	assert.NotNil(t, container.User)
	assert.NotNil(t, container.Token)
	assert.NotNil(t, container.GoogleOAuth)
	assert.NotNil(t, container.KYC)
	assert.NotNil(t, container.Ledger)
	assert.NotNil(t, container.Deposit)
	assert.NotNil(t, container.Withdrawal)
	assert.NotNil(t, container.Investment)
	assert.NotNil(t, container.Maturity)
	assert.NotNil(t, container.Reporting)
}

// TestNoopMailerSend covers the fallback mailer main falls back to when SMTP
// is not configured.
func TestNoopMailerSend(t *testing.T) {
	m := mailer.NewNoopMailer(slog.Default())
	assert.NoError(t, m.Send(context.Background(), "user@example.com", "subject", "body"))
}
