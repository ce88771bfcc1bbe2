package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/IamSolomonChika/FundWise-BackEnd/internal/apperrors"
	"github.com/IamSolomonChika/FundWise-BackEnd/internal/core/domain"
	portsrepo "github.com/IamSolomonChika/FundWise-BackEnd/internal/core/ports/repositories"
	portssvc "github.com/IamSolomonChika/FundWise-BackEnd/internal/core/ports/services"
	"github.com/IamSolomonChika/FundWise-BackEnd/internal/middleware"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type investmentService struct {
	storageTimeouts
	ledgerRepo portsrepo.LedgerRepositoryFacade
}

// NewInvestmentService creates a new instance of investmentService.
func NewInvestmentService(ledgerRepo portsrepo.LedgerRepositoryFacade, storageTimeout time.Duration) portssvc.InvestmentSvcFacade {
	return &investmentService{
		storageTimeouts: storageTimeouts{storageTimeout: storageTimeout},
		ledgerRepo:      ledgerRepo,
	}
}

var _ portssvc.InvestmentSvcFacade = (*investmentService)(nil)

func (s *investmentService) OpenInvestment(ctx context.Context, userID string, principal decimal.Decimal, durationDays int, interestRate decimal.Decimal) (*domain.Investment, decimal.Decimal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !principal.IsPositive() {
		return nil, decimal.Zero, fmt.Errorf("principal must be positive, got %s: %w", principal, apperrors.ErrValidation)
	}
	if durationDays <= 0 {
		return nil, decimal.Zero, fmt.Errorf("duration must be positive, got %d days: %w", durationDays, apperrors.ErrValidation)
	}
	if !interestRate.IsPositive() {
		return nil, decimal.Zero, fmt.Errorf("interest rate must be positive, got %s: %w", interestRate, apperrors.ErrValidation)
	}

	now := time.Now()
	investment := domain.Investment{
		InvestmentID: uuid.NewString(),
		UserID:       userID,
		Principal:    principal,
		DurationDays: durationDays,
		InterestRate: interestRate,
		Status:       domain.InvestmentRunning,
		OpenedAt:     now,
		MaturityAt:   domain.MaturityFrom(now, durationDays),
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	newBalance, err := s.ledgerRepo.SaveInvestment(ctx, investment)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("failed to open investment for user %s: %w", userID, err)
	}

	logger.Info("Investment opened",
		slog.String("investment_id", investment.InvestmentID),
		slog.String("principal", principal.String()),
		slog.Int("duration_days", durationDays),
		slog.Time("maturity_at", investment.MaturityAt),
	)
	return &investment, newBalance, nil
}

func (s *investmentService) ListInvestments(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Investment, *string, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return s.ledgerRepo.ListInvestments(ctx, userID, limit, nextToken)
}

func (s *investmentService) ListProfits(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Profit, *string, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return s.ledgerRepo.ListProfits(ctx, userID, limit, nextToken)
}

func (s *investmentService) TotalRunningPrincipal(ctx context.Context, userID string) (decimal.Decimal, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return s.ledgerRepo.SumRunningPrincipal(ctx, userID)
}
