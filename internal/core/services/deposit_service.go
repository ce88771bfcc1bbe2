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

type depositService struct {
	storageTimeouts
	ledgerRepo portsrepo.LedgerRepositoryFacade
	minAmount  decimal.Decimal
}

// NewDepositService creates a new instance of depositService.
func NewDepositService(ledgerRepo portsrepo.LedgerRepositoryFacade, minAmount decimal.Decimal, storageTimeout time.Duration) portssvc.DepositSvcFacade {
	return &depositService{
		storageTimeouts: storageTimeouts{storageTimeout: storageTimeout},
		ledgerRepo:      ledgerRepo,
		minAmount:       minAmount,
	}
}

var _ portssvc.DepositSvcFacade = (*depositService)(nil)

func (s *depositService) Deposit(ctx context.Context, userID string, amount decimal.Decimal) (*domain.Deposit, decimal.Decimal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !amount.IsPositive() {
		return nil, decimal.Zero, fmt.Errorf("deposit amount must be positive, got %s: %w", amount, apperrors.ErrValidation)
	}
	if amount.LessThan(s.minAmount) {
		return nil, decimal.Zero, fmt.Errorf("deposit amount %s below minimum %s: %w", amount, s.minAmount, apperrors.ErrValidation)
	}

	deposit := domain.Deposit{
		DepositID: uuid.NewString(),
		UserID:    userID,
		Amount:    amount,
		CreatedAt: time.Now(),
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	newBalance, err := s.ledgerRepo.SaveDeposit(ctx, deposit)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("failed to record deposit for user %s: %w", userID, err)
	}

	logger.Info("Deposit recorded",
		slog.String("deposit_id", deposit.DepositID),
		slog.String("amount", amount.String()),
	)
	return &deposit, newBalance, nil
}

func (s *depositService) ListDeposits(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Deposit, *string, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return s.ledgerRepo.ListDeposits(ctx, userID, limit, nextToken)
}

func (s *depositService) TotalDeposits(ctx context.Context, userID string) (decimal.Decimal, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return s.ledgerRepo.SumDeposits(ctx, userID)
}
