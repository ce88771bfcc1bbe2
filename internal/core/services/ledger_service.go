package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/IamSolomonChika/FundWise-BackEnd/internal/apperrors"
	portsrepo "github.com/IamSolomonChika/FundWise-BackEnd/internal/core/ports/repositories"
	portssvc "github.com/IamSolomonChika/FundWise-BackEnd/internal/core/ports/services"
	"github.com/IamSolomonChika/FundWise-BackEnd/internal/middleware"
	"github.com/shopspring/decimal"
)

type ledgerService struct {
	storageTimeouts
	ledgerRepo portsrepo.LedgerRepositoryFacade
}

// NewLedgerService creates a new instance of ledgerService.
func NewLedgerService(ledgerRepo portsrepo.LedgerRepositoryFacade, storageTimeout time.Duration) portssvc.LedgerSvcFacade {
	return &ledgerService{
		storageTimeouts: storageTimeouts{storageTimeout: storageTimeout},
		ledgerRepo:      ledgerRepo,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func (s *ledgerService) GetBalance(ctx context.Context, userID string) (decimal.Decimal, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	balance, err := s.ledgerRepo.GetBalance(ctx, userID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to get balance for user %s: %w", userID, err)
	}
	return balance, nil
}

func (s *ledgerService) RecomputeBalance(ctx context.Context, userID string) (decimal.Decimal, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	derived, err := s.ledgerRepo.RecomputeBalance(ctx, userID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to recompute balance for user %s: %w", userID, err)
	}
	return derived, nil
}

func (s *ledgerService) Reconcile(ctx context.Context, userID string) (decimal.Decimal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	stored, err := s.GetBalance(ctx, userID)
	if err != nil {
		return decimal.Zero, err
	}
	derived, err := s.RecomputeBalance(ctx, userID)
	if err != nil {
		return decimal.Zero, err
	}

	if !stored.Equal(derived) {
		// Surfaced for manual reconciliation; never auto-corrected.
		logger.Error("Stored balance diverged from transaction history",
			slog.String("user_id", userID),
			slog.String("stored", stored.String()),
			slog.String("derived", derived.String()),
		)
		return stored, fmt.Errorf("stored %s, derived %s for user %s: %w", stored, derived, userID, apperrors.ErrInvariantViolation)
	}

	return stored, nil
}
