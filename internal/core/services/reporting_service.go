package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/IamSolomonChika/FundWise-BackEnd/internal/apperrors"
	"github.com/IamSolomonChika/FundWise-BackEnd/internal/core/domain"
	"github.com/IamSolomonChika/FundWise-BackEnd/internal/core/ports/gateways"
	portsrepo "github.com/IamSolomonChika/FundWise-BackEnd/internal/core/ports/repositories"
	portssvc "github.com/IamSolomonChika/FundWise-BackEnd/internal/core/ports/services"
	"github.com/IamSolomonChika/FundWise-BackEnd/internal/middleware"
	"github.com/shopspring/decimal"
)

type reportingService struct {
	storageTimeouts
	reportingRepo portsrepo.ReportingRepository
	gateway       gateways.PaymentGateway
}

// NewReportingService creates a new instance of reportingService.
func NewReportingService(reportingRepo portsrepo.ReportingRepository, gateway gateways.PaymentGateway, storageTimeout time.Duration) portssvc.ReportingService {
	return &reportingService{
		storageTimeouts: storageTimeouts{storageTimeout: storageTimeout},
		reportingRepo:   reportingRepo,
		gateway:         gateway,
	}
}

var _ portssvc.ReportingService = (*reportingService)(nil)

func (s *reportingService) PlatformTotals(ctx context.Context, rng domain.DateRange) (*domain.PlatformTotals, error) {
	if !rng.From.IsZero() && !rng.To.IsZero() && rng.To.Before(rng.From) {
		return nil, fmt.Errorf("date range end precedes start: %w", apperrors.ErrValidation)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return s.reportingRepo.GetPlatformTotals(ctx, rng)
}

func (s *reportingService) GatewayBalance(ctx context.Context, currency string) (decimal.Decimal, error) {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if len(currency) != 3 {
		return decimal.Zero, fmt.Errorf("currency must be a 3-letter code, got %q: %w", currency, apperrors.ErrValidation)
	}
	return s.gateway.Balance(ctx, currency)
}

func (s *reportingService) Transfer(ctx context.Context, order gateways.TransferOrder) (*gateways.TransferReceipt, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if order.AccountBank == "" || order.AccountNumber == "" {
		return nil, fmt.Errorf("transfer destination account is required: %w", apperrors.ErrValidation)
	}
	if !order.Amount.IsPositive() {
		return nil, fmt.Errorf("transfer amount must be positive, got %s: %w", order.Amount, apperrors.ErrValidation)
	}

	receipt, err := s.gateway.Transfer(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("gateway transfer failed: %w", err)
	}

	logger.Info("Gateway transfer initiated",
		slog.String("reference", receipt.Reference),
		slog.String("status", receipt.Status),
		slog.String("amount", order.Amount.String()),
	)
	return receipt, nil
}
