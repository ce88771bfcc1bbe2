package services

import (
	"context"

	"github.com/IamSolomonChika/FundWise-BackEnd/internal/core/domain"
	"github.com/IamSolomonChika/FundWise-BackEnd/internal/core/ports/gateways"
	"github.com/shopspring/decimal"
)

// ReportingService defines operations for the admin rollup surface
type ReportingService interface {
	// PlatformTotals computes platform-wide totals over a date range.
	PlatformTotals(ctx context.Context, rng domain.DateRange) (*domain.PlatformTotals, error)

	// GatewayBalance returns the payment gateway's available balance.
	GatewayBalance(ctx context.Context, currency string) (decimal.Decimal, error)

	// Transfer initiates a payout through the payment gateway.
	Transfer(ctx context.Context, order gateways.TransferOrder) (*gateways.TransferReceipt, error)
}
