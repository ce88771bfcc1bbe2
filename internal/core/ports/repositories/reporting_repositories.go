package repositories

import (
	"context"

	"github.com/IamSolomonChika/FundWise-BackEnd/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingRepository defines operations for retrieving platform rollup data
type ReportingRepository interface {
	// GetPlatformTotals computes platform-wide deposit, withdrawal,
	// running-investment and profit totals over a date range.
	GetPlatformTotals(ctx context.Context, rng domain.DateRange) (*domain.PlatformTotals, error)

	// SumDepositsInRange computes total deposits across all users in a range.
	SumDepositsInRange(ctx context.Context, rng domain.DateRange) (decimal.Decimal, error)

	// SumWithdrawalsInRange computes total non-rejected withdrawals across
	// all users in a range.
	SumWithdrawalsInRange(ctx context.Context, rng domain.DateRange) (decimal.Decimal, error)

	// SumRunningInvestmentsInRange computes total running principal opened in
	// a range.
	SumRunningInvestmentsInRange(ctx context.Context, rng domain.DateRange) (decimal.Decimal, error)

	// CountUsers counts users, optionally only active ones, within a range.
	CountUsers(ctx context.Context, activeOnly *bool, rng domain.DateRange) (int64, error)
}
