package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateRange bounds a reporting query. Zero values mean unbounded.
type DateRange struct {
	From time.Time
	To   time.Time
}

// PlatformTotals is the platform-wide rollup shown on the admin dashboard.
type PlatformTotals struct {
	TotalDeposits         decimal.Decimal `json:"totalDeposits"`
	TotalWithdrawals      decimal.Decimal `json:"totalWithdrawals"`
	TotalRunningPrincipal decimal.Decimal `json:"totalRunningPrincipal"`
	TotalProfitsPaid      decimal.Decimal `json:"totalProfitsPaid"`

	// PlatformBalance is total deposits minus total non-rejected withdrawals.
	PlatformBalance decimal.Decimal `json:"platformBalance"`
}
