package dto

import (
	"time"

	"github.com/IamSolomonChika/FundWise-BackEnd/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportRangeParams defines the optional date range for admin rollups.
type ReportRangeParams struct {
	From *time.Time `form:"from" time_format:"2006-01-02"`
	To   *time.Time `form:"to" time_format:"2006-01-02"`
}

// DateRange converts the params into a domain.DateRange.
func (p ReportRangeParams) DateRange() domain.DateRange {
	var rng domain.DateRange
	if p.From != nil {
		rng.From = *p.From
	}
	if p.To != nil {
		rng.To = *p.To
	}
	return rng
}

// ListWithdrawalRequestsParams filters the admin withdrawal request listing.
type ListWithdrawalRequestsParams struct {
	Status    string     `form:"status" binding:"omitempty,oneof=PENDING APPROVED REJECTED"`
	UserID    string     `form:"userID"`
	From      *time.Time `form:"from" time_format:"2006-01-02"`
	To        *time.Time `form:"to" time_format:"2006-01-02"`
	Limit     int        `form:"limit,default=20"`
	NextToken *string    `form:"nextToken"`
}

// PlatformTotalsResponse is the admin dashboard rollup.
type PlatformTotalsResponse struct {
	TotalDeposits         decimal.Decimal `json:"totalDeposits"`
	TotalWithdrawals      decimal.Decimal `json:"totalWithdrawals"`
	TotalRunningPrincipal decimal.Decimal `json:"totalRunningPrincipal"`
	TotalProfitsPaid      decimal.Decimal `json:"totalProfitsPaid"`
	PlatformBalance       decimal.Decimal `json:"platformBalance"`
}

// ToPlatformTotalsResponse converts domain.PlatformTotals to its DTO
func ToPlatformTotalsResponse(t *domain.PlatformTotals) PlatformTotalsResponse {
	return PlatformTotalsResponse{
		TotalDeposits:         t.TotalDeposits,
		TotalWithdrawals:      t.TotalWithdrawals,
		TotalRunningPrincipal: t.TotalRunningPrincipal,
		TotalProfitsPaid:      t.TotalProfitsPaid,
		PlatformBalance:       t.PlatformBalance,
	}
}

// TransferRequest defines an admin-initiated gateway payout.
type TransferRequest struct {
	AccountBank   string          `json:"accountBank" binding:"required"`
	AccountNumber string          `json:"accountNumber" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Currency      string          `json:"currency" binding:"required,len=3"`
	Narration     string          `json:"narration"`
	Reference     string          `json:"reference"`
}

// TransferResponse reports the gateway's view of a payout.
type TransferResponse struct {
	Reference string `json:"reference"`
	Status    string `json:"status"`
}

// GatewayBalanceResponse reports the gateway ledger balance.
type GatewayBalanceResponse struct {
	Currency string          `json:"currency"`
	Balance  decimal.Decimal `json:"balance"`
}
