package dto

import (
	"time"

	"github.com/IamSolomonChika/FundWise-BackEnd/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DepositRequest defines the data needed to record a deposit.
type DepositRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// WithdrawRequest defines the data needed to request a withdrawal.
type WithdrawRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// OpenInvestmentRequest defines the data needed to open an investment.
type OpenInvestmentRequest struct {
	Principal    decimal.Decimal `json:"principal" binding:"required"`
	DurationDays int             `json:"durationDays" binding:"required,gt=0"`
	InterestRate decimal.Decimal `json:"interestRate" binding:"required"`
}

// ListParams defines query parameters for token-paginated listings.
type ListParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// BalanceResponse defines the data returned for a balance query.
type BalanceResponse struct {
	UserID  string          `json:"userID"`
	Balance decimal.Decimal `json:"balance"`
}

// DepositResponse defines the data returned for a deposit.
type DepositResponse struct {
	DepositID string          `json:"depositID"`
	UserID    string          `json:"userID"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"createdAt"`

	// NewBalance is populated on the response to the deposit call itself.
	NewBalance *decimal.Decimal `json:"newBalance,omitempty"`
}

// ToDepositResponse converts a domain.Deposit to DepositResponse DTO
func ToDepositResponse(d *domain.Deposit) DepositResponse {
	return DepositResponse{
		DepositID: d.DepositID,
		UserID:    d.UserID,
		Amount:    d.Amount,
		CreatedAt: d.CreatedAt,
	}
}

// ListDepositsResponse wraps a page of deposits.
type ListDepositsResponse struct {
	Deposits  []DepositResponse `json:"deposits"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToListDepositsResponse converts a page of domain.Deposit to its DTO
func ToListDepositsResponse(ds []domain.Deposit, nextToken *string) ListDepositsResponse {
	res := make([]DepositResponse, len(ds))
	for i := range ds {
		res[i] = ToDepositResponse(&ds[i])
	}
	return ListDepositsResponse{Deposits: res, NextToken: nextToken}
}

// WithdrawalResponse defines the data returned for a withdrawal.
type WithdrawalResponse struct {
	WithdrawalID string          `json:"withdrawalID"`
	UserID       string          `json:"userID"`
	Amount       decimal.Decimal `json:"amount"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"createdAt"`

	NewBalance *decimal.Decimal `json:"newBalance,omitempty"`
}

// ToWithdrawalResponse converts a domain.Withdrawal to WithdrawalResponse DTO
func ToWithdrawalResponse(w *domain.Withdrawal) WithdrawalResponse {
	return WithdrawalResponse{
		WithdrawalID: w.WithdrawalID,
		UserID:       w.UserID,
		Amount:       w.Amount,
		Status:       string(w.Status),
		CreatedAt:    w.CreatedAt,
	}
}

// ListWithdrawalsResponse wraps a page of withdrawals.
type ListWithdrawalsResponse struct {
	Withdrawals []WithdrawalResponse `json:"withdrawals"`
	NextToken   *string              `json:"nextToken,omitempty"`
}

// ToListWithdrawalsResponse converts a page of domain.Withdrawal to its DTO
func ToListWithdrawalsResponse(ws []domain.Withdrawal, nextToken *string) ListWithdrawalsResponse {
	res := make([]WithdrawalResponse, len(ws))
	for i := range ws {
		res[i] = ToWithdrawalResponse(&ws[i])
	}
	return ListWithdrawalsResponse{Withdrawals: res, NextToken: nextToken}
}

// WithdrawalRequestResponse defines the data returned for an approval request.
type WithdrawalRequestResponse struct {
	RequestID        string          `json:"requestID"`
	WithdrawalID     string          `json:"withdrawalID"`
	UserID           string          `json:"userID"`
	Amount           decimal.Decimal `json:"amount"`
	Status           string          `json:"status"`
	GatewayReference string          `json:"gatewayReference,omitempty"`
	DecidedBy        string          `json:"decidedBy,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// ToWithdrawalRequestResponse converts a domain.WithdrawalRequest to its DTO
func ToWithdrawalRequestResponse(r *domain.WithdrawalRequest) WithdrawalRequestResponse {
	return WithdrawalRequestResponse{
		RequestID:        r.RequestID,
		WithdrawalID:     r.WithdrawalID,
		UserID:           r.UserID,
		Amount:           r.Amount,
		Status:           string(r.Status),
		GatewayReference: r.GatewayReference,
		DecidedBy:        r.DecidedBy,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

// ListWithdrawalRequestsResponse wraps a page of approval requests.
type ListWithdrawalRequestsResponse struct {
	Requests  []WithdrawalRequestResponse `json:"requests"`
	NextToken *string                     `json:"nextToken,omitempty"`
}

// ToListWithdrawalRequestsResponse converts a page of requests to its DTO
func ToListWithdrawalRequestsResponse(rs []domain.WithdrawalRequest, nextToken *string) ListWithdrawalRequestsResponse {
	res := make([]WithdrawalRequestResponse, len(rs))
	for i := range rs {
		res[i] = ToWithdrawalRequestResponse(&rs[i])
	}
	return ListWithdrawalRequestsResponse{Requests: res, NextToken: nextToken}
}

// InvestmentResponse defines the data returned for an investment.
type InvestmentResponse struct {
	InvestmentID string          `json:"investmentID"`
	UserID       string          `json:"userID"`
	Principal    decimal.Decimal `json:"principal"`
	DurationDays int             `json:"durationDays"`
	InterestRate decimal.Decimal `json:"interestRate"`
	Status       string          `json:"status"`
	OpenedAt     time.Time       `json:"openedAt"`
	MaturityAt   time.Time       `json:"maturityAt"`
	CompletedAt  *time.Time      `json:"completedAt,omitempty"`

	NewBalance *decimal.Decimal `json:"newBalance,omitempty"`
}

// ToInvestmentResponse converts a domain.Investment to InvestmentResponse DTO
func ToInvestmentResponse(inv *domain.Investment) InvestmentResponse {
	return InvestmentResponse{
		InvestmentID: inv.InvestmentID,
		UserID:       inv.UserID,
		Principal:    inv.Principal,
		DurationDays: inv.DurationDays,
		InterestRate: inv.InterestRate,
		Status:       string(inv.Status),
		OpenedAt:     inv.OpenedAt,
		MaturityAt:   inv.MaturityAt,
		CompletedAt:  inv.CompletedAt,
	}
}

// ListInvestmentsResponse wraps a page of investments.
type ListInvestmentsResponse struct {
	Investments []InvestmentResponse `json:"investments"`
	NextToken   *string              `json:"nextToken,omitempty"`
}

// ToListInvestmentsResponse converts a page of domain.Investment to its DTO
func ToListInvestmentsResponse(is []domain.Investment, nextToken *string) ListInvestmentsResponse {
	res := make([]InvestmentResponse, len(is))
	for i := range is {
		res[i] = ToInvestmentResponse(&is[i])
	}
	return ListInvestmentsResponse{Investments: res, NextToken: nextToken}
}

// ProfitResponse defines the data returned for a profit payout.
type ProfitResponse struct {
	ProfitID     string          `json:"profitID"`
	InvestmentID string          `json:"investmentID"`
	UserID       string          `json:"userID"`
	Amount       decimal.Decimal `json:"amount"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// ToProfitResponse converts a domain.Profit to ProfitResponse DTO
func ToProfitResponse(p *domain.Profit) ProfitResponse {
	return ProfitResponse{
		ProfitID:     p.ProfitID,
		InvestmentID: p.InvestmentID,
		UserID:       p.UserID,
		Amount:       p.Amount,
		CreatedAt:    p.CreatedAt,
	}
}

// ListProfitsResponse wraps a page of profits.
type ListProfitsResponse struct {
	Profits   []ProfitResponse `json:"profits"`
	NextToken *string          `json:"nextToken,omitempty"`
}

// ToListProfitsResponse converts a page of domain.Profit to its DTO
func ToListProfitsResponse(ps []domain.Profit, nextToken *string) ListProfitsResponse {
	res := make([]ProfitResponse, len(ps))
	for i := range ps {
		res[i] = ToProfitResponse(&ps[i])
	}
	return ListProfitsResponse{Profits: res, NextToken: nextToken}
}

// SweepResponse reports the outcome of a maturity sweep.
type SweepResponse struct {
	Resolved int `json:"resolved"`
}
