package services

import (
	"context"

	"github.com/IamSolomonChika/FundWise-BackEnd/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerSvcFacade defines balance-level operations.
type LedgerSvcFacade interface {
	// GetBalance returns the current stored balance for a user.
	GetBalance(ctx context.Context, userID string) (decimal.Decimal, error)

	// RecomputeBalance derives the balance from the transaction history.
	RecomputeBalance(ctx context.Context, userID string) (decimal.Decimal, error)

	// Reconcile compares the stored and recomputed balances. A mismatch
	// returns ErrInvariantViolation; the stored balance is never corrected.
	Reconcile(ctx context.Context, userID string) (decimal.Decimal, error)
}

// DepositSvcFacade defines deposit operations.
type DepositSvcFacade interface {
	// Deposit records a credit and returns the deposit with the new balance.
	Deposit(ctx context.Context, userID string, amount decimal.Decimal) (*domain.Deposit, decimal.Decimal, error)

	// ListDeposits retrieves a page of the user's deposits.
	ListDeposits(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Deposit, *string, error)

	// TotalDeposits returns the total deposited by the user.
	TotalDeposits(ctx context.Context, userID string) (decimal.Decimal, error)
}

// WithdrawalSvcFacade defines withdrawal operations.
type WithdrawalSvcFacade interface {
	// RequestWithdrawal debits the balance and records a pending withdrawal
	// with its approval request. Returns the withdrawal and the new balance.
	RequestWithdrawal(ctx context.Context, userID string, amount decimal.Decimal) (*domain.Withdrawal, decimal.Decimal, error)

	// Approve transitions a pending request to APPROVED and optionally
	// initiates the gateway payout.
	Approve(ctx context.Context, requestID string, adminID string) (*domain.WithdrawalRequest, error)

	// Reject transitions a pending request to REJECTED and credits the
	// amount back.
	Reject(ctx context.Context, requestID string, adminID string) (*domain.WithdrawalRequest, error)

	// GetWithdrawalRequest retrieves a single approval request.
	GetWithdrawalRequest(ctx context.Context, requestID string) (*domain.WithdrawalRequest, error)

	// ListWithdrawals retrieves a page of the user's withdrawals.
	ListWithdrawals(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Withdrawal, *string, error)

	// ListWithdrawalRequests retrieves approval requests for the admin
	// surface, filtered by status, user and date range.
	ListWithdrawalRequests(ctx context.Context, status domain.WithdrawalStatus, userID string, rng domain.DateRange, limit int, nextToken *string) ([]domain.WithdrawalRequest, *string, error)

	// TotalWithdrawals returns the total of the user's non-rejected withdrawals.
	TotalWithdrawals(ctx context.Context, userID string) (decimal.Decimal, error)
}

// InvestmentSvcFacade defines investment operations.
type InvestmentSvcFacade interface {
	// OpenInvestment debits the principal and records a RUNNING investment.
	// Returns the investment and the new balance.
	OpenInvestment(ctx context.Context, userID string, principal decimal.Decimal, durationDays int, interestRate decimal.Decimal) (*domain.Investment, decimal.Decimal, error)

	// ListInvestments retrieves a page of the user's investments.
	ListInvestments(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Investment, *string, error)

	// ListProfits retrieves a page of the user's profit payouts.
	ListProfits(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Profit, *string, error)

	// TotalRunningPrincipal returns the principal locked in RUNNING
	// investments for the user.
	TotalRunningPrincipal(ctx context.Context, userID string) (decimal.Decimal, error)
}

// MaturitySvcFacade defines the maturity sweep.
type MaturitySvcFacade interface {
	// ResolveMatured completes every RUNNING investment whose maturity has
	// passed and returns the number resolved. Safe to call concurrently and
	// repeatedly; an investment is paid out exactly once.
	ResolveMatured(ctx context.Context) (int, error)
}
