package repositories

import (
	"context"
	"time"

	"github.com/IamSolomonChika/FundWise-BackEnd/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceReader defines read operations against the cash flow ledger.
type BalanceReader interface {
	// GetBalance returns the current stored balance for a user. A user with
	// no cash flow row yet has a balance of zero.
	GetBalance(ctx context.Context, userID string) (decimal.Decimal, error)

	// RecomputeBalance derives the balance from the full transaction history:
	// deposits minus non-rejected withdrawals minus running principals plus
	// profits. Completed investments are principal-neutral; only their
	// profit remains in the derivation.
	RecomputeBalance(ctx context.Context, userID string) (decimal.Decimal, error)
}

// BalanceWriter defines direct balance mutations.
type BalanceWriter interface {
	// ApplyDelta adjusts a user's balance inside its own transaction, locking
	// the cash flow row. A debit that would drive the balance negative fails
	// with ErrInsufficientFunds and writes nothing.
	ApplyDelta(ctx context.Context, userID string, delta decimal.Decimal, reason domain.DeltaReason) (decimal.Decimal, error)
}

// DepositRepository defines persistence for deposits.
type DepositRepository interface {
	// SaveDeposit persists the deposit and credits the balance atomically.
	// Returns the new balance.
	SaveDeposit(ctx context.Context, deposit domain.Deposit) (decimal.Decimal, error)

	// ListDeposits retrieves a paginated list of a user's deposits using
	// token-based pagination, newest first.
	ListDeposits(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Deposit, *string, error)

	// SumDeposits returns the total deposited by a user.
	SumDeposits(ctx context.Context, userID string) (decimal.Decimal, error)
}

// WithdrawalRepository defines persistence for withdrawals and their
// admin approval records.
type WithdrawalRepository interface {
	// SaveWithdrawal locks the balance, debits the amount and persists the
	// withdrawal plus its approval request in one transaction. An amount
	// exceeding the balance fails with ErrInsufficientFunds and writes
	// nothing. Returns the new balance.
	SaveWithdrawal(ctx context.Context, withdrawal domain.Withdrawal, request domain.WithdrawalRequest) (decimal.Decimal, error)

	// ApproveWithdrawalRequest transitions a request and its withdrawal from
	// PENDING to APPROVED. A request that is not PENDING fails with
	// ErrConflict. The balance is untouched (debited at request time).
	ApproveWithdrawalRequest(ctx context.Context, requestID string, adminID string, gatewayReference string, decidedAt time.Time) (*domain.WithdrawalRequest, error)

	// RejectWithdrawalRequest transitions a request and its withdrawal from
	// PENDING to REJECTED and credits the amount back, atomically.
	RejectWithdrawalRequest(ctx context.Context, requestID string, adminID string, decidedAt time.Time) (*domain.WithdrawalRequest, error)

	// FindWithdrawalRequestByID retrieves a single approval request.
	FindWithdrawalRequestByID(ctx context.Context, requestID string) (*domain.WithdrawalRequest, error)

	// ListWithdrawals retrieves a paginated list of a user's withdrawals.
	ListWithdrawals(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Withdrawal, *string, error)

	// ListWithdrawalRequests retrieves approval requests filtered by status,
	// user and date range. Empty status or userID means no filter.
	ListWithdrawalRequests(ctx context.Context, status domain.WithdrawalStatus, userID string, rng domain.DateRange, limit int, nextToken *string) ([]domain.WithdrawalRequest, *string, error)

	// SumWithdrawals returns the total of a user's non-rejected withdrawals.
	SumWithdrawals(ctx context.Context, userID string) (decimal.Decimal, error)
}

// InvestmentRepository defines persistence for investments and profits.
type InvestmentRepository interface {
	// SaveInvestment locks the balance, debits the principal and persists the
	// investment as RUNNING in one transaction. A principal exceeding the
	// balance fails with ErrInsufficientFunds and writes nothing. Returns the
	// new balance.
	SaveInvestment(ctx context.Context, investment domain.Investment) (decimal.Decimal, error)

	// CompleteInvestment resolves a matured investment in one transaction:
	// compare-and-swap the status RUNNING to COMPLETED, insert the single
	// profit record, credit principal plus profit. Returns false when the
	// status swap affected no rows (already completed), in which case nothing
	// is written.
	CompleteInvestment(ctx context.Context, investment domain.Investment, profit domain.Profit) (bool, error)

	// ListMaturedRunning retrieves RUNNING investments with maturity at or
	// before the given instant, oldest maturity first.
	ListMaturedRunning(ctx context.Context, asOf time.Time, limit int) ([]domain.Investment, error)

	// ListInvestments retrieves a paginated list of a user's investments.
	ListInvestments(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Investment, *string, error)

	// FindInvestmentByID retrieves a single investment.
	FindInvestmentByID(ctx context.Context, investmentID string) (*domain.Investment, error)

	// SumRunningPrincipal returns the total principal locked in RUNNING
	// investments for a user.
	SumRunningPrincipal(ctx context.Context, userID string) (decimal.Decimal, error)

	// ListProfits retrieves a paginated list of a user's profit payouts.
	ListProfits(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Profit, *string, error)
}

// LedgerRepositoryFacade combines all ledger-related repository interfaces
// This is a facade for clients that need access to all operations
type LedgerRepositoryFacade interface {
	BalanceReader
	BalanceWriter
	DepositRepository
	WithdrawalRepository
	InvestmentRepository
}
