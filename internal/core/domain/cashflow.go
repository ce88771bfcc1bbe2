package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// WithdrawalStatus is the lifecycle state of a withdrawal.
type WithdrawalStatus string

const (
	WithdrawalPending  WithdrawalStatus = "PENDING"
	WithdrawalApproved WithdrawalStatus = "APPROVED"
	WithdrawalRejected WithdrawalStatus = "REJECTED"
)

// InvestmentStatus is the lifecycle state of an investment.
type InvestmentStatus string

const (
	InvestmentRunning   InvestmentStatus = "RUNNING"
	InvestmentCompleted InvestmentStatus = "COMPLETED"
)

// DeltaReason tags a balance mutation with the operation that caused it.
type DeltaReason string

const (
	ReasonDeposit          DeltaReason = "DEPOSIT"
	ReasonWithdrawal       DeltaReason = "WITHDRAWAL"
	ReasonWithdrawalRefund DeltaReason = "WITHDRAWAL_REFUND"
	ReasonInvestment       DeltaReason = "INVESTMENT"
	ReasonMaturityPayout   DeltaReason = "MATURITY_PAYOUT"
)

// CashFlow is the per-user balance row. The stored balance must always be
// recomputable from the deposit, withdrawal, investment and profit history.
type CashFlow struct {
	UserID         string          `json:"userID"`
	AccountBalance decimal.Decimal `json:"accountBalance"`
	LastUpdatedAt  time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy  string          `json:"lastUpdatedBy"`
}

// Deposit is an immutable credit record.
type Deposit struct {
	DepositID string          `json:"depositID"`
	UserID    string          `json:"userID"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"createdAt"`
}

// Withdrawal is a debit record. The balance is debited when the withdrawal
// is requested; a rejection credits the amount back.
type Withdrawal struct {
	WithdrawalID string           `json:"withdrawalID"`
	UserID       string           `json:"userID"`
	Amount       decimal.Decimal  `json:"amount"`
	Status       WithdrawalStatus `json:"status"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

// WithdrawalRequest is the admin-facing approval record for a withdrawal.
type WithdrawalRequest struct {
	RequestID        string           `json:"requestID"`
	WithdrawalID     string           `json:"withdrawalID"`
	UserID           string           `json:"userID"`
	Amount           decimal.Decimal  `json:"amount"`
	Status           WithdrawalStatus `json:"status"`
	GatewayReference string           `json:"gatewayReference,omitempty"`
	DecidedBy        string           `json:"decidedBy,omitempty"` // admin UserID
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}

// Investment is a fixed-term principal lockup.
type Investment struct {
	InvestmentID string           `json:"investmentID"`
	UserID       string           `json:"userID"`
	Principal    decimal.Decimal  `json:"principal"`
	DurationDays int              `json:"durationDays"`
	InterestRate decimal.Decimal  `json:"interestRate"`
	Status       InvestmentStatus `json:"status"`
	OpenedAt     time.Time        `json:"openedAt"`
	MaturityAt   time.Time        `json:"maturityAt"`
	CompletedAt  *time.Time       `json:"completedAt,omitempty"`
}

// ProfitAmount is principal multiplied by the interest rate.
func (i Investment) ProfitAmount() decimal.Decimal {
	return i.Principal.Mul(i.InterestRate)
}

// MaturedBy reports whether the investment is due at the given instant.
func (i Investment) MaturedBy(now time.Time) bool {
	return !i.MaturityAt.After(now)
}

// MaturityFrom computes the maturity instant for an investment opened at the
// given time with the given term.
func MaturityFrom(openedAt time.Time, durationDays int) time.Time {
	return openedAt.Add(time.Duration(durationDays) * 24 * time.Hour)
}

// Profit records the interest paid out when an investment completes.
// At most one profit exists per investment.
type Profit struct {
	ProfitID     string          `json:"profitID"`
	InvestmentID string          `json:"investmentID"`
	UserID       string          `json:"userID"`
	Amount       decimal.Decimal `json:"amount"`
	CreatedAt    time.Time       `json:"createdAt"`
}
