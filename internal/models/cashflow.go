package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// CashFlow is the per-user balance row.
type CashFlow struct {
	UserID         string          `db:"user_id"`
	AccountBalance decimal.Decimal `db:"account_balance"`
	LastUpdatedAt  time.Time       `db:"last_updated_at"`
	LastUpdatedBy  string          `db:"last_updated_by"`
}

// Deposit is an immutable credit record.
type Deposit struct {
	DepositID string          `db:"deposit_id"`
	UserID    string          `db:"user_id"`
	Amount    decimal.Decimal `db:"amount"`
	CreatedAt time.Time       `db:"created_at"`
}

// Withdrawal is a debit record with an approval lifecycle.
type Withdrawal struct {
	WithdrawalID string          `db:"withdrawal_id"`
	UserID       string          `db:"user_id"`
	Amount       decimal.Decimal `db:"amount"`
	Status       string          `db:"status"`
	CreatedAt    time.Time       `db:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at"`
}

// WithdrawalRequest is the admin approval record for a withdrawal.
type WithdrawalRequest struct {
	RequestID        string          `db:"request_id"`
	WithdrawalID     string          `db:"withdrawal_id"`
	UserID           string          `db:"user_id"`
	Amount           decimal.Decimal `db:"amount"`
	Status           string          `db:"status"`
	GatewayReference sql.NullString  `db:"gateway_reference"`
	DecidedBy        sql.NullString  `db:"decided_by"`
	CreatedAt        time.Time       `db:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at"`
}

// Investment is a fixed-term principal lockup row.
type Investment struct {
	InvestmentID string          `db:"investment_id"`
	UserID       string          `db:"user_id"`
	Principal    decimal.Decimal `db:"principal"`
	DurationDays int             `db:"duration_days"`
	InterestRate decimal.Decimal `db:"interest_rate"`
	Status       string          `db:"status"`
	OpenedAt     time.Time       `db:"opened_at"`
	MaturityAt   time.Time       `db:"maturity_at"`
	CompletedAt  sql.NullTime    `db:"completed_at"`
}

// Profit is the payout record created when an investment completes.
type Profit struct {
	ProfitID     string          `db:"profit_id"`
	InvestmentID string          `db:"investment_id"`
	UserID       string          `db:"user_id"`
	Amount       decimal.Decimal `db:"amount"`
	CreatedAt    time.Time       `db:"created_at"`
}
