package gateways

import (
	"context"

	"github.com/shopspring/decimal"
)

// TransferOrder describes a payout to a user's bank account.
type TransferOrder struct {
	AccountBank   string
	AccountNumber string
	Amount        decimal.Decimal
	Currency      string
	Narration     string
	Reference     string
}

// TransferReceipt is the gateway's acknowledgement of a transfer.
type TransferReceipt struct {
	Reference string
	Status    string
}

// PaymentGateway defines the outbound payment provider interface.
// Implementations are injected at process start.
type PaymentGateway interface {
	// Transfer initiates a payout and returns the gateway receipt.
	Transfer(ctx context.Context, order TransferOrder) (*TransferReceipt, error)

	// Balance returns the available gateway balance for a currency.
	Balance(ctx context.Context, currency string) (decimal.Decimal, error)
}

// Mailer defines the outbound mail interface.
type Mailer interface {
	// Send delivers a plain-text message to a single recipient.
	Send(ctx context.Context, to string, subject string, body string) error
}
