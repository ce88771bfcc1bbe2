package mailer

import (
	"context"
	"log/slog"

	"github.com/IamSolomonChika/FundWise-BackEnd/internal/core/ports/gateways"
)

// NoopMailer logs messages instead of delivering them. Used when SMTP is not
// configured, e.g. in local development.
type NoopMailer struct {
	logger *slog.Logger
}

func NewNoopMailer(logger *slog.Logger) *NoopMailer {
	return &NoopMailer{logger: logger}
}

// Ensure NoopMailer implements the Mailer port
var _ gateways.Mailer = (*NoopMailer)(nil)

func (m *NoopMailer) Send(ctx context.Context, to string, subject string, body string) error {
	m.logger.Info("Mail suppressed (no SMTP configured)",
		slog.String("to", to),
		slog.String("subject", subject),
	)
	return nil
}
