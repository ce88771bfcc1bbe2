// Package flutterwave implements the payment gateway port against the
// Flutterwave v3 REST API.
package flutterwave

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/IamSolomonChika/FundWise-BackEnd/internal/apperrors"
	"github.com/IamSolomonChika/FundWise-BackEnd/internal/core/ports/gateways"
	"github.com/shopspring/decimal"
)

const defaultTimeout = 15 * time.Second

type Client struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
}

// NewClient creates a Flutterwave gateway client.
func NewClient(baseURL, secretKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		secretKey:  secretKey,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// Ensure Client implements the PaymentGateway port
var _ gateways.PaymentGateway = (*Client)(nil)

type transferPayload struct {
	AccountBank   string          `json:"account_bank"`
	AccountNumber string          `json:"account_number"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Narration     string          `json:"narration,omitempty"`
	Reference     string          `json:"reference,omitempty"`
}

type transferEnvelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Reference string `json:"reference"`
		Status    string `json:"status"`
	} `json:"data"`
}

type balanceEnvelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    []struct {
		Currency         string          `json:"currency"`
		AvailableBalance decimal.Decimal `json:"available_balance"`
	} `json:"data"`
}

func (c *Client) doJSON(ctx context.Context, method, path string, payload any, out any) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode gateway payload: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build gateway request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.NewGatewayTimeoutError("payment gateway unreachable: " + err.Error())
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("failed to read gateway response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apperrors.NewAppError(resp.StatusCode, "payment gateway error: "+string(raw), apperrors.ErrInternal)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode gateway response: %w", err)
	}
	return nil
}

func (c *Client) Transfer(ctx context.Context, order gateways.TransferOrder) (*gateways.TransferReceipt, error) {
	payload := transferPayload{
		AccountBank:   order.AccountBank,
		AccountNumber: order.AccountNumber,
		Amount:        order.Amount,
		Currency:      order.Currency,
		Narration:     order.Narration,
		Reference:     order.Reference,
	}

	var envelope transferEnvelope
	if err := c.doJSON(ctx, http.MethodPost, "/transfers", payload, &envelope); err != nil {
		return nil, err
	}
	if envelope.Status != "success" {
		return nil, apperrors.NewAppError(502, "gateway transfer rejected: "+envelope.Message, apperrors.ErrInternal)
	}

	return &gateways.TransferReceipt{
		Reference: envelope.Data.Reference,
		Status:    envelope.Data.Status,
	}, nil
}

func (c *Client) Balance(ctx context.Context, currency string) (decimal.Decimal, error) {
	var envelope balanceEnvelope
	if err := c.doJSON(ctx, http.MethodGet, "/balances/"+currency, nil, &envelope); err != nil {
		return decimal.Zero, err
	}
	if envelope.Status != "success" {
		return decimal.Zero, apperrors.NewAppError(502, "gateway balance query rejected: "+envelope.Message, apperrors.ErrInternal)
	}
	for _, entry := range envelope.Data {
		if entry.Currency == currency {
			return entry.AvailableBalance, nil
		}
	}
	if len(envelope.Data) > 0 {
		return envelope.Data[0].AvailableBalance, nil
	}
	return decimal.Zero, fmt.Errorf("no balance entry for currency %s: %w", currency, apperrors.ErrNotFound)
}
