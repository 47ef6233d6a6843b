package payout

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/QuangTung97/crowdfund-escrow/config"
	"github.com/QuangTung97/crowdfund-escrow/ledger"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"io"
	"net/http"
)

// ErrRejected when the payout gateway answers with a non 2xx status
var ErrRejected = errors.New("payout rejected by gateway")

// Request is the body posted to the payout gateway
type Request struct {
	To     string          `json:"to"`
	Amount decimal.Decimal `json:"amount"`
}

// Client sends outbound transfers to the payout gateway
type Client struct {
	url    string
	client *http.Client
}

var _ ledger.Transferer = &Client{}

// New ...
func New(conf config.PayoutConfig) *Client {
	return &Client{
		url: conf.URL,
		client: &http.Client{
			Timeout: conf.Timeout,
		},
	}
}

// Transfer posts a payout request, any transport error or non 2xx response is a rejected transfer
func (c *Client) Transfer(ctx context.Context, to ledger.Identity, amount decimal.Decimal) error {
	body, err := json.Marshal(Request{
		To:     string(to),
		Amount: amount,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("payout request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: status %d", ErrRejected, resp.StatusCode)
	}
	return nil
}
