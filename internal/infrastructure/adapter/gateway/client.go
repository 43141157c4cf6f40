package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"

	errs "github.com/amirhossein-jamali/remitbridge/internal/domain/error"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/core"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/provider"
	"github.com/amirhossein-jamali/remitbridge/internal/infrastructure/adapter/breaker"
	"github.com/amirhossein-jamali/remitbridge/internal/infrastructure/adapter/httpclient"
	"github.com/shopspring/decimal"
	"github.com/sony/gobreaker/v2"
)

const providerName = "gateway"

// Config configures the mobile-money gateway
type Config struct {
	BaseURL          string
	APIKey           string
	APISecret        string
	CallbackURL      string
	Timeout          time.Duration
	BreakerFailures  uint32
	BreakerOpenAfter time.Duration
}

// Client is the mobile-money collection gateway
type Client struct {
	cfg    Config
	http   *httpclient.SignedClient
	cb     *gobreaker.CircuitBreaker[any]
	logger core.Logger
}

var _ provider.PaymentGateway = (*Client)(nil)

type paymentRequest struct {
	Reference   string `json:"reference"`
	Amount      string `json:"amount"`
	Currency    string `json:"currency"`
	Description string `json:"description"`
	CallbackURL string `json:"callback_url,omitempty"`
}

type paymentResponse struct {
	ID          string `json:"id"`
	CheckoutURL string `json:"checkout_url"`
}

type refundRequest struct {
	Amount string `json:"amount"`
}

type balanceResponse struct {
	Available decimal.Decimal `json:"available"`
	Currency  string          `json:"currency"`
}

// NewClient creates a gateway client. observer may be nil.
func NewClient(cfg Config, logger core.Logger, observer breaker.StateObserver) *Client {
	return &Client{
		cfg:  cfg,
		http: httpclient.New(cfg.BaseURL, cfg.APIKey, cfg.APISecret, cfg.Timeout),
		cb: breaker.New[any](breaker.Settings{
			Name:                providerName,
			ConsecutiveFailures: cfg.BreakerFailures,
			OpenTimeout:         cfg.BreakerOpenAfter,
		}, logger, observer),
		logger: logger,
	}
}

func (c *Client) call(ctx context.Context, operation, method, path string, in, out any) error {
	if c.cfg.BaseURL == "" || c.cfg.APIKey == "" {
		return errs.NewUpstreamError(providerName, operation, errors.New("gateway not configured"))
	}

	_, err := c.cb.Execute(func() (any, error) {
		return nil, c.http.Do(ctx, method, path, in, out)
	})
	if err != nil {
		c.logger.Warn("Gateway call failed", map[string]any{
			"operation":    operation,
			"breaker_open": breaker.IsOpen(err),
			"error":        err.Error(),
		})
		return errs.NewUpstreamError(providerName, operation, err)
	}
	return nil
}

// InitiatePayment implements provider.PaymentGateway
func (c *Client) InitiatePayment(ctx context.Context, reference string, amount decimal.Decimal, description string) (*provider.CheckoutSession, error) {
	var resp paymentResponse
	err := c.call(ctx, "initiate_payment", http.MethodPost, "/v1/payments", paymentRequest{
		Reference:   reference,
		Amount:      amount.Ceil().String(),
		Currency:    "XOF",
		Description: description,
		CallbackURL: c.cfg.CallbackURL,
	}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.ID == "" || resp.CheckoutURL == "" {
		return nil, errs.NewUpstreamError(providerName, "initiate_payment", errors.New("incomplete checkout session"))
	}

	return &provider.CheckoutSession{
		GatewayTransactionID: resp.ID,
		CheckoutURL:          resp.CheckoutURL,
	}, nil
}

// Refund implements provider.PaymentGateway
func (c *Client) Refund(ctx context.Context, gatewayTransactionID string, amount decimal.Decimal) error {
	path := "/v1/payments/" + url.PathEscape(gatewayTransactionID) + "/refunds"
	return c.call(ctx, "refund", http.MethodPost, path, refundRequest{Amount: amount.String()}, nil)
}

// Balance implements provider.PaymentGateway
func (c *Client) Balance(ctx context.Context) (decimal.Decimal, error) {
	var resp balanceResponse
	if err := c.call(ctx, "balance", http.MethodGet, "/v1/balance", nil, &resp); err != nil {
		return decimal.Zero, err
	}
	return resp.Available, nil
}
