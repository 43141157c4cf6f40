package partner

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	errs "github.com/amirhossein-jamali/remitbridge/internal/domain/error"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/core"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/provider"
	"github.com/amirhossein-jamali/remitbridge/internal/infrastructure/adapter/breaker"
	"github.com/amirhossein-jamali/remitbridge/internal/infrastructure/adapter/httpclient"
	"github.com/shopspring/decimal"
	"github.com/sony/gobreaker/v2"
)

const quotePath = "/v1/quotes/sell"

// Config configures one settlement partner
type Config struct {
	Name             string
	BaseURL          string
	APIKey           string
	APISecret        string
	Asset            string
	Timeout          time.Duration
	BreakerFailures  uint32
	BreakerOpenAfter time.Duration
}

// Client is a settlement partner reached over its signed REST API
type Client struct {
	cfg    Config
	http   *httpclient.SignedClient
	cb     *gobreaker.CircuitBreaker[*provider.PartnerQuote]
	logger core.Logger
}

var _ provider.SettlementPartner = (*Client)(nil)

type sellQuoteRequest struct {
	Asset         string `json:"asset"`
	Fiat          string `json:"fiat"`
	AmountType    string `json:"amount_type"` // fiat: receiver nets Amount; crypto: sell Amount
	Amount        string `json:"amount"`
	PaymentMethod string `json:"payment_method"`
}

type sellQuoteResponse struct {
	CryptoAmount decimal.Decimal `json:"crypto_amount"`
	FiatAmount   decimal.Decimal `json:"fiat_amount"`
	Fee          decimal.Decimal `json:"fee"`
	Rate         decimal.Decimal `json:"rate"`
}

// NewClient creates a partner client. observer may be nil.
func NewClient(cfg Config, logger core.Logger, observer breaker.StateObserver) *Client {
	if cfg.Asset == "" {
		cfg.Asset = "USDC"
	}
	return &Client{
		cfg:  cfg,
		http: httpclient.New(cfg.BaseURL, cfg.APIKey, cfg.APISecret, cfg.Timeout),
		cb: breaker.New[*provider.PartnerQuote](breaker.Settings{
			Name:                "partner_" + cfg.Name,
			ConsecutiveFailures: cfg.BreakerFailures,
			OpenTimeout:         cfg.BreakerOpenAfter,
		}, logger, observer),
		logger: logger,
	}
}

// Name implements provider.SettlementPartner
func (c *Client) Name() string {
	return c.cfg.Name
}

// Configured implements provider.SettlementPartner
func (c *Client) Configured() bool {
	return c.cfg.BaseURL != "" && c.cfg.APIKey != ""
}

// ReverseSellQuote implements provider.SettlementPartner
func (c *Client) ReverseSellQuote(ctx context.Context, fiatAmount decimal.Decimal, method string) (*provider.PartnerQuote, error) {
	return c.quote(ctx, "reverse_sell_quote", sellQuoteRequest{
		Asset:         c.cfg.Asset,
		Fiat:          "EUR",
		AmountType:    "fiat",
		Amount:        fiatAmount.StringFixed(2),
		PaymentMethod: method,
	})
}

// ForwardSellQuote implements provider.SettlementPartner
func (c *Client) ForwardSellQuote(ctx context.Context, cryptoAmount decimal.Decimal, method string) (*provider.PartnerQuote, error) {
	return c.quote(ctx, "forward_sell_quote", sellQuoteRequest{
		Asset:         c.cfg.Asset,
		Fiat:          "EUR",
		AmountType:    "crypto",
		Amount:        cryptoAmount.StringFixed(6),
		PaymentMethod: method,
	})
}

func (c *Client) quote(ctx context.Context, operation string, req sellQuoteRequest) (*provider.PartnerQuote, error) {
	if !c.Configured() {
		return nil, errs.NewUpstreamError(c.cfg.Name, operation, errors.New("partner not configured"))
	}

	q, err := c.cb.Execute(func() (*provider.PartnerQuote, error) {
		var resp sellQuoteResponse
		if err := c.http.Do(ctx, http.MethodPost, quotePath, req, &resp); err != nil {
			return nil, err
		}
		if !resp.CryptoAmount.IsPositive() || !resp.FiatAmount.IsPositive() {
			return nil, fmt.Errorf("non-positive amounts in quote: crypto=%s fiat=%s", resp.CryptoAmount, resp.FiatAmount)
		}
		return &provider.PartnerQuote{
			CryptoAmount: resp.CryptoAmount,
			FiatAmount:   resp.FiatAmount,
			FeeFiat:      resp.Fee,
			Rate:         resp.Rate,
		}, nil
	})
	if err != nil {
		c.logger.Warn("Partner quote failed", map[string]any{
			"partner":      c.cfg.Name,
			"operation":    operation,
			"method":       req.PaymentMethod,
			"breaker_open": breaker.IsOpen(err),
			"error":        err.Error(),
		})
		return nil, errs.NewUpstreamError(c.cfg.Name, operation, err)
	}

	return q, nil
}
