package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/remitbridge/internal/domain/error"
	"github.com/amirhossein-jamali/remitbridge/internal/infrastructure/adapter/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(url string) *Client {
	return NewClient(Config{
		BaseURL:         url,
		APIKey:          "key",
		APISecret:       "secret",
		CallbackURL:     "https://api.example.com/webhooks/payment",
		Timeout:         time.Second,
		BreakerFailures: 3,
	}, logger.NewNoopLogger(), nil)
}

func TestClient_InitiatePayment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/payments", r.URL.Path)
		var req paymentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "RB-ABCD1234", req.Reference)
		assert.Equal(t, "66581", req.Amount)
		assert.Equal(t, "XOF", req.Currency)
		assert.Equal(t, "https://api.example.com/webhooks/payment", req.CallbackURL)

		_, _ = w.Write([]byte(`{"id":"gw-1","checkout_url":"https://pay.example.com/gw-1"}`))
	}))
	defer srv.Close()

	session, err := newTestClient(srv.URL).InitiatePayment(context.Background(), "RB-ABCD1234",
		decimal.RequireFromString("66580.4"), "Transfer RB-ABCD1234")
	require.NoError(t, err)
	assert.Equal(t, "gw-1", session.GatewayTransactionID)
	assert.Equal(t, "https://pay.example.com/gw-1", session.CheckoutURL)
}

func TestClient_RefundAndBalance(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/payments/gw-9/refunds":
			w.WriteHeader(http.StatusAccepted)
		case "/v1/balance":
			_, _ = w.Write([]byte(`{"available":"1250000","currency":"XOF"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	require.NoError(t, c.Refund(context.Background(), "gw-9", decimal.NewFromInt(1000)))

	bal, err := c.Balance(context.Background())
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(1250000).Equal(bal))

	err = c.Refund(context.Background(), "unknown", decimal.NewFromInt(1))
	assert.ErrorIs(t, err, errs.ErrUpstreamUnavailable)
}

func TestClient_Unconfigured(t *testing.T) {
	c := NewClient(Config{}, logger.NewNoopLogger(), nil)
	_, err := c.InitiatePayment(context.Background(), "RB-1", decimal.NewFromInt(1), "")
	assert.ErrorIs(t, err, errs.ErrUpstreamUnavailable)
}

func TestVerifySignature(t *testing.T) {
	body := []byte(`{"referenceCode":"RB-1"}`)
	sig := SignPayload("whsec", body)

	assert.True(t, VerifySignature("whsec", body, sig))
	assert.True(t, VerifySignature("whsec", body, "sha256="+sig))
	assert.False(t, VerifySignature("other", body, sig))
	assert.False(t, VerifySignature("whsec", []byte(`{}`), sig))
	assert.False(t, VerifySignature("whsec", body, "zz"))
	assert.False(t, VerifySignature("", body, sig))
}
