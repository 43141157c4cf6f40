package usecase

import (
	"context"

	"github.com/shopspring/decimal"
)

// WebhookResult is the acknowledgement returned to an external notifier
type WebhookResult string

// Webhook results
const (
	ResultSuccess          WebhookResult = "success"
	ResultAlreadyProcessed WebhookResult = "already_processed"
	ResultFailedProcessed  WebhookResult = "failed_processed"
	ResultError            WebhookResult = "error"
)

// PaymentNotification is the gateway proof-of-payment event
type PaymentNotification struct {
	GatewayTransactionID string
	IsSuccess            bool
	Amount               decimal.Decimal
	ReferenceCode        string
	Status               string
}

// OfframpNotification is the settlement partner payout callback
type OfframpNotification struct {
	ReferenceCode string
	IsSuccess     bool
	Reason        string
}

// PaymentUseCase consumes asynchronous provider notifications
type PaymentUseCase interface {
	// HandlePaymentNotification applies a gateway event exactly once. It never returns an error;
	// failures are reported as ResultError.
	HandlePaymentNotification(ctx context.Context, n PaymentNotification) WebhookResult
}
