package provider

import (
	"context"

	"github.com/shopspring/decimal"
)

// CheckoutSession is returned when the gateway opens a mobile-money payment
type CheckoutSession struct {
	GatewayTransactionID string
	CheckoutURL          string
}

// PaymentGateway is the mobile-money collection provider
type PaymentGateway interface {
	// InitiatePayment opens a checkout for the given reference and XOF amount
	InitiatePayment(ctx context.Context, reference string, amount decimal.Decimal, description string) (*CheckoutSession, error)

	// Refund returns a collected payment to the payer
	Refund(ctx context.Context, gatewayTransactionID string, amount decimal.Decimal) error

	// Balance returns the available XOF balance of the merchant account
	Balance(ctx context.Context) (decimal.Decimal, error)
}
