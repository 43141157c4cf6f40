package dto

import "github.com/shopspring/decimal"

// PaymentWebhook is the gateway's proof-of-payment body
type PaymentWebhook struct {
	GatewayTransactionID string          `json:"gatewayTransactionId"`
	IsSuccess            bool            `json:"isSuccess"`
	Amount               decimal.Decimal `json:"amount"`
	ReferenceCode        string          `json:"referenceCode"`
	Status               string          `json:"status,omitempty"`
}

// OfframpWebhook is the settlement partner's payout callback
type OfframpWebhook struct {
	ReferenceCode string `json:"referenceCode"`
	IsSuccess     bool   `json:"isSuccess"`
	Reason        string `json:"reason,omitempty"`
}

// WebhookAck acknowledges a webhook delivery
type WebhookAck struct {
	Status string `json:"status"`
}
