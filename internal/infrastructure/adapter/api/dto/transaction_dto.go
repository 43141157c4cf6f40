package dto

import (
	"time"

	"github.com/amirhossein-jamali/remitbridge/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest confirms a quote towards a receiver handle
type CreateTransactionRequest struct {
	ReceiverHandle  string          `json:"receiverHandle" binding:"required"`
	FiatAmountIn    decimal.Decimal `json:"fiatAmountIn"`
	ExpectedFiatOut decimal.Decimal `json:"expectedFiatOut"`
	DeliverySpeed   string          `json:"deliverySpeed" binding:"required"`
}

// ListQuery pages a transaction listing
type ListQuery struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}

// TransactionResponse represents a transaction as seen by its sender or receiver
type TransactionResponse struct {
	ID               uint64     `json:"id"`
	ReferenceCode    string     `json:"referenceCode"`
	Status           string     `json:"status"`
	DeliverySpeed    string     `json:"deliverySpeed"`
	RoutingStrategy  string     `json:"routingStrategy"`
	FiatAmountIn     string     `json:"fiatAmountIn"`
	TotalToPay       string     `json:"totalToPay"`
	ExpectedFiatOut  string     `json:"expectedFiatOut"`
	StablecoinAmount string     `json:"stablecoinAmount"`
	ExchangeRate     string     `json:"exchangeRate"`
	GatewayFee       string     `json:"gatewayFee"`
	PartnerFee       string     `json:"partnerFee"`
	PlatformFee      string     `json:"platformFee"`
	GasTxHash        string     `json:"gasTxHash,omitempty"`
	TokenTxHash      string     `json:"tokenTxHash,omitempty"`
	FailureReason    string     `json:"failureReason,omitempty"`
	ClaimedAt        *time.Time `json:"claimedAt,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

// NewTransactionResponse maps a transaction onto its wire form
func NewTransactionResponse(tx *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:               tx.ID,
		ReferenceCode:    tx.ReferenceCode,
		Status:           string(tx.Status),
		DeliverySpeed:    string(tx.DeliverySpeed),
		RoutingStrategy:  string(tx.RoutingStrategy),
		FiatAmountIn:     tx.FiatAmountIn.StringFixed(0),
		TotalToPay:       tx.TotalToPay.StringFixed(0),
		ExpectedFiatOut:  tx.ExpectedFiatOut.StringFixed(2),
		StablecoinAmount: tx.StablecoinAmount.StringFixed(6),
		ExchangeRate:     tx.ExchangeRate.String(),
		GatewayFee:       tx.GatewayFee.StringFixed(0),
		PartnerFee:       tx.PartnerFee.StringFixed(0),
		PlatformFee:      tx.PlatformFee.StringFixed(0),
		GasTxHash:        tx.GasTxHash,
		TokenTxHash:      tx.TokenTxHash,
		FailureReason:    tx.FailureReason,
		ClaimedAt:        tx.ClaimedAt,
		CreatedAt:        tx.CreatedAt,
		UpdatedAt:        tx.UpdatedAt,
	}
}

// NewTransactionList maps a slice of transactions
func NewTransactionList(txs []*entity.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, NewTransactionResponse(tx))
	}
	return out
}

// PaymentSessionResponse carries the checkout the sender must complete
type PaymentSessionResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	CheckoutURL string              `json:"checkoutUrl"`
}

// ClaimPreviewResponse is the public view behind a claim link
type ClaimPreviewResponse struct {
	ReferenceCode   string    `json:"referenceCode"`
	Status          string    `json:"status"`
	ExpectedFiatOut string    `json:"expectedFiatOut"`
	SenderFirstName string    `json:"senderFirstName"`
	CreatedAt       time.Time `json:"createdAt"`
}

// NewClaimPreviewResponse maps a claim preview
func NewClaimPreviewResponse(p *entity.ClaimPreview) ClaimPreviewResponse {
	return ClaimPreviewResponse{
		ReferenceCode:   p.ReferenceCode,
		Status:          string(p.Status),
		ExpectedFiatOut: p.ExpectedFiatOut.StringFixed(2),
		SenderFirstName: p.SenderFirstName,
		CreatedAt:       p.CreatedAt,
	}
}
