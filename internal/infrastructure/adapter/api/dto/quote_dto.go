package dto

import "github.com/amirhossein-jamali/remitbridge/internal/domain/entity"

// QuoteRequest holds the query parameters of GET /quotes
type QuoteRequest struct {
	Amount   string `form:"amount" binding:"required"`
	Currency string `form:"currency" binding:"required"`
	Speed    string `form:"speed" binding:"required"`
}

// QuoteFees breaks the sender's cost down in XOF
type QuoteFees struct {
	Gateway  string `json:"gateway"`
	Partner  string `json:"partner"`
	Platform string `json:"platform"`
}

// QuoteResponse is a priced quote
type QuoteResponse struct {
	RequestedAmount  string    `json:"requestedAmount"`
	Currency         string    `json:"currency"`
	DeliverySpeed    string    `json:"deliverySpeed"`
	CommercialAmount string    `json:"commercialAmount"`
	TotalToPay       string    `json:"totalToPay"`
	ExpectedFiatOut  string    `json:"expectedFiatOut"`
	StablecoinAmount string    `json:"stablecoinAmount"`
	ExchangeRate     string    `json:"exchangeRate"`
	OfficialRate     string    `json:"officialRate"`
	ProviderRate     string    `json:"providerRate,omitempty"`
	Fees             QuoteFees `json:"fees"`
	RoutingStrategy  string    `json:"routingStrategy"`
	PaymentMethod    string    `json:"paymentMethod"`
	PricingSource    string    `json:"pricingSource"`
}

// NewQuoteResponse maps a domain quote onto its wire form
func NewQuoteResponse(q *entity.Quote) QuoteResponse {
	resp := QuoteResponse{
		RequestedAmount:  q.RequestedAmount.String(),
		Currency:         string(q.Currency),
		DeliverySpeed:    string(q.Speed),
		CommercialAmount: q.CommercialAmount.StringFixed(0),
		TotalToPay:       q.TotalToPay.StringFixed(0),
		ExpectedFiatOut:  q.NetPayout().StringFixed(2),
		StablecoinAmount: q.StablecoinAmount.StringFixed(6),
		ExchangeRate:     q.RateCharged.String(),
		OfficialRate:     q.OfficialRate.String(),
		Fees: QuoteFees{
			Gateway:  q.GatewayFee.StringFixed(0),
			Partner:  q.PartnerFee.StringFixed(0),
			Platform: q.PlatformFee.StringFixed(0),
		},
		RoutingStrategy: string(q.RoutingStrategy),
		PaymentMethod:   q.PaymentMethod,
		PricingSource:   string(q.PricingSource),
	}
	if !q.ProviderRate.IsZero() {
		resp.ProviderRate = q.ProviderRate.String()
	}
	return resp
}
