package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Currency is the denomination of a quote request
type Currency string

// Supported currencies
const (
	CurrencyXOF Currency = "XOF"
	CurrencyEUR Currency = "EUR"
)

// DeliverySpeed selects the settlement tier
type DeliverySpeed string

// Delivery tiers
const (
	SpeedInstant  DeliverySpeed = "INSTANT"
	SpeedStandard DeliverySpeed = "STANDARD"
)

// PricingSource tells whether the stablecoin amount came from a live partner quote
type PricingSource string

// Pricing sources
const (
	PricingPartner  PricingSource = "partner"
	PricingFallback PricingSource = "fallback"
)

// ParseCurrency normalises and validates a currency code
func ParseCurrency(raw string) (Currency, bool) {
	switch c := Currency(strings.ToUpper(strings.TrimSpace(raw))); c {
	case CurrencyXOF, CurrencyEUR:
		return c, true
	}
	return "", false
}

// ParseDeliverySpeed normalises and validates a delivery tier
func ParseDeliverySpeed(raw string) (DeliverySpeed, bool) {
	switch s := DeliverySpeed(strings.ToUpper(strings.TrimSpace(raw))); s {
	case SpeedInstant, SpeedStandard:
		return s, true
	}
	return "", false
}

// RatePair returns the exchange rate pair priced for this tier
func (s DeliverySpeed) RatePair() string {
	if s == SpeedInstant {
		return PairEURXOFInstant
	}
	return PairEURXOFStandard
}

// QuoteRequest is the input to the quote engine
type QuoteRequest struct {
	Amount   decimal.Decimal
	Currency Currency
	Speed    DeliverySpeed
}

// Quote is a fully priced, fee-broken-down quote. It is never persisted.
type Quote struct {
	RequestedAmount  decimal.Decimal
	Currency         Currency
	Speed            DeliverySpeed
	TargetFiatOut    decimal.Decimal // EUR the receiver nets
	CommercialAmount decimal.Decimal // XOF before the gateway fee
	TotalToPay       decimal.Decimal // XOF charged to the sender
	StablecoinAmount decimal.Decimal
	GatewayFee       decimal.Decimal
	PartnerFee       decimal.Decimal // XOF
	PlatformFee      decimal.Decimal // XOF
	RateCharged      decimal.Decimal
	OfficialRate     decimal.Decimal
	ProviderRate     decimal.Decimal
	RoutingStrategy  RoutingStrategy
	PaymentMethod    string
	PricingSource    PricingSource
	Corrected        bool
}

// NetPayout is the EUR the receiver is expected to receive
func (q *Quote) NetPayout() decimal.Decimal {
	return q.TargetFiatOut
}
