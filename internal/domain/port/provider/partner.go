package provider

import (
	"context"

	"github.com/shopspring/decimal"
)

// Payment methods offered by settlement partners
const (
	MethodSepaInstant = "sepa_instant"
	MethodSepa        = "sepa"
)

// PartnerQuote is a SELL-side quote returned by a settlement partner
type PartnerQuote struct {
	CryptoAmount decimal.Decimal // stablecoin sold
	FiatAmount   decimal.Decimal // EUR paid out after fees
	FeeFiat      decimal.Decimal // EUR fee charged by the partner
	Rate         decimal.Decimal // EUR per stablecoin before fees
}

// SettlementPartner off-ramps stablecoin into bank-settled EUR
type SettlementPartner interface {
	// Name identifies the partner in logs and metrics
	Name() string

	// Configured reports whether a credential is present; unconfigured partners are never called
	Configured() bool

	// ReverseSellQuote asks how much stablecoin must be sold so the receiver nets fiatAmount
	ReverseSellQuote(ctx context.Context, fiatAmount decimal.Decimal, method string) (*PartnerQuote, error)

	// ForwardSellQuote asks how much fiat selling cryptoAmount yields after fees
	ForwardSellQuote(ctx context.Context, cryptoAmount decimal.Decimal, method string) (*PartnerQuote, error)
}
