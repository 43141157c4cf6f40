package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Known exchange rate pairs
const (
	PairEURXOFInstant  = "EUR_XOF_INSTANT"
	PairEURXOFStandard = "EUR_XOF_STANDARD"
)

var hundred = decimal.NewFromInt(100)

// ExchangeRate is a named currency pair with a base rate and a markup percentage
type ExchangeRate struct {
	ID            uint64
	Pair          string
	BaseRate      decimal.Decimal
	MarkupPercent decimal.Decimal
	UpdatedAt     time.Time
}

// EffectiveRate is the commercial rate charged to senders for this pair
func (r *ExchangeRate) EffectiveRate() decimal.Decimal {
	return r.BaseRate.Mul(decimal.NewFromInt(1).Add(r.MarkupPercent.Div(hundred)))
}

// RateUpdate is a partial update; nil fields are left untouched
type RateUpdate struct {
	BaseRate      *decimal.Decimal
	MarkupPercent *decimal.Decimal
}

// IsEmpty reports whether the update changes nothing
func (u RateUpdate) IsEmpty() bool {
	return u.BaseRate == nil && u.MarkupPercent == nil
}

// Apply copies the present fields onto the rate
func (u RateUpdate) Apply(r *ExchangeRate) {
	if u.BaseRate != nil {
		r.BaseRate = *u.BaseRate
	}
	if u.MarkupPercent != nil {
		r.MarkupPercent = *u.MarkupPercent
	}
}
