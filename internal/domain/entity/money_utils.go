package entity

import (
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/remitbridge/internal/domain/error"
	"github.com/shopspring/decimal"
)

// Precision used when amounts are stored or returned to clients
const (
	FiatDecimalPlaces       = 2
	StablecoinDecimalPlaces = 6
	NativeDecimalPlaces     = 18
)

// Cent is the smallest payout difference that is considered a shortfall
var Cent = decimal.New(1, -FiatDecimalPlaces)

// ParsePositiveAmount parses a decimal string and rejects empty, malformed or non-positive values
func ParsePositiveAmount(amount string) (decimal.Decimal, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return decimal.Zero, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, amount)
	}
	if !value.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: must be greater than zero", errs.ErrInvalidAmount)
	}

	return value, nil
}

// RoundFiat rounds a fiat amount to cents
func RoundFiat(d decimal.Decimal) decimal.Decimal {
	return d.Round(FiatDecimalPlaces)
}

// RoundXOF rounds a CFA franc amount to whole units; XOF has no minor unit
func RoundXOF(d decimal.Decimal) decimal.Decimal {
	return d.Round(0)
}

// RoundStablecoinUp rounds a stablecoin amount up to token precision so the payout is never short
func RoundStablecoinUp(d decimal.Decimal) decimal.Decimal {
	return d.RoundUp(StablecoinDecimalPlaces)
}

// FloorZero clamps negative values to zero
func FloorZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// ToBaseUnits converts a token amount into its smallest on-chain unit
func ToBaseUnits(d decimal.Decimal, decimals int32) decimal.Decimal {
	return d.Shift(decimals).Truncate(0)
}

// FromBaseUnits converts an on-chain integer amount back into token units
func FromBaseUnits(d decimal.Decimal, decimals int32) decimal.Decimal {
	return d.Shift(-decimals)
}

// TruncateReason shortens a failure reason to fit the persisted column
func TruncateReason(reason string, max int) string {
	if max <= 0 || len(reason) <= max {
		return reason
	}
	r := []rune(reason)
	for len(string(r)) > max {
		r = r[:len(r)-1]
	}
	return string(r)
}
