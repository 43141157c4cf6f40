package quote

import (
	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/core"
	"github.com/shopspring/decimal"
)

// ProductionEnvironment is the only environment in which the minimum amount is enforced
const ProductionEnvironment = "production"

// Settings holds the pricing parameters. It is built once from configuration at startup.
type Settings struct {
	Environment string

	// OfficialRate is the fixed XOF per EUR reference rate
	OfficialRate decimal.Decimal

	// Tier rates used when the exchange rate row is missing
	DefaultInstantRate  decimal.Decimal
	DefaultStandardRate decimal.Decimal

	GatewayFeePercent decimal.Decimal

	// Fallback markups over the target payout, as fractions
	InstantFallbackMarkup  decimal.Decimal
	StandardFallbackMarkup decimal.Decimal

	// StandardPartnerMinimum is the smallest EUR payout the standard partner accepts
	StandardPartnerMinimum decimal.Decimal

	// MinAmountXOF is enforced on the total to pay in production only
	MinAmountXOF decimal.Decimal

	PartnerTimeout core.Duration
}

// DefaultSettings returns the reference pricing parameters
func DefaultSettings() Settings {
	return Settings{
		Environment:            "development",
		OfficialRate:           decimal.RequireFromString("655.96"),
		DefaultInstantRate:     decimal.RequireFromString("719.9"),
		DefaultStandardRate:    decimal.RequireFromString("690"),
		GatewayFeePercent:      decimal.RequireFromString("1.5"),
		InstantFallbackMarkup:  decimal.RequireFromString("0.03"),
		StandardFallbackMarkup: decimal.RequireFromString("0.02"),
		StandardPartnerMinimum: decimal.RequireFromString("47.5"),
		MinAmountXOF:           decimal.NewFromInt(5000),
		PartnerTimeout:         5 * core.Second,
	}
}
