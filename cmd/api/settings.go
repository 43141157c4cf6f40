package main

import (
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/core"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/usecase/admin"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/usecase/bridge"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/usecase/quote"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/usecase/transaction"
	"github.com/amirhossein-jamali/remitbridge/internal/infrastructure/config"
	"github.com/shopspring/decimal"
)

// domainSettings is the parsed form of the pricing and lifecycle configuration
type domainSettings struct {
	quote       quote.Settings
	bridge      bridge.Settings
	transaction transaction.Settings
	admin       admin.Settings
}

// decimalParser collects every malformed decimal instead of stopping at the first one
type decimalParser struct {
	invalid []string
}

// parse returns fallback for an empty value
func (p *decimalParser) parse(key, value string, fallback decimal.Decimal) decimal.Decimal {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		p.invalid = append(p.invalid, fmt.Sprintf("%s=%q", key, value))
		return fallback
	}
	return d
}

func durationOr(d core.Duration, fallback core.Duration) core.Duration {
	if d <= 0 {
		return fallback
	}
	return d
}

// buildSettings turns the loaded configuration into use case settings.
// Unset values keep the reference defaults.
func buildSettings(cfg *config.Config) (*domainSettings, error) {
	var p decimalParser

	qd := quote.DefaultSettings()
	q := quote.Settings{
		Environment:            cfg.Environment,
		OfficialRate:           p.parse("quote.officialRate", cfg.Quote.OfficialRate, qd.OfficialRate),
		DefaultInstantRate:     p.parse("quote.defaultInstantRate", cfg.Quote.DefaultInstantRate, qd.DefaultInstantRate),
		DefaultStandardRate:    p.parse("quote.defaultStandardRate", cfg.Quote.DefaultStandardRate, qd.DefaultStandardRate),
		GatewayFeePercent:      p.parse("quote.gatewayFeePercent", cfg.Quote.GatewayFeePercent, qd.GatewayFeePercent),
		InstantFallbackMarkup:  p.parse("quote.instantFallbackMarkup", cfg.Quote.InstantFallbackMarkup, qd.InstantFallbackMarkup),
		StandardFallbackMarkup: p.parse("quote.standardFallbackMarkup", cfg.Quote.StandardFallbackMarkup, qd.StandardFallbackMarkup),
		StandardPartnerMinimum: p.parse("quote.standardPartnerMinimum", cfg.Quote.StandardPartnerMinimum, qd.StandardPartnerMinimum),
		MinAmountXOF:           p.parse("quote.minAmountXof", cfg.Quote.MinAmountXOF, qd.MinAmountXOF),
		PartnerTimeout:         durationOr(core.Duration(cfg.Quote.PartnerTimeout), qd.PartnerTimeout),
	}

	bd := bridge.DefaultSettings()
	b := bridge.Settings{
		GasSponsorship:      p.parse("bridge.gasSponsorship", cfg.Bridge.GasSponsorship, bd.GasSponsorship),
		AttemptTimeout:      durationOr(core.Duration(cfg.Bridge.AttemptTimeout), bd.AttemptTimeout),
		ReceiptTimeout:      durationOr(core.Duration(cfg.Bridge.ReceiptTimeout), bd.ReceiptTimeout),
		EscrowSweepInterval: durationOr(core.Duration(cfg.Bridge.EscrowSweepInterval), bd.EscrowSweepInterval),
		EscrowStaleAfter:    durationOr(core.Duration(cfg.Bridge.EscrowStaleAfter), bd.EscrowStaleAfter),
		SweepBatchSize:      bd.SweepBatchSize,
	}
	if cfg.Bridge.SweepBatchSize > 0 {
		b.SweepBatchSize = cfg.Bridge.SweepBatchSize
	}

	td := transaction.DefaultSettings()
	t := transaction.Settings{
		QuoteTolerancePercent: p.parse("transaction.quoteTolerancePercent", cfg.Transaction.QuoteTolerancePercent, td.QuoteTolerancePercent),
		AcquisitionRateXOF:    p.parse("bridge.acquisitionRateXof", cfg.Bridge.AcquisitionRateXOF, td.AcquisitionRateXOF),
		GatewayTimeout:        durationOr(core.Duration(cfg.Gateway.Timeout), td.GatewayTimeout),
	}

	a := admin.Settings{
		ProviderTimeout: durationOr(core.Duration(cfg.Chain.CallTimeout), admin.DefaultSettings().ProviderTimeout),
	}

	if len(p.invalid) > 0 {
		return nil, fmt.Errorf("invalid decimal configuration: %s", strings.Join(p.invalid, ", "))
	}
	if !q.OfficialRate.IsPositive() || !t.AcquisitionRateXOF.IsPositive() {
		return nil, fmt.Errorf("quote.officialRate and bridge.acquisitionRateXof must be positive")
	}
	if b.GasSponsorship.IsNegative() {
		return nil, fmt.Errorf("bridge.gasSponsorship must not be negative")
	}

	return &domainSettings{quote: q, bridge: b, transaction: t, admin: a}, nil
}
