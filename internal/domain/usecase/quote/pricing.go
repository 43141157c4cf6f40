package quote

import (
	"context"

	"github.com/amirhossein-jamali/remitbridge/internal/domain/entity"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/provider"
	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// route is the partner, payment method and fallback parameters chosen for a request
type route struct {
	partner           provider.SettlementPartner
	method            string
	strategy          entity.RoutingStrategy
	fallbackMarkup    decimal.Decimal
	verify            bool
	partnerFeeVisible bool
}

// pricedAmount is the stablecoin leg of a quote
type pricedAmount struct {
	stablecoin    decimal.Decimal
	partnerFeeEUR decimal.Decimal
	providerRate  decimal.Decimal
	source        entity.PricingSource
	corrected     bool
}

func (e *Engine) route(speed entity.DeliverySpeed, target decimal.Decimal) route {
	if speed == entity.SpeedInstant {
		return route{
			partner:           e.instant,
			method:            provider.MethodSepaInstant,
			strategy:          entity.RoutingInstantSepaInstant,
			fallbackMarkup:    e.settings.InstantFallbackMarkup,
			verify:            true,
			partnerFeeVisible: true,
		}
	}

	// the standard partner rejects small payouts; the instant partner's slow rail serves them
	if target.LessThan(e.settings.StandardPartnerMinimum) {
		return route{
			partner:           e.instant,
			method:            provider.MethodSepa,
			strategy:          entity.RoutingInstantSepa,
			fallbackMarkup:    e.settings.StandardFallbackMarkup,
			partnerFeeVisible: true,
		}
	}

	return route{
		partner:        e.standard,
		method:         provider.MethodSepa,
		strategy:       entity.RoutingStandardSepa,
		fallbackMarkup: e.settings.StandardFallbackMarkup,
	}
}

// priceStablecoin asks the partner how much stablecoin nets the target payout. Any partner
// failure degrades to the deterministic markup.
func (e *Engine) priceStablecoin(ctx context.Context, r route, target decimal.Decimal) pricedAmount {
	if r.partner == nil || !r.partner.Configured() {
		return fallbackPrice(target, r.fallbackMarkup)
	}

	quote, err := e.reverseQuote(ctx, r, target)
	if err != nil {
		e.logger.Warn("Partner quote unavailable, using fallback pricing", map[string]any{
			"partner": r.partner.Name(),
			"method":  r.method,
			"error":   err.Error(),
		})
		return fallbackPrice(target, r.fallbackMarkup)
	}

	priced := pricedAmount{
		stablecoin:    entity.RoundStablecoinUp(quote.CryptoAmount),
		partnerFeeEUR: quote.FeeFiat,
		providerRate:  quote.Rate,
		source:        entity.PricingPartner,
	}

	if r.verify {
		e.verify(ctx, r, target, &priced)
	}
	return priced
}

func (e *Engine) reverseQuote(ctx context.Context, r route, target decimal.Decimal) (*provider.PartnerQuote, error) {
	callCtx, cancel := e.timer.WithTimeout(ctx, e.settings.PartnerTimeout)
	defer cancel()

	quote, err := r.partner.ReverseSellQuote(callCtx, target, r.method)
	if err == nil && (quote == nil || !quote.CryptoAmount.IsPositive()) {
		err = errNonPositiveQuote
	}
	e.recordCall(r.partner.Name(), "reverse_quote", err)
	return quote, err
}

func (e *Engine) forwardQuote(ctx context.Context, r route, crypto decimal.Decimal) (*provider.PartnerQuote, error) {
	callCtx, cancel := e.timer.WithTimeout(ctx, e.settings.PartnerTimeout)
	defer cancel()

	quote, err := r.partner.ForwardSellQuote(callCtx, crypto, r.method)
	if err == nil && (quote == nil || !quote.FiatAmount.IsPositive()) {
		err = errNonPositiveQuote
	}
	e.recordCall(r.partner.Name(), "forward_quote", err)
	return quote, err
}

// verify sells the priced amount forward and scales it up once by target/yielded when the
// payout undershoots by more than a cent. The platform absorbs the difference.
func (e *Engine) verify(ctx context.Context, r route, target decimal.Decimal, priced *pricedAmount) {
	check, err := e.forwardQuote(ctx, r, priced.stablecoin)
	if err != nil {
		e.logger.Warn("Forward verification skipped", map[string]any{
			"partner": r.partner.Name(),
			"error":   err.Error(),
		})
		return
	}
	priced.partnerFeeEUR = check.FeeFiat

	shortfall := target.Sub(check.FiatAmount)
	if shortfall.LessThanOrEqual(entity.Cent) {
		return
	}

	scaled := entity.RoundStablecoinUp(priced.stablecoin.Mul(target).Div(check.FiatAmount))
	e.logger.Info("Correcting stablecoin amount for partner slippage", map[string]any{
		"partner":    r.partner.Name(),
		"target_eur": target.String(),
		"yielded":    check.FiatAmount.String(),
		"before":     priced.stablecoin.String(),
		"after":      scaled.String(),
	})
	priced.stablecoin = scaled
	priced.corrected = true

	recheck, err := e.forwardQuote(ctx, r, scaled)
	if err != nil {
		e.logger.Warn("Second forward verification failed", map[string]any{
			"partner": r.partner.Name(),
			"error":   err.Error(),
		})
		return
	}
	priced.partnerFeeEUR = recheck.FeeFiat
	if target.Sub(recheck.FiatAmount).GreaterThan(entity.Cent) {
		e.logger.Warn("Payout still short after correction", map[string]any{
			"partner":    r.partner.Name(),
			"target_eur": target.String(),
			"yielded":    recheck.FiatAmount.String(),
		})
	}
}

func (e *Engine) recordCall(partner, operation string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	e.metrics.ProviderCall(partner, operation, outcome)
}

// fallbackPrice applies the deterministic markup used when the partner cannot be asked
func fallbackPrice(target, markup decimal.Decimal) pricedAmount {
	stable := entity.RoundStablecoinUp(target.Mul(one.Add(markup)))
	return pricedAmount{
		stablecoin:    stable,
		partnerFeeEUR: entity.RoundFiat(target.Mul(markup)),
		providerRate:  target.DivRound(stable, 8),
		source:        entity.PricingFallback,
	}
}
