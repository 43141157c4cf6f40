package quote

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/remitbridge/internal/domain/entity"
	errs "github.com/amirhossein-jamali/remitbridge/internal/domain/error"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/core"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/provider"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/usecase"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Engine prices transfers for both delivery tiers
type Engine struct {
	rates    persistence.RateRepository
	instant  provider.SettlementPartner
	standard provider.SettlementPartner
	settings Settings
	timer    core.TimeProvider
	metrics  core.Metrics
	logger   core.Logger
}

var _ usecase.QuoteUseCase = (*Engine)(nil)

// NewEngine creates a quote engine
func NewEngine(
	rates persistence.RateRepository,
	instant provider.SettlementPartner,
	standard provider.SettlementPartner,
	settings Settings,
	timer core.TimeProvider,
	metrics core.Metrics,
	logger core.Logger,
) *Engine {
	return &Engine{
		rates:    rates,
		instant:  instant,
		standard: standard,
		settings: settings,
		timer:    timer,
		metrics:  metrics,
		logger:   logger,
	}
}

// GetQuote validates raw request parameters and prices them
func (e *Engine) GetQuote(ctx context.Context, amount, currency, speed string) (*entity.Quote, error) {
	value, err := entity.ParsePositiveAmount(amount)
	if err != nil {
		return nil, err
	}

	cur, ok := entity.ParseCurrency(currency)
	if !ok {
		return nil, fmt.Errorf("%w: %q", errs.ErrInvalidCurrency, currency)
	}

	tier, ok := entity.ParseDeliverySpeed(speed)
	if !ok {
		return nil, fmt.Errorf("%w: %q", errs.ErrInvalidSpeed, speed)
	}

	return e.Price(ctx, entity.QuoteRequest{Amount: value, Currency: cur, Speed: tier})
}

// Price computes the quote for a validated request
func (e *Engine) Price(ctx context.Context, req entity.QuoteRequest) (*entity.Quote, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: must be greater than zero", errs.ErrInvalidAmount)
	}

	official := e.settings.OfficialRate
	target := req.Amount
	if req.Currency == entity.CurrencyXOF {
		target = req.Amount.DivRound(official, entity.FiatDecimalPlaces)
	}
	if !target.IsPositive() {
		return nil, fmt.Errorf("%w: amount too small to convert", errs.ErrInvalidAmount)
	}

	tierRate, err := e.tierRate(ctx, req.Speed)
	if err != nil {
		return nil, err
	}

	commercial := entity.RoundXOF(target.Mul(tierRate))
	gatewayFee := entity.RoundXOF(commercial.Mul(e.settings.GatewayFeePercent).Div(hundred))
	total := commercial.Add(gatewayFee)

	if e.settings.Environment == ProductionEnvironment && total.LessThan(e.settings.MinAmountXOF) {
		return nil, fmt.Errorf("%w: total %s XOF is below %s XOF", errs.ErrBelowMinimum,
			total.String(), e.settings.MinAmountXOF.String())
	}

	route := e.route(req.Speed, target)
	priced := e.priceStablecoin(ctx, route, target)

	partnerFee := decimal.Zero
	if route.partnerFeeVisible {
		partnerFee = entity.RoundXOF(priced.partnerFeeEUR.Mul(official))
	}
	platformFee := entity.FloorZero(commercial.Sub(entity.RoundXOF(target.Mul(official))).Sub(partnerFee))

	q := &entity.Quote{
		RequestedAmount:  req.Amount,
		Currency:         req.Currency,
		Speed:            req.Speed,
		TargetFiatOut:    target,
		CommercialAmount: commercial,
		TotalToPay:       total,
		StablecoinAmount: priced.stablecoin,
		GatewayFee:       gatewayFee,
		PartnerFee:       partnerFee,
		PlatformFee:      platformFee,
		RateCharged:      tierRate,
		OfficialRate:     official,
		ProviderRate:     priced.providerRate,
		RoutingStrategy:  route.strategy,
		PaymentMethod:    route.method,
		PricingSource:    priced.source,
		Corrected:        priced.corrected,
	}

	e.metrics.QuoteServed(string(req.Speed), string(priced.source))
	e.logger.Debug("Quote priced", map[string]any{
		"speed":          req.Speed,
		"target_eur":     target.String(),
		"total_xof":      total.String(),
		"stablecoin":     priced.stablecoin.String(),
		"routing":        route.strategy,
		"pricing_source": priced.source,
		"corrected":      priced.corrected,
	})

	return q, nil
}

// tierRate reads the commercial rate for the tier, falling back to the configured default when the
// pair has not been seeded
func (e *Engine) tierRate(ctx context.Context, speed entity.DeliverySpeed) (decimal.Decimal, error) {
	fallback := e.settings.DefaultStandardRate
	if speed == entity.SpeedInstant {
		fallback = e.settings.DefaultInstantRate
	}

	rate, err := e.rates.GetByPair(ctx, speed.RatePair())
	if err != nil {
		if errs.IsNotFoundError(err) {
			return fallback, nil
		}
		return decimal.Zero, fmt.Errorf("failed to read %s rate: %w", speed.RatePair(), err)
	}

	effective := rate.EffectiveRate()
	if !effective.IsPositive() {
		e.logger.Warn("Ignoring non-positive exchange rate", map[string]any{
			"pair": rate.Pair,
			"rate": effective.String(),
		})
		return fallback, nil
	}
	return effective, nil
}
