package quote

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/remitbridge/internal/domain/entity"
	errs "github.com/amirhossein-jamali/remitbridge/internal/domain/error"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/provider"
	"github.com/amirhossein-jamali/remitbridge/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/remitbridge/internal/testutil"
	providermocks "github.com/amirhossein-jamali/remitbridge/mocks/port/provider"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decEq(expected string) any {
	want := dec(expected)
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(want) })
}

func unconfiguredPartner(t *testing.T, name string) *providermocks.MockSettlementPartner {
	p := providermocks.NewMockSettlementPartner(t)
	p.EXPECT().Configured().Return(false).Maybe()
	p.EXPECT().Name().Return(name).Maybe()
	return p
}

func configuredPartner(t *testing.T, name string) *providermocks.MockSettlementPartner {
	p := providermocks.NewMockSettlementPartner(t)
	p.EXPECT().Configured().Return(true).Maybe()
	p.EXPECT().Name().Return(name).Maybe()
	return p
}

func newTestEngine(t *testing.T, instant, standard provider.SettlementPartner, settings Settings) (*Engine, *testutil.Store) {
	t.Helper()
	store := testutil.NewStore()
	clock := testutil.NewClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	return NewEngine(store.Rates(), instant, standard, settings, clock, testutil.Metrics{}, logger.NewNoopLogger()), store
}

func TestEngine_GetQuote_Validation(t *testing.T) {
	engine, _ := newTestEngine(t, unconfiguredPartner(t, "instant"), unconfiguredPartner(t, "standard"), DefaultSettings())
	ctx := context.Background()

	testCases := []struct {
		name     string
		amount   string
		currency string
		speed    string
		expected error
	}{
		{"Zero amount", "0", "XOF", "INSTANT", errs.ErrInvalidAmount},
		{"Negative amount", "-10", "XOF", "INSTANT", errs.ErrInvalidAmount},
		{"Malformed amount", "ten", "XOF", "INSTANT", errs.ErrInvalidAmount},
		{"Missing currency", "1000", "", "INSTANT", errs.ErrInvalidCurrency},
		{"Unknown currency", "1000", "USD", "INSTANT", errs.ErrInvalidCurrency},
		{"Missing speed", "1000", "XOF", "", errs.ErrInvalidSpeed},
		{"Unknown speed", "1000", "XOF", "EXPRESS", errs.ErrInvalidSpeed},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q, err := engine.GetQuote(ctx, tc.amount, tc.currency, tc.speed)
			assert.Nil(t, q)
			assert.ErrorIs(t, err, tc.expected)
			assert.ErrorIs(t, err, errs.ErrValidation)
		})
	}
}

func TestEngine_MinimumEnforcedOnlyInProduction(t *testing.T) {
	settings := DefaultSettings()
	settings.MinAmountXOF = dec("100000")

	engine, _ := newTestEngine(t, unconfiguredPartner(t, "instant"), unconfiguredPartner(t, "standard"), settings)
	q, err := engine.GetQuote(context.Background(), "50000", "XOF", "INSTANT")
	require.NoError(t, err)
	assert.NotNil(t, q)

	settings.Environment = ProductionEnvironment
	engine, _ = newTestEngine(t, unconfiguredPartner(t, "instant"), unconfiguredPartner(t, "standard"), settings)
	q, err = engine.GetQuote(context.Background(), "50000", "XOF", "INSTANT")
	assert.Nil(t, q)
	assert.ErrorIs(t, err, errs.ErrBelowMinimum)
}

func TestEngine_InstantScenarioWithFallback(t *testing.T) {
	engine, _ := newTestEngine(t, unconfiguredPartner(t, "instant"), unconfiguredPartner(t, "standard"), DefaultSettings())

	q, err := engine.GetQuote(context.Background(), "50000", "XOF", "INSTANT")
	require.NoError(t, err)

	assert.Equal(t, "76.22", q.TargetFiatOut.String())
	assert.Equal(t, "54871", q.CommercialAmount.String())
	assert.True(t, q.CommercialAmount.GreaterThan(dec("50000")))
	assert.Equal(t, "823", q.GatewayFee.String())
	assert.Equal(t, "55694", q.TotalToPay.String())
	assert.True(t, q.NetPayout().IsPositive())
	assert.Equal(t, "78.5066", q.StablecoinAmount.String())
	assert.Equal(t, "1502", q.PartnerFee.String())
	assert.Equal(t, "3372", q.PlatformFee.String())
	assert.Equal(t, entity.PricingFallback, q.PricingSource)
	assert.Equal(t, entity.RoutingInstantSepaInstant, q.RoutingStrategy)
	assert.False(t, q.Corrected)

	// the stablecoin converts back to the net payout at the provider rate
	back := q.StablecoinAmount.Mul(q.ProviderRate)
	assert.True(t, back.Sub(q.NetPayout()).Abs().LessThanOrEqual(entity.Cent), "converted back %s", back)
}

func TestEngine_UsesSeededRate(t *testing.T) {
	engine, store := newTestEngine(t, unconfiguredPartner(t, "instant"), unconfiguredPartner(t, "standard"), DefaultSettings())
	store.SeedRate(entity.PairEURXOFInstant, "700", "2")

	q, err := engine.GetQuote(context.Background(), "50000", "XOF", "INSTANT")
	require.NoError(t, err)
	assert.Equal(t, "714", q.RateCharged.String())
	assert.Equal(t, "54421", q.CommercialAmount.String())
}

func TestEngine_EURInput(t *testing.T) {
	engine, _ := newTestEngine(t, unconfiguredPartner(t, "instant"), unconfiguredPartner(t, "standard"), DefaultSettings())

	q, err := engine.GetQuote(context.Background(), "100", "eur", "standard")
	require.NoError(t, err)
	assert.Equal(t, "100", q.TargetFiatOut.String())
	assert.Equal(t, "69000", q.CommercialAmount.String())
	assert.Equal(t, entity.RoutingStandardSepa, q.RoutingStrategy)
}

func TestEngine_FeesNeverNegative(t *testing.T) {
	engine, _ := newTestEngine(t, unconfiguredPartner(t, "instant"), unconfiguredPartner(t, "standard"), DefaultSettings())
	ctx := context.Background()

	for _, amount := range []string{"10", "7", "100", "999", "31000", "50000", "250000", "1000000.5"} {
		for _, speed := range []string{"INSTANT", "STANDARD"} {
			q, err := engine.GetQuote(ctx, amount, "XOF", speed)
			require.NoError(t, err, "amount %s speed %s", amount, speed)

			assert.True(t, q.TotalToPay.GreaterThanOrEqual(dec(amount)), "total %s below base %s", q.TotalToPay, amount)
			assert.False(t, q.GatewayFee.IsNegative())
			assert.False(t, q.PartnerFee.IsNegative())
			assert.False(t, q.PlatformFee.IsNegative())
			assert.True(t, q.StablecoinAmount.IsPositive())
		}
	}
}

func TestEngine_PartnerFailureFallsBack(t *testing.T) {
	instant := configuredPartner(t, "instant")
	instant.EXPECT().
		ReverseSellQuote(mock.Anything, decEq("76.22"), provider.MethodSepaInstant).
		Return(nil, errors.New("connection refused")).
		Once()

	engine, _ := newTestEngine(t, instant, unconfiguredPartner(t, "standard"), DefaultSettings())

	q, err := engine.GetQuote(context.Background(), "50000", "XOF", "INSTANT")
	require.NoError(t, err)
	assert.Equal(t, entity.PricingFallback, q.PricingSource)
	assert.Equal(t, "78.5066", q.StablecoinAmount.String())
}

func TestEngine_InstantSlippageCorrection(t *testing.T) {
	instant := configuredPartner(t, "instant")
	instant.EXPECT().
		ReverseSellQuote(mock.Anything, decEq("76.22"), provider.MethodSepaInstant).
		Return(&provider.PartnerQuote{CryptoAmount: dec("80"), FiatAmount: dec("76.22"), FeeFiat: dec("1.5"), Rate: dec("0.97")}, nil).
		Once()
	instant.EXPECT().
		ForwardSellQuote(mock.Anything, decEq("80"), provider.MethodSepaInstant).
		Return(&provider.PartnerQuote{CryptoAmount: dec("80"), FiatAmount: dec("75"), FeeFiat: dec("1.5"), Rate: dec("0.97")}, nil).
		Once()
	instant.EXPECT().
		ForwardSellQuote(mock.Anything, decEq("81.301334"), provider.MethodSepaInstant).
		Return(&provider.PartnerQuote{CryptoAmount: dec("81.301334"), FiatAmount: dec("76.22"), FeeFiat: dec("1.6"), Rate: dec("0.97")}, nil).
		Once()

	engine, _ := newTestEngine(t, instant, unconfiguredPartner(t, "standard"), DefaultSettings())

	q, err := engine.GetQuote(context.Background(), "50000", "XOF", "INSTANT")
	require.NoError(t, err)
	assert.True(t, q.Corrected)
	assert.Equal(t, entity.PricingPartner, q.PricingSource)
	// 80 * 76.22 / 75, rounded up to token precision
	assert.Equal(t, "81.301334", q.StablecoinAmount.String())
	// partner fee follows the last verification: 1.6 EUR at the official rate
	assert.Equal(t, "1050", q.PartnerFee.String())
}

func TestEngine_NoCorrectionWithinOneCent(t *testing.T) {
	instant := configuredPartner(t, "instant")
	instant.EXPECT().
		ReverseSellQuote(mock.Anything, mock.Anything, provider.MethodSepaInstant).
		Return(&provider.PartnerQuote{CryptoAmount: dec("80"), FiatAmount: dec("76.22"), FeeFiat: dec("1.5"), Rate: dec("0.97")}, nil).
		Once()
	instant.EXPECT().
		ForwardSellQuote(mock.Anything, decEq("80"), provider.MethodSepaInstant).
		Return(&provider.PartnerQuote{CryptoAmount: dec("80"), FiatAmount: dec("76.21"), FeeFiat: dec("1.5"), Rate: dec("0.97")}, nil).
		Once()

	engine, _ := newTestEngine(t, instant, unconfiguredPartner(t, "standard"), DefaultSettings())

	q, err := engine.GetQuote(context.Background(), "50000", "XOF", "INSTANT")
	require.NoError(t, err)
	assert.False(t, q.Corrected)
	assert.Equal(t, "80", q.StablecoinAmount.String())
}

func TestEngine_CorrectionNeverLeavesPayoutShort(t *testing.T) {
	// partner sells at a fixed rate minus a flat fee, and its reverse quote undershoots by epsilon
	rate := dec("0.985")
	fee := dec("0.9")
	yield := func(crypto decimal.Decimal) decimal.Decimal {
		return crypto.Mul(rate).Sub(fee)
	}

	for _, epsilon := range []string{"0.02", "0.5", "3", "12.75"} {
		t.Run(epsilon, func(t *testing.T) {
			instant := configuredPartner(t, "instant")
			instant.EXPECT().
				ReverseSellQuote(mock.Anything, mock.Anything, provider.MethodSepaInstant).
				RunAndReturn(func(_ context.Context, fiat decimal.Decimal, _ string) (*provider.PartnerQuote, error) {
					short := fiat.Sub(dec(epsilon))
					return &provider.PartnerQuote{CryptoAmount: short.Add(fee).Div(rate), FiatAmount: short, FeeFiat: fee, Rate: rate}, nil
				}).
				Once()

			var yields []decimal.Decimal
			instant.EXPECT().
				ForwardSellQuote(mock.Anything, mock.Anything, provider.MethodSepaInstant).
				RunAndReturn(func(_ context.Context, crypto decimal.Decimal, _ string) (*provider.PartnerQuote, error) {
					y := yield(crypto)
					yields = append(yields, y)
					return &provider.PartnerQuote{CryptoAmount: crypto, FiatAmount: y, FeeFiat: fee, Rate: rate}, nil
				}).
				Times(2)

			engine, _ := newTestEngine(t, instant, unconfiguredPartner(t, "standard"), DefaultSettings())
			q, err := engine.GetQuote(context.Background(), "50000", "XOF", "INSTANT")
			require.NoError(t, err)
			require.True(t, q.Corrected)
			require.Len(t, yields, 2)

			assert.True(t, q.TargetFiatOut.Sub(yields[1]).LessThanOrEqual(entity.Cent),
				"second verification yielded %s for target %s", yields[1], q.TargetFiatOut)
		})
	}
}

func TestEngine_StandardTierRouting(t *testing.T) {
	t.Run("Below partner minimum routes to instant partner slow rail", func(t *testing.T) {
		standard := unconfiguredPartner(t, "standard")
		engine, _ := newTestEngine(t, unconfiguredPartner(t, "instant"), standard, DefaultSettings())

		q, err := engine.GetQuote(context.Background(), "40", "EUR", "STANDARD")
		require.NoError(t, err)
		assert.Equal(t, entity.RoutingInstantSepa, q.RoutingStrategy)
		assert.Equal(t, provider.MethodSepa, q.PaymentMethod)
		assert.True(t, q.PartnerFee.IsPositive())
		assert.Equal(t, "525", q.PartnerFee.String())
		assert.True(t, q.StablecoinAmount.IsPositive())
		assert.True(t, q.TotalToPay.GreaterThan(q.CommercialAmount))
	})

	t.Run("Small standard transfer asks the instant partner without verification", func(t *testing.T) {
		instant := configuredPartner(t, "instant")
		instant.EXPECT().
			ReverseSellQuote(mock.Anything, decEq("40"), provider.MethodSepa).
			Return(&provider.PartnerQuote{CryptoAmount: dec("41.2"), FiatAmount: dec("40"), FeeFiat: dec("1"), Rate: dec("0.995")}, nil).
			Once()

		engine, _ := newTestEngine(t, instant, unconfiguredPartner(t, "standard"), DefaultSettings())

		q, err := engine.GetQuote(context.Background(), "40", "EUR", "STANDARD")
		require.NoError(t, err)
		assert.Equal(t, entity.PricingPartner, q.PricingSource)
		assert.Equal(t, "656", q.PartnerFee.String())
	})

	t.Run("At partner minimum partner fee is zero", func(t *testing.T) {
		standard := configuredPartner(t, "standard")
		standard.EXPECT().
			ReverseSellQuote(mock.Anything, decEq("47.5"), provider.MethodSepa).
			Return(&provider.PartnerQuote{CryptoAmount: dec("48.6"), FiatAmount: dec("47.5"), FeeFiat: dec("0.5"), Rate: dec("0.98")}, nil).
			Once()

		engine, _ := newTestEngine(t, unconfiguredPartner(t, "instant"), standard, DefaultSettings())

		q, err := engine.GetQuote(context.Background(), "47.5", "EUR", "STANDARD")
		require.NoError(t, err)
		assert.Equal(t, entity.RoutingStandardSepa, q.RoutingStrategy)
		assert.True(t, q.PartnerFee.IsZero())
		assert.Equal(t, "48.6", q.StablecoinAmount.String())
	})
}
