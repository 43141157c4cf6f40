package main

import (
	"testing"
	"time"

	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/core"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/usecase/bridge"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/usecase/quote"
	"github.com/amirhossein-jamali/remitbridge/internal/infrastructure/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *config.Config {
	return &config.Config{
		Environment: config.Development,
		Server: config.ServerConfig{
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 20 * time.Second,
			PrincipalHeader: "X-User-ID",
			RateLimit:       10,
			RateBurst:       20,
		},
		Database: config.DatabaseConfig{
			Host:         "localhost",
			Port:         "5432",
			Username:     "remitbridge",
			Password:     "remitbridge",
			Database:     "remitbridge",
			QueryTimeout: 5 * time.Second,
		},
		Logger: config.LoggerConfig{Level: "info"},
		Partners: config.PartnersConfig{
			Instant:  config.PartnerConfig{BaseURL: "https://instant.example"},
			Standard: config.PartnerConfig{BaseURL: "https://standard.example"},
		},
		Gateway: config.GatewayConfig{BaseURL: "https://gateway.example"},
		Chain: config.ChainConfig{
			RPCURL:             "https://rpc.example",
			TreasuryKey:        "abc",
			StablecoinAddress:  "0x41E94Eb019C0762f9Bfcf9Fb1E58725BfB0e7582",
			StablecoinDecimals: 6,
		},
		Bridge: config.BridgeConfig{SignerLockTTL: 30 * time.Second},
	}
}

func TestValidateConfig(t *testing.T) {
	t.Run("complete configuration passes", func(t *testing.T) {
		assert.NoError(t, validateConfig(validConfig()))
	})

	t.Run("missing keys are listed", func(t *testing.T) {
		cfg := validConfig()
		cfg.Chain.RPCURL = ""
		cfg.Bridge.SignerLockTTL = 0

		err := validateConfig(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "chain.rpcUrl")
		assert.Contains(t, err.Error(), "bridge.signerLockTtl")
	})

	t.Run("production names the environment variable", func(t *testing.T) {
		cfg := validConfig()
		cfg.Environment = config.Production
		cfg.Database.Password = ""

		err := validateConfig(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "RB_DB_PASSWORD")
	})

	t.Run("unknown environment is rejected", func(t *testing.T) {
		cfg := validConfig()
		cfg.Environment = "staging"

		err := validateConfig(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid environment value")
	})

	t.Run("rate limit needs a burst", func(t *testing.T) {
		cfg := validConfig()
		cfg.Server.RateBurst = 0

		err := validateConfig(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "server.rateBurst")
	})
}

func TestBuildSettings_UsesDefaultsForUnsetValues(t *testing.T) {
	settings, err := buildSettings(validConfig())
	require.NoError(t, err)

	qd := quote.DefaultSettings()
	assert.True(t, settings.quote.OfficialRate.Equal(qd.OfficialRate))
	assert.True(t, settings.quote.GatewayFeePercent.Equal(qd.GatewayFeePercent))
	assert.Equal(t, qd.PartnerTimeout, settings.quote.PartnerTimeout)
	assert.Equal(t, config.Development, settings.quote.Environment)

	bd := bridge.DefaultSettings()
	assert.True(t, settings.bridge.GasSponsorship.Equal(bd.GasSponsorship))
	assert.Equal(t, bd.SweepBatchSize, settings.bridge.SweepBatchSize)
}

func TestBuildSettings_ParsesConfiguredValues(t *testing.T) {
	cfg := validConfig()
	cfg.Quote.OfficialRate = "655.957"
	cfg.Quote.MinAmountXOF = " 2500 "
	cfg.Quote.PartnerTimeout = 3 * time.Second
	cfg.Bridge.GasSponsorship = "0.001"
	cfg.Bridge.AcquisitionRateXOF = "660"
	cfg.Bridge.SweepBatchSize = 50
	cfg.Transaction.QuoteTolerancePercent = "2"

	settings, err := buildSettings(cfg)
	require.NoError(t, err)

	assert.True(t, settings.quote.OfficialRate.Equal(decimal.RequireFromString("655.957")))
	assert.True(t, settings.quote.MinAmountXOF.Equal(decimal.NewFromInt(2500)))
	assert.Equal(t, 3*core.Second, settings.quote.PartnerTimeout)
	assert.True(t, settings.bridge.GasSponsorship.Equal(decimal.RequireFromString("0.001")))
	assert.Equal(t, 50, settings.bridge.SweepBatchSize)
	assert.True(t, settings.transaction.AcquisitionRateXOF.Equal(decimal.NewFromInt(660)))
	assert.True(t, settings.transaction.QuoteTolerancePercent.Equal(decimal.NewFromInt(2)))
}

func TestBuildSettings_RejectsBadDecimals(t *testing.T) {
	cfg := validConfig()
	cfg.Quote.GatewayFeePercent = "1,5"
	cfg.Bridge.GasSponsorship = "lots"

	_, err := buildSettings(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quote.gatewayFeePercent")
	assert.Contains(t, err.Error(), "bridge.gasSponsorship")

	cfg = validConfig()
	cfg.Quote.OfficialRate = "0"
	_, err = buildSettings(cfg)
	assert.Error(t, err)
}
