package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix is prepended to every environment variable read by the loader
const EnvPrefix = "RB"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
	"../../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	// Load environment variables from .env file first
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	return decode(v, env)
}

// decode applies environment overrides and unmarshals the merged settings
func decode(v *viper.Viper, env string) (*Config, error) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env

	// Convert time.Duration fields from their raw values
	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile attempts to load environment variables from .env files
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return nil
			} else {
				lastError = err
			}
		}
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}

	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 30)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 20)   // seconds
	v.SetDefault("server.allowedOrigins", []string{"*"})
	v.SetDefault("server.principalHeader", "X-User-ID")
	v.SetDefault("server.rateLimit", 10)
	v.SetDefault("server.rateBurst", 20)

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 50)
	v.SetDefault("database.maxIdleConns", 25)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1) // seconds

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.callerInfo", true)

	v.SetDefault("quote.officialRate", "655.96")
	v.SetDefault("quote.defaultInstantRate", "719.9")
	v.SetDefault("quote.defaultStandardRate", "690")
	v.SetDefault("quote.gatewayFeePercent", "1.5")
	v.SetDefault("quote.instantFallbackMarkup", "0.03")
	v.SetDefault("quote.standardFallbackMarkup", "0.02")
	v.SetDefault("quote.standardPartnerMinimum", "47.5")
	v.SetDefault("quote.minAmountXof", "5000")
	v.SetDefault("quote.partnerTimeout", 5) // seconds

	v.SetDefault("partners.instant.name", "instant")
	v.SetDefault("partners.instant.asset", "USDC")
	v.SetDefault("partners.instant.timeout", 5)
	v.SetDefault("partners.instant.breakerFailures", 5)
	v.SetDefault("partners.instant.breakerOpenAfter", 30)
	v.SetDefault("partners.standard.name", "standard")
	v.SetDefault("partners.standard.asset", "USDC")
	v.SetDefault("partners.standard.timeout", 5)
	v.SetDefault("partners.standard.breakerFailures", 5)
	v.SetDefault("partners.standard.breakerOpenAfter", 30)

	v.SetDefault("gateway.timeout", 15)
	v.SetDefault("gateway.breakerFailures", 5)
	v.SetDefault("gateway.breakerOpenAfter", 30)

	v.SetDefault("chain.chainId", 137)
	v.SetDefault("chain.stablecoinDecimals", 6)
	v.SetDefault("chain.receiptPoll", 1500) // milliseconds
	v.SetDefault("chain.callTimeout", 10)   // seconds

	v.SetDefault("bridge.gasSponsorship", "0.0005")
	v.SetDefault("bridge.acquisitionRateXof", "659.24")
	v.SetDefault("bridge.attemptTimeout", 300)      // seconds
	v.SetDefault("bridge.receiptTimeout", 120)      // seconds
	v.SetDefault("bridge.escrowSweepInterval", 600) // seconds
	v.SetDefault("bridge.escrowStaleAfter", 72)     // hours
	v.SetDefault("bridge.sweepBatchSize", 200)
	v.SetDefault("bridge.signerLockTtl", 180) // seconds

	v.SetDefault("transaction.quoteTolerancePercent", "1")
	v.SetDefault("transaction.notifyTimeout", 5) // seconds

	v.SetDefault("redis.db", 0)
	v.SetDefault("kafka.topic", "remitbridge.notifications")
}

// getEnvironment determines the environment to use based on RB_ENV environment variable
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// envBindings maps environment variables that do not follow the key replacer
// naming onto their config keys
var envBindings = map[string]string{
	"RB_DB_HOST":                   "database.host",
	"RB_DB_PORT":                   "database.port",
	"RB_DB_USERNAME":               "database.username",
	"RB_DB_PASSWORD":               "database.password",
	"RB_DB_NAME":                   "database.database",
	"RB_DB_SSL_MODE":               "database.sslMode",
	"RB_SERVER_HOST":               "server.host",
	"RB_SERVER_PORT":               "server.port",
	"RB_LOGGER_LEVEL":              "logger.level",
	"RB_INSTANT_PARTNER_BASE_URL":  "partners.instant.baseUrl",
	"RB_INSTANT_PARTNER_API_KEY":   "partners.instant.apiKey",
	"RB_INSTANT_PARTNER_SECRET":    "partners.instant.apiSecret",
	"RB_STANDARD_PARTNER_BASE_URL": "partners.standard.baseUrl",
	"RB_STANDARD_PARTNER_API_KEY":  "partners.standard.apiKey",
	"RB_STANDARD_PARTNER_SECRET":   "partners.standard.apiSecret",
	"RB_GATEWAY_BASE_URL":          "gateway.baseUrl",
	"RB_GATEWAY_API_KEY":           "gateway.apiKey",
	"RB_GATEWAY_API_SECRET":        "gateway.apiSecret",
	"RB_GATEWAY_WEBHOOK_SECRET":    "gateway.webhookSecret",
	"RB_PARTNER_WEBHOOK_SECRET":    "partners.webhookSecret",
	"RB_CHAIN_RPC_URL":             "chain.rpcUrl",
	"RB_TREASURY_PRIVATE_KEY":      "chain.treasuryKey",
	"RB_STABLECOIN_ADDRESS":        "chain.stablecoinAddress",
	"RB_REDIS_ADDR":                "redis.addr",
	"RB_REDIS_PASSWORD":            "redis.password",
	"RB_ADMIN_SECRET":              "admin.secret",
}

// processEnvOverrides ensures environment variables override config values.
// Secrets are never expected in the YAML files.
func processEnvOverrides(v *viper.Viper) {
	for name, key := range envBindings {
		if value := os.Getenv(name); value != "" {
			v.Set(key, value)
		}
	}

	if brokers := os.Getenv("RB_KAFKA_BROKERS"); brokers != "" {
		v.Set("kafka.brokers", splitList(brokers))
	}
	if origins := os.Getenv("RB_ALLOWED_ORIGINS"); origins != "" {
		v.Set("server.allowedOrigins", splitList(origins))
	}

	if maxOpenConns := getEnvInt("RB_DB_MAX_OPEN_CONNS", 0); maxOpenConns > 0 {
		v.Set("database.maxOpenConns", maxOpenConns)
	}
	if maxIdleConns := getEnvInt("RB_DB_MAX_IDLE_CONNS", 0); maxIdleConns > 0 {
		v.Set("database.maxIdleConns", maxIdleConns)
	}
	if queryTimeout := getEnvInt("RB_DB_QUERY_TIMEOUT_SECONDS", 0); queryTimeout > 0 {
		v.Set("database.queryTimeout", queryTimeout)
	}
	if chainID := getEnvInt("RB_CHAIN_ID", 0); chainID > 0 {
		v.Set("chain.chainId", chainID)
	}
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Helper function to get environment variable as int
func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

// processDurations converts time.Duration fields from their raw values to actual durations
func processDurations(config *Config) {
	seconds := func(d *time.Duration) { *d *= time.Second }

	seconds(&config.Server.ReadTimeout)
	seconds(&config.Server.WriteTimeout)
	seconds(&config.Server.IdleTimeout)
	seconds(&config.Server.ReadHeaderTimeout)
	seconds(&config.Server.ShutdownTimeout)

	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.ConnMaxIdleTime = time.Duration(config.Database.ConnMaxIdleTime) * time.Minute
	seconds(&config.Database.QueryTimeout)
	seconds(&config.Database.RetryDelay)

	seconds(&config.Quote.PartnerTimeout)
	for _, p := range []*PartnerConfig{&config.Partners.Instant, &config.Partners.Standard} {
		seconds(&p.Timeout)
		seconds(&p.BreakerOpenAfter)
	}
	seconds(&config.Gateway.Timeout)
	seconds(&config.Gateway.BreakerOpenAfter)

	config.Chain.ReceiptPoll = time.Duration(config.Chain.ReceiptPoll) * time.Millisecond
	seconds(&config.Chain.CallTimeout)

	seconds(&config.Bridge.AttemptTimeout)
	seconds(&config.Bridge.ReceiptTimeout)
	seconds(&config.Bridge.EscrowSweepInterval)
	config.Bridge.EscrowStaleAfter = time.Duration(config.Bridge.EscrowStaleAfter) * time.Hour
	seconds(&config.Bridge.SignerLockTTL)

	seconds(&config.Transaction.NotifyTimeout)
}
