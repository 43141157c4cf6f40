package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string            `mapstructure:"environment"`
	Server      ServerConfig      `mapstructure:"server"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Logger      LoggerConfig      `mapstructure:"logger"`
	Quote       QuoteConfig       `mapstructure:"quote"`
	Partners    PartnersConfig    `mapstructure:"partners"`
	Gateway     GatewayConfig     `mapstructure:"gateway"`
	Chain       ChainConfig       `mapstructure:"chain"`
	Bridge      BridgeConfig      `mapstructure:"bridge"`
	Transaction TransactionConfig `mapstructure:"transaction"`
	Redis       RedisConfig       `mapstructure:"redis"`
	Kafka       KafkaConfig       `mapstructure:"kafka"`
	Admin       AdminConfig       `mapstructure:"admin"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
	AllowedOrigins    []string      `mapstructure:"allowedOrigins"`
	// PrincipalHeader carries the user id resolved by the identity layer in front of the API
	PrincipalHeader string `mapstructure:"principalHeader"`
	// RateLimit is the sustained per-client request rate on the public routes; zero disables it
	RateLimit float64 `mapstructure:"rateLimit"`
	RateBurst int     `mapstructure:"rateBurst"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	TimeFormat string `mapstructure:"timeFormat"`
	CallerInfo bool   `mapstructure:"callerInfo"`
}

// QuoteConfig contains the pricing parameters. Monetary values are decimal strings.
type QuoteConfig struct {
	OfficialRate           string        `mapstructure:"officialRate"`
	DefaultInstantRate     string        `mapstructure:"defaultInstantRate"`
	DefaultStandardRate    string        `mapstructure:"defaultStandardRate"`
	GatewayFeePercent      string        `mapstructure:"gatewayFeePercent"`
	InstantFallbackMarkup  string        `mapstructure:"instantFallbackMarkup"`
	StandardFallbackMarkup string        `mapstructure:"standardFallbackMarkup"`
	StandardPartnerMinimum string        `mapstructure:"standardPartnerMinimum"`
	MinAmountXOF           string        `mapstructure:"minAmountXof"`
	PartnerTimeout         time.Duration `mapstructure:"partnerTimeout"` // seconds
}

// PartnersConfig holds one entry per settlement partner tier
type PartnersConfig struct {
	Instant       PartnerConfig `mapstructure:"instant"`
	Standard      PartnerConfig `mapstructure:"standard"`
	WebhookSecret string        `mapstructure:"webhookSecret"` // signs off-ramp callbacks
}

// PartnerConfig contains the credentials and resilience settings of a settlement partner
type PartnerConfig struct {
	Name             string        `mapstructure:"name"`
	BaseURL          string        `mapstructure:"baseUrl"`
	APIKey           string        `mapstructure:"apiKey"`
	APISecret        string        `mapstructure:"apiSecret"`
	Asset            string        `mapstructure:"asset"`
	Timeout          time.Duration `mapstructure:"timeout"`          // seconds
	BreakerFailures  uint32        `mapstructure:"breakerFailures"`  // consecutive failures before opening
	BreakerOpenAfter time.Duration `mapstructure:"breakerOpenAfter"` // seconds
}

// GatewayConfig contains the mobile-money gateway settings
type GatewayConfig struct {
	BaseURL          string        `mapstructure:"baseUrl"`
	APIKey           string        `mapstructure:"apiKey"`
	APISecret        string        `mapstructure:"apiSecret"`
	WebhookSecret    string        `mapstructure:"webhookSecret"`
	CallbackURL      string        `mapstructure:"callbackUrl"`
	Timeout          time.Duration `mapstructure:"timeout"` // seconds
	BreakerFailures  uint32        `mapstructure:"breakerFailures"`
	BreakerOpenAfter time.Duration `mapstructure:"breakerOpenAfter"` // seconds
}

// ChainConfig contains the EVM treasury settings
type ChainConfig struct {
	RPCURL             string        `mapstructure:"rpcUrl"`
	ChainID            int64         `mapstructure:"chainId"`
	TreasuryKey        string        `mapstructure:"treasuryKey"`
	StablecoinAddress  string        `mapstructure:"stablecoinAddress"`
	StablecoinDecimals int32         `mapstructure:"stablecoinDecimals"`
	ReceiptPoll        time.Duration `mapstructure:"receiptPoll"` // milliseconds
	CallTimeout        time.Duration `mapstructure:"callTimeout"` // seconds
}

// BridgeConfig contains the bridge orchestrator settings
type BridgeConfig struct {
	GasSponsorship      string        `mapstructure:"gasSponsorship"`
	AcquisitionRateXOF  string        `mapstructure:"acquisitionRateXof"`
	AttemptTimeout      time.Duration `mapstructure:"attemptTimeout"`      // seconds
	ReceiptTimeout      time.Duration `mapstructure:"receiptTimeout"`      // seconds
	EscrowSweepInterval time.Duration `mapstructure:"escrowSweepInterval"` // seconds
	EscrowStaleAfter    time.Duration `mapstructure:"escrowStaleAfter"`    // hours
	SweepBatchSize      int           `mapstructure:"sweepBatchSize"`
	SignerLockTTL       time.Duration `mapstructure:"signerLockTtl"` // seconds
}

// TransactionConfig contains transaction lifecycle settings
type TransactionConfig struct {
	QuoteTolerancePercent string        `mapstructure:"quoteTolerancePercent"`
	NotifyTimeout         time.Duration `mapstructure:"notifyTimeout"` // seconds
}

// RedisConfig contains the distributed signer lock settings. An empty address disables it.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// KafkaConfig contains the notification event publisher settings. No brokers means
// notifications are only logged.
type KafkaConfig struct {
	Brokers []string `mapstructure:"brokers"`
	Topic   string   `mapstructure:"topic"`
}

// AdminConfig contains the shared secret protecting the operations surface
type AdminConfig struct {
	Secret string `mapstructure:"secret"`
}
