package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/core"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/provider"
	adminUseCase "github.com/amirhossein-jamali/remitbridge/internal/domain/usecase/admin"
	bridgeUseCase "github.com/amirhossein-jamali/remitbridge/internal/domain/usecase/bridge"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/usecase/notify"
	paymentUseCase "github.com/amirhossein-jamali/remitbridge/internal/domain/usecase/payment"
	quoteUseCase "github.com/amirhossein-jamali/remitbridge/internal/domain/usecase/quote"
	transactionUseCase "github.com/amirhossein-jamali/remitbridge/internal/domain/usecase/transaction"

	"github.com/amirhossein-jamali/remitbridge/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/remitbridge/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/remitbridge/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/remitbridge/internal/infrastructure/adapter/chain"
	"github.com/amirhossein-jamali/remitbridge/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/remitbridge/internal/infrastructure/adapter/gateway"
	"github.com/amirhossein-jamali/remitbridge/internal/infrastructure/adapter/lock"
	"github.com/amirhossein-jamali/remitbridge/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/remitbridge/internal/infrastructure/adapter/metrics"
	"github.com/amirhossein-jamali/remitbridge/internal/infrastructure/adapter/notifier"
	"github.com/amirhossein-jamali/remitbridge/internal/infrastructure/adapter/partner"
	"github.com/amirhossein-jamali/remitbridge/internal/infrastructure/adapter/repository"
	timeProvider "github.com/amirhossein-jamali/remitbridge/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/remitbridge/internal/infrastructure/adapter/worker"
	"github.com/amirhossein-jamali/remitbridge/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
)

const (
	maxBackgroundTasks = 64
	limiterIdleTTL     = 10 * time.Minute
	healthCheckTimeout = 2 * time.Second
	redisLockPrefix    = "remitbridge:signer:"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate essential configuration
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	settings, err := buildSettings(cfg)
	if err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(logger.Options{
		Production: cfg.Environment == config.Production,
		Format:     cfg.Logger.Format,
		Output:     cfg.Logger.Output,
		CallerInfo: cfg.Logger.CallerInfo,
	})
	defer func() { _ = appLogger.Flush() }()

	if err := run(cfg, settings, appLogger); err != nil {
		appLogger.Error("Service stopped with error", map[string]any{
			"error": err.Error(),
		})
		_ = appLogger.Flush()
		os.Exit(1)
	}
}

// run wires every component, serves until SIGINT or SIGTERM and tears down in reverse order
func run(cfg *config.Config, settings *domainSettings, appLogger core.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tp := timeProvider.NewRealTimeProvider()

	// Metrics registry shared by the use cases, breakers, HTTP layer and pool collector
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	promMetrics := metrics.NewPrometheusMetrics(registry)

	// Connect to the database and bring the schema up to date
	dbManager := database.NewManager(database.NewConfig(cfg.Database, cfg.Logger.Level), appLogger, tp)
	if _, err := dbManager.Connect(ctx); err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer func() { _ = dbManager.Close() }()

	if err := dbManager.Migrate(ctx); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	registry.MustRegister(dbManager.PoolCollector(metrics.Namespace))

	// Initialize repositories
	uow := dbManager.CreateUnitOfWork()
	rateRepo := repository.NewRateRepository(dbManager.DB(), tp, appLogger)

	signerLocks, closeLocks, err := newSignerLocks(ctx, cfg, dbManager, tp, appLogger)
	if err != nil {
		return err
	}
	defer closeLocks()

	// External providers
	observer := promMetrics.BreakerState
	instantPartner := partner.NewClient(partnerConfig(cfg.Partners.Instant, "instant"), appLogger, observer)
	standardPartner := partner.NewClient(partnerConfig(cfg.Partners.Standard, "standard"), appLogger, observer)
	paymentGateway := gateway.NewClient(gateway.Config{
		BaseURL:          cfg.Gateway.BaseURL,
		APIKey:           cfg.Gateway.APIKey,
		APISecret:        cfg.Gateway.APISecret,
		CallbackURL:      cfg.Gateway.CallbackURL,
		Timeout:          cfg.Gateway.Timeout,
		BreakerFailures:  cfg.Gateway.BreakerFailures,
		BreakerOpenAfter: cfg.Gateway.BreakerOpenAfter,
	}, appLogger, observer)

	treasury, ethClient, err := chain.Dial(ctx, cfg.Chain.RPCURL, chain.Config{
		ChainID:            cfg.Chain.ChainID,
		PrivateKey:         cfg.Chain.TreasuryKey,
		StablecoinAddress:  cfg.Chain.StablecoinAddress,
		StablecoinDecimals: cfg.Chain.StablecoinDecimals,
		ReceiptPoll:        cfg.Chain.ReceiptPoll,
		CallTimeout:        cfg.Chain.CallTimeout,
	}, appLogger)
	if err != nil {
		return fmt.Errorf("connect chain: %w", err)
	}
	defer ethClient.Close()
	appLogger.Info("Treasury ready", map[string]any{
		"address":  treasury.Address().Hex(),
		"chain_id": cfg.Chain.ChainID,
	})

	userNotifier, closeNotifier := newNotifier(cfg, tp, appLogger)
	defer closeNotifier()

	// Background work
	runner := worker.NewTaskRunner(appLogger, maxBackgroundTasks)
	signerQueue := bridgeUseCase.NewSignerQueue(appLogger, signerLocks, cfg.Bridge.SignerLockTTL)
	dispatcher := notify.NewDispatcher(userNotifier, runner, tp, core.Duration(cfg.Transaction.NotifyTimeout), appLogger)

	// Initialize use cases
	quoteEngine := quoteUseCase.NewEngine(rateRepo, instantPartner, standardPartner, settings.quote, tp, promMetrics, appLogger)
	orchestrator := bridgeUseCase.NewOrchestrator(uow, treasury, signerQueue, runner, dispatcher, settings.bridge, tp, promMetrics, appLogger)
	transactionService := transactionUseCase.NewService(
		uow,
		quoteEngine,
		orchestrator,
		paymentGateway,
		treasury,
		dispatcher,
		settings.transaction,
		tp,
		promMetrics,
		appLogger,
	)
	paymentIntake := paymentUseCase.NewIntake(uow, orchestrator, dispatcher, promMetrics, appLogger)
	adminService := adminUseCase.NewService(
		uow,
		rateRepo,
		orchestrator,
		paymentGateway,
		treasury,
		userNotifier,
		settings.admin,
		tp,
		promMetrics,
		appLogger,
	)

	sweepCtx, stopSweeper := context.WithCancel(context.Background())
	sweeper := bridgeUseCase.NewEscrowSweeper(uow, orchestrator, settings.bridge, tp, appLogger)
	sweeperDone := make(chan struct{})
	go func() {
		defer close(sweeperDone)
		sweeper.Run(sweepCtx)
	}()

	// Initialize API handlers
	handlers := routes.Handlers{
		Quote:       handler.NewQuoteHandler(quoteEngine, appLogger),
		Transaction: handler.NewTransactionHandler(transactionService, appLogger),
		Claim:       handler.NewClaimHandler(transactionService, appLogger),
		Receiver:    handler.NewReceiverHandler(transactionService, appLogger),
		Webhook: handler.NewWebhookHandler(paymentIntake, transactionService, handler.WebhookSecrets{
			Gateway: cfg.Gateway.WebhookSecret,
			Partner: cfg.Partners.WebhookSecret,
		}, appLogger),
		Admin: handler.NewAdminHandler(adminService, appLogger),
		Health: handler.NewHealthHandler(map[string]handler.Pinger{
			"database": dbManager.Monitor().Ping,
		}, healthCheckTimeout),
	}

	var limiter *middleware.LimiterStore
	if cfg.Server.RateLimit > 0 {
		limiter = middleware.NewLimiterStore(cfg.Server.RateLimit, cfg.Server.RateBurst, limiterIdleTTL)
		limiter.StartJanitor(sweepCtx, limiterIdleTTL)
	}

	// Initialize Gin router
	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, promMetrics, cfg.Server.AllowedOrigins, cfg.Server.PrincipalHeader)
	routes.SetupRoutes(router, handlers, routes.Options{
		PrincipalHeader: cfg.Server.PrincipalHeader,
		AdminSecret:     cfg.Admin.Secret,
		RateLimiter:     limiter,
		Gatherer:        registry,
	}, appLogger)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr": server.Addr,
			"env":  cfg.Environment,
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		appLogger.Info("Shutting down server...", nil)
	case err := <-serveErr:
		runErr = fmt.Errorf("http server: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Stop taking requests first, then drain background work before closing providers
	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	stopSweeper()
	<-sweeperDone

	appLogger.Info("Draining background tasks...", map[string]any{
		"running": runner.Running(),
	})
	runner.Shutdown()
	signerQueue.Shutdown()

	appLogger.Info("Server exited gracefully", nil)
	return runErr
}

func partnerConfig(p config.PartnerConfig, tier string) partner.Config {
	name := p.Name
	if name == "" {
		name = tier
	}
	return partner.Config{
		Name:             name,
		BaseURL:          p.BaseURL,
		APIKey:           p.APIKey,
		APISecret:        p.APISecret,
		Asset:            p.Asset,
		Timeout:          p.Timeout,
		BreakerFailures:  p.BreakerFailures,
		BreakerOpenAfter: p.BreakerOpenAfter,
	}
}

// newSignerLocks uses Redis when configured so several replicas share one signer lease,
// and falls back to the database lease table otherwise.
func newSignerLocks(
	ctx context.Context,
	cfg *config.Config,
	dbManager *database.Manager,
	tp core.TimeProvider,
	appLogger core.Logger,
) (persistence.LockRepository, func(), error) {
	if cfg.Redis.Addr == "" {
		appLogger.Info("Using database signer locks", nil)
		return repository.NewSignerLockRepository(dbManager.DB(), tp, appLogger), func() {}, nil
	}

	client, err := lock.NewRedisClient(ctx, lock.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return nil, nil, err
	}
	appLogger.Info("Using redis signer locks", map[string]any{
		"addr": cfg.Redis.Addr,
	})
	return lock.NewRedisLockRepository(client, appLogger, redisLockPrefix), closeRedis(client, appLogger), nil
}

func closeRedis(client *redis.Client, appLogger core.Logger) func() {
	return func() {
		if err := client.Close(); err != nil {
			appLogger.Warn("Failed to close redis client", map[string]any{
				"error": err.Error(),
			})
		}
	}
}

// newNotifier publishes to Kafka when brokers are configured and only logs otherwise
func newNotifier(cfg *config.Config, tp core.TimeProvider, appLogger core.Logger) (provider.Notifier, func()) {
	if len(cfg.Kafka.Brokers) == 0 {
		appLogger.Info("No kafka brokers configured, notifications are logged only", nil)
		return notifier.NewLogNotifier(appLogger), func() {}
	}

	kafkaNotifier := notifier.NewKafkaNotifier(notifier.NewKafkaWriter(cfg.Kafka.Brokers, cfg.Kafka.Topic), cfg.Kafka.Topic, tp, appLogger)
	return kafkaNotifier, func() {
		if err := kafkaNotifier.Close(); err != nil {
			appLogger.Warn("Failed to close kafka writer", map[string]any{
				"error": err.Error(),
			})
		}
	}
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	// Validate server configuration
	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}

	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}

	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}

	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	if cfg.Server.PrincipalHeader == "" {
		missingConfigs = append(missingConfigs, "server.principalHeader")
	}

	// Validate database configuration
	required := []struct {
		key, value, env string
	}{
		{"database.host", cfg.Database.Host, "RB_DB_HOST"},
		{"database.port", cfg.Database.Port, "RB_DB_PORT"},
		{"database.username", cfg.Database.Username, "RB_DB_USERNAME"},
		{"database.password", cfg.Database.Password, "RB_DB_PASSWORD"},
		{"database.database", cfg.Database.Database, "RB_DB_NAME"},
		{"chain.rpcUrl", cfg.Chain.RPCURL, "RB_CHAIN_RPC_URL"},
		{"chain.treasuryKey", cfg.Chain.TreasuryKey, "RB_TREASURY_PRIVATE_KEY"},
		{"chain.stablecoinAddress", cfg.Chain.StablecoinAddress, "RB_STABLECOIN_ADDRESS"},
		{"gateway.baseUrl", cfg.Gateway.BaseURL, "RB_GATEWAY_BASE_URL"},
		{"partners.instant.baseUrl", cfg.Partners.Instant.BaseURL, "RB_INSTANT_PARTNER_BASE_URL"},
		{"partners.standard.baseUrl", cfg.Partners.Standard.BaseURL, "RB_STANDARD_PARTNER_BASE_URL"},
	}
	for _, r := range required {
		if r.value != "" {
			continue
		}
		if cfg.Environment == config.Production {
			missingConfigs = append(missingConfigs, fmt.Sprintf("%s (or %s environment variable)", r.key, r.env))
		} else {
			missingConfigs = append(missingConfigs, r.key)
		}
	}

	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	if cfg.Chain.StablecoinDecimals <= 0 {
		missingConfigs = append(missingConfigs, "chain.stablecoinDecimals")
	}

	if cfg.Bridge.SignerLockTTL == 0 {
		missingConfigs = append(missingConfigs, "bridge.signerLockTtl")
	}

	if cfg.Server.RateLimit > 0 && cfg.Server.RateBurst <= 0 {
		missingConfigs = append(missingConfigs, "server.rateBurst")
	}

	if len(cfg.Kafka.Brokers) > 0 && cfg.Kafka.Topic == "" {
		missingConfigs = append(missingConfigs, "kafka.topic")
	}

	// Environment should be set with a valid value
	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	// Logger configuration
	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	// Return error with list of missing configurations
	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	// If we're in production, do additional validation for sensitive settings
	if cfg.Environment == config.Production {
		var warnings []string

		sslMode := strings.ToLower(cfg.Database.SSLMode)
		if sslMode != "require" && sslMode != "verify-ca" && sslMode != "verify-full" {
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}

		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}

		if cfg.Server.WriteTimeout < 5*time.Second {
			warnings = append(warnings, "server.writeTimeout is too low for production")
		}

		if cfg.Gateway.WebhookSecret == "" || cfg.Partners.WebhookSecret == "" {
			warnings = append(warnings, "webhook secrets are empty, every callback will be rejected")
		}

		if cfg.Admin.Secret == "" {
			warnings = append(warnings, "admin.secret is empty, the operations surface is disabled")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential security issues in production configuration: %v", warnings)
		}
	}

	return nil
}
