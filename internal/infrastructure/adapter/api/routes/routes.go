package routes

import (
	coreport "github.com/amirhossein-jamali/remitbridge/internal/domain/port/core"
	"github.com/amirhossein-jamali/remitbridge/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/remitbridge/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers groups every HTTP handler of the API
type Handlers struct {
	Quote       *handler.QuoteHandler
	Transaction *handler.TransactionHandler
	Claim       *handler.ClaimHandler
	Receiver    *handler.ReceiverHandler
	Webhook     *handler.WebhookHandler
	Admin       *handler.AdminHandler
	Health      *handler.HealthHandler
}

// Options carries the settings the route guards need
type Options struct {
	PrincipalHeader string
	AdminSecret     string
	RateLimiter     *middleware.LimiterStore // nil disables rate limiting
	Gatherer        prometheus.Gatherer      // nil hides /metrics
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, h Handlers, opts Options, logger coreport.Logger) {
	router.GET("/healthz", h.Health.Health)
	if opts.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	}

	api := router.Group("/api/v1")
	if opts.RateLimiter != nil {
		api.Use(middleware.RateLimit(opts.RateLimiter, logger))
	}

	// Public routes
	api.GET("/quotes", h.Quote.GetQuote)
	api.GET("/claims/:reference", h.Claim.Preview)

	// Routes acting on behalf of the authenticated user
	authed := api.Group("", middleware.Principal(opts.PrincipalHeader, logger))
	{
		authed.POST("/transactions", h.Transaction.Create)
		authed.GET("/transactions/sent", h.Transaction.ListSent)
		authed.GET("/transactions/received", h.Transaction.ListReceived)
		authed.GET("/transactions/reference/:reference", h.Transaction.GetByReference)
		authed.GET("/transactions/:id", h.Transaction.Get)
		authed.POST("/transactions/:id/payment", h.Transaction.InitiatePayment)
		authed.POST("/transactions/:id/offramp", h.Transaction.StartOfframp)

		authed.POST("/claims/:reference", h.Claim.Claim)

		authed.POST("/receivers", h.Receiver.Register)
		authed.PUT("/receivers/wallet", h.Receiver.AttachWallet)
	}

	// Provider callbacks, authenticated by body signature
	webhooks := router.Group("/webhooks")
	{
		webhooks.POST("/payment", h.Webhook.Payment)
		webhooks.POST("/offramp", h.Webhook.Offramp)
	}

	admin := router.Group("/admin", middleware.AdminAuth(opts.AdminSecret, logger))
	{
		admin.POST("/transactions/:id/retry-bridge", h.Admin.RetryBridge)
		admin.POST("/transactions/:id/force-status", h.Admin.ForceStatus)
		admin.POST("/transactions/:id/refund", h.Admin.Refund)
		admin.PATCH("/rates/:pair", h.Admin.UpdateRate)
		admin.POST("/notifications/broadcast", h.Admin.Broadcast)
		admin.DELETE("/users/:id", h.Admin.DeleteUser)
		admin.GET("/liquidity", h.Admin.Liquidity)
		admin.GET("/analytics", h.Admin.Analytics)
		admin.GET("/audit-logs", h.Admin.AuditLogs)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, recorder middleware.HTTPRecorder, allowedOrigins []string, principalHeader string) {
	// Apply middlewares in the correct order
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	if recorder != nil {
		router.Use(middleware.Metrics(recorder))
	}
	router.Use(middleware.CORS(allowedOrigins, principalHeader, middleware.AdminSecretHeader, middleware.AdminActorHeader))
}
