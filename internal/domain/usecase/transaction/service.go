package transaction

import (
	"context"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/core"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/provider"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/usecase/notify"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	referencePrefix    = "RB-"
	referenceLength    = 8
	referenceAttempts  = 3
	defaultListLimit   = 20
	maxListLimit       = 100
	defaultGatewayWait = 15 * core.Second
)

// Settings holds the lifecycle parameters. It is built once from configuration at startup.
type Settings struct {
	// QuoteTolerancePercent is how far the client's expected payout may drift from a fresh quote
	QuoteTolerancePercent decimal.Decimal

	// AcquisitionRateXOF is what the treasury pays in XOF per stablecoin unit
	AcquisitionRateXOF decimal.Decimal

	GatewayTimeout core.Duration
}

// DefaultSettings returns the reference lifecycle parameters
func DefaultSettings() Settings {
	return Settings{
		QuoteTolerancePercent: decimal.NewFromInt(1),
		AcquisitionRateXOF:    decimal.RequireFromString("659.24"),
		GatewayTimeout:        defaultGatewayWait,
	}
}

// Service is the transaction lifecycle manager. It owns creation, reads, claims, receiver
// profiles and the off-ramp leg; the bridge leg is delegated to the bridge use case.
type Service struct {
	uow       persistence.UnitOfWork
	quotes    usecase.QuoteUseCase
	bridge    usecase.BridgeUseCase
	gateway   provider.PaymentGateway
	notifier  *notify.Dispatcher
	validator *RequestValidator
	settings  Settings
	timer     core.TimeProvider
	metrics   core.Metrics
	logger    core.Logger

	newReference func() string
}

var _ usecase.TransactionUseCase = (*Service)(nil)

// NewService creates the transaction lifecycle manager
func NewService(
	uow persistence.UnitOfWork,
	quotes usecase.QuoteUseCase,
	bridge usecase.BridgeUseCase,
	gateway provider.PaymentGateway,
	chain provider.TreasuryChain,
	notifier *notify.Dispatcher,
	settings Settings,
	timer core.TimeProvider,
	metrics core.Metrics,
	logger core.Logger,
) *Service {
	if settings.GatewayTimeout <= 0 {
		settings.GatewayTimeout = defaultGatewayWait
	}

	return &Service{
		uow:          uow,
		quotes:       quotes,
		bridge:       bridge,
		gateway:      gateway,
		notifier:     notifier,
		validator:    NewRequestValidator(chain.ValidAddress),
		settings:     settings,
		timer:        timer,
		metrics:      metrics,
		logger:       logger,
		newReference: newReferenceCode,
	}
}

// newReferenceCode returns a short human-readable code like RB-7K3M9QXA
func newReferenceCode() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return referencePrefix + strings.ToUpper(raw[:referenceLength])
}

// withinTx runs fn inside a unit of work, rolling back on error or panic
func (s *Service) withinTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
			s.logger.Error("Failed to rollback transaction", map[string]any{"error": rbErr.Error()})
		}
	}()

	if err := fn(txCtx); err != nil {
		return err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	committed = true
	return nil
}

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
