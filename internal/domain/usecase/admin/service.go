package admin

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/remitbridge/internal/domain/entity"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/core"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/provider"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/usecase"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Settings holds the operations parameters
type Settings struct {
	// ProviderTimeout bounds each gateway, chain and notifier call
	ProviderTimeout core.Duration
}

// DefaultSettings returns the reference operations parameters
func DefaultSettings() Settings {
	return Settings{ProviderTimeout: 10 * core.Second}
}

// Service implements the recovery and operations surface. Every action it performs is
// appended to the audit log.
type Service struct {
	uow      persistence.UnitOfWork
	rates    persistence.RateRepository
	bridge   usecase.BridgeUseCase
	gateway  provider.PaymentGateway
	chain    provider.TreasuryChain
	notifier provider.Notifier
	settings Settings
	timer    core.TimeProvider
	metrics  core.Metrics
	logger   core.Logger
}

var _ usecase.AdminUseCase = (*Service)(nil)

// NewService creates the operations service
func NewService(
	uow persistence.UnitOfWork,
	rates persistence.RateRepository,
	bridge usecase.BridgeUseCase,
	gateway provider.PaymentGateway,
	chain provider.TreasuryChain,
	notifier provider.Notifier,
	settings Settings,
	timer core.TimeProvider,
	metrics core.Metrics,
	logger core.Logger,
) *Service {
	if settings.ProviderTimeout <= 0 {
		settings.ProviderTimeout = DefaultSettings().ProviderTimeout
	}

	return &Service{
		uow:      uow,
		rates:    rates,
		bridge:   bridge,
		gateway:  gateway,
		chain:    chain,
		notifier: notifier,
		settings: settings,
		timer:    timer,
		metrics:  metrics,
		logger:   logger,
	}
}

// audit appends an entry; ctx may carry an open unit of work
func (s *Service) audit(ctx context.Context, actor string, action entity.AuditAction, format string, args ...any) error {
	entry := &entity.AuditLogEntry{
		Actor:     actor,
		Action:    action,
		Detail:    fmt.Sprintf(format, args...),
		CreatedAt: s.timer.Now(),
	}
	if err := s.uow.GetAuditLogRepository(ctx).Append(ctx, entry); err != nil {
		return fmt.Errorf("failed to append audit entry: %w", err)
	}

	s.logger.Info("Admin action", map[string]any{
		"actor":  actor,
		"action": action,
		"detail": entry.Detail,
	})
	return nil
}

// auditBestEffort records an action whose effect already happened and cannot be undone
func (s *Service) auditBestEffort(ctx context.Context, actor string, action entity.AuditAction, format string, args ...any) {
	if err := s.audit(ctx, actor, action, format, args...); err != nil {
		s.logger.Error("Audit entry lost", map[string]any{
			"actor":  actor,
			"action": action,
			"detail": fmt.Sprintf(format, args...),
			"error":  err.Error(),
		})
	}
}

// withinTx runs fn inside a unit of work, rolling back on error
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
