package bridge

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/remitbridge/internal/domain/entity"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/core"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/persistence"
)

// SweepResult summarises one escrow reconciliation pass
type SweepResult struct {
	Inspected  int
	Dispatched int
	Stale      int
}

// EscrowSweeper periodically re-dispatches escrowed transactions whose receiver now has a wallet
// and flags escrow that has been waiting too long. It covers wallets attached through paths that
// did not trigger the release, and attempts lost to a restart.
type EscrowSweeper struct {
	uow      persistence.UnitOfWork
	bridge   *Orchestrator
	settings Settings
	timer    core.TimeProvider
	logger   core.Logger
}

// NewEscrowSweeper creates an escrow sweeper
func NewEscrowSweeper(
	uow persistence.UnitOfWork,
	bridge *Orchestrator,
	settings Settings,
	timer core.TimeProvider,
	logger core.Logger,
) *EscrowSweeper {
	return &EscrowSweeper{
		uow:      uow,
		bridge:   bridge,
		settings: settings,
		timer:    timer,
		logger:   logger,
	}
}

// Run sweeps every EscrowSweepInterval until ctx is done
func (s *EscrowSweeper) Run(ctx context.Context) {
	if s.settings.EscrowSweepInterval <= 0 {
		s.logger.Info("Escrow sweeper disabled", nil)
		return
	}

	ticker := time.NewTicker(s.settings.EscrowSweepInterval.Std())
	defer ticker.Stop()

	s.logger.Info("Escrow sweeper started", map[string]any{
		"interval": s.settings.EscrowSweepInterval.Std().String(),
	})

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Escrow sweeper stopped", nil)
			return
		case <-ticker.C:
			if _, err := s.SweepOnce(ctx); err != nil {
				s.logger.Error("Escrow sweep failed", map[string]any{
					"error": err.Error(),
				})
			}
		}
	}
}

// SweepOnce re-dispatches up to SweepBatchSize escrowed transactions whose receiver has a wallet,
// then reports up to SweepBatchSize walletless ones held longer than EscrowStaleAfter
func (s *EscrowSweeper) SweepOnce(ctx context.Context) (*SweepResult, error) {
	txRepo := s.uow.GetTransactionRepository(ctx)
	withWallet := true
	releasable, err := txRepo.List(ctx, entity.TransactionFilter{
		Statuses:          []entity.TransactionStatus{entity.StatusPayinSuccess},
		ReceiverHasWallet: &withWallet,
		Limit:             s.settings.SweepBatchSize,
	})
	if err != nil {
		return nil, err
	}

	result := &SweepResult{Inspected: len(releasable)}
	for _, tx := range releasable {
		s.bridge.Dispatch(tx.ID, "escrow_sweep")
		result.Dispatched++
	}

	if s.settings.EscrowStaleAfter > 0 {
		withoutWallet := false
		stale, err := txRepo.List(ctx, entity.TransactionFilter{
			Statuses:          []entity.TransactionStatus{entity.StatusPayinSuccess},
			ReceiverHasWallet: &withoutWallet,
			UpdatedBefore:     s.timer.Now().Add(-s.settings.EscrowStaleAfter.Std()),
			Limit:             s.settings.SweepBatchSize,
		})
		if err != nil {
			return nil, err
		}

		result.Inspected += len(stale)
		for _, tx := range stale {
			result.Stale++
			s.logger.Warn("Escrow waiting for receiver wallet", map[string]any{
				"transaction_id": tx.ID,
				"reference_code": tx.ReferenceCode,
				"receiver_id":    tx.ReceiverID,
				"held_since":     tx.UpdatedAt,
				"stablecoin":     tx.StablecoinAmount.String(),
			})
		}
	}

	if result.Dispatched > 0 || result.Stale > 0 {
		s.logger.Info("Escrow sweep finished", map[string]any{
			"inspected":  result.Inspected,
			"dispatched": result.Dispatched,
			"stale":      result.Stale,
		})
	}
	return result, nil
}
