package bridge

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/remitbridge/internal/domain/entity"
	errs "github.com/amirhossein-jamali/remitbridge/internal/domain/error"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/core"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/provider"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/usecase/notify"
)

// Orchestrator moves stablecoin from the treasury to receivers, or leaves it in escrow until the
// receiver has a wallet
type Orchestrator struct {
	uow      persistence.UnitOfWork
	chain    provider.TreasuryChain
	queue    *SignerQueue
	runner   core.TaskRunner
	notifier *notify.Dispatcher
	settings Settings
	timer    core.TimeProvider
	metrics  core.Metrics
	logger   core.Logger
}

var _ usecase.BridgeUseCase = (*Orchestrator)(nil)

// NewOrchestrator creates a bridge orchestrator
func NewOrchestrator(
	uow persistence.UnitOfWork,
	chain provider.TreasuryChain,
	queue *SignerQueue,
	runner core.TaskRunner,
	notifier *notify.Dispatcher,
	settings Settings,
	timer core.TimeProvider,
	metrics core.Metrics,
	logger core.Logger,
) *Orchestrator {
	return &Orchestrator{
		uow:      uow,
		chain:    chain,
		queue:    queue,
		runner:   runner,
		notifier: notifier,
		settings: settings,
		timer:    timer,
		metrics:  metrics,
		logger:   logger,
	}
}

// Bridge runs one attempt for the transaction. It is a no-op unless the transaction is exactly in
// PAYIN_SUCCESS, and leaves it there when the receiver has no wallet yet.
func (o *Orchestrator) Bridge(ctx context.Context, transactionID uint64) (*entity.Transaction, error) {
	txRepo := o.uow.GetTransactionRepository(ctx)

	tx, err := txRepo.GetByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	if tx.Status != entity.StatusPayinSuccess {
		o.logger.Debug("Bridge skipped, transaction not awaiting bridge", map[string]any{
			"transaction_id": tx.ID,
			"status":         tx.Status,
		})
		return tx, nil
	}

	receiver, err := o.uow.GetReceiverRepository(ctx).GetByID(ctx, tx.ReceiverID)
	if err != nil {
		return tx, fmt.Errorf("failed to load receiver %d: %w", tx.ReceiverID, err)
	}

	if !receiver.HasWallet() {
		o.logger.Info("Receiver has no wallet, holding funds in escrow", map[string]any{
			"transaction_id": tx.ID,
			"reference_code": tx.ReferenceCode,
			"receiver_id":    receiver.ID,
		})
		o.metrics.BridgeAttempt("escrow", 0)
		return tx, nil
	}

	// the status write is the per-transaction mutex; losing it means another attempt owns the bridge
	acquired, err := txRepo.CompareAndSetStatus(ctx, tx.ID, entity.StatusChange{
		From: []entity.TransactionStatus{entity.StatusPayinSuccess},
		To:   entity.StatusBridgeProcessing,
	})
	if err != nil {
		return tx, err
	}
	if !acquired {
		o.logger.Info("Bridge already in progress elsewhere", map[string]any{
			"transaction_id": tx.ID,
		})
		return txRepo.GetByID(ctx, tx.ID)
	}
	o.metrics.StatusChanged(string(entity.StatusPayinSuccess), string(entity.StatusBridgeProcessing))

	started := o.timer.Now()
	run := newAttempt(o, tx, receiver.WalletAddress)
	runErr := o.queue.Do(ctx, o.chain.SignerKey(), run.run)
	if runErr != nil && run.phase == PhasePreflight && !isBridgeError(runErr) {
		// the queue rejected the job before it started
		runErr = errs.NewBridgeError(tx.ID, string(PhasePreflight), runErr)
	}

	return o.finish(context.WithoutCancel(ctx), tx, receiver, run, runErr, o.timer.Since(started))
}

// finish records the attempt outcome. It runs on a context that survives cancellation so a timed
// out attempt is still marked failed.
func (o *Orchestrator) finish(
	ctx context.Context,
	tx *entity.Transaction,
	receiver *entity.Receiver,
	run *attempt,
	runErr error,
	elapsed core.Duration,
) (*entity.Transaction, error) {
	txRepo := o.uow.GetTransactionRepository(ctx)

	if runErr != nil {
		fields := map[string]any{
			"transaction_id": tx.ID,
			"reference_code": tx.ReferenceCode,
			"phase":          run.phase,
			"gas_tx_hash":    run.gasTxHash,
			"token_tx_hash":  run.tokenTxHash,
			"error":          runErr.Error(),
		}
		o.logger.Error("Bridge attempt failed", fields)
		o.metrics.BridgeAttempt("failed", elapsed)

		moved, err := txRepo.CompareAndSetStatus(ctx, tx.ID, run.outcome(entity.StatusBridgeFailed, runErr))
		if err != nil {
			o.logger.Error("Failed to record bridge failure", map[string]any{
				"transaction_id": tx.ID,
				"error":          err.Error(),
			})
		} else if moved {
			o.metrics.StatusChanged(string(entity.StatusBridgeProcessing), string(entity.StatusBridgeFailed))
		}

		updated, err := txRepo.GetByID(ctx, tx.ID)
		if err != nil {
			o.logger.Error("Failed to reload transaction after bridge failure", map[string]any{
				"transaction_id": tx.ID,
				"error":          err.Error(),
			})
			return tx, runErr
		}
		return updated, runErr
	}

	moved, err := txRepo.CompareAndSetStatus(ctx, tx.ID, run.outcome(entity.StatusWaitingUserOfframp, nil))
	if err != nil {
		return tx, fmt.Errorf("bridge broadcast succeeded but status write failed: %w", err)
	}
	if moved {
		o.metrics.StatusChanged(string(entity.StatusBridgeProcessing), string(entity.StatusWaitingUserOfframp))
	}
	o.metrics.BridgeAttempt("success", elapsed)

	o.logger.Info("Bridge completed", map[string]any{
		"transaction_id": tx.ID,
		"reference_code": tx.ReferenceCode,
		"gas_tx_hash":    run.gasTxHash,
		"token_tx_hash":  run.tokenTxHash,
		"gas_fee_paid":   run.gasFeePaid.String(),
		"elapsed_ms":     elapsed.Std().Milliseconds(),
	})

	if receiver.UserID != nil {
		o.notifier.Send(provider.Notification{
			UserID:        *receiver.UserID,
			Event:         provider.EventFundsAvailable,
			Title:         "Funds available",
			Body:          fmt.Sprintf("%s EUR is ready to withdraw", tx.ExpectedFiatOut.StringFixed(2)),
			ReferenceCode: tx.ReferenceCode,
		})
	}

	return txRepo.GetByID(ctx, tx.ID)
}

// Dispatch runs Bridge in the background. Failures are recorded on the transaction and logged.
func (o *Orchestrator) Dispatch(transactionID uint64, trigger string) {
	o.runner.Go("bridge:"+trigger, func(ctx context.Context) {
		ctx, cancel := o.timer.WithTimeout(ctx, o.settings.AttemptTimeout)
		defer cancel()

		if _, err := o.Bridge(ctx, transactionID); err != nil {
			o.logger.Warn("Background bridge attempt failed", map[string]any{
				"transaction_id": transactionID,
				"trigger":        trigger,
				"error":          err.Error(),
			})
		}
	})
}

// ReleaseEscrow dispatches every transaction held in escrow for the receiver
func (o *Orchestrator) ReleaseEscrow(ctx context.Context, receiverID uint64) (int, error) {
	held, err := o.uow.GetTransactionRepository(ctx).List(ctx, entity.TransactionFilter{
		ReceiverID: receiverID,
		Statuses:   []entity.TransactionStatus{entity.StatusPayinSuccess},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to list escrow for receiver %d: %w", receiverID, err)
	}

	for _, tx := range held {
		o.Dispatch(tx.ID, "escrow_release")
	}

	if len(held) > 0 {
		o.logger.Info("Escrow released", map[string]any{
			"receiver_id": receiverID,
			"count":       len(held),
		})
	}
	return len(held), nil
}

func isBridgeError(err error) bool {
	var bridgeErr *errs.BridgeError
	return errors.As(err, &bridgeErr)
}
