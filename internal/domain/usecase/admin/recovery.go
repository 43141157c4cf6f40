package admin

import (
	"context"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/remitbridge/internal/domain/entity"
	errs "github.com/amirhossein-jamali/remitbridge/internal/domain/error"
)

// RetryBridge puts a BRIDGE_FAILED transaction back to PAYIN_SUCCESS and re-runs the bridge
// in the background
func (s *Service) RetryBridge(ctx context.Context, actor string, transactionID uint64) (*entity.Transaction, error) {
	repo := s.uow.GetTransactionRepository(ctx)

	tx, err := repo.GetByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if tx.Status != entity.StatusBridgeFailed {
		return nil, errs.NewTransactionError(tx.ID, tx.ReferenceCode, string(tx.Status), "retry bridge",
			fmt.Errorf("%w: only %s transactions can be retried", errs.ErrInvalidState, entity.StatusBridgeFailed))
	}

	cleared := ""
	moved, err := repo.CompareAndSetStatus(ctx, tx.ID, entity.StatusChange{
		From:          []entity.TransactionStatus{entity.StatusBridgeFailed},
		To:            entity.StatusPayinSuccess,
		FailureReason: &cleared,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reset transaction: %w", err)
	}
	if !moved {
		return nil, errs.NewTransactionError(tx.ID, tx.ReferenceCode, string(tx.Status), "retry bridge",
			fmt.Errorf("%w: status changed concurrently", errs.ErrInvalidState))
	}
	s.metrics.StatusChanged(string(entity.StatusBridgeFailed), string(entity.StatusPayinSuccess))

	s.auditBestEffort(ctx, actor, entity.AuditRetryBridge,
		"transaction %d (%s) reset for bridge retry, previous failure: %s", tx.ID, tx.ReferenceCode, tx.FailureReason)

	s.bridge.Dispatch(tx.ID, "admin_retry")

	return repo.GetByID(ctx, tx.ID)
}

// ForceStatus overrides the status of a transaction without checking transition legality
func (s *Service) ForceStatus(
	ctx context.Context,
	actor string,
	transactionID uint64,
	status, reason string,
) (*entity.Transaction, error) {
	target, ok := entity.ParseStatus(strings.ToUpper(strings.TrimSpace(status)))
	if !ok {
		return nil, fmt.Errorf("%w: unknown status %q", errs.ErrValidation, status)
	}
	reason = entity.TruncateReason(strings.TrimSpace(reason), entity.MaxFailureReasonLength)

	repo := s.uow.GetTransactionRepository(ctx)
	tx, err := repo.GetByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	if err := repo.ForceStatus(ctx, tx.ID, target, reason); err != nil {
		return nil, fmt.Errorf("failed to force status: %w", err)
	}
	s.metrics.StatusChanged(string(tx.Status), string(target))

	s.logger.Warn("Transaction status forced", map[string]any{
		"actor":          actor,
		"transaction_id": tx.ID,
		"reference_code": tx.ReferenceCode,
		"from":           tx.Status,
		"to":             target,
		"reason":         reason,
	})
	s.auditBestEffort(ctx, actor, entity.AuditForceStatus,
		"transaction %d (%s) forced from %s to %s: %s", tx.ID, tx.ReferenceCode, tx.Status, target, reason)

	return repo.GetByID(ctx, tx.ID)
}

// Refund returns the sender's payment through the gateway. The transaction is only marked
// REFUNDED once the gateway accepted the refund.
func (s *Service) Refund(ctx context.Context, actor string, transactionID uint64) (*entity.Transaction, error) {
	repo := s.uow.GetTransactionRepository(ctx)

	tx, err := repo.GetByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	if !tx.HasGatewayPayment() {
		return nil, errs.NewTransactionError(tx.ID, tx.ReferenceCode, string(tx.Status), "refund", errs.ErrMissingGatewayID)
	}
	if !tx.Status.In(entity.RefundableStatuses...) {
		return nil, errs.NewTransactionError(tx.ID, tx.ReferenceCode, string(tx.Status), "refund",
			errs.NewInvalidTransitionError(string(tx.Status), string(entity.StatusRefunded)))
	}

	amount := tx.ConfirmedAmount
	if !amount.IsPositive() {
		amount = tx.TotalToPay
	}

	callCtx, cancel := s.timer.WithTimeout(ctx, s.settings.ProviderTimeout)
	err = s.gateway.Refund(callCtx, tx.GatewayTransactionID, amount)
	cancel()
	s.metrics.ProviderCall("gateway", "refund", outcome(err))
	if err != nil {
		s.auditBestEffort(ctx, actor, entity.AuditRefund,
			"refund of transaction %d (%s) rejected by gateway: %v", tx.ID, tx.ReferenceCode, err)
		return nil, errs.NewUpstreamError("gateway", "refund", err)
	}

	moved, err := repo.CompareAndSetStatus(ctx, tx.ID, entity.StatusChange{
		From: entity.RefundableStatuses,
		To:   entity.StatusRefunded,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to mark transaction refunded: %w", err)
	}
	if !moved {
		// the money went back but the row moved on; an operator has to reconcile it
		s.logger.Error("Refund accepted but transaction status changed concurrently", map[string]any{
			"transaction_id":         tx.ID,
			"reference_code":         tx.ReferenceCode,
			"gateway_transaction_id": tx.GatewayTransactionID,
		})
		s.auditBestEffort(ctx, actor, entity.AuditRefund,
			"refund of transaction %d (%s) accepted by gateway, status changed concurrently", tx.ID, tx.ReferenceCode)
		return nil, errs.NewTransactionError(tx.ID, tx.ReferenceCode, string(tx.Status), "refund",
			fmt.Errorf("%w: status changed during refund", errs.ErrInvalidState))
	}
	s.metrics.StatusChanged(string(tx.Status), string(entity.StatusRefunded))

	s.auditBestEffort(ctx, actor, entity.AuditRefund,
		"transaction %d (%s) refunded %s XOF from %s", tx.ID, tx.ReferenceCode, amount.String(), tx.Status)

	return repo.GetByID(ctx, tx.ID)
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
