package transaction

import (
	"context"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/remitbridge/internal/domain/entity"
	errs "github.com/amirhossein-jamali/remitbridge/internal/domain/error"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/provider"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/usecase"
)

var offrampSettled = []entity.TransactionStatus{
	entity.StatusCompleted,
	entity.StatusOfframpFailed,
	entity.StatusRefunded,
}

// StartOfframp is the receiver asking the settlement partner to pay out the bridged stablecoin
func (s *Service) StartOfframp(ctx context.Context, userID, transactionID uint64) (*entity.Transaction, error) {
	if userID == 0 {
		return nil, errs.ErrUnauthorized
	}
	repo := s.uow.GetTransactionRepository(ctx)

	tx, err := repo.GetByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	owns, err := s.ownsReceiver(ctx, userID, tx.ReceiverID)
	if err != nil {
		return nil, err
	}
	if !owns {
		return nil, errs.ErrTransactionNotFound
	}

	moved, err := repo.CompareAndSetStatus(ctx, tx.ID, entity.StatusChange{
		From: []entity.TransactionStatus{entity.StatusWaitingUserOfframp},
		To:   entity.StatusOfframpProcessing,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start off-ramp: %w", err)
	}
	if !moved {
		return nil, errs.NewTransactionError(tx.ID, tx.ReferenceCode, string(tx.Status), "start off-ramp",
			errs.NewInvalidTransitionError(string(tx.Status), string(entity.StatusOfframpProcessing)))
	}
	s.metrics.StatusChanged(string(entity.StatusWaitingUserOfframp), string(entity.StatusOfframpProcessing))

	s.logger.Info("Off-ramp started", map[string]any{
		"transaction_id":   tx.ID,
		"reference_code":   tx.ReferenceCode,
		"routing_strategy": tx.RoutingStrategy,
	})

	return repo.GetByID(ctx, tx.ID)
}

// HandleOfframpNotification applies the settlement partner's payout callback. Like payment
// webhooks, every outcome is reported as a result value.
func (s *Service) HandleOfframpNotification(ctx context.Context, n usecase.OfframpNotification) usecase.WebhookResult {
	result, err := s.handleOfframp(ctx, n)
	if err != nil {
		fields := map[string]any{
			"reference_code": n.ReferenceCode,
			"is_success":     n.IsSuccess,
			"error":          err.Error(),
		}
		if errs.IsNotFoundError(err) || errs.IsValidationError(err) || errs.IsInvalidStateError(err) {
			s.logger.Warn("Rejected off-ramp notification", fields)
		} else {
			s.logger.Error("Failed to process off-ramp notification", fields)
		}
		result = usecase.ResultError
	}

	s.metrics.WebhookProcessed("offramp", string(result))
	return result
}

func (s *Service) handleOfframp(ctx context.Context, n usecase.OfframpNotification) (usecase.WebhookResult, error) {
	reference := strings.ToUpper(strings.TrimSpace(n.ReferenceCode))
	if reference == "" {
		return usecase.ResultError, fmt.Errorf("%w: missing reference code", errs.ErrValidation)
	}

	tx, err := s.uow.GetTransactionRepository(ctx).GetByReference(ctx, reference)
	if err != nil {
		return usecase.ResultError, err
	}

	if tx.Status.In(offrampSettled...) {
		return usecase.ResultAlreadyProcessed, nil
	}
	if tx.Status != entity.StatusOfframpProcessing {
		return usecase.ResultError, errs.NewInvalidTransitionError(string(tx.Status), "off-ramp settlement")
	}

	if !n.IsSuccess {
		return s.failOfframp(ctx, tx, n.Reason)
	}
	return s.completeOfframp(ctx, tx)
}

func (s *Service) completeOfframp(ctx context.Context, tx *entity.Transaction) (usecase.WebhookResult, error) {
	moved := false
	err := s.withinTx(ctx, func(txCtx context.Context) error {
		var err error
		moved, err = s.uow.GetTransactionRepository(txCtx).CompareAndSetStatus(txCtx, tx.ID, entity.StatusChange{
			From: []entity.TransactionStatus{entity.StatusOfframpProcessing},
			To:   entity.StatusCompleted,
		})
		if err != nil || !moved {
			return err
		}

		period := entity.VolumePeriod(s.timer.Now())
		return s.uow.GetUserRepository(txCtx).AddVolume(txCtx, tx.SenderID, period, tx.FiatAmountIn)
	})
	if err != nil {
		return usecase.ResultError, fmt.Errorf("failed to complete off-ramp: %w", err)
	}
	if !moved {
		return usecase.ResultAlreadyProcessed, nil
	}
	s.metrics.StatusChanged(string(entity.StatusOfframpProcessing), string(entity.StatusCompleted))

	s.logger.Info("Transfer completed", map[string]any{
		"transaction_id": tx.ID,
		"reference_code": tx.ReferenceCode,
		"fiat_out":       tx.ExpectedFiatOut.String(),
	})

	s.notifier.Send(provider.Notification{
		UserID:        tx.SenderID,
		Event:         provider.EventTransferComplete,
		Title:         "Transfer completed",
		Body:          fmt.Sprintf("%s EUR has been paid out", tx.ExpectedFiatOut.StringFixed(2)),
		ReferenceCode: tx.ReferenceCode,
	})

	return usecase.ResultSuccess, nil
}

func (s *Service) failOfframp(ctx context.Context, tx *entity.Transaction, reason string) (usecase.WebhookResult, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = "payout rejected by settlement partner"
	}
	reason = entity.TruncateReason(reason, entity.MaxFailureReasonLength)

	moved, err := s.uow.GetTransactionRepository(ctx).CompareAndSetStatus(ctx, tx.ID, entity.StatusChange{
		From:          []entity.TransactionStatus{entity.StatusOfframpProcessing},
		To:            entity.StatusOfframpFailed,
		FailureReason: &reason,
	})
	if err != nil {
		return usecase.ResultError, fmt.Errorf("failed to record off-ramp failure: %w", err)
	}
	if !moved {
		return usecase.ResultAlreadyProcessed, nil
	}
	s.metrics.StatusChanged(string(entity.StatusOfframpProcessing), string(entity.StatusOfframpFailed))

	s.logger.Warn("Off-ramp failed", map[string]any{
		"transaction_id": tx.ID,
		"reference_code": tx.ReferenceCode,
		"reason":         reason,
	})
	return usecase.ResultFailedProcessed, nil
}
