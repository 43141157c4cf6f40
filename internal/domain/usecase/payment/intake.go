package payment

import (
	"context"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/remitbridge/internal/domain/entity"
	errs "github.com/amirhossein-jamali/remitbridge/internal/domain/error"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/core"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/provider"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/usecase/notify"
)

// gateway statuses that mean the payment will never clear, whatever isSuccess says
var failureStatuses = map[string]bool{
	"FAILED":    true,
	"CANCELLED": true,
	"CANCELED":  true,
	"EXPIRED":   true,
	"REJECTED":  true,
}

// Intake applies gateway payment notifications to transactions exactly once
type Intake struct {
	uow      persistence.UnitOfWork
	bridge   usecase.BridgeUseCase
	notifier *notify.Dispatcher
	metrics  core.Metrics
	logger   core.Logger
}

var _ usecase.PaymentUseCase = (*Intake)(nil)

// NewIntake creates the payment confirmation intake
func NewIntake(
	uow persistence.UnitOfWork,
	bridge usecase.BridgeUseCase,
	notifier *notify.Dispatcher,
	metrics core.Metrics,
	logger core.Logger,
) *Intake {
	return &Intake{
		uow:      uow,
		bridge:   bridge,
		notifier: notifier,
		metrics:  metrics,
		logger:   logger,
	}
}

// HandlePaymentNotification applies one gateway event. The gateway retries anything that is not
// acknowledged, so every outcome, including internal errors, is reported as a result value.
func (i *Intake) HandlePaymentNotification(ctx context.Context, n usecase.PaymentNotification) usecase.WebhookResult {
	result, err := i.handle(ctx, n)
	if err != nil {
		fields := map[string]any{
			"reference_code":         n.ReferenceCode,
			"gateway_transaction_id": n.GatewayTransactionID,
			"is_success":             n.IsSuccess,
			"error":                  err.Error(),
		}
		if errs.IsNotFoundError(err) || errs.IsValidationError(err) {
			i.logger.Warn("Rejected payment notification", fields)
		} else {
			i.logger.Error("Failed to process payment notification", fields)
		}
		result = usecase.ResultError
	}

	i.metrics.WebhookProcessed("payment", string(result))
	return result
}

func (i *Intake) handle(ctx context.Context, n usecase.PaymentNotification) (usecase.WebhookResult, error) {
	reference := strings.TrimSpace(n.ReferenceCode)
	if reference == "" {
		return usecase.ResultError, fmt.Errorf("%w: missing reference code", errs.ErrValidation)
	}

	txRepo := i.uow.GetTransactionRepository(ctx)
	tx, err := txRepo.GetByReference(ctx, reference)
	if err != nil {
		return usecase.ResultError, err
	}

	if !tx.Status.IsAwaitingPayment() {
		i.logger.Info("Duplicate payment notification ignored", map[string]any{
			"transaction_id": tx.ID,
			"reference_code": tx.ReferenceCode,
			"status":         tx.Status,
		})
		return usecase.ResultAlreadyProcessed, nil
	}

	if !n.IsSuccess || failureStatuses[strings.ToUpper(strings.TrimSpace(n.Status))] {
		return i.markFailed(ctx, txRepo, tx, n)
	}
	return i.markPaid(ctx, txRepo, tx, n)
}

func (i *Intake) markPaid(
	ctx context.Context,
	txRepo persistence.TransactionRepository,
	tx *entity.Transaction,
	n usecase.PaymentNotification,
) (usecase.WebhookResult, error) {
	gatewayID := n.GatewayTransactionID
	if gatewayID == "" {
		gatewayID = tx.GatewayTransactionID
	}
	confirmed := n.Amount

	moved, err := txRepo.CompareAndSetStatus(ctx, tx.ID, entity.StatusChange{
		From:                 entity.AwaitingPaymentStatuses,
		To:                   entity.StatusPayinSuccess,
		GatewayTransactionID: &gatewayID,
		ConfirmedAmount:      &confirmed,
	})
	if err != nil {
		return usecase.ResultError, err
	}
	if !moved {
		// a concurrent redelivery won
		return usecase.ResultAlreadyProcessed, nil
	}
	i.metrics.StatusChanged(string(tx.Status), string(entity.StatusPayinSuccess))

	if confirmed.LessThan(tx.TotalToPay) {
		i.logger.Warn("Confirmed amount below total to pay", map[string]any{
			"transaction_id": tx.ID,
			"confirmed":      confirmed.String(),
			"total_to_pay":   tx.TotalToPay.String(),
		})
	}

	i.logger.Info("Payment confirmed", map[string]any{
		"transaction_id":         tx.ID,
		"reference_code":         tx.ReferenceCode,
		"gateway_transaction_id": gatewayID,
		"confirmed_amount":       confirmed.String(),
	})

	i.notifyReceiver(ctx, tx)
	i.bridge.Dispatch(tx.ID, "payment_webhook")

	return usecase.ResultSuccess, nil
}

func (i *Intake) markFailed(
	ctx context.Context,
	txRepo persistence.TransactionRepository,
	tx *entity.Transaction,
	n usecase.PaymentNotification,
) (usecase.WebhookResult, error) {
	reason := "payment failed at gateway"
	if n.Status != "" {
		reason = fmt.Sprintf("payment %s at gateway", strings.ToLower(n.Status))
	}

	change := entity.StatusChange{
		From:          entity.AwaitingPaymentStatuses,
		To:            entity.StatusPayinFailed,
		FailureReason: &reason,
	}
	if n.GatewayTransactionID != "" {
		change.GatewayTransactionID = &n.GatewayTransactionID
	}

	moved, err := txRepo.CompareAndSetStatus(ctx, tx.ID, change)
	if err != nil {
		return usecase.ResultError, err
	}
	if !moved {
		return usecase.ResultAlreadyProcessed, nil
	}
	i.metrics.StatusChanged(string(tx.Status), string(entity.StatusPayinFailed))

	i.logger.Info("Payment failed", map[string]any{
		"transaction_id": tx.ID,
		"reference_code": tx.ReferenceCode,
		"gateway_status": n.Status,
	})
	return usecase.ResultFailedProcessed, nil
}

// notifyReceiver tells a registered receiver that money is on its way
func (i *Intake) notifyReceiver(ctx context.Context, tx *entity.Transaction) {
	receiver, err := i.uow.GetReceiverRepository(ctx).GetByID(ctx, tx.ReceiverID)
	if err != nil {
		i.logger.Warn("Skipping receiver notification", map[string]any{
			"transaction_id": tx.ID,
			"error":          err.Error(),
		})
		return
	}
	if receiver.UserID == nil {
		return
	}

	i.notifier.Send(provider.Notification{
		UserID:        *receiver.UserID,
		Event:         provider.EventPaymentReceived,
		Title:         "Money on its way",
		Body:          fmt.Sprintf("%s EUR has been sent to you", tx.ExpectedFiatOut.StringFixed(2)),
		ReferenceCode: tx.ReferenceCode,
	})
}
