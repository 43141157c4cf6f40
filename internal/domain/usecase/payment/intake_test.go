package payment

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/amirhossein-jamali/remitbridge/internal/domain/entity"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/core"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/provider"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/usecase/notify"
	"github.com/amirhossein-jamali/remitbridge/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/remitbridge/internal/testutil"
	providermocks "github.com/amirhossein-jamali/remitbridge/mocks/port/provider"
	usecasemocks "github.com/amirhossein-jamali/remitbridge/mocks/port/usecase"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	store    *testutil.Store
	bridge   *usecasemocks.MockBridgeUseCase
	notifier *providermocks.MockNotifier
	runner   *testutil.Runner
	intake   *Intake
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		store:    testutil.NewStore(),
		bridge:   usecasemocks.NewMockBridgeUseCase(t),
		notifier: providermocks.NewMockNotifier(t),
		runner:   testutil.NewRunner(),
	}
	log := logger.NewNoopLogger()
	clock := testutil.NewClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	dispatcher := notify.NewDispatcher(f.notifier, f.runner, clock, core.Second, log)
	f.intake = NewIntake(f.store, f.bridge, dispatcher, testutil.Metrics{}, log)
	return f
}

func (f *fixture) seed(status entity.TransactionStatus, receiverUserID uint64) *entity.Transaction {
	r := &entity.Receiver{Handle: "awa"}
	if receiverUserID != 0 {
		r.UserID = &receiverUserID
	}
	receiverID := f.store.PutReceiver(r)
	tx := &entity.Transaction{
		ReferenceCode:   "RB-7K3M9QXA",
		SenderID:        1,
		ReceiverID:      receiverID,
		Status:          status,
		TotalToPay:      decimal.RequireFromString("55694"),
		ExpectedFiatOut: decimal.RequireFromString("76.22"),
	}
	f.store.PutTransaction(tx)
	return tx
}

func successEvent() usecase.PaymentNotification {
	return usecase.PaymentNotification{
		GatewayTransactionID: "gw-123",
		IsSuccess:            true,
		Amount:               decimal.RequireFromString("55694"),
		ReferenceCode:        "RB-7K3M9QXA",
		Status:               "SUCCESSFUL",
	}
}

func TestIntake_Success(t *testing.T) {
	f := newFixture(t)
	tx := f.seed(entity.StatusPayinPending, 9)

	f.bridge.EXPECT().Dispatch(tx.ID, "payment_webhook").Return().Once()
	f.notifier.EXPECT().
		Notify(mock.Anything, mock.MatchedBy(func(n provider.Notification) bool {
			return n.UserID == 9 && n.Event == provider.EventPaymentReceived && n.ReferenceCode == "RB-7K3M9QXA"
		})).
		Return(nil).
		Once()

	result := f.intake.HandlePaymentNotification(context.Background(), successEvent())
	f.runner.Wait()

	assert.Equal(t, usecase.ResultSuccess, result)
	stored := f.store.Transaction(tx.ID)
	assert.Equal(t, entity.StatusPayinSuccess, stored.Status)
	assert.Equal(t, "gw-123", stored.GatewayTransactionID)
	assert.Equal(t, "55694", stored.ConfirmedAmount.String())
}

func TestIntake_ReplayIsIdempotent(t *testing.T) {
	f := newFixture(t)
	tx := f.seed(entity.StatusInitiated, 0)

	f.bridge.EXPECT().Dispatch(tx.ID, "payment_webhook").Return().Once()

	first := f.intake.HandlePaymentNotification(context.Background(), successEvent())
	second := f.intake.HandlePaymentNotification(context.Background(), successEvent())

	assert.Equal(t, usecase.ResultSuccess, first)
	assert.Equal(t, usecase.ResultAlreadyProcessed, second)
	assert.Equal(t, 1, f.store.CASHits())
}

func TestIntake_ConcurrentRedeliveryTransitionsOnce(t *testing.T) {
	f := newFixture(t)
	tx := f.seed(entity.StatusPayinPending, 0)

	f.bridge.EXPECT().Dispatch(tx.ID, "payment_webhook").Return().Once()

	var wg sync.WaitGroup
	results := make([]usecase.WebhookResult, 10)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = f.intake.HandlePaymentNotification(context.Background(), successEvent())
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, r := range results {
		if r == usecase.ResultSuccess {
			successes++
		} else {
			assert.Equal(t, usecase.ResultAlreadyProcessed, r)
		}
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, f.store.CASHits())
}

func TestIntake_Failure(t *testing.T) {
	t.Run("Awaiting payment moves to PAYIN_FAILED", func(t *testing.T) {
		f := newFixture(t)
		tx := f.seed(entity.StatusPayinPending, 0)

		event := successEvent()
		event.IsSuccess = false
		event.Status = "CANCELLED"

		result := f.intake.HandlePaymentNotification(context.Background(), event)
		assert.Equal(t, usecase.ResultFailedProcessed, result)

		stored := f.store.Transaction(tx.ID)
		assert.Equal(t, entity.StatusPayinFailed, stored.Status)
		assert.Equal(t, "payment cancelled at gateway", stored.FailureReason)
	})

	t.Run("Failure status overrides isSuccess", func(t *testing.T) {
		f := newFixture(t)
		tx := f.seed(entity.StatusInitiated, 0)

		event := successEvent()
		event.Status = "expired"

		result := f.intake.HandlePaymentNotification(context.Background(), event)
		assert.Equal(t, usecase.ResultFailedProcessed, result)
		assert.Equal(t, entity.StatusPayinFailed, f.store.Transaction(tx.ID).Status)
	})

	t.Run("Never downgrades a confirmed payment", func(t *testing.T) {
		for _, status := range []entity.TransactionStatus{
			entity.StatusPayinSuccess,
			entity.StatusBridgeProcessing,
			entity.StatusWaitingUserOfframp,
			entity.StatusCompleted,
		} {
			f := newFixture(t)
			tx := f.seed(status, 0)

			event := successEvent()
			event.IsSuccess = false

			result := f.intake.HandlePaymentNotification(context.Background(), event)
			assert.Equal(t, usecase.ResultAlreadyProcessed, result)
			assert.Equal(t, status, f.store.Transaction(tx.ID).Status)
		}
	})
}

func TestIntake_UnresolvableReference(t *testing.T) {
	f := newFixture(t)
	f.seed(entity.StatusPayinPending, 0)

	event := successEvent()
	event.ReferenceCode = ""
	assert.Equal(t, usecase.ResultError, f.intake.HandlePaymentNotification(context.Background(), event))

	event.ReferenceCode = "RB-UNKNOWN1"
	assert.Equal(t, usecase.ResultError, f.intake.HandlePaymentNotification(context.Background(), event))

	assert.Zero(t, f.store.CASHits())
}

func TestIntake_ReceiverWithoutAccountIsNotNotified(t *testing.T) {
	f := newFixture(t)
	tx := f.seed(entity.StatusPayinPending, 0)
	f.bridge.EXPECT().Dispatch(tx.ID, mock.Anything).Return().Once()

	result := f.intake.HandlePaymentNotification(context.Background(), successEvent())
	f.runner.Wait()

	require.Equal(t, usecase.ResultSuccess, result)
	assert.Empty(t, f.runner.Started())
}
