package bridge

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/amirhossein-jamali/remitbridge/internal/domain/entity"
	errs "github.com/amirhossein-jamali/remitbridge/internal/domain/error"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/core"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/provider"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/usecase/notify"
	"github.com/amirhossein-jamali/remitbridge/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/remitbridge/internal/testutil"
	coremocks "github.com/amirhossein-jamali/remitbridge/mocks/port/core"
	providermocks "github.com/amirhossein-jamali/remitbridge/mocks/port/provider"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	walletA = "0x00000000000000000000000000000000000000aa"
	walletB = "0x00000000000000000000000000000000000000bb"
)

type fixture struct {
	store    *testutil.Store
	chain    *providermocks.MockTreasuryChain
	notifier *providermocks.MockNotifier
	runner   *testutil.Runner
	clock    *testutil.Clock
	bridge   *Orchestrator
	queue    *SignerQueue
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		store:    testutil.NewStore(),
		chain:    providermocks.NewMockTreasuryChain(t),
		notifier: providermocks.NewMockNotifier(t),
		runner:   testutil.NewRunner(),
		clock:    testutil.NewClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)),
	}
	log := logger.NewNoopLogger()
	f.queue = NewSignerQueue(log, nil, time.Minute)
	t.Cleanup(f.queue.Shutdown)

	f.chain.EXPECT().SignerKey().Return("treasury").Maybe()
	dispatcher := notify.NewDispatcher(f.notifier, f.runner, f.clock, core.Second, log)
	f.bridge = NewOrchestrator(f.store, f.chain, f.queue, f.runner, dispatcher, DefaultSettings(), f.clock, testutil.Metrics{}, log)
	return f
}

func (f *fixture) receiver(wallet string, userID uint64) uint64 {
	r := &entity.Receiver{Handle: "r" + wallet, WalletAddress: wallet}
	if userID != 0 {
		r.UserID = &userID
	}
	return f.store.PutReceiver(r)
}

func (f *fixture) transaction(receiverID uint64, status entity.TransactionStatus, stable string) uint64 {
	return f.store.PutTransaction(&entity.Transaction{
		ReferenceCode:    "RB-" + strings.ToUpper(stable) + string(status)[:3],
		SenderID:         1,
		ReceiverID:       receiverID,
		Status:           status,
		StablecoinAmount: decimal.RequireFromString(stable),
		ExpectedFiatOut:  decimal.RequireFromString("76.22"),
		UpdatedAt:        f.clock.Now(),
	})
}

func (f *fixture) fundedTreasury() {
	f.chain.EXPECT().StablecoinBalance(mock.Anything).Return(decimal.RequireFromString("10000"), nil).Maybe()
	f.chain.EXPECT().NativeBalance(mock.Anything).Return(decimal.RequireFromString("1"), nil).Maybe()
}

func receipt(hash string) *provider.Receipt {
	return &provider.Receipt{TxHash: hash, Success: true, GasFee: decimal.RequireFromString("0.00002")}
}

func TestOrchestrator_Bridge_Success(t *testing.T) {
	f := newFixture(t)
	receiverID := f.receiver(walletA, 42)
	txID := f.transaction(receiverID, entity.StatusPayinSuccess, "78.5066")
	f.fundedTreasury()

	gas := decimal.RequireFromString("0.0005")
	mock.InOrder(
		f.chain.EXPECT().SendNative(mock.Anything, walletA, gas).Return("0xgas", nil).Once(),
		f.chain.EXPECT().WaitForReceipt(mock.Anything, "0xgas").Return(receipt("0xgas"), nil).Once(),
		f.chain.EXPECT().SendStablecoin(mock.Anything, walletA, decimal.RequireFromString("78.5066")).Return("0xtoken", nil).Once(),
		f.chain.EXPECT().WaitForReceipt(mock.Anything, "0xtoken").Return(receipt("0xtoken"), nil).Once(),
	)
	f.notifier.EXPECT().
		Notify(mock.Anything, mock.MatchedBy(func(n provider.Notification) bool {
			return n.UserID == 42 && n.Event == provider.EventFundsAvailable
		})).
		Return(nil).
		Once()

	tx, err := f.bridge.Bridge(context.Background(), txID)
	require.NoError(t, err)
	f.runner.Wait()

	assert.Equal(t, entity.StatusWaitingUserOfframp, tx.Status)
	assert.Equal(t, "0xgas", tx.GasTxHash)
	assert.Equal(t, "0xtoken", tx.TokenTxHash)
	assert.Equal(t, "0.00004", tx.GasFeePaid.String())
	assert.Empty(t, tx.FailureReason)
}

func TestOrchestrator_Bridge_EscrowWithoutWallet(t *testing.T) {
	f := newFixture(t)
	receiverID := f.receiver("", 0)
	txID := f.transaction(receiverID, entity.StatusPayinSuccess, "50")

	tx, err := f.bridge.Bridge(context.Background(), txID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPayinSuccess, tx.Status)
	assert.Equal(t, entity.StatusPayinSuccess, f.store.Transaction(txID).Status)
	f.chain.AssertNotCalled(t, "SendNative", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrchestrator_Bridge_GuardedByStatus(t *testing.T) {
	for _, status := range []entity.TransactionStatus{
		entity.StatusBridgeProcessing,
		entity.StatusInitiated,
		entity.StatusBridgeFailed,
		entity.StatusCompleted,
	} {
		t.Run(string(status), func(t *testing.T) {
			f := newFixture(t)
			receiverID := f.receiver(walletA, 0)
			txID := f.transaction(receiverID, status, "50")

			tx, err := f.bridge.Bridge(context.Background(), txID)
			require.NoError(t, err)
			assert.Equal(t, status, tx.Status)
			assert.Zero(t, f.store.CASHits())
		})
	}
}

func TestOrchestrator_Bridge_ConcurrentAttemptsBroadcastOnce(t *testing.T) {
	f := newFixture(t)
	receiverID := f.receiver(walletA, 0)
	txID := f.transaction(receiverID, entity.StatusPayinSuccess, "50")
	f.fundedTreasury()

	f.chain.EXPECT().SendNative(mock.Anything, walletA, mock.Anything).Return("0xgas", nil).Once()
	f.chain.EXPECT().SendStablecoin(mock.Anything, walletA, mock.Anything).Return("0xtoken", nil).Once()
	f.chain.EXPECT().WaitForReceipt(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, hash string) (*provider.Receipt, error) { return receipt(hash), nil }).
		Times(2)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.bridge.Bridge(context.Background(), txID)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, entity.StatusWaitingUserOfframp, f.store.Transaction(txID).Status)
	// PAYIN_SUCCESS->BRIDGE_PROCESSING once, then BRIDGE_PROCESSING->WAITING_USER_OFFRAMP once
	assert.Equal(t, 2, f.store.CASHits())
}

func TestOrchestrator_Bridge_InsufficientStablecoin(t *testing.T) {
	f := newFixture(t)
	receiverID := f.receiver(walletA, 0)
	txID := f.transaction(receiverID, entity.StatusPayinSuccess, "50")
	f.chain.EXPECT().StablecoinBalance(mock.Anything).Return(decimal.RequireFromString("10"), nil).Once()

	tx, err := f.bridge.Bridge(context.Background(), txID)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInsufficientResources)

	var bridgeErr *errs.BridgeError
	require.ErrorAs(t, err, &bridgeErr)
	assert.Equal(t, string(PhasePreflight), bridgeErr.Phase)

	assert.Equal(t, entity.StatusBridgeFailed, tx.Status)
	assert.Contains(t, tx.FailureReason, "insufficient funds: 10 stablecoin available, 50 required")
	f.chain.AssertNotCalled(t, "SendNative", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrchestrator_Bridge_InsufficientGas(t *testing.T) {
	f := newFixture(t)
	receiverID := f.receiver(walletA, 0)
	txID := f.transaction(receiverID, entity.StatusPayinSuccess, "50")
	f.chain.EXPECT().StablecoinBalance(mock.Anything).Return(decimal.RequireFromString("100"), nil).Once()
	f.chain.EXPECT().NativeBalance(mock.Anything).Return(decimal.RequireFromString("0.0001"), nil).Once()

	tx, err := f.bridge.Bridge(context.Background(), txID)
	assert.ErrorIs(t, err, errs.ErrInsufficientResources)
	assert.Equal(t, entity.StatusBridgeFailed, tx.Status)
	assert.Contains(t, tx.FailureReason, "0.0001 native available, 0.0005 required")
}

func TestOrchestrator_Bridge_TokenTransferFailure(t *testing.T) {
	f := newFixture(t)
	receiverID := f.receiver(walletA, 0)
	txID := f.transaction(receiverID, entity.StatusPayinSuccess, "50")
	f.fundedTreasury()

	longReason := "rpc error: " + strings.Repeat("nonce too low ", 40)
	f.chain.EXPECT().SendNative(mock.Anything, walletA, mock.Anything).Return("0xgas", nil).Once()
	f.chain.EXPECT().WaitForReceipt(mock.Anything, "0xgas").Return(receipt("0xgas"), nil).Once()
	f.chain.EXPECT().SendStablecoin(mock.Anything, walletA, mock.Anything).Return("", errors.New(longReason)).Once()

	tx, err := f.bridge.Bridge(context.Background(), txID)
	require.Error(t, err)

	var bridgeErr *errs.BridgeError
	require.ErrorAs(t, err, &bridgeErr)
	assert.Equal(t, string(PhaseTokenTransfer), bridgeErr.Phase)

	assert.Equal(t, entity.StatusBridgeFailed, tx.Status)
	assert.Equal(t, "0xgas", tx.GasTxHash)
	assert.Empty(t, tx.TokenTxHash)
	assert.Equal(t, "0.00002", tx.GasFeePaid.String())
	assert.Len(t, tx.FailureReason, entity.MaxFailureReasonLength)
}

func TestOrchestrator_Bridge_RevertedNativeTransfer(t *testing.T) {
	f := newFixture(t)
	receiverID := f.receiver(walletA, 0)
	txID := f.transaction(receiverID, entity.StatusPayinSuccess, "50")
	f.fundedTreasury()

	f.chain.EXPECT().SendNative(mock.Anything, walletA, mock.Anything).Return("0xgas", nil).Once()
	f.chain.EXPECT().WaitForReceipt(mock.Anything, "0xgas").
		Return(&provider.Receipt{TxHash: "0xgas", Success: false, GasFee: decimal.RequireFromString("0.00001")}, nil).
		Once()

	_, err := f.bridge.Bridge(context.Background(), txID)

	var bridgeErr *errs.BridgeError
	require.ErrorAs(t, err, &bridgeErr)
	assert.Equal(t, string(PhaseNativeConfirm), bridgeErr.Phase)
	f.chain.AssertNotCalled(t, "SendStablecoin", mock.Anything, mock.Anything, mock.Anything)
}

// unreadableFailures loses the connection whenever a failed transaction is read back
type unreadableFailures struct {
	*testutil.Store
}

func (u unreadableFailures) GetTransactionRepository(ctx context.Context) persistence.TransactionRepository {
	return unreadableFailuresRepo{u.Store.GetTransactionRepository(ctx)}
}

type unreadableFailuresRepo struct {
	persistence.TransactionRepository
}

func (r unreadableFailuresRepo) GetByID(ctx context.Context, id uint64) (*entity.Transaction, error) {
	tx, err := r.TransactionRepository.GetByID(ctx, id)
	if err == nil && tx.Status == entity.StatusBridgeFailed {
		return nil, errors.New("read: connection reset by peer")
	}
	return tx, err
}

func TestOrchestrator_Bridge_LogsFailedReloadAfterFailure(t *testing.T) {
	f := newFixture(t)
	receiverID := f.receiver(walletA, 0)
	txID := f.transaction(receiverID, entity.StatusPayinSuccess, "50")
	f.fundedTreasury()
	f.chain.EXPECT().SendNative(mock.Anything, walletA, mock.Anything).Return("", errors.New("nonce too low")).Once()

	log := coremocks.NewMockLogger(t)
	log.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	log.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	log.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	log.EXPECT().Error("Bridge attempt failed", mock.Anything).Once()
	log.EXPECT().Error("Failed to reload transaction after bridge failure", mock.MatchedBy(func(fields map[string]any) bool {
		return fields["transaction_id"] == txID && fields["error"] == "read: connection reset by peer"
	})).Once()

	dispatcher := notify.NewDispatcher(f.notifier, f.runner, f.clock, core.Second, logger.NewNoopLogger())
	bridge := NewOrchestrator(unreadableFailures{f.store}, f.chain, f.queue, f.runner, dispatcher, DefaultSettings(), f.clock, testutil.Metrics{}, log)

	tx, err := bridge.Bridge(context.Background(), txID)
	require.Error(t, err)
	require.NotNil(t, tx)
	assert.Equal(t, txID, tx.ID)
	assert.Equal(t, entity.StatusBridgeFailed, f.store.Transaction(txID).Status)
}

func TestOrchestrator_SignerIsSerializedAcrossTransactions(t *testing.T) {
	f := newFixture(t)
	txA := f.transaction(f.receiver(walletA, 0), entity.StatusPayinSuccess, "10")
	txB := f.transaction(f.receiver(walletB, 0), entity.StatusPayinSuccess, "20")
	f.fundedTreasury()

	var mu sync.Mutex
	var events []string
	record := func(e string) {
		mu.Lock()
		events = append(events, e)
		mu.Unlock()
		// widen the window for interleaving
		time.Sleep(5 * time.Millisecond)
	}

	f.chain.EXPECT().SendNative(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, to string, _ decimal.Decimal) (string, error) {
			record(to)
			return to + "-gas", nil
		}).Times(2)
	f.chain.EXPECT().SendStablecoin(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, to string, _ decimal.Decimal) (string, error) {
			record(to)
			return to + "-token", nil
		}).Times(2)
	f.chain.EXPECT().WaitForReceipt(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, hash string) (*provider.Receipt, error) {
			record(strings.SplitN(hash, "-", 2)[0])
			return receipt(hash), nil
		}).Times(4)

	var wg sync.WaitGroup
	for _, id := range []uint64{txA, txB} {
		wg.Add(1)
		go func(id uint64) {
			defer wg.Done()
			_, err := f.bridge.Bridge(context.Background(), id)
			assert.NoError(t, err)
		}(id)
	}
	wg.Wait()

	require.Len(t, events, 8)
	for i := 1; i < 4; i++ {
		assert.Equal(t, events[0], events[i], "first attempt interleaved: %v", events)
		assert.Equal(t, events[4], events[4+i], "second attempt interleaved: %v", events)
	}
	assert.NotEqual(t, events[0], events[4])
}

func TestOrchestrator_ReleaseEscrow(t *testing.T) {
	f := newFixture(t)
	receiverID := f.receiver("", 0)
	held1 := f.transaction(receiverID, entity.StatusPayinSuccess, "10")
	held2 := f.transaction(receiverID, entity.StatusPayinSuccess, "20")
	f.transaction(receiverID, entity.StatusInitiated, "30")

	// the receiver attaches a wallet
	r := f.store.Receiver(receiverID)
	r.WalletAddress = walletA
	f.store.PutReceiver(r)

	f.fundedTreasury()
	f.chain.EXPECT().SendNative(mock.Anything, walletA, mock.Anything).Return("0xgas", nil).Times(2)
	f.chain.EXPECT().SendStablecoin(mock.Anything, walletA, mock.Anything).Return("0xtoken", nil).Times(2)
	f.chain.EXPECT().WaitForReceipt(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, hash string) (*provider.Receipt, error) { return receipt(hash), nil }).
		Times(4)

	count, err := f.bridge.ReleaseEscrow(context.Background(), receiverID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	f.runner.Wait()

	assert.Equal(t, entity.StatusWaitingUserOfframp, f.store.Transaction(held1).Status)
	assert.Equal(t, entity.StatusWaitingUserOfframp, f.store.Transaction(held2).Status)
	assert.Equal(t, []string{"bridge:escrow_release", "bridge:escrow_release"}, f.runner.Started())
}
