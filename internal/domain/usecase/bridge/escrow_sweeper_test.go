package bridge

import (
	"context"
	"testing"
	"time"

	"github.com/amirhossein-jamali/remitbridge/internal/domain/entity"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/core"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/provider"
	"github.com/amirhossein-jamali/remitbridge/internal/infrastructure/adapter/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEscrowSweeper_SweepOnce(t *testing.T) {
	f := newFixture(t)

	ready := f.receiver("", 0)
	waiting := f.receiver("", 0)
	readyTx := f.transaction(ready, entity.StatusPayinSuccess, "10")
	waitingTx := f.transaction(waiting, entity.StatusPayinSuccess, "20")
	f.transaction(waiting, entity.StatusWaitingUserOfframp, "30")

	// a wallet attached without going through the release path
	r := f.store.Receiver(ready)
	r.WalletAddress = walletA
	f.store.PutReceiver(r)

	f.fundedTreasury()
	f.chain.EXPECT().SendNative(mock.Anything, walletA, mock.Anything).Return("0xgas", nil).Once()
	f.chain.EXPECT().SendStablecoin(mock.Anything, walletA, decimal.RequireFromString("10")).Return("0xtoken", nil).Once()
	f.chain.EXPECT().WaitForReceipt(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, hash string) (*provider.Receipt, error) { return receipt(hash), nil }).
		Times(2)

	settings := DefaultSettings()
	settings.EscrowStaleAfter = 48 * core.Hour
	sweeper := NewEscrowSweeper(f.store, f.bridge, settings, f.clock, logger.NewNoopLogger())

	result, err := sweeper.SweepOnce(context.Background())
	require.NoError(t, err)
	f.runner.Wait()

	assert.Equal(t, &SweepResult{Inspected: 1, Dispatched: 1, Stale: 0}, result)
	assert.Equal(t, entity.StatusWaitingUserOfframp, f.store.Transaction(readyTx).Status)
	assert.Equal(t, entity.StatusPayinSuccess, f.store.Transaction(waitingTx).Status)

	// two days later the remaining escrow is flagged but left untouched
	f.clock.Advance(49 * time.Hour)
	result, err = sweeper.SweepOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &SweepResult{Inspected: 1, Dispatched: 0, Stale: 1}, result)
	assert.Equal(t, entity.StatusPayinSuccess, f.store.Transaction(waitingTx).Status)
}

func TestEscrowSweeper_WalletlessBacklogDoesNotHideReleasableEscrow(t *testing.T) {
	f := newFixture(t)

	ready := f.receiver("", 0)
	readyTx := f.transaction(ready, entity.StatusPayinSuccess, "10")
	waiting := f.receiver("", 0)
	for _, amount := range []string{"20", "30", "40"} {
		f.transaction(waiting, entity.StatusPayinSuccess, amount)
	}

	r := f.store.Receiver(ready)
	r.WalletAddress = walletA
	f.store.PutReceiver(r)

	f.fundedTreasury()
	f.chain.EXPECT().SendNative(mock.Anything, walletA, mock.Anything).Return("0xgas", nil).Once()
	f.chain.EXPECT().SendStablecoin(mock.Anything, walletA, decimal.RequireFromString("10")).Return("0xtoken", nil).Once()
	f.chain.EXPECT().WaitForReceipt(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, hash string) (*provider.Receipt, error) { return receipt(hash), nil }).
		Times(2)

	settings := DefaultSettings()
	settings.SweepBatchSize = 3
	settings.EscrowStaleAfter = 48 * core.Hour
	sweeper := NewEscrowSweeper(f.store, f.bridge, settings, f.clock, logger.NewNoopLogger())

	result, err := sweeper.SweepOnce(context.Background())
	require.NoError(t, err)
	f.runner.Wait()

	assert.Equal(t, 1, result.Dispatched)
	assert.Equal(t, entity.StatusWaitingUserOfframp, f.store.Transaction(readyTx).Status)

	// every stale walletless row fits in one batch
	f.clock.Advance(49 * time.Hour)
	result, err = sweeper.SweepOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &SweepResult{Inspected: 3, Dispatched: 0, Stale: 3}, result)
}

func TestEscrowSweeper_RunStopsWithContext(t *testing.T) {
	f := newFixture(t)
	settings := DefaultSettings()
	settings.EscrowSweepInterval = core.Millisecond
	sweeper := NewEscrowSweeper(f.store, f.bridge, settings, f.clock, logger.NewNoopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sweeper.Run(ctx)
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop")
	}
}
