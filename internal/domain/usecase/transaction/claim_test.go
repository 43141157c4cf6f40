package transaction

import (
	"context"
	"sync"
	"testing"

	"github.com/amirhossein-jamali/remitbridge/internal/domain/entity"
	errs "github.com/amirhossein-jamali/remitbridge/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClaim_RepointsAndDispatchesBridge(t *testing.T) {
	f := newFixture(t)
	provisional := f.provisionalReceiver("newcomer")
	owned := f.registeredReceiver("awa", "0x00000000000000000000000000000000000000aa")
	tx := f.seedTransaction("RB-CLAIM001", provisional.ID, entity.StatusPayinSuccess)

	f.bridge.EXPECT().Dispatch(tx.ID, "claim").Return().Once()

	claimed, err := f.service.Claim(context.Background(), "rb-claim001", receiverID)
	require.NoError(t, err)

	assert.Equal(t, owned.ID, claimed.ReceiverID)
	require.NotNil(t, claimed.ClaimedAt)
	assert.Equal(t, f.clock.Now(), *claimed.ClaimedAt)
	assert.Equal(t, entity.StatusPayinSuccess, claimed.Status)
}

func TestClaim_WorksOnce(t *testing.T) {
	f := newFixture(t)
	provisional := f.provisionalReceiver("newcomer")
	f.registeredReceiver("awa", "")
	tx := f.seedTransaction("RB-CLAIM002", provisional.ID, entity.StatusPayinSuccess)

	f.bridge.EXPECT().Dispatch(tx.ID, "claim").Return().Once()

	_, err := f.service.Claim(context.Background(), "RB-CLAIM002", receiverID)
	require.NoError(t, err)

	_, err = f.service.Claim(context.Background(), "RB-CLAIM002", receiverID)
	assert.ErrorIs(t, err, errs.ErrAlreadyClaimed)
}

func TestClaim_ConcurrentClaimsSucceedOnce(t *testing.T) {
	f := newFixture(t)
	provisional := f.provisionalReceiver("newcomer")
	f.registeredReceiver("awa", "")
	tx := f.seedTransaction("RB-CLAIM003", provisional.ID, entity.StatusPayinSuccess)

	f.bridge.EXPECT().Dispatch(tx.ID, "claim").Return().Once()

	const attempts = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := f.service.Claim(context.Background(), "RB-CLAIM003", receiverID); err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			} else {
				assert.ErrorIs(t, err, errs.ErrAlreadyClaimed)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
}

func TestClaim_Rejections(t *testing.T) {
	t.Run("Receiver Already Registered", func(t *testing.T) {
		f := newFixture(t)
		owned := f.registeredReceiver("awa", "")
		f.seedTransaction("RB-CLAIM004", owned.ID, entity.StatusPayinSuccess)

		_, err := f.service.Claim(context.Background(), "RB-CLAIM004", receiverID)
		assert.ErrorIs(t, err, errs.ErrAlreadyClaimed)
	})

	t.Run("Payment Not Cleared", func(t *testing.T) {
		f := newFixture(t)
		provisional := f.provisionalReceiver("newcomer")
		f.registeredReceiver("awa", "")
		f.seedTransaction("RB-CLAIM005", provisional.ID, entity.StatusPayinPending)

		_, err := f.service.Claim(context.Background(), "RB-CLAIM005", receiverID)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
		assert.NotErrorIs(t, err, errs.ErrAlreadyClaimed)
	})

	t.Run("Claimant Without Receiver Profile", func(t *testing.T) {
		f := newFixture(t)
		provisional := f.provisionalReceiver("newcomer")
		f.seedTransaction("RB-CLAIM006", provisional.ID, entity.StatusPayinSuccess)

		_, err := f.service.Claim(context.Background(), "RB-CLAIM006", strangerID)
		assert.ErrorIs(t, err, errs.ErrReceiverNotFound)
	})

	t.Run("Unknown Reference", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.Claim(context.Background(), "RB-NOPE0000", receiverID)
		assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
	})

	t.Run("Anonymous", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.Claim(context.Background(), "RB-CLAIM007", 0)
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})
}

func TestClaimPreview(t *testing.T) {
	f := newFixture(t)
	provisional := f.provisionalReceiver("newcomer")
	tx := f.seedTransaction("RB-PREVIEW1", provisional.ID, entity.StatusPayinSuccess)

	preview, err := f.service.ClaimPreview(context.Background(), " rb-preview1 ")
	require.NoError(t, err)

	assert.Equal(t, tx.ReferenceCode, preview.ReferenceCode)
	assert.Equal(t, entity.StatusPayinSuccess, preview.Status)
	assert.Equal(t, "76.22", preview.ExpectedFiatOut.String())
	assert.Equal(t, "Kofi", preview.SenderFirstName)
	assert.Equal(t, f.clock.Now(), preview.CreatedAt)
}
