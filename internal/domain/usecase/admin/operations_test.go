package admin

import (
	"context"
	"errors"
	"testing"

	"github.com/amirhossein-jamali/remitbridge/internal/domain/entity"
	errs "github.com/amirhossein-jamali/remitbridge/internal/domain/error"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/remitbridge/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/remitbridge/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateRate_Partial(t *testing.T) {
	f := newFixture(t)
	f.store.SeedRate(entity.PairEURXOFInstant, "700", "2")

	base := dec("705")
	rate, err := f.service.UpdateRate(context.Background(), actor, "eur_xof_instant", entity.RateUpdate{BaseRate: &base})
	require.NoError(t, err)
	assert.Equal(t, "705", rate.BaseRate.String())
	assert.Equal(t, "2", rate.MarkupPercent.String())

	markup := dec("1.5")
	rate, err = f.service.UpdateRate(context.Background(), actor, entity.PairEURXOFInstant, entity.RateUpdate{MarkupPercent: &markup})
	require.NoError(t, err)
	assert.Equal(t, "705", rate.BaseRate.String())
	assert.Equal(t, "1.5", rate.MarkupPercent.String())

	stored, err := f.store.Rates().GetByPair(context.Background(), entity.PairEURXOFInstant)
	require.NoError(t, err)
	assert.Equal(t, "1.5", stored.MarkupPercent.String())
	assert.Equal(t, []entity.AuditAction{entity.AuditRateUpdate, entity.AuditRateUpdate}, f.auditActions())
}

func TestUpdateRate_Rejections(t *testing.T) {
	f := newFixture(t)
	f.store.SeedRate(entity.PairEURXOFStandard, "690", "0")
	base := dec("690")
	zero := dec("0")
	negative := dec("-1")

	tests := []struct {
		name     string
		pair     string
		update   entity.RateUpdate
		expected error
	}{
		{"Unknown Pair", "EUR_USD", entity.RateUpdate{BaseRate: &base}, errs.ErrRateNotFound},
		{"Empty Update", entity.PairEURXOFStandard, entity.RateUpdate{}, errs.ErrValidation},
		{"Zero Base", entity.PairEURXOFStandard, entity.RateUpdate{BaseRate: &zero}, errs.ErrValidation},
		{"Negative Markup", entity.PairEURXOFStandard, entity.RateUpdate{MarkupPercent: &negative}, errs.ErrValidation},
		{"Missing Pair", " ", entity.RateUpdate{BaseRate: &base}, errs.ErrValidation},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rate, err := f.service.UpdateRate(context.Background(), actor, tc.pair, tc.update)
			assert.Nil(t, rate)
			assert.ErrorIs(t, err, tc.expected)
		})
	}
	assert.Empty(t, f.auditActions())
}

func TestBroadcast(t *testing.T) {
	f := newFixture(t)
	f.notifier.EXPECT().Broadcast(mock.Anything, "Maintenance", "Transfers pause at 02:00 UTC").Return(nil).Once()

	err := f.service.Broadcast(context.Background(), actor, " Maintenance ", "Transfers pause at 02:00 UTC")
	require.NoError(t, err)
	assert.Equal(t, []entity.AuditAction{entity.AuditBroadcast}, f.auditActions())
}

func TestBroadcast_Failures(t *testing.T) {
	f := newFixture(t)

	err := f.service.Broadcast(context.Background(), actor, "", "body")
	assert.ErrorIs(t, err, errs.ErrValidation)

	f.notifier.EXPECT().Broadcast(mock.Anything, mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()
	err = f.service.Broadcast(context.Background(), actor, "Hello", "World")
	assert.ErrorIs(t, err, errs.ErrUpstreamUnavailable)
	assert.Empty(t, f.auditActions())
}

// seedUser stores a user with a sender profile, a receiver profile and a volume record
func (f *fixture) seedUser(t *testing.T, id uint64) *entity.Receiver {
	t.Helper()
	f.store.PutUser(&entity.User{ID: id, Email: "awa@example.com"}, "Awa")
	owner := id
	r := &entity.Receiver{Handle: "awa", UserID: &owner}
	f.store.PutReceiver(r)
	require.NoError(t, f.store.GetUserRepository(context.Background()).AddVolume(context.Background(), id, "2026-04", dec("50000")))
	return r
}

func TestDeleteUser_BlockedByActiveTransaction(t *testing.T) {
	f := newFixture(t)
	f.seedUser(t, 10)
	f.store.PutTransaction(&entity.Transaction{ReferenceCode: "RB-DEL00001", SenderID: 10, ReceiverID: 99, Status: entity.StatusCompleted})
	f.store.PutTransaction(&entity.Transaction{ReferenceCode: "RB-DEL00002", SenderID: 10, ReceiverID: 99, Status: entity.StatusBridgeProcessing})

	err := f.service.DeleteUser(context.Background(), actor, 10)
	assert.ErrorIs(t, err, errs.ErrActiveTransactions)
	assert.True(t, errs.IsInvalidStateError(err))

	assert.True(t, f.store.HasUser(10))
	assert.Equal(t, 1, f.store.VolumeCount(10))
	assert.Empty(t, f.auditActions())
}

func TestDeleteUser_BlockedByIncomingTransaction(t *testing.T) {
	f := newFixture(t)
	r := f.seedUser(t, 10)
	f.store.PutTransaction(&entity.Transaction{ReferenceCode: "RB-DEL00003", SenderID: 42, ReceiverID: r.ID, Status: entity.StatusWaitingUserOfframp})

	err := f.service.DeleteUser(context.Background(), actor, 10)
	assert.ErrorIs(t, err, errs.ErrActiveTransactions)
}

func TestDeleteUser_Cascades(t *testing.T) {
	f := newFixture(t)
	r := f.seedUser(t, 10)
	done := f.store.PutTransaction(&entity.Transaction{ReferenceCode: "RB-DEL00004", SenderID: 10, ReceiverID: 99, Status: entity.StatusCompleted})
	refunded := f.store.PutTransaction(&entity.Transaction{ReferenceCode: "RB-DEL00005", SenderID: 10, ReceiverID: 99, Status: entity.StatusRefunded})
	incoming := f.store.PutTransaction(&entity.Transaction{ReferenceCode: "RB-DEL00006", SenderID: 42, ReceiverID: r.ID, Status: entity.StatusPayinFailed})
	unrelated := f.store.PutTransaction(&entity.Transaction{ReferenceCode: "RB-DEL00007", SenderID: 42, ReceiverID: 99, Status: entity.StatusBridgeProcessing})

	err := f.service.DeleteUser(context.Background(), actor, 10)
	require.NoError(t, err)

	assert.Nil(t, f.store.Transaction(done))
	assert.Nil(t, f.store.Transaction(refunded))
	assert.Nil(t, f.store.Transaction(incoming))
	assert.NotNil(t, f.store.Transaction(unrelated))
	assert.Zero(t, f.store.VolumeCount(10))
	assert.Nil(t, f.store.Receiver(r.ID))
	assert.False(t, f.store.HasUser(10))

	_, err = f.store.GetUserRepository(context.Background()).GetSenderProfile(context.Background(), 10)
	assert.ErrorIs(t, err, errs.ErrUserNotFound)

	assert.Equal(t, []entity.AuditAction{
		entity.AuditDeleteTxs,
		entity.AuditDeleteVolume,
		entity.AuditDeleteSender,
		entity.AuditDeleteReceiver,
		entity.AuditDeleteUser,
	}, f.auditActions())
	assert.Contains(t, f.store.AuditEntries()[0].Detail, "3 transactions deleted")
}

// racingCheckout starts a new transaction for the sender just before the cascade deletes
type racingCheckout struct {
	*testutil.Store
	senderID uint64
}

func (u racingCheckout) GetTransactionRepository(ctx context.Context) persistence.TransactionRepository {
	return racingCheckoutRepo{TransactionRepository: u.Store.GetTransactionRepository(ctx), store: u.Store, senderID: u.senderID}
}

type racingCheckoutRepo struct {
	persistence.TransactionRepository
	store    *testutil.Store
	senderID uint64
}

func (r racingCheckoutRepo) DeleteByParticipant(ctx context.Context, senderID, receiverID uint64, statuses ...entity.TransactionStatus) (int64, error) {
	r.store.PutTransaction(&entity.Transaction{ReferenceCode: "RB-DEL00009", SenderID: r.senderID, ReceiverID: 99, Status: entity.StatusPayinPending})
	return r.TransactionRepository.DeleteByParticipant(ctx, senderID, receiverID, statuses...)
}

func TestDeleteUser_TransactionStartedDuringDeletion(t *testing.T) {
	f := newFixture(t)
	f.seedUser(t, 10)
	f.store.PutTransaction(&entity.Transaction{ReferenceCode: "RB-DEL00008", SenderID: 10, ReceiverID: 99, Status: entity.StatusCompleted})

	service := NewService(racingCheckout{Store: f.store, senderID: 10}, f.store.Rates(), f.bridge, f.gateway, f.chain, f.notifier,
		DefaultSettings(), f.clock, testutil.Metrics{}, logger.NewNoopLogger())

	err := service.DeleteUser(context.Background(), actor, 10)
	assert.ErrorIs(t, err, errs.ErrActiveTransactions)
	assert.Contains(t, err.Error(), "RB-DEL00009")

	pending, err := f.store.GetTransactionRepository(context.Background()).GetByReference(context.Background(), "RB-DEL00009")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPayinPending, pending.Status)
	assert.True(t, f.store.HasUser(10))
	assert.Equal(t, 1, f.store.VolumeCount(10))
	assert.Empty(t, f.auditActions())
}

func TestDeleteUser_UnknownUser(t *testing.T) {
	f := newFixture(t)

	err := f.service.DeleteUser(context.Background(), actor, 77)
	assert.ErrorIs(t, err, errs.ErrUserNotFound)
}
