package admin

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/amirhossein-jamali/remitbridge/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLiquidity_DegradesFailedBalances(t *testing.T) {
	f := newFixture(t)
	f.store.PutTransaction(&entity.Transaction{ReferenceCode: "RB-LIQ00001", Status: entity.StatusPayinSuccess,
		StablecoinAmount: dec("78.5066"), ExpectedFiatOut: dec("76.22")})
	f.store.PutTransaction(&entity.Transaction{ReferenceCode: "RB-LIQ00002", Status: entity.StatusPayinSuccess,
		StablecoinAmount: dec("21.4934"), ExpectedFiatOut: dec("20.78")})
	f.store.PutTransaction(&entity.Transaction{ReferenceCode: "RB-LIQ00003", Status: entity.StatusCompleted,
		FiatAmountIn: dec("50000")})

	f.gateway.EXPECT().Balance(mock.Anything).Return(dec("0"), errors.New("gateway timeout")).Once()
	f.chain.EXPECT().StablecoinBalance(mock.Anything).Return(dec("1500.25"), nil).Once()
	f.chain.EXPECT().NativeBalance(mock.Anything).Return(dec("0.42"), nil).Once()

	snapshot, err := f.service.Liquidity(context.Background())
	require.NoError(t, err)

	assert.Nil(t, snapshot.GatewayXOF.Amount)
	assert.Equal(t, "gateway timeout", snapshot.GatewayXOF.Error)

	require.NotNil(t, snapshot.TreasuryToken.Amount)
	assert.Equal(t, "1500.25", snapshot.TreasuryToken.Amount.String())
	assert.Empty(t, snapshot.TreasuryToken.Error)
	require.NotNil(t, snapshot.TreasuryNative.Amount)
	assert.Equal(t, "0.42", snapshot.TreasuryNative.Amount.String())

	assert.Equal(t, int64(2), snapshot.EscrowCount)
	assert.Equal(t, "100", snapshot.EscrowTotal.String())
	assert.Equal(t, "97", snapshot.EscrowFiatOut.String())
	assert.Equal(t, "50000", snapshot.CompletedVolume.String())
}

func TestAnalytics(t *testing.T) {
	f := newFixture(t)
	for i, status := range []entity.TransactionStatus{
		entity.StatusCompleted, entity.StatusCompleted, entity.StatusRefunded, entity.StatusBridgeFailed,
	} {
		f.store.PutTransaction(&entity.Transaction{
			ReferenceCode: fmt.Sprintf("RB-ANA%05d", i),
			Status:        status,
			FiatAmountIn:  dec("10000"),
			GatewayFee:    dec("150"),
			PlatformFee:   dec("600"),
		})
	}

	analytics, err := f.service.Analytics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(2), analytics.CountByStatus[entity.StatusCompleted])
	assert.Equal(t, int64(1), analytics.CountByStatus[entity.StatusRefunded])
	assert.Equal(t, int64(1), analytics.CountByStatus[entity.StatusBridgeFailed])
	assert.Equal(t, int64(2), analytics.Completed.Count)
	assert.Equal(t, "20000", analytics.Completed.FiatAmountIn.String())
	assert.Equal(t, "300", analytics.Completed.GatewayFee.String())
	assert.Equal(t, "1200", analytics.Completed.PlatformFee.String())
	assert.Equal(t, int64(1), analytics.Refunded.Count)
}

func TestAuditLogs_Pagination(t *testing.T) {
	f := newFixture(t)
	for i := 0; i < 5; i++ {
		require.NoError(t, f.service.audit(context.Background(), actor, entity.AuditForceStatus, "entry %d", i))
	}

	page, err := f.service.AuditLogs(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), page.Total)
	require.Len(t, page.Entries, 2)
	assert.Equal(t, "entry 4", page.Entries[0].Detail)

	last, err := f.service.AuditLogs(context.Background(), 3, 2)
	require.NoError(t, err)
	require.Len(t, last.Entries, 1)
	assert.Equal(t, "entry 0", last.Entries[0].Detail)

	beyond, err := f.service.AuditLogs(context.Background(), 9, 2)
	require.NoError(t, err)
	assert.Empty(t, beyond.Entries)

	defaults, err := f.service.AuditLogs(context.Background(), 0, 1000)
	require.NoError(t, err)
	assert.Equal(t, 1, defaults.Page)
	assert.Equal(t, maxPageSize, defaults.PageSize)
}
