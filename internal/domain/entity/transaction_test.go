package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestStatusTransitions(t *testing.T) {
	testCases := []struct {
		from     TransactionStatus
		to       TransactionStatus
		expected bool
	}{
		{StatusInitiated, StatusPayinPending, true},
		{StatusInitiated, StatusPayinSuccess, true},
		{StatusInitiated, StatusBridgeProcessing, false},
		{StatusPayinPending, StatusPayinFailed, true},
		{StatusPayinSuccess, StatusBridgeProcessing, true},
		{StatusPayinSuccess, StatusPayinFailed, false},
		{StatusBridgeProcessing, StatusBridgeProcessing, false},
		{StatusBridgeProcessing, StatusWaitingUserOfframp, true},
		{StatusBridgeFailed, StatusPayinSuccess, true},
		{StatusBridgeFailed, StatusRefunded, true},
		{StatusWaitingUserOfframp, StatusOfframpProcessing, true},
		{StatusOfframpProcessing, StatusCompleted, true},
		{StatusOfframpFailed, StatusRefunded, true},
		{StatusCompleted, StatusRefunded, false},
		{StatusRefunded, StatusPayinSuccess, false},
		{StatusInitiated, StatusCancelled, false},
	}

	for _, tc := range testCases {
		t.Run(string(tc.from)+"->"+string(tc.to), func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestTerminalStatuses(t *testing.T) {
	for _, s := range AllStatuses {
		terminal := s.IsTerminal()
		if terminal {
			assert.Empty(t, legalTransitions[s], "terminal status %s must have no outgoing edges", s)
		} else {
			assert.NotEmpty(t, legalTransitions[s], "non-terminal status %s must have outgoing edges", s)
		}
		assert.Equal(t, !terminal, s.BlocksAccountDeletion())
	}
}

func TestRefundableStatusesAreLegalEdges(t *testing.T) {
	for _, s := range RefundableStatuses {
		assert.True(t, s.CanTransitionTo(StatusRefunded))
	}
}

func TestParseStatus(t *testing.T) {
	s, ok := ParseStatus("BRIDGE_FAILED")
	assert.True(t, ok)
	assert.Equal(t, StatusBridgeFailed, s)

	_, ok = ParseStatus("bridge_failed")
	assert.False(t, ok)
}

func TestVisibleToReceiver(t *testing.T) {
	tx := &Transaction{Status: StatusPayinPending}
	assert.False(t, tx.VisibleToReceiver())

	tx.Status = StatusPayinSuccess
	assert.True(t, tx.VisibleToReceiver())

	tx.Status = StatusCancelled
	assert.False(t, tx.VisibleToReceiver())
}

func TestExchangeRate(t *testing.T) {
	rate := &ExchangeRate{
		Pair:          PairEURXOFInstant,
		BaseRate:      decimal.RequireFromString("700"),
		MarkupPercent: decimal.RequireFromString("2"),
	}
	assert.Equal(t, "714", rate.EffectiveRate().String())

	base := decimal.RequireFromString("690")
	update := RateUpdate{BaseRate: &base}
	assert.False(t, update.IsEmpty())
	update.Apply(rate)
	assert.Equal(t, "690", rate.BaseRate.String())
	assert.Equal(t, "2", rate.MarkupPercent.String())

	assert.True(t, RateUpdate{}.IsEmpty())
}

func TestParseQuoteInputs(t *testing.T) {
	c, ok := ParseCurrency(" xof ")
	assert.True(t, ok)
	assert.Equal(t, CurrencyXOF, c)

	_, ok = ParseCurrency("USD")
	assert.False(t, ok)

	s, ok := ParseDeliverySpeed("standard")
	assert.True(t, ok)
	assert.Equal(t, SpeedStandard, s)
	assert.Equal(t, PairEURXOFStandard, s.RatePair())
	assert.Equal(t, PairEURXOFInstant, SpeedInstant.RatePair())

	_, ok = ParseDeliverySpeed("")
	assert.False(t, ok)
}

func TestReceiverHelpers(t *testing.T) {
	assert.Equal(t, "awa", NormalizeHandle(" @Awa "))
	r := &Receiver{}
	assert.False(t, r.HasWallet())
	r.WalletAddress = "0x00000000000000000000000000000000000000aa"
	assert.True(t, r.HasWallet())
}
