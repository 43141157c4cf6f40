package transaction

import (
	"testing"
	"time"

	"github.com/amirhossein-jamali/remitbridge/internal/domain/entity"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/core"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/usecase/notify"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/usecase/quote"
	"github.com/amirhossein-jamali/remitbridge/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/remitbridge/internal/testutil"
	providermocks "github.com/amirhossein-jamali/remitbridge/mocks/port/provider"
	usecasemocks "github.com/amirhossein-jamali/remitbridge/mocks/port/usecase"
	"github.com/shopspring/decimal"
)

const (
	senderID   uint64 = 1
	receiverID uint64 = 2
	strangerID uint64 = 3
)

type fixture struct {
	store    *testutil.Store
	clock    *testutil.Clock
	runner   *testutil.Runner
	bridge   *usecasemocks.MockBridgeUseCase
	gateway  *providermocks.MockPaymentGateway
	chain    *providermocks.MockTreasuryChain
	notifier *providermocks.MockNotifier
	service  *Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		store:    testutil.NewStore(),
		clock:    testutil.NewClock(time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)),
		runner:   testutil.NewRunner(),
		bridge:   usecasemocks.NewMockBridgeUseCase(t),
		gateway:  providermocks.NewMockPaymentGateway(t),
		chain:    providermocks.NewMockTreasuryChain(t),
		notifier: providermocks.NewMockNotifier(t),
	}
	log := logger.NewNoopLogger()

	// no partner credentials: every quote uses fallback pricing
	engine := quote.NewEngine(f.store.Rates(), nil, nil, quote.DefaultSettings(), f.clock, testutil.Metrics{}, log)
	dispatcher := notify.NewDispatcher(f.notifier, f.runner, f.clock, core.Second, log)

	f.service = NewService(f.store, engine, f.bridge, f.gateway, f.chain, dispatcher,
		DefaultSettings(), f.clock, testutil.Metrics{}, log)

	f.store.PutUser(&entity.User{ID: senderID, Email: "kofi@example.com"}, "Kofi")
	f.store.PutUser(&entity.User{ID: receiverID, Email: "awa@example.com"}, "Awa")
	f.store.PutUser(&entity.User{ID: strangerID, Email: "eve@example.com"}, "Eve")
	return f
}

// registeredReceiver stores a receiver profile owned by receiverID
func (f *fixture) registeredReceiver(handle, wallet string) *entity.Receiver {
	owner := receiverID
	r := &entity.Receiver{Handle: handle, UserID: &owner, FirstName: "Awa", WalletAddress: wallet}
	f.store.PutReceiver(r)
	return r
}

// provisionalReceiver stores a walletless receiver nobody owns yet
func (f *fixture) provisionalReceiver(handle string) *entity.Receiver {
	r := &entity.Receiver{Handle: handle, Provisional: true}
	f.store.PutReceiver(r)
	return r
}

func (f *fixture) seedTransaction(reference string, receiver uint64, status entity.TransactionStatus) *entity.Transaction {
	tx := &entity.Transaction{
		ReferenceCode:        reference,
		SenderID:             senderID,
		ReceiverID:           receiver,
		Status:               status,
		RoutingStrategy:      entity.RoutingInstantSepaInstant,
		DeliverySpeed:        entity.SpeedInstant,
		FiatAmountIn:         dec("50000"),
		TotalToPay:           dec("55694"),
		StablecoinAmount:     dec("78.5066"),
		ExpectedFiatOut:      dec("76.22"),
		GatewayTransactionID: "gw-1",
		CreatedAt:            f.clock.Now(),
	}
	f.store.PutTransaction(tx)
	return tx
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
