package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// RoutingStrategy names the settlement partner and payment method used for the off-ramp
type RoutingStrategy string

// Routing strategies
const (
	RoutingInstantSepaInstant RoutingStrategy = "INSTANT_PARTNER_SEPA_INSTANT"
	RoutingInstantSepa        RoutingStrategy = "INSTANT_PARTNER_SEPA"
	RoutingStandardSepa       RoutingStrategy = "STANDARD_PARTNER_SEPA"
)

// MaxFailureReasonLength is the width of the persisted failure reason column
const MaxFailureReasonLength = 255

// Transaction is a single remittance moving through the pay-in, bridge and off-ramp legs
type Transaction struct {
	ID                   uint64
	ReferenceCode        string
	SenderID             uint64
	ReceiverID           uint64
	Status               TransactionStatus
	RoutingStrategy      RoutingStrategy
	DeliverySpeed        DeliverySpeed
	FiatAmountIn         decimal.Decimal // XOF requested by the sender
	TotalToPay           decimal.Decimal // XOF charged including the gateway fee
	StablecoinAmount     decimal.Decimal
	ExpectedFiatOut      decimal.Decimal // EUR the receiver nets
	ExchangeRate         decimal.Decimal // commercial XOF per EUR
	ProviderRate         decimal.Decimal // partner EUR per stablecoin
	GatewayFee           decimal.Decimal
	PartnerFee           decimal.Decimal
	PlatformFee          decimal.Decimal
	PlatformMargin       decimal.Decimal
	GatewayTransactionID string
	ConfirmedAmount      decimal.Decimal
	GasTxHash            string
	TokenTxHash          string
	GasFeePaid           decimal.Decimal
	FailureReason        string
	ClaimedAt            *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// HasGatewayPayment reports whether the gateway assigned a payment id that can be refunded
func (t *Transaction) HasGatewayPayment() bool {
	return t.GatewayTransactionID != ""
}

// VisibleToReceiver reports whether the receiver may see this transaction
func (t *Transaction) VisibleToReceiver() bool {
	return !t.Status.In(ReceiverHiddenStatuses...)
}

// ClaimPreview is the public projection shown on an unauthenticated claim link
type ClaimPreview struct {
	ReferenceCode   string
	Status          TransactionStatus
	ExpectedFiatOut decimal.Decimal
	SenderFirstName string
	CreatedAt       time.Time
}

// StatusChange describes a conditional status write
type StatusChange struct {
	From []TransactionStatus
	To   TransactionStatus
	// Optional column updates applied in the same statement
	GatewayTransactionID *string
	ConfirmedAmount      *decimal.Decimal
	FailureReason        *string
	GasTxHash            *string
	TokenTxHash          *string
	GasFeePaid           *decimal.Decimal
}

// TransactionFilter narrows transaction listings.
// A nil ReceiverHasWallet matches any receiver; a zero UpdatedBefore matches any age.
type TransactionFilter struct {
	SenderID          uint64
	ReceiverID        uint64
	Statuses          []TransactionStatus
	ExcludeStatus     []TransactionStatus
	ReceiverHasWallet *bool
	UpdatedBefore     time.Time
	Limit             int
	Offset            int
}

// TransactionTotals aggregates amounts over a set of transactions
type TransactionTotals struct {
	Count            int64
	FiatAmountIn     decimal.Decimal
	TotalToPay       decimal.Decimal
	StablecoinAmount decimal.Decimal
	ExpectedFiatOut  decimal.Decimal
	GatewayFee       decimal.Decimal
	PartnerFee       decimal.Decimal
	PlatformFee      decimal.Decimal
	PlatformMargin   decimal.Decimal
	GasFeePaid       decimal.Decimal
}
