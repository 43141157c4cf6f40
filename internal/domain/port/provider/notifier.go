package provider

import "context"

// Notification events
const (
	EventPaymentReceived  = "payment_received"
	EventFundsAvailable   = "funds_available"
	EventEscrowHeld       = "escrow_held"
	EventTransferComplete = "transfer_completed"
	EventBroadcast        = "broadcast"
)

// Notification is a push message addressed to one user
type Notification struct {
	UserID        uint64
	Event         string
	Title         string
	Body          string
	ReferenceCode string
}

// Notifier delivers push notifications. Delivery is best effort.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
	Broadcast(ctx context.Context, title, body string) error
}
