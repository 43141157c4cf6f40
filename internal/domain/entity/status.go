package entity

// TransactionStatus is the position of a transaction in the settlement pipeline
type TransactionStatus string

// TransactionStatus constants
const (
	StatusInitiated          TransactionStatus = "INITIATED"
	StatusPayinPending       TransactionStatus = "PAYIN_PENDING"
	StatusPayinSuccess       TransactionStatus = "PAYIN_SUCCESS"
	StatusPayinFailed        TransactionStatus = "PAYIN_FAILED"
	StatusBridgeProcessing   TransactionStatus = "BRIDGE_PROCESSING"
	StatusBridgeFailed       TransactionStatus = "BRIDGE_FAILED"
	StatusWaitingUserOfframp TransactionStatus = "WAITING_USER_OFFRAMP"
	StatusOfframpProcessing  TransactionStatus = "OFFRAMP_PROCESSING"
	StatusOfframpFailed      TransactionStatus = "OFFRAMP_FAILED"
	StatusCompleted          TransactionStatus = "COMPLETED"
	StatusRefunded           TransactionStatus = "REFUNDED"
	StatusCancelled          TransactionStatus = "CANCELLED"
)

// AllStatuses lists every status in pipeline order
var AllStatuses = []TransactionStatus{
	StatusInitiated,
	StatusPayinPending,
	StatusPayinSuccess,
	StatusPayinFailed,
	StatusBridgeProcessing,
	StatusBridgeFailed,
	StatusWaitingUserOfframp,
	StatusOfframpProcessing,
	StatusOfframpFailed,
	StatusCompleted,
	StatusRefunded,
	StatusCancelled,
}

// legalTransitions holds every edge of the state machine; admin force-status bypasses it
var legalTransitions = map[TransactionStatus][]TransactionStatus{
	StatusInitiated:          {StatusPayinPending, StatusPayinSuccess, StatusPayinFailed},
	StatusPayinPending:       {StatusPayinSuccess, StatusPayinFailed},
	StatusPayinSuccess:       {StatusBridgeProcessing, StatusRefunded},
	StatusBridgeProcessing:   {StatusWaitingUserOfframp, StatusBridgeFailed},
	StatusBridgeFailed:       {StatusPayinSuccess, StatusRefunded},
	StatusWaitingUserOfframp: {StatusOfframpProcessing},
	StatusOfframpProcessing:  {StatusCompleted, StatusOfframpFailed},
	StatusOfframpFailed:      {StatusRefunded},
}

// AwaitingPaymentStatuses are the statuses in which a gateway notification is still expected
var AwaitingPaymentStatuses = []TransactionStatus{StatusInitiated, StatusPayinPending}

// RefundableStatuses are the only statuses a refund may start from
var RefundableStatuses = []TransactionStatus{StatusPayinSuccess, StatusBridgeFailed, StatusOfframpFailed}

// TerminalStatuses are the statuses IsTerminal accepts
var TerminalStatuses = []TransactionStatus{StatusCompleted, StatusRefunded, StatusCancelled, StatusPayinFailed}

// ReceiverHiddenStatuses are never shown to receivers because the payment has not cleared
var ReceiverHiddenStatuses = []TransactionStatus{StatusInitiated, StatusPayinPending, StatusPayinFailed, StatusCancelled}

// ParseStatus validates a raw status string
func ParseStatus(raw string) (TransactionStatus, bool) {
	for _, s := range AllStatuses {
		if string(s) == raw {
			return s, true
		}
	}
	return "", false
}

// CanTransitionTo reports whether next is a legal edge from s
func (s TransactionStatus) CanTransitionTo(next TransactionStatus) bool {
	for _, candidate := range legalTransitions[s] {
		if candidate == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further regular transitions exist
func (s TransactionStatus) IsTerminal() bool {
	return s.In(TerminalStatuses...)
}

// IsAwaitingPayment reports whether the gateway has not yet confirmed or failed the pay-in
func (s TransactionStatus) IsAwaitingPayment() bool {
	return s.In(AwaitingPaymentStatuses...)
}

// BlocksAccountDeletion reports whether a transaction in this status keeps its owner from being deleted
func (s TransactionStatus) BlocksAccountDeletion() bool {
	return !s.IsTerminal()
}

// In reports whether s is one of the given statuses
func (s TransactionStatus) In(statuses ...TransactionStatus) bool {
	for _, candidate := range statuses {
		if s == candidate {
			return true
		}
	}
	return false
}
