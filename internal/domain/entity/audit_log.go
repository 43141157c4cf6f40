package entity

import "time"

// AuditAction is the kind of administrative action recorded
type AuditAction string

// Audit actions
const (
	AuditRetryBridge    AuditAction = "RETRY_BRIDGE"
	AuditForceStatus    AuditAction = "FORCE_STATUS"
	AuditRefund         AuditAction = "REFUND"
	AuditRateUpdate     AuditAction = "RATE_UPDATE"
	AuditBroadcast      AuditAction = "PUSH_BROADCAST"
	AuditDeleteTxs      AuditAction = "DELETE_USER_TRANSACTIONS"
	AuditDeleteVolume   AuditAction = "DELETE_USER_VOLUME"
	AuditDeleteSender   AuditAction = "DELETE_SENDER_PROFILE"
	AuditDeleteReceiver AuditAction = "DELETE_RECEIVER_PROFILE"
	AuditDeleteUser     AuditAction = "DELETE_USER"
)

// AuditLogEntry is an append-only record of an administrative action
type AuditLogEntry struct {
	ID        uint64
	Actor     string
	Action    AuditAction
	Detail    string
	CreatedAt time.Time
}

// AuditPage is a page of audit entries
type AuditPage struct {
	Entries  []AuditLogEntry
	Total    int64
	Page     int
	PageSize int
}
