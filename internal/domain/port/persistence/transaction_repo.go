package persistence

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/remitbridge/internal/domain/entity"
)

// TransactionRepository defines the methods to interact with remittance transactions
type TransactionRepository interface {
	// Create saves a new transaction and assigns its ID
	//
	// Possible errors:
	// - ErrDuplicate: If the reference code is already used
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, tx *entity.Transaction) error

	// GetByID retrieves a transaction by its internal ID
	//
	// Possible errors:
	// - ErrTransactionNotFound: If no transaction has this ID
	GetByID(ctx context.Context, id uint64) (*entity.Transaction, error)

	// GetByReference retrieves a transaction by its reference code
	//
	// Possible errors:
	// - ErrTransactionNotFound: If no transaction has this reference
	GetByReference(ctx context.Context, reference string) (*entity.Transaction, error)

	// List returns transactions matching the filter, newest first
	List(ctx context.Context, filter entity.TransactionFilter) ([]*entity.Transaction, error)

	// CompareAndSetStatus moves a transaction to change.To only if its current status is one of
	// change.From, writing the optional columns in the same statement. It returns false when the
	// guard did not match, which callers treat as a lost race.
	CompareAndSetStatus(ctx context.Context, id uint64, change entity.StatusChange) (bool, error)

	// ForceStatus writes a status unconditionally. Only the admin override uses it.
	//
	// Possible errors:
	// - ErrTransactionNotFound: If no transaction has this ID
	ForceStatus(ctx context.Context, id uint64, status entity.TransactionStatus, reason string) error

	// ReassignReceiver re-points an unclaimed PAYIN_SUCCESS transaction from one receiver to another.
	// It returns false when the transaction was already claimed or has moved on.
	ReassignReceiver(ctx context.Context, id, fromReceiverID, toReceiverID uint64, claimedAt time.Time) (bool, error)

	// ListByParticipant returns every transaction sent by senderID or addressed to receiverID
	ListByParticipant(ctx context.Context, senderID, receiverID uint64) ([]*entity.Transaction, error)

	// DeleteByParticipant physically deletes the transactions returned by ListByParticipant
	// that are in one of the given statuses. No statuses means no restriction.
	DeleteByParticipant(ctx context.Context, senderID, receiverID uint64, statuses ...entity.TransactionStatus) (int64, error)

	// CountByStatus returns the number of transactions per status
	CountByStatus(ctx context.Context) (map[entity.TransactionStatus]int64, error)

	// Totals sums amount columns over transactions in the given statuses
	Totals(ctx context.Context, statuses ...entity.TransactionStatus) (*entity.TransactionTotals, error)
}
