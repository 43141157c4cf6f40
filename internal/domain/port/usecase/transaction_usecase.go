package usecase

import (
	"context"

	"github.com/amirhossein-jamali/remitbridge/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest is the sender's confirmation of a quote
type CreateTransactionRequest struct {
	ReceiverHandle  string
	FiatAmountIn    decimal.Decimal
	ExpectedFiatOut decimal.Decimal
	DeliverySpeed   string
}

// PaymentSession is returned when a sender starts paying for a transaction
type PaymentSession struct {
	Transaction *entity.Transaction
	CheckoutURL string
}

// RegisterReceiverRequest creates or claims a receiver profile for a user
type RegisterReceiverRequest struct {
	Handle        string
	FirstName     string
	WalletAddress string
}

// TransactionUseCase owns transaction creation, reads, claims and the off-ramp leg
type TransactionUseCase interface {
	CreateTransaction(ctx context.Context, senderID uint64, req CreateTransactionRequest) (*entity.Transaction, error)
	InitiatePayment(ctx context.Context, senderID, transactionID uint64) (*PaymentSession, error)

	ListBySender(ctx context.Context, senderID uint64, limit, offset int) ([]*entity.Transaction, error)
	ListByReceiver(ctx context.Context, userID uint64, limit, offset int) ([]*entity.Transaction, error)
	GetByID(ctx context.Context, userID, transactionID uint64) (*entity.Transaction, error)
	GetByReference(ctx context.Context, userID uint64, reference string) (*entity.Transaction, error)
	ClaimPreview(ctx context.Context, reference string) (*entity.ClaimPreview, error)
	Claim(ctx context.Context, reference string, receiverUserID uint64) (*entity.Transaction, error)

	RegisterReceiver(ctx context.Context, userID uint64, req RegisterReceiverRequest) (*entity.Receiver, error)
	AttachWalletAddress(ctx context.Context, userID uint64, address string) (*entity.Receiver, int, error)

	StartOfframp(ctx context.Context, userID, transactionID uint64) (*entity.Transaction, error)
	HandleOfframpNotification(ctx context.Context, n OfframpNotification) WebhookResult
}
