package persistence

import (
	"context"

	"github.com/amirhossein-jamali/remitbridge/internal/domain/entity"
)

// ReceiverRepository defines the methods to manage receiver profiles
type ReceiverRepository interface {
	// Create saves a new receiver profile
	//
	// Possible errors:
	// - ErrDuplicate: If the handle is taken
	Create(ctx context.Context, receiver *entity.Receiver) error

	// GetByID retrieves a receiver by ID
	//
	// Possible errors:
	// - ErrReceiverNotFound: If no receiver has this ID
	GetByID(ctx context.Context, id uint64) (*entity.Receiver, error)

	// GetByHandle retrieves a receiver by its normalized handle
	//
	// Possible errors:
	// - ErrReceiverNotFound: If no receiver has this handle
	GetByHandle(ctx context.Context, handle string) (*entity.Receiver, error)

	// GetByUserID retrieves the receiver profile owned by a user
	//
	// Possible errors:
	// - ErrReceiverNotFound: If the user has no receiver profile
	GetByUserID(ctx context.Context, userID uint64) (*entity.Receiver, error)

	// Update saves a modified receiver
	Update(ctx context.Context, receiver *entity.Receiver) error

	// DeleteByUserID removes the receiver profile owned by a user
	DeleteByUserID(ctx context.Context, userID uint64) (int64, error)
}
