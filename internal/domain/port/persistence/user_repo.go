package persistence

import (
	"context"

	"github.com/amirhossein-jamali/remitbridge/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// UserRepository defines the methods to interact with users and their derived records
type UserRepository interface {
	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// Create creates a new user
	Create(ctx context.Context, user *entity.User) error

	// Delete removes the user row
	Delete(ctx context.Context, id uint64) error

	// GetSenderProfile retrieves the sender profile of a user
	//
	// Possible errors:
	// - ErrUserNotFound: If the user has no sender profile
	GetSenderProfile(ctx context.Context, userID uint64) (*entity.SenderProfile, error)

	// SaveSenderProfile creates or updates a sender profile
	SaveSenderProfile(ctx context.Context, profile *entity.SenderProfile) error

	// DeleteSenderProfile removes the sender profile of a user
	DeleteSenderProfile(ctx context.Context, userID uint64) (int64, error)

	// AddVolume accumulates completed XOF volume into the user's monthly record
	AddVolume(ctx context.Context, userID uint64, period string, amount decimal.Decimal) error

	// DeleteVolumeRecords removes every volume record of a user
	DeleteVolumeRecords(ctx context.Context, userID uint64) (int64, error)
}
