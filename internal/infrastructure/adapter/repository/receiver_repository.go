package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/remitbridge/internal/domain/entity"
	errs "github.com/amirhossein-jamali/remitbridge/internal/domain/error"
	coreport "github.com/amirhossein-jamali/remitbridge/internal/domain/port/core"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/remitbridge/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// ReceiverRepository implements ReceiverRepository interface using GORM
type ReceiverRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

var _ persistence.ReceiverRepository = (*ReceiverRepository)(nil)

// NewReceiverRepository creates a new ReceiverRepository instance
func NewReceiverRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *ReceiverRepository {
	return &ReceiverRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func receiverToModel(r *entity.Receiver) model.Receiver {
	return model.Receiver{
		ID:            r.ID,
		Handle:        r.Handle,
		UserID:        r.UserID,
		FirstName:     r.FirstName,
		WalletAddress: r.WalletAddress,
		Provisional:   r.Provisional,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func receiverToEntity(m *model.Receiver) *entity.Receiver {
	return &entity.Receiver{
		ID:            m.ID,
		Handle:        m.Handle,
		UserID:        m.UserID,
		FirstName:     m.FirstName,
		WalletAddress: m.WalletAddress,
		Provisional:   m.Provisional,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func (r *ReceiverRepository) handleDatabaseError(operation string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrReceiverNotFound
	}
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"error": err.Error(),
	})
	return r.errorClassifier.wrapError(operation, err)
}

// Create saves a new receiver profile
func (r *ReceiverRepository) Create(ctx context.Context, receiver *entity.Receiver) error {
	now := r.timeProvider.Now()
	if receiver.CreatedAt.IsZero() {
		receiver.CreatedAt = now
	}
	receiver.UpdatedAt = now
	receiver.Handle = entity.NormalizeHandle(receiver.Handle)

	row := receiverToModel(receiver)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if r.errorClassifier.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: handle %s", errs.ErrDuplicate, receiver.Handle)
		}
		return r.handleDatabaseError("creating receiver", err)
	}
	receiver.ID = row.ID

	r.logger.Info("Receiver created", map[string]any{
		"receiver_id": receiver.ID,
		"handle":      receiver.Handle,
		"provisional": receiver.Provisional,
	})
	return nil
}

// GetByID retrieves a receiver by ID
func (r *ReceiverRepository) GetByID(ctx context.Context, id uint64) (*entity.Receiver, error) {
	var row model.Receiver
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, r.handleDatabaseError("getting receiver", err)
	}
	return receiverToEntity(&row), nil
}

// GetByHandle retrieves a receiver by its normalized handle
func (r *ReceiverRepository) GetByHandle(ctx context.Context, handle string) (*entity.Receiver, error) {
	var row model.Receiver
	err := r.db.WithContext(ctx).Where("handle = ?", entity.NormalizeHandle(handle)).First(&row).Error
	if err != nil {
		return nil, r.handleDatabaseError("getting receiver by handle", err)
	}
	return receiverToEntity(&row), nil
}

// GetByUserID retrieves the receiver profile owned by a user
func (r *ReceiverRepository) GetByUserID(ctx context.Context, userID uint64) (*entity.Receiver, error) {
	var row model.Receiver
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&row).Error; err != nil {
		return nil, r.handleDatabaseError("getting receiver by user", err)
	}
	return receiverToEntity(&row), nil
}

// Update saves a modified receiver
func (r *ReceiverRepository) Update(ctx context.Context, receiver *entity.Receiver) error {
	receiver.UpdatedAt = r.timeProvider.Now()
	result := r.db.WithContext(ctx).Model(&model.Receiver{}).
		Where("id = ?", receiver.ID).
		Updates(map[string]any{
			"user_id":        receiver.UserID,
			"first_name":     receiver.FirstName,
			"wallet_address": receiver.WalletAddress,
			"provisional":    receiver.Provisional,
			"updated_at":     receiver.UpdatedAt,
		})
	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			return fmt.Errorf("%w: user already owns a receiver profile", errs.ErrDuplicate)
		}
		return r.handleDatabaseError("updating receiver", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrReceiverNotFound
	}
	return nil
}

// DeleteByUserID removes the receiver profile owned by a user
func (r *ReceiverRepository) DeleteByUserID(ctx context.Context, userID uint64) (int64, error) {
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.Receiver{})
	if result.Error != nil {
		return 0, r.handleDatabaseError("deleting receiver", result.Error)
	}
	return result.RowsAffected, nil
}
