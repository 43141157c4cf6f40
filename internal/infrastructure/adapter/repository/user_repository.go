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
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository implements UserRepository interface using GORM
type UserRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

var _ persistence.UserRepository = (*UserRepository)(nil)

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error, userID uint64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Debug("User record not found", map[string]any{
			"operation": operation,
			"user_id":   userID,
		})
		return errs.ErrUserNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"user_id": userID,
		"error":   err.Error(),
	})
	return r.errorClassifier.wrapError(operation, err)
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*entity.User, error) {
	var row model.User
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, r.handleDatabaseError("getting user", err, id)
	}

	return &entity.User{ID: row.ID, Email: row.Email, CreatedAt: row.CreatedAt}, nil
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	if user.CreatedAt.IsZero() {
		user.CreatedAt = r.timeProvider.Now()
	}
	row := model.User{ID: user.ID, Email: user.Email, CreatedAt: user.CreatedAt}

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return r.handleDatabaseError("creating user", err, user.ID)
	}
	user.ID = row.ID

	r.logger.Info("User created successfully", map[string]any{
		"user_id": user.ID,
	})
	return nil
}

// Delete removes the user row
func (r *UserRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&model.User{}, id)
	if result.Error != nil {
		return r.handleDatabaseError("deleting user", result.Error, id)
	}
	if result.RowsAffected == 0 {
		return errs.ErrUserNotFound
	}
	return nil
}

// GetSenderProfile retrieves the sender profile of a user
func (r *UserRepository) GetSenderProfile(ctx context.Context, userID uint64) (*entity.SenderProfile, error) {
	var row model.SenderProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&row).Error; err != nil {
		return nil, r.handleDatabaseError("getting sender profile", err, userID)
	}

	return &entity.SenderProfile{
		ID:        row.ID,
		UserID:    row.UserID,
		FirstName: row.FirstName,
		LastName:  row.LastName,
		Phone:     row.Phone,
		CreatedAt: row.CreatedAt,
	}, nil
}

// SaveSenderProfile creates or updates the sender profile keyed by user
func (r *UserRepository) SaveSenderProfile(ctx context.Context, profile *entity.SenderProfile) error {
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = r.timeProvider.Now()
	}
	row := model.SenderProfile{
		UserID:    profile.UserID,
		FirstName: profile.FirstName,
		LastName:  profile.LastName,
		Phone:     profile.Phone,
		CreatedAt: profile.CreatedAt,
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"first_name", "last_name", "phone"}),
	}).Create(&row).Error
	if err != nil {
		return r.handleDatabaseError("saving sender profile", err, profile.UserID)
	}
	profile.ID = row.ID
	return nil
}

// DeleteSenderProfile removes the sender profile of a user
func (r *UserRepository) DeleteSenderProfile(ctx context.Context, userID uint64) (int64, error) {
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.SenderProfile{})
	if result.Error != nil {
		return 0, r.handleDatabaseError("deleting sender profile", result.Error, userID)
	}
	return result.RowsAffected, nil
}

// AddVolume upserts the monthly record, adding to the existing volume in the same statement
func (r *UserRepository) AddVolume(ctx context.Context, userID uint64, period string, amount decimal.Decimal) error {
	now := r.timeProvider.Now()
	row := model.VolumeRecord{
		UserID:    userID,
		Period:    period,
		VolumeXOF: amount,
		Count:     1,
		UpdatedAt: now,
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "period"}},
		DoUpdates: clause.Assignments(map[string]any{
			"volume_xof": gorm.Expr("volume_records.volume_xof + EXCLUDED.volume_xof"),
			"count":      gorm.Expr("volume_records.count + 1"),
			"updated_at": now,
		}),
	}).Create(&row).Error
	if err != nil {
		return r.handleDatabaseError("adding volume", err, userID)
	}

	r.logger.Debug("Volume recorded", map[string]any{
		"user_id": userID,
		"period":  period,
		"amount":  amount.String(),
	})
	return nil
}

// DeleteVolumeRecords removes every volume record of a user
func (r *UserRepository) DeleteVolumeRecords(ctx context.Context, userID uint64) (int64, error) {
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.VolumeRecord{})
	if result.Error != nil {
		return 0, r.handleDatabaseError("deleting volume records", result.Error, userID)
	}
	return result.RowsAffected, nil
}
