package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/remitbridge/internal/domain/error"
	coreport "github.com/amirhossein-jamali/remitbridge/internal/domain/port/core"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/remitbridge/internal/infrastructure/adapter/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SignerLockRepository implements leased locks on a database table. It is used when no
// Redis instance is configured.
type SignerLockRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
	pollInterval    time.Duration
}

var _ persistence.LockRepository = (*SignerLockRepository)(nil)

// NewSignerLockRepository creates a new SignerLockRepository instance
func NewSignerLockRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *SignerLockRepository {
	return &SignerLockRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
		pollInterval:    200 * time.Millisecond,
	}
}

// AcquireLock polls until the lease is taken or ctx is done
func (r *SignerLockRepository) AcquireLock(ctx context.Context, key string, ttl time.Duration) (string, error) {
	token := uuid.NewString()

	for {
		acquired, err := r.tryAcquire(ctx, key, token, ttl)
		if err != nil {
			return "", err
		}
		if acquired {
			r.logger.Debug("Signer lock acquired", map[string]any{
				"key": key,
				"ttl": ttl.String(),
			})
			return token, nil
		}

		select {
		case <-ctx.Done():
			return "", fmt.Errorf("lock acquisition timeout: %w", ctx.Err())
		case <-time.After(r.pollInterval):
		}
	}
}

// tryAcquire inserts the lease or takes over an expired one in a single statement
func (r *SignerLockRepository) tryAcquire(ctx context.Context, key, token string, ttl time.Duration) (bool, error) {
	now := r.timeProvider.Now()
	expiresAt := now.Add(ttl)

	result := r.db.WithContext(ctx).Exec(`
		INSERT INTO signer_locks (lock_key, token, locked_at, expires_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (lock_key) DO UPDATE
		SET token = EXCLUDED.token,
		    locked_at = EXCLUDED.locked_at,
		    expires_at = EXCLUDED.expires_at,
		    updated_at = EXCLUDED.updated_at
		WHERE signer_locks.expires_at <= ?`,
		key, token, now, expiresAt, now, now,
		now,
	)

	if result.Error != nil {
		if ctx.Err() != nil {
			return false, fmt.Errorf("lock acquisition timeout: %w", ctx.Err())
		}
		r.logger.Error("Database error acquiring signer lock", map[string]any{
			"key":   key,
			"error": result.Error.Error(),
		})
		return false, fmt.Errorf("%w: %s", errs.ErrUpstreamUnavailable, result.Error.Error())
	}

	return result.RowsAffected == 1, nil
}

// isContextError checks if an error is related to context timeout or cancellation
func isContextError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}

	errStr := err.Error()
	return strings.Contains(errStr, "context deadline exceeded") ||
		strings.Contains(errStr, "context canceled")
}

// ReleaseLock deletes the lease only if it still carries the caller's token
func (r *SignerLockRepository) ReleaseLock(ctx context.Context, key, token string) error {
	result := r.db.WithContext(ctx).
		Where("lock_key = ? AND token = ?", key, token).
		Delete(&model.SignerLock{})

	// the lease expires on its own
	if result.Error != nil && isContextError(result.Error) {
		r.logger.Warn("Context timeout when releasing signer lock, lock will expire automatically", map[string]any{
			"key":   key,
			"error": result.Error.Error(),
		})
		return nil
	}

	if result.Error != nil {
		r.logger.Error("Failed to release signer lock", map[string]any{
			"key":   key,
			"error": result.Error.Error(),
		})
		return r.errorClassifier.wrapError("release signer lock", result.Error)
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("Signer lock was not held at release, lease may have expired", map[string]any{
			"key": key,
		})
	}
	return nil
}

// CleanupExpiredLocks removes all expired leases
func (r *SignerLockRepository) CleanupExpiredLocks(ctx context.Context) error {
	result := r.db.WithContext(ctx).Where("expires_at < ?", r.timeProvider.Now()).Delete(&model.SignerLock{})
	if result.Error != nil {
		r.logger.Error("Failed to clean up expired signer locks", map[string]any{
			"error": result.Error.Error(),
		})
		return r.errorClassifier.wrapError("cleanup signer locks", result.Error)
	}

	if result.RowsAffected > 0 {
		r.logger.Info("Expired signer locks removed", map[string]any{
			"locks_removed": result.RowsAffected,
		})
	}
	return nil
}
