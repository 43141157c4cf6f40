package persistence

import (
	"context"
	"time"
)

// LockRepository provides short-lived exclusive locks shared by every replica
type LockRepository interface {
	// AcquireLock blocks until the lock is held or ctx is done. The lock expires after ttl.
	// The returned token must be passed to ReleaseLock.
	//
	// Possible errors:
	// - ErrUpstreamUnavailable: If the lock store cannot be reached
	AcquireLock(ctx context.Context, key string, ttl time.Duration) (string, error)

	// ReleaseLock releases the lock only if it is still held with the given token
	ReleaseLock(ctx context.Context, key, token string) error
}
