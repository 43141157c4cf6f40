package lock

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/amirhossein-jamali/remitbridge/internal/infrastructure/adapter/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *RedisLockRepository {
	t.Helper()

	addr := os.Getenv("RB_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("RB_TEST_REDIS_ADDR not set, skipping redis integration test")
	}

	client, err := NewRedisClient(context.Background(), Config{Addr: addr})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisLockRepository(client, logger.NewNoopLogger(), "rbtest:"+uuid.NewString()+":")
}

func TestRedisLock_ExclusiveUntilReleased(t *testing.T) {
	repo := newTestRepo(t)

	token, err := repo.AcquireLock(context.Background(), "signer", time.Minute)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 250*time.Millisecond)
	defer cancel()
	_, err = repo.AcquireLock(ctx, "signer", time.Minute)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	// a foreign token does not release the lock
	require.NoError(t, repo.ReleaseLock(context.Background(), "signer", "not-mine"))
	ctx2, cancel2 := context.WithTimeout(context.Background(), 250*time.Millisecond)
	defer cancel2()
	_, err = repo.AcquireLock(ctx2, "signer", time.Minute)
	assert.Error(t, err)

	require.NoError(t, repo.ReleaseLock(context.Background(), "signer", token))
	next, err := repo.AcquireLock(context.Background(), "signer", time.Minute)
	require.NoError(t, err)
	assert.NotEqual(t, token, next)
	require.NoError(t, repo.ReleaseLock(context.Background(), "signer", next))
}

func TestRedisLock_ExpiresAfterTTL(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.AcquireLock(context.Background(), "ttl", 200*time.Millisecond)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	token, err := repo.AcquireLock(ctx, "ttl", time.Minute)
	require.NoError(t, err)
	require.NoError(t, repo.ReleaseLock(context.Background(), "ttl", token))
}
