package lock

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	errs "github.com/amirhossein-jamali/remitbridge/internal/domain/error"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/core"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/persistence"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// KEYS[1] lock key, ARGV[1] owner token
var unlockScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
    return redis.call("del", KEYS[1])
else
    return 0
end
`)

// RedisLockRepository implements leased locks with SET NX PX and a token-checked unlock
type RedisLockRepository struct {
	client        redis.UniversalClient
	logger        core.Logger
	prefix        string
	retryInterval time.Duration
}

var _ persistence.LockRepository = (*RedisLockRepository)(nil)

// Config configures the Redis connection
type Config struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisClient connects and pings the server
func NewRedisClient(ctx context.Context, c Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         c.Addr,
		Password:     c.Password,
		DB:           c.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     20,
		MinIdleConns: 2,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect redis at %s: %w", c.Addr, err)
	}
	return rdb, nil
}

// NewRedisLockRepository creates a lock repository; keys are stored under prefix
func NewRedisLockRepository(client redis.UniversalClient, logger core.Logger, prefix string) *RedisLockRepository {
	return &RedisLockRepository{
		client:        client,
		logger:        logger,
		prefix:        prefix,
		retryInterval: 100 * time.Millisecond,
	}
}

// AcquireLock spins until the key is set or ctx is done
func (r *RedisLockRepository) AcquireLock(ctx context.Context, key string, ttl time.Duration) (string, error) {
	token := uuid.NewString()
	fullKey := r.prefix + key

	for {
		ok, err := r.client.SetNX(ctx, fullKey, token, ttl).Result()
		if err != nil {
			if ctx.Err() != nil {
				return "", ctx.Err()
			}
			r.logger.Error("Redis lock acquisition failed", map[string]any{
				"key":   fullKey,
				"error": err.Error(),
			})
			return "", fmt.Errorf("%w: redis: %s", errs.ErrUpstreamUnavailable, err.Error())
		}
		if ok {
			r.logger.Debug("Redis lock acquired", map[string]any{
				"key": fullKey,
				"ttl": ttl.String(),
			})
			return token, nil
		}

		// jitter spreads waiting replicas
		sleep := r.retryInterval + time.Duration(rand.IntN(20))*time.Millisecond
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(sleep):
		}
	}
}

// ReleaseLock deletes the key only when it still holds token
func (r *RedisLockRepository) ReleaseLock(ctx context.Context, key, token string) error {
	fullKey := r.prefix + key

	res, err := unlockScript.Run(ctx, r.client, []string{fullKey}, token).Int64()
	if err != nil {
		r.logger.Warn("Redis lock release failed, lock will expire", map[string]any{
			"key":   fullKey,
			"error": err.Error(),
		})
		return fmt.Errorf("%w: redis: %s", errs.ErrUpstreamUnavailable, err.Error())
	}
	if res == 0 {
		r.logger.Warn("Redis lock was not held at release, lease may have expired", map[string]any{
			"key": fullKey,
		})
	}
	return nil
}
