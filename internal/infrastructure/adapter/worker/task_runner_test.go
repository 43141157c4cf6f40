package worker

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/amirhossein-jamali/remitbridge/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/assert"
)

func TestTaskRunner_RunsAndWaits(t *testing.T) {
	r := NewTaskRunner(logger.NewNoopLogger(), 4)

	var done atomic.Int32
	for i := 0; i < 10; i++ {
		r.Go("count", func(ctx context.Context) {
			time.Sleep(5 * time.Millisecond)
			done.Add(1)
		})
	}
	r.Shutdown()

	assert.Equal(t, int32(10), done.Load())
}

func TestTaskRunner_BoundsConcurrency(t *testing.T) {
	r := NewTaskRunner(logger.NewNoopLogger(), 2)

	var mu sync.Mutex
	current, peak := 0, 0
	for i := 0; i < 8; i++ {
		r.Go("bounded", func(ctx context.Context) {
			mu.Lock()
			current++
			if current > peak {
				peak = current
			}
			mu.Unlock()
			time.Sleep(10 * time.Millisecond)
			mu.Lock()
			current--
			mu.Unlock()
		})
	}
	r.Shutdown()

	assert.LessOrEqual(t, peak, 2)
}

func TestTaskRunner_RecoversPanics(t *testing.T) {
	r := NewTaskRunner(logger.NewNoopLogger(), 1)

	var after atomic.Bool
	r.Go("panics", func(ctx context.Context) { panic("boom") })
	r.Go("after", func(ctx context.Context) { after.Store(true) })
	r.Shutdown()

	assert.True(t, after.Load())
}

func TestTaskRunner_RejectsAfterShutdown(t *testing.T) {
	r := NewTaskRunner(logger.NewNoopLogger(), 1)
	r.Shutdown()

	var ran atomic.Bool
	r.Go("late", func(ctx context.Context) { ran.Store(true) })
	r.Shutdown()

	assert.False(t, ran.Load())
}
