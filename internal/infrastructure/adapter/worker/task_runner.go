package worker

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"sync/atomic"

	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/core"
	"golang.org/x/sync/semaphore"
)

// TaskRunner runs background tasks with bounded concurrency. Panics are recovered and logged.
type TaskRunner struct {
	logger  core.Logger
	sem     *semaphore.Weighted
	wg      sync.WaitGroup
	root    context.Context
	mu      sync.RWMutex
	closed  bool
	running atomic.Int64
}

var _ core.TaskRunner = (*TaskRunner)(nil)

// NewTaskRunner creates a runner allowing maxConcurrent tasks at once
func NewTaskRunner(logger core.Logger, maxConcurrent int64) *TaskRunner {
	if maxConcurrent <= 0 {
		maxConcurrent = 64
	}
	return &TaskRunner{
		logger: logger,
		sem:    semaphore.NewWeighted(maxConcurrent),
		root:   context.Background(),
	}
}

// Go schedules fn. Tasks submitted after Shutdown are dropped.
func (r *TaskRunner) Go(name string, fn func(ctx context.Context)) {
	r.mu.RLock()
	if r.closed {
		r.mu.RUnlock()
		r.logger.Warn("Task rejected after shutdown", map[string]any{
			"task": name,
		})
		return
	}
	r.wg.Add(1)
	r.mu.RUnlock()

	go func() {
		defer r.wg.Done()

		if err := r.sem.Acquire(r.root, 1); err != nil {
			return
		}
		defer r.sem.Release(1)

		r.running.Add(1)
		defer r.running.Add(-1)

		defer func() {
			if rec := recover(); rec != nil {
				r.logger.Error("Background task panicked", map[string]any{
					"task":  name,
					"panic": fmt.Sprint(rec),
					"stack": string(debug.Stack()),
				})
			}
		}()

		r.logger.Debug("Background task started", map[string]any{
			"task": name,
		})
		fn(r.root)
	}()
}

// Running returns the number of tasks currently executing
func (r *TaskRunner) Running() int64 {
	return r.running.Load()
}

// Shutdown stops accepting tasks and waits for in-flight ones
func (r *TaskRunner) Shutdown() {
	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()

	r.logger.Info("Waiting for background tasks", map[string]any{
		"running": r.running.Load(),
	})
	r.wg.Wait()
	r.logger.Info("Background tasks finished", nil)
}
