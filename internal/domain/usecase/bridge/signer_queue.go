package bridge

import (
	"context"
	"errors"
	"sync"
	"time"

	errs "github.com/amirhossein-jamali/remitbridge/internal/domain/error"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/core"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/persistence"
)

// ErrQueueClosed is returned when work is submitted after Shutdown
var ErrQueueClosed = errors.New("signer queue is shut down")

// SignerJob runs while the signer is held exclusively
type SignerJob func(ctx context.Context) error

// SignerQueue serializes every broadcast that spends from the same signing key. Each key gets
// one worker goroutine consuming its queue in order. When a lock repository is configured the
// worker also holds a distributed lock so replicas sharing the key do not race on nonces.
type SignerQueue struct {
	logger  core.Logger
	locks   persistence.LockRepository
	lockTTL time.Duration

	queues  sync.Map // map[string]chan *signerRequest
	workers sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

// signerRequest represents a queued job
type signerRequest struct {
	ctx        context.Context
	job        SignerJob
	resultChan chan error
}

// NewSignerQueue creates a signer queue. locks may be nil for single-replica deployments.
func NewSignerQueue(logger core.Logger, locks persistence.LockRepository, lockTTL time.Duration) *SignerQueue {
	return &SignerQueue{
		logger:  logger,
		locks:   locks,
		lockTTL: lockTTL,
	}
}

// Do enqueues job on the signer's queue and waits for its result
func (q *SignerQueue) Do(ctx context.Context, signer string, job SignerJob) error {
	q.mu.RLock()
	if q.closed {
		q.mu.RUnlock()
		return ErrQueueClosed
	}

	queueIface, loaded := q.queues.LoadOrStore(signer, make(chan *signerRequest, 64))
	queue, ok := queueIface.(chan *signerRequest)
	if !ok {
		q.mu.RUnlock()
		q.logger.Error("Failed to type assert signer queue channel", nil)
		return errs.ErrInternalServer
	}

	if !loaded {
		q.logger.Info("Starting signer queue worker", map[string]any{
			"signer": signer,
		})
		q.workers.Add(1)
		go q.work(signer, queue)
	}

	req := &signerRequest{ctx: ctx, job: job, resultChan: make(chan error, 1)}

	select {
	case queue <- req:
	case <-ctx.Done():
		q.mu.RUnlock()
		return ctx.Err()
	}
	q.mu.RUnlock()

	// once queued the job owns its state until the worker reports back; a cancelled ctx makes the
	// worker skip or abort it
	return <-req.resultChan
}

// work drains one signer's queue sequentially
func (q *SignerQueue) work(signer string, queue chan *signerRequest) {
	defer q.workers.Done()

	for req := range queue {
		req.resultChan <- q.run(signer, req)
		close(req.resultChan)
	}

	q.logger.Info("Signer queue worker stopped", map[string]any{
		"signer": signer,
	})
}

func (q *SignerQueue) run(signer string, req *signerRequest) (err error) {
	if err := req.ctx.Err(); err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			q.logger.Error("Signer job panicked", map[string]any{
				"signer": signer,
				"panic":  r,
			})
			err = errs.ErrInternalServer
		}
	}()

	if q.locks == nil {
		return req.job(req.ctx)
	}

	key := "signer:" + signer
	token, err := q.locks.AcquireLock(req.ctx, key, q.lockTTL)
	if err != nil {
		return err
	}
	defer func() {
		if releaseErr := q.locks.ReleaseLock(context.WithoutCancel(req.ctx), key, token); releaseErr != nil {
			q.logger.Warn("Failed to release signer lock", map[string]any{
				"signer": signer,
				"error":  releaseErr.Error(),
			})
		}
	}()

	return req.job(req.ctx)
}

// Shutdown stops accepting work, drains every queue and waits for the workers
func (q *SignerQueue) Shutdown() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	q.mu.Unlock()

	q.queues.Range(func(_, queueIface any) bool {
		if queue, ok := queueIface.(chan *signerRequest); ok {
			close(queue)
		}
		return true
	})

	q.workers.Wait()
	q.logger.Info("Signer queue shut down", nil)
}
