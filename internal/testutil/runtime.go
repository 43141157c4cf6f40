package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/core"
)

// Clock is a TimeProvider frozen at a settable instant
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

// NewClock returns a clock frozen at now
func NewClock(now time.Time) *Clock {
	return &Clock{now: now}
}

// Now returns the frozen instant
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Since measures against the frozen instant
func (c *Clock) Since(t time.Time) core.Duration {
	return core.Duration(c.Now().Sub(t))
}

// WithTimeout wraps context.WithTimeout
func (c *Clock) WithTimeout(ctx context.Context, timeout core.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout.Std())
}

// Advance moves the clock forward
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Runner is a TaskRunner that runs tasks on goroutines and lets tests wait for them
type Runner struct {
	wg    sync.WaitGroup
	mu    sync.Mutex
	names []string
}

// NewRunner creates a Runner
func NewRunner() *Runner {
	return &Runner{}
}

// Go starts fn on a goroutine
func (r *Runner) Go(name string, fn func(ctx context.Context)) {
	r.mu.Lock()
	r.names = append(r.names, name)
	r.mu.Unlock()

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		fn(context.Background())
	}()
}

// Shutdown waits for every task started so far
func (r *Runner) Shutdown() {
	r.wg.Wait()
}

// Wait is an alias of Shutdown that reads better in assertions
func (r *Runner) Wait() {
	r.wg.Wait()
}

// Started returns the names of every task dispatched
func (r *Runner) Started() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.names...)
}

// Metrics discards every observation
type Metrics struct{}

func (Metrics) QuoteServed(string, string)          {}
func (Metrics) WebhookProcessed(string, string)     {}
func (Metrics) StatusChanged(string, string)        {}
func (Metrics) BridgeAttempt(string, core.Duration) {}
func (Metrics) ProviderCall(string, string, string) {}

var (
	_ core.TimeProvider = (*Clock)(nil)
	_ core.TaskRunner   = (*Runner)(nil)
	_ core.Metrics      = Metrics{}
)
