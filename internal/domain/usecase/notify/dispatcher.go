package notify

import (
	"context"

	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/core"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/provider"
)

// Dispatcher sends notifications in the background. Callers never wait for delivery and
// failures are only logged.
type Dispatcher struct {
	notifier provider.Notifier
	runner   core.TaskRunner
	timer    core.TimeProvider
	timeout  core.Duration
	logger   core.Logger
}

// NewDispatcher creates a fire-and-forget notification dispatcher
func NewDispatcher(
	notifier provider.Notifier,
	runner core.TaskRunner,
	timer core.TimeProvider,
	timeout core.Duration,
	logger core.Logger,
) *Dispatcher {
	return &Dispatcher{
		notifier: notifier,
		runner:   runner,
		timer:    timer,
		timeout:  timeout,
		logger:   logger,
	}
}

// Send schedules delivery of n. Notifications without a recipient are dropped.
func (d *Dispatcher) Send(n provider.Notification) {
	if n.UserID == 0 {
		return
	}

	d.runner.Go("notify:"+n.Event, func(ctx context.Context) {
		ctx, cancel := d.timer.WithTimeout(ctx, d.timeout)
		defer cancel()

		if err := d.notifier.Notify(ctx, n); err != nil {
			d.logger.Warn("Failed to deliver notification", map[string]any{
				"user_id":        n.UserID,
				"event":          n.Event,
				"reference_code": n.ReferenceCode,
				"error":          err.Error(),
			})
		}
	})
}
