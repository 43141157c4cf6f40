package core

import "context"

// TaskRunner schedules work that must not block the caller, such as bridge attempts
// dispatched from the payment webhook or best-effort notifications.
type TaskRunner interface {
	// Go runs fn in the background under a detached context; name is used for logging
	Go(name string, fn func(ctx context.Context))
	// Shutdown waits for in-flight tasks to finish
	Shutdown()
}
