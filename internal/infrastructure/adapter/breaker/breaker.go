package breaker

import (
	"errors"
	"time"

	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/core"
	"github.com/sony/gobreaker/v2"
)

// Settings configures a circuit breaker around one upstream
type Settings struct {
	Name                string
	ConsecutiveFailures uint32        // trips after this many failures in a row
	OpenTimeout         time.Duration // time spent open before half-open probing
	MaxHalfOpenRequests uint32
}

// StateObserver receives state changes; state is 0 closed, 1 half-open, 2 open
type StateObserver func(name string, state int)

// ClientError marks failures caused by the request itself; they never trip the breaker
type ClientError struct {
	Err error
}

func (e *ClientError) Error() string { return e.Err.Error() }
func (e *ClientError) Unwrap() error { return e.Err }

// New builds a breaker. observer may be nil.
func New[T any](s Settings, logger core.Logger, observer StateObserver) *gobreaker.CircuitBreaker[T] {
	if s.ConsecutiveFailures == 0 {
		s.ConsecutiveFailures = 5
	}
	if s.OpenTimeout <= 0 {
		s.OpenTimeout = 30 * time.Second
	}
	if s.MaxHalfOpenRequests == 0 {
		s.MaxHalfOpenRequests = 1
	}

	return gobreaker.NewCircuitBreaker[T](gobreaker.Settings{
		Name:        s.Name,
		MaxRequests: s.MaxHalfOpenRequests,
		Interval:    time.Minute,
		Timeout:     s.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= s.ConsecutiveFailures
		},
		IsSuccessful: func(err error) bool {
			var clientErr *ClientError
			return err == nil || errors.As(err, &clientErr)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed", map[string]any{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			})
			if observer != nil {
				observer(name, int(to))
			}
		},
	})
}

// IsOpen reports whether err was returned because the breaker rejected the call
func IsOpen(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}
