package breaker

import (
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/remitbridge/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/assert"
)

func TestBreaker_TripsOnConsecutiveFailures(t *testing.T) {
	var states []int
	cb := New[int](Settings{Name: "test", ConsecutiveFailures: 2, OpenTimeout: time.Minute},
		logger.NewNoopLogger(), func(_ string, state int) { states = append(states, state) })

	boom := errors.New("upstream 503")
	for i := 0; i < 2; i++ {
		_, err := cb.Execute(func() (int, error) { return 0, boom })
		assert.ErrorIs(t, err, boom)
	}

	_, err := cb.Execute(func() (int, error) { return 1, nil })
	assert.True(t, IsOpen(err))
	assert.Equal(t, []int{2}, states)
}

func TestBreaker_ClientErrorsDoNotTrip(t *testing.T) {
	cb := New[int](Settings{Name: "test", ConsecutiveFailures: 1}, logger.NewNoopLogger(), nil)

	for i := 0; i < 3; i++ {
		_, err := cb.Execute(func() (int, error) {
			return 0, &ClientError{Err: errors.New("400 bad request")}
		})
		assert.False(t, IsOpen(err))
	}

	v, err := cb.Execute(func() (int, error) { return 7, nil })
	assert.NoError(t, err)
	assert.Equal(t, 7, v)
}
