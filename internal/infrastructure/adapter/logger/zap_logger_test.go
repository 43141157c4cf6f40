package logger

import (
	"errors"
	"testing"

	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_LevelsAndFields(t *testing.T) {
	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	obsCore, logs := observer.New(level)
	log := NewFromCore(obsCore, level)

	log.Debug("hidden", nil)
	log.Info("bridge completed", map[string]any{
		"transaction_id": uint64(7),
		"error":          errors.New("boom"),
	})

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "bridge completed", entry.Message)
	fields := entry.ContextMap()
	assert.Equal(t, uint64(7), fields["transaction_id"])
	assert.Equal(t, "boom", fields["error"])

	log.SetLevel(core.LogLevelDebug)
	assert.Equal(t, core.LogLevelDebug, log.GetLevel())
	log.Debug("visible", nil)
	assert.Equal(t, 2, logs.Len())

	log.SetLevel(core.LogLevelError)
	log.Warn("dropped", nil)
	log.Error("kept", nil)
	assert.Equal(t, 3, logs.Len())
	assert.Equal(t, zapcore.ErrorLevel, logs.All()[2].Level)
}

func TestNoopLogger(t *testing.T) {
	log := NewNoopLogger()
	log.SetLevel(core.LogLevelWarn)
	assert.Equal(t, core.LogLevelWarn, log.GetLevel())
	log.Error("ignored", map[string]any{"key": "value"})
	assert.NoError(t, log.Flush())
}
