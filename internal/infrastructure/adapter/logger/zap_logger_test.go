package logger

import (
	"testing"

	"github.com/amirhossein-jamali/dbexceptions/internal/domain/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLoggerLevels(t *testing.T) {
	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	observed, logs := observer.New(level)
	log := NewFromZap(zap.New(observed), level)

	log.Debug("hidden", nil)
	log.Warn("Constraint match is ambiguous, using first candidate", map[string]any{
		"constraint": "PRIMARY",
		"table":      "users",
	})

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "Constraint match is ambiguous, using first candidate", entry.Message)
	assert.Equal(t, "PRIMARY", entry.ContextMap()["constraint"])

	log.SetLevel(core.LogLevelDebug)
	assert.Equal(t, core.LogLevelDebug, log.GetLevel())
	log.Debug("Classified database failure", map[string]any{"error_type": "unique_constraint"})
	assert.Equal(t, 2, logs.Len())

	log.SetLevel(core.LogLevelError)
	log.Warn("dropped", nil)
	assert.Equal(t, 2, logs.Len())
	assert.Equal(t, core.LogLevelError, log.GetLevel())
}

func TestNoopLogger(t *testing.T) {
	log := NewNoopLogger()
	log.SetLevel(core.LogLevelWarn)
	assert.Equal(t, core.LogLevelWarn, log.GetLevel())
	log.Error("ignored", map[string]any{"k": "v"})
	assert.NoError(t, log.Flush())
}
