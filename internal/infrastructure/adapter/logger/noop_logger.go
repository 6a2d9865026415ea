package logger

import (
	"github.com/amirhossein-jamali/dbexceptions/internal/domain/port/core"
)

var _ core.Logger = (*NoopLogger)(nil)

// NoopLogger discards every entry. It still tracks its level so code that
// checks GetLevel before building expensive fields behaves the same in tests.
type NoopLogger struct {
	level core.LogLevel
}

// NewNoopLogger creates a logger that writes nothing
func NewNoopLogger() core.Logger {
	return &NoopLogger{level: core.LogLevelInfo}
}

func (l *NoopLogger) SetLevel(level core.LogLevel) { l.level = level }

func (l *NoopLogger) GetLevel() core.LogLevel { return l.level }

func (l *NoopLogger) Debug(string, map[string]any) {}

func (l *NoopLogger) Info(string, map[string]any) {}

func (l *NoopLogger) Warn(string, map[string]any) {}

func (l *NoopLogger) Error(string, map[string]any) {}

func (l *NoopLogger) Flush() error { return nil }
