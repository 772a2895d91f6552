// Package log provides a structured logging interface for resampling runs.
//
// The package defines a minimal, slog-compatible logging interface so the
// evaluation runner can emit structured progress and failure records without
// binding callers to a specific backend. The default implementation is built
// on Go's log/slog, but the interface is small enough that zerolog, logrus,
// or zap adapters are trivial to write.
//
// Example usage:
//
//	logger := log.GetLogger().With(
//	    log.StrategyKey, "kfold",
//	    log.SplitsKey, 10,
//	)
//	logger.Info("resampling run started",
//	    log.WorkersKey, 4,
//	)
package log

import (
	"context"
)

// Logger defines a structured logging interface compatible with log/slog.
//
// Fields are key-value pairs appended to the message. With returns a
// contextual logger carrying pre-populated fields.
type Logger interface {
	// Debug logs a debug-level message with optional structured fields.
	Debug(msg string, fields ...any)

	// Info logs an info-level message with optional structured fields.
	Info(msg string, fields ...any)

	// Warn logs a warning-level message with optional structured fields.
	Warn(msg string, fields ...any)

	// Error logs an error-level message with optional structured fields.
	// If the first field is an error, stack trace information may be
	// included by the handler.
	Error(msg string, fields ...any)

	// With returns a new Logger with the given fields pre-populated.
	With(fields ...any) Logger

	// Enabled reports whether the logger emits records at the given level.
	Enabled(ctx context.Context, level Level) bool
}

// Level represents a logging level, value-compatible with slog.Level.
type Level int

// Standard logging levels, values are compatible with slog.Level.
const (
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}
