package bitscan

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with bitset-specific fields.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithCapacity adds a capacity field to the logger.
func (l *Logger) WithCapacity(capacity int) *Logger {
	return &Logger{
		Logger: l.Logger.With("capacity", capacity),
	}
}

// WithIndex adds an index field to the logger.
func (l *Logger) WithIndex(index int) *Logger {
	return &Logger{
		Logger: l.Logger.With("index", index),
	}
}

// LogNew logs a construction attempt.
func (l *Logger) LogNew(capacity, words int, err error) {
	if err != nil {
		l.Warn("bitset allocation refused",
			"capacity", capacity,
			"error", err,
		)
	} else {
		l.Debug("bitset allocated",
			"capacity", capacity,
			"words", words,
		)
	}
}

// LogInvalidCapacity logs a construction rejected for a negative capacity.
func (l *Logger) LogInvalidCapacity(capacity int, err error) {
	l.Warn("invalid bitset capacity",
		"capacity", capacity,
		"error", err,
	)
}

// LogOutOfRange logs a rejected Set, Clear or Test.
func (l *Logger) LogOutOfRange(op Op, err error) {
	l.Debug("bitset access rejected",
		"op", op.String(),
		"error", err,
	)
}

// LogStaleCursor logs a cursor that observed a mutation of its bitset.
func (l *Logger) LogStaleCursor(created, current uint64) {
	l.Debug("cursor invalidated",
		"generation", created,
		"current_generation", current,
	)
}
