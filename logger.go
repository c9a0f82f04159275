package hbtree

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with hbtree-specific context.
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

// NoopLogger creates a Logger that discards all log output. This is the
// default logger for a Tree that hasn't been given one via WithLogger, so
// the core stays silent and allocation-free on the hot path by default.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithShape adds the tree's depth/width to the logger.
func (l *Logger) WithShape(s Shape) *Logger {
	return &Logger{
		Logger: l.Logger.With("depth", s.Depth, "width", s.Width),
	}
}

// WithKey adds a key field to the logger.
func (l *Logger) WithKey(key uint64) *Logger {
	return &Logger{
		Logger: l.Logger.With("key", key),
	}
}

// WithISA adds the active bitops ISA label to the logger (diagnostics only).
func (l *Logger) WithISA(isa string) *Logger {
	return &Logger{
		Logger: l.Logger.With("isa", isa),
	}
}

// LogInsert logs an insert operation.
func (l *Logger) LogInsert(ctx context.Context, key uint64, overwrote bool) {
	l.DebugContext(ctx, "insert completed",
		"key", key,
		"overwrote", overwrote,
	)
}

// LogRemove logs a remove operation.
func (l *Logger) LogRemove(ctx context.Context, key uint64, found bool) {
	l.DebugContext(ctx, "remove completed",
		"key", key,
		"found", found,
	)
}

// LogSetOp logs construction of a LazyOp.
func (l *Logger) LogSetOp(ctx context.Context, kind string, sources int) {
	l.DebugContext(ctx, "set operation composed",
		"kind", kind,
		"sources", sources,
	)
}

// LogMaterialize logs a materialize operation.
func (l *Logger) LogMaterialize(ctx context.Context, keysYielded int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "materialize failed",
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "materialize completed",
		"keys", keysYielded,
	)
}
