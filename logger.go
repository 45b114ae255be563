package gridgo

import (
	"log/slog"
	"os"

	"github.com/hupe1980/gridgo/geom"
)

// Logger wraps slog.Logger with gridgo-specific helpers.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses the default text handler to stderr.
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
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithID adds an item ID field to the logger.
func (l *Logger) WithID(id ItemID) *Logger {
	return &Logger{
		Logger: l.Logger.With("id", uint32(id)),
	}
}

// LogInsert logs an insert operation.
func (l *Logger) LogInsert(id ItemID, cells int, err error) {
	if err != nil {
		l.Error("insert failed",
			"id", uint32(id),
			"error", err,
		)
	} else {
		l.Debug("insert completed",
			"id", uint32(id),
			"cells", cells,
		)
	}
}

// LogQuery logs a range query.
func (l *Logger) LogQuery(box geom.BoundingBox, candidates, results int) {
	l.Debug("query completed",
		"min_x", box.Min.X,
		"min_y", box.Min.Y,
		"max_x", box.Max.X,
		"max_y", box.Max.Y,
		"candidates", candidates,
		"results", results,
	)
}

// LogBatchQuery logs a batch query operation.
func (l *Logger) LogBatchQuery(boxes int, err error) {
	if err != nil {
		l.Error("batch query failed",
			"boxes", boxes,
			"error", err,
		)
	} else {
		l.Debug("batch query completed",
			"boxes", boxes,
		)
	}
}
