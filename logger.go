package kmeanspp

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with kmeanspp-specific context.
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
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithK adds a k (cluster count) field to the logger.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("k", k),
	}
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogRound logs a completed round at debug level.
func (l *Logger) LogRound(ctx context.Context, round int, maxMovement float64, reassigned int) {
	l.DebugContext(ctx, "round completed",
		"round", round,
		"max_movement", maxMovement,
		"reassigned", reassigned,
	)
}

// LogProgress logs a completed round at info level.
// Callers are expected to throttle it.
func (l *Logger) LogProgress(ctx context.Context, round, maxIter int, maxMovement float64) {
	l.InfoContext(ctx, "clustering in progress",
		"round", round,
		"max_iter", maxIter,
		"max_movement", maxMovement,
	)
}

// LogFit logs the end of a Fit call.
func (l *Logger) LogFit(ctx context.Context, rounds int, converged bool, err error) {
	if err != nil {
		l.ErrorContext(ctx, "fit failed",
			"error", err,
		)
	} else if converged {
		l.InfoContext(ctx, "fit converged",
			"rounds", rounds,
		)
	} else {
		l.WarnContext(ctx, "fit stopped without converging",
			"rounds", rounds,
		)
	}
}
