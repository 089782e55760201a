package logging

import (
	"context"
	"log/slog"
)

// LevelTrace is a custom level below slog.LevelDebug for very chatty output.
const LevelTrace = slog.LevelDebug - 4

// LevelFromVerbosity maps a -v flag count to a slog level.
// 0 is Warn, -v is Info, -vv is Debug, -vvv and beyond is Trace.
func LevelFromVerbosity(v int) slog.Level {
	switch {
	case v <= 0:
		return slog.LevelWarn
	case v == 1:
		return slog.LevelInfo
	case v == 2:
		return slog.LevelDebug
	default:
		return LevelTrace
	}
}

type contextKey struct{}

// NewContext returns a context carrying the given logger.
func NewContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored in ctx, or the process default
// logger when none is set.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
			return logger
		}
	}
	return slog.Default()
}
