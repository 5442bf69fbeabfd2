package logger

import (
	"context"
	"log/slog"
)

type ContextKey string

const LoggerKey ContextKey = "logger"

// FromContext returns the request-scoped logger, falling back to the
// process default when the context carries none.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(LoggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, LoggerKey, logger)
}

// WithRequestID tags the context's logger with a request id so log
// lines from one request can be grouped.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return WithLogger(ctx, FromContext(ctx).With("request_id", requestID))
}
