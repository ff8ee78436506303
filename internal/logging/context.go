package logging

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type contextKey int

const runIDKey contextKey = iota

func NewRunID() string {
	return uuid.NewString()
}

func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDKey, runID)
}

// RunIDFromContext returns the run id stored in ctx, or "" when none is set.
func RunIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(runIDKey).(string); ok {
		return id
	}
	return ""
}

// FromContext decorates logger with the run id carried by ctx.
func FromContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = Discard()
	}
	if runID := RunIDFromContext(ctx); runID != "" {
		return logger.With(KeyRunID, runID)
	}
	return logger
}
