// Package logctx carries a request-scoped slog.Logger through a context.
package logctx

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

func With(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// From returns the logger stored in ctx or slog.Default.
func From(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.Default()
}

// Attach adds attributes to the context logger.
func Attach(ctx context.Context, args ...any) context.Context {
	return With(ctx, From(ctx).With(args...))
}
