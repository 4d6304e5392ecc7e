package logger

import (
	"context"

	"go.uber.org/zap"
)

type contextKey struct{}

var nop = zap.NewNop()

// With returns a copy of ctx carrying l. Calls made with the returned
// context log through l instead of the logger the SDK was built with.
func With(ctx context.Context, l *zap.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, contextKey{}, l)
}

// Or returns the logger attached to ctx, or fallback when there is none.
func Or(ctx context.Context, fallback *zap.Logger) *zap.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(contextKey{}).(*zap.Logger); ok && l != nil {
			return l
		}
	}
	if fallback == nil {
		return nop
	}
	return fallback
}

// Get returns the logger attached to ctx, or a no-op logger.
func Get(ctx context.Context) *zap.Logger {
	return Or(ctx, nil)
}
