package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestOr(t *testing.T) {
	attached := zap.NewExample()
	fallback := zap.NewExample()

	tests := []struct {
		name     string
		ctx      context.Context
		fallback *zap.Logger
		want     *zap.Logger
	}{
		{name: "attached logger wins", ctx: With(context.Background(), attached), fallback: fallback, want: attached},
		{name: "fallback without attached logger", ctx: context.Background(), fallback: fallback, want: fallback},
		{name: "nil logger attached", ctx: With(context.Background(), nil), fallback: fallback, want: fallback},
		{name: "nil context", ctx: nil, fallback: fallback, want: fallback},
		{name: "no fallback", ctx: context.Background(), want: nop},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Same(t, tt.want, Or(tt.ctx, tt.fallback))
		})
	}
}

func TestGet(t *testing.T) {
	// Arrange
	l := zap.NewExample()

	// Act
	//nolint:staticcheck // nil context is accepted
	ctx := With(nil, l)

	// Assert
	assert.Same(t, l, Get(ctx))
	assert.Same(t, nop, Get(context.Background()))
}
