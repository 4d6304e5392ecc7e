package cache

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clock struct {
	now time.Time
}

func (c *clock) Now() time.Time { return c.now }

func (c *clock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type backend struct {
	name string
	open func(t *testing.T, now func() time.Time) Cache
}

func backends() []backend {
	return []backend{
		{
			name: "memory",
			open: func(t *testing.T, now func() time.Time) Cache {
				return newMemory(now)
			},
		},
		{
			name: "bolt",
			open: func(t *testing.T, now func() time.Time) Cache {
				c, err := newBolt(filepath.Join(t.TempDir(), "cache.db"), now)
				require.NoError(t, err)
				return c
			},
		},
	}
}

func TestCache_SetGet(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			// Arrange
			ctx := context.Background()
			clk := &clock{now: time.Date(2024, 1, 3, 10, 0, 0, 0, time.UTC)}
			c := b.open(t, clk.Now)
			defer c.Close()

			// Act
			require.NoError(t, c.Set(ctx, "label:1", []byte(`{"status":200}`), time.Minute))
			got, ok, err := c.Get(ctx, "label:1")

			// Assert
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, []byte(`{"status":200}`), got)
		})
	}
}

func TestCache_Miss(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			c := b.open(t, time.Now)
			defer c.Close()

			got, ok, err := c.Get(context.Background(), "absent")

			require.NoError(t, err)
			assert.False(t, ok)
			assert.Nil(t, got)
		})
	}
}

func TestCache_Expiry(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			// Arrange
			ctx := context.Background()
			clk := &clock{now: time.Date(2024, 1, 3, 10, 0, 0, 0, time.UTC)}
			c := b.open(t, clk.Now)
			defer c.Close()
			require.NoError(t, c.Set(ctx, "short", []byte("a"), time.Minute))
			require.NoError(t, c.Set(ctx, "forever", []byte("b"), 0))

			// Act
			clk.Advance(time.Minute)
			_, shortOK, err := c.Get(ctx, "short")
			require.NoError(t, err)
			forever, foreverOK, err := c.Get(ctx, "forever")
			require.NoError(t, err)

			// Assert
			assert.False(t, shortOK)
			assert.True(t, foreverOK)
			assert.Equal(t, []byte("b"), forever)
		})
	}
}

func TestCache_Delete(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			ctx := context.Background()
			c := b.open(t, time.Now)
			defer c.Close()
			require.NoError(t, c.Set(ctx, "k", []byte("v"), 0))

			require.NoError(t, c.Delete(ctx, "k"))
			_, ok, err := c.Get(ctx, "k")

			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestCache_EmptyValue(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			ctx := context.Background()
			c := b.open(t, time.Now)
			defer c.Close()
			require.NoError(t, c.Set(ctx, "empty", nil, 0))

			got, ok, err := c.Get(ctx, "empty")

			require.NoError(t, err)
			assert.True(t, ok)
			assert.Empty(t, got)
		})
	}
}

func TestCache_ReturnsCopies(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			// Arrange
			ctx := context.Background()
			c := b.open(t, time.Now)
			defer c.Close()
			value := []byte("abc")
			require.NoError(t, c.Set(ctx, "k", value, 0))
			value[0] = 'x'

			// Act
			got, _, err := c.Get(ctx, "k")
			require.NoError(t, err)
			got[1] = 'y'
			again, _, err := c.Get(ctx, "k")
			require.NoError(t, err)

			// Assert
			assert.Equal(t, []byte("abc"), again)
		})
	}
}

func TestCache_Closed(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			c := b.open(t, time.Now)
			require.NoError(t, c.Close())

			_, _, getErr := c.Get(context.Background(), "k")
			setErr := c.Set(context.Background(), "k", []byte("v"), 0)

			assert.True(t, errors.Is(getErr, ErrClosed))
			assert.True(t, errors.Is(setErr, ErrClosed))
		})
	}
}

func TestBolt_SurvivesReopen(t *testing.T) {
	// Arrange
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cache.db")
	c, err := NewBolt(path)
	require.NoError(t, err)
	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Hour))
	require.NoError(t, c.Close())

	// Act
	reopened, err := NewBolt(path)
	require.NoError(t, err)
	defer reopened.Close()
	got, ok, err := reopened.Get(ctx, "k")

	// Assert
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("v"), got)
}
