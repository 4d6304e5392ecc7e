package client

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"syscall"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// ============================================================================
// Config Tests
// ============================================================================

func TestConfig_applyDefaults(t *testing.T) {
	tests := []struct {
		name     string
		initial  Config
		expected Config
	}{
		{
			name:    "all nil values get defaults",
			initial: Config{},
			expected: Config{
				Timeout:              lo.ToPtr(DefaultTimeout),
				MaxIdleConnsPerHost:  lo.ToPtr(DefaultMaxIdleConnsPerHost),
				IdleConnTimeout:      lo.ToPtr(DefaultIdleConnTimeout),
				MaxRetries:           lo.ToPtr(DefaultMaxRetries),
				RetryInitialInterval: lo.ToPtr(DefaultRetryInitialInterval),
				RateLimit:            lo.ToPtr(DefaultRateLimit),
				RateBurst:            lo.ToPtr(DefaultRateBurst),
			},
		},
		{
			name: "zero values preserved",
			initial: Config{
				Timeout:    lo.ToPtr(time.Duration(0)),
				MaxRetries: lo.ToPtr(0),
				RateLimit:  lo.ToPtr(0.0),
			},
			expected: Config{
				Timeout:              lo.ToPtr(time.Duration(0)),
				MaxIdleConnsPerHost:  lo.ToPtr(DefaultMaxIdleConnsPerHost),
				IdleConnTimeout:      lo.ToPtr(DefaultIdleConnTimeout),
				MaxRetries:           lo.ToPtr(0),
				RetryInitialInterval: lo.ToPtr(DefaultRetryInitialInterval),
				RateLimit:            lo.ToPtr(0.0),
				RateBurst:            lo.ToPtr(DefaultRateBurst),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.initial
			cfg.applyDefaults()
			assert.Equal(t, tt.expected, cfg)
		})
	}
}

func TestConfig_validate(t *testing.T) {
	tests := []struct {
		name   string
		cfg    Config
		errMsg string
	}{
		{name: "empty config is valid", cfg: Config{}},
		{name: "negative retries", cfg: Config{MaxRetries: lo.ToPtr(-1)}, errMsg: "max-retries cannot be negative"},
		{name: "negative rate limit", cfg: Config{RateLimit: lo.ToPtr(-1.0)}, errMsg: "rate-limit cannot be negative"},
		{name: "zero burst", cfg: Config{RateBurst: lo.ToPtr(0)}, errMsg: "rate-burst must be at least 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if tt.errMsg == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestProvideHTTPClient(t *testing.T) {
	t.Run("creates client from config section", func(t *testing.T) {
		v := viper.New()
		v.Set("clients.postnl.timeout", "5s")
		v.Set("clients.postnl.max-retries", 1)

		client, cfg, err := ProvideHTTPClient(Name)(v, zap.NewNop())

		require.NoError(t, err)
		require.NotNil(t, client)
		assert.Equal(t, 5*time.Second, client.Timeout)
		assert.Equal(t, 1, *cfg.MaxRetries)
		assert.Equal(t, DefaultRateBurst, *cfg.RateBurst)
	})

	t.Run("missing section uses defaults", func(t *testing.T) {
		_, cfg, err := ProvideHTTPClient(Name)(viper.New(), zap.NewNop())

		require.NoError(t, err)
		assert.Equal(t, DefaultTimeout, *cfg.Timeout)
		assert.Equal(t, DefaultMaxRetries, *cfg.MaxRetries)
	})

	t.Run("invalid section", func(t *testing.T) {
		v := viper.New()
		v.Set("clients.postnl.rate-burst", 0)

		_, _, err := ProvideHTTPClient(Name)(v, zap.NewNop())

		require.Error(t, err)
		assert.Contains(t, err.Error(), `invalid client config "postnl"`)
	})
}

// ============================================================================
// retryTransport Tests
// ============================================================================

type mockRoundTripper struct {
	responses []*http.Response
	errors    []error
	bodies    []string
	calls     int
}

func (m *mockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	idx := m.calls
	m.calls++

	if req.Body != nil {
		data, _ := io.ReadAll(req.Body)
		m.bodies = append(m.bodies, string(data))
	}
	if idx < len(m.errors) && m.errors[idx] != nil {
		return nil, m.errors[idx]
	}
	if idx < len(m.responses) {
		return m.responses[idx], nil
	}
	return response(http.StatusOK, ""), nil
}

func response(code int, body string) *http.Response {
	return &http.Response{
		StatusCode: code,
		Header:     http.Header{},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func newRetryTransport(base http.RoundTripper, retries uint64) *retryTransport {
	return &retryTransport{
		base: base,
		newBackOff: func() backoff.BackOff {
			return backoff.WithMaxRetries(&backoff.ZeroBackOff{}, retries)
		},
		log: zap.NewNop(),
	}
}

func TestRetryTransport_RoundTrip(t *testing.T) {
	t.Run("successful request without retry", func(t *testing.T) {
		mock := &mockRoundTripper{responses: []*http.Response{response(http.StatusOK, "")}}
		rt := newRetryTransport(mock, 3)

		req, _ := http.NewRequest(http.MethodGet, "http://example.com", nil)
		resp, err := rt.RoundTrip(req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, 1, mock.calls)
	})

	t.Run("retries on ECONNREFUSED and succeeds", func(t *testing.T) {
		mock := &mockRoundTripper{
			errors:    []error{syscall.ECONNREFUSED, syscall.ECONNREFUSED, nil},
			responses: []*http.Response{nil, nil, response(http.StatusOK, "")},
		}
		rt := newRetryTransport(mock, 3)

		req, _ := http.NewRequest(http.MethodGet, "http://example.com", nil)
		resp, err := rt.RoundTrip(req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, 3, mock.calls)
	})

	t.Run("does not retry on non-retryable error", func(t *testing.T) {
		customErr := errors.New("custom error")
		mock := &mockRoundTripper{errors: []error{customErr}}
		rt := newRetryTransport(mock, 3)

		req, _ := http.NewRequest(http.MethodGet, "http://example.com", nil)
		_, err := rt.RoundTrip(req)

		assert.Equal(t, customErr, err)
		assert.Equal(t, 1, mock.calls)
	})

	t.Run("gives up after max retries on network errors", func(t *testing.T) {
		mock := &mockRoundTripper{
			errors: []error{io.EOF, io.EOF, io.EOF},
		}
		rt := newRetryTransport(mock, 2)

		req, _ := http.NewRequest(http.MethodGet, "http://example.com", nil)
		_, err := rt.RoundTrip(req)

		assert.True(t, errors.Is(err, io.EOF))
		assert.Equal(t, 3, mock.calls)
	})

	t.Run("retries throttled responses", func(t *testing.T) {
		mock := &mockRoundTripper{
			responses: []*http.Response{
				response(http.StatusTooManyRequests, "slow down"),
				response(http.StatusServiceUnavailable, "busy"),
				response(http.StatusOK, "done"),
			},
		}
		rt := newRetryTransport(mock, 3)

		req, _ := http.NewRequest(http.MethodGet, "http://example.com", nil)
		resp, err := rt.RoundTrip(req)

		require.NoError(t, err)
		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, "done", string(body))
		assert.Equal(t, 3, mock.calls)
	})

	t.Run("returns the last throttled response when retries are exhausted", func(t *testing.T) {
		mock := &mockRoundTripper{
			responses: []*http.Response{
				response(http.StatusTooManyRequests, "first"),
				response(http.StatusTooManyRequests, "second"),
			},
		}
		rt := newRetryTransport(mock, 1)

		req, _ := http.NewRequest(http.MethodGet, "http://example.com", nil)
		resp, err := rt.RoundTrip(req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, "second", string(body))
		assert.Equal(t, 2, mock.calls)
	})

	t.Run("does not retry other error statuses", func(t *testing.T) {
		mock := &mockRoundTripper{responses: []*http.Response{response(http.StatusInternalServerError, "")}}
		rt := newRetryTransport(mock, 3)

		req, _ := http.NewRequest(http.MethodGet, "http://example.com", nil)
		resp, err := rt.RoundTrip(req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, 1, mock.calls)
	})

	t.Run("replays the request body", func(t *testing.T) {
		mock := &mockRoundTripper{
			errors:    []error{syscall.ECONNRESET, nil},
			responses: []*http.Response{nil, response(http.StatusOK, "")},
		}
		rt := newRetryTransport(mock, 3)

		req, _ := http.NewRequest(http.MethodPost, "http://example.com", bytes.NewReader([]byte(`<Envelope/>`)))
		_, err := rt.RoundTrip(req)

		require.NoError(t, err)
		assert.Equal(t, []string{`<Envelope/>`, `<Envelope/>`}, mock.bodies)
	})

	t.Run("single attempt when the body cannot be replayed", func(t *testing.T) {
		mock := &mockRoundTripper{errors: []error{syscall.ECONNRESET}}
		rt := newRetryTransport(mock, 3)

		req, _ := http.NewRequest(http.MethodPost, "http://example.com", io.NopCloser(strings.NewReader("x")))
		_, err := rt.RoundTrip(req)

		assert.True(t, errors.Is(err, syscall.ECONNRESET))
		assert.Equal(t, 1, mock.calls)
	})

	t.Run("stops when the context is canceled", func(t *testing.T) {
		mock := &mockRoundTripper{errors: []error{io.EOF, io.EOF, io.EOF, io.EOF}}
		rt := newRetryTransport(mock, 3)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		req, _ := http.NewRequestWithContext(ctx, http.MethodGet, "http://example.com", nil)
		_, err := rt.RoundTrip(req)

		assert.True(t, errors.Is(err, context.Canceled))
	})
}

func TestRetryAfter(t *testing.T) {
	now := time.Date(2024, 1, 3, 10, 0, 0, 0, time.UTC)
	tests := []struct {
		name   string
		header string
		want   time.Duration
	}{
		{name: "absent", header: "", want: 0},
		{name: "seconds", header: "2", want: 2 * time.Second},
		{name: "http date", header: now.Add(10 * time.Second).Format(http.TimeFormat), want: 10 * time.Second},
		{name: "date in the past", header: now.Add(-time.Minute).Format(http.TimeFormat), want: 0},
		{name: "capped", header: "3600", want: maxRetryAfter},
		{name: "garbage", header: "soon", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := http.Header{}
			if tt.header != "" {
				h.Set("Retry-After", tt.header)
			}
			assert.Equal(t, tt.want, retryAfter(h, now))
		})
	}
}

func TestRetryAfterBackOff(t *testing.T) {
	b := &retryAfterBackOff{BackOff: backoff.WithMaxRetries(&backoff.ConstantBackOff{Interval: time.Second}, 2)}

	b.after = 5 * time.Second
	assert.Equal(t, 5*time.Second, b.NextBackOff())
	assert.Equal(t, time.Second, b.NextBackOff())
	assert.Equal(t, backoff.Stop, b.NextBackOff())
}

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		retryable bool
	}{
		{name: "ECONNREFUSED is retryable", err: syscall.ECONNREFUSED, retryable: true},
		{name: "ECONNRESET is retryable", err: syscall.ECONNRESET, retryable: true},
		{name: "ENETUNREACH is retryable", err: syscall.ENETUNREACH, retryable: true},
		{name: "EOF is retryable", err: io.EOF, retryable: true},
		{name: "ErrUnexpectedEOF is retryable", err: io.ErrUnexpectedEOF, retryable: true},
		{name: "EPIPE is retryable", err: syscall.EPIPE, retryable: true},
		{name: "net.ErrClosed is retryable", err: net.ErrClosed, retryable: true},
		{name: "custom error is not retryable", err: errors.New("custom error"), retryable: false},
		{name: "nil error is not retryable", err: nil, retryable: false},
		{name: "context canceled is not retryable", err: context.Canceled, retryable: false},
		{name: "context deadline exceeded is not retryable", err: context.DeadlineExceeded, retryable: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.retryable, isRetryableError(tt.err))
		})
	}
}

// ============================================================================
// rateLimitTransport Tests
// ============================================================================

func TestRateLimitTransport(t *testing.T) {
	t.Run("passes requests within the limit", func(t *testing.T) {
		mock := &mockRoundTripper{}
		rt := &rateLimitTransport{base: mock, limiter: rate.NewLimiter(rate.Inf, 1)}

		req, _ := http.NewRequest(http.MethodGet, "http://example.com", nil)
		_, err := rt.RoundTrip(req)

		require.NoError(t, err)
		assert.Equal(t, 1, mock.calls)
	})

	t.Run("fails when the context ends before a token is available", func(t *testing.T) {
		mock := &mockRoundTripper{}
		limiter := rate.NewLimiter(rate.Every(time.Hour), 1)
		require.True(t, limiter.Allow())
		rt := &rateLimitTransport{base: mock, limiter: limiter}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		req, _ := http.NewRequestWithContext(ctx, http.MethodGet, "http://example.com", nil)
		_, err := rt.RoundTrip(req)

		require.Error(t, err)
		assert.Equal(t, 0, mock.calls)
	})
}

// ============================================================================
// Integration Tests
// ============================================================================

func TestHTTPClient_Integration(t *testing.T) {
	t.Run("retries a throttled request against a test server", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) == 1 {
				w.Header().Set("Retry-After", "0")
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			_, _ = w.Write([]byte(`{"status": "ok"}`))
		}))
		defer server.Close()

		client := New(Config{
			Timeout:              lo.ToPtr(5 * time.Second),
			RetryInitialInterval: lo.ToPtr(time.Millisecond),
			DisableTracing:       true,
		}, zap.NewNop())

		resp, err := client.Get(server.URL + "/test")

		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, `{"status": "ok"}`, string(body))
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("respects timeout", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := New(Config{Timeout: lo.ToPtr(50 * time.Millisecond)}, zap.NewNop())

		_, err := client.Get(server.URL + "/slow")

		require.Error(t, err)
		assert.True(t, strings.Contains(err.Error(), "context deadline exceeded") ||
			strings.Contains(err.Error(), "Client.Timeout exceeded"),
			"expected timeout error, got: %v", err)
	})
}

func BenchmarkIsRetryableError(b *testing.B) {
	errs := []error{
		syscall.ECONNREFUSED,
		syscall.ECONNRESET,
		io.EOF,
		errors.New("custom error"),
		nil,
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, err := range errs {
			isRetryableError(err)
		}
	}
}
