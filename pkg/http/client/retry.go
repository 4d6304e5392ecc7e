package client

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

// maxRetryAfter caps the delay requested by a Retry-After header.
const maxRetryAfter = time.Minute

// retryTransport retries requests that failed with a transient network error
// or were throttled by the provider. When the retries are exhausted on a
// throttled response, that response is returned as is.
type retryTransport struct {
	base       http.RoundTripper
	newBackOff func() backoff.BackOff
	log        *zap.Logger
}

// statusError marks a response with a retryable status code.
type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("retryable status %d", e.code)
}

func (t *retryTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// A body that cannot be replayed allows a single attempt only.
	if req.Body != nil && req.Body != http.NoBody && req.GetBody == nil {
		return t.base.RoundTrip(req)
	}

	b := &retryAfterBackOff{BackOff: t.newBackOff()}
	var (
		attempt   int
		throttled *http.Response
	)
	op := func() (*http.Response, error) {
		r, err := rewind(req, attempt)
		attempt++
		if err != nil {
			return nil, backoff.Permanent(err)
		}

		resp, err := t.base.RoundTrip(r)
		if err != nil {
			if isRetryableError(err) {
				return nil, err
			}
			return nil, backoff.Permanent(err)
		}
		if !isRetryableStatus(resp.StatusCode) {
			return resp, nil
		}

		throttled, err = buffer(resp)
		if err != nil {
			return nil, backoff.Permanent(err)
		}
		b.after = retryAfter(resp.Header, time.Now())
		return nil, &statusError{code: resp.StatusCode}
	}
	notify := func(err error, wait time.Duration) {
		if t.log != nil {
			t.log.Debug("retrying request",
				zap.String("url", req.URL.Redacted()),
				zap.Int("attempt", attempt),
				zap.Duration("wait", wait),
				zap.Error(err),
			)
		}
	}

	resp, err := backoff.RetryNotifyWithData(op, backoff.WithContext(b, req.Context()), notify)
	var se *statusError
	if errors.As(err, &se) && throttled != nil {
		return throttled, nil
	}
	return resp, err
}

// rewind returns the request to send for the attempt, with a fresh body on
// retries.
func rewind(req *http.Request, attempt int) (*http.Request, error) {
	if attempt == 0 {
		return req, nil
	}
	r := req.Clone(req.Context())
	if req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			return nil, err
		}
		r.Body = body
	}
	return r, nil
}

// buffer reads and closes the response body, replacing it with an in-memory
// copy.
func buffer(resp *http.Response) (*http.Response, error) {
	if resp.Body == nil {
		resp.Body = http.NoBody
		return resp, nil
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	resp.Body = io.NopCloser(bytes.NewReader(data))
	return resp, nil
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code == http.StatusServiceUnavailable
}

// retryAfter parses a Retry-After header given in seconds or as an HTTP
// date. It returns zero when the header is absent or invalid.
func retryAfter(h http.Header, now time.Time) time.Duration {
	v := h.Get("Retry-After")
	if v == "" {
		return 0
	}
	var d time.Duration
	if secs, err := strconv.Atoi(v); err == nil {
		d = time.Duration(secs) * time.Second
	} else if at, err := http.ParseTime(v); err == nil {
		d = at.Sub(now)
	}
	if d < 0 {
		return 0
	}
	return min(d, maxRetryAfter)
}

// retryAfterBackOff uses the delay requested by the server for the next
// attempt, when there is one.
type retryAfterBackOff struct {
	backoff.BackOff
	after time.Duration
}

func (b *retryAfterBackOff) NextBackOff() time.Duration {
	next := b.BackOff.NextBackOff()
	if next == backoff.Stop || b.after <= 0 {
		return next
	}
	after := b.after
	b.after = 0
	return after
}

func (b *retryAfterBackOff) Reset() {
	b.after = 0
	b.BackOff.Reset()
}

// isRetryableError checks if the error is a transient network failure.
func isRetryableError(err error) bool {
	switch {
	case errors.Is(err, syscall.ECONNREFUSED),
		errors.Is(err, syscall.ECONNRESET),
		errors.Is(err, syscall.ENETUNREACH),
		errors.Is(err, syscall.EPIPE),
		errors.Is(err, io.EOF),
		errors.Is(err, io.ErrUnexpectedEOF),
		errors.Is(err, net.ErrClosed):
		return true
	}
	return false
}
