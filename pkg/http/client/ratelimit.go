package client

import (
	"net/http"

	"golang.org/x/time/rate"
)

// rateLimitTransport waits for a limiter token before every attempt, so
// retries are throttled as well.
type rateLimitTransport struct {
	base    http.RoundTripper
	limiter *rate.Limiter
}

func (t *rateLimitTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := t.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}
	return t.base.RoundTrip(req)
}
