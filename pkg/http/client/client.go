package client

import (
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Default values for the provider HTTP client.
const (
	DefaultTimeout              = 30 * time.Second
	DefaultMaxIdleConnsPerHost  = 10
	DefaultIdleConnTimeout      = 90 * time.Second
	DefaultMaxRetries           = 3
	DefaultRetryInitialInterval = 500 * time.Millisecond
	DefaultRateLimit            = 10.0
	DefaultRateBurst            = 5
)

// Name is the configuration key of the provider client.
const Name = "postnl"

// Config holds the HTTP client settings loaded from the config file.
// yaml example:
//
//	clients:
//	  postnl:
//	    timeout: 30s
//	    max-retries: 3
//	    retry-initial-interval: 500ms
//	    rate-limit: 10
//	    rate-burst: 5
//
// Omit fields to use defaults. Set rate-limit to 0 to disable client-side
// rate limiting and max-retries to 0 to disable retries.
type Config struct {
	Timeout              *time.Duration `mapstructure:"timeout"`
	MaxIdleConnsPerHost  *int           `mapstructure:"max-idle-conns-per-host"`
	IdleConnTimeout      *time.Duration `mapstructure:"idle-conn-timeout"`
	MaxRetries           *int           `mapstructure:"max-retries"`
	RetryInitialInterval *time.Duration `mapstructure:"retry-initial-interval"`
	RateLimit            *float64       `mapstructure:"rate-limit"`
	RateBurst            *int           `mapstructure:"rate-burst"`
	DisableTracing       bool           `mapstructure:"disable-tracing"`
}

// New builds the client. Requests pass through tracing, retries, rate
// limiting and the pooled transport, in that order.
func New(cfg Config, log *zap.Logger) *http.Client {
	cfg.applyDefaults()

	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		DialContext:         (&net.Dialer{Timeout: 5 * time.Second}).DialContext,
		MaxIdleConnsPerHost: *cfg.MaxIdleConnsPerHost,
		IdleConnTimeout:     *cfg.IdleConnTimeout,
		TLSHandshakeTimeout: 10 * time.Second,
	}

	var rt http.RoundTripper = transport
	if *cfg.RateLimit > 0 {
		rt = &rateLimitTransport{
			base:    rt,
			limiter: rate.NewLimiter(rate.Limit(*cfg.RateLimit), *cfg.RateBurst),
		}
	}
	if *cfg.MaxRetries > 0 {
		maxRetries := uint64(*cfg.MaxRetries)
		initial := *cfg.RetryInitialInterval
		rt = &retryTransport{
			base: rt,
			newBackOff: func() backoff.BackOff {
				eb := backoff.NewExponentialBackOff()
				eb.InitialInterval = initial
				return backoff.WithMaxRetries(eb, maxRetries)
			},
			log: log,
		}
	}
	if !cfg.DisableTracing {
		rt = otelhttp.NewTransport(rt)
	}

	return &http.Client{
		Timeout:   *cfg.Timeout,
		Transport: rt,
	}
}

// ProvideHTTPClient returns a provider function that creates the client from
// the "clients.<name>" config section.
// Usage with fx:
//
//	fx.Provide(fx.Private, client.ProvideHTTPClient(client.Name))
func ProvideHTTPClient(name string) func(*viper.Viper, *zap.Logger) (*http.Client, Config, error) {
	return func(v *viper.Viper, log *zap.Logger) (*http.Client, Config, error) {
		var cfg Config
		if err := v.UnmarshalKey("clients."+name, &cfg); err != nil {
			return nil, Config{}, fmt.Errorf("failed to unmarshal client config %q: %w", name, err)
		}
		if err := cfg.validate(); err != nil {
			return nil, Config{}, fmt.Errorf("invalid client config %q: %w", name, err)
		}
		cfg.applyDefaults()
		return New(cfg, log.Named("http-client").With(zap.String("client", name))), cfg, nil
	}
}

func (c *Config) applyDefaults() {
	if c.Timeout == nil {
		c.Timeout = lo.ToPtr(DefaultTimeout)
	}
	if c.MaxIdleConnsPerHost == nil {
		c.MaxIdleConnsPerHost = lo.ToPtr(DefaultMaxIdleConnsPerHost)
	}
	if c.IdleConnTimeout == nil {
		c.IdleConnTimeout = lo.ToPtr(DefaultIdleConnTimeout)
	}
	if c.MaxRetries == nil {
		c.MaxRetries = lo.ToPtr(DefaultMaxRetries)
	}
	if c.RetryInitialInterval == nil {
		c.RetryInitialInterval = lo.ToPtr(DefaultRetryInitialInterval)
	}
	if c.RateLimit == nil {
		c.RateLimit = lo.ToPtr(DefaultRateLimit)
	}
	if c.RateBurst == nil {
		c.RateBurst = lo.ToPtr(DefaultRateBurst)
	}
}

func (c Config) validate() error {
	if c.MaxRetries != nil && *c.MaxRetries < 0 {
		return fmt.Errorf("max-retries cannot be negative")
	}
	if c.RateLimit != nil && *c.RateLimit < 0 {
		return fmt.Errorf("rate-limit cannot be negative")
	}
	if c.RateBurst != nil && *c.RateBurst < 1 {
		return fmt.Errorf("rate-burst must be at least 1")
	}
	return nil
}
