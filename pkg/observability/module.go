// Package observability provides OpenTelemetry tracing and metrics
// providers for the fx graph.
//
// Usage:
//
//	// Loads the "observability" config section
//	observability.NewObservabilityModule()
//
//	// Tests
//	observability.NewObservabilityModule(
//	    observability.WithoutTracing(),
//	    observability.WithoutMetrics(),
//	)
package observability

import (
	"github.com/spf13/viper"
	"go.uber.org/fx"
)

type observabilityOptions struct {
	config         *Config
	disableTracing bool
	disableMetrics bool
}

// Option is a functional option for configuring the observability module.
type Option func(*observabilityOptions)

// WithConfig provides a static Config instead of loading it from viper.
func WithConfig(cfg Config) Option {
	return func(opts *observabilityOptions) {
		opts.config = &cfg
	}
}

// WithoutTracing disables tracing regardless of configuration.
func WithoutTracing() Option {
	return func(opts *observabilityOptions) {
		opts.disableTracing = true
	}
}

// WithoutMetrics disables metrics regardless of configuration.
func WithoutMetrics() Option {
	return func(opts *observabilityOptions) {
		opts.disableMetrics = true
	}
}

// NewObservabilityModule provides trace.TracerProvider and
// metric.MeterProvider. Disabled providers are no-ops.
func NewObservabilityModule(opts ...Option) fx.Option {
	o := &observabilityOptions{}
	for _, opt := range opts {
		opt(o)
	}

	return fx.Options(
		fx.Provide(
			func(v *viper.Viper) (Config, error) {
				return o.resolveConfig(v)
			},
			provideTracerProvider,
			provideMeterProvider,
		),
	)
}

func (o *observabilityOptions) resolveConfig(v *viper.Viper) (Config, error) {
	var (
		cfg Config
		err error
	)
	if o.config != nil {
		cfg = *o.config
		applyDefaults(&cfg)
		err = cfg.Validate()
	} else {
		cfg, err = newConfig(v)
	}
	if err != nil {
		return Config{}, err
	}
	if o.disableTracing {
		cfg.Tracing.Enabled = false
	}
	if o.disableMetrics {
		cfg.Metrics.Enabled = false
	}
	return cfg, nil
}
