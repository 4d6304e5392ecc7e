package observability

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const (
	// DefaultMetricsInterval is the default metrics export interval.
	DefaultMetricsInterval = 10 * time.Second

	// DefaultShutdownTimeout bounds flushing of providers on stop.
	DefaultShutdownTimeout = 5 * time.Second

	// DefaultRuntimeStatsInterval is the default interval for runtime stats.
	DefaultRuntimeStatsInterval = time.Second

	DefaultSampleRatio = 1.0
	DefaultServiceName = "postnl-go"
)

// Config holds all observability configuration.
// yaml example:
//
//	observability:
//	  otel-collector-endpoint: localhost:4317
//	  tracing:
//	    enabled: true
//	    sample-ratio: 0.25
//	  metrics:
//	    enabled: true
//	    interval: 15s
type Config struct {
	OtelCollectorEndpoint string        `mapstructure:"otel-collector-endpoint"`
	ServiceName           string        `mapstructure:"service-name"`
	Environment           string        `mapstructure:"environment"`
	Tracing               TracingConfig `mapstructure:"tracing"`
	Metrics               MetricsConfig `mapstructure:"metrics"`
}

type TracingConfig struct {
	Enabled     bool    `mapstructure:"enabled"`
	SampleRatio float64 `mapstructure:"sample-ratio"`
}

type MetricsConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Interval time.Duration `mapstructure:"interval"`
}

func newConfig(v *viper.Viper) (Config, error) {
	var cfg Config
	if sub := v.Sub("observability"); sub != nil {
		if err := sub.Unmarshal(&cfg); err != nil {
			return cfg, fmt.Errorf("failed to load observability config: %w", err)
		}
	}
	applyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.ServiceName == "" {
		cfg.ServiceName = DefaultServiceName
	}
	if cfg.Metrics.Interval == 0 {
		cfg.Metrics.Interval = DefaultMetricsInterval
	}
	if cfg.Tracing.SampleRatio == 0 {
		cfg.Tracing.SampleRatio = DefaultSampleRatio
	}
}

// Validate checks the settings that cannot be defaulted.
func (c Config) Validate() error {
	if c.Tracing.SampleRatio < 0 || c.Tracing.SampleRatio > 1 {
		return fmt.Errorf("observability: tracing sample-ratio must be within [0, 1], got %v", c.Tracing.SampleRatio)
	}
	if c.Metrics.Enabled && c.OtelCollectorEndpoint == "" {
		return fmt.Errorf("observability: metrics require otel-collector-endpoint")
	}
	if c.Metrics.Interval < 0 {
		return fmt.Errorf("observability: metrics interval cannot be negative")
	}
	return nil
}
