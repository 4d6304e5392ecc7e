package observability

import (
	"context"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"
)

func TestNewConfig_Defaults(t *testing.T) {
	// Act
	cfg, err := newConfig(viper.New())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, DefaultServiceName, cfg.ServiceName)
	assert.Equal(t, DefaultMetricsInterval, cfg.Metrics.Interval)
	assert.Equal(t, DefaultSampleRatio, cfg.Tracing.SampleRatio)
	assert.False(t, cfg.Tracing.Enabled)
}

func TestNewConfig_FromViper(t *testing.T) {
	// Arrange
	v := viper.New()
	v.Set("observability.otel-collector-endpoint", "localhost:4317")
	v.Set("observability.tracing.enabled", true)
	v.Set("observability.tracing.sample-ratio", 0.25)
	v.Set("observability.metrics.interval", "15s")

	// Act
	cfg, err := newConfig(v)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "localhost:4317", cfg.OtelCollectorEndpoint)
	assert.True(t, cfg.Tracing.Enabled)
	assert.Equal(t, 0.25, cfg.Tracing.SampleRatio)
	assert.Equal(t, 15*time.Second, cfg.Metrics.Interval)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "defaults", cfg: Config{Tracing: TracingConfig{SampleRatio: 1}}},
		{name: "sample ratio above one", cfg: Config{Tracing: TracingConfig{SampleRatio: 1.5}}, wantErr: true},
		{name: "negative sample ratio", cfg: Config{Tracing: TracingConfig{SampleRatio: -0.1}}, wantErr: true},
		{name: "metrics without endpoint", cfg: Config{Metrics: MetricsConfig{Enabled: true}}, wantErr: true},
		{
			name: "metrics with endpoint",
			cfg:  Config{OtelCollectorEndpoint: "localhost:4317", Metrics: MetricsConfig{Enabled: true, Interval: time.Second}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTraceFields(t *testing.T) {
	// Arrange
	tp := sdktrace.NewTracerProvider()
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	ctx, span := tp.Tracer("test").Start(context.Background(), "op")
	defer span.End()

	// Act
	fields := TraceFields(ctx)

	// Assert
	require.Len(t, fields, 2)
	assert.Equal(t, "trace_id", fields[0].Key)
	assert.Equal(t, span.SpanContext().TraceID().String(), fields[0].String)
	assert.Equal(t, "span_id", fields[1].Key)
}

func TestTraceFields_NoSpan(t *testing.T) {
	assert.Empty(t, TraceFields(context.Background()))
}

func TestNewObservabilityModule(t *testing.T) {
	tests := []struct {
		name       string
		opts       []Option
		wantNoop   bool
		wantSDKTrc bool
	}{
		{
			name:     "disabled by default",
			wantNoop: true,
		},
		{
			name:       "local tracing without collector",
			opts:       []Option{WithConfig(Config{Tracing: TracingConfig{Enabled: true}})},
			wantSDKTrc: true,
		},
		{
			name:     "tracing switched off by option",
			opts:     []Option{WithConfig(Config{Tracing: TracingConfig{Enabled: true}}), WithoutTracing(), WithoutMetrics()},
			wantNoop: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			var (
				tp trace.TracerProvider
				mp metric.MeterProvider
			)
			app := fxtest.New(t,
				fx.Supply(viper.New(), zap.NewNop()),
				NewObservabilityModule(tt.opts...),
				fx.Populate(&tp, &mp),
			)

			// Act
			app.RequireStart()
			defer app.RequireStop()

			// Assert
			if tt.wantNoop {
				assert.IsType(t, noop.TracerProvider{}, tp)
			}
			if tt.wantSDKTrc {
				assert.IsType(t, &sdktrace.TracerProvider{}, tp)
			}
			assert.IsType(t, metricnoop.MeterProvider{}, mp)
		})
	}
}
