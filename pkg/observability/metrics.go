package observability

import (
	"context"

	otelruntime "go.opentelemetry.io/contrib/instrumentation/runtime"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func provideMeterProvider(lc fx.Lifecycle, log *zap.Logger, cfg Config) (metric.MeterProvider, error) {
	if !cfg.Metrics.Enabled {
		log.Info("metrics: disabled")
		return metricnoop.NewMeterProvider(), nil
	}

	mp, err := newMeterProvider(context.Background(), cfg)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			otel.SetMeterProvider(mp)
			if err := otelruntime.Start(
				otelruntime.WithMeterProvider(mp),
				otelruntime.WithMinimumReadMemStatsInterval(DefaultRuntimeStatsInterval),
			); err != nil {
				log.Warn("runtime metrics unavailable", zap.Error(err))
			}
			log.Info("metrics initialized",
				zap.String("endpoint", cfg.OtelCollectorEndpoint),
				zap.Duration("interval", cfg.Metrics.Interval),
			)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, DefaultShutdownTimeout)
			defer cancel()
			return mp.Shutdown(shutdownCtx)
		},
	})
	return mp, nil
}

func newMeterProvider(ctx context.Context, cfg Config) (*sdkmetric.MeterProvider, error) {
	res, err := newResource(ctx, cfg)
	if err != nil {
		return nil, err
	}
	exp, err := otlpmetricgrpc.New(ctx,
		otlpmetricgrpc.WithEndpoint(cfg.OtelCollectorEndpoint),
		otlpmetricgrpc.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}
	reader := sdkmetric.NewPeriodicReader(exp, sdkmetric.WithInterval(cfg.Metrics.Interval))
	return sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(reader),
		sdkmetric.WithResource(res),
	), nil
}
