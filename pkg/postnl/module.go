package postnl

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Sokol111/postnl-go/pkg/cache"
	"github.com/Sokol111/postnl-go/pkg/core/config"
	"github.com/Sokol111/postnl-go/pkg/entity"
	"github.com/Sokol111/postnl-go/pkg/entity/jsoncodec"
	"github.com/Sokol111/postnl-go/pkg/entity/xmlcodec"
	"github.com/Sokol111/postnl-go/pkg/http/client"
	"github.com/Sokol111/postnl-go/pkg/model"
	"github.com/Sokol111/postnl-go/pkg/service"
)

// NewModule provides the entity registry, both codecs, the HTTP client, the
// response cache, every service and *Client. It needs the core module.
//
//	fx.New(
//	    core.NewCoreModule(),
//	    observability.NewObservabilityModule(),
//	    postnl.NewModule(),
//	)
func NewModule() fx.Option {
	return fx.Module("postnl",
		fx.Provide(
			model.Registry,
			provideXMLCodec,
			provideJSONCodec,
			fx.Annotate(client.ProvideHTTPClient(client.Name), fx.ResultTags(`name:"postnl"`, ``)),
			provideCache,
			provideTransport,
			service.NewBarcodeService,
			service.NewLabellingService,
			service.NewConfirmingService,
			service.NewShippingStatusService,
			service.NewLocationService,
			service.NewDeliveryDateService,
			service.NewShippingService,
			NewClient,
		),
	)
}

func provideXMLCodec(registry *entity.Registry, log *zap.Logger) *xmlcodec.Codec {
	return xmlcodec.NewCodec(registry, xmlcodec.WithLogger(log))
}

func provideJSONCodec(registry *entity.Registry, log *zap.Logger) *jsoncodec.Codec {
	return jsoncodec.NewCodec(registry, jsoncodec.WithLogger(log))
}

// provideCache returns nil when caching is disabled. A cache path selects
// the file-backed cache.
func provideCache(lc fx.Lifecycle, cfg config.Config, log *zap.Logger) (cache.Cache, error) {
	if cfg.CacheTTL <= 0 {
		return nil, nil
	}

	var (
		c   cache.Cache
		err error
	)
	if cfg.CachePath != "" {
		c, err = cache.NewBolt(cfg.CachePath)
		if err != nil {
			return nil, err
		}
		log.Info("response cache opened", zap.String("path", cfg.CachePath), zap.Duration("ttl", cfg.CacheTTL))
	} else {
		c = cache.NewMemory()
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return c.Close()
		},
	})
	return c, nil
}

type transportParams struct {
	fx.In

	Client   *http.Client `name:"postnl"`
	Config   config.Config
	Registry *entity.Registry
	Cache    cache.Cache
	Log      *zap.Logger
	Tracer   trace.TracerProvider `optional:"true"`
	Meter    metric.MeterProvider `optional:"true"`
}

func provideTransport(p transportParams) *service.Transport {
	opts := []service.Option{service.WithLogger(p.Log.Named("service"))}
	if p.Cache != nil {
		opts = append(opts, service.WithCache(p.Cache))
	}
	if p.Tracer != nil {
		opts = append(opts, service.WithTracerProvider(p.Tracer))
	}
	if p.Meter != nil {
		opts = append(opts, service.WithMeterProvider(p.Meter))
	}
	return service.NewTransport(p.Client, p.Config, p.Registry, opts...)
}
