// Package service sends entity requests to the provider API and decodes the
// responses into entities.
package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/Sokol111/postnl-go/pkg/cache"
	"github.com/Sokol111/postnl-go/pkg/core/config"
	"github.com/Sokol111/postnl-go/pkg/core/logger"
	"github.com/Sokol111/postnl-go/pkg/entity"
	"github.com/Sokol111/postnl-go/pkg/entity/jsoncodec"
	"github.com/Sokol111/postnl-go/pkg/entity/xmlcodec"
	"github.com/Sokol111/postnl-go/pkg/model"
	"github.com/Sokol111/postnl-go/pkg/observability"
	"github.com/Sokol111/postnl-go/pkg/soap"
)

const tracerName = "github.com/Sokol111/postnl-go/pkg/service"

// Transport sends requests for every service. It is safe for concurrent
// use; identical in-flight calls share one HTTP round trip.
type Transport struct {
	client  *http.Client
	cfg     config.Config
	xml     *xmlcodec.Codec
	json    *jsoncodec.Codec
	cache   cache.Cache
	flights singleflight.Group
	tracer  trace.Tracer
	meter   metric.Meter
	log     *zap.Logger
	baseURL string

	requests  metric.Int64Counter
	duration  metric.Float64Histogram
	cacheHits metric.Int64Counter
}

// Option configures a Transport.
type Option func(*Transport)

// WithCache stores 200 responses for cfg.CacheTTL, keyed by request ID.
func WithCache(c cache.Cache) Option {
	return func(t *Transport) {
		t.cache = c
	}
}

func WithLogger(log *zap.Logger) Option {
	return func(t *Transport) {
		t.log = log
	}
}

func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(t *Transport) {
		t.tracer = tp.Tracer(tracerName)
	}
}

func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(t *Transport) {
		t.meter = mp.Meter(tracerName)
	}
}

// WithBaseURL sends every request to base instead of the provider hosts.
func WithBaseURL(base string) Option {
	return func(t *Transport) {
		t.baseURL = base
	}
}

// NewTransport creates a transport using the codecs of the registry.
func NewTransport(client *http.Client, cfg config.Config, registry *entity.Registry, opts ...Option) *Transport {
	t := &Transport{
		client: client,
		cfg:    cfg,
		tracer: otel.Tracer(tracerName),
		meter:  otel.Meter(tracerName),
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.initInstruments()
	t.xml = xmlcodec.NewCodec(registry, xmlcodec.WithLogger(t.log))
	t.json = jsoncodec.NewCodec(registry, jsoncodec.WithLogger(t.log))
	return t
}

func (t *Transport) initInstruments() {
	var err error
	if t.requests, err = t.meter.Int64Counter("postnl.client.requests",
		metric.WithDescription("Requests sent to the provider API"),
	); err != nil {
		t.log.Warn("failed to create request counter", zap.Error(err))
	}
	if t.duration, err = t.meter.Float64Histogram("postnl.client.request.duration",
		metric.WithDescription("Duration of provider API calls"),
		metric.WithUnit("s"),
	); err != nil {
		t.log.Warn("failed to create duration histogram", zap.Error(err))
	}
	if t.cacheHits, err = t.meter.Int64Counter("postnl.client.cache.hits",
		metric.WithDescription("Responses served from the cache"),
	); err != nil {
		t.log.Warn("failed to create cache hit counter", zap.Error(err))
	}
}

// call describes one request.
type call struct {
	endpoint endpoint
	request  entity.Entity
	// action overrides the endpoint SOAP action.
	action string
	query  url.Values
	// rest posts the request as JSON even for a SOAP service.
	rest bool
	// root wraps REST responses that arrive without a type key.
	root string
}

func (c call) soap() bool {
	return !c.rest && model.IsSOAP(c.endpoint.service)
}

func (c call) operation() string {
	return c.endpoint.service + "." + c.request.TypeName()
}

// response is a received or cached HTTP response.
type response struct {
	StatusCode int         `json:"status"`
	Header     http.Header `json:"headers"`
	Body       []byte      `json:"body"`
}

func (t *Transport) restMode() bool {
	return t.cfg.Mode == config.ModeREST
}

// do sends the call and decodes the response payload for the call's
// service.
func (t *Transport) do(ctx context.Context, c call) (any, error) {
	ctx, span := t.tracer.Start(ctx, "postnl."+c.operation(),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("postnl.service", c.endpoint.service),
			attribute.String("postnl.request_id", c.request.ID()),
		),
	)
	defer span.End()

	v, err := t.roundTrip(ctx, c)
	if err == nil {
		v, err = t.decode(c, v.(*response))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetStatus(codes.Ok, "success")
	return v, nil
}

func (t *Transport) roundTrip(ctx context.Context, c call) (any, error) {
	key := "postnl:" + c.operation() + ":" + c.request.ID()
	if r, ok := t.cached(ctx, key); ok {
		trace.SpanFromContext(ctx).AddEvent("cache hit")
		if t.cacheHits != nil {
			t.cacheHits.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", c.operation())))
		}
		return r, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("postnl %s: %w", c.operation(), err)
	}
	// The flight outlives any single caller: each caller stops waiting on
	// its own context while the round trip keeps serving the others.
	flight := context.WithoutCancel(ctx)
	ch := t.flights.DoChan(key, func() (any, error) {
		r, err := t.send(flight, c)
		if err != nil {
			return nil, err
		}
		if r.StatusCode != http.StatusOK {
			return nil, t.responseError(c, r)
		}
		t.store(flight, key, r)
		return r, nil
	})
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("postnl %s: %w", c.operation(), ctx.Err())
	case res := <-ch:
		if res.Shared {
			logger.Or(ctx, t.log).Debug("shared in-flight request", zap.String("operation", c.operation()))
		}
		return res.Val, res.Err
	}
}

func (t *Transport) send(ctx context.Context, c call) (*response, error) {
	req, err := t.newRequest(ctx, c)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	resp, err := t.client.Do(req)
	t.record(ctx, c, resp, time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("postnl %s: %w", c.operation(), err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("postnl %s: failed to read response: %w", c.operation(), err)
	}
	logger.Or(ctx, t.log).Debug("response received", append(observability.TraceFields(ctx),
		zap.String("operation", c.operation()),
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(body)),
	)...)
	return &response{StatusCode: resp.StatusCode, Header: resp.Header, Body: body}, nil
}

func (t *Transport) record(ctx context.Context, c call, resp *http.Response, elapsed time.Duration) {
	status := 0
	if resp != nil {
		status = resp.StatusCode
	}
	attrs := metric.WithAttributes(
		attribute.String("operation", c.operation()),
		attribute.Int("status", status),
	)
	if t.requests != nil {
		t.requests.Add(ctx, 1, attrs)
	}
	if t.duration != nil {
		t.duration.Record(ctx, elapsed.Seconds(), attrs)
	}
}

func (t *Transport) newRequest(ctx context.Context, c call) (*http.Request, error) {
	target := withQuery(c.endpoint.url(t.baseURL, t.cfg.Sandbox), c.query)

	if c.soap() {
		return t.newSOAPRequest(ctx, c, target)
	}
	return t.newRESTRequest(ctx, c, target)
}

func (t *Transport) newSOAPRequest(ctx context.Context, c call, target string) (*http.Request, error) {
	b, err := soap.NewBuilder(t.xml, c.endpoint.service)
	if err != nil {
		return nil, err
	}
	body, err := b.Marshal(model.NewSecurity(t.cfg.APIKey), c.request)
	if err != nil {
		return nil, fmt.Errorf("postnl %s: %w", c.operation(), err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	action := c.action
	if action == "" {
		action = c.endpoint.action
	}
	req.Header.Set("SOAPAction", `"`+action+`"`)
	req.Header.Set("Accept", "text/xml")
	req.Header.Set("Content-Type", "text/xml;charset=UTF-8")
	return req, nil
}

// newRESTRequest posts the entity's fields without the type key.
func (t *Transport) newRESTRequest(ctx context.Context, c call, target string) (*http.Request, error) {
	entity.Tag(c.request, c.endpoint.service)
	doc, err := t.json.Serialize(c.request)
	if err != nil {
		return nil, fmt.Errorf("postnl %s: %w", c.operation(), err)
	}
	body, err := json.Marshal(doc[c.request.TypeName()])
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", t.cfg.APIKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json;charset=UTF-8")
	return req, nil
}

func (t *Transport) responseError(c call, r *response) error {
	e := &ResponseError{StatusCode: r.StatusCode, Body: r.Body, Header: r.Header}
	if c.soap() {
		var fault *soap.Fault
		if _, err := soap.ParseEnvelope(r.Body); errors.As(err, &fault) {
			e.Err = fault
		}
		return e
	}
	var v any
	if err := json.Unmarshal(r.Body, &v); err == nil {
		e.JSONBody = v
	}
	return e
}

// decode returns the entity carried by a 200 response, tagged with the
// call's service.
func (t *Transport) decode(c call, r *response) (any, error) {
	if len(bytes.TrimSpace(r.Body)) == 0 {
		return nil, ErrNotFound
	}
	if c.soap() {
		payload, err := soap.ParseEnvelope(r.Body)
		if err != nil {
			return nil, err
		}
		return t.xml.DeserializeFor(payload, c.endpoint.service)
	}

	var v any
	if err := json.Unmarshal(r.Body, &v); err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrMalformedWireInput, err)
	}
	if obj, ok := v.(map[string]any); ok && c.root != "" {
		if _, wrapped := obj[c.root]; !wrapped || len(obj) != 1 {
			v = map[string]any{c.root: obj}
		}
	}
	return t.json.DeserializeFor(v, c.endpoint.service)
}

func (t *Transport) cached(ctx context.Context, key string) (*response, bool) {
	if t.cache == nil || t.cfg.CacheTTL <= 0 {
		return nil, false
	}
	data, ok, err := t.cache.Get(ctx, key)
	if err != nil {
		logger.Or(ctx, t.log).Warn("cache lookup failed", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	if !ok {
		return nil, false
	}
	var r response
	if err := json.Unmarshal(data, &r); err != nil {
		logger.Or(ctx, t.log).Warn("dropping unreadable cache entry", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return &r, true
}

func (t *Transport) store(ctx context.Context, key string, r *response) {
	if t.cache == nil || t.cfg.CacheTTL <= 0 {
		return
	}
	data, err := json.Marshal(r)
	if err != nil {
		logger.Or(ctx, t.log).Warn("failed to encode cache entry", zap.String("key", key), zap.Error(err))
		return
	}
	if err := t.cache.Set(ctx, key, data, t.cfg.CacheTTL); err != nil {
		logger.Or(ctx, t.log).Warn("failed to store cache entry", zap.String("key", key), zap.Error(err))
	}
}

// expect returns v as E or ErrNotFound.
func expect[E entity.Entity](v any, err error) (E, error) {
	var zero E
	if err != nil {
		return zero, err
	}
	e, ok := v.(E)
	if !ok {
		return zero, ErrNotFound
	}
	return e, nil
}
