package model_test

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sokol111/postnl-go/pkg/entity"
	"github.com/Sokol111/postnl-go/pkg/entity/jsoncodec"
	"github.com/Sokol111/postnl-go/pkg/entity/xmlcodec"
	"github.com/Sokol111/postnl-go/pkg/model"
)

const sampleDepth = 4

var (
	scalarSamples = []string{"10", "100"}
	listSample    = []string{"PG", "PGE"}
	dateSample    = time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
)

// sampler fills entities with a representative value for every field their
// service scope exposes.
type sampler struct {
	reg *entity.Registry
}

// fill sets every scoped field it can and tags e for the service. It
// reports whether any field was set.
func (s sampler) fill(e entity.Entity, service string, depth int) bool {
	typ, ok := s.reg.TypeOf(e)
	if !ok {
		return false
	}
	scope, ok := typ.Scope(service)
	if !ok {
		return false
	}
	e.SetCurrentService(service)

	filled := false
	for _, sf := range scope.Fields {
		fd, _ := typ.Field(sf.Name)
		if s.fillField(e, fd, service, depth) {
			filled = true
		}
	}
	return filled
}

func (s sampler) fillField(e entity.Entity, fd entity.FieldDescriptor, service string, depth int) bool {
	switch fd.Shape {
	case entity.ShapeScalar:
		for _, v := range scalarSamples {
			if e.Set(fd.Name, v) == nil && valid(e) {
				return true
			}
		}
		_ = e.Set(fd.Name, nil)
		return false
	case entity.ShapeBoolean:
		return e.Set(fd.Name, true) == nil
	case entity.ShapeScalarArray:
		return e.Set(fd.Name, listSample) == nil
	case entity.ShapeTimestamp:
		return e.Set(fd.Name, dateSample) == nil
	case entity.ShapeEntity:
		if depth >= sampleDepth {
			return false
		}
		typ, ok := s.elementType(e, fd, service, func(c entity.Entity) any { return c })
		if !ok {
			return false
		}
		child := typ.New()
		return s.fill(child, service, depth+1) && e.Set(fd.Name, child) == nil
	case entity.ShapeEntityArray:
		if depth >= sampleDepth {
			return false
		}
		typ, ok := s.elementType(e, fd, service, func(c entity.Entity) any { return []entity.Entity{c} })
		if !ok {
			return false
		}
		first, second := typ.New(), typ.New()
		if !s.fill(first, service, depth+1) || !s.fill(second, service, depth+1) {
			return false
		}
		return e.Set(fd.Name, []entity.Entity{first, second}) == nil
	}
	return false
}

// elementType finds the registered type the field accepts, preferring the
// types its name implies.
func (s sampler) elementType(e entity.Entity, fd entity.FieldDescriptor, service string, wrap func(entity.Entity) any) (*entity.Type, bool) {
	names := append([]string{fd.Name, entity.Singularize(fd.Name)}, s.reg.Names()...)
	defer func() { _ = e.Set(fd.Name, nil) }()
	for _, name := range names {
		typ, ok := s.reg.Lookup(name)
		if !ok {
			continue
		}
		if _, scoped := typ.Scope(service); !scoped {
			continue
		}
		if e.Set(fd.Name, wrap(typ.New())) == nil {
			return typ, true
		}
	}
	return nil, false
}

func valid(e entity.Entity) bool {
	v, ok := e.(entity.Validator)
	return !ok || v.Validate() == nil
}

type scopedSample struct {
	name    string
	service string
	entity  entity.Entity
}

// scopedSamples builds a filled entity for every registered type and every
// service it has a scope for.
func scopedSamples(t *testing.T) []scopedSample {
	t.Helper()
	reg := model.Registry()
	s := sampler{reg: reg}

	var out []scopedSample
	for _, name := range reg.Names() {
		typ, ok := reg.Lookup(name)
		require.True(t, ok)
		for _, service := range typ.Services() {
			e := typ.New()
			if !s.fill(e, service, 0) {
				continue
			}
			out = append(out, scopedSample{name: name + "/" + service, service: service, entity: e})
		}
	}
	return out
}

func TestRoundTrip_XML_EveryTypeAndScope(t *testing.T) {
	codec := xmlcodec.NewCodec(model.Registry())
	samples := scopedSamples(t)
	require.NotEmpty(t, samples)

	for _, tt := range samples {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			want, err := codec.Marshal(tt.entity)
			require.NoError(t, err)

			// Act
			n, err := xmlcodec.Parse(want)
			require.NoError(t, err)
			v, err := codec.DeserializeFor(n, tt.service)
			require.NoError(t, err)

			// Assert
			got, ok := v.(entity.Entity)
			require.True(t, ok, "decoded %T", v)
			assert.Equal(t, tt.entity.TypeName(), got.TypeName())
			again, err := codec.Marshal(got)
			require.NoError(t, err)
			assert.Equal(t, string(want), string(again))
		})
	}
}

func TestRoundTrip_JSON_EveryTypeAndScope(t *testing.T) {
	codec := jsoncodec.NewCodec(model.Registry())
	samples := scopedSamples(t)
	require.NotEmpty(t, samples)

	for _, tt := range samples {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			want, err := codec.Marshal(tt.entity)
			require.NoError(t, err)

			// Act
			var doc any
			require.NoError(t, json.Unmarshal(want, &doc))
			v, err := codec.DeserializeFor(doc, tt.service)
			require.NoError(t, err)

			// Assert
			got, ok := v.(entity.Entity)
			require.True(t, ok, "decoded %T", v)
			assert.Equal(t, tt.entity.TypeName(), got.TypeName())
			again, err := codec.Marshal(got)
			require.NoError(t, err)
			assert.JSONEq(t, string(want), string(again))
		})
	}
}
