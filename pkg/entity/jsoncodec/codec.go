// Package jsoncodec maps entities to type-name keyed JSON documents and back.
package jsoncodec

import (
	"fmt"
	"sort"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/Sokol111/postnl-go/pkg/core/logger"
	"github.com/Sokol111/postnl-go/pkg/entity"
)

// Codec converts entities to JSON values and back using the field metadata
// of a registry. Documents are single-key objects: {"TypeName": {...}}.
type Codec struct {
	registry  *entity.Registry
	log       *zap.Logger
	throttler *logger.LogThrottler
}

// Option configures a Codec.
type Option func(*Codec)

// WithLogger sets the logger used to report skipped wire fields.
func WithLogger(log *zap.Logger) Option {
	return func(c *Codec) {
		c.log = log
	}
}

// NewCodec creates a codec over the registry.
func NewCodec(registry *entity.Registry, opts ...Option) *Codec {
	c := &Codec{registry: registry, log: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}
	c.throttler = logger.NewLogThrottler(c.log, 0)
	return c
}

// Serialize renders e as {TypeName: fields}. Only the fields of the
// entity's current service scope are emitted.
func (c *Codec) Serialize(e entity.Entity) (map[string]any, error) {
	if e == nil {
		return nil, fmt.Errorf("serialize: nil entity")
	}
	fields, err := c.fields(e)
	if err != nil {
		return nil, err
	}
	return map[string]any{e.TypeName(): fields}, nil
}

func (c *Codec) fields(e entity.Entity) (map[string]any, error) {
	scoped, err := c.registry.ResolveEntity(e)
	if err != nil {
		return nil, fmt.Errorf("serialize %s: %w", e.TypeName(), err)
	}
	typ, _ := c.registry.TypeOf(e)

	out := make(map[string]any, len(scoped))
	for _, sf := range scoped {
		v, ok := e.Get(sf.Name)
		if !ok {
			continue
		}
		fd, _ := typ.Field(sf.Name)
		value, err := c.serializeField(fd.Shape, v)
		if err != nil {
			return nil, &entity.FieldError{Type: typ.Name, Field: sf.Name, Err: err}
		}
		out[sf.Name] = value
	}
	return out, nil
}

func (c *Codec) serializeField(shape entity.Shape, v any) (any, error) {
	switch shape {
	case entity.ShapeScalarArray:
		return entity.ToStrings(v)
	case entity.ShapeEntity:
		child, ok := v.(entity.Entity)
		if !ok {
			return nil, fmt.Errorf("%w: expected an entity, got %T", entity.ErrInvalidFieldValue, v)
		}
		return c.fields(child)
	case entity.ShapeEntityArray:
		items, ok := v.([]entity.Entity)
		if !ok {
			return nil, fmt.Errorf("%w: expected a list of entities, got %T", entity.ErrInvalidFieldValue, v)
		}
		out := make([]any, 0, len(items))
		for _, item := range items {
			m, err := c.Serialize(item)
			if err != nil {
				return nil, err
			}
			out = append(out, m)
		}
		return out, nil
	}
	return entity.FormatScalar(shape, v)
}

// Deserialize turns a single-key object naming a registered type into an
// entity. A single-key object whose key is not a type, or whose body is not
// an object, yields its body. Any other value is returned unchanged.
func (c *Codec) Deserialize(v any) (any, error) {
	obj, ok := v.(map[string]any)
	if !ok || len(obj) != 1 {
		return v, nil
	}
	for name, body := range obj {
		typ, ok := c.registry.Lookup(name)
		if !ok {
			return body, nil
		}
		fields, ok := body.(map[string]any)
		if !ok {
			return body, nil
		}
		return c.deserializeEntity(typ, fields)
	}
	return v, nil
}

// DeserializeFor deserializes v and tags the resulting entity graph with
// the service. The root type must have a scope for the service.
func (c *Codec) DeserializeFor(v any, service string) (any, error) {
	out, err := c.Deserialize(v)
	if err != nil {
		return nil, err
	}
	e, ok := out.(entity.Entity)
	if !ok {
		return out, nil
	}
	if _, err := c.registry.Resolve(e.TypeName(), service); err != nil {
		return nil, fmt.Errorf("deserialize %s: %w", e.TypeName(), err)
	}
	entity.Tag(e, service)
	return e, nil
}

func (c *Codec) deserializeEntity(typ *entity.Type, fields map[string]any) (entity.Entity, error) {
	b, err := c.registry.NewBuilder(typ.Name)
	if err != nil {
		return nil, err
	}
	for _, fd := range typ.Fields {
		raw, ok := fields[fd.Name]
		if !ok {
			continue
		}
		v, err := c.deserializeField(fd, raw)
		if err != nil {
			return nil, err
		}
		if err := b.Set(fd.Name, v); err != nil {
			return nil, err
		}
	}
	for _, name := range unknownKeys(typ, fields) {
		c.throttler.Warn(typ.Name+"."+name, "skipping unknown wire field",
			zap.String("type", typ.Name),
			zap.String("field", name),
		)
	}
	return b.Finish()
}

func unknownKeys(typ *entity.Type, fields map[string]any) []string {
	var names []string
	for name := range fields {
		if _, ok := typ.Field(name); !ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// deserializeField converts one wire value. An explicit array is always a
// collection; an object is a single nested entity.
func (c *Codec) deserializeField(fd entity.FieldDescriptor, raw any) (any, error) {
	switch v := raw.(type) {
	case []any:
		elem, found := c.elementType(fd.Name)
		items := make([]any, 0, len(v))
		for _, item := range v {
			obj, isObject := item.(map[string]any)
			if !found || !isObject {
				items = append(items, item)
				continue
			}
			e, err := c.deserializeItem(elem, obj)
			if err != nil {
				return nil, err
			}
			items = append(items, e)
		}
		return items, nil
	case map[string]any:
		if fd.Shape != entity.ShapeEntity && fd.Shape != entity.ShapeEntityArray {
			return v, nil
		}
		elem, found := c.elementType(fd.Name)
		if !found {
			return v, nil
		}
		return c.deserializeItem(elem, v)
	}
	return raw, nil
}

// deserializeItem accepts an element either bare or wrapped in a single key
// naming its type.
func (c *Codec) deserializeItem(elem *entity.Type, obj map[string]any) (entity.Entity, error) {
	if len(obj) == 1 {
		for name, body := range obj {
			if _, isField := elem.Field(name); isField {
				break
			}
			typ, ok := c.registry.Lookup(name)
			fields, isObject := body.(map[string]any)
			if ok && isObject {
				return c.deserializeEntity(typ, fields)
			}
		}
	}
	return c.deserializeEntity(elem, obj)
}

func (c *Codec) elementType(name string) (*entity.Type, bool) {
	if entity.IsIrregularPlural(name) {
		return c.registry.Lookup(entity.Singularize(name))
	}
	if t, ok := c.registry.Lookup(name); ok {
		return t, true
	}
	return c.registry.Lookup(entity.Singularize(name))
}

// Marshal serializes e and renders it as JSON text.
func (c *Codec) Marshal(e entity.Entity) ([]byte, error) {
	m, err := c.Serialize(e)
	if err != nil {
		return nil, err
	}
	return json.Marshal(m)
}

// MarshalIndent is like Marshal but indents the output.
func (c *Codec) MarshalIndent(e entity.Entity, prefix, indent string) ([]byte, error) {
	m, err := c.Serialize(e)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(m, prefix, indent)
}

// Unmarshal parses JSON text and deserializes the document. Numbers decode
// as float64.
func (c *Codec) Unmarshal(data []byte) (any, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrMalformedWireInput, err)
	}
	return c.Deserialize(v)
}
