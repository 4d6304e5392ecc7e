package xmlcodec

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Sokol111/postnl-go/pkg/core/logger"
	"github.com/Sokol111/postnl-go/pkg/entity"
)

// Codec converts entities to node trees and back using the field metadata
// of a registry.
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

// Serialize renders e as a node named after its type.
func (c *Codec) Serialize(e entity.Entity) (*Node, error) {
	if e == nil {
		return nil, fmt.Errorf("serialize: nil entity")
	}
	return c.SerializeAs(e.TypeName(), e)
}

// SerializeAs renders e as a node with the given qualified name. Only the
// fields of the entity's current service scope are emitted; unset fields
// are skipped.
func (c *Codec) SerializeAs(name string, e entity.Entity) (*Node, error) {
	scoped, err := c.registry.ResolveEntity(e)
	if err != nil {
		return nil, fmt.Errorf("serialize %s: %w", e.TypeName(), err)
	}
	typ, _ := c.registry.TypeOf(e)

	node := &Node{Name: name}
	for _, sf := range scoped {
		v, ok := e.Get(sf.Name)
		if !ok {
			continue
		}
		fd, _ := typ.Field(sf.Name)
		child, err := c.serializeField(Qualify(sf.Namespace, sf.Name), sf.Namespace, fd.Shape, v)
		if err != nil {
			return nil, &entity.FieldError{Type: typ.Name, Field: sf.Name, Err: err}
		}
		node.Children = append(node.Children, child)
	}
	return node, nil
}

func (c *Codec) serializeField(name, namespace string, shape entity.Shape, v any) (*Node, error) {
	switch shape {
	case entity.ShapeScalarArray:
		items, err := entity.ToStrings(v)
		if err != nil {
			return nil, err
		}
		node := &Node{Name: name}
		for _, item := range items {
			node.Children = append(node.Children, &Node{Name: ArrayItem, Text: item})
		}
		return node, nil
	case entity.ShapeEntity:
		child, ok := v.(entity.Entity)
		if !ok {
			return nil, fmt.Errorf("%w: expected an entity, got %T", entity.ErrInvalidFieldValue, v)
		}
		return c.SerializeAs(name, child)
	case entity.ShapeEntityArray:
		items, ok := v.([]entity.Entity)
		if !ok {
			return nil, fmt.Errorf("%w: expected a list of entities, got %T", entity.ErrInvalidFieldValue, v)
		}
		node := &Node{Name: name}
		for _, item := range items {
			child, err := c.SerializeAs(Qualify(namespace, item.TypeName()), item)
			if err != nil {
				return nil, err
			}
			node.Children = append(node.Children, child)
		}
		return node, nil
	}
	text, err := entity.FormatScalar(shape, v)
	if err != nil {
		return nil, err
	}
	return &Node{Name: name, Text: text}, nil
}

// Deserialize turns a node into an entity when its local name is a
// registered type and it has children. Any other node yields its raw value:
// the text of a terminal node or the children of a nested one.
func (c *Codec) Deserialize(n *Node) (any, error) {
	if n == nil {
		return nil, fmt.Errorf("deserialize: nil node")
	}
	typ, ok := c.registry.Lookup(n.LocalName())
	if !ok || !n.IsNested() {
		return raw(n), nil
	}

	b, err := c.registry.NewBuilder(typ.Name)
	if err != nil {
		return nil, err
	}
	var (
		repeated = make(map[string][]any)
		order    []string
	)
	for _, child := range n.Children {
		name := child.LocalName()
		fd, known := typ.Field(name)
		if !known {
			c.throttler.Warn(typ.Name+"."+name, "skipping unknown wire field",
				zap.String("type", typ.Name),
				zap.String("field", name),
			)
			continue
		}

		if c.isRepeatedItem(child, name, fd) {
			v, err := c.Deserialize(child)
			if err != nil {
				return nil, err
			}
			if _, seen := repeated[name]; !seen {
				order = append(order, name)
			}
			repeated[name] = append(repeated[name], v)
			continue
		}

		v, err := c.deserializeChild(child, name, fd)
		if err != nil {
			return nil, err
		}
		if err := b.Set(name, coerce(v, fd.Shape)); err != nil {
			return nil, err
		}
	}
	for _, name := range order {
		if err := b.Set(name, repeated[name]); err != nil {
			return nil, err
		}
	}
	return b.Finish()
}

// isRepeatedItem reports whether child is one element of an unwrapped
// entity list: the field is an entity array named after its element type
// and the child holds the element's own fields rather than wrapped items.
func (c *Codec) isRepeatedItem(child *Node, name string, fd entity.FieldDescriptor) bool {
	if fd.Shape != entity.ShapeEntityArray || !child.IsNested() || entity.IsIrregularPlural(name) {
		return false
	}
	if _, ok := c.registry.Lookup(name); !ok {
		return false
	}
	return child.Children[0].LocalName() != name
}

// DeserializeFor deserializes n and tags the resulting entity graph with
// the service. The root type must have a scope for the service.
func (c *Codec) DeserializeFor(n *Node, service string) (any, error) {
	v, err := c.Deserialize(n)
	if err != nil {
		return nil, err
	}
	e, ok := v.(entity.Entity)
	if !ok {
		return v, nil
	}
	if _, err := c.registry.Resolve(e.TypeName(), service); err != nil {
		return nil, fmt.Errorf("deserialize %s: %w", e.TypeName(), err)
	}
	entity.Tag(e, service)
	return e, nil
}

func (c *Codec) deserializeChild(child *Node, name string, fd entity.FieldDescriptor) (any, error) {
	if child.IsEmpty() {
		return child.Text, nil
	}
	if !c.isCollection(child, name, fd) {
		return c.Deserialize(child)
	}
	if c.isSingleEntity(child) {
		return c.Deserialize(child)
	}

	items := make([]any, 0, len(child.Children))
	for _, item := range child.Children {
		v, err := c.deserializeItem(item)
		if err != nil {
			return nil, err
		}
		if _, ok := v.(entity.Entity); !ok {
			c.throttler.Warn(name+"."+item.LocalName(), "skipping non-entity collection item",
				zap.String("field", name),
				zap.String("item", item.LocalName()),
				zap.Any("value", v),
			)
			continue
		}
		items = append(items, v)
	}
	return items, nil
}

// isSingleEntity reports whether a collection-looking child is one entity
// written with its fields inline: its own name is a registered type and its
// first child is a terminal value rather than an element of the list.
func (c *Codec) isSingleEntity(child *Node) bool {
	first := child.Children[0]
	if first.IsNested() || c.isEmptyElement(first) {
		return false
	}
	_, ok := c.registry.Lookup(child.LocalName())
	return ok
}

// isEmptyElement reports whether item is an entity element with no fields
// set, written as <Contact/>.
func (c *Codec) isEmptyElement(item *Node) bool {
	if !item.IsEmpty() {
		return false
	}
	_, ok := c.registry.Lookup(item.LocalName())
	return ok
}

// deserializeItem decodes one collection item. Nested items and empty
// entity elements become entities; any other terminal item is kept as a
// scalar under its own name.
func (c *Codec) deserializeItem(item *Node) (any, error) {
	switch {
	case item.IsNested():
		return c.Deserialize(item)
	case c.isEmptyElement(item):
		b, err := c.registry.NewBuilder(item.LocalName())
		if err != nil {
			return nil, err
		}
		return b.Finish()
	}
	return map[string]any{item.LocalName(): item.Text}, nil
}

// isCollection applies the plural heuristics: the child must be nested, its
// name or singular form must be a registered type, the name must not be one
// of the single-valued exceptions and the field must not be declared as a
// single entity.
func (c *Codec) isCollection(child *Node, name string, fd entity.FieldDescriptor) bool {
	if !child.IsNested() || entity.IsSingleValued(name) || fd.Shape == entity.ShapeEntity {
		return false
	}
	_, ok := c.elementType(name)
	return ok
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

// Marshal serializes e and renders it as XML text.
func (c *Codec) Marshal(e entity.Entity, opts ...WriteOption) ([]byte, error) {
	n, err := c.Serialize(e)
	if err != nil {
		return nil, err
	}
	return Marshal(n, opts...)
}

// Unmarshal parses XML text and deserializes the root element.
func (c *Codec) Unmarshal(data []byte) (any, error) {
	n, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return c.Deserialize(n)
}

func raw(n *Node) any {
	if n.IsNested() {
		return n.Children
	}
	return n.Text
}

// coerce converts raw nested values to the field shape where the conversion
// is unambiguous.
func coerce(v any, shape entity.Shape) any {
	children, ok := v.([]*Node)
	if !ok {
		return v
	}
	if shape == entity.ShapeScalarArray {
		if items, ok := (&Node{Children: children}).Strings(); ok {
			return items
		}
	}
	return v
}
