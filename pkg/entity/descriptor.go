package entity

import "fmt"

// Shape describes how a field is represented on the wire.
type Shape int

const (
	// ShapeScalar is a single terminal value rendered as a string.
	ShapeScalar Shape = iota
	// ShapeBoolean is a scalar rendered as the literal "true" or "false".
	ShapeBoolean
	// ShapeScalarArray is an ordered list of strings.
	ShapeScalarArray
	// ShapeEntity is a single nested entity.
	ShapeEntity
	// ShapeEntityArray is an ordered list of nested entities.
	ShapeEntityArray
	// ShapeTimestamp is a calendar date rendered as DD-MM-YYYY.
	ShapeTimestamp
)

func (s Shape) String() string {
	switch s {
	case ShapeScalar:
		return "scalar"
	case ShapeBoolean:
		return "boolean"
	case ShapeScalarArray:
		return "scalar-array"
	case ShapeEntity:
		return "entity"
	case ShapeEntityArray:
		return "entity-array"
	case ShapeTimestamp:
		return "timestamp"
	}
	return fmt.Sprintf("shape(%d)", int(s))
}

// Group is the logical namespace an entity type belongs to. Type lookup by
// short name walks the groups in the order of Groups.
type Group string

const (
	GroupEntity   Group = "entity"
	GroupMessage  Group = "message"
	GroupRequest  Group = "request"
	GroupResponse Group = "response"
	GroupSOAP     Group = "soap"
)

// Groups is the fixed lookup order used when resolving a short type name.
var Groups = []Group{GroupEntity, GroupMessage, GroupRequest, GroupResponse, GroupSOAP}

// FieldDescriptor describes one wire-visible field of an entity type.
type FieldDescriptor struct {
	Name      string
	Namespace string
	Shape     Shape
}

// ScopedField is a field as it appears under one service scope. The same
// field may carry a different namespace in another scope.
type ScopedField struct {
	Name      string
	Namespace string
}

// Scope is the ordered subset of a type's fields visible to one service.
type Scope struct {
	Service string
	Fields  []ScopedField
}

// Type is the static description of an entity type.
type Type struct {
	// Name is the short type name used as the wire tag.
	Name string
	// Group is the lookup namespace of the type.
	Group Group
	// Fields lists every wire-visible field in declaration order.
	Fields []FieldDescriptor
	// Scopes maps a service tag to the fields serialized for it.
	Scopes []Scope
	// New returns a raw, unvalidated instance.
	New func() Entity

	fieldIndex map[string]int
	scopeIndex map[string]int
}

// Field returns the descriptor of the named field.
func (t *Type) Field(name string) (FieldDescriptor, bool) {
	i, ok := t.fieldIndex[name]
	if !ok {
		return FieldDescriptor{}, false
	}
	return t.Fields[i], true
}

// Scope returns the scope registered for the service tag.
func (t *Type) Scope(service string) (Scope, bool) {
	i, ok := t.scopeIndex[service]
	if !ok {
		return Scope{}, false
	}
	return t.Scopes[i], true
}

// Services returns the service tags the type can be serialized for, in
// registration order.
func (t *Type) Services() []string {
	services := make([]string, 0, len(t.Scopes))
	for _, s := range t.Scopes {
		services = append(services, s.Service)
	}
	return services
}

func (t *Type) index() error {
	if t.Name == "" {
		return fmt.Errorf("type name cannot be empty")
	}
	if t.New == nil {
		return fmt.Errorf("type %s: constructor cannot be nil", t.Name)
	}
	if t.Group == "" {
		t.Group = GroupEntity
	}

	t.fieldIndex = make(map[string]int, len(t.Fields))
	for i, f := range t.Fields {
		if _, dup := t.fieldIndex[f.Name]; dup {
			return fmt.Errorf("type %s: duplicate field %s", t.Name, f.Name)
		}
		t.fieldIndex[f.Name] = i
	}

	t.scopeIndex = make(map[string]int, len(t.Scopes))
	for i, s := range t.Scopes {
		if s.Service == "" {
			return fmt.Errorf("type %s: scope service cannot be empty", t.Name)
		}
		if _, dup := t.scopeIndex[s.Service]; dup {
			return fmt.Errorf("type %s: duplicate scope %s", t.Name, s.Service)
		}
		for _, f := range s.Fields {
			if _, ok := t.fieldIndex[f.Name]; !ok {
				return fmt.Errorf("type %s: scope %s references unknown field %s", t.Name, s.Service, f.Name)
			}
		}
		t.scopeIndex[s.Service] = i
	}
	return nil
}

// Fields is a small helper to declare descriptors that share a namespace.
func Fields(namespace string, shape Shape, names ...string) []FieldDescriptor {
	fields := make([]FieldDescriptor, 0, len(names))
	for _, n := range names {
		fields = append(fields, FieldDescriptor{Name: n, Namespace: namespace, Shape: shape})
	}
	return fields
}

// ScopeOf declares a scope whose fields all use the same namespace.
func ScopeOf(service, namespace string, names ...string) Scope {
	fields := make([]ScopedField, 0, len(names))
	for _, n := range names {
		fields = append(fields, ScopedField{Name: n, Namespace: namespace})
	}
	return Scope{Service: service, Fields: fields}
}

// AllFields declares a scope exposing every field of the descriptor list.
func AllFields(service, namespace string, fields []FieldDescriptor) Scope {
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Name)
	}
	return ScopeOf(service, namespace, names...)
}
