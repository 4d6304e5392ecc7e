package entity

import (
	"time"
)

// Accessor reads and writes one field of an entity of type E.
type Accessor[E any] struct {
	Shape Shape
	Get   func(E) (any, bool)
	Set   func(E, any) error
}

// Table is the per-type field dispatch table. It replaces name-parsing
// getters and setters with an explicit map built once per type.
type Table[E any] struct {
	typeName string
	names    []string
	fields   map[string]Accessor[E]
}

// Binding pairs a field name with its accessor, keeping declaration order.
type Binding[E any] struct {
	Name     string
	Accessor Accessor[E]
}

// Bind declares a table entry.
func Bind[E any](name string, acc Accessor[E]) Binding[E] {
	return Binding[E]{Name: name, Accessor: acc}
}

// NewTable builds a dispatch table for the named type.
func NewTable[E any](typeName string, bindings ...Binding[E]) *Table[E] {
	t := &Table[E]{
		typeName: typeName,
		names:    make([]string, 0, len(bindings)),
		fields:   make(map[string]Accessor[E], len(bindings)),
	}
	for _, b := range bindings {
		if _, dup := t.fields[b.Name]; dup {
			panic("entity: duplicate field " + typeName + "." + b.Name)
		}
		t.names = append(t.names, b.Name)
		t.fields[b.Name] = b.Accessor
	}
	return t
}

// Get returns the field value and whether it is set.
func (t *Table[E]) Get(e E, name string) (any, bool) {
	acc, ok := t.fields[name]
	if !ok {
		return nil, false
	}
	return acc.Get(e)
}

// Set assigns the field. Errors are wrapped in a *FieldError.
func (t *Table[E]) Set(e E, name string, value any) error {
	acc, ok := t.fields[name]
	if !ok {
		return &FieldError{Type: t.typeName, Field: name, Err: ErrUnknownField}
	}
	if err := acc.Set(e, value); err != nil {
		return &FieldError{Type: t.typeName, Field: name, Err: err}
	}
	return nil
}

// Names returns the field names in declaration order.
func (t *Table[E]) Names() []string {
	return t.names
}

// Descriptors derives the field descriptors of the table, in declaration
// order, all in the given namespace.
func (t *Table[E]) Descriptors(namespace string) []FieldDescriptor {
	fields := make([]FieldDescriptor, 0, len(t.names))
	for _, name := range t.names {
		fields = append(fields, FieldDescriptor{Name: name, Namespace: namespace, Shape: t.fields[name].Shape})
	}
	return fields
}

// String binds a *string field. Optional normalizers run on every assignment.
func String[E any](field func(E) **string, normalize ...func(string) string) Accessor[E] {
	return Accessor[E]{
		Shape: ShapeScalar,
		Get: func(e E) (any, bool) {
			p := *field(e)
			if p == nil {
				return nil, false
			}
			return *p, true
		},
		Set: func(e E, v any) error {
			if v == nil {
				*field(e) = nil
				return nil
			}
			s, err := ToString(v)
			if err != nil {
				return err
			}
			for _, n := range normalize {
				s = n(s)
			}
			*field(e) = &s
			return nil
		},
	}
}

// Bool binds a boolean-like field stored as "true" or "false".
func Bool[E any](field func(E) **string) Accessor[E] {
	return Accessor[E]{
		Shape: ShapeBoolean,
		Get:   String(field).Get,
		Set: func(e E, v any) error {
			if v == nil {
				*field(e) = nil
				return nil
			}
			s := NormalizeBool(v)
			*field(e) = &s
			return nil
		},
	}
}

// Strings binds a string list field. Every item must be a string.
func Strings[E any](field func(E) *[]string) Accessor[E] {
	return Accessor[E]{
		Shape: ShapeScalarArray,
		Get: func(e E) (any, bool) {
			p := *field(e)
			if p == nil {
				return nil, false
			}
			return p, true
		},
		Set: func(e E, v any) error {
			if v == nil || v == "" {
				*field(e) = nil
				return nil
			}
			list, err := ToStrings(v)
			if err != nil {
				return err
			}
			*field(e) = list
			return nil
		},
	}
}

// Time binds a timestamp field.
func Time[E any](field func(E) **time.Time) Accessor[E] {
	return Accessor[E]{
		Shape: ShapeTimestamp,
		Get: func(e E) (any, bool) {
			p := *field(e)
			if p == nil {
				return nil, false
			}
			return *p, true
		},
		Set: func(e E, v any) error {
			if v == nil || v == "" {
				*field(e) = nil
				return nil
			}
			t, err := ToTime(v)
			if err != nil {
				return err
			}
			*field(e) = &t
			return nil
		},
	}
}

// Nested binds a single nested entity field of concrete type C.
func Nested[E any, C Entity](field func(E) *C) Accessor[E] {
	return Accessor[E]{
		Shape: ShapeEntity,
		Get: func(e E) (any, bool) {
			c := *field(e)
			if isNil(c) {
				return nil, false
			}
			return Entity(c), true
		},
		Set: func(e E, v any) error {
			var zero C
			if v == nil || v == "" {
				*field(e) = zero
				return nil
			}
			c, ok := v.(C)
			if !ok {
				return invalidValue("expected %T, got %T", zero, v)
			}
			*field(e) = c
			return nil
		},
	}
}

// NestedList binds a list of nested entities of concrete type C. A single C
// is accepted as a one-element list.
func NestedList[E any, C Entity](field func(E) *[]C) Accessor[E] {
	return Accessor[E]{
		Shape: ShapeEntityArray,
		Get: func(e E) (any, bool) {
			list := *field(e)
			if list == nil {
				return nil, false
			}
			out := make([]Entity, 0, len(list))
			for _, c := range list {
				out = append(out, c)
			}
			return out, true
		},
		Set: func(e E, v any) error {
			if v == nil || v == "" {
				*field(e) = nil
				return nil
			}
			list, err := toEntityList[C](v)
			if err != nil {
				return err
			}
			*field(e) = list
			return nil
		},
	}
}

func toEntityList[C Entity](v any) ([]C, error) {
	var zero C
	switch list := v.(type) {
	case C:
		return []C{list}, nil
	case []C:
		return append([]C(nil), list...), nil
	case []Entity:
		out := make([]C, 0, len(list))
		for i, item := range list {
			c, ok := item.(C)
			if !ok {
				return nil, invalidValue("item %d: expected %T, got %T", i, zero, item)
			}
			out = append(out, c)
		}
		return out, nil
	case []any:
		out := make([]C, 0, len(list))
		for i, item := range list {
			c, ok := item.(C)
			if !ok {
				return nil, invalidValue("item %d: expected %T, got %T", i, zero, item)
			}
			out = append(out, c)
		}
		return out, nil
	}
	return nil, invalidValue("expected a list of %T, got %T", zero, v)
}
