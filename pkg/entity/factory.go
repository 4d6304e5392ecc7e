package entity

import (
	"fmt"
	"sort"
)

// baseTypeNames name the abstract root, which is never constructible.
var baseTypeNames = map[string]struct{}{
	"AbstractEntity": {},
	"Entity":         {},
}

// Create instantiates the named type without its public constructor and
// applies the values through the field setters in descriptor order. Keys
// that are not fields of the type are rejected.
func (r *Registry) Create(typeName string, values map[string]any) (Entity, error) {
	b, err := r.NewBuilder(typeName)
	if err != nil {
		return nil, err
	}
	t := b.typ
	for _, f := range t.Fields {
		v, ok := values[f.Name]
		if !ok {
			continue
		}
		if err := b.Set(f.Name, v); err != nil {
			return nil, err
		}
	}
	if extra := unknownKeys(t, values); len(extra) > 0 {
		return nil, &FieldError{Type: t.Name, Field: extra[0], Err: ErrUnknownField}
	}
	return b.Finish()
}

func unknownKeys(t *Type, values map[string]any) []string {
	var extra []string
	for k := range values {
		if _, ok := t.Field(k); !ok {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)
	return extra
}

// Builder is the two-phase construction of an entity: fields are assigned
// on a raw instance, then Finish validates it and assigns an identifier.
type Builder struct {
	typ      *Type
	e        Entity
	finished bool
}

// NewBuilder starts constructing a raw instance of the named type.
func (r *Registry) NewBuilder(typeName string) (*Builder, error) {
	if _, ok := baseTypeNames[typeName]; ok {
		return nil, fmt.Errorf("create %s: %w", typeName, ErrNotConstructible)
	}
	t, ok := r.Lookup(typeName)
	if !ok {
		return nil, fmt.Errorf("create %s: %w", typeName, ErrNotConstructible)
	}
	return &Builder{typ: t, e: t.New()}, nil
}

// Type returns the type being built.
func (b *Builder) Type() *Type {
	return b.typ
}

// Set assigns one field on the raw instance.
func (b *Builder) Set(field string, value any) error {
	if b.finished {
		return fmt.Errorf("%s: builder already finished", b.typ.Name)
	}
	return b.e.Set(field, value)
}

// Finish runs the type's invariants and returns the instance with a fresh
// identifier.
func (b *Builder) Finish() (Entity, error) {
	if b.finished {
		return nil, fmt.Errorf("%s: builder already finished", b.typ.Name)
	}
	if v, ok := b.e.(Validator); ok {
		if err := v.Validate(); err != nil {
			return nil, fmt.Errorf("validate %s: %w", b.typ.Name, err)
		}
	}
	b.e.base().id = newID()
	b.finished = true
	return b.e, nil
}
