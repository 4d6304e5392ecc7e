package entity

import (
	"fmt"
	"sort"
)

// Registry is the immutable catalogue of entity types. It is built once and
// safe for concurrent reads.
type Registry struct {
	groups map[Group]map[string]*Type
}

// NewRegistry indexes the given types. A type name must be unique within
// its group.
func NewRegistry(types ...*Type) (*Registry, error) {
	r := &Registry{
		groups: make(map[Group]map[string]*Type, len(Groups)),
	}
	for _, t := range types {
		if t == nil {
			return nil, fmt.Errorf("registry: nil type")
		}
		if err := t.index(); err != nil {
			return nil, fmt.Errorf("registry: %w", err)
		}
		if err := checkGroup(t); err != nil {
			return nil, err
		}
		group, ok := r.groups[t.Group]
		if !ok {
			group = make(map[string]*Type)
			r.groups[t.Group] = group
		}
		if _, dup := group[t.Name]; dup {
			return nil, fmt.Errorf("registry: duplicate type %s in group %s", t.Name, t.Group)
		}
		group[t.Name] = t
	}
	return r, nil
}

// MustRegistry is like NewRegistry but panics on error.
func MustRegistry(types ...*Type) *Registry {
	r, err := NewRegistry(types...)
	if err != nil {
		panic(err)
	}
	return r
}

// checkGroup rejects groups outside Groups, which Lookup would never reach.
func checkGroup(t *Type) error {
	for _, g := range Groups {
		if g == t.Group {
			return nil
		}
	}
	return fmt.Errorf("registry: type %s has unknown group %q", t.Name, t.Group)
}

// Lookup resolves a short type name by walking the groups in order. The
// first group declaring the name wins.
func (r *Registry) Lookup(name string) (*Type, bool) {
	for _, g := range Groups {
		if t, ok := r.groups[g][name]; ok {
			return t, true
		}
	}
	return nil, false
}

// Describe returns the ordered field descriptors of the named type.
func (r *Registry) Describe(typeName string) ([]FieldDescriptor, error) {
	t, ok := r.Lookup(typeName)
	if !ok {
		return nil, fmt.Errorf("describe %s: %w", typeName, ErrUnknownType)
	}
	return append([]FieldDescriptor(nil), t.Fields...), nil
}

// TypeOf returns the type of an instance.
func (r *Registry) TypeOf(e Entity) (*Type, bool) {
	if e == nil {
		return nil, false
	}
	return r.Lookup(e.TypeName())
}

// Names returns every resolvable type name, sorted.
func (r *Registry) Names() []string {
	seen := make(map[string]struct{})
	for _, group := range r.groups {
		for name := range group {
			seen[name] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
