package entity

import "fmt"

// Resolve returns the ordered (field, namespace) pairs that the service
// exposes for the type.
func (r *Registry) Resolve(typeName, service string) ([]ScopedField, error) {
	t, ok := r.Lookup(typeName)
	if !ok {
		return nil, fmt.Errorf("resolve %s: %w", typeName, ErrUnknownType)
	}
	return resolve(t, service)
}

// ResolveEntity resolves the scope of e for its current service tag. The tag
// is read on every call.
func (r *Registry) ResolveEntity(e Entity) ([]ScopedField, error) {
	t, ok := r.TypeOf(e)
	if !ok {
		return nil, fmt.Errorf("resolve %T: %w", e, ErrUnknownType)
	}
	return resolve(t, e.CurrentService())
}

func resolve(t *Type, service string) ([]ScopedField, error) {
	if service == "" {
		return nil, fmt.Errorf("%s: %w", t.Name, ErrServiceNotConfigured)
	}
	scope, ok := t.Scope(service)
	if !ok {
		return nil, fmt.Errorf("%s has no scope for service %q: %w", t.Name, service, ErrServiceNotConfigured)
	}
	return append([]ScopedField(nil), scope.Fields...), nil
}
