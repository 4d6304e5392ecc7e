// Package entity implements the metadata-driven entity model shared by the
// XML and JSON codecs.
//
// Every entity type is described once by a Type (its fields, their wire
// shape and the per-service scopes) and registered in an immutable Registry.
// Instances expose their fields through an explicit dispatch table, so the
// codecs can read and assign any declared field by name without reflection.
package entity

import "github.com/google/uuid"

// Entity is a typed, identity-bearing record mapped to and from wire formats.
type Entity interface {
	// ID returns the identifier generated at creation.
	ID() string
	// TypeName returns the short type name used as the wire tag.
	TypeName() string
	// CurrentService returns the service tag used for (de)serialization.
	CurrentService() string
	// SetCurrentService tags the entity for a service scope.
	SetCurrentService(service string)
	// Get returns the field value and whether it is set.
	Get(field string) (any, bool)
	// Set assigns the field through its setter.
	Set(field string, value any) error
	// FieldNames lists the fields of the dispatch table.
	FieldNames() []string

	base() *Base
}

// Validator is implemented by entities with invariants that are checked when
// a factory build finishes.
type Validator interface {
	Validate() error
}

// Base carries the state every entity shares. Concrete types embed it.
type Base struct {
	id             string
	currentService string
}

// NewBase returns a Base with a fresh identifier.
func NewBase() Base {
	return Base{id: newID()}
}

func (b *Base) ID() string {
	return b.id
}

func (b *Base) CurrentService() string {
	return b.currentService
}

func (b *Base) SetCurrentService(service string) {
	b.currentService = service
}

func (b *Base) base() *Base {
	return b
}

func newID() string {
	return uuid.NewString()
}

// Tag sets the service tag on every entity of the graph rooted at e.
// Request builders call it before rendering a payload.
func Tag(e Entity, service string) {
	if e == nil {
		return
	}
	e.SetCurrentService(service)
	walkChildren(e, func(child Entity) {
		Tag(child, service)
	})
}

func walkChildren(e Entity, fn func(Entity)) {
	for _, name := range e.FieldNames() {
		v, set := e.Get(name)
		if !set {
			continue
		}
		switch val := v.(type) {
		case Entity:
			fn(val)
		case []Entity:
			for _, item := range val {
				fn(item)
			}
		}
	}
}
