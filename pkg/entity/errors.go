package entity

import (
	"errors"
	"fmt"
)

var (
	// ErrServiceNotConfigured is returned when an entity is (de)serialized
	// without a current service tag known to its type.
	ErrServiceNotConfigured = errors.New("service not set before serialization")

	// ErrInvalidFieldValue is returned by setters that reject a value.
	ErrInvalidFieldValue = errors.New("invalid field value")

	// ErrUnknownField is returned when a field name is not declared by the type.
	ErrUnknownField = errors.New("unknown field")

	// ErrUnknownType is returned by registry lookups for names that are not
	// registered.
	ErrUnknownType = errors.New("unknown type")

	// ErrNotConstructible is returned by the factory for the base type or
	// unregistered type names.
	ErrNotConstructible = errors.New("type is not constructible")

	// ErrMalformedWireInput is returned when wire text cannot be parsed.
	ErrMalformedWireInput = errors.New("malformed wire input")
)

// FieldError describes a rejected assignment.
type FieldError struct {
	Type  string
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s.%s: %v", e.Type, e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func invalidValue(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidFieldValue, fmt.Sprintf(format, args...))
}
