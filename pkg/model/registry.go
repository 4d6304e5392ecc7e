package model

import "github.com/Sokol111/postnl-go/pkg/entity"

//go:generate go run ../../cmd/postnl gen accessors --config entities.yaml --output accessors.gen.go

var registry = entity.MustRegistry(Types()...)

// Registry returns the registry of every shipping entity type.
func Registry() *entity.Registry {
	return registry
}
