package model

import (
	"github.com/Sokol111/postnl-go/pkg/entity"
)

// define builds the type description of E from its dispatch table. The
// services in full see every field; partial scopes are appended as given.
func define[E entity.Entity](name string, group entity.Group, table *entity.Table[E], newFn func() E, full []string, partial ...entity.Scope) *entity.Type {
	fields := table.Descriptors("")
	return &entity.Type{
		Name:   name,
		Group:  group,
		Fields: fields,
		Scopes: append(fullScopes(fields, full...), partial...),
		New:    func() entity.Entity { return newFn() },
	}
}

// services is a readability helper for scope lists.
func services(s ...string) []string {
	return s
}

var (
	shipmentServices = services(ServiceConfirming, ServiceLabelling, ServiceShipping)
	labelServices    = services(ServiceLabelling, ServiceShipping)
)
