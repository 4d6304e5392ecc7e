// Package model declares the shipping entities, the service scopes they are
// serialized under and the registry that ties them together.
package model

import (
	"github.com/Sokol111/postnl-go/pkg/entity"
)

// Service tags. An entity is serialized with the field subset registered
// for its current service tag.
const (
	ServiceBarcode        = "Barcode"
	ServiceConfirming     = "Confirming"
	ServiceLabelling      = "Labelling"
	ServiceShippingStatus = "ShippingStatus"
	ServiceLocation       = "Location"
	ServiceDeliveryDate   = "DeliveryDate"
	ServiceShipping       = "Shipping"
)

// SOAPServices lists the services reached through SOAP endpoints.
var SOAPServices = []string{
	ServiceBarcode,
	ServiceConfirming,
	ServiceLabelling,
	ServiceShippingStatus,
	ServiceLocation,
	ServiceDeliveryDate,
}

// Services lists every service tag.
var Services = append(append([]string(nil), SOAPServices...), ServiceShipping)

const (
	domainBase   = "http://postnl.nl/cif/domain/"
	servicesBase = "http://postnl.nl/cif/services/"
)

// DomainNamespace returns the namespace of entity fields for the service.
// REST services have no namespace.
func DomainNamespace(service string) string {
	if service == ServiceShipping {
		return ""
	}
	return domainBase + service + "WebService/"
}

// ServicesNamespace returns the namespace of the operation elements of a
// SOAP service.
func ServicesNamespace(service string) string {
	if service == ServiceShipping {
		return ""
	}
	return servicesBase + service + "WebService/"
}

// IsSOAP reports whether the service is reached through SOAP.
func IsSOAP(service string) bool {
	for _, s := range SOAPServices {
		if s == service {
			return true
		}
	}
	return false
}

// fullScopes exposes every field to each service under the service's
// domain namespace.
func fullScopes(fields []entity.FieldDescriptor, services ...string) []entity.Scope {
	scopes := make([]entity.Scope, 0, len(services))
	for _, s := range services {
		scopes = append(scopes, entity.AllFields(s, DomainNamespace(s), fields))
	}
	return scopes
}

// partialScope exposes the named fields to the service.
func partialScope(service string, names ...string) entity.Scope {
	return entity.ScopeOf(service, DomainNamespace(service), names...)
}
