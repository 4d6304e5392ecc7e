package model

import (
	"fmt"

	"github.com/Sokol111/postnl-go/pkg/entity"
)

// Address is a postal address of a sender, receiver or pickup point.
type Address struct {
	entity.Base

	AddressType      *string
	Area             *string
	Buildingname     *string
	City             *string
	CompanyName      *string
	Countrycode      *string
	Department       *string
	Doorcode         *string
	FirstName        *string
	Floor            *string
	HouseNr          *string
	HouseNrExt       *string
	Name             *string
	Region           *string
	Remark           *string
	Street           *string
	StreetHouseNrExt *string
	Zipcode          *string
}

// NewAddress returns an empty address with a fresh identifier.
func NewAddress() *Address {
	return &Address{Base: entity.NewBase()}
}

var addressTable = entity.NewTable("Address",
	entity.Bind("AddressType", entity.String(func(a *Address) **string { return &a.AddressType }, zeroPad2)),
	entity.Bind("Area", entity.String(func(a *Address) **string { return &a.Area })),
	entity.Bind("Buildingname", entity.String(func(a *Address) **string { return &a.Buildingname })),
	entity.Bind("City", entity.String(func(a *Address) **string { return &a.City })),
	entity.Bind("CompanyName", entity.String(func(a *Address) **string { return &a.CompanyName })),
	entity.Bind("Countrycode", entity.String(func(a *Address) **string { return &a.Countrycode })),
	entity.Bind("Department", entity.String(func(a *Address) **string { return &a.Department })),
	entity.Bind("Doorcode", entity.String(func(a *Address) **string { return &a.Doorcode })),
	entity.Bind("FirstName", entity.String(func(a *Address) **string { return &a.FirstName })),
	entity.Bind("Floor", entity.String(func(a *Address) **string { return &a.Floor })),
	entity.Bind("HouseNr", entity.String(func(a *Address) **string { return &a.HouseNr })),
	entity.Bind("HouseNrExt", entity.String(func(a *Address) **string { return &a.HouseNrExt })),
	entity.Bind("Name", entity.String(func(a *Address) **string { return &a.Name })),
	entity.Bind("Region", entity.String(func(a *Address) **string { return &a.Region })),
	entity.Bind("Remark", entity.String(func(a *Address) **string { return &a.Remark })),
	entity.Bind("Street", entity.String(func(a *Address) **string { return &a.Street })),
	entity.Bind("StreetHouseNrExt", entity.String(func(a *Address) **string { return &a.StreetHouseNrExt })),
	entity.Bind("Zipcode", entity.String(func(a *Address) **string { return &a.Zipcode }, postalCode)),
)

var addressType = define("Address", entity.GroupEntity, addressTable, func() *Address { return &Address{} },
	services(ServiceConfirming, ServiceLabelling, ServiceShipping, ServiceLocation, ServiceDeliveryDate),
	partialScope(ServiceShippingStatus,
		"AddressType", "City", "CompanyName", "Countrycode", "FirstName",
		"HouseNr", "HouseNrExt", "Name", "Street", "Zipcode",
	),
)

// Validate checks that the address type is a two digit code.
func (a *Address) Validate() error {
	if a.AddressType == nil {
		return nil
	}
	t := *a.AddressType
	if len(t) != 2 || t[0] < '0' || t[0] > '9' || t[1] < '0' || t[1] > '9' {
		return fmt.Errorf("%w: address type %q must be two digits", entity.ErrInvalidFieldValue, t)
	}
	return nil
}
