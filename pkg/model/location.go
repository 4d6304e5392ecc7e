package model

import (
	"time"

	"github.com/Sokol111/postnl-go/pkg/entity"
)

// Location describes where to search for pickup points and which delivery
// options they must support.
type Location struct {
	entity.Base

	AllowSundaySorting   *string
	DeliveryDate         *time.Time
	DeliveryOptions      []string
	OpeningTime          *string
	Options              []string
	City                 *string
	HouseNr              *string
	HouseNrExt           *string
	Postalcode           *string
	Street               *string
	Coordinates          *Coordinates
	CoordinatesNorthWest *CoordinatesNorthWest
	CoordinatesSouthEast *CoordinatesSouthEast
	LocationCode         *string
	Saleschannel         *string
	TerminalType         *string
	RetailNetworkID      *string
	DownPartnerID        *string
	DownPartnerLocation  *string
}

// NewLocation returns a search location around the postal code.
func NewLocation(postalcode string) *Location {
	l := &Location{Base: entity.NewBase()}
	_ = locationTable.Set(l, "Postalcode", postalcode)
	return l
}

var locationTable = entity.NewTable("Location",
	entity.Bind("AllowSundaySorting", entity.Bool(func(l *Location) **string { return &l.AllowSundaySorting })),
	entity.Bind("DeliveryDate", entity.Time(func(l *Location) **time.Time { return &l.DeliveryDate })),
	entity.Bind("DeliveryOptions", entity.Strings(func(l *Location) *[]string { return &l.DeliveryOptions })),
	entity.Bind("OpeningTime", entity.String(func(l *Location) **string { return &l.OpeningTime })),
	entity.Bind("Options", entity.Strings(func(l *Location) *[]string { return &l.Options })),
	entity.Bind("City", entity.String(func(l *Location) **string { return &l.City })),
	entity.Bind("HouseNr", entity.String(func(l *Location) **string { return &l.HouseNr })),
	entity.Bind("HouseNrExt", entity.String(func(l *Location) **string { return &l.HouseNrExt })),
	entity.Bind("Postalcode", entity.String(func(l *Location) **string { return &l.Postalcode }, postalCode)),
	entity.Bind("Street", entity.String(func(l *Location) **string { return &l.Street })),
	entity.Bind("Coordinates", entity.Nested(func(l *Location) **Coordinates { return &l.Coordinates })),
	entity.Bind("CoordinatesNorthWest", entity.Nested(func(l *Location) **CoordinatesNorthWest { return &l.CoordinatesNorthWest })),
	entity.Bind("CoordinatesSouthEast", entity.Nested(func(l *Location) **CoordinatesSouthEast { return &l.CoordinatesSouthEast })),
	entity.Bind("LocationCode", entity.String(func(l *Location) **string { return &l.LocationCode })),
	entity.Bind("Saleschannel", entity.String(func(l *Location) **string { return &l.Saleschannel })),
	entity.Bind("TerminalType", entity.String(func(l *Location) **string { return &l.TerminalType })),
	entity.Bind("RetailNetworkID", entity.String(func(l *Location) **string { return &l.RetailNetworkID })),
	entity.Bind("DownPartnerID", entity.String(func(l *Location) **string { return &l.DownPartnerID })),
	entity.Bind("DownPartnerLocation", entity.String(func(l *Location) **string { return &l.DownPartnerLocation })),
)

var locationType = define("Location", entity.GroupEntity, locationTable, func() *Location { return &Location{} },
	services(ServiceLocation),
	partialScope(ServiceDeliveryDate,
		"AllowSundaySorting", "DeliveryDate", "DeliveryOptions", "Options",
		"City", "HouseNr", "HouseNrExt", "Postalcode", "Street",
	),
)
