package model

import "github.com/Sokol111/postnl-go/pkg/entity"

// Coordinates is a geographic point.
type Coordinates struct {
	entity.Base

	Latitude  *string
	Longitude *string
}

// CoordinatesNorthWest is the north-west corner of a search area.
type CoordinatesNorthWest struct {
	entity.Base

	Latitude  *string
	Longitude *string
}

// CoordinatesSouthEast is the south-east corner of a search area.
type CoordinatesSouthEast struct {
	entity.Base

	Latitude  *string
	Longitude *string
}

// NewCoordinates returns a point with the given latitude and longitude.
func NewCoordinates(latitude, longitude string) *Coordinates {
	return &Coordinates{Base: entity.NewBase(), Latitude: &latitude, Longitude: &longitude}
}

var coordinatesTable = entity.NewTable("Coordinates",
	entity.Bind("Latitude", entity.String(func(c *Coordinates) **string { return &c.Latitude })),
	entity.Bind("Longitude", entity.String(func(c *Coordinates) **string { return &c.Longitude })),
)

var coordinatesNorthWestTable = entity.NewTable("CoordinatesNorthWest",
	entity.Bind("Latitude", entity.String(func(c *CoordinatesNorthWest) **string { return &c.Latitude })),
	entity.Bind("Longitude", entity.String(func(c *CoordinatesNorthWest) **string { return &c.Longitude })),
)

var coordinatesSouthEastTable = entity.NewTable("CoordinatesSouthEast",
	entity.Bind("Latitude", entity.String(func(c *CoordinatesSouthEast) **string { return &c.Latitude })),
	entity.Bind("Longitude", entity.String(func(c *CoordinatesSouthEast) **string { return &c.Longitude })),
)

var (
	coordinatesType = define("Coordinates", entity.GroupEntity, coordinatesTable,
		func() *Coordinates { return &Coordinates{} }, services(ServiceLocation))
	coordinatesNorthWestType = define("CoordinatesNorthWest", entity.GroupEntity, coordinatesNorthWestTable,
		func() *CoordinatesNorthWest { return &CoordinatesNorthWest{} }, services(ServiceLocation))
	coordinatesSouthEastType = define("CoordinatesSouthEast", entity.GroupEntity, coordinatesSouthEastTable,
		func() *CoordinatesSouthEast { return &CoordinatesSouthEast{} }, services(ServiceLocation))
)
