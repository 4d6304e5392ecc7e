package model

import "github.com/Sokol111/postnl-go/pkg/entity"

// Content is one line of a customs declaration.
type Content struct {
	entity.Base

	CountryOfOrigin *string
	Description     *string
	HSTariffNr      *string
	Quantity        *string
	Value           *string
	Weight          *string
}

func NewContent() *Content {
	return &Content{Base: entity.NewBase()}
}

var contentTable = entity.NewTable("Content",
	entity.Bind("CountryOfOrigin", entity.String(func(c *Content) **string { return &c.CountryOfOrigin })),
	entity.Bind("Description", entity.String(func(c *Content) **string { return &c.Description })),
	entity.Bind("HSTariffNr", entity.String(func(c *Content) **string { return &c.HSTariffNr })),
	entity.Bind("Quantity", entity.String(func(c *Content) **string { return &c.Quantity })),
	entity.Bind("Value", decimal2(func(c *Content) **string { return &c.Value })),
	entity.Bind("Weight", entity.String(func(c *Content) **string { return &c.Weight })),
)

var contentType = define("Content", entity.GroupEntity, contentTable, func() *Content { return &Content{} },
	shipmentServices,
)
