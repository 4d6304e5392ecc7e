package model

import "github.com/Sokol111/postnl-go/pkg/entity"

// Customs is the customs declaration of an international shipment.
type Customs struct {
	entity.Base

	Certificate            *string
	CertificateNr          *string
	Content                []*Content
	Currency               *string
	HandleAsNonDeliverable *string
	Invoice                *string
	InvoiceNr              *string
	License                *string
	LicenseNr              *string
	ShipmentType           *string
}

func NewCustoms() *Customs {
	return &Customs{Base: entity.NewBase()}
}

var customsTable = entity.NewTable("Customs",
	entity.Bind("Certificate", entity.Bool(func(c *Customs) **string { return &c.Certificate })),
	entity.Bind("CertificateNr", entity.String(func(c *Customs) **string { return &c.CertificateNr })),
	entity.Bind("Content", entity.NestedList(func(c *Customs) *[]*Content { return &c.Content })),
	entity.Bind("Currency", entity.String(func(c *Customs) **string { return &c.Currency })),
	entity.Bind("HandleAsNonDeliverable", entity.Bool(func(c *Customs) **string { return &c.HandleAsNonDeliverable })),
	entity.Bind("Invoice", entity.Bool(func(c *Customs) **string { return &c.Invoice })),
	entity.Bind("InvoiceNr", entity.String(func(c *Customs) **string { return &c.InvoiceNr })),
	entity.Bind("License", entity.Bool(func(c *Customs) **string { return &c.License })),
	entity.Bind("LicenseNr", entity.String(func(c *Customs) **string { return &c.LicenseNr })),
	entity.Bind("ShipmentType", entity.String(func(c *Customs) **string { return &c.ShipmentType })),
)

var customsType = define("Customs", entity.GroupEntity, customsTable, func() *Customs { return &Customs{} },
	shipmentServices,
)
