package model

import "github.com/Sokol111/postnl-go/pkg/entity"

// Contact holds the notification details of a receiver.
type Contact struct {
	entity.Base

	ContactType *string
	Email       *string
	SMSNr       *string
	TelNr       *string
}

func NewContact() *Contact {
	return &Contact{Base: entity.NewBase()}
}

var contactTable = entity.NewTable("Contact",
	entity.Bind("ContactType", entity.String(func(c *Contact) **string { return &c.ContactType }, zeroPad2)),
	entity.Bind("Email", entity.String(func(c *Contact) **string { return &c.Email })),
	entity.Bind("SMSNr", entity.String(func(c *Contact) **string { return &c.SMSNr })),
	entity.Bind("TelNr", entity.String(func(c *Contact) **string { return &c.TelNr })),
)

var contactType = define("Contact", entity.GroupEntity, contactTable, func() *Contact { return &Contact{} },
	shipmentServices,
	partialScope(ServiceShippingStatus, "ContactType", "Email", "TelNr"),
)
