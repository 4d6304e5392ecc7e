package model

import "github.com/Sokol111/postnl-go/pkg/entity"

// Customer identifies the sender account. It is embedded in most requests.
type Customer struct {
	entity.Base

	Address                *Address
	CollectionLocation     *string
	ContactPerson          *string
	CustomerCode           *string
	CustomerNumber         *string
	Email                  *string
	GlobalPackBarcodeType  *string
	GlobalPackCustomerCode *string
	Name                   *string
}

func NewCustomer() *Customer {
	return &Customer{Base: entity.NewBase()}
}

var customerTable = entity.NewTable("Customer",
	entity.Bind("Address", entity.Nested(func(c *Customer) **Address { return &c.Address })),
	entity.Bind("CollectionLocation", entity.String(func(c *Customer) **string { return &c.CollectionLocation })),
	entity.Bind("ContactPerson", entity.String(func(c *Customer) **string { return &c.ContactPerson })),
	entity.Bind("CustomerCode", entity.String(func(c *Customer) **string { return &c.CustomerCode })),
	entity.Bind("CustomerNumber", entity.String(func(c *Customer) **string { return &c.CustomerNumber })),
	entity.Bind("Email", entity.String(func(c *Customer) **string { return &c.Email })),
	entity.Bind("GlobalPackBarcodeType", entity.String(func(c *Customer) **string { return &c.GlobalPackBarcodeType })),
	entity.Bind("GlobalPackCustomerCode", entity.String(func(c *Customer) **string { return &c.GlobalPackCustomerCode })),
	entity.Bind("Name", entity.String(func(c *Customer) **string { return &c.Name })),
)

var customerType = define("Customer", entity.GroupEntity, customerTable, func() *Customer { return &Customer{} },
	shipmentServices,
	partialScope(ServiceBarcode, "CustomerCode", "CustomerNumber"),
	partialScope(ServiceShippingStatus, "CustomerCode", "CustomerNumber"),
	partialScope(ServiceLocation, "CustomerCode", "CustomerNumber"),
	partialScope(ServiceDeliveryDate, "CustomerCode", "CustomerNumber"),
)
