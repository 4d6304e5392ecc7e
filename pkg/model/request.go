package model

import (
	"github.com/Sokol111/postnl-go/pkg/entity"
)

// GenerateBarcode requests a new barcode for the customer.
type GenerateBarcode struct {
	entity.Base

	Barcode  *Barcode
	Customer *Customer
	Message  *Message
}

// NewGenerateBarcode builds a barcode request.
func NewGenerateBarcode(barcode *Barcode, customer *Customer) *GenerateBarcode {
	return &GenerateBarcode{Base: entity.NewBase(), Barcode: barcode, Customer: customer, Message: NewMessage()}
}

var generateBarcodeTable = entity.NewTable("GenerateBarcode",
	entity.Bind("Barcode", entity.Nested(func(r *GenerateBarcode) **Barcode { return &r.Barcode })),
	entity.Bind("Customer", entity.Nested(func(r *GenerateBarcode) **Customer { return &r.Customer })),
	entity.Bind("Message", entity.Nested(func(r *GenerateBarcode) **Message { return &r.Message })),
)

// GenerateLabel requests labels for one or more shipments.
type GenerateLabel struct {
	entity.Base

	Customer  *Customer
	Message   *Message
	Shipments []*Shipment
}

// NewGenerateLabel builds a label request with a labelling message.
func NewGenerateLabel(customer *Customer, printertype string, shipments ...*Shipment) *GenerateLabel {
	return &GenerateLabel{
		Base:      entity.NewBase(),
		Customer:  customer,
		Message:   NewLabellingMessage(printertype),
		Shipments: shipments,
	}
}

var generateLabelTable = entity.NewTable("GenerateLabel",
	entity.Bind("Customer", entity.Nested(func(r *GenerateLabel) **Customer { return &r.Customer })),
	entity.Bind("Message", entity.Nested(func(r *GenerateLabel) **Message { return &r.Message })),
	entity.Bind("Shipments", entity.NestedList(func(r *GenerateLabel) *[]*Shipment { return &r.Shipments })),
)

// Confirming pre-announces shipments whose labels were generated without
// confirmation.
type Confirming struct {
	entity.Base

	Customer  *Customer
	Message   *Message
	Shipments []*Shipment
}

func NewConfirming(customer *Customer, shipments ...*Shipment) *Confirming {
	return &Confirming{Base: entity.NewBase(), Customer: customer, Message: NewMessage(), Shipments: shipments}
}

var confirmingTable = entity.NewTable("Confirming",
	entity.Bind("Customer", entity.Nested(func(r *Confirming) **Customer { return &r.Customer })),
	entity.Bind("Message", entity.Nested(func(r *Confirming) **Message { return &r.Message })),
	entity.Bind("Shipments", entity.NestedList(func(r *Confirming) *[]*Shipment { return &r.Shipments })),
)

// SendShipment labels and confirms shipments in one REST call.
type SendShipment struct {
	entity.Base

	Customer  *Customer
	Message   *Message
	Shipments []*Shipment
}

func NewSendShipment(customer *Customer, printertype string, shipments ...*Shipment) *SendShipment {
	return &SendShipment{
		Base:      entity.NewBase(),
		Customer:  customer,
		Message:   NewLabellingMessage(printertype),
		Shipments: shipments,
	}
}

var sendShipmentTable = entity.NewTable("SendShipment",
	entity.Bind("Customer", entity.Nested(func(r *SendShipment) **Customer { return &r.Customer })),
	entity.Bind("Message", entity.Nested(func(r *SendShipment) **Message { return &r.Message })),
	entity.Bind("Shipments", entity.NestedList(func(r *SendShipment) *[]*Shipment { return &r.Shipments })),
)

// GetNearestLocations searches pickup points near a location.
type GetNearestLocations struct {
	entity.Base

	Countrycode *string
	Location    *Location
	Message     *Message
}

func NewGetNearestLocations(countrycode string, location *Location) *GetNearestLocations {
	return &GetNearestLocations{Base: entity.NewBase(), Countrycode: &countrycode, Location: location, Message: NewMessage()}
}

var getNearestLocationsTable = entity.NewTable("GetNearestLocations",
	entity.Bind("Countrycode", entity.String(func(r *GetNearestLocations) **string { return &r.Countrycode })),
	entity.Bind("Location", entity.Nested(func(r *GetNearestLocations) **Location { return &r.Location })),
	entity.Bind("Message", entity.Nested(func(r *GetNearestLocations) **Message { return &r.Message })),
)

// CurrentStatus requests the tracking status of one shipment.
type CurrentStatus struct {
	entity.Base

	Customer *Customer
	Message  *Message
	Shipment *Shipment
}

// NewCurrentStatus builds a status request for the barcode.
func NewCurrentStatus(customer *Customer, barcode string) *CurrentStatus {
	shipment := NewShipment()
	shipment.Barcode = &barcode
	return &CurrentStatus{Base: entity.NewBase(), Customer: customer, Message: NewMessage(), Shipment: shipment}
}

var currentStatusTable = entity.NewTable("CurrentStatus",
	entity.Bind("Customer", entity.Nested(func(r *CurrentStatus) **Customer { return &r.Customer })),
	entity.Bind("Message", entity.Nested(func(r *CurrentStatus) **Message { return &r.Message })),
	entity.Bind("Shipment", entity.Nested(func(r *CurrentStatus) **Shipment { return &r.Shipment })),
)

// GetDeliveryDate asks for the expected delivery date of a shipment handed
// over at ShippingDate.
type GetDeliveryDate struct {
	entity.Base

	AllowSundaySorting *string
	City               *string
	CountryCode        *string
	CutOffTimes        []*CutOffTime
	HouseNr            *string
	HouseNrExt         *string
	Options            []string
	PostalCode         *string
	ShippingDate       *string
	ShippingDuration   *string
	Street             *string
	Message            *Message
}

func NewGetDeliveryDate() *GetDeliveryDate {
	return &GetDeliveryDate{Base: entity.NewBase(), Message: NewMessage()}
}

var getDeliveryDateTable = entity.NewTable("GetDeliveryDate",
	entity.Bind("AllowSundaySorting", entity.Bool(func(r *GetDeliveryDate) **string { return &r.AllowSundaySorting })),
	entity.Bind("City", entity.String(func(r *GetDeliveryDate) **string { return &r.City })),
	entity.Bind("CountryCode", entity.String(func(r *GetDeliveryDate) **string { return &r.CountryCode })),
	entity.Bind("CutOffTimes", entity.NestedList(func(r *GetDeliveryDate) *[]*CutOffTime { return &r.CutOffTimes })),
	entity.Bind("HouseNr", entity.String(func(r *GetDeliveryDate) **string { return &r.HouseNr })),
	entity.Bind("HouseNrExt", entity.String(func(r *GetDeliveryDate) **string { return &r.HouseNrExt })),
	entity.Bind("Options", entity.Strings(func(r *GetDeliveryDate) *[]string { return &r.Options })),
	entity.Bind("PostalCode", entity.String(func(r *GetDeliveryDate) **string { return &r.PostalCode }, postalCode)),
	entity.Bind("ShippingDate", entity.String(func(r *GetDeliveryDate) **string { return &r.ShippingDate })),
	entity.Bind("ShippingDuration", entity.String(func(r *GetDeliveryDate) **string { return &r.ShippingDuration })),
	entity.Bind("Street", entity.String(func(r *GetDeliveryDate) **string { return &r.Street })),
	entity.Bind("Message", entity.Nested(func(r *GetDeliveryDate) **Message { return &r.Message })),
)

var (
	generateBarcodeType = define("GenerateBarcode", entity.GroupRequest, generateBarcodeTable,
		func() *GenerateBarcode { return &GenerateBarcode{} }, services(ServiceBarcode))
	generateLabelType = define("GenerateLabel", entity.GroupRequest, generateLabelTable,
		func() *GenerateLabel { return &GenerateLabel{} }, labelServices)
	confirmingType = define("Confirming", entity.GroupRequest, confirmingTable,
		func() *Confirming { return &Confirming{} }, services(ServiceConfirming))
	sendShipmentType = define("SendShipment", entity.GroupRequest, sendShipmentTable,
		func() *SendShipment { return &SendShipment{} }, services(ServiceShipping))
	getNearestLocationsType = define("GetNearestLocations", entity.GroupRequest, getNearestLocationsTable,
		func() *GetNearestLocations { return &GetNearestLocations{} }, services(ServiceLocation))
	currentStatusType = define("CurrentStatus", entity.GroupRequest, currentStatusTable,
		func() *CurrentStatus { return &CurrentStatus{} }, services(ServiceShippingStatus))
	getDeliveryDateType = define("GetDeliveryDate", entity.GroupRequest, getDeliveryDateTable,
		func() *GetDeliveryDate { return &GetDeliveryDate{} }, services(ServiceDeliveryDate))
)
