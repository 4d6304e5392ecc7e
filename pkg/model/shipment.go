package model

import (
	"time"

	"github.com/Sokol111/postnl-go/pkg/entity"
)

// Shipment is one parcel to label, confirm or track.
type Shipment struct {
	entity.Base

	Addresses                []*Address
	Amounts                  []*Amount
	Barcode                  *string
	CollectionTimeStampEnd   *string
	CollectionTimeStampStart *string
	Contacts                 []*Contact
	Content                  *string
	CostCenter               *string
	Customer                 *Customer
	CustomerOrderNumber      *string
	Customs                  *Customs
	DeliveryAddress          *string
	DeliveryDate             *time.Time
	Dimension                *Dimension
	DownPartnerBarcode       *string
	DownPartnerID            *string
	DownPartnerLocation      *string
	IDExpiration             *string
	IDNumber                 *string
	IDType                   *string
	ProductCodeCollect       *string
	ProductCodeDelivery      *string
	Reference                *string
	Remark                   *string
	ReturnBarcode            *string
	ReturnReference          *string
}

func NewShipment() *Shipment {
	return &Shipment{Base: entity.NewBase()}
}

var shipmentTable = entity.NewTable("Shipment",
	entity.Bind("Addresses", entity.NestedList(func(s *Shipment) *[]*Address { return &s.Addresses })),
	entity.Bind("Amounts", entity.NestedList(func(s *Shipment) *[]*Amount { return &s.Amounts })),
	entity.Bind("Barcode", entity.String(func(s *Shipment) **string { return &s.Barcode })),
	entity.Bind("CollectionTimeStampEnd", entity.String(func(s *Shipment) **string { return &s.CollectionTimeStampEnd })),
	entity.Bind("CollectionTimeStampStart", entity.String(func(s *Shipment) **string { return &s.CollectionTimeStampStart })),
	entity.Bind("Contacts", entity.NestedList(func(s *Shipment) *[]*Contact { return &s.Contacts })),
	entity.Bind("Content", entity.String(func(s *Shipment) **string { return &s.Content })),
	entity.Bind("CostCenter", entity.String(func(s *Shipment) **string { return &s.CostCenter })),
	entity.Bind("Customer", entity.Nested(func(s *Shipment) **Customer { return &s.Customer })),
	entity.Bind("CustomerOrderNumber", entity.String(func(s *Shipment) **string { return &s.CustomerOrderNumber })),
	entity.Bind("Customs", entity.Nested(func(s *Shipment) **Customs { return &s.Customs })),
	entity.Bind("DeliveryAddress", entity.String(func(s *Shipment) **string { return &s.DeliveryAddress }, zeroPad2)),
	entity.Bind("DeliveryDate", entity.Time(func(s *Shipment) **time.Time { return &s.DeliveryDate })),
	entity.Bind("Dimension", entity.Nested(func(s *Shipment) **Dimension { return &s.Dimension })),
	entity.Bind("DownPartnerBarcode", entity.String(func(s *Shipment) **string { return &s.DownPartnerBarcode })),
	entity.Bind("DownPartnerID", entity.String(func(s *Shipment) **string { return &s.DownPartnerID })),
	entity.Bind("DownPartnerLocation", entity.String(func(s *Shipment) **string { return &s.DownPartnerLocation })),
	entity.Bind("IDExpiration", entity.String(func(s *Shipment) **string { return &s.IDExpiration })),
	entity.Bind("IDNumber", entity.String(func(s *Shipment) **string { return &s.IDNumber })),
	entity.Bind("IDType", entity.String(func(s *Shipment) **string { return &s.IDType })),
	entity.Bind("ProductCodeCollect", entity.String(func(s *Shipment) **string { return &s.ProductCodeCollect })),
	entity.Bind("ProductCodeDelivery", entity.String(func(s *Shipment) **string { return &s.ProductCodeDelivery })),
	entity.Bind("Reference", entity.String(func(s *Shipment) **string { return &s.Reference })),
	entity.Bind("Remark", entity.String(func(s *Shipment) **string { return &s.Remark })),
	entity.Bind("ReturnBarcode", entity.String(func(s *Shipment) **string { return &s.ReturnBarcode })),
	entity.Bind("ReturnReference", entity.String(func(s *Shipment) **string { return &s.ReturnReference })),
)

var shipmentType = define("Shipment", entity.GroupEntity, shipmentTable, func() *Shipment { return &Shipment{} },
	shipmentServices,
	partialScope(ServiceShippingStatus, "Barcode", "Reference"),
)
