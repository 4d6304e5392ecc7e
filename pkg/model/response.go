package model

import (
	"time"

	"github.com/Sokol111/postnl-go/pkg/entity"
)

// GenerateBarcodeResponse carries the generated barcode.
type GenerateBarcodeResponse struct {
	entity.Base

	Barcode *string
}

var generateBarcodeResponseTable = entity.NewTable("GenerateBarcodeResponse",
	entity.Bind("Barcode", entity.String(func(r *GenerateBarcodeResponse) **string { return &r.Barcode })),
)

// GenerateLabelResponse holds one response shipment per requested shipment.
type GenerateLabelResponse struct {
	entity.Base

	ResponseShipments []*ResponseShipment
}

var generateLabelResponseTable = entity.NewTable("GenerateLabelResponse",
	entity.Bind("ResponseShipments", entity.NestedList(func(r *GenerateLabelResponse) *[]*ResponseShipment { return &r.ResponseShipments })),
)

// SendShipmentResponse is the REST counterpart of GenerateLabelResponse.
type SendShipmentResponse struct {
	entity.Base

	ResponseShipments []*ResponseShipment
}

var sendShipmentResponseTable = entity.NewTable("SendShipmentResponse",
	entity.Bind("ResponseShipments", entity.NestedList(func(r *SendShipmentResponse) *[]*ResponseShipment { return &r.ResponseShipments })),
)

// ResponseShipment is the labelled result of one shipment.
type ResponseShipment struct {
	entity.Base

	Barcode             *string
	DownPartnerBarcode  *string
	DownPartnerID       *string
	DownPartnerLocation *string
	Labels              []*Label
	ProductCodeDelivery *string
	Warnings            []*Warning
}

var responseShipmentTable = entity.NewTable("ResponseShipment",
	entity.Bind("Barcode", entity.String(func(r *ResponseShipment) **string { return &r.Barcode })),
	entity.Bind("DownPartnerBarcode", entity.String(func(r *ResponseShipment) **string { return &r.DownPartnerBarcode })),
	entity.Bind("DownPartnerID", entity.String(func(r *ResponseShipment) **string { return &r.DownPartnerID })),
	entity.Bind("DownPartnerLocation", entity.String(func(r *ResponseShipment) **string { return &r.DownPartnerLocation })),
	entity.Bind("Labels", entity.NestedList(func(r *ResponseShipment) *[]*Label { return &r.Labels })),
	entity.Bind("ProductCodeDelivery", entity.String(func(r *ResponseShipment) **string { return &r.ProductCodeDelivery })),
	entity.Bind("Warnings", entity.NestedList(func(r *ResponseShipment) *[]*Warning { return &r.Warnings })),
)

// ConfirmingResponseShipment is the confirmation result of one shipment.
type ConfirmingResponseShipment struct {
	entity.Base

	Barcode  *string
	Warnings []*Warning
}

var confirmingResponseShipmentTable = entity.NewTable("ConfirmingResponseShipment",
	entity.Bind("Barcode", entity.String(func(r *ConfirmingResponseShipment) **string { return &r.Barcode })),
	entity.Bind("Warnings", entity.NestedList(func(r *ConfirmingResponseShipment) *[]*Warning { return &r.Warnings })),
)

// GetNearestLocationsResponse wraps the locations found.
type GetNearestLocationsResponse struct {
	entity.Base

	GetLocationsResult *GetLocationsResult
}

var getNearestLocationsResponseTable = entity.NewTable("GetNearestLocationsResponse",
	entity.Bind("GetLocationsResult", entity.Nested(func(r *GetNearestLocationsResponse) **GetLocationsResult { return &r.GetLocationsResult })),
)

// GetLocationsResult lists the pickup points, nearest first.
type GetLocationsResult struct {
	entity.Base

	ResponseLocation []*ResponseLocation
}

var getLocationsResultTable = entity.NewTable("GetLocationsResult",
	entity.Bind("ResponseLocation", entity.NestedList(func(r *GetLocationsResult) *[]*ResponseLocation { return &r.ResponseLocation })),
)

// ResponseLocation is one pickup point.
type ResponseLocation struct {
	entity.Base

	Address         *Address
	DeliveryOptions []string
	Distance        *string
	Latitude        *string
	Longitude       *string
	Name            *string
	OpeningHours    *OpeningHours
	PartnerName     *string
	PhoneNumber     *string
	LocationCode    *string
	RetailNetworkID *string
	Saleschannel    *string
	TerminalType    *string
}

var responseLocationTable = entity.NewTable("ResponseLocation",
	entity.Bind("Address", entity.Nested(func(r *ResponseLocation) **Address { return &r.Address })),
	entity.Bind("DeliveryOptions", entity.Strings(func(r *ResponseLocation) *[]string { return &r.DeliveryOptions })),
	entity.Bind("Distance", entity.String(func(r *ResponseLocation) **string { return &r.Distance })),
	entity.Bind("Latitude", entity.String(func(r *ResponseLocation) **string { return &r.Latitude })),
	entity.Bind("Longitude", entity.String(func(r *ResponseLocation) **string { return &r.Longitude })),
	entity.Bind("Name", entity.String(func(r *ResponseLocation) **string { return &r.Name })),
	entity.Bind("OpeningHours", entity.Nested(func(r *ResponseLocation) **OpeningHours { return &r.OpeningHours })),
	entity.Bind("PartnerName", entity.String(func(r *ResponseLocation) **string { return &r.PartnerName })),
	entity.Bind("PhoneNumber", entity.String(func(r *ResponseLocation) **string { return &r.PhoneNumber })),
	entity.Bind("LocationCode", entity.String(func(r *ResponseLocation) **string { return &r.LocationCode })),
	entity.Bind("RetailNetworkID", entity.String(func(r *ResponseLocation) **string { return &r.RetailNetworkID })),
	entity.Bind("Saleschannel", entity.String(func(r *ResponseLocation) **string { return &r.Saleschannel })),
	entity.Bind("TerminalType", entity.String(func(r *ResponseLocation) **string { return &r.TerminalType })),
)

// CurrentStatusResponse holds the tracked shipments.
type CurrentStatusResponse struct {
	entity.Base

	Shipments []*CurrentStatusResponseShipment
	Warnings  []*Warning
}

var currentStatusResponseTable = entity.NewTable("CurrentStatusResponse",
	entity.Bind("Shipments", entity.NestedList(func(r *CurrentStatusResponse) *[]*CurrentStatusResponseShipment { return &r.Shipments })),
	entity.Bind("Warnings", entity.NestedList(func(r *CurrentStatusResponse) *[]*Warning { return &r.Warnings })),
)

// CurrentStatusResponseShipment is the tracking state of one shipment.
type CurrentStatusResponseShipment struct {
	entity.Base

	Addresses          []*Address
	Amounts            []*Amount
	Barcode            *string
	Dimension          *Dimension
	OldStatuses        []*OldStatus
	ProductCode        *string
	ProductDescription *string
	Reference          *string
	Status             *Status
	Warnings           []*Warning
}

var currentStatusResponseShipmentTable = entity.NewTable("CurrentStatusResponseShipment",
	entity.Bind("Addresses", entity.NestedList(func(r *CurrentStatusResponseShipment) *[]*Address { return &r.Addresses })),
	entity.Bind("Amounts", entity.NestedList(func(r *CurrentStatusResponseShipment) *[]*Amount { return &r.Amounts })),
	entity.Bind("Barcode", entity.String(func(r *CurrentStatusResponseShipment) **string { return &r.Barcode })),
	entity.Bind("Dimension", entity.Nested(func(r *CurrentStatusResponseShipment) **Dimension { return &r.Dimension })),
	entity.Bind("OldStatuses", entity.NestedList(func(r *CurrentStatusResponseShipment) *[]*OldStatus { return &r.OldStatuses })),
	entity.Bind("ProductCode", entity.String(func(r *CurrentStatusResponseShipment) **string { return &r.ProductCode })),
	entity.Bind("ProductDescription", entity.String(func(r *CurrentStatusResponseShipment) **string { return &r.ProductDescription })),
	entity.Bind("Reference", entity.String(func(r *CurrentStatusResponseShipment) **string { return &r.Reference })),
	entity.Bind("Status", entity.Nested(func(r *CurrentStatusResponseShipment) **Status { return &r.Status })),
	entity.Bind("Warnings", entity.NestedList(func(r *CurrentStatusResponseShipment) *[]*Warning { return &r.Warnings })),
)

// GetDeliveryDateResponse carries the expected delivery date.
type GetDeliveryDateResponse struct {
	entity.Base

	DeliveryDate *time.Time
	Options      []string
}

var getDeliveryDateResponseTable = entity.NewTable("GetDeliveryDateResponse",
	entity.Bind("DeliveryDate", entity.Time(func(r *GetDeliveryDateResponse) **time.Time { return &r.DeliveryDate })),
	entity.Bind("Options", entity.Strings(func(r *GetDeliveryDateResponse) *[]string { return &r.Options })),
)

var (
	generateBarcodeResponseType = define("GenerateBarcodeResponse", entity.GroupResponse, generateBarcodeResponseTable,
		func() *GenerateBarcodeResponse { return &GenerateBarcodeResponse{} }, services(ServiceBarcode))
	generateLabelResponseType = define("GenerateLabelResponse", entity.GroupResponse, generateLabelResponseTable,
		func() *GenerateLabelResponse { return &GenerateLabelResponse{} }, labelServices)
	sendShipmentResponseType = define("SendShipmentResponse", entity.GroupResponse, sendShipmentResponseTable,
		func() *SendShipmentResponse { return &SendShipmentResponse{} }, services(ServiceShipping))
	responseShipmentType = define("ResponseShipment", entity.GroupResponse, responseShipmentTable,
		func() *ResponseShipment { return &ResponseShipment{} }, labelServices)
	confirmingResponseShipmentType = define("ConfirmingResponseShipment", entity.GroupResponse, confirmingResponseShipmentTable,
		func() *ConfirmingResponseShipment { return &ConfirmingResponseShipment{} }, services(ServiceConfirming))
	getNearestLocationsResponseType = define("GetNearestLocationsResponse", entity.GroupResponse, getNearestLocationsResponseTable,
		func() *GetNearestLocationsResponse { return &GetNearestLocationsResponse{} }, services(ServiceLocation))
	getLocationsResultType = define("GetLocationsResult", entity.GroupResponse, getLocationsResultTable,
		func() *GetLocationsResult { return &GetLocationsResult{} }, services(ServiceLocation))
	responseLocationType = define("ResponseLocation", entity.GroupResponse, responseLocationTable,
		func() *ResponseLocation { return &ResponseLocation{} }, services(ServiceLocation))
	currentStatusResponseType = define("CurrentStatusResponse", entity.GroupResponse, currentStatusResponseTable,
		func() *CurrentStatusResponse { return &CurrentStatusResponse{} }, services(ServiceShippingStatus))
	currentStatusResponseShipmentType = define("CurrentStatusResponseShipment", entity.GroupResponse, currentStatusResponseShipmentTable,
		func() *CurrentStatusResponseShipment { return &CurrentStatusResponseShipment{} }, services(ServiceShippingStatus))
	getDeliveryDateResponseType = define("GetDeliveryDateResponse", entity.GroupResponse, getDeliveryDateResponseTable,
		func() *GetDeliveryDateResponse { return &GetDeliveryDateResponse{} }, services(ServiceDeliveryDate))
)
