// Package postnl is the high-level client: it fills in the configured
// customer and unwraps service responses.
package postnl

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/samber/lo"
	"go.uber.org/fx"

	"github.com/Sokol111/postnl-go/pkg/core/config"
	"github.com/Sokol111/postnl-go/pkg/model"
	"github.com/Sokol111/postnl-go/pkg/service"
)

const (
	barcodeType3S = "3S"

	defaultSerie3S = "987000000-987600000"
	defaultSerie   = "0000000-9999999"
)

// Services groups the service implementations used by Client.
type Services struct {
	fx.In

	Barcode        service.BarcodeService
	Labelling      service.LabellingService
	Confirming     service.ConfirmingService
	ShippingStatus service.ShippingStatusService
	Location       service.LocationService
	DeliveryDate   service.DeliveryDateService
	Shipping       service.ShippingService
}

// Client wraps the services with the configured customer.
type Client struct {
	cfg      config.Config
	services Services
}

// NewClient creates a client over existing services.
func NewClient(cfg config.Config, services Services) *Client {
	return &Client{cfg: cfg, services: services}
}

// New creates a client and its services outside of an fx application.
func New(cfg config.Config, httpClient *http.Client, opts ...service.Option) *Client {
	t := service.NewTransport(httpClient, cfg, model.Registry(), opts...)
	return NewClient(cfg, newServices(t))
}

func newServices(t *service.Transport) Services {
	return Services{
		Barcode:        service.NewBarcodeService(t),
		Labelling:      service.NewLabellingService(t),
		Confirming:     service.NewConfirmingService(t),
		ShippingStatus: service.NewShippingStatusService(t),
		Location:       service.NewLocationService(t),
		DeliveryDate:   service.NewDeliveryDateService(t),
		Shipping:       service.NewShippingService(t),
	}
}

// Customer returns a new customer entity built from the configuration.
func (c *Client) Customer() (*model.Customer, error) {
	cc := c.cfg.Customer
	customer := model.NewCustomer()
	customer.CustomerNumber = lo.EmptyableToPtr(cc.Number)
	customer.CustomerCode = lo.EmptyableToPtr(cc.Code)
	customer.CollectionLocation = lo.EmptyableToPtr(cc.CollectionLocation)
	customer.ContactPerson = lo.EmptyableToPtr(cc.ContactPerson)
	customer.Email = lo.EmptyableToPtr(cc.Email)
	customer.Name = lo.EmptyableToPtr(cc.Name)
	customer.GlobalPackBarcodeType = lo.EmptyableToPtr(cc.GlobalPackBarcodeType)
	customer.GlobalPackCustomerCode = lo.EmptyableToPtr(cc.GlobalPackCustomerCode)

	if cc.Address.IsZero() {
		return customer, nil
	}
	addr, err := model.Registry().Create("Address", lo.PickBy(map[string]any{
		"AddressType": cc.Address.AddressType,
		"CompanyName": cc.Address.CompanyName,
		"Street":      cc.Address.Street,
		"HouseNr":     cc.Address.HouseNr,
		"HouseNrExt":  cc.Address.HouseNrExt,
		"Zipcode":     cc.Address.Zipcode,
		"City":        cc.Address.City,
		"Countrycode": cc.Address.Countrycode,
	}, func(_ string, v any) bool {
		return v != ""
	}))
	if err != nil {
		return nil, fmt.Errorf("customer address: %w", err)
	}
	customer.Address = addr.(*model.Address)
	return customer, nil
}

// GenerateBarcode returns a new barcode of the given type in the
// customer's range. An empty serie selects the default serie of the type.
func (c *Client) GenerateBarcode(ctx context.Context, typ, serie string) (string, error) {
	if serie == "" {
		serie = defaultSerie
		if typ == barcodeType3S {
			serie = defaultSerie3S
		}
	}
	customer, err := c.Customer()
	if err != nil {
		return "", err
	}
	resp, err := c.services.Barcode.GenerateBarcode(ctx,
		model.NewGenerateBarcode(model.NewBarcode(typ, c.cfg.Customer.Code, serie), customer))
	if err != nil {
		return "", err
	}
	return *resp.Barcode, nil
}

// GenerateLabel labels one shipment.
func (c *Client) GenerateLabel(ctx context.Context, shipment *model.Shipment, confirm bool) (*model.ResponseShipment, error) {
	req, err := c.labelRequest(shipment)
	if err != nil {
		return nil, err
	}
	resp, err := c.services.Labelling.GenerateLabel(ctx, req, confirm)
	if err != nil {
		return nil, err
	}
	return resp.ResponseShipments[0], nil
}

// GenerateLabels labels the shipments with one request each, keeping their
// order.
func (c *Client) GenerateLabels(ctx context.Context, shipments []*model.Shipment, confirm bool) ([]*model.ResponseShipment, error) {
	reqs := make([]*model.GenerateLabel, 0, len(shipments))
	for _, s := range shipments {
		req, err := c.labelRequest(s)
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, req)
	}
	resps, err := c.services.Labelling.GenerateLabels(ctx, reqs, confirm)
	if err != nil {
		return nil, err
	}
	return lo.Map(resps, func(r *model.GenerateLabelResponse, _ int) *model.ResponseShipment {
		return r.ResponseShipments[0]
	}), nil
}

func (c *Client) labelRequest(shipment *model.Shipment) (*model.GenerateLabel, error) {
	customer, err := c.Customer()
	if err != nil {
		return nil, err
	}
	return model.NewGenerateLabel(customer, c.cfg.Printertype, shipment), nil
}

// SendShipment labels and, with confirm set, pre-announces the shipments
// through the REST shipment API.
func (c *Client) SendShipment(ctx context.Context, confirm bool, shipments ...*model.Shipment) ([]*model.ResponseShipment, error) {
	customer, err := c.Customer()
	if err != nil {
		return nil, err
	}
	resp, err := c.services.Shipping.SendShipment(ctx, model.NewSendShipment(customer, c.cfg.Printertype, shipments...), confirm)
	if err != nil {
		return nil, err
	}
	return resp.ResponseShipments, nil
}

// Confirm pre-announces shipments labelled without confirmation.
func (c *Client) Confirm(ctx context.Context, shipments ...*model.Shipment) ([]*model.ConfirmingResponseShipment, error) {
	customer, err := c.Customer()
	if err != nil {
		return nil, err
	}
	return c.services.Confirming.Confirm(ctx, model.NewConfirming(customer, shipments...))
}

// CurrentStatus returns the tracking state of the shipment with the
// barcode.
func (c *Client) CurrentStatus(ctx context.Context, barcode string) (*model.CurrentStatusResponseShipment, error) {
	customer, err := c.Customer()
	if err != nil {
		return nil, err
	}
	resp, err := c.services.ShippingStatus.CurrentStatus(ctx, model.NewCurrentStatus(customer, barcode))
	if err != nil {
		return nil, err
	}
	if len(resp.Shipments) == 0 {
		return nil, service.ErrNotFound
	}
	return resp.Shipments[0], nil
}

// NearestLocations lists pickup points near the location, nearest first.
// The configured country is used.
func (c *Client) NearestLocations(ctx context.Context, location *model.Location) ([]*model.ResponseLocation, error) {
	resp, err := c.services.Location.GetNearestLocations(ctx, model.NewGetNearestLocations(c.cfg.Country, location))
	if err != nil {
		return nil, err
	}
	if resp.GetLocationsResult == nil || len(resp.GetLocationsResult.ResponseLocation) == 0 {
		return nil, service.ErrNotFound
	}
	return resp.GetLocationsResult.ResponseLocation, nil
}

// DeliveryDate returns the expected delivery date for the request.
func (c *Client) DeliveryDate(ctx context.Context, req *model.GetDeliveryDate) (time.Time, error) {
	resp, err := c.services.DeliveryDate.GetDeliveryDate(ctx, req)
	if err != nil {
		return time.Time{}, err
	}
	return *resp.DeliveryDate, nil
}
