package service

import (
	"context"
	"net/url"
	"strconv"

	"github.com/Sokol111/postnl-go/pkg/model"
)

// ShippingService labels and optionally confirms shipments through the REST
// shipment API.
type ShippingService interface {
	SendShipment(ctx context.Context, req *model.SendShipment, confirm bool) (*model.SendShipmentResponse, error)
}

type shippingService struct {
	transport *Transport
}

func NewShippingService(t *Transport) ShippingService {
	return &shippingService{transport: t}
}

func (s *shippingService) SendShipment(ctx context.Context, req *model.SendShipment, confirm bool) (*model.SendShipmentResponse, error) {
	resp, err := expect[*model.SendShipmentResponse](s.transport.do(ctx, call{
		endpoint: shipmentEndpoint,
		request:  req,
		query:    url.Values{"confirm": {strconv.FormatBool(confirm)}},
		root:     "SendShipmentResponse",
	}))
	if err != nil {
		return nil, err
	}
	if len(resp.ResponseShipments) == 0 {
		return nil, ErrNotFound
	}
	return resp, nil
}
