package service

import (
	"context"

	"github.com/Sokol111/postnl-go/pkg/model"
)

// DeliveryDateService calculates expected delivery dates.
type DeliveryDateService interface {
	GetDeliveryDate(ctx context.Context, req *model.GetDeliveryDate) (*model.GetDeliveryDateResponse, error)
}

type deliveryDateService struct {
	transport *Transport
}

func NewDeliveryDateService(t *Transport) DeliveryDateService {
	return &deliveryDateService{transport: t}
}

func (s *deliveryDateService) GetDeliveryDate(ctx context.Context, req *model.GetDeliveryDate) (*model.GetDeliveryDateResponse, error) {
	resp, err := expect[*model.GetDeliveryDateResponse](s.transport.do(ctx, call{endpoint: deliveryDateEndpoint, request: req}))
	if err != nil {
		return nil, err
	}
	if resp.DeliveryDate == nil {
		return nil, ErrNotFound
	}
	return resp, nil
}
