package service

import (
	"context"

	"github.com/Sokol111/postnl-go/pkg/model"
)

// ShippingStatusService tracks shipments by barcode.
type ShippingStatusService interface {
	CurrentStatus(ctx context.Context, req *model.CurrentStatus) (*model.CurrentStatusResponse, error)
}

type shippingStatusService struct {
	transport *Transport
}

func NewShippingStatusService(t *Transport) ShippingStatusService {
	return &shippingStatusService{transport: t}
}

func (s *shippingStatusService) CurrentStatus(ctx context.Context, req *model.CurrentStatus) (*model.CurrentStatusResponse, error) {
	return expect[*model.CurrentStatusResponse](s.transport.do(ctx, call{endpoint: statusEndpoint, request: req}))
}
