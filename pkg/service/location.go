package service

import (
	"context"

	"github.com/Sokol111/postnl-go/pkg/model"
)

// LocationService finds pickup points.
type LocationService interface {
	GetNearestLocations(ctx context.Context, req *model.GetNearestLocations) (*model.GetNearestLocationsResponse, error)
}

type locationService struct {
	transport *Transport
}

func NewLocationService(t *Transport) LocationService {
	return &locationService{transport: t}
}

func (s *locationService) GetNearestLocations(ctx context.Context, req *model.GetNearestLocations) (*model.GetNearestLocationsResponse, error) {
	return expect[*model.GetNearestLocationsResponse](s.transport.do(ctx, call{endpoint: locationEndpoint, request: req}))
}
