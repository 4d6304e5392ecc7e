package service

import (
	"context"

	"github.com/Sokol111/postnl-go/pkg/model"
)

// BarcodeService generates shipment barcodes.
type BarcodeService interface {
	GenerateBarcode(ctx context.Context, req *model.GenerateBarcode) (*model.GenerateBarcodeResponse, error)
}

type barcodeService struct {
	transport *Transport
}

func NewBarcodeService(t *Transport) BarcodeService {
	return &barcodeService{transport: t}
}

func (s *barcodeService) GenerateBarcode(ctx context.Context, req *model.GenerateBarcode) (*model.GenerateBarcodeResponse, error) {
	resp, err := expect[*model.GenerateBarcodeResponse](s.transport.do(ctx, call{endpoint: barcodeEndpoint, request: req}))
	if err != nil {
		return nil, err
	}
	if resp.Barcode == nil || *resp.Barcode == "" {
		return nil, ErrNotFound
	}
	return resp, nil
}
