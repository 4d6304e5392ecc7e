package service

import (
	"context"

	"github.com/Sokol111/postnl-go/pkg/entity/xmlcodec"
	"github.com/Sokol111/postnl-go/pkg/model"
)

const (
	confirmingShipmentsKey = "ConfirmingResponseShipments"
	confirmingShipmentKey  = "ConfirmingResponseShipment"
)

// ConfirmingService pre-announces shipments labelled without confirmation.
type ConfirmingService interface {
	Confirm(ctx context.Context, req *model.Confirming) ([]*model.ConfirmingResponseShipment, error)
}

type confirmingService struct {
	transport *Transport
}

func NewConfirmingService(t *Transport) ConfirmingService {
	return &confirmingService{transport: t}
}

func (s *confirmingService) Confirm(ctx context.Context, req *model.Confirming) ([]*model.ConfirmingResponseShipment, error) {
	v, err := s.transport.do(ctx, call{
		endpoint: confirmEndpoint,
		request:  req,
		rest:     s.transport.restMode(),
	})
	if err != nil {
		return nil, err
	}

	var out []*model.ConfirmingResponseShipment
	switch v := v.(type) {
	case []*xmlcodec.Node:
		out, err = s.fromXML(v)
	case map[string]any:
		out, err = s.fromJSON(v)
	}
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrNotFound
	}
	return out, nil
}

// fromXML reads the children of the ConfirmingResponseShipments payload.
func (s *confirmingService) fromXML(nodes []*xmlcodec.Node) ([]*model.ConfirmingResponseShipment, error) {
	var out []*model.ConfirmingResponseShipment
	for _, n := range nodes {
		if n.LocalName() != confirmingShipmentKey {
			continue
		}
		v, err := s.transport.xml.DeserializeFor(n, model.ServiceConfirming)
		if err != nil {
			return nil, err
		}
		if e, ok := v.(*model.ConfirmingResponseShipment); ok {
			out = append(out, e)
		}
	}
	return out, nil
}

// fromJSON reads {"ConfirmingResponseShipments": [...]}; items may be bare
// or keyed by their type.
func (s *confirmingService) fromJSON(doc map[string]any) ([]*model.ConfirmingResponseShipment, error) {
	var items []any
	switch v := doc[confirmingShipmentsKey].(type) {
	case []any:
		items = v
	case map[string]any:
		items = []any{v}
	}

	var out []*model.ConfirmingResponseShipment
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if _, wrapped := obj[confirmingShipmentKey]; !wrapped {
			obj = map[string]any{confirmingShipmentKey: obj}
		}
		v, err := s.transport.json.DeserializeFor(obj, model.ServiceConfirming)
		if err != nil {
			return nil, err
		}
		if e, ok := v.(*model.ConfirmingResponseShipment); ok {
			out = append(out, e)
		}
	}
	return out, nil
}
