package service

import (
	"context"
	"net/url"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/Sokol111/postnl-go/pkg/model"
)

// maxConcurrentLabels bounds GenerateLabels.
const maxConcurrentLabels = 4

// LabellingService generates shipping labels. With confirm set, the
// shipments are pre-announced in the same call.
type LabellingService interface {
	GenerateLabel(ctx context.Context, req *model.GenerateLabel, confirm bool) (*model.GenerateLabelResponse, error)
	// GenerateLabels sends the requests concurrently. Responses keep the
	// order of reqs; the first error cancels the rest.
	GenerateLabels(ctx context.Context, reqs []*model.GenerateLabel, confirm bool) ([]*model.GenerateLabelResponse, error)
}

type labellingService struct {
	transport *Transport
}

func NewLabellingService(t *Transport) LabellingService {
	return &labellingService{transport: t}
}

func (s *labellingService) GenerateLabel(ctx context.Context, req *model.GenerateLabel, confirm bool) (*model.GenerateLabelResponse, error) {
	c := call{
		endpoint: labelEndpointFor(req.Shipments),
		request:  req,
		rest:     s.transport.restMode(),
		root:     "GenerateLabelResponse",
	}
	if c.rest {
		c.query = url.Values{"confirm": {strconv.FormatBool(confirm)}}
	} else if !confirm {
		c.action = labelNoConfirmAction
	}

	resp, err := expect[*model.GenerateLabelResponse](s.transport.do(ctx, c))
	if err != nil {
		return nil, err
	}
	if len(resp.ResponseShipments) == 0 {
		return nil, ErrNotFound
	}
	return resp, nil
}

func (s *labellingService) GenerateLabels(ctx context.Context, reqs []*model.GenerateLabel, confirm bool) ([]*model.GenerateLabelResponse, error) {
	out := make([]*model.GenerateLabelResponse, len(reqs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLabels)
	for i, req := range reqs {
		g.Go(func() error {
			resp, err := s.GenerateLabel(ctx, req, confirm)
			if err != nil {
				return err
			}
			out[i] = resp
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
