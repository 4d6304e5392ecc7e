package model

import "github.com/Sokol111/postnl-go/pkg/entity"

// Dimension holds the measurements of a parcel. Weight is in grams, the
// sizes in millimetres.
type Dimension struct {
	entity.Base

	Height *string
	Length *string
	Volume *string
	Weight *string
	Width  *string
}

// NewDimension returns a dimension with only the weight set.
func NewDimension(weight string) *Dimension {
	return &Dimension{Base: entity.NewBase(), Weight: &weight}
}

var dimensionTable = entity.NewTable("Dimension",
	entity.Bind("Height", entity.String(func(d *Dimension) **string { return &d.Height })),
	entity.Bind("Length", entity.String(func(d *Dimension) **string { return &d.Length })),
	entity.Bind("Volume", entity.String(func(d *Dimension) **string { return &d.Volume })),
	entity.Bind("Weight", entity.String(func(d *Dimension) **string { return &d.Weight })),
	entity.Bind("Width", entity.String(func(d *Dimension) **string { return &d.Width })),
)

var dimensionType = define("Dimension", entity.GroupEntity, dimensionTable, func() *Dimension { return &Dimension{} },
	services(ServiceConfirming, ServiceLabelling, ServiceShipping, ServiceShippingStatus),
)
