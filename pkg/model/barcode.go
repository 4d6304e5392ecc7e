package model

import "github.com/Sokol111/postnl-go/pkg/entity"

// Barcode describes the barcode range to generate a barcode from.
type Barcode struct {
	entity.Base

	Type  *string
	Range *string
	Serie *string
}

// NewBarcode returns a barcode request part for the given type, range and
// serie.
func NewBarcode(typ, rng, serie string) *Barcode {
	return &Barcode{Base: entity.NewBase(), Type: &typ, Range: &rng, Serie: &serie}
}

var barcodeTable = entity.NewTable("Barcode",
	entity.Bind("Type", entity.String(func(b *Barcode) **string { return &b.Type })),
	entity.Bind("Range", entity.String(func(b *Barcode) **string { return &b.Range })),
	entity.Bind("Serie", entity.String(func(b *Barcode) **string { return &b.Serie })),
)

var barcodeType = define("Barcode", entity.GroupEntity, barcodeTable, func() *Barcode { return &Barcode{} },
	services(ServiceBarcode),
)
