package entity

import (
	"errors"
	"strings"
	"time"
)

const testNS = "urn:test"

type parcel struct {
	Base
	Code    *string
	Fragile *string
	Tags    []string
	Shipped *time.Time
	Label   *label
	Items   []*label
}

var parcelTable = NewTable("Parcel",
	Bind("Code", String(func(p *parcel) **string { return &p.Code }, strings.ToUpper)),
	Bind("Fragile", Bool(func(p *parcel) **string { return &p.Fragile })),
	Bind("Tags", Strings(func(p *parcel) *[]string { return &p.Tags })),
	Bind("Shipped", Time(func(p *parcel) **time.Time { return &p.Shipped })),
	Bind("Label", Nested(func(p *parcel) **label { return &p.Label })),
	Bind("Items", NestedList(func(p *parcel) *[]*label { return &p.Items })),
)

func (p *parcel) TypeName() string { return "Parcel" }
func (p *parcel) Get(name string) (any, bool) { return parcelTable.Get(p, name) }
func (p *parcel) Set(name string, value any) error { return parcelTable.Set(p, name, value) }
func (p *parcel) FieldNames() []string { return parcelTable.Names() }

func (p *parcel) Validate() error {
	if p.Code != nil && *p.Code == "INVALID" {
		return errors.New("code is invalid")
	}
	return nil
}

type label struct {
	Base
	Content *string
}

var labelTable = NewTable("Label",
	Bind("Content", String(func(l *label) **string { return &l.Content })),
)

func (l *label) TypeName() string { return "Label" }
func (l *label) Get(name string) (any, bool) { return labelTable.Get(l, name) }
func (l *label) Set(name string, value any) error { return labelTable.Set(l, name, value) }
func (l *label) FieldNames() []string { return labelTable.Names() }

func parcelType() *Type {
	fields := parcelTable.Descriptors(testNS)
	return &Type{
		Name:   "Parcel",
		Group:  GroupEntity,
		Fields: fields,
		Scopes: []Scope{
			AllFields("Full", testNS, fields),
			ScopeOf("Short", "urn:short", "Code", "Shipped"),
		},
		New: func() Entity { return &parcel{} },
	}
}

func labelType() *Type {
	fields := Fields(testNS, ShapeScalar, "Content")
	return &Type{
		Name:   "Label",
		Fields: fields,
		Scopes: []Scope{AllFields("Full", testNS, fields)},
		New:    func() Entity { return &label{} },
	}
}

func testRegistry() *Registry {
	return MustRegistry(parcelType(), labelType())
}
