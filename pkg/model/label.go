package model

import "github.com/Sokol111/postnl-go/pkg/entity"

// Label is a generated shipping label. Content is base64 encoded.
type Label struct {
	entity.Base

	Content     *string
	Contenttype *string
	Labeltype   *string
}

var labelTable = entity.NewTable("Label",
	entity.Bind("Content", entity.String(func(l *Label) **string { return &l.Content })),
	entity.Bind("Contenttype", entity.String(func(l *Label) **string { return &l.Contenttype })),
	entity.Bind("Labeltype", entity.String(func(l *Label) **string { return &l.Labeltype })),
)

var labelType = define("Label", entity.GroupEntity, labelTable, func() *Label { return &Label{} },
	labelServices,
)
