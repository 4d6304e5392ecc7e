package model

import "github.com/Sokol111/postnl-go/pkg/entity"

// Warning is a non-fatal remark returned with a response.
type Warning struct {
	entity.Base

	Code        *string
	Description *string
	Message     *string
}

var warningTable = entity.NewTable("Warning",
	entity.Bind("Code", entity.String(func(w *Warning) **string { return &w.Code })),
	entity.Bind("Description", entity.String(func(w *Warning) **string { return &w.Description })),
	entity.Bind("Message", entity.String(func(w *Warning) **string { return &w.Message })),
)

var warningType = define("Warning", entity.GroupEntity, warningTable, func() *Warning { return &Warning{} },
	services(ServiceConfirming, ServiceLabelling, ServiceShipping, ServiceShippingStatus, ServiceLocation),
)
