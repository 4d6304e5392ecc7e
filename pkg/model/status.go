package model

import "github.com/Sokol111/postnl-go/pkg/entity"

// Status is the current tracking status of a shipment.
type Status struct {
	entity.Base

	CurrentPhaseCode         *string
	CurrentPhaseDescription  *string
	CurrentStatusCode        *string
	CurrentStatusDescription *string
	CurrentStatusTimeStamp   *string
}

// OldStatus is one earlier entry of a shipment's tracking history.
type OldStatus struct {
	entity.Base

	StatusCode        *string
	StatusDescription *string
	PhaseCode         *string
	PhaseDescription  *string
	TimeStamp         *string
}

var statusTable = entity.NewTable("Status",
	entity.Bind("CurrentPhaseCode", entity.String(func(s *Status) **string { return &s.CurrentPhaseCode })),
	entity.Bind("CurrentPhaseDescription", entity.String(func(s *Status) **string { return &s.CurrentPhaseDescription })),
	entity.Bind("CurrentStatusCode", entity.String(func(s *Status) **string { return &s.CurrentStatusCode })),
	entity.Bind("CurrentStatusDescription", entity.String(func(s *Status) **string { return &s.CurrentStatusDescription })),
	entity.Bind("CurrentStatusTimeStamp", entity.String(func(s *Status) **string { return &s.CurrentStatusTimeStamp })),
)

var oldStatusTable = entity.NewTable("OldStatus",
	entity.Bind("StatusCode", entity.String(func(s *OldStatus) **string { return &s.StatusCode })),
	entity.Bind("StatusDescription", entity.String(func(s *OldStatus) **string { return &s.StatusDescription })),
	entity.Bind("PhaseCode", entity.String(func(s *OldStatus) **string { return &s.PhaseCode })),
	entity.Bind("PhaseDescription", entity.String(func(s *OldStatus) **string { return &s.PhaseDescription })),
	entity.Bind("TimeStamp", entity.String(func(s *OldStatus) **string { return &s.TimeStamp })),
)

var (
	statusType = define("Status", entity.GroupEntity, statusTable,
		func() *Status { return &Status{} }, services(ServiceShippingStatus))
	oldStatusType = define("OldStatus", entity.GroupEntity, oldStatusTable,
		func() *OldStatus { return &OldStatus{} }, services(ServiceShippingStatus))
)
