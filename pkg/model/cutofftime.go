package model

import "github.com/Sokol111/postnl-go/pkg/entity"

// CutOffTime is the latest time on a weekday at which a shipment is handed
// over.
type CutOffTime struct {
	entity.Base

	Day       *string
	Time      *string
	Available *string
}

// NewCutOffTime returns a cut-off time for the day, given as "00" (every
// day) or "01" to "07".
func NewCutOffTime(day, time string, available bool) *CutOffTime {
	c := &CutOffTime{Base: entity.NewBase(), Day: &day, Time: &time}
	_ = cutOffTimeTable.Set(c, "Available", available)
	return c
}

var cutOffTimeTable = entity.NewTable("CutOffTime",
	entity.Bind("Day", entity.String(func(c *CutOffTime) **string { return &c.Day }, zeroPad2)),
	entity.Bind("Time", entity.String(func(c *CutOffTime) **string { return &c.Time })),
	entity.Bind("Available", entity.Bool(func(c *CutOffTime) **string { return &c.Available })),
)

var cutOffTimeType = define("CutOffTime", entity.GroupEntity, cutOffTimeTable, func() *CutOffTime { return &CutOffTime{} },
	services(ServiceDeliveryDate),
)
