package model

import "github.com/Sokol111/postnl-go/pkg/entity"

// OpeningHours lists the opening intervals of a pickup point per weekday,
// e.g. "09:00-18:00".
type OpeningHours struct {
	entity.Base

	Monday    []string
	Tuesday   []string
	Wednesday []string
	Thursday  []string
	Friday    []string
	Saturday  []string
	Sunday    []string
}

var openingHoursTable = entity.NewTable("OpeningHours",
	entity.Bind("Monday", entity.Strings(func(o *OpeningHours) *[]string { return &o.Monday })),
	entity.Bind("Tuesday", entity.Strings(func(o *OpeningHours) *[]string { return &o.Tuesday })),
	entity.Bind("Wednesday", entity.Strings(func(o *OpeningHours) *[]string { return &o.Wednesday })),
	entity.Bind("Thursday", entity.Strings(func(o *OpeningHours) *[]string { return &o.Thursday })),
	entity.Bind("Friday", entity.Strings(func(o *OpeningHours) *[]string { return &o.Friday })),
	entity.Bind("Saturday", entity.Strings(func(o *OpeningHours) *[]string { return &o.Saturday })),
	entity.Bind("Sunday", entity.Strings(func(o *OpeningHours) *[]string { return &o.Sunday })),
)

var openingHoursType = define("OpeningHours", entity.GroupEntity, openingHoursTable,
	func() *OpeningHours { return &OpeningHours{} }, services(ServiceLocation))
