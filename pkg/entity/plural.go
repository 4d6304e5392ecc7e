package entity

import "strings"

// irregularPlurals lose two trailing characters when singularized.
var irregularPlurals = map[string]struct{}{
	"OldStatuses": {},
	"Statuses":    {},
	"Addresses":   {},
}

// singleValued names are never treated as collections even when their wire
// value is a list.
var singleValued = map[string]struct{}{
	"Customer":     {},
	"OpeningHours": {},
	"Customs":      {},
}

// Singularize derives the element type name of a collection field. The
// irregular plurals drop "es"; any other name drops one trailing "s".
// Names without a trailing "s" are returned unchanged.
func Singularize(name string) string {
	if _, ok := irregularPlurals[name]; ok {
		return name[:len(name)-2]
	}
	return strings.TrimSuffix(name, "s")
}

// IsSingleValued reports whether the name is excluded from collection
// handling.
func IsSingleValued(name string) bool {
	_, ok := singleValued[name]
	return ok
}

// IsIrregularPlural reports whether the name is one of the irregular
// plurals.
func IsIrregularPlural(name string) bool {
	_, ok := irregularPlurals[name]
	return ok
}
