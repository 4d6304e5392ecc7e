package model

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Sokol111/postnl-go/pkg/entity"
)

// postalCode upper-cases a postal code and removes its spaces.
func postalCode(s string) string {
	return strings.ToUpper(strings.ReplaceAll(s, " ", ""))
}

// zeroPad2 left-pads a code to two characters.
func zeroPad2(s string) string {
	if len(s) >= 2 {
		return s
	}
	return strings.Repeat("0", 2-len(s)) + s
}

// decimal2 binds a monetary field stored with exactly two decimals.
func decimal2[E any](field func(E) **string) entity.Accessor[E] {
	acc := entity.String(field)
	acc.Set = func(e E, v any) error {
		if v == nil || v == "" {
			*field(e) = nil
			return nil
		}
		s, err := entity.ToString(v)
		if err != nil {
			return err
		}
		d, err := decimal.NewFromString(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("%w: %q is not a decimal", entity.ErrInvalidFieldValue, s)
		}
		fixed := d.StringFixed(2)
		*field(e) = &fixed
		return nil
	}
	return acc
}
