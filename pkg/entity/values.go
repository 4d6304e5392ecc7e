package entity

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// DateLayout is the wire format of timestamp fields (DD-MM-YYYY).
const DateLayout = "02-01-2006"

// DateTimeLayout is the wire format of date-time scalars such as message
// timestamps.
const DateTimeLayout = "02-01-2006 15:04:05"

var dateLayouts = []string{DateLayout, DateTimeLayout, time.RFC3339, time.DateOnly}

// FormatDate renders t as DD-MM-YYYY.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses the supported date representations.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, invalidValue("cannot parse date %q", s)
}

// NormalizeBool maps a boolean-like value to "true" or "false". Only true,
// the integer 1 and the string "true" are truthy.
func NormalizeBool(v any) string {
	switch b := v.(type) {
	case bool:
		return formatBool(b)
	case string:
		return formatBool(b == "true")
	case float32:
		return formatBool(b == 1)
	case float64:
		return formatBool(b == 1)
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return formatBool(cast.ToInt64(b) == 1)
	}
	return "false"
}

func formatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// ToString converts a terminal value to its string form.
func ToString(v any) (string, error) {
	switch s := v.(type) {
	case string:
		return s, nil
	case Entity, []Entity, []string, []any, map[string]any:
		return "", invalidValue("expected a scalar, got %T", v)
	}
	str, err := cast.ToStringE(v)
	if err != nil {
		return "", invalidValue("%v", err)
	}
	return str, nil
}

// ToStrings converts a list value to []string. Every item must be a string.
func ToStrings(v any) ([]string, error) {
	switch list := v.(type) {
	case []string:
		return append([]string(nil), list...), nil
	case []any:
		out := make([]string, 0, len(list))
		for i, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, invalidValue("item %d: expected a string, got %T", i, item)
			}
			out = append(out, s)
		}
		return out, nil
	}
	return nil, invalidValue("expected a list of strings, got %T", v)
}

// ToTime converts a timestamp value.
func ToTime(v any) (time.Time, error) {
	switch t := v.(type) {
	case time.Time:
		return t, nil
	case *time.Time:
		if t == nil {
			return time.Time{}, invalidValue("nil time")
		}
		return *t, nil
	case string:
		return ParseDate(t)
	}
	return time.Time{}, invalidValue("expected a date, got %T", v)
}

// FormatScalar renders a terminal field value for the wire.
func FormatScalar(shape Shape, v any) (string, error) {
	switch shape {
	case ShapeBoolean:
		return NormalizeBool(v), nil
	case ShapeTimestamp:
		t, err := ToTime(v)
		if err != nil {
			return "", err
		}
		return FormatDate(t), nil
	case ShapeScalar:
		return ToString(v)
	}
	return "", fmt.Errorf("shape %s is not terminal", shape)
}

// IsEmpty reports whether a raw wire value is empty: nil, an empty string or
// an empty list.
func IsEmpty(v any) bool {
	if v == nil {
		return true
	}
	switch val := v.(type) {
	case string:
		return val == ""
	case bool:
		return !val
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map:
		return rv.Len() == 0
	}
	return false
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map:
		return rv.IsNil()
	}
	return false
}
