package validator

import (
	"reflect"
	"strings"
	"time"
	"unicode/utf8"
)

// indirect follows pointers and interfaces. It returns an invalid value for nil.
func indirect(v any) reflect.Value {
	rv := reflect.ValueOf(v)
	for rv.IsValid() && (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) {
		if rv.IsNil() {
			return reflect.Value{}
		}
		rv = rv.Elem()
	}
	return rv
}

// IsEmpty reports whether a value counts as absent: nil, a nil pointer, a
// blank string, an empty collection or a zero time.
func IsEmpty(v any) bool {
	rv := indirect(v)
	if !rv.IsValid() {
		return true
	}

	switch rv.Kind() {
	case reflect.String:
		return strings.TrimSpace(rv.String()) == ""
	case reflect.Slice, reflect.Map, reflect.Array, reflect.Chan:
		return rv.Len() == 0
	}

	if t, ok := rv.Interface().(time.Time); ok {
		return t.IsZero()
	}
	return false
}

// Length returns the rune count of a string or the length of a collection.
func Length(v any) (int, bool) {
	rv := indirect(v)
	if !rv.IsValid() {
		return 0, false
	}

	switch rv.Kind() {
	case reflect.String:
		return utf8.RuneCountInString(rv.String()), true
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len(), true
	}
	return 0, false
}

// ToFloat converts any integer or float kind to float64.
func ToFloat(v any) (float64, bool) {
	rv := indirect(v)
	if !rv.IsValid() {
		return 0, false
	}

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

// ToTime extracts a non-zero time.Time from a value or pointer.
func ToTime(v any) (time.Time, bool) {
	rv := indirect(v)
	if !rv.IsValid() {
		return time.Time{}, false
	}
	t, ok := rv.Interface().(time.Time)
	if !ok || t.IsZero() {
		return time.Time{}, false
	}
	return t, true
}
