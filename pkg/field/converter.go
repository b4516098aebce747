package field

import (
	"strings"
	"time"
)

// Converter maps between the field value and the raw control value.
type Converter[V any] struct {
	ToControl   func(V) any
	FromControl func(any) V
}

func (c Converter[V]) withDefaults() Converter[V] {
	id := Identity[V]()
	if c.ToControl == nil {
		c.ToControl = id.ToControl
	}
	if c.FromControl == nil {
		c.FromControl = id.FromControl
	}
	return c
}

// Identity stores the value as is. Raw values of another type read as zero.
func Identity[V any]() Converter[V] {
	return Converter[V]{
		ToControl: func(v V) any { return v },
		FromControl: func(raw any) V {
			v, _ := raw.(V)
			return v
		},
	}
}

// Trimmed stores strings without surrounding whitespace.
func Trimmed() Converter[string] {
	return Converter[string]{
		ToControl: func(v string) any { return strings.TrimSpace(v) },
		FromControl: func(raw any) string {
			s, _ := raw.(string)
			return s
		},
	}
}

// TimeToUnix stores times as Unix seconds and the zero time as nil.
func TimeToUnix() Converter[time.Time] {
	return Converter[time.Time]{
		ToControl: func(t time.Time) any {
			if t.IsZero() {
				return nil
			}
			return t.Unix()
		},
		FromControl: func(raw any) time.Time {
			sec, ok := raw.(int64)
			if !ok {
				return time.Time{}
			}
			return time.Unix(sec, 0).UTC()
		},
	}
}

// Pointer stores the pointed-to value and nil for a nil pointer.
func Pointer[V any]() Converter[*V] {
	return Converter[*V]{
		ToControl: func(p *V) any {
			if p == nil {
				return nil
			}
			return *p
		},
		FromControl: func(raw any) *V {
			v, ok := raw.(V)
			if !ok {
				return nil
			}
			return &v
		},
	}
}
