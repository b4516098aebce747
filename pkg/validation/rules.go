package validation

import (
	"context"
	"time"
)

// Check is a custom synchronous predicate. Returning false fails the field.
type Check[V any] func(value V) bool

// AsyncCheck is a background predicate, typically backed by a network call.
type AsyncCheck[V any] func(ctx context.Context, value V) (bool, error)

// Rules describes the constraints of one field. Nil items are off.
type Rules[V any] struct {
	Required       *Item[V, bool]
	RequiredTrue   *Item[V, bool]
	MinLength      *Item[V, int]
	MaxLength      *Item[V, int]
	Min            *Item[V, float64]
	Max            *Item[V, float64]
	MinDate        *Item[V, time.Time]
	MinOrEqualDate *Item[V, time.Time]
	MaxDate        *Item[V, time.Time]
	MaxOrEqualDate *Item[V, time.Time]
	Pattern        *Item[V, string]
	Custom         *Item[V, Check[V]]
	Async          *Item[V, AsyncCheck[V]]
	Native         *Item[V, string]
}

// merge returns r with every non-nil item of update applied on top.
func (r Rules[V]) merge(update Rules[V]) Rules[V] {
	r.Required = pick(r.Required, update.Required)
	r.RequiredTrue = pick(r.RequiredTrue, update.RequiredTrue)
	r.MinLength = pick(r.MinLength, update.MinLength)
	r.MaxLength = pick(r.MaxLength, update.MaxLength)
	r.Min = pick(r.Min, update.Min)
	r.Max = pick(r.Max, update.Max)
	r.MinDate = pick(r.MinDate, update.MinDate)
	r.MinOrEqualDate = pick(r.MinOrEqualDate, update.MinOrEqualDate)
	r.MaxDate = pick(r.MaxDate, update.MaxDate)
	r.MaxOrEqualDate = pick(r.MaxOrEqualDate, update.MaxOrEqualDate)
	r.Pattern = pick(r.Pattern, update.Pattern)
	r.Custom = pick(r.Custom, update.Custom)
	r.Async = pick(r.Async, update.Async)
	r.Native = pick(r.Native, update.Native)
	return r
}

func pick[V, R any](cur, update *Item[V, R]) *Item[V, R] {
	if update != nil {
		return update
	}
	return cur
}

// meta is the type-erased view of an item.
type meta interface {
	Text() string
	Dependencies() []string
}

type entry struct {
	kind string
	item meta
}

// items lists the configured items in evaluation order.
func (r Rules[V]) items() []entry {
	var out []entry
	add := func(kind string, set bool, item meta) {
		if set {
			out = append(out, entry{kind: kind, item: item})
		}
	}

	add(KindRequired, r.Required != nil, r.Required)
	add(KindRequiredTrue, r.RequiredTrue != nil, r.RequiredTrue)
	add(KindMinLength, r.MinLength != nil, r.MinLength)
	add(KindMaxLength, r.MaxLength != nil, r.MaxLength)
	add(KindMin, r.Min != nil, r.Min)
	add(KindMax, r.Max != nil, r.Max)
	add(KindMinDate, r.MinDate != nil, r.MinDate)
	add(KindMinOrEqualDate, r.MinOrEqualDate != nil, r.MinOrEqualDate)
	add(KindMaxDate, r.MaxDate != nil, r.MaxDate)
	add(KindMaxOrEqualDate, r.MaxOrEqualDate != nil, r.MaxOrEqualDate)
	add(KindPattern, r.Pattern != nil, r.Pattern)
	add(KindCustom, r.Custom != nil, r.Custom)
	add(KindAsync, r.Async != nil, r.Async)
	add(KindNative, r.Native != nil, r.Native)
	return out
}
