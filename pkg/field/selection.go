package field

import (
	"github.com/dmitrymomot/formkit/pkg/option"
)

// Selection maps between a field value and the options it selects. Values
// are split into elements: a single-valued field has zero or one element, a
// multi-valued field one per selected item.
type Selection[V, O any] interface {
	// Multi reports whether the value holds several elements.
	Multi() bool
	// Elements splits a value. A nil value has no elements.
	Elements(value V) []any
	// Compose builds a value from elements.
	Compose(elems []any) V
	// Value returns the element an option stands for.
	Value(o O) any
	// ID returns the id of an element, or nil to match options by value.
	ID(elem any) any
}

type single[E, O any] struct {
	value func(O) E
	id    func(E) any
}

// Single selects one option. value maps an option to the stored element and
// id maps an element to the option id space. A nil id matches by value.
func Single[E, O any](value func(O) E, id func(E) any) Selection[E, O] {
	return single[E, O]{value: value, id: id}
}

func (s single[E, O]) Multi() bool { return false }

func (s single[E, O]) Elements(v E) []any {
	if isNil(v) {
		return nil
	}
	return []any{v}
}

func (s single[E, O]) Compose(elems []any) E {
	var zero E
	if len(elems) == 0 {
		return zero
	}
	e, _ := elems[0].(E)
	return e
}

func (s single[E, O]) Value(o O) any { return s.value(o) }

func (s single[E, O]) ID(elem any) any {
	if s.id == nil {
		return nil
	}
	e, ok := elem.(E)
	if !ok {
		return nil
	}
	return s.id(e)
}

type multi[E, O any] struct {
	value func(O) E
	id    func(E) any
}

// Multi selects several options; the value is a slice of elements.
func Multi[E, O any](value func(O) E, id func(E) any) Selection[[]E, O] {
	return multi[E, O]{value: value, id: id}
}

func (m multi[E, O]) Multi() bool { return true }

func (m multi[E, O]) Elements(v []E) []any {
	out := make([]any, 0, len(v))
	for _, e := range v {
		out = append(out, e)
	}
	return out
}

func (m multi[E, O]) Compose(elems []any) []E {
	out := make([]E, 0, len(elems))
	for _, el := range elems {
		if e, ok := el.(E); ok {
			out = append(out, e)
		}
	}
	return out
}

func (m multi[E, O]) Value(o O) any { return m.value(o) }

func (m multi[E, O]) ID(elem any) any {
	if m.id == nil {
		return nil
	}
	e, ok := elem.(E)
	if !ok {
		return nil
	}
	return m.id(e)
}

// Self selects options themselves, identified by id.
func Self[O any](id func(O) any) Selection[O, O] {
	return Single(func(o O) O { return o }, id)
}

// SelfMulti selects several options themselves, identified by id.
func SelfMulti[O any](id func(O) any) Selection[[]O, O] {
	return Multi(func(o O) O { return o }, id)
}

// defaultSelection picks a selection from the type parameters: options as
// values, slices of options, or options implementing option.Valuer.
func defaultSelection[V, O any](id func(O) any) Selection[V, O] {
	if s, ok := any(Self[O](id)).(Selection[V, O]); ok {
		return s
	}
	if s, ok := any(SelfMulti[O](id)).(Selection[V, O]); ok {
		return s
	}
	return Single(func(o O) V {
		var v V
		if w, ok := any(o).(option.Valuer); ok {
			v, _ = w.OptionValue().(V)
		}
		return v
	}, nil)
}
