package option

import "fmt"

// Identifier is implemented by option types that know their own id.
type Identifier interface {
	OptionID() any
}

// Labeler is implemented by option types that know their own label.
type Labeler interface {
	OptionLabel() string
}

// Grouper is implemented by option types that belong to a named group.
type Grouper interface {
	OptionGroup() string
}

// Valuer is implemented by option types that wrap a separate value.
type Valuer interface {
	OptionValue() any
}

// Disabler is implemented by option types that can be unselectable.
type Disabler interface {
	OptionDisabled() bool
}

// Resolver holds the functions that read an option's identity and
// presentation. Missing functions fall back to the interfaces above.
type Resolver[O any] struct {
	ID           func(O) any
	Label        func(O) string
	DisplayLabel func(O) string
	Group        func(O) string
	Disabled     func(O) bool
}

// WithDefaults fills every nil function.
func (r Resolver[O]) WithDefaults() Resolver[O] {
	if r.ID == nil {
		r.ID = DefaultID[O]
	}
	if r.Label == nil {
		r.Label = DefaultLabel[O]
	}
	if r.DisplayLabel == nil {
		r.DisplayLabel = r.Label
	}
	if r.Group == nil {
		r.Group = func(o O) string {
			if g, ok := any(o).(Grouper); ok {
				return g.OptionGroup()
			}
			return ""
		}
	}
	if r.Disabled == nil {
		r.Disabled = func(o O) bool {
			if d, ok := any(o).(Disabler); ok {
				return d.OptionDisabled()
			}
			return false
		}
	}
	return r
}

// DefaultID uses Identifier when implemented and the option itself otherwise.
func DefaultID[O any](o O) any {
	if id, ok := any(o).(Identifier); ok {
		return id.OptionID()
	}
	return o
}

// DefaultLabel uses Labeler, then fmt.Stringer, then fmt.Sprint.
func DefaultLabel[O any](o O) string {
	switch v := any(o).(type) {
	case Labeler:
		return v.OptionLabel()
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprint(o)
}
