package option

import "github.com/google/uuid"

// Option is an immutable label/value/id triple for enumerable fields.
type Option[T any] struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Value    T      `json:"value"`
	Group    string `json:"group,omitempty"`
	Disabled bool   `json:"disabled,omitempty"`
}

// New creates an option with an explicit id.
func New[T any](id, label string, value T) Option[T] {
	return Option[T]{ID: id, Label: label, Value: value}
}

// Auto creates an option with a random id.
func Auto[T any](label string, value T) Option[T] {
	return New(uuid.NewString(), label, value)
}

// InGroup returns a copy of o under group.
func (o Option[T]) InGroup(group string) Option[T] {
	o.Group = group
	return o
}

// AsDisabled returns a copy of o that cannot be selected.
func (o Option[T]) AsDisabled() Option[T] {
	o.Disabled = true
	return o
}

func (o Option[T]) OptionID() any        { return o.ID }
func (o Option[T]) OptionLabel() string  { return o.Label }
func (o Option[T]) OptionGroup() string  { return o.Group }
func (o Option[T]) OptionDisabled() bool { return o.Disabled }
func (o Option[T]) OptionValue() any     { return o.Value }
