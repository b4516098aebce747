package field

import (
	"context"

	"github.com/dmitrymomot/formkit/pkg/control"
)

// Member is the type-erased view of a field used by forms.
type Member interface {
	ID() string
	Name() string
	SetName(name string) error
	Control() *control.Control
	ExplicitlyDisabled() bool

	AnyValue() any
	RawValue() any
	FormattedValue() string
	Visible() bool
	IsQuerying() bool

	ValidateAsync(ctx context.Context) (bool, error)
	Destroy()
	Destroyed() bool
}

var _ Member = (*Field[string, string])(nil)
