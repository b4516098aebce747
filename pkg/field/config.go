package field

import (
	"context"
	"log/slog"
	"time"

	"github.com/dmitrymomot/formkit/pkg/option"
	"github.com/dmitrymomot/formkit/pkg/scheduler"
	"github.com/dmitrymomot/formkit/pkg/validation"
)

// OptionsSource loads an option list in the background.
type OptionsSource[O any] func(ctx context.Context) ([]O, error)

// Static wraps a fixed list as a source.
func Static[O any](opts []O) OptionsSource[O] {
	return func(context.Context) ([]O, error) { return opts, nil }
}

// OptionsProvider answers a search query, typically for search-as-you-type.
type OptionsProvider[O any] func(ctx context.Context, query string) ([]O, error)

// Config describes a field. The zero value of every member is usable.
type Config[V, O any] struct {
	// Name is the key of the field within a form. It may be left empty and
	// assigned by form.Create.
	Name  string
	Value V

	// Disabled fixes the initial state. Nil keeps the control disabled until
	// the field joins a form, which then enables it.
	Disabled *bool

	Validation validation.Rules[V]
	Converter  Converter[V]
	// Equal decides whether a write is a no-op. Defaults to reflect.DeepEqual.
	Equal func(a, b V) bool

	Visible func(value V) bool
	Format  func(value V) string

	Options         []O
	Resolver        option.Resolver[O]
	Selection       Selection[V, O]
	OptionsFilter   func(o O, query string) bool
	OptionsProvider OptionsProvider[O]

	OnValueChange   func(current, previous V)
	OnOptionsChange func(options []O)

	// DestroyWithControl ties the field and its control: destroying either
	// destroys the other.
	DestroyWithControl bool

	// SearchDebounce delays Search. Zero uses config.Current().
	SearchDebounce time.Duration
	Scheduler      *scheduler.Scheduler
	Logger         *slog.Logger
}

// Enabled returns a pointer to false for Config.Disabled.
func Enabled() *bool {
	b := false
	return &b
}

// Disabled returns a pointer to true for Config.Disabled.
func Disabled() *bool {
	b := true
	return &b
}
