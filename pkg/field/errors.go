package field

import "errors"

var (
	// ErrAttached is returned when renaming a field that already belongs to a form.
	ErrAttached = errors.New("field: already attached to a form")

	// ErrDestroyed is returned by operations on a destroyed field.
	ErrDestroyed = errors.New("field: destroyed")

	// ErrNoProvider is returned by Search when the field has no OptionsProvider.
	ErrNoProvider = errors.New("field: no options provider")
)
