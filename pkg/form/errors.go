package form

import "errors"

var (
	// ErrFieldNameRequired is returned when a field without a name is added.
	ErrFieldNameRequired = errors.New("form: field name is required")

	// ErrDuplicateField is returned when the form already holds a control
	// under the field's name.
	ErrDuplicateField = errors.New("form: duplicate field name")

	// ErrNilField is returned for a nil field or an empty schema entry.
	ErrNilField = errors.New("form: nil field")

	// ErrNilEditor is returned when a nil or uninitialized editor is attached.
	ErrNilEditor = errors.New("form: nil editor")

	// ErrDestroyed is returned by mutations of a destroyed form.
	ErrDestroyed = errors.New("form: form is destroyed")
)
