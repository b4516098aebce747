package control

import "errors"

var (
	// ErrDuplicateControl is returned when a group already has a child under the name.
	ErrDuplicateControl = errors.New("control: duplicate control name")

	// ErrEmptyName is returned when a child is added to a group without a name.
	ErrEmptyName = errors.New("control: empty control name")

	// ErrAlreadyAttached is returned when a control that already has a parent is added elsewhere.
	ErrAlreadyAttached = errors.New("control: control already has a parent")

	// ErrNilControl is returned when a nil control is added to a group or array.
	ErrNilControl = errors.New("control: nil control")

	// ErrIndexOutOfRange is returned for array positions outside the array.
	ErrIndexOutOfRange = errors.New("control: index out of range")
)
