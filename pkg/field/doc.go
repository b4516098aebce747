// Package field binds a typed value, an option list and a set of
// constraints to a single control.Control.
//
// A Field is built from a Config. V is the value type the application works
// with and O the option type of choice fields; fields without options can
// use any O, conventionally option.Option[V]. A Converter maps V to the raw
// control value and back, and Selection maps values to the options they
// select (Single, Multi, Self, SelfMulti).
//
// Writes are suppressed when the value does not change. Replacing the
// options rebinds the current selection to the new option values without a
// value notification. Option loading (LoadOptions, Search) runs through the
// field's scheduler: only the latest load is applied and a failed load
// leaves an empty list.
//
// Hooks (OnValueChange, OnOptionsChange) run on the scheduler goroutine. A
// panicking hook is logged and does not affect the write that triggered it.
//
//	email := field.New(field.Config[string, option.Option[string]]{
//	    Name:       "email",
//	    Converter:  field.Trimmed(),
//	    Validation: validation.Rules[string]{
//	        Required: validation.Required[string](),
//	        Native:   validation.Const[string]("email"),
//	    },
//	})
//	email.SetValue(" a@example.com ")
package field
