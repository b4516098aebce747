// Package validator provides the constraint rules behind form validation.
//
// Every rule is a Rule value: a Check function plus a ValidationError that
// carries the constraint kind, a default English message and translation
// metadata. Rules accept the raw control value (any) and normalise it with
// IsEmpty, Length, ToFloat and ToTime, so a single catalog serves strings,
// numbers, slices, pointers and time.Time.
//
// Absent values never fail a bounded constraint: Min, Max, the date rules,
// MinLength, Pattern and Native only judge values that are present. Use
// Required or RequiredTrue to demand presence.
//
// Date comparisons:
//
//	MinDate         fails when value <  date
//	MinOrEqualDate  fails when value <= date
//	MaxDate         fails when value >  date
//	MaxOrEqualDate  fails when value >= date
//
// Patterns are anchored to the whole value and compiled once through an LRU
// cache. Native delegates to github.com/go-playground/validator/v10 tags.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.Required("email", email),
//	    validator.Native("email", email, "email"),
//	    validator.MaxLength("email", email, 255),
//	)
//	if errs := validator.ExtractValidationErrors(err); errs != nil {
//	    // render errs.Get("email")
//	}
package validator
