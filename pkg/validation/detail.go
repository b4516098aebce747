package validation

import "github.com/dmitrymomot/formkit/pkg/control"

// Detail is the value stored under an error kind on a control.
type Detail struct {
	// Expected is the resolved constraint parameter, e.g. the minimum date.
	Expected any `json:"expected"`
	// Text is the display text configured on the constraint, if any.
	Text string `json:"text,omitempty"`
	// Message is the default English message of the failed rule.
	Message string `json:"message,omitempty"`
}

// DetailOf returns the detail stored under kind, if the control errors hold one.
func DetailOf(errs control.Errors, kind string) (Detail, bool) {
	d, ok := errs[kind].(Detail)
	return d, ok
}
