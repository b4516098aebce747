package validation

import (
	"slices"

	"github.com/dmitrymomot/formkit/pkg/control"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Item is one constraint whose parameter is either a constant or computed
// from the current value on every validation pass.
type Item[V, R any] struct {
	constant R
	resolve  func(V) (R, bool)
	text     string
	deps     []string
}

// Const creates an item with a fixed parameter.
func Const[V, R any](param R) *Item[V, R] {
	return &Item[V, R]{constant: param}
}

// Func creates an item whose parameter is computed from the value. Returning
// false means the constraint does not apply on this pass.
func Func[V, R any](fn func(value V) (R, bool)) *Item[V, R] {
	return &Item[V, R]{resolve: fn}
}

// Required is shorthand for Const[V](true).
func Required[V any]() *Item[V, bool] {
	return Const[V](true)
}

// WithText sets the display text reported with the error.
func (i *Item[V, R]) WithText(text string) *Item[V, R] {
	i.text = text
	return i
}

// DependsOn declares the sibling fields the parameter reads. A sibling's
// complementary constraint clearing schedules this field for revalidation.
func (i *Item[V, R]) DependsOn(names ...string) *Item[V, R] {
	i.deps = append(i.deps, names...)
	return i
}

// Resolve returns the parameter for value.
func (i *Item[V, R]) Resolve(value V) (R, bool) {
	if i == nil {
		var zero R
		return zero, false
	}
	if i.resolve != nil {
		return i.resolve(value)
	}
	return i.constant, true
}

func (i *Item[V, R]) Text() string {
	if i == nil {
		return ""
	}
	return i.text
}

func (i *Item[V, R]) Dependencies() []string {
	if i == nil {
		return nil
	}
	return slices.Clone(i.deps)
}

// Reader converts a raw control value into the field value type.
type Reader[V any] func(raw any) V

// Cast is the Reader for controls that store V directly. Values of another
// type read as the zero V.
func Cast[V any]() Reader[V] {
	return func(raw any) V {
		v, _ := raw.(V)
		return v
	}
}

// Complete is told the outcome of every constraint evaluation.
type Complete func(c control.AbstractControl, kind string, errs control.Errors)

// Binding ties a constraint kind to the rule that checks it.
type Binding[R any] struct {
	Kind string
	Rule func(field string, value any, param R) validator.Rule
	// Expected reports the value stored in Detail.Expected. Defaults to the parameter.
	Expected func(param R) any
}

// Validate builds the control validator for this item. The parameter is
// resolved against the current value on each pass; an unresolved parameter
// contributes no error. onComplete, when set, runs after every pass.
func (i *Item[V, R]) Validate(read Reader[V], b Binding[R], onComplete Complete) control.ValidatorFn {
	return func(c control.AbstractControl) control.Errors {
		value := read(c.Value())

		var errs control.Errors
		if param, ok := i.Resolve(value); ok {
			field, _ := control.Name(c)
			rule := b.Rule(field, value, param)
			if !rule.Passes() {
				expected := any(param)
				if b.Expected != nil {
					expected = b.Expected(param)
				}
				errs = control.Errors{b.Kind: Detail{
					Expected: expected,
					Text:     i.text,
					Message:  rule.Error.Message,
				}}
			}
		}

		if onComplete != nil {
			onComplete(c, b.Kind, errs)
		}
		return errs
	}
}
