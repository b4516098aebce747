package validation

import (
	"context"
	"slices"
	"time"

	"github.com/dmitrymomot/formkit/pkg/control"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Validation is the set of constraints attached to one field.
type Validation[V any] struct {
	rules       Rules[V]
	revalidator *Revalidator
}

// Option configures a Validation.
type Option func(*options)

type options struct {
	revalidator *Revalidator
}

// WithRevalidator enables cross-field revalidation through r.
func WithRevalidator(r *Revalidator) Option {
	return func(o *options) { o.revalidator = r }
}

// New creates a validation from rules.
func New[V any](rules Rules[V], opts ...Option) *Validation[V] {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return &Validation[V]{rules: rules, revalidator: o.revalidator}
}

// Rules returns a copy of the current rules.
func (v *Validation[V]) Rules() Rules[V] { return v.rules }

// Merge applies every non-nil item of update in place.
func (v *Validation[V]) Merge(update Rules[V]) {
	v.rules = v.rules.merge(update)
}

// SetRevalidator replaces the revalidator used by validators built afterwards.
func (v *Validation[V]) SetRevalidator(r *Revalidator) {
	v.revalidator = r
}

// Has reports whether a constraint of kind is configured.
func (v *Validation[V]) Has(kind string) bool {
	return slices.ContainsFunc(v.rules.items(), func(e entry) bool { return e.kind == kind })
}

// Names returns the configured kinds in evaluation order.
func (v *Validation[V]) Names() []string {
	items := v.rules.items()
	names := make([]string, len(items))
	for i, e := range items {
		names[i] = e.kind
	}
	return names
}

// Text returns the display text of the constraint.
func (v *Validation[V]) Text(kind string) string {
	for _, e := range v.rules.items() {
		if e.kind == kind {
			return e.item.Text()
		}
	}
	return ""
}

// IsRequired resolves the required constraint against value. Renderers use it
// for required markers.
func (v *Validation[V]) IsRequired(value V) bool {
	on, ok := v.rules.Required.Resolve(value)
	return ok && on
}

// Dependencies returns every sibling name declared by any item, sorted.
func (v *Validation[V]) Dependencies() []string {
	var names []string
	for _, e := range v.rules.items() {
		names = append(names, e.item.Dependencies()...)
	}
	slices.Sort(names)
	return slices.Compact(names)
}

// Validators builds the synchronous validator pipeline in evaluation order.
func (v *Validation[V]) Validators(read Reader[V]) []control.ValidatorFn {
	if read == nil {
		read = Cast[V]()
	}
	var done Complete
	if v.revalidator != nil {
		done = v.revalidator.Complete
	}

	r := v.rules
	var fns []control.ValidatorFn
	add := func(fn control.ValidatorFn) { fns = append(fns, fn) }

	if r.Required != nil {
		add(r.Required.Validate(read, flag(KindRequired, validator.Required), done))
	}
	if r.RequiredTrue != nil {
		add(r.RequiredTrue.Validate(read, flag(KindRequiredTrue, validator.RequiredTrue), done))
	}
	if r.MinLength != nil {
		add(r.MinLength.Validate(read, Binding[int]{Kind: KindMinLength, Rule: validator.MinLength}, done))
	}
	if r.MaxLength != nil {
		add(r.MaxLength.Validate(read, Binding[int]{Kind: KindMaxLength, Rule: validator.MaxLength}, done))
	}
	if r.Min != nil {
		add(r.Min.Validate(read, Binding[float64]{Kind: KindMin, Rule: validator.Min}, done))
	}
	if r.Max != nil {
		add(r.Max.Validate(read, Binding[float64]{Kind: KindMax, Rule: validator.Max}, done))
	}
	if r.MinDate != nil {
		add(r.MinDate.Validate(read, Binding[time.Time]{Kind: KindMinDate, Rule: validator.MinDate}, done))
	}
	if r.MinOrEqualDate != nil {
		add(r.MinOrEqualDate.Validate(read, Binding[time.Time]{Kind: KindMinOrEqualDate, Rule: validator.MinOrEqualDate}, done))
	}
	if r.MaxDate != nil {
		add(r.MaxDate.Validate(read, Binding[time.Time]{Kind: KindMaxDate, Rule: validator.MaxDate}, done))
	}
	if r.MaxOrEqualDate != nil {
		add(r.MaxOrEqualDate.Validate(read, Binding[time.Time]{Kind: KindMaxOrEqualDate, Rule: validator.MaxOrEqualDate}, done))
	}
	if r.Pattern != nil {
		add(r.Pattern.Validate(read, Binding[string]{Kind: KindPattern, Rule: validator.Pattern}, done))
	}
	if r.Custom != nil {
		add(r.Custom.Validate(read, Binding[Check[V]]{
			Kind: KindCustom,
			Rule: func(field string, value any, check Check[V]) validator.Rule {
				return validator.Check(field, KindCustom, "is invalid", func() bool {
					typed, _ := value.(V)
					return check == nil || check(typed)
				})
			},
			Expected: func(Check[V]) any { return true },
		}, done))
	}
	if r.Native != nil {
		add(r.Native.Validate(read, Binding[string]{Kind: KindNative, Rule: validator.Native}, done))
	}
	return fns
}

func flag(kind string, rule func(field string, value any) validator.Rule) Binding[bool] {
	return Binding[bool]{
		Kind: kind,
		Rule: func(field string, value any, on bool) validator.Rule {
			if !on {
				return validator.Rule{}
			}
			return rule(field, value)
		},
	}
}

// AsyncValidators builds the async pipeline. The parameter of the async item
// is resolved off the event loop, so resolvers must not touch controls.
func (v *Validation[V]) AsyncValidators(read Reader[V]) []control.AsyncValidatorFn {
	item := v.rules.Async
	if item == nil {
		return nil
	}
	if read == nil {
		read = Cast[V]()
	}

	return []control.AsyncValidatorFn{func(ctx context.Context, raw any) (control.Errors, error) {
		value := read(raw)
		check, ok := item.Resolve(value)
		if !ok || check == nil {
			return nil, nil
		}

		passed, err := check(ctx, value)
		if err != nil {
			return nil, err
		}
		if passed {
			return nil, nil
		}
		return control.Errors{KindAsync: Detail{Expected: true, Text: item.Text(), Message: "is invalid"}}, nil
	}}
}

// Apply rebuilds both pipelines and assigns them to c together with the
// declared dependencies. The status is not recomputed.
func (v *Validation[V]) Apply(c control.AbstractControl, read Reader[V]) {
	c.SetValidators(v.Validators(read)...)
	c.SetAsyncValidators(v.AsyncValidators(read)...)
	c.SetDependencies(v.Dependencies()...)
}
