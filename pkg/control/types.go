package control

import (
	"context"
	"maps"
	"slices"
)

// Status is the validation status of a control.
type Status string

const (
	StatusValid    Status = "VALID"
	StatusInvalid  Status = "INVALID"
	StatusPending  Status = "PENDING"
	StatusDisabled Status = "DISABLED"
)

// Errors maps an error kind (constraint name) to its details.
// A nil or empty map means the control has no errors.
type Errors map[string]any

// Has reports whether the error kind is present.
func (e Errors) Has(kind string) bool {
	_, ok := e[kind]
	return ok
}

// Kinds returns the error kinds in sorted order.
func (e Errors) Kinds() []string {
	return slices.Sorted(maps.Keys(e))
}

// Merge combines error maps; later maps win on duplicate kinds.
// Returns nil when nothing is left.
func Merge(errs ...Errors) Errors {
	var out Errors
	for _, e := range errs {
		if len(e) == 0 {
			continue
		}
		if out == nil {
			out = make(Errors, len(e))
		}
		maps.Copy(out, e)
	}
	return out
}

func normalize(e Errors) Errors {
	if len(e) == 0 {
		return nil
	}
	return e
}

// ValidatorFn validates a control synchronously. It receives the control
// itself so validators can reach the parent group and siblings.
type ValidatorFn func(c AbstractControl) Errors

// AsyncValidatorFn validates a value snapshot in the background. It must not
// touch controls: it runs off the event loop.
type AsyncValidatorFn func(ctx context.Context, value any) (Errors, error)

// Compose merges the results of several validators into one.
func Compose(fns ...ValidatorFn) ValidatorFn {
	var active []ValidatorFn
	for _, fn := range fns {
		if fn != nil {
			active = append(active, fn)
		}
	}
	if len(active) == 0 {
		return nil
	}

	return func(c AbstractControl) Errors {
		var out Errors
		for _, fn := range active {
			out = Merge(out, fn(c))
		}
		return out
	}
}

// UpdateOption tunes how a state change propagates.
type UpdateOption func(*updateOptions)

type updateOptions struct {
	onlySelf  bool
	emitEvent bool
}

// OnlySelf keeps the change from notifying or updating the parent.
func OnlySelf() UpdateOption {
	return func(o *updateOptions) { o.onlySelf = true }
}

// Silent suppresses value and status notifications.
func Silent() UpdateOption {
	return func(o *updateOptions) { o.emitEvent = false }
}

// EmitEvent sets whether notifications are emitted.
func EmitEvent(emit bool) UpdateOption {
	return func(o *updateOptions) { o.emitEvent = emit }
}

func resolve(opts []UpdateOption) updateOptions {
	o := updateOptions{emitEvent: true}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// AbstractControl is implemented by Control, Group and Array.
type AbstractControl interface {
	Value() any
	Parent() AbstractControl
	Root() AbstractControl
	Children() []AbstractControl

	Status() Status
	Valid() bool
	Invalid() bool
	Pending() bool
	Enabled() bool
	Disabled() bool
	Enable(opts ...UpdateOption)
	Disable(opts ...UpdateOption)

	Errors() Errors
	HasError(kind string) bool
	SetErrors(errs Errors, opts ...UpdateOption)

	Touched() bool
	MarkAsTouched(opts ...UpdateOption)
	MarkAsUntouched(opts ...UpdateOption)
	Dirty() bool
	MarkAsDirty(opts ...UpdateOption)
	MarkAsPristine(opts ...UpdateOption)
	MarkAsPending(opts ...UpdateOption)

	Validator() ValidatorFn
	SetValidators(fns ...ValidatorFn)
	SetAsyncValidators(fns ...AsyncValidatorFn)
	HasAsyncValidator() bool
	RunAsyncValidator(ctx context.Context, value any) (Errors, error)
	UpdateValueAndValidity(opts ...UpdateOption)

	Dependencies() []string
	SetDependencies(names ...string)
	DependsOn(name string) bool

	OnValueChange(fn func(value any)) (unsubscribe func())
	OnStatusChange(fn func(status Status)) (unsubscribe func())
	OnDestroy(fn func()) (unsubscribe func())
	Destroy()
	Destroyed() bool

	core() *base
}
