package control

import (
	"context"
	"slices"

	"github.com/dmitrymomot/formkit/pkg/async"
)

// base holds the state shared by every control kind. Methods that depend on
// the concrete kind (Value, Children, Disabled) dispatch through self.
type base struct {
	self   AbstractControl
	parent AbstractControl

	disabled bool
	touched  bool
	dirty    bool
	pending  bool
	errors   Errors

	validator       ValidatorFn
	asyncValidators []AsyncValidatorFn
	deps            map[string]struct{}

	valueSubs   Listeners[any]
	statusSubs  Listeners[Status]
	destroySubs Listeners[struct{}]
	destroyed   bool
}

// Option configures a control at construction time.
type Option func(*base)

// WithValidators sets the synchronous validators.
func WithValidators(fns ...ValidatorFn) Option {
	return func(b *base) { b.validator = Compose(fns...) }
}

// WithAsyncValidators sets the asynchronous validators.
func WithAsyncValidators(fns ...AsyncValidatorFn) Option {
	return func(b *base) { b.setAsyncValidators(fns) }
}

// WithDisabled creates the control in the disabled state.
func WithDisabled(disabled bool) Option {
	return func(b *base) { b.disabled = disabled }
}

// WithDependencies declares the sibling names this control's validators read.
func WithDependencies(names ...string) Option {
	return func(b *base) { b.setDependencies(names) }
}

func (b *base) init(self AbstractControl, opts []Option) {
	b.self = self
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}
}

func (b *base) core() *base { return b }

func (b *base) Parent() AbstractControl { return b.parent }

// Root returns the top-most ancestor, or the control itself.
func (b *base) Root() AbstractControl {
	var root AbstractControl = b.self
	for root.Parent() != nil {
		root = root.Parent()
	}
	return root
}

func (b *base) Children() []AbstractControl { return nil }

func (b *base) Disabled() bool { return b.disabled }

func (b *base) Enabled() bool { return !b.self.Disabled() }

// Status derives the status from the control's own state and its enabled children.
func (b *base) Status() Status {
	if b.self.Disabled() {
		return StatusDisabled
	}
	if b.pending {
		return StatusPending
	}
	if len(b.errors) > 0 {
		return StatusInvalid
	}

	pending := false
	for _, child := range b.self.Children() {
		switch child.Status() {
		case StatusInvalid:
			return StatusInvalid
		case StatusPending:
			pending = true
		}
	}
	if pending {
		return StatusPending
	}
	return StatusValid
}

func (b *base) Valid() bool   { return b.self.Status() == StatusValid }
func (b *base) Invalid() bool { return b.self.Status() == StatusInvalid }
func (b *base) Pending() bool { return b.self.Status() == StatusPending }

func (b *base) Enable(opts ...UpdateOption) {
	o := resolve(opts)
	for _, child := range b.self.Children() {
		child.Enable(OnlySelf(), EmitEvent(o.emitEvent))
	}
	b.disabled = false
	b.self.UpdateValueAndValidity(OnlySelf(), EmitEvent(o.emitEvent))
	b.updateAncestors(o)
}

func (b *base) Disable(opts ...UpdateOption) {
	o := resolve(opts)
	b.disabled = true
	b.errors = nil
	b.pending = false
	for _, child := range b.self.Children() {
		child.Disable(OnlySelf(), EmitEvent(o.emitEvent))
	}
	if o.emitEvent {
		b.valueSubs.Emit(b.self.Value())
		b.statusSubs.Emit(b.self.Status())
	}
	b.updateAncestors(o)
}

func (b *base) updateAncestors(o updateOptions) {
	if o.onlySelf || b.parent == nil {
		return
	}
	b.parent.UpdateValueAndValidity(EmitEvent(o.emitEvent))
	b.parent.core().updateTouched(o)
	b.parent.core().updatePristine(o)
}

func (b *base) Errors() Errors { return b.errors }

func (b *base) HasError(kind string) bool { return b.errors.Has(kind) }

// SetErrors replaces the errors without running validators. It also ends a
// pending state and re-emits the status, which callers use to refresh
// observers after a silent write.
func (b *base) SetErrors(errs Errors, opts ...UpdateOption) {
	o := resolve(opts)
	b.errors = normalize(errs)
	b.pending = false
	if o.emitEvent {
		b.statusSubs.Emit(b.self.Status())
	}
	b.notifyAncestors(o)
}

// MarkAsPending flags the control as waiting on background work.
func (b *base) MarkAsPending(opts ...UpdateOption) {
	o := resolve(opts)
	b.pending = true
	if o.emitEvent {
		b.statusSubs.Emit(b.self.Status())
	}
	b.notifyAncestors(o)
}

func (b *base) notifyAncestors(o updateOptions) {
	if o.onlySelf || !o.emitEvent {
		return
	}
	for p := b.parent; p != nil; p = p.Parent() {
		p.core().statusSubs.Emit(p.Status())
	}
}

func (b *base) Touched() bool { return b.touched }

func (b *base) MarkAsTouched(opts ...UpdateOption) {
	o := resolve(opts)
	b.touched = true
	if !o.onlySelf && b.parent != nil {
		b.parent.MarkAsTouched(opts...)
	}
}

func (b *base) MarkAsUntouched(opts ...UpdateOption) {
	o := resolve(opts)
	b.touched = false
	for _, child := range b.self.Children() {
		child.MarkAsUntouched(OnlySelf())
	}
	if !o.onlySelf && b.parent != nil {
		b.parent.core().updateTouched(o)
	}
}

func (b *base) updateTouched(o updateOptions) {
	b.touched = slices.ContainsFunc(b.self.Children(), AbstractControl.Touched)
	if !o.onlySelf && b.parent != nil {
		b.parent.core().updateTouched(o)
	}
}

func (b *base) Dirty() bool { return b.dirty }

func (b *base) MarkAsDirty(opts ...UpdateOption) {
	o := resolve(opts)
	b.dirty = true
	if !o.onlySelf && b.parent != nil {
		b.parent.MarkAsDirty(opts...)
	}
}

func (b *base) MarkAsPristine(opts ...UpdateOption) {
	o := resolve(opts)
	b.dirty = false
	for _, child := range b.self.Children() {
		child.MarkAsPristine(OnlySelf())
	}
	if !o.onlySelf && b.parent != nil {
		b.parent.core().updatePristine(o)
	}
}

func (b *base) updatePristine(o updateOptions) {
	b.dirty = slices.ContainsFunc(b.self.Children(), AbstractControl.Dirty)
	if !o.onlySelf && b.parent != nil {
		b.parent.core().updatePristine(o)
	}
}

func (b *base) Validator() ValidatorFn { return b.validator }

// SetValidators replaces the synchronous validators. The status is not
// recomputed until UpdateValueAndValidity runs.
func (b *base) SetValidators(fns ...ValidatorFn) {
	b.validator = Compose(fns...)
}

func (b *base) SetAsyncValidators(fns ...AsyncValidatorFn) {
	b.setAsyncValidators(fns)
}

func (b *base) setAsyncValidators(fns []AsyncValidatorFn) {
	b.asyncValidators = slices.DeleteFunc(slices.Clone(fns), func(fn AsyncValidatorFn) bool { return fn == nil })
}

func (b *base) HasAsyncValidator() bool { return len(b.asyncValidators) > 0 }

// RunAsyncValidator runs every async validator concurrently against value and
// merges their errors. Control state is not modified; the caller decides
// where the result goes.
func (b *base) RunAsyncValidator(ctx context.Context, value any) (Errors, error) {
	fns := slices.Clone(b.asyncValidators)
	if len(fns) == 0 {
		return nil, nil
	}

	futures := make([]*async.Future[Errors], len(fns))
	for i, fn := range fns {
		futures[i] = async.Async(ctx, value, func(ctx context.Context, v any) (Errors, error) {
			return fn(ctx, v)
		})
	}

	results, err := async.WaitAll(futures...)
	if err != nil {
		return nil, err
	}
	return Merge(results...), nil
}

// UpdateValueAndValidity reruns the synchronous validators, emits value and
// status changes and walks up to the parent unless OnlySelf is given.
func (b *base) UpdateValueAndValidity(opts ...UpdateOption) {
	o := resolve(opts)
	if !b.self.Disabled() {
		b.pending = false
		b.errors = b.runValidator()
	}
	if o.emitEvent {
		b.valueSubs.Emit(b.self.Value())
		b.statusSubs.Emit(b.self.Status())
	}
	if !o.onlySelf && b.parent != nil {
		b.parent.UpdateValueAndValidity(EmitEvent(o.emitEvent))
	}
}

func (b *base) runValidator() Errors {
	if b.validator == nil {
		return nil
	}
	return normalize(b.validator(b.self))
}

// Dependencies returns the declared sibling names, sorted.
func (b *base) Dependencies() []string {
	names := make([]string, 0, len(b.deps))
	for name := range b.deps {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// SetDependencies replaces the declared sibling names.
func (b *base) SetDependencies(names ...string) {
	b.setDependencies(names)
}

func (b *base) setDependencies(names []string) {
	b.deps = make(map[string]struct{}, len(names))
	for _, name := range names {
		if name != "" {
			b.deps[name] = struct{}{}
		}
	}
}

func (b *base) DependsOn(name string) bool {
	_, ok := b.deps[name]
	return ok
}

func (b *base) OnValueChange(fn func(value any)) func() {
	if b.destroyed {
		return func() {}
	}
	return b.valueSubs.Add(fn)
}

func (b *base) OnStatusChange(fn func(status Status)) func() {
	if b.destroyed {
		return func() {}
	}
	return b.statusSubs.Add(fn)
}

func (b *base) OnDestroy(fn func()) func() {
	if b.destroyed || fn == nil {
		return func() {}
	}
	return b.destroySubs.Add(func(struct{}) { fn() })
}

// Destroy notifies destroy subscribers and drops every subscription.
// Children are left alone; they may outlive the container.
func (b *base) Destroy() {
	if b.destroyed {
		return
	}
	b.destroyed = true
	b.destroySubs.Emit(struct{}{})
	b.valueSubs.Clear()
	b.statusSubs.Clear()
	b.destroySubs.Clear()
}

func (b *base) Destroyed() bool { return b.destroyed }
