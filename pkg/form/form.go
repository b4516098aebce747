package form

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/goccy/go-json"

	"github.com/dmitrymomot/formkit/pkg/async"
	"github.com/dmitrymomot/formkit/pkg/config"
	"github.com/dmitrymomot/formkit/pkg/control"
	"github.com/dmitrymomot/formkit/pkg/field"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/scheduler"
)

// Editor is anything that owns a form, typically a struct embedding BaseEditor.
type Editor interface {
	Form() *Form
}

// Form aggregates fields and nested editor forms into one control tree.
// Like its fields, a form is driven from the goroutine running its scheduler.
type Form struct {
	group   *control.Group
	fields  []field.Member
	editors []*Form

	sched        *scheduler.Scheduler
	logger       *slog.Logger
	asyncTimeout time.Duration
	destroyed    bool
}

// New creates an empty form.
func New(opts ...Option) *Form {
	f := &Form{
		group:        control.NewGroup(),
		logger:       logger.Discard(),
		asyncTimeout: config.Current().AsyncValidationTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.sched == nil {
		f.sched = scheduler.Default()
	}
	f.logger = f.logger.With(logger.Component("form"))
	return f
}

// AddField registers the field's control under its name and enables it
// unless the field was configured as disabled.
func (f *Form) AddField(m field.Member) error {
	if f.destroyed {
		return ErrDestroyed
	}
	if m == nil {
		return ErrNilField
	}
	name := m.Name()
	if name == "" {
		return ErrFieldNameRequired
	}
	if f.group.Contains(name) {
		return fmt.Errorf("%w: %q", ErrDuplicateField, name)
	}
	if err := f.group.Add(name, m.Control()); err != nil {
		return fmt.Errorf("form: add field %q: %w", name, err)
	}

	f.fields = append(f.fields, m)
	if !m.ExplicitlyDisabled() {
		m.Control().Enable()
	}
	return nil
}

// MustAddField is AddField that panics on error.
func (f *Form) MustAddField(m field.Member) {
	if err := f.AddField(m); err != nil {
		panic(err)
	}
}

// RemoveField unregisters the field. It reports whether the field belonged
// to the form.
func (f *Form) RemoveField(m field.Member) bool {
	if m == nil {
		return false
	}
	i := slices.Index(f.fields, m)
	if i < 0 {
		return false
	}
	f.fields = slices.Delete(f.fields, i, i+1)
	if c, ok := f.group.Get(m.Name()); ok && c == control.AbstractControl(m.Control()) {
		f.group.Remove(m.Name())
	}
	return true
}

// AddEditor attaches the editor's form group under key.
func (f *Form) AddEditor(key string, e Editor) error {
	if f.destroyed {
		return ErrDestroyed
	}
	if e == nil || e.Form() == nil {
		return ErrNilEditor
	}
	if key == "" {
		return ErrFieldNameRequired
	}
	if f.group.Contains(key) {
		return fmt.Errorf("%w: %q", ErrDuplicateField, key)
	}
	nested := e.Form()
	if err := f.group.Add(key, nested.group); err != nil {
		return fmt.Errorf("form: add editor %q: %w", key, err)
	}
	f.editors = append(f.editors, nested)
	return nil
}

// Fields returns a snapshot of the directly registered fields.
func (f *Form) Fields() []field.Member { return slices.Clone(f.fields) }

// Field looks a directly registered field up by name.
func (f *Form) Field(name string) (field.Member, bool) {
	i := slices.IndexFunc(f.fields, func(m field.Member) bool { return m.Name() == name })
	if i < 0 {
		return nil, false
	}
	return f.fields[i], true
}

// Group returns the root control group.
func (f *Form) Group() *control.Group { return f.group }

func (f *Form) Valid() bool   { return f.group.Valid() }
func (f *Form) Invalid() bool { return f.group.Invalid() }
func (f *Form) Pending() bool { return f.group.Pending() }

// Descendants returns every control of the tree, children before their
// parents, ending with the root group.
func (f *Form) Descendants() []control.AbstractControl {
	return control.Descendants(f.group)
}

// MarkAsTouched touches every descendant, groups and arrays included.
func (f *Form) MarkAsTouched() {
	for _, c := range f.Descendants() {
		c.MarkAsTouched(control.OnlySelf())
	}
}

// MarkAsUntouched resets the touched flag of every descendant.
func (f *Form) MarkAsUntouched() {
	for _, c := range f.Descendants() {
		c.MarkAsUntouched(control.OnlySelf())
	}
}

// Validate touches every descendant and reruns its validators so latent
// errors surface. It reports whether the form is valid.
func (f *Form) Validate() bool {
	f.MarkAsTouched()
	for _, c := range f.Descendants() {
		c.UpdateValueAndValidity(control.OnlySelf())
	}
	return f.Valid()
}

// ValidateAsync validates synchronously, then runs the async validators of
// every enabled descendant without synchronous errors. Errors are assigned
// once all of them have finished. If any validator fails, no async errors are
// assigned and the joined error is returned.
func (f *Form) ValidateAsync(ctx context.Context) (bool, error) {
	f.Validate()

	var targets []control.AbstractControl
	for _, c := range f.Descendants() {
		if c.Enabled() && len(c.Errors()) == 0 && c.HasAsyncValidator() {
			targets = append(targets, c)
		}
	}
	if len(targets) == 0 {
		return f.Valid(), nil
	}

	if f.asyncTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.asyncTimeout)
		defer cancel()
	}

	futures := make([]*async.Future[control.Errors], len(targets))
	for i, c := range targets {
		c.MarkAsPending(control.OnlySelf())
		futures[i] = async.Async(ctx, c.Value(), c.RunAsyncValidator)
	}

	results, err := async.WaitAll(futures...)
	if err != nil {
		f.logger.Warn("async validation failed",
			logger.Count(len(targets)),
			logger.Error(err),
		)
		for _, c := range targets {
			c.SetErrors(c.Errors(), control.OnlySelf())
		}
		return f.Valid(), err
	}

	for i, c := range targets {
		c.SetErrors(control.Merge(c.Errors(), results[i]), control.OnlySelf())
	}
	return f.Valid(), nil
}

// Wait drives the form scheduler until queued revalidations and option loads
// have settled.
func (f *Form) Wait(ctx context.Context) error { return f.sched.Wait(ctx) }

// Value returns the values of the enabled controls keyed by name.
func (f *Form) Value() map[string]any {
	v, _ := f.group.Value().(map[string]any)
	return v
}

// MarshalJSON encodes the form value.
func (f *Form) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.Value())
}

// Destroy destroys every field, nested editor form and the root group.
func (f *Form) Destroy() {
	if f.destroyed {
		return
	}
	f.destroyed = true
	for _, m := range f.fields {
		m.Destroy()
	}
	for _, e := range f.editors {
		e.Destroy()
	}
	f.group.Destroy()
}

func (f *Form) Destroyed() bool { return f.destroyed }
