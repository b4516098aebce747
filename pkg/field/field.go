package field

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/formkit/pkg/config"
	"github.com/dmitrymomot/formkit/pkg/control"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/option"
	"github.com/dmitrymomot/formkit/pkg/scheduler"
	"github.com/dmitrymomot/formkit/pkg/validation"
)

// Field binds a value, its options and its validation to one control.
// A field is driven from the goroutine that runs its scheduler.
type Field[V, O any] struct {
	id       string
	name     string
	ctrl     *control.Control
	conv     Converter[V]
	equal    func(a, b V) bool
	visible  func(V) bool
	format   func(V) string
	rules    *validation.Validation[V]
	disabled *bool

	options  []O
	resolver option.Resolver[O]
	sel      Selection[V, O]
	filter   func(O, string) bool
	provider OptionsProvider[O]

	querying    bool
	loadVersion uint64
	cancelLoad  context.CancelFunc
	deferred    []func()
	optionSubs  control.Listeners[[]O]

	debounce   time.Duration
	searchStop func() bool
	searchDone chan struct{}

	prev        V
	onValue     func(cur, prev V)
	onOptions   func([]O)
	unsubs      []func()
	destroyWith bool
	destroyed   bool

	sched  *scheduler.Scheduler
	logger *slog.Logger
}

// New creates a field from cfg.
func New[V, O any](cfg Config[V, O]) *Field[V, O] {
	f := &Field[V, O]{
		id:          uuid.NewString(),
		name:        cfg.Name,
		conv:        cfg.Converter.withDefaults(),
		equal:       cfg.Equal,
		visible:     cfg.Visible,
		format:      cfg.Format,
		disabled:    cfg.Disabled,
		options:     slices.Clone(cfg.Options),
		resolver:    cfg.Resolver.WithDefaults(),
		sel:         cfg.Selection,
		filter:      cfg.OptionsFilter,
		provider:    cfg.OptionsProvider,
		debounce:    cfg.SearchDebounce,
		prev:        cfg.Value,
		onValue:     cfg.OnValueChange,
		onOptions:   cfg.OnOptionsChange,
		destroyWith: cfg.DestroyWithControl,
		sched:       cfg.Scheduler,
	}
	if f.equal == nil {
		f.equal = deepEqual[V]
	}
	if f.sel == nil {
		f.sel = defaultSelection[V](f.resolver.ID)
	}
	if f.debounce <= 0 {
		f.debounce = config.Current().SearchDebounce
	}
	if f.sched == nil {
		f.sched = scheduler.Default()
	}
	f.logger = logger.OrDiscard(cfg.Logger).With(
		logger.Component("field"),
		slog.String("field_id", f.id),
	)

	startDisabled := cfg.Disabled == nil || *cfg.Disabled
	f.ctrl = control.New(f.conv.ToControl(cfg.Value), control.WithDisabled(startDisabled))
	f.rules = validation.New(cfg.Validation,
		validation.WithRevalidator(validation.NewRevalidator(f.sched, f.logger)))
	f.rules.Apply(f.ctrl, f.read)
	f.ctrl.UpdateValueAndValidity(control.OnlySelf(), control.Silent())

	f.unsubs = append(f.unsubs, f.ctrl.OnValueChange(func(any) { f.valueChanged() }))
	if f.onOptions != nil {
		f.unsubs = append(f.unsubs, f.optionSubs.Add(func(opts []O) {
			f.safeCall("on_options_change", func() { f.onOptions(opts) })
		}))
	}
	if f.destroyWith {
		f.unsubs = append(f.unsubs, f.ctrl.OnDestroy(f.Destroy))
	}

	return f
}

func (f *Field[V, O]) read(raw any) V { return f.conv.FromControl(raw) }

// valueChanged feeds the value hook with (current, previous) pairs while the
// control is enabled.
func (f *Field[V, O]) valueChanged() {
	if f.onValue == nil || f.ctrl.Disabled() {
		return
	}
	cur := f.Value()
	prev := f.prev
	if f.equal(cur, prev) {
		return
	}
	f.prev = cur
	f.safeCall("on_value_change", func() { f.onValue(cur, prev) })
}

func (f *Field[V, O]) safeCall(hook string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			f.logger.Error("hook panicked",
				logger.Field(f.name),
				logger.Hook(hook),
				logger.Panic(r),
			)
		}
	}()
	fn()
}

// ID returns the random identifier assigned at construction.
func (f *Field[V, O]) ID() string { return f.id }

func (f *Field[V, O]) Name() string { return f.name }

// SetName names the field. Attached fields cannot be renamed.
func (f *Field[V, O]) SetName(name string) error {
	if f.ctrl.Parent() != nil {
		return ErrAttached
	}
	f.name = name
	return nil
}

// Control returns the control owned by the field.
func (f *Field[V, O]) Control() *control.Control { return f.ctrl }

// Validation returns the constraint set, e.g. for required markers.
func (f *Field[V, O]) Validation() *validation.Validation[V] { return f.rules }

// ExplicitlyDisabled reports whether the field was configured with Disabled
// set to true.
func (f *Field[V, O]) ExplicitlyDisabled() bool {
	return f.disabled != nil && *f.disabled
}

// Value reads the control value through the converter.
func (f *Field[V, O]) Value() V { return f.read(f.ctrl.Value()) }

// RawValue returns the control value as stored.
func (f *Field[V, O]) RawValue() any { return f.ctrl.Value() }

// AnyValue returns Value boxed, for callers that do not know V.
func (f *Field[V, O]) AnyValue() any { return f.Value() }

// SetValue writes value unless its control form matches the raw value
// already held, or Equal reports it unchanged. The write does not propagate
// to parent groups. It reports whether a write happened.
func (f *Field[V, O]) SetValue(value V) bool {
	if f.destroyed {
		return false
	}
	raw := f.conv.ToControl(value)
	if identical(raw, f.ctrl.Value()) || f.equal(f.Value(), value) {
		return false
	}
	f.ctrl.SetValue(raw, control.OnlySelf())
	return true
}

// FormattedValue renders the value with Format, else with the display
// labels of the selected options, else with fmt.Sprint.
func (f *Field[V, O]) FormattedValue() string {
	value := f.Value()
	if f.format != nil {
		return f.format(value)
	}
	if selected := f.Selected(); len(selected) > 0 {
		labels := make([]string, len(selected))
		for i, o := range selected {
			labels[i] = f.resolver.DisplayLabel(o)
		}
		return strings.Join(labels, ", ")
	}
	if isNil(any(value)) {
		return ""
	}
	return fmt.Sprint(value)
}

// Visible applies the visibility rule to the current value.
func (f *Field[V, O]) Visible() bool {
	if f.visible == nil {
		return true
	}
	return f.visible(f.Value())
}

func (f *Field[V, O]) Enabled() bool  { return f.ctrl.Enabled() }
func (f *Field[V, O]) Disabled() bool { return f.ctrl.Disabled() }
func (f *Field[V, O]) Enable()        { f.ctrl.Enable() }
func (f *Field[V, O]) Disable()       { f.ctrl.Disable() }

// UpdateValidation merges rules into the current constraints in place and
// rebuilds the control pipelines.
func (f *Field[V, O]) UpdateValidation(rules validation.Rules[V]) {
	f.rules.Merge(rules)
	f.rules.Apply(f.ctrl, f.read)
	f.ctrl.UpdateValueAndValidity(control.OnlySelf())
}

// ValidateAsync touches and revalidates the field, then runs the async
// constraint unless a synchronous one already fails.
func (f *Field[V, O]) ValidateAsync(ctx context.Context) (bool, error) {
	f.ctrl.MarkAsTouched(control.OnlySelf())
	f.ctrl.UpdateValueAndValidity(control.OnlySelf())
	if f.ctrl.Disabled() || f.ctrl.Invalid() || !f.ctrl.HasAsyncValidator() {
		return f.ctrl.Valid(), nil
	}

	f.ctrl.MarkAsPending(control.OnlySelf())
	errs, err := f.ctrl.RunAsyncValidator(ctx, f.ctrl.Value())
	if err != nil {
		f.logger.Warn("async validation failed", logger.Field(f.name), logger.Error(err))
		f.ctrl.SetErrors(f.ctrl.Errors(), control.OnlySelf())
		return f.ctrl.Valid(), err
	}
	f.ctrl.SetErrors(control.Merge(f.ctrl.Errors(), errs), control.OnlySelf())
	return f.ctrl.Valid(), nil
}

// IsQuerying reports whether an option load is in flight.
func (f *Field[V, O]) IsQuerying() bool { return f.querying }

// Destroy drops the field's subscriptions and cancels pending option work.
// Late results are discarded. With DestroyWithControl the control is
// destroyed too.
func (f *Field[V, O]) Destroy() {
	if f.destroyed {
		return
	}
	f.destroyed = true

	if f.cancelLoad != nil {
		f.cancelLoad()
		f.cancelLoad = nil
	}
	f.stopSearch()
	for _, unsub := range f.unsubs {
		unsub()
	}
	f.unsubs = nil
	f.optionSubs.Clear()
	f.querying = false

	deferred := f.deferred
	f.deferred = nil
	for _, fn := range deferred {
		fn()
	}

	if f.destroyWith {
		f.ctrl.Destroy()
	}
}

func (f *Field[V, O]) Destroyed() bool { return f.destroyed }
