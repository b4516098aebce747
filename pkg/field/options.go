package field

import (
	"context"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/dmitrymomot/formkit/pkg/control"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/option"
	"github.com/dmitrymomot/formkit/pkg/scheduler"
)

// Options returns a copy of the current option list.
func (f *Field[V, O]) Options() []O { return slices.Clone(f.options) }

// Multi reports whether the field holds several selected elements.
func (f *Field[V, O]) Multi() bool { return f.sel.Multi() }

func (f *Field[V, O]) OptionID(o O) any              { return f.resolver.ID(o) }
func (f *Field[V, O]) OptionLabel(o O) string        { return f.resolver.Label(o) }
func (f *Field[V, O]) OptionDisplayLabel(o O) string { return f.resolver.DisplayLabel(o) }
func (f *Field[V, O]) OptionGroupLabel(o O) string   { return f.resolver.Group(o) }
func (f *Field[V, O]) OptionDisabled(o O) bool       { return f.resolver.Disabled(o) }
func (f *Field[V, O]) OptionValue(o O) any           { return f.sel.Value(o) }

// OnOptionsChange subscribes to option list replacements.
func (f *Field[V, O]) OnOptionsChange(fn func([]O)) (unsubscribe func()) {
	if f.destroyed {
		return func() {}
	}
	return f.optionSubs.Add(fn)
}

// SetOptions replaces the option list. The current selection is rebound to
// the new options (by id, then by value) without a value notification, the
// control re-emits its status and subscribers are told about the new list.
func (f *Field[V, O]) SetOptions(opts []O) {
	if f.destroyed {
		return
	}
	f.options = slices.Clone(opts)
	f.reconcile()
	f.ctrl.SetErrors(f.ctrl.Errors(), control.OnlySelf())
	f.optionSubs.Emit(f.Options())

	deferred := f.deferred
	f.deferred = nil
	for _, fn := range deferred {
		fn()
	}
}

func (f *Field[V, O]) reconcile() {
	elems := f.sel.Elements(f.Value())
	if len(elems) == 0 {
		return
	}

	changed := false
	next := slices.Clone(elems)
	for i, e := range elems {
		o, ok := f.match(e)
		if !ok {
			continue
		}
		if v := f.sel.Value(o); !identical(v, e) {
			next[i] = v
			changed = true
		}
	}
	if changed {
		f.write(f.sel.Compose(next), false)
	}
}

// match finds the option an element stands for: by id first, then by value.
func (f *Field[V, O]) match(elem any) (O, bool) {
	if id := f.sel.ID(elem); id != nil {
		if o, ok := option.First(f.options, func(o O) bool { return identical(f.resolver.ID(o), id) }); ok {
			return o, true
		}
	}
	return option.First(f.options, func(o O) bool { return identical(f.sel.Value(o), elem) })
}

// elemID returns the key an element is compared by.
func (f *Field[V, O]) elemID(elem any) any {
	if id := f.sel.ID(elem); id != nil {
		return id
	}
	if o, ok := f.match(elem); ok {
		return f.resolver.ID(o)
	}
	return elem
}

// Selected returns the options matching the current value.
func (f *Field[V, O]) Selected() []O {
	var out []O
	for _, e := range f.sel.Elements(f.Value()) {
		if o, ok := f.match(e); ok {
			out = append(out, o)
		}
	}
	return out
}

func (f *Field[V, O]) write(value V, emit bool) {
	opts := []control.UpdateOption{control.OnlySelf()}
	if !emit {
		opts = append(opts, control.Silent())
	}
	f.ctrl.SetValue(f.conv.ToControl(value), opts...)
}

// SelectOption tunes SetFromOptions.
type SelectOption[V any] func(*selectOptions[V])

type selectOptions[V any] struct {
	def    V
	hasDef bool
	emit   bool
}

// WithDefault is used when no option matches.
func WithDefault[V any](value V) SelectOption[V] {
	return func(o *selectOptions[V]) {
		o.def = value
		o.hasDef = true
	}
}

// WithEmit sets whether the write notifies value subscribers. Default true.
func WithEmit[V any](emit bool) SelectOption[V] {
	return func(o *selectOptions[V]) { o.emit = emit }
}

// SetFromOptions selects the options matching pred. Multi-valued fields
// write only when the selected ids change; single-valued fields write when
// the id or the presence of a value changes. While options are loading the
// selection waits for the next option list. The returned channel closes
// once the selection has been applied.
func (f *Field[V, O]) SetFromOptions(pred func(O) bool, opts ...SelectOption[V]) <-chan struct{} {
	o := selectOptions[V]{emit: true}
	for _, opt := range opts {
		opt(&o)
	}

	done := make(chan struct{})
	apply := func() {
		defer close(done)
		f.setFromOptions(pred, o)
	}
	if f.querying {
		f.deferred = append(f.deferred, apply)
		return done
	}
	apply()
	return done
}

func (f *Field[V, O]) setFromOptions(pred func(O) bool, o selectOptions[V]) {
	if f.destroyed {
		return
	}
	matched := option.Filter(f.options, pred)
	cur := f.sel.Elements(f.Value())

	var target V
	switch {
	case len(matched) > 0 && f.sel.Multi():
		target = f.sel.Compose(lo.Map(matched, func(m O, _ int) any { return f.sel.Value(m) }))
	case len(matched) > 0:
		target = f.sel.Compose([]any{f.sel.Value(matched[0])})
	case o.hasDef:
		target = o.def
	}
	next := f.sel.Elements(target)

	if f.sel.Multi() {
		curIDs := lo.Map(cur, func(e any, _ int) any { return f.elemID(e) })
		nextIDs := lo.Map(next, func(e any, _ int) any { return f.elemID(e) })
		if len(option.SymmetricDifference(curIDs, nextIDs)) == 0 {
			return
		}
	} else {
		if (len(cur) == 0) == (len(next) == 0) {
			if len(cur) == 0 || identical(f.elemID(cur[0]), f.elemID(next[0])) {
				return
			}
		}
	}

	f.write(target, o.emit)
}

// FilteredOptions returns the options accepted by the filter for query.
// Without OptionsFilter labels are matched case-insensitively.
func (f *Field[V, O]) FilteredOptions(query string) []O {
	query = strings.TrimSpace(query)
	if query == "" {
		return f.Options()
	}
	filter := f.filter
	if filter == nil {
		q := strings.ToLower(query)
		filter = func(o O, _ string) bool {
			return strings.Contains(strings.ToLower(f.resolver.Label(o)), q)
		}
	}
	return option.Filter(f.options, func(o O) bool { return filter(o, query) })
}

// LoadOptions replaces the options with the result of src. Only the latest
// load is applied: starting a new one cancels the previous context and its
// late result is dropped. While loading the field is querying and the
// control pending. A failed load yields an empty list. The returned channel
// closes when this load settles, applied or not.
func (f *Field[V, O]) LoadOptions(ctx context.Context, src OptionsSource[O]) <-chan struct{} {
	done := make(chan struct{})
	f.load(ctx, src, done)
	return done
}

func (f *Field[V, O]) load(ctx context.Context, src OptionsSource[O], done chan struct{}) {
	if f.destroyed || src == nil {
		close(done)
		return
	}
	if f.cancelLoad != nil {
		f.cancelLoad()
	}
	ctx, cancel := context.WithCancel(ctx)
	f.cancelLoad = cancel
	f.loadVersion++
	version := f.loadVersion

	f.querying = true
	f.ctrl.MarkAsPending(control.OnlySelf())

	scheduler.Go(f.sched, ctx, func(ctx context.Context) ([]O, error) {
		return src(ctx)
	}, func(opts []O, err error) {
		defer close(done)
		defer cancel()

		if f.destroyed || version != f.loadVersion {
			f.logger.Debug("stale options discarded", logger.Field(f.name), logger.Version(version))
			return
		}
		f.cancelLoad = nil
		if err != nil {
			f.logger.Warn("options load failed",
				logger.Field(f.name),
				logger.Version(version),
				logger.Error(err),
			)
			opts = nil
		}
		f.querying = false
		f.SetOptions(opts)
	})
}

// Search loads options for query through the OptionsProvider after the
// debounce delay. A newer call replaces a pending one; the replaced call's
// channel closes immediately.
func (f *Field[V, O]) Search(ctx context.Context, query string) <-chan struct{} {
	done := make(chan struct{})
	if f.destroyed || f.provider == nil {
		if f.provider == nil {
			f.logger.Debug("search without provider", logger.Field(f.name), logger.Error(ErrNoProvider))
		}
		close(done)
		return done
	}

	f.stopSearch()
	provider := f.provider
	f.searchDone = done
	f.searchStop = f.sched.AfterFunc(f.debounce, func() {
		if f.searchDone == done {
			f.searchStop = nil
			f.searchDone = nil
		}
		f.load(ctx, func(ctx context.Context) ([]O, error) {
			return provider(ctx, query)
		}, done)
	})
	return done
}

func (f *Field[V, O]) stopSearch() {
	if f.searchStop != nil && f.searchStop() {
		close(f.searchDone)
	}
	f.searchStop = nil
	f.searchDone = nil
}
