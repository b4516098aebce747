package control

import "slices"

// Array is an ordered list of controls.
type Array struct {
	base
	items []AbstractControl
}

// NewArray creates an empty array.
func NewArray(opts ...Option) *Array {
	a := &Array{}
	a.init(a, opts)
	a.UpdateValueAndValidity(OnlySelf(), Silent())
	return a
}

// Push appends a control.
func (a *Array) Push(c AbstractControl, opts ...UpdateOption) error {
	return a.Insert(len(a.items), c, opts...)
}

// Insert places a control at index i.
func (a *Array) Insert(i int, c AbstractControl, opts ...UpdateOption) error {
	if c == nil {
		return ErrNilControl
	}
	if i < 0 || i > len(a.items) {
		return ErrIndexOutOfRange
	}
	if c.Parent() != nil {
		return ErrAlreadyAttached
	}

	c.core().parent = a
	a.items = slices.Insert(a.items, i, c)
	a.UpdateValueAndValidity(opts...)
	return nil
}

// RemoveAt detaches the control at index i.
func (a *Array) RemoveAt(i int, opts ...UpdateOption) (AbstractControl, error) {
	if i < 0 || i >= len(a.items) {
		return nil, ErrIndexOutOfRange
	}

	c := a.items[i]
	c.core().parent = nil
	a.items = slices.Delete(a.items, i, i+1)
	a.UpdateValueAndValidity(opts...)
	return c, nil
}

// At returns the control at index i.
func (a *Array) At(i int) (AbstractControl, bool) {
	if i < 0 || i >= len(a.items) {
		return nil, false
	}
	return a.items[i], true
}

// Clear detaches every control.
func (a *Array) Clear(opts ...UpdateOption) {
	for _, c := range a.items {
		c.core().parent = nil
	}
	a.items = nil
	a.UpdateValueAndValidity(opts...)
}

func (a *Array) Len() int { return len(a.items) }

func (a *Array) Children() []AbstractControl { return slices.Clone(a.items) }

func (a *Array) Disabled() bool {
	if len(a.items) == 0 {
		return a.disabled
	}
	for _, c := range a.items {
		if c.Enabled() {
			return false
		}
	}
	return true
}

// Value returns the values of enabled items. A disabled array reports every item.
func (a *Array) Value() any {
	all := a.Disabled()
	out := make([]any, 0, len(a.items))
	for _, c := range a.items {
		if all || c.Enabled() {
			out = append(out, c.Value())
		}
	}
	return out
}
