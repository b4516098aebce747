package control

// Control is a leaf control holding a single value.
type Control struct {
	base
	value   any
	initial any
}

// New creates a leaf control and runs its validators once without emitting.
func New(value any, opts ...Option) *Control {
	c := &Control{value: value, initial: value}
	c.init(c, opts)
	c.UpdateValueAndValidity(OnlySelf(), Silent())
	return c
}

func (c *Control) Value() any { return c.value }

// Initial returns the value the control was created with.
func (c *Control) Initial() any { return c.initial }

// SetValue writes the value and revalidates.
func (c *Control) SetValue(value any, opts ...UpdateOption) {
	c.value = value
	c.UpdateValueAndValidity(opts...)
}

// Reset restores the initial value and clears touched and dirty flags.
func (c *Control) Reset(opts ...UpdateOption) {
	c.value = c.initial
	c.touched = false
	c.dirty = false
	c.UpdateValueAndValidity(opts...)
}
