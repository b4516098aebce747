package control

import (
	"slices"
)

// Group is a keyed, ordered collection of controls.
type Group struct {
	base
	names    []string
	controls map[string]AbstractControl
}

// NewGroup creates an empty group.
func NewGroup(opts ...Option) *Group {
	g := &Group{controls: make(map[string]AbstractControl)}
	g.init(g, opts)
	g.UpdateValueAndValidity(OnlySelf(), Silent())
	return g
}

// Add attaches a control under name and revalidates the group.
func (g *Group) Add(name string, c AbstractControl, opts ...UpdateOption) error {
	if name == "" {
		return ErrEmptyName
	}
	if c == nil {
		return ErrNilControl
	}
	if _, ok := g.controls[name]; ok {
		return ErrDuplicateControl
	}
	if c.Parent() != nil {
		return ErrAlreadyAttached
	}

	c.core().parent = g
	g.names = append(g.names, name)
	g.controls[name] = c
	g.UpdateValueAndValidity(opts...)
	return nil
}

// Remove detaches the named control. The detached control is returned.
func (g *Group) Remove(name string, opts ...UpdateOption) (AbstractControl, bool) {
	c, ok := g.controls[name]
	if !ok {
		return nil, false
	}

	c.core().parent = nil
	delete(g.controls, name)
	g.names = slices.DeleteFunc(g.names, func(n string) bool { return n == name })
	g.UpdateValueAndValidity(opts...)
	return c, true
}

// Get returns the named control.
func (g *Group) Get(name string) (AbstractControl, bool) {
	c, ok := g.controls[name]
	return c, ok
}

// Contains reports whether a control is registered under name.
func (g *Group) Contains(name string) bool {
	_, ok := g.controls[name]
	return ok
}

// NameOf returns the name a direct child is registered under.
func (g *Group) NameOf(c AbstractControl) (string, bool) {
	for _, name := range g.names {
		if g.controls[name] == c {
			return name, true
		}
	}
	return "", false
}

// Names returns child names in insertion order.
func (g *Group) Names() []string { return slices.Clone(g.names) }

func (g *Group) Len() int { return len(g.names) }

func (g *Group) Children() []AbstractControl {
	out := make([]AbstractControl, 0, len(g.names))
	for _, name := range g.names {
		out = append(out, g.controls[name])
	}
	return out
}

// Disabled reports true when every child is disabled. An empty group uses
// its own flag.
func (g *Group) Disabled() bool {
	if len(g.names) == 0 {
		return g.disabled
	}
	for _, c := range g.controls {
		if c.Enabled() {
			return false
		}
	}
	return true
}

// Value returns the values of enabled children keyed by name. A disabled
// group reports every child.
func (g *Group) Value() any {
	all := g.Disabled()
	out := make(map[string]any, len(g.names))
	for _, name := range g.names {
		c := g.controls[name]
		if all || c.Enabled() {
			out[name] = c.Value()
		}
	}
	return out
}

// RawValue returns the values of every child regardless of state.
func (g *Group) RawValue() map[string]any {
	out := make(map[string]any, len(g.names))
	for _, name := range g.names {
		out[name] = g.controls[name].Value()
	}
	return out
}
