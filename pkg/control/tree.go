package control

import "github.com/samber/lo"

// Descendants flattens the tree rooted at c. Children come before their
// container and c itself is last.
func Descendants(c AbstractControl) []AbstractControl {
	if c == nil {
		return nil
	}
	out := lo.FlatMap(c.Children(), func(child AbstractControl, _ int) []AbstractControl {
		return Descendants(child)
	})
	return append(out, c)
}

// Name returns the name c is registered under in its parent group.
func Name(c AbstractControl) (string, bool) {
	if c == nil {
		return "", false
	}
	g, ok := c.Parent().(*Group)
	if !ok {
		return "", false
	}
	return g.NameOf(c)
}

// Sibling looks up a control registered under name in c's parent group.
func Sibling(c AbstractControl, name string) (AbstractControl, bool) {
	if c == nil {
		return nil, false
	}
	g, ok := c.Parent().(*Group)
	if !ok {
		return nil, false
	}
	return g.Get(name)
}
