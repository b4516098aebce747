// Package option defines the label/value/id triple used by choice fields and
// the list helpers that go with it.
//
// Any type can serve as a field option; Resolver tells the field how to read
// its id, label, group and disabled flag. Option[T] implements the lookup
// interfaces, so a zero Resolver works for it out of the box.
//
//	colors := []option.Option[string]{
//	    option.New("r", "Red", "#f00"),
//	    option.New("g", "Green", "#0f0").InGroup("cool"),
//	}
//	option.Sections(colors, func(o option.Option[string]) string { return o.Group })
package option
