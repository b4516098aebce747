package form

import (
	"fmt"
	"slices"

	"github.com/dmitrymomot/formkit/pkg/field"
)

// Entry is one named member of a schema: either a field or a nested editor.
type Entry struct {
	Name   string
	Field  field.Member
	Editor Editor
}

// FieldEntry declares a field under name.
func FieldEntry(name string, m field.Member) Entry { return Entry{Name: name, Field: m} }

// EditorEntry declares a nested editor under name.
func EditorEntry(name string, e Editor) Entry { return Entry{Name: name, Editor: e} }

// Schema lists the members of an editor model in registration order.
type Schema interface {
	Schema() []Entry
}

// Entries is a ready-made Schema.
type Entries []Entry

func (e Entries) Schema() []Entry { return e }

// Create builds a form from schema. Unnamed fields take the entry name,
// nested editors are attached under theirs. Entries whose name is listed in
// ignore are skipped.
func Create(schema Schema, ignore ...string) (*Form, error) {
	return create(schema, ignore)
}

// MustCreate is Create that panics on error.
func MustCreate(schema Schema, ignore ...string) *Form {
	f, err := Create(schema, ignore...)
	if err != nil {
		panic(err)
	}
	return f
}

func create(schema Schema, ignore []string, opts ...Option) (*Form, error) {
	f := New(opts...)
	if schema == nil {
		return f, nil
	}

	for _, e := range schema.Schema() {
		if slices.Contains(ignore, e.Name) {
			continue
		}
		if err := f.addEntry(e); err != nil {
			f.release()
			return nil, err
		}
	}
	return f, nil
}

func (f *Form) addEntry(e Entry) error {
	switch {
	case e.Field != nil:
		if e.Field.Name() == "" {
			if err := e.Field.SetName(e.Name); err != nil {
				return fmt.Errorf("form: name field %q: %w", e.Name, err)
			}
		}
		return f.AddField(e.Field)
	case e.Editor != nil:
		return f.AddEditor(e.Name, e.Editor)
	default:
		return fmt.Errorf("%w: entry %q", ErrNilField, e.Name)
	}
}

// release detaches every member so a failed build leaves fields reusable.
func (f *Form) release() {
	for _, name := range f.group.Names() {
		f.group.Remove(name)
	}
	f.fields = nil
	f.editors = nil
}

// Builder assembles a form from explicit registrations.
type Builder struct {
	entries Entries
	ignore  []string
	opts    []Option
}

// NewBuilder starts a builder; opts configure the built form.
func NewBuilder(opts ...Option) *Builder {
	return &Builder{opts: opts}
}

func (b *Builder) Field(name string, m field.Member) *Builder {
	b.entries = append(b.entries, FieldEntry(name, m))
	return b
}

func (b *Builder) Editor(name string, e Editor) *Builder {
	b.entries = append(b.entries, EditorEntry(name, e))
	return b
}

func (b *Builder) Ignore(names ...string) *Builder {
	b.ignore = append(b.ignore, names...)
	return b
}

// Schema returns the registered entries.
func (b *Builder) Schema() []Entry { return slices.Clone(b.entries) }

// Build creates the form.
func (b *Builder) Build() (*Form, error) {
	return create(b.entries, b.ignore, b.opts...)
}

// BaseEditor is embedded by editor models to own a form built from the
// model's own schema:
//
//	type Vacation struct {
//		form.BaseEditor
//		Start *field.Field[time.Time, time.Time]
//		End   *field.Field[time.Time, time.Time]
//	}
//
//	func (v *Vacation) Schema() []form.Entry {
//		return []form.Entry{form.FieldEntry("start", v.Start), form.FieldEntry("end", v.End)}
//	}
//
//	err := v.Init(v)
type BaseEditor struct {
	form *Form
}

// Init builds the editor form from schema. Calling it twice destroys the
// previous form.
func (e *BaseEditor) Init(schema Schema, ignore ...string) error {
	return e.InitWith(schema, ignore)
}

// InitWith is Init with form options.
func (e *BaseEditor) InitWith(schema Schema, ignore []string, opts ...Option) error {
	f, err := create(schema, ignore, opts...)
	if err != nil {
		return err
	}
	if e.form != nil {
		e.form.Destroy()
	}
	e.form = f
	return nil
}

// Form returns the editor form, nil before Init.
func (e *BaseEditor) Form() *Form { return e.form }

// Destroy destroys the editor form.
func (e *BaseEditor) Destroy() {
	if e.form != nil {
		e.form.Destroy()
	}
}
