// Package form aggregates fields into a control tree and drives bulk
// operations over it: touching, synchronous validation, join-all async
// validation and error export.
//
// Forms are built explicitly, either field by field with AddField, from a
// Schema with Create, or with a Builder. Editor models embed BaseEditor and
// list their members in a Schema method; nested editors become nested groups
// named after their entry, so the tree mirrors the model:
//
//	f, err := form.NewBuilder().
//		Field("email", email).
//		Editor("address", address).
//		Build()
//
//	if !f.Validate() {
//		return f.Errors()
//	}
//
// A field joining a form is enabled unless it was configured disabled.
// Adding a field without a name or under a taken name fails with
// ErrFieldNameRequired or ErrDuplicateField.
package form
