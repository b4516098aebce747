// Package formkit is a toolkit for reactive form state in Go.
//
// It models a form as a tree of controls holding values, validation state,
// touched and enabled flags, with status derived on read. On top of that tree
// it adds typed fields with converters and option lists, declarative
// validation with cross-field revalidation, and forms that aggregate fields
// and export errors ready for translation.
//
// The library is organised into packages under pkg/:
//
//   - pkg/control: the control tree (Control, Group, Array) and status rules
//   - pkg/validator: the rule catalogue and translatable validation errors
//   - pkg/validation: declarative validation of a single control, sync and async
//   - pkg/field: typed fields with converters, options, search and hooks
//   - pkg/option: option resolution and list helpers
//   - pkg/form: forms, schemas, editors and error export
//   - pkg/optionsource: Postgres, OpenSearch and cached option providers
//   - pkg/i18n: translations of validation messages
//   - pkg/scheduler: the microtask and timer loop that drives updates
//   - pkg/async, pkg/cache, pkg/config, pkg/logger: supporting infrastructure
//
// Basic Usage:
//
//	email := field.New(field.Config[string, option.Option[string]]{
//		Name:       "email",
//		Validation: validation.Rules[string]{
//			Required: validation.Required[string](),
//			Native:   validation.Const[string]("email"),
//		},
//	})
//
//	f, err := form.NewBuilder().Field("email", email).Build()
//	if err != nil {
//		return err
//	}
//
//	email.SetValue("not-an-email")
//	if !f.Validate() {
//		return f.Errors()
//	}
//
// All state changes happen on the scheduler loop of the form. Callers that
// start background work, such as option loads or debounced searches, call
// Form.Wait to let it settle.
package formkit
