// Package validation composes field constraints into control validators.
//
// An Item is one constraint. Its parameter is a constant (Const) or computed
// from the field value on every pass (Func), which is how one field's limit
// can follow another field's live value. A parameter that does not resolve
// switches the constraint off for that pass.
//
// Rules groups the items of a field: required, requiredTrue, minLength,
// maxLength, min, max, minDate, minOrEqualDate, maxDate, maxOrEqualDate,
// pattern, custom, async and native. Validation wraps Rules, supports
// in-place Merge and turns the set into control.ValidatorFn and
// control.AsyncValidatorFn pipelines via Apply.
//
// Failed constraints store a Detail under their kind:
//
//	control.Errors{"minDate": validation.Detail{Expected: start}}
//
// # Cross-field revalidation
//
// Items that read other fields declare them with DependsOn. When a
// constraint passes, the Revalidator looks for siblings in the same group
// that depend on the field and currently fail a complementary kind (min and
// max, minDate and maxDate or maxOrEqualDate, and so on, required against
// required). Those siblings are revalidated on the next scheduler tick, once
// per tick.
//
//	rv := validation.NewRevalidator(sched, log)
//	end := validation.New(validation.Rules[time.Time]{
//	    MinDate: validation.Func(func(time.Time) (time.Time, bool) {
//	        return startField.Value(), true
//	    }).DependsOn("start"),
//	}, validation.WithRevalidator(rv))
package validation
