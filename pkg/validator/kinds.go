package validator

// Constraint kinds. They double as error keys on controls and as the suffix
// of translation keys.
const (
	KindRequired       = "required"
	KindRequiredTrue   = "requiredTrue"
	KindMinLength      = "minLength"
	KindMaxLength      = "maxLength"
	KindMin            = "min"
	KindMax            = "max"
	KindMinDate        = "minDate"
	KindMinOrEqualDate = "minOrEqualDate"
	KindMaxDate        = "maxDate"
	KindMaxOrEqualDate = "maxOrEqualDate"
	KindPattern        = "pattern"
	KindCustom         = "custom"
	KindAsync          = "async"
	KindNative         = "native"
)

// Kinds lists every constraint kind in evaluation order.
var Kinds = []string{
	KindRequired,
	KindRequiredTrue,
	KindMinLength,
	KindMaxLength,
	KindMin,
	KindMax,
	KindMinDate,
	KindMinOrEqualDate,
	KindMaxDate,
	KindMaxOrEqualDate,
	KindPattern,
	KindCustom,
	KindAsync,
	KindNative,
}
