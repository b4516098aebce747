package validation

import "github.com/dmitrymomot/formkit/pkg/validator"

// Error kinds, re-exported so callers configuring fields need one import.
const (
	KindRequired       = validator.KindRequired
	KindRequiredTrue   = validator.KindRequiredTrue
	KindMinLength      = validator.KindMinLength
	KindMaxLength      = validator.KindMaxLength
	KindMin            = validator.KindMin
	KindMax            = validator.KindMax
	KindMinDate        = validator.KindMinDate
	KindMinOrEqualDate = validator.KindMinOrEqualDate
	KindMaxDate        = validator.KindMaxDate
	KindMaxOrEqualDate = validator.KindMaxOrEqualDate
	KindPattern        = validator.KindPattern
	KindCustom         = validator.KindCustom
	KindAsync          = validator.KindAsync
	KindNative         = validator.KindNative
)
