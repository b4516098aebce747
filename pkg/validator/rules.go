package validator

import (
	"fmt"
	"time"
)

// Required fails when the value is empty (see IsEmpty).
func Required(field string, value any) Rule {
	return Rule{
		Check: func() bool {
			return !IsEmpty(value)
		},
		Error: newError(field, KindRequired, "field is required", nil),
	}
}

// RequiredTrue fails unless the value is the boolean true.
func RequiredTrue(field string, value any) Rule {
	return Rule{
		Check: func() bool {
			rv := indirect(value)
			return rv.IsValid() && rv.Interface() == true
		},
		Error: newError(field, KindRequiredTrue, "must be checked", nil),
	}
}

// MinLength fails when a non-empty string or collection is shorter than min.
func MinLength(field string, value any, min int) Rule {
	return Rule{
		Check: func() bool {
			if IsEmpty(value) {
				return true
			}
			n, ok := Length(value)
			return !ok || n >= min
		},
		Error: newError(field, KindMinLength, fmt.Sprintf("must be at least %d characters long", min),
			map[string]any{"min": min}),
	}
}

// MaxLength fails when a string or collection is longer than max.
func MaxLength(field string, value any, max int) Rule {
	return Rule{
		Check: func() bool {
			n, ok := Length(value)
			return !ok || n <= max
		},
		Error: newError(field, KindMaxLength, fmt.Sprintf("must be at most %d characters long", max),
			map[string]any{"max": max}),
	}
}

// Min fails when a numeric value is strictly less than min.
// Non-numeric and nil values pass.
func Min(field string, value any, min float64) Rule {
	return Rule{
		Check: func() bool {
			n, ok := ToFloat(value)
			return !ok || n >= min
		},
		Error: newError(field, KindMin, fmt.Sprintf("must be at least %v", min),
			map[string]any{"min": min}),
	}
}

// Max fails when a numeric value is strictly greater than max.
func Max(field string, value any, max float64) Rule {
	return Rule{
		Check: func() bool {
			n, ok := ToFloat(value)
			return !ok || n <= max
		},
		Error: newError(field, KindMax, fmt.Sprintf("must be at most %v", max),
			map[string]any{"max": max}),
	}
}

// MinDate fails when the value is strictly before date.
func MinDate(field string, value any, date time.Time) Rule {
	return dateRule(field, KindMinDate, value, date, "must not be before %s",
		func(v time.Time) bool { return !v.Before(date) })
}

// MinOrEqualDate fails when the value is before or equal to date.
func MinOrEqualDate(field string, value any, date time.Time) Rule {
	return dateRule(field, KindMinOrEqualDate, value, date, "must be after %s",
		func(v time.Time) bool { return v.After(date) })
}

// MaxDate fails when the value is strictly after date.
func MaxDate(field string, value any, date time.Time) Rule {
	return dateRule(field, KindMaxDate, value, date, "must not be after %s",
		func(v time.Time) bool { return !v.After(date) })
}

// MaxOrEqualDate fails when the value is after or equal to date.
func MaxOrEqualDate(field string, value any, date time.Time) Rule {
	return dateRule(field, KindMaxOrEqualDate, value, date, "must be before %s",
		func(v time.Time) bool { return v.Before(date) })
}

func dateRule(field, kind string, value any, date time.Time, format string, ok func(time.Time) bool) Rule {
	return Rule{
		Check: func() bool {
			v, present := ToTime(value)
			if !present || date.IsZero() {
				return true
			}
			return ok(v)
		},
		Error: newError(field, kind, fmt.Sprintf(format, date.Format(time.DateOnly)),
			map[string]any{"date": date.Format(time.DateOnly)}),
	}
}

// Check wraps an arbitrary predicate as a rule of the given kind.
func Check(field, kind, message string, ok func() bool) Rule {
	return Rule{
		Check: ok,
		Error: newError(field, kind, message, nil),
	}
}
