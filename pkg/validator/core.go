package validator

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ValidationError represents a single validation error with translation support.
type ValidationError struct {
	Field             string
	Kind              string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	return slices.ContainsFunc(ve, func(err ValidationError) bool { return err.Field == field })
}

// HasKind reports whether the field failed the given constraint.
func (ve ValidationErrors) HasKind(field, kind string) bool {
	return slices.ContainsFunc(ve, func(err ValidationError) bool {
		return err.Field == field && err.Kind == kind
	})
}

func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) GetErrors(field string) []ValidationError {
	var out []ValidationError
	for _, err := range ve {
		if err.Field == field {
			out = append(out, err)
		}
	}
	return out
}

// Fields returns the failing field names in first-seen order.
func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Sort orders errors by field, then by kind, so exports are stable.
func (ve ValidationErrors) Sort() {
	slices.SortStableFunc(ve, func(a, b ValidationError) int {
		if c := strings.Compare(a.Field, b.Field); c != 0 {
			return c
		}
		return strings.Compare(a.Kind, b.Kind)
	})
}

// Rule represents a single validation rule.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Passes runs the check. A rule without a check always passes.
func (r Rule) Passes() bool {
	return r.Check == nil || r.Check()
}

// Apply executes multiple validation rules and returns any validation errors.
func Apply(rules ...Rule) error {
	var errs ValidationErrors

	for _, rule := range rules {
		if !rule.Passes() {
			errs = append(errs, rule.Error)
		}
	}

	if errs.IsEmpty() {
		return nil
	}

	return errs
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}

func newError(field, kind, message string, values map[string]any) ValidationError {
	if values == nil {
		values = make(map[string]any, 1)
	}
	values["field"] = field
	return ValidationError{
		Field:             field,
		Kind:              kind,
		Message:           message,
		TranslationKey:    TranslationKey(kind),
		TranslationValues: values,
	}
}

// TranslationKey returns the message key for a constraint kind.
func TranslationKey(kind string) string {
	return "validation." + kind
}
