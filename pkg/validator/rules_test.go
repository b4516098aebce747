package validator_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

func ptr[T any](v T) *T { return &v }

func TestIsEmpty(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{"nil", nil, true},
		{"blank string", "  ", true},
		{"string", "a", false},
		{"nil pointer", (*string)(nil), true},
		{"pointer to string", ptr("a"), false},
		{"empty slice", []int{}, true},
		{"slice", []int{1}, false},
		{"empty map", map[string]int{}, true},
		{"zero int", 0, false},
		{"false", false, false},
		{"zero time", time.Time{}, true},
		{"time", time.Now(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validator.IsEmpty(tt.value))
		})
	}
}

func TestConversions(t *testing.T) {
	t.Parallel()

	n, ok := validator.ToFloat(int8(3))
	assert.True(t, ok)
	assert.Equal(t, 3.0, n)

	n, ok = validator.ToFloat(ptr(uint(7)))
	assert.True(t, ok)
	assert.Equal(t, 7.0, n)

	_, ok = validator.ToFloat("3")
	assert.False(t, ok)

	l, ok := validator.Length("héllo")
	assert.True(t, ok)
	assert.Equal(t, 5, l)

	_, ok = validator.Length(5)
	assert.False(t, ok)

	now := time.Now()
	got, ok := validator.ToTime(&now)
	assert.True(t, ok)
	assert.True(t, now.Equal(got))

	_, ok = validator.ToTime(time.Time{})
	assert.False(t, ok)
}

func TestRequired(t *testing.T) {
	t.Parallel()

	assert.False(t, validator.Required("f", "").Passes())
	assert.False(t, validator.Required("f", nil).Passes())
	assert.True(t, validator.Required("f", "a").Passes())
	assert.True(t, validator.Required("f", 0).Passes())

	assert.True(t, validator.RequiredTrue("f", true).Passes())
	assert.True(t, validator.RequiredTrue("f", ptr(true)).Passes())
	assert.False(t, validator.RequiredTrue("f", false).Passes())
	assert.False(t, validator.RequiredTrue("f", nil).Passes())
}

func TestLength(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.MinLength("f", "", 3).Passes(), "empty values are left to required")
	assert.False(t, validator.MinLength("f", "ab", 3).Passes())
	assert.True(t, validator.MinLength("f", "abc", 3).Passes())
	assert.False(t, validator.MinLength("f", []string{"a"}, 2).Passes())

	assert.True(t, validator.MaxLength("f", "abc", 3).Passes())
	assert.False(t, validator.MaxLength("f", "abcd", 3).Passes())
	assert.True(t, validator.MaxLength("f", nil, 3).Passes())
}

func TestNumericBounds(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.Min("f", 5, 5).Passes())
	assert.False(t, validator.Min("f", 4.9, 5).Passes())
	assert.True(t, validator.Min("f", nil, 5).Passes())
	assert.True(t, validator.Min("f", "text", 5).Passes())

	assert.True(t, validator.Max("f", 5, 5).Passes())
	assert.False(t, validator.Max("f", int64(6), 5).Passes())
	assert.True(t, validator.Max("f", (*int)(nil), 5).Passes())
}

func TestDateBounds(t *testing.T) {
	t.Parallel()

	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	before := day.AddDate(0, 0, -1)
	after := day.AddDate(0, 0, 1)

	tests := []struct {
		name  string
		rule  func(string, any, time.Time) validator.Rule
		value any
		pass  bool
	}{
		{"minDate before", validator.MinDate, before, false},
		{"minDate equal", validator.MinDate, day, true},
		{"minDate after", validator.MinDate, after, true},
		{"minOrEqualDate equal", validator.MinOrEqualDate, day, false},
		{"minOrEqualDate after", validator.MinOrEqualDate, after, true},
		{"maxDate after", validator.MaxDate, after, false},
		{"maxDate equal", validator.MaxDate, day, true},
		{"maxOrEqualDate equal", validator.MaxOrEqualDate, day, false},
		{"maxOrEqualDate before", validator.MaxOrEqualDate, before, true},
		{"nil value", validator.MinDate, nil, true},
		{"nil pointer", validator.MaxDate, (*time.Time)(nil), true},
		{"pointer", validator.MaxDate, &after, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.pass, tt.rule("f", tt.value, day).Passes())
		})
	}

	t.Run("zero bound disables the rule", func(t *testing.T) {
		assert.True(t, validator.MinDate("f", before, time.Time{}).Passes())
	})

	t.Run("error carries the bound", func(t *testing.T) {
		rule := validator.MinDate("end", before, day)
		assert.Equal(t, validator.KindMinDate, rule.Error.Kind)
		assert.Equal(t, "2025-06-10", rule.Error.TranslationValues["date"])
	})
}

func TestPattern(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.Pattern("f", "abc", "[a-c]+").Passes())
	assert.False(t, validator.Pattern("f", "abcd", "[a-c]+").Passes(), "pattern is anchored")
	assert.True(t, validator.Pattern("f", "abc", "^[a-c]+$").Passes())
	assert.True(t, validator.Pattern("f", "", "[0-9]+").Passes())
	assert.False(t, validator.Pattern("f", "a", "[").Passes())

	re, err := validator.CompilePattern("a|b")
	assert.NoError(t, err)
	assert.True(t, re.MatchString("b"))
	assert.False(t, re.MatchString("ab"))

	_, err = validator.CompilePattern("(")
	assert.ErrorIs(t, err, validator.ErrInvalidPattern)
}

func TestNative(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.Native("f", "a@example.com", "email").Passes())
	assert.True(t, validator.Native("f", "", "email").Passes())
	assert.False(t, validator.Native("f", "", "required").Passes())

	rule := validator.Native("f", "nope", "email")
	assert.False(t, rule.Passes())
	assert.Equal(t, "email", rule.Error.TranslationValues["failed"])
	assert.Equal(t, validator.KindNative, rule.Error.Kind)
	assert.NotNil(t, validator.Engine())
}

func TestCheck(t *testing.T) {
	t.Parallel()

	rule := validator.Check("f", validator.KindCustom, "is invalid", func() bool { return false })
	assert.False(t, rule.Passes())
	assert.Equal(t, "validation.custom", rule.Error.TranslationKey)
	assert.True(t, validator.Check("f", validator.KindCustom, "", func() bool { return true }).Passes())
}
