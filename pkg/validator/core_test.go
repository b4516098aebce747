package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with single error", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "email", Message: "is required"})
		assert.Equal(t, "validation failed: email: is required", errs.Error())
	})

	t.Run("joins multiple errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "email", Message: "is required"})
		errs.Add(validator.ValidationError{Field: "password", Message: "too short"})
		assert.Equal(t, "validation failed: email: is required; password: too short", errs.Error())
	})
}

func TestValidationErrors_Lookup(t *testing.T) {
	errs := validator.ValidationErrors{
		{Field: "start", Kind: "maxDate", Message: "too late"},
		{Field: "end", Kind: "minDate", Message: "too early"},
		{Field: "end", Kind: "required", Message: "missing"},
	}

	assert.True(t, errs.Has("end"))
	assert.False(t, errs.Has("name"))
	assert.True(t, errs.HasKind("end", "minDate"))
	assert.False(t, errs.HasKind("start", "minDate"))
	assert.Equal(t, []string{"too early", "missing"}, errs.Get("end"))
	assert.Len(t, errs.GetErrors("end"), 2)
	assert.Equal(t, []string{"start", "end"}, errs.Fields())
	assert.False(t, errs.IsEmpty())

	errs.Sort()
	assert.Equal(t, []string{"end", "start"}, errs.Fields())
	assert.Equal(t, "minDate", errs[0].Kind)
	assert.Equal(t, "required", errs[1].Kind)
}

func TestApply(t *testing.T) {
	t.Run("nil when all rules pass", func(t *testing.T) {
		err := validator.Apply(
			validator.Required("name", "Ann"),
			validator.MaxLength("name", "Ann", 10),
			validator.Rule{},
		)
		assert.NoError(t, err)
	})

	t.Run("collects failures", func(t *testing.T) {
		err := validator.Apply(
			validator.Required("name", ""),
			validator.Min("age", 10, 18),
		)
		require.Error(t, err)
		assert.True(t, validator.IsValidationError(err))

		errs := validator.ExtractValidationErrors(err)
		require.Len(t, errs, 2)
		assert.Equal(t, validator.KindRequired, errs[0].Kind)
		assert.Equal(t, "validation.required", errs[0].TranslationKey)
		assert.Equal(t, "name", errs[0].TranslationValues["field"])
		assert.Equal(t, validator.KindMin, errs[1].Kind)
		assert.Equal(t, float64(18), errs[1].TranslationValues["min"])
	})

	t.Run("extracts wrapped errors", func(t *testing.T) {
		err := fmt.Errorf("save: %w", validator.Apply(validator.Required("name", nil)))
		assert.True(t, validator.IsValidationError(err))
		assert.Len(t, validator.ExtractValidationErrors(err), 1)
	})

	t.Run("non validation errors", func(t *testing.T) {
		assert.False(t, validator.IsValidationError(nil))
		assert.False(t, validator.IsValidationError(errors.New("boom")))
		assert.Nil(t, validator.ExtractValidationErrors(errors.New("boom")))
		assert.Nil(t, validator.ExtractValidationErrors(nil))
	})
}
