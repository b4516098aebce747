package i18n

// DefaultMessages holds English messages for every validation constraint
// under "validation.<kind>". Placeholders: %{field} and %{expected}.
var DefaultMessages = map[string]map[string]any{
	DefaultLanguage: {
		"validation": map[string]any{
			"required":       "This field is required",
			"requiredTrue":   "This field must be checked",
			"minLength":      "Must be at least %{expected} characters",
			"maxLength":      "Must be at most %{expected} characters",
			"min":            "Must be at least %{expected}",
			"max":            "Must be at most %{expected}",
			"minDate":        "Must be on or after %{expected}",
			"minOrEqualDate": "Must be after %{expected}",
			"maxDate":        "Must be on or before %{expected}",
			"maxOrEqualDate": "Must be before %{expected}",
			"pattern":        "Has an invalid format",
			"custom":         "Is invalid",
			"async":          "Is invalid",
			"native":         "Is invalid",
		},
	},
}

// DefaultAdapter serves DefaultMessages. Layer it under application files
// with MultiAdapter so they can override single keys.
func DefaultAdapter() TranslationAdapter {
	return NewMapAdapter(DefaultMessages)
}
