package validator

import (
	"github.com/dmitrymomot/rutkit/pkg/rut"
)

// RequiredRUT validates that a RUT value is present (non-empty after normalization).
func RequiredRUT(field string, value any) Rule {
	return Rule{
		Check: func() bool {
			return rut.Clean(value) != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        "RUT is required",
			TranslationKey: "validation.rut_required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidRUT validates a Chilean RUT: digit sequence plus Module 11 verification digit.
// Punctuation, whitespace and case are normalized before checking, so both
// "12.345.678-5" and "123456785" pass.
func ValidRUT(field string, value any) Rule {
	return Rule{
		Check: func() bool {
			return rut.IsValid(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid RUT",
			TranslationKey: "validation.rut",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
