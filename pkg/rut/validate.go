package rut

import "regexp"

// One or more digits followed by a single check character.
var tokenRegex = regexp.MustCompile(`^(\d+)([\dK])$`)

// IsValid reports whether the value carries a structurally well-formed RUT
// whose verification digit matches the Module 11 checksum. Malformed,
// oversized or non-textual input yields false; the function never fails.
func IsValid(v any) bool {
	token := Clean(v)
	if len(token) < 2 || len(token) > MaxLength {
		return false
	}

	m := tokenRegex.FindStringSubmatch(token)
	if m == nil {
		return false
	}

	number, dv := m[1], m[2]
	if len(number) > MaxLength {
		return false
	}

	want := VerificationDigit(number)
	return want != "" && want == dv
}

// Result is the structured outcome of Validate. Formatted, Number and
// VerificationDigit are populated if and only if Valid is true; Raw always
// holds the cleaned token, even for invalid input.
type Result struct {
	Valid             bool   `json:"valid"`
	Formatted         string `json:"formatted,omitempty"`
	Raw               string `json:"raw"`
	Number            string `json:"number,omitempty"`
	VerificationDigit string `json:"verification_digit,omitempty"`
}

// Validate normalizes and verifies the value, returning the cleaned token
// together with its decomposition and canonical formatting when valid.
func Validate(v any) Result {
	token := Clean(v)
	if !IsValid(token) {
		return Result{Raw: token}
	}

	m := tokenRegex.FindStringSubmatch(token)
	if m == nil {
		return Result{Raw: token}
	}

	formatted, ok := Format(token)
	if !ok {
		return Result{Raw: token}
	}

	return Result{
		Valid:             true,
		Formatted:         formatted,
		Raw:               token,
		Number:            m[1],
		VerificationDigit: m[2],
	}
}
