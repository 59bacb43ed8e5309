package rut_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/rutkit/pkg/rut"
)

func TestVerificationDigit(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{
			name:     "eight digit sequence",
			input:    "12345678",
			expected: "5",
		},
		{
			name:     "seven digit sequence",
			input:    "7654321",
			expected: "6",
		},
		{
			name:     "single digit",
			input:    "1",
			expected: "9",
		},
		{
			name:     "digit mapping to K",
			input:    "6",
			expected: "K",
		},
		{
			name:     "repeated ones",
			input:    "11111111",
			expected: "1",
		},
		{
			name:     "repeated twos",
			input:    "22222222",
			expected: "2",
		},
		{
			name:     "numeric input",
			input:    12345678,
			expected: "5",
		},
		{
			name:     "maximum length sequence",
			input:    strings.Repeat("1", 20),
			expected: "2",
		},
		{
			name:     "oversized sequence",
			input:    strings.Repeat("1", 21),
			expected: "",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "nil input",
			input:    nil,
			expected: "",
		},
		{
			name:     "embedded letter",
			input:    "1234567a",
			expected: "",
		},
		{
			name:     "check character included",
			input:    "12345678K",
			expected: "",
		},
		{
			name:     "negative number",
			input:    -12345678,
			expected: "",
		},
		{
			name:     "punctuated input",
			input:    "12.345.678",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, rut.VerificationDigit(tt.input))
		})
	}
}

func TestVerificationDigitIsDeterministic(t *testing.T) {
	inputs := []string{"12345678", "7654321", "1", "6", strings.Repeat("9", 20)}

	for _, input := range inputs {
		first := rut.VerificationDigit(input)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, rut.VerificationDigit(input))
		}
	}
}
