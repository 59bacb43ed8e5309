// Package rut validates and formats Chilean national tax identifiers
// (RUT, Rol Único Tributario).
//
// A RUT consists of a decimal digit sequence followed by a single
// verification character (0–9 or K) computed with the Module 11 checksum.
// The package exposes five small, pure helpers covering the whole
// lifecycle of the identifier:
//
//   - Clean              – normalizes arbitrary input to the bare token
//   - VerificationDigit  – computes the Module 11 check character
//   - IsValid            – structural check plus checksum verification
//   - Format             – renders the canonical punctuated form
//   - Validate           – structured report combining all of the above
//
// # Usage
//
// Import the package using its module-qualified path:
//
//	import "github.com/dmitrymomot/rutkit/pkg/rut"
//
//	rut.Clean("12.345.678-5")       // "123456785"
//	rut.VerificationDigit(12345678) // "5"
//	rut.IsValid("12.345.678-5")     // true
//
//	if formatted, ok := rut.Format("123456785"); ok {
//	    // formatted == "12.345.678-5"
//	}
//
//	res := rut.Validate("7.654.321-6")
//	// res.Valid == true, res.Number == "7654321", res.VerificationDigit == "6"
//
// Every function accepts any value – strings, byte slices, numbers and
// fmt.Stringer implementations are converted to text, anything else is
// treated as absent input.
//
// # Error Handling
//
// None of the helpers returns an error or panics – they always fall back to
// a safe result (an empty string, false, or a zeroed Result) when the input
// is absent, malformed or oversized. Input longer than MaxLength characters
// is rejected outright so that hostile callers cannot inflate the work done
// per call.
//
// # Performance
//
// All operations run in a single linear pass over the input and allocate
// only the output string. The package holds no state, so the helpers are
// safe for concurrent use from multiple goroutines.
package rut
