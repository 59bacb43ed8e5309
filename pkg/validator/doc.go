// Package validator provides a small rule-based validation layer on top of
// the rut package, so RUT checks compose with other field validations in a
// single declarative pass.
//
// Every validation function constructs and returns a Rule value pairing a
// boolean Check with translation-friendly error metadata. Rules are
// evaluated with Apply, which aggregates failures into a ValidationErrors
// slice that satisfies the error interface.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.RequiredRUT("tax_id", form.TaxID),
//	    validator.ValidRUT("tax_id", form.TaxID),
//	)
//	if err != nil {
//	    for _, verr := range validator.ExtractValidationErrors(err) {
//	        // verr.Field, verr.Message, verr.TranslationKey
//	    }
//	}
//
// The package holds no global state and is safe for concurrent use.
package validator
