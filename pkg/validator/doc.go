// Package validator provides declarative validation rules for payment card
// form input: card number, expiry month/year, and verification code.
//
// Every rule function constructs a small Rule value holding a boolean Check
// together with translation-friendly error metadata. Rules are evaluated with
// Apply, which aggregates failures into a ValidationErrors slice that
// satisfies the error interface, so a form handler can surface every field
// problem from a single error return.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.Required("card_number", number),
//	    validator.ValidCardNumber("card_number", number),
//	    validator.ValidVerificationCode("cvv", code),
//	)
//	if err != nil {
//	    if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	        // map field-level messages or translate them by TranslationKey
//	    }
//	}
//
// The package holds no state: every rule is a pure function of its inputs,
// except NotExpired which compares against the clock reading passed in by the
// caller. All rules are safe for concurrent use.
package validator
