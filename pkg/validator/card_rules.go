package validator

import (
	"github.com/dmitrymomot/payform/pkg/creditcard"
)

// ValidCardNumber validates a credit card number against the known issuer
// prefix patterns and the Luhn checksum. Separators are stripped before
// matching. A prefix mismatch and a checksum failure are reported as the same
// invalid outcome; requiredness is a separate rule.
func ValidCardNumber(field, value string) Rule {
	return Rule{
		Check: func() bool {
			_, err := creditcard.Validate(value)
			return err == nil
		},
		Error: ValidationError{
			Field:          field,
			Message:        "invalid credit card number",
			TranslationKey: "validation.card_number",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidVerificationCode validates a three- or four-digit card verification code.
func ValidVerificationCode(field, value string) Rule {
	return Rule{
		Check: func() bool {
			_, err := creditcard.ValidateCode(value)
			return err == nil
		},
		Error: ValidationError{
			Field:          field,
			Message:        "invalid verification code",
			TranslationKey: "validation.verification_code",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
