package validator

import (
	"time"

	"github.com/dmitrymomot/payform/pkg/expiry"
)

// ValidExpiryMonth validates a raw month selector input: an integer between
// 1 and 12.
func ValidExpiryMonth(field, value string) Rule {
	return Rule{
		Check: func() bool {
			_, err := expiry.ParseMonth(value)
			return err == nil
		},
		Error: ValidationError{
			Field:          field,
			Message:        "invalid expiry month",
			TranslationKey: "validation.expiry_month",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidExpiryYear validates a raw year selector input.
func ValidExpiryYear(field, value string) Rule {
	return Rule{
		Check: func() bool {
			_, err := expiry.ParseYear(value)
			return err == nil
		},
		Error: ValidationError{
			Field:          field,
			Message:        "invalid expiry year",
			TranslationKey: "validation.expiry_year",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// NotExpired validates that the expiry date has not passed as of the given
// clock reading. The last day of the expiry month is still valid.
func NotExpired(field string, date expiry.Date, at time.Time) Rule {
	return Rule{
		Check: func() bool {
			return !date.ExpiredAt(at)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "expiry date has passed",
			TranslationKey: "validation.date_passed",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
