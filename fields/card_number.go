package fields

import (
	"github.com/dmitrymomot/payform/pkg/creditcard"
	"github.com/dmitrymomot/payform/pkg/validator"
)

// CardNumberField validates credit card number input.
type CardNumberField struct {
	Name     string
	Required bool
}

// Validate normalizes raw input and checks it against the issuer prefix
// patterns and the Luhn checksum. It returns the normalized digit string, or
// a validator.ValidationErrors describing the failure. Empty input on an
// optional field yields an empty string and no error.
func (f CardNumberField) Validate(raw string) (string, error) {
	number := creditcard.Normalize(raw)
	if number == "" {
		if !f.Required {
			return "", nil
		}
		return "", validator.Apply(validator.Required(f.name(), number))
	}

	if err := validator.Apply(validator.ValidCardNumber(f.name(), number)); err != nil {
		return "", err
	}
	return number, nil
}

func (f CardNumberField) name() string {
	if f.Name != "" {
		return f.Name
	}
	return "card_number"
}
