package fields

import (
	"github.com/dmitrymomot/payform/pkg/creditcard"
	"github.com/dmitrymomot/payform/pkg/validator"
)

// VerificationCodeField validates the card verification value (CVV/CVC).
type VerificationCodeField struct {
	Name     string
	Required bool
}

// Validate strips spaces from raw input and checks for a three- or four-digit
// code. Empty input on an optional field yields an empty string and no error.
func (f VerificationCodeField) Validate(raw string) (string, error) {
	code := creditcard.NormalizeCode(raw)
	if code == "" {
		if !f.Required {
			return "", nil
		}
		return "", validator.Apply(validator.Required(f.name(), code))
	}

	if err := validator.Apply(validator.ValidVerificationCode(f.name(), code)); err != nil {
		return "", err
	}
	return code, nil
}

func (f VerificationCodeField) name() string {
	if f.Name != "" {
		return f.Name
	}
	return "verification_code"
}
