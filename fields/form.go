package fields

import (
	"github.com/dmitrymomot/payform/pkg/expiry"
	"github.com/dmitrymomot/payform/pkg/validator"
)

// CardInput is the raw payment card form input, as bound from an HTTP form
// (see the binder package for the tag convention).
type CardInput struct {
	Number   string `form:"card_number"`
	ExpMonth string `form:"expiry_month"`
	ExpYear  string `form:"expiry_year"`
	Code     string `form:"verification_code"`
}

// Card is the validated outcome of a CardForm: a normalized card number, the
// expiry date if one was supplied, and the normalized verification code.
type Card struct {
	Number string
	Expiry *expiry.Date
	Code   string
}

// CardForm composes the three card fields and validates one input in a
// single pass.
type CardForm struct {
	Number CardNumberField
	Expiry ExpiryDateField
	Code   VerificationCodeField
}

// NewCardForm returns a form with the conventional field names and every
// field required.
func NewCardForm() CardForm {
	return CardForm{
		Number: CardNumberField{Name: "card_number", Required: true},
		Expiry: ExpiryDateField{Name: "expiry_date", Required: true},
		Code:   VerificationCodeField{Name: "verification_code", Required: true},
	}
}

// Validate runs every field over in and aggregates all failures into one
// validator.ValidationErrors, so a handler can surface each field's problem
// in a single response.
func (f CardForm) Validate(in CardInput) (Card, error) {
	var errs validator.ValidationErrors
	var card Card

	number, err := f.Number.Validate(in.Number)
	if err != nil {
		errs = append(errs, validator.ExtractValidationErrors(err)...)
	}
	card.Number = number

	date, err := f.Expiry.Validate(in.ExpMonth, in.ExpYear)
	if err != nil {
		errs = append(errs, validator.ExtractValidationErrors(err)...)
	}
	card.Expiry = date

	code, err := f.Code.Validate(in.Code)
	if err != nil {
		errs = append(errs, validator.ExtractValidationErrors(err)...)
	}
	card.Code = code

	if !errs.IsEmpty() {
		return Card{}, errs
	}
	return card, nil
}
