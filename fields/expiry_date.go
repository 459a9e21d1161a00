package fields

import (
	"strings"
	"time"

	"github.com/dmitrymomot/payform/pkg/expiry"
	"github.com/dmitrymomot/payform/pkg/validator"
)

// ExpiryDateField validates the paired month/year selectors of a card expiry
// input. Now supplies the current date at validation time and defaults to
// time.Now, so the same field value can be revalidated later against a fresh
// clock reading.
type ExpiryDateField struct {
	Name     string
	Required bool
	Now      func() time.Time
}

// Validate combines the month and year inputs into a calendar date on the
// last day of that month and rejects dates before today; today itself is
// accepted. When both inputs are empty and the field is optional, the result
// is no date at all rather than an error. Month and year problems are
// reported together when both inputs are bad.
func (f ExpiryDateField) Validate(monthStr, yearStr string) (*expiry.Date, error) {
	monthStr = strings.TrimSpace(monthStr)
	yearStr = strings.TrimSpace(yearStr)

	if monthStr == "" && yearStr == "" {
		if !f.Required {
			return nil, nil
		}
		return nil, validator.Apply(validator.Required(f.name(), ""))
	}

	if err := validator.Apply(
		validator.ValidExpiryMonth(f.name(), monthStr),
		validator.ValidExpiryYear(f.name(), yearStr),
	); err != nil {
		return nil, err
	}

	date, err := expiry.Parse(monthStr, yearStr)
	if err != nil {
		return nil, err
	}

	if err := validator.Apply(validator.NotExpired(f.name(), date, f.now())); err != nil {
		return nil, err
	}
	return &date, nil
}

func (f ExpiryDateField) now() time.Time {
	if f.Now != nil {
		return f.Now()
	}
	return time.Now()
}

func (f ExpiryDateField) name() string {
	if f.Name != "" {
		return f.Name
	}
	return "expiry_date"
}
