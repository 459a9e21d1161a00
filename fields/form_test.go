package fields_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/payform/fields"
	"github.com/dmitrymomot/payform/pkg/expiry"
	"github.com/dmitrymomot/payform/pkg/validator"
)

func testCardForm() fields.CardForm {
	form := fields.NewCardForm()
	form.Expiry.Now = fixedNow
	return form
}

func TestCardFormValidate(t *testing.T) {
	t.Parallel()
	t.Run("all fields valid", func(t *testing.T) {
		form := testCardForm()
		card, err := form.Validate(fields.CardInput{
			Number:   "4111 1111 1111 1111",
			ExpMonth: "12",
			ExpYear:  "2031",
			Code:     "123",
		})
		require.NoError(t, err)

		assert.Equal(t, "4111111111111111", card.Number)
		require.NotNil(t, card.Expiry)
		assert.Equal(t, expiry.Date{Month: time.December, Year: 2031}, *card.Expiry)
		assert.Equal(t, "123", card.Code)
	})

	t.Run("every field failure is collected", func(t *testing.T) {
		form := testCardForm()
		_, err := form.Validate(fields.CardInput{
			Number:   "4111111111111112",
			ExpMonth: "13",
			ExpYear:  "2031",
			Code:     "12",
		})
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 3)
		assert.True(t, verrs.Has("card_number"))
		assert.True(t, verrs.Has("expiry_date"))
		assert.True(t, verrs.Has("verification_code"))
	})

	t.Run("empty submission reports every required field", func(t *testing.T) {
		form := testCardForm()
		_, err := form.Validate(fields.CardInput{})
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 3)
		for _, verr := range verrs {
			assert.Equal(t, "validation.required", verr.TranslationKey)
		}
	})

	t.Run("optional expiry allows absence", func(t *testing.T) {
		form := testCardForm()
		form.Expiry.Required = false

		card, err := form.Validate(fields.CardInput{
			Number: "4111111111111111",
			Code:   "123",
		})
		require.NoError(t, err)
		assert.Nil(t, card.Expiry)
	})

	t.Run("passed expiry date", func(t *testing.T) {
		form := testCardForm()
		_, err := form.Validate(fields.CardInput{
			Number:   "4111111111111111",
			ExpMonth: "5",
			ExpYear:  "2030",
			Code:     "123",
		})
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 1)
		assert.Equal(t, "validation.date_passed", verrs[0].TranslationKey)
		assert.Equal(t, []string{"expiry_date"}, verrs.Fields())
	})
}
