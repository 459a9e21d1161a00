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

func fixedNow() time.Time {
	return time.Date(2030, time.June, 15, 10, 30, 0, 0, time.UTC)
}

func TestCardNumberField(t *testing.T) {
	t.Parallel()
	field := fields.CardNumberField{Name: "card_number", Required: true}

	t.Run("valid input is normalized", func(t *testing.T) {
		number, err := field.Validate("4111 1111 1111 1111")
		require.NoError(t, err)
		assert.Equal(t, "4111111111111111", number)
	})

	t.Run("normalized output revalidates identically", func(t *testing.T) {
		number, err := field.Validate("4111-1111-1111-1111")
		require.NoError(t, err)

		again, err := field.Validate(number)
		require.NoError(t, err)
		assert.Equal(t, number, again)
	})

	t.Run("required and empty", func(t *testing.T) {
		_, err := field.Validate("  - ")
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 1)
		assert.Equal(t, "validation.required", verrs[0].TranslationKey)
		assert.Equal(t, "card_number", verrs[0].Field)
	})

	t.Run("optional and empty", func(t *testing.T) {
		optional := fields.CardNumberField{Name: "card_number"}
		number, err := optional.Validate("")
		require.NoError(t, err)
		assert.Empty(t, number)
	})

	t.Run("luhn failure", func(t *testing.T) {
		_, err := field.Validate("4111111111111112")
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 1)
		assert.Equal(t, "validation.card_number", verrs[0].TranslationKey)
	})

	t.Run("default field name", func(t *testing.T) {
		unnamed := fields.CardNumberField{Required: true}
		_, err := unnamed.Validate("")
		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 1)
		assert.Equal(t, "card_number", verrs[0].Field)
	})
}

func TestExpiryDateField(t *testing.T) {
	t.Parallel()
	field := fields.ExpiryDateField{Name: "expiry_date", Required: true, Now: fixedNow}

	t.Run("valid future date", func(t *testing.T) {
		date, err := field.Validate("12", "2031")
		require.NoError(t, err)
		require.NotNil(t, date)
		assert.Equal(t, expiry.Date{Month: time.December, Year: 2031}, *date)
	})

	t.Run("current month is not passed", func(t *testing.T) {
		date, err := field.Validate("6", "2030")
		require.NoError(t, err)
		require.NotNil(t, date)
		assert.Equal(t, 30, date.LastDay())
	})

	t.Run("previous month has passed", func(t *testing.T) {
		_, err := field.Validate("5", "2030")
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 1)
		assert.Equal(t, "validation.date_passed", verrs[0].TranslationKey)
	})

	t.Run("leap year february", func(t *testing.T) {
		date, err := field.Validate("02", "2032")
		require.NoError(t, err)
		require.NotNil(t, date)
		assert.Equal(t, 29, date.LastDay())
	})

	t.Run("invalid month", func(t *testing.T) {
		_, err := field.Validate("13", "2030")
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 1)
		assert.Equal(t, "validation.expiry_month", verrs[0].TranslationKey)
	})

	t.Run("invalid year", func(t *testing.T) {
		_, err := field.Validate("6", "never")
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 1)
		assert.Equal(t, "validation.expiry_year", verrs[0].TranslationKey)
	})

	t.Run("month and year both invalid", func(t *testing.T) {
		_, err := field.Validate("abc", "xyz")
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 2)
		assert.Equal(t, "validation.expiry_month", verrs[0].TranslationKey)
		assert.Equal(t, "validation.expiry_year", verrs[1].TranslationKey)
	})

	t.Run("missing month with year supplied", func(t *testing.T) {
		_, err := field.Validate("", "2030")
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 1)
		assert.Equal(t, "validation.expiry_month", verrs[0].TranslationKey)
	})

	t.Run("optional field with no input at all", func(t *testing.T) {
		optional := fields.ExpiryDateField{Name: "expiry_date", Now: fixedNow}
		date, err := optional.Validate("", "  ")
		require.NoError(t, err)
		assert.Nil(t, date)
	})

	t.Run("required field with no input", func(t *testing.T) {
		_, err := field.Validate("", "")
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 1)
		assert.Equal(t, "validation.required", verrs[0].TranslationKey)
	})

	t.Run("clock defaults to time.Now", func(t *testing.T) {
		wallClock := fields.ExpiryDateField{Name: "expiry_date", Required: true}
		now := time.Now()

		date, err := wallClock.Validate("12", "9999")
		require.NoError(t, err)
		require.NotNil(t, date)

		_, err = wallClock.Validate("1", "2001")
		require.Error(t, err, "a date decades old must have passed as of %s", now)
	})
}

func TestVerificationCodeField(t *testing.T) {
	t.Parallel()
	field := fields.VerificationCodeField{Name: "verification_code", Required: true}

	t.Run("valid codes", func(t *testing.T) {
		for _, input := range []string{"123", "1234", " 12 3"} {
			code, err := field.Validate(input)
			require.NoError(t, err, "input: %q", input)
			assert.NotEmpty(t, code)
		}
	})

	t.Run("invalid codes", func(t *testing.T) {
		for _, input := range []string{"12", "12345", "abc"} {
			_, err := field.Validate(input)
			require.Error(t, err, "input: %q", input)

			verrs := validator.ExtractValidationErrors(err)
			require.Len(t, verrs, 1)
			assert.Equal(t, "validation.verification_code", verrs[0].TranslationKey)
		}
	})

	t.Run("required and empty", func(t *testing.T) {
		_, err := field.Validate("   ")
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 1)
		assert.Equal(t, "validation.required", verrs[0].TranslationKey)
	})

	t.Run("optional and empty", func(t *testing.T) {
		optional := fields.VerificationCodeField{Name: "verification_code"}
		code, err := optional.Validate("")
		require.NoError(t, err)
		assert.Empty(t, code)
	})
}
