package creditcard

import "errors"

// Package-specific errors
var (
	// ErrEmptyNumber is returned when the input contains nothing after normalization.
	ErrEmptyNumber = errors.New("card number is empty")

	// ErrInvalidNumber is returned when the number fails the issuer prefix match or the Luhn checksum.
	ErrInvalidNumber = errors.New("invalid card number")

	// ErrEmptyCode is returned when the verification code input is empty after normalization.
	ErrEmptyCode = errors.New("verification code is empty")

	// ErrInvalidCode is returned when the verification code is not three or four digits.
	ErrInvalidCode = errors.New("invalid verification code")
)
