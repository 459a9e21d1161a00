// Package fields implements the form-field layer for payment card input:
// card number, expiry date, and verification code.
//
// A field pairs a name and a required flag with a Validate method that takes
// the raw form input and returns either the normalized value or a
// validator.ValidationErrors describing what the user got wrong. CardForm
// composes the three fields over one bound input struct and aggregates every
// field failure into a single error, the way a form handler wants to render
// them.
//
// Fields never render anything and never store card data; translating the
// error keys into user-facing messages is the caller's concern (see
// pkg/i18n).
package fields
