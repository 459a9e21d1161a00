// Package creditcard validates payment card numbers and verification codes
// as typed into checkout forms.
//
// A card number is accepted when it matches one of the known issuer prefix
// patterns (Visa, Mastercard, Amex, Discover, Diners Club, JCB) and passes
// the Luhn checksum. Input is normalized first by stripping the spaces and
// hyphens users commonly type between digit groups. Verification codes are
// the three- or four-digit security values printed on the card, validated by
// pattern only.
//
// All functions are pure and goroutine-safe; nothing in this package stores
// or transmits card data. Use Mask before writing a number to logs or
// responses.
package creditcard
