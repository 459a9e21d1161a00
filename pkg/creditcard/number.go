package creditcard

import (
	"regexp"
	"strings"
)

// Issuer identifies the card network that issued a number.
type Issuer string

const (
	IssuerVisa       Issuer = "visa"
	IssuerMastercard Issuer = "mastercard"
	IssuerAmex       Issuer = "amex"
	IssuerDiscover   Issuer = "discover"
	IssuerDinersClub Issuer = "diners_club"
	IssuerJCB        Issuer = "jcb"
)

// Anchored issuer prefix patterns. The prefixes are mutually exclusive, so a
// normalized number matches at most one of them.
var issuerPatterns = []struct {
	issuer  Issuer
	pattern *regexp.Regexp
}{
	{IssuerVisa, regexp.MustCompile(`^4[0-9]{12}(?:[0-9]{3})?$`)},
	{IssuerMastercard, regexp.MustCompile(`^5[1-5][0-9]{14}$`)},
	{IssuerAmex, regexp.MustCompile(`^3[47][0-9]{13}$`)},
	{IssuerDiscover, regexp.MustCompile(`^6(?:011|5[0-9]{2})[0-9]{12}$`)},
	{IssuerDinersClub, regexp.MustCompile(`^3(?:0[0-5]|[68][0-9])[0-9]{11}$`)},
	{IssuerJCB, regexp.MustCompile(`^(?:2131|1800|35[0-9]{3})[0-9]{11}$`)},
}

var separatorReplacer = strings.NewReplacer(" ", "", "-", "")

// Normalize strips the spaces and hyphens commonly typed between card number
// digit groups.
func Normalize(raw string) string {
	return separatorReplacer.Replace(raw)
}

// IssuerOf matches a normalized number against the known issuer prefix
// patterns. The second return value is false when no pattern matches.
func IssuerOf(number string) (Issuer, bool) {
	for _, p := range issuerPatterns {
		if p.pattern.MatchString(number) {
			return p.issuer, true
		}
	}
	return "", false
}

// ValidLuhn reports whether number passes the Luhn checksum. Digits are
// processed right to left, every second digit is doubled, and doubled values
// of ten or more are reduced to the sum of their digits. Any non-digit
// character fails the check.
func ValidLuhn(number string) bool {
	if number == "" {
		return false
	}

	sum := 0
	double := false
	for i := len(number) - 1; i >= 0; i-- {
		c := number[i]
		if c < '0' || c > '9' {
			return false
		}

		digit := int(c - '0')
		if double {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}

		sum += digit
		double = !double
	}

	return sum%10 == 0
}

// Validate normalizes raw input and checks it against the issuer prefix
// patterns and the Luhn checksum. Both must pass; a pattern mismatch and a
// checksum failure are the same invalid outcome to the caller. On success the
// normalized digit string is returned, and validating it again yields the
// identical result.
func Validate(raw string) (string, error) {
	number := Normalize(raw)
	if number == "" {
		return "", ErrEmptyNumber
	}
	if _, ok := IssuerOf(number); !ok {
		return "", ErrInvalidNumber
	}
	if !ValidLuhn(number) {
		return "", ErrInvalidNumber
	}
	return number, nil
}

// Mask hides all but the last four digits for display and logging.
func Mask(number string) string {
	digits := Normalize(number)
	if len(digits) < 4 {
		return strings.Repeat("*", len(digits))
	}
	return strings.Repeat("*", len(digits)-4) + digits[len(digits)-4:]
}
