package creditcard

import (
	"regexp"
	"strings"
)

// Verification codes are three digits on most networks and four on Amex.
var verificationCodeRegex = regexp.MustCompile(`^[0-9]{3,4}$`)

// NormalizeCode strips spaces from a verification code input.
func NormalizeCode(raw string) string {
	return strings.ReplaceAll(raw, " ", "")
}

// ValidateCode normalizes raw input and checks that it is a three- or
// four-digit verification code. The normalized code is returned on success.
func ValidateCode(raw string) (string, error) {
	code := NormalizeCode(raw)
	if code == "" {
		return "", ErrEmptyCode
	}
	if !verificationCodeRegex.MatchString(code) {
		return "", ErrInvalidCode
	}
	return code, nil
}
