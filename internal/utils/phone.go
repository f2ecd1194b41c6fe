package utils

import "strings"

// MinPhoneDigits is the smallest number of digits accepted in a phone number.
const MinPhoneDigits = 8

// placeholderNumber marks a destination number left unconfigured.
const placeholderNumber = "PLACEHOLDER"

// DigitsOnly strips every character of s that is not an ASCII digit.
//
// Example usage:
//
//	utils.DigitsOnly("12-34-56-78") // "12345678"
func DigitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// HasMinPhoneDigits reports whether s contains at least [MinPhoneDigits]
// digits once separators are removed.
func HasMinPhoneDigits(s string) bool {
	return len(DigitsOnly(s)) >= MinPhoneDigits
}

// IsDestinationNumber reports whether s is an explicit messaging destination:
// an optional leading "+" followed only by digits, at least [MinPhoneDigits]
// of them. Placeholder values are rejected.
func IsDestinationNumber(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || strings.Contains(strings.ToUpper(s), placeholderNumber) {
		return false
	}

	digits := strings.TrimPrefix(s, "+")
	for _, r := range digits {
		if r < '0' || r > '9' {
			return false
		}
	}

	return len(digits) >= MinPhoneDigits
}
