package validate

import (
	"github.com/ShiraazMoollatjie/goluhn"
)

// IsChecksummedReference reports whether a numeric payout destination
// reference (card or account number) carries a valid Luhn check digit.
func IsChecksummedReference(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}

// IsNumeric reports whether the string is non-empty and all digits.
func IsNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
