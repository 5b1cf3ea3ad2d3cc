// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

var (
	customerNameRegex = regexp.MustCompile(`^[a-zA-Z\s\-'.]+$`)
	phoneRegex        = regexp.MustCompile(`^[0-9]{10}$`)
)

// ValidateCustomerName checks a billing customer name: 1-100 characters,
// letters, spaces, hyphens, apostrophes and periods only.
func ValidateCustomerName(name string) bool {
	name = strings.TrimSpace(name)
	if len(name) < 1 || len(name) > 100 {
		return false
	}
	return customerNameRegex.MatchString(name)
}

// ValidatePhone checks for exactly 10 digits after stripping separators.
func ValidatePhone(phone string) bool {
	cleaned := strings.ReplaceAll(phone, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	return phoneRegex.MatchString(cleaned)
}
