package domain

import (
	"strings"
)

// NormalizeName prepares a display name for storage and uniqueness checks:
//   - trims leading/trailing whitespace
//   - compresses runs of whitespace into one space
//
// Case is preserved.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

// NormalizeEmail trims and lowercases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// TrimOrNil trims whitespace and returns nil for an empty result.
func TrimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
