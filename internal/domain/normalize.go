package domain

import (
	"strings"
)

// NormalizeName prepares a pantry item name for storage and comparison:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - collapses any run of inner whitespace (spaces, tabs, newlines) into one space
//
// Diacritics, hyphens, and apostrophes are preserved.
func NormalizeName(name string) string {
	fields := strings.Fields(strings.ToLower(name))
	if len(fields) == 0 {
		return ""
	}
	return strings.Join(fields, " ")
}

// TrimDescription trims whitespace around a free-text meal description.
// Inner formatting is kept as the user typed it.
func TrimDescription(s string) string {
	return strings.TrimSpace(s)
}
