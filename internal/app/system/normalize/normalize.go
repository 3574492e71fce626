// Package normalize provides canonical forms for user-entered fields
// before they are stored or used in lookups.
package normalize

import "strings"

// Email trims whitespace and lower-cases the address. Storage and lookups
// use this form; policy checks run on the raw input first.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims surrounding whitespace but preserves case.
func Name(s string) string {
	return strings.TrimSpace(s)
}
