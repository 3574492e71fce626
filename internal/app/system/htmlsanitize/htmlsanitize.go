// Package htmlsanitize strips dangerous markup from user-entered text
// before it is stored.
package htmlsanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	ugc    = bluemonday.UGCPolicy()
	strict = bluemonday.StrictPolicy()
)

// Sanitize keeps common formatting markup but removes scripts, event
// handlers, and unsafe URLs. Used for fields that may carry formatting,
// like event descriptions.
func Sanitize(s string) string {
	return ugc.Sanitize(s)
}

// Plain strips all markup and trims whitespace. Used for fields that
// should never contain HTML: names, captions, phone numbers, feedback
// messages.
func Plain(s string) string {
	return strings.TrimSpace(strict.Sanitize(s))
}
