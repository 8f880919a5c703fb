// Package sanitizer normalizes editor input before it lands in the content
// document. All functions are idempotent and handle empty input by
// returning empty strings rather than errors.
package sanitizer

import (
	"strings"
	"unicode"
)

// NormalizeText trims and collapses internal whitespace. Used for
// single-line fields: titles, authors, captions, tooltips.
func NormalizeText(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	var result strings.Builder
	var lastWasSpace bool
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !lastWasSpace {
				result.WriteRune(' ')
				lastWasSpace = true
			}
		} else {
			result.WriteRune(r)
			lastWasSpace = false
		}
	}
	return result.String()
}

// NormalizeMultiline trims the ends but keeps interior line breaks. Used for
// review text and the venue description.
func NormalizeMultiline(s string) string {
	return strings.TrimSpace(s)
}
