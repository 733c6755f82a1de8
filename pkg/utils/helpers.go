package utils

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// controlChars matches C0/C1 control characters except tab, newline and
// carriage return, which are kept so response formatting survives.
var controlChars = regexp.MustCompile(`[\x00-\x08\x0b\x0c\x0e-\x1f\x7f-\x9f]`)

// SanitizeResponse strips control characters and surrounding whitespace
// from a model response
func SanitizeResponse(s string) string {
	return strings.TrimSpace(controlChars.ReplaceAllString(s, ""))
}

// Truncate caps a string at max bytes, backing up to the nearest rune
// boundary so the result is always valid UTF-8
func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

// Preview shortens a string for log/progress display, marking the cut
// with an ellipsis
func Preview(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return Truncate(s, max) + "..."
}
