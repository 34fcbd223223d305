package utils

import (
	"strings"
	"unicode"
)

// Normalize lowercases and trims a free-text preference
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ContainsAny reports whether the normalized text contains any of the
// keywords as a substring. Keywords are expected in lower case.
func ContainsAny(text string, keywords ...string) bool {
	text = Normalize(text)
	if text == "" {
		return false
	}
	for _, kw := range keywords {
		if kw != "" && strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// KeepNumeric drops every character that is not an ASCII digit or '.'
func KeepNumeric(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r < unicode.MaxASCII && unicode.IsDigit(r)) || r == '.' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// HasDigit reports whether s contains at least one ASCII digit
func HasDigit(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}
