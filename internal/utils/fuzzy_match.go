package utils

import (
	"strings"
	"unicode"
)

// CompactName folds a model name to lower-case letters and digits only, so
// "GR 86", "gr-86" and "GR86" compare equal.
func CompactName(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// FuzzyMatchName reports whether search names the same model as name once
// spacing, punctuation and case are ignored
func FuzzyMatchName(search, name string) bool {
	s := CompactName(search)
	return s != "" && s == CompactName(name)
}
