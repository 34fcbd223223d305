package utils

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

// ErrNoJSON is returned when no JSON document could be recovered
var ErrNoJSON = errors.New("no JSON found in model output")

var (
	fencedBlock   = regexp.MustCompile("(?s)```(?:[a-zA-Z]+)?\\s*(.+?)\\s*```")
	trailingComma = regexp.MustCompile(`,\s*([}\]])`)
	emphasis      = regexp.MustCompile(`\*\*(.+?)\*\*|__(.+?)__`)
	spaces        = regexp.MustCompile(`\s+`)
)

// ParseModelJSON decodes JSON produced by an LLM. It accepts a bare document,
// one wrapped in a markdown code fence, one embedded in prose, and trailing
// commas before closing brackets.
func ParseModelJSON(input string, target any) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return ErrNoJSON
	}

	candidates := []string{input}
	if m := fencedBlock.FindStringSubmatch(input); len(m) > 1 {
		candidates = append(candidates, m[1])
	}
	if start := strings.Index(input, "{"); start >= 0 {
		if obj := balancedObject(input[start:]); obj != "" {
			candidates = append(candidates, obj)
		}
	}

	for _, c := range candidates {
		if err := json.Unmarshal([]byte(c), target); err == nil {
			return nil
		}
		fixed := trailingComma.ReplaceAllString(c, "$1")
		if err := json.Unmarshal([]byte(fixed), target); err == nil {
			return nil
		}
	}
	return ErrNoJSON
}

// balancedObject returns the first {...} block with balanced braces,
// ignoring braces inside strings
func balancedObject(input string) string {
	depth := 0
	inString := false
	escape := false

	for i, ch := range input {
		switch {
		case escape:
			escape = false
		case ch == '\\':
			escape = true
		case ch == '"':
			inString = !inString
		case inString:
		case ch == '{':
			depth++
		case ch == '}':
			depth--
			if depth == 0 {
				return input[:i+1]
			}
		}
	}
	return ""
}

// StripMarkdown reduces LLM prose to plain single-spaced text: code fences,
// headings and bold markers are removed.
func StripMarkdown(s string) string {
	if m := fencedBlock.FindStringSubmatch(s); len(m) > 1 {
		s = m[1]
	}

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimLeft(strings.TrimSpace(line), "#> ")
	}
	s = strings.Join(lines, " ")

	s = emphasis.ReplaceAllString(s, "$1$2")
	return strings.TrimSpace(spaces.ReplaceAllString(s, " "))
}
