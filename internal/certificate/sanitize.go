package certificate

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	tagPattern        = regexp.MustCompile(`(?s)<[^>]*>`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Sanitize turns raw form input into a single line of plain text: tags and
// control characters are removed, whitespace runs collapse to one space.
func Sanitize(s string) string {
	s = tagPattern.ReplaceAllString(s, "")
	s = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' || r == '\r' {
			return ' '
		}
		if unicode.IsControl(r) || r == unicode.ReplacementChar {
			return -1
		}
		return r
	}, s)
	s = whitespacePattern.ReplaceAllString(s, " ")

	return strings.TrimSpace(s)
}
