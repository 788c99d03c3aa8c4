package srt

import (
	"regexp"
	"strings"
)

// Inline markup: HTML-like tags and ASS/SSA brace directives. One match per
// tag, never spanning multiple tags.
var reMarkupTag = regexp.MustCompile(`<[^>]+>|\{[^}]+\}`)

// SanitizeText strips inline markup from a multi-line text fragment, trims
// each line and drops lines that end up empty. Returns "" when nothing
// survives; callers must treat that as "no content" and discard the
// candidate record.
func SanitizeText(text string) string {
	text = reMarkupTag.ReplaceAllString(text, "")

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}

	return strings.Join(lines, "\n")
}
