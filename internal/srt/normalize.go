package srt

import "strings"

const bom = "\ufeff"

// NormalizeContent unifies line endings to a single "\n", strips any leading
// byte order mark and trims surrounding whitespace. The trim must run last.
// Idempotent: applying it twice yields the same result as once.
func NormalizeContent(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	for strings.HasPrefix(s, bom) {
		s = strings.TrimPrefix(s, bom)
	}

	return strings.TrimSpace(s)
}
