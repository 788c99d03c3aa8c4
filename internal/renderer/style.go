package renderer

import (
	"fmt"
	"strings"
)

// Style selects the document layout.
type Style string

const (
	// StyleTable writes a four-column table: index, start, end, text.
	StyleTable Style = "table"
	// StylePlain writes numbered entries with separators between them.
	StylePlain Style = "plain"
	// StyleFormatted writes paragraphs with small inline timestamps.
	StyleFormatted Style = "formatted"
	// StyleTextOnly writes subtitle text alone, no numbers or timestamps.
	StyleTextOnly Style = "text_only"
	// StyleScript writes a screenplay-like dialogue layout.
	StyleScript Style = "script"
)

// Styles lists every supported style in display order.
func Styles() []Style {
	return []Style{StyleTable, StylePlain, StyleFormatted, StyleTextOnly, StyleScript}
}

// ParseStyle validates a style name from configuration.
func ParseStyle(name string) (Style, error) {
	s := Style(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Styles() {
		if s == known {
			return s, nil
		}
	}

	names := make([]string, 0, len(Styles()))
	for _, known := range Styles() {
		names = append(names, string(known))
	}
	return "", fmt.Errorf("unknown style %q, available: %s", name, strings.Join(names, ", "))
}
