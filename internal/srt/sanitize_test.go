package srt

import "testing"

func TestSanitizeText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text", "Hello there", "Hello there"},
		{"html tags", "<i>Hello</i> <b>world</b>", "Hello world"},
		{"brace tags", "{\\an8}On top", "On top"},
		{"mixed tags", "<font color=\"red\">{\\i1}styled</font>", "styled"},
		{"per line trim", "  Hello  \n  world  ", "Hello\nworld"},
		{"empty lines dropped", "Hello\n\n\nworld", "Hello\nworld"},
		{"only tags", "<i></i>", ""},
		{"tags and whitespace", " <b> </b> \n {x} ", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeText(tt.input); got != tt.want {
				t.Errorf("SanitizeText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeTextIdempotent(t *testing.T) {
	input := "<i> Hello </i>\n\n<b>world</b>"
	once := SanitizeText(input)
	twice := SanitizeText(once)
	if once != twice {
		t.Errorf("not idempotent: %q vs %q", once, twice)
	}
}
