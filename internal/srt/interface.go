package srt

import "context"

// Parser is the end-to-end subtitle parsing pipeline: decode, normalize,
// pattern parse, line-based fallback.
type Parser interface {
	// Parse decodes raw file bytes and parses them into subtitle records.
	// It fails only when the decoder runs under the strict policy and no
	// candidate encoding succeeds. Fully unparseable input yields an empty
	// slice, not an error.
	Parse(ctx context.Context, data []byte) ([]SubtitleRecord, error)

	// ParseString parses already-decoded text. It never fails.
	ParseString(ctx context.Context, content string) []SubtitleRecord
}
