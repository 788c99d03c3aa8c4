package srt

import (
	"context"
	"strconv"
	"strings"
)

// parseBlocks is the lenient tier for files that fail the strict grammar.
// Blocks are paragraphs separated by blank lines; each is validated
// independently and malformed ones are dropped without aborting the parse.
// Block order is preserved as encountered.
func (p *implParser) parseBlocks(ctx context.Context, content string) []SubtitleRecord {
	var records []SubtitleRecord

	for _, block := range strings.Split(content, "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}

		lines := strings.Split(block, "\n")
		if len(lines) < 3 {
			continue
		}

		index, err := strconv.Atoi(strings.TrimSpace(lines[0]))
		if err != nil {
			p.logger.Debug(ctx, "Skipping block with non-integer index %q", lines[0])
			continue
		}

		m := reTimestampPrefix.FindStringSubmatch(strings.TrimSpace(lines[1]))
		if m == nil {
			p.logger.Debug(ctx, "Skipping block %d: malformed timestamp line %q", index, lines[1])
			continue
		}

		text := SanitizeText(strings.Join(lines[2:], "\n"))
		if text == "" {
			p.logger.Debug(ctx, "Skipping block %d: no text left after sanitizing", index)
			continue
		}

		records = append(records, SubtitleRecord{
			Index:     index,
			StartTime: normalizeTimestamp(m[1]),
			EndTime:   normalizeTimestamp(m[2]),
			Text:      text,
		})
	}

	return records
}
