package srt

import (
	"context"
	"regexp"
	"strconv"
	"strings"
)

var (
	// A purely numeric line, optionally right-padded.
	reIndexLine = regexp.MustCompile(`^\d+\s*$`)

	// A complete timestamp-pair line. The pattern tier requires the whole
	// line to match.
	reTimestampLine = regexp.MustCompile(`^(\d{2}:\d{2}:\d{2}[,.]\d{3})\s*-->\s*(\d{2}:\d{2}:\d{2}[,.]\d{3})\s*$`)

	// A timestamp pair anchored at line start; trailing content is ignored.
	// Used by the fallback tier.
	reTimestampPrefix = regexp.MustCompile(`^(\d{2}:\d{2}:\d{2}[,.]\d{3})\s*-->\s*(\d{2}:\d{2}:\d{2}[,.]\d{3})`)

	// The start of a timestamp line, used only for block boundary detection.
	reTimestampStart = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}`)
)

// parsePattern scans the whole normalized text for blocks matching the strict
// grammar: an index line, a timestamp line, then consecutive non-empty text
// lines. A body ends at input end, at a blank line, or where the next block's
// header begins, so one body can never swallow the following header. A
// malformed block is skipped and scanning continues; zero matches signals the
// caller to try the fallback tier.
func (p *implParser) parsePattern(ctx context.Context, content string) []SubtitleRecord {
	lines := strings.Split(content, "\n")

	var records []SubtitleRecord
	i := 0
	for i < len(lines) {
		if !headerAt(lines, i) {
			i++
			continue
		}

		m := reTimestampLine.FindStringSubmatch(lines[i+1])
		start := normalizeTimestamp(m[1])
		end := normalizeTimestamp(m[2])

		var body []string
		j := i + 2
		for j < len(lines) && strings.TrimSpace(lines[j]) != "" && !boundaryAt(lines, j) {
			body = append(body, lines[j])
			j++
		}

		index, err := strconv.Atoi(strings.TrimSpace(lines[i]))
		if err != nil {
			p.logger.Debug(ctx, "Skipping block with unparseable index %q: %v", lines[i], err)
			i = j
			continue
		}

		text := SanitizeText(strings.Join(body, "\n"))
		if text == "" {
			p.logger.Debug(ctx, "Skipping block %d: no text left after sanitizing", index)
			i = j
			continue
		}

		records = append(records, SubtitleRecord{
			Index:     index,
			StartTime: start,
			EndTime:   end,
			Text:      text,
		})
		i = j
	}

	return records
}

// headerAt reports whether a full block header starts at position i: a
// purely numeric line immediately followed by a complete timestamp line.
func headerAt(lines []string, i int) bool {
	return i+1 < len(lines) &&
		reIndexLine.MatchString(lines[i]) &&
		reTimestampLine.MatchString(lines[i+1])
}

// boundaryAt reports whether the next block appears to begin at position i:
// a purely numeric line immediately followed by a line that starts with a
// timestamp.
func boundaryAt(lines []string, i int) bool {
	return i+1 < len(lines) &&
		reIndexLine.MatchString(lines[i]) &&
		reTimestampStart.MatchString(lines[i+1])
}

// normalizeTimestamp rewrites a comma fractional separator to the canonical
// decimal point.
func normalizeTimestamp(ts string) string {
	return strings.Replace(ts, ",", ".", 1)
}
