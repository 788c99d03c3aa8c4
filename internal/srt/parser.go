package srt

import "context"

// Parse runs the full pipeline on raw file bytes.
func (p *implParser) Parse(ctx context.Context, data []byte) ([]SubtitleRecord, error) {
	content, err := p.decoder.Decode(data)
	if err != nil {
		return nil, err
	}
	return p.ParseString(ctx, content), nil
}

// ParseString parses decoded text. The pattern tier runs first; when it
// matches nothing the file is treated as non-conforming and handed to the
// lenient line-based tier.
func (p *implParser) ParseString(ctx context.Context, content string) []SubtitleRecord {
	content = NormalizeContent(content)

	records := p.parsePattern(ctx, content)
	if len(records) == 0 {
		p.logger.Debug(ctx, "Pattern parse matched no blocks, trying line-based fallback")
		records = p.parseBlocks(ctx, content)
	}

	return records
}
