package renderer

import (
	"context"

	"github.com/nguyentantai21042004/srt-docx/internal/srt"
)

// Renderer writes a parsed record sequence to a document file. It performs no
// validation of the records themselves; parsing guarantees their invariants.
type Renderer interface {
	Render(ctx context.Context, records []srt.SubtitleRecord, sourceName, outputPath string) error
}
