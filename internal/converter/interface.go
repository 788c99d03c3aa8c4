package converter

import (
	"context"

	"github.com/nguyentantai21042004/srt-docx/internal/scanner"
)

// Converter turns SRT files into rendered documents.
type Converter interface {
	// ConvertFile converts one file, returning the parsed record count and
	// the produced document path.
	ConvertFile(ctx context.Context, srtPath string) (int, string, error)

	// ConvertAll converts a batch concurrently and returns an aggregate
	// report. Individual failures never abort the batch.
	ConvertAll(ctx context.Context, files []scanner.FileInfo) Report
}

// Report summarizes a batch conversion.
type Report struct {
	Total      int
	Successful int
	Failed     int
	Outputs    []string
	Errors     []string
}
