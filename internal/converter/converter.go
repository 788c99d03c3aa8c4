package converter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ConvertFile runs the per-file pipeline: read bytes, parse, render. A file
// that parses to zero records is an error for that file ("no valid
// subtitles"), matching the batch layer's skip semantics.
func (c *implConverter) ConvertFile(ctx context.Context, srtPath string) (int, string, error) {
	data, err := os.ReadFile(srtPath)
	if err != nil {
		return 0, "", fmt.Errorf("read file: %w", err)
	}

	records, err := c.parser.Parse(ctx, data)
	if err != nil {
		return 0, "", fmt.Errorf("parse: %w", err)
	}
	if len(records) == 0 {
		return 0, "", fmt.Errorf("no valid subtitles found")
	}

	outPath, err := c.outputPath(srtPath)
	if err != nil {
		return 0, "", err
	}

	if err := c.renderer.Render(ctx, records, filepath.Base(srtPath), outPath); err != nil {
		return 0, "", fmt.Errorf("render: %w", err)
	}

	return len(records), outPath, nil
}

// outputPath mirrors the source subtree under the output root and avoids
// clobbering existing documents by suffixing " (n)".
func (c *implConverter) outputPath(srtPath string) (string, error) {
	rel, err := filepath.Rel(c.cfg.Paths.Source, srtPath)
	if err != nil || strings.HasPrefix(rel, "..") {
		rel = filepath.Base(srtPath)
	}

	outDir := filepath.Join(c.cfg.Paths.Output, filepath.Dir(rel))
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(srtPath), filepath.Ext(srtPath))
	outPath := filepath.Join(outDir, base+".docx")
	for counter := 1; ; counter++ {
		if _, err := os.Stat(outPath); os.IsNotExist(err) {
			break
		}
		outPath = filepath.Join(outDir, fmt.Sprintf("%s (%d).docx", base, counter))
	}

	return outPath, nil
}
