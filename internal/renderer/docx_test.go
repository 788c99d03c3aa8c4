package renderer

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/nguyentantai21042004/srt-docx/internal/logger"
	"github.com/nguyentantai21042004/srt-docx/internal/srt"
)

func testRecords() []srt.SubtitleRecord {
	return []srt.SubtitleRecord{
		{Index: 1, StartTime: "00:00:01.000", EndTime: "00:00:04.500", Text: "Hello, welcome!"},
		{Index: 2, StartTime: "00:00:05.000", EndTime: "00:00:08.200", Text: "Two lines\nof dialogue."},
	}
}

func TestRenderAllStyles(t *testing.T) {
	dir := t.TempDir()

	for _, style := range Styles() {
		t.Run(string(style), func(t *testing.T) {
			outPath := filepath.Join(dir, string(style)+".docx")

			r := New(style, "", 0, logger.New("error"))
			if err := r.Render(context.Background(), testRecords(), "example.srt", outPath); err != nil {
				t.Fatalf("Render() error = %v", err)
			}

			data, err := os.ReadFile(outPath)
			if err != nil {
				t.Fatalf("output not written: %v", err)
			}
			if len(data) == 0 {
				t.Fatal("output file is empty")
			}
			// DOCX is an OPC package, i.e. a ZIP container.
			if len(data) < 2 || data[0] != 'P' || data[1] != 'K' {
				t.Errorf("output does not look like a DOCX package")
			}
		})
	}
}

func TestRenderCustomFont(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "custom.docx")

	r := New(StylePlain, "Georgia", 13, logger.New("error"))
	if err := r.Render(context.Background(), testRecords(), "example.srt", outPath); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if fi, err := os.Stat(outPath); err != nil || fi.Size() == 0 {
		t.Errorf("output missing or empty: %v", err)
	}
}

func TestRenderNoRecords(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "empty.docx")

	r := New(StyleTable, "", 0, logger.New("error"))
	if err := r.Render(context.Background(), nil, "example.srt", outPath); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if _, err := os.Stat(outPath); err != nil {
		t.Errorf("output not written: %v", err)
	}
}
