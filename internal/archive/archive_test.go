package archive

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"
)

func TestBuildZip(t *testing.T) {
	root := t.TempDir()

	a := filepath.Join(root, "a.docx")
	b := filepath.Join(root, "sub", "b.docx")
	if err := os.WriteFile(a, []byte("doc a"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Dir(b), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(b, []byte("doc b"), 0644); err != nil {
		t.Fatal(err)
	}

	zipPath := filepath.Join(t.TempDir(), "out.zip")
	if err := BuildZip(zipPath, root, []string{a, b}); err != nil {
		t.Fatalf("BuildZip() error = %v", err)
	}

	zr, err := zip.OpenReader(zipPath)
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}
	defer zr.Close()

	got := make(map[string]bool)
	for _, f := range zr.File {
		got[f.Name] = true
	}
	for _, want := range []string{"a.docx", "sub/b.docx"} {
		if !got[want] {
			t.Errorf("archive missing entry %s, have %v", want, zr.File)
		}
	}
}

func TestBuildZipOutsideRoot(t *testing.T) {
	other := filepath.Join(t.TempDir(), "stray.docx")
	if err := os.WriteFile(other, []byte("doc"), 0644); err != nil {
		t.Fatal(err)
	}

	zipPath := filepath.Join(t.TempDir(), "out.zip")
	if err := BuildZip(zipPath, t.TempDir(), []string{other}); err != nil {
		t.Fatalf("BuildZip() error = %v", err)
	}

	zr, err := zip.OpenReader(zipPath)
	if err != nil {
		t.Fatal(err)
	}
	defer zr.Close()

	// Files outside the root fall back to their base name.
	if len(zr.File) != 1 || zr.File[0].Name != "stray.docx" {
		t.Errorf("unexpected entries: %v", zr.File)
	}
}

func TestBuildZipMissingFile(t *testing.T) {
	zipPath := filepath.Join(t.TempDir(), "out.zip")
	err := BuildZip(zipPath, t.TempDir(), []string{"/nonexistent/file.docx"})
	if err == nil {
		t.Error("BuildZip() should fail when an input file is missing")
	}
}
