package scanner

import "context"

// Scanner discovers subtitle files under a root directory.
type Scanner interface {
	// Scan returns every .srt file under root in sorted path order, so batch
	// conversions process files deterministically.
	Scan(ctx context.Context, root string) ([]FileInfo, error)
}

// FileInfo describes one discovered subtitle file.
type FileInfo struct {
	Path      string
	SizeBytes int64
}
