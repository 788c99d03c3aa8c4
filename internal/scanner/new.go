package scanner

import (
	"github.com/nguyentantai21042004/srt-docx/internal/logger"
)

type implScanner struct {
	recursive bool
	logger    logger.Logger
}

// New creates a Scanner. With recursive set it walks the whole subtree;
// otherwise only the root directory's own entries are considered.
func New(recursive bool, log logger.Logger) Scanner {
	return &implScanner{
		recursive: recursive,
		logger:    log,
	}
}
