package srt

import (
	"github.com/nguyentantai21042004/srt-docx/internal/logger"
)

type implParser struct {
	decoder *Decoder
	logger  logger.Logger
}

// New creates a Parser that decodes input with the given Decoder. The parser
// keeps no per-call state on the instance, so one Parser may be shared by
// concurrent conversions.
func New(dec *Decoder, log logger.Logger) Parser {
	return &implParser{
		decoder: dec,
		logger:  log,
	}
}
