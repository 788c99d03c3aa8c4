package renderer

import (
	"github.com/nguyentantai21042004/srt-docx/internal/logger"
)

const (
	defaultFont     = "Calibri"
	defaultFontSize = 11
)

type implRenderer struct {
	style    Style
	font     string
	fontSize uint64
	logger   logger.Logger
}

// New creates a Renderer producing documents in the given style. Empty font
// settings fall back to the defaults.
func New(style Style, font string, fontSize uint64, log logger.Logger) Renderer {
	if font == "" {
		font = defaultFont
	}
	if fontSize == 0 {
		fontSize = defaultFontSize
	}

	return &implRenderer{
		style:    style,
		font:     font,
		fontSize: fontSize,
		logger:   log,
	}
}
