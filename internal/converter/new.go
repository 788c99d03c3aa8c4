package converter

import (
	"github.com/nguyentantai21042004/srt-docx/internal/config"
	"github.com/nguyentantai21042004/srt-docx/internal/logger"
	"github.com/nguyentantai21042004/srt-docx/internal/renderer"
	"github.com/nguyentantai21042004/srt-docx/internal/srt"
)

type implConverter struct {
	cfg      *config.Config
	parser   srt.Parser
	renderer renderer.Renderer
	logger   logger.Logger
}

// New creates a new Converter instance
func New(cfg *config.Config, parser srt.Parser, rend renderer.Renderer, log logger.Logger) Converter {
	return &implConverter{
		cfg:      cfg,
		parser:   parser,
		renderer: rend,
		logger:   log,
	}
}
