package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/nguyentantai21042004/srt-docx/internal/config"
	"github.com/nguyentantai21042004/srt-docx/internal/converter"
	"github.com/nguyentantai21042004/srt-docx/internal/logger"
	"github.com/nguyentantai21042004/srt-docx/internal/renderer"
	"github.com/nguyentantai21042004/srt-docx/internal/scanner"
	"github.com/nguyentantai21042004/srt-docx/internal/srt"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to configuration file")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "SRT to DOCX Converter")
	log.Info(ctx, "========================================")
	log.Info(ctx, "Source: %s", cfg.Paths.Source)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "Style: %s", cfg.Renderer.Style)
	log.Info(ctx, "Max Concurrent: %d", cfg.Performance.MaxConcurrent)

	style, err := renderer.ParseStyle(cfg.Renderer.Style)
	if err != nil {
		log.Error(ctx, "Invalid renderer style: %v", err)
		os.Exit(1)
	}

	dec, err := srt.NewDecoder(cfg.Parser.Encodings, srt.DecodePolicy(cfg.Parser.DecodePolicy))
	if err != nil {
		log.Error(ctx, "Invalid parser configuration: %v", err)
		os.Exit(1)
	}

	parser := srt.New(dec, log)
	rend := renderer.New(style, cfg.Renderer.Font, cfg.Renderer.FontSize, log)
	conv := converter.New(cfg, parser, rend, log)

	if err := os.MkdirAll(cfg.Paths.Output, 0755); err != nil {
		log.Error(ctx, "Failed to create output directory: %v", err)
		os.Exit(1)
	}

	if cfg.Watch.Enabled {
		if err := runWatch(ctx, cfg, conv, log); err != nil {
			log.Error(ctx, "Watch mode failed: %v", err)
			os.Exit(1)
		}
		return
	}

	scan := scanner.New(cfg.Scan.Recursive, log)
	if err := runBatch(ctx, cfg, scan, conv, log); err != nil {
		log.Error(ctx, "Batch conversion failed: %v", err)
		os.Exit(1)
	}
}
