package main

import (
	"context"
	"path/filepath"
	"runtime"

	"github.com/nguyentantai21042004/srt-docx/internal/archive"
	"github.com/nguyentantai21042004/srt-docx/internal/config"
	"github.com/nguyentantai21042004/srt-docx/internal/converter"
	"github.com/nguyentantai21042004/srt-docx/internal/logger"
	"github.com/nguyentantai21042004/srt-docx/internal/scanner"
	"github.com/nguyentantai21042004/srt-docx/pkg/executor"
)

// runBatch performs a one-shot conversion of every SRT file under the source
// directory and logs an aggregate report.
func runBatch(ctx context.Context, cfg *config.Config, scan scanner.Scanner, conv converter.Converter, log logger.Logger) error {
	files, err := scan.Scan(ctx, cfg.Paths.Source)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		log.Warn(ctx, "No SRT files found in %s", cfg.Paths.Source)
		return nil
	}

	var totalSize int64
	for _, f := range files {
		totalSize += f.SizeBytes
	}
	log.Info(ctx, "Found %d SRT file(s) (total: %s)", len(files), scanner.FormatSize(totalSize))

	report := conv.ConvertAll(ctx, files)

	log.Info(ctx, "========================================")
	log.Info(ctx, "Conversion complete: %d/%d successful, %d failed", report.Successful, report.Total, report.Failed)
	for _, e := range report.Errors {
		log.Warn(ctx, "  %s", e)
	}
	log.Info(ctx, "========================================")

	if cfg.Archive.Enabled && len(report.Outputs) > 0 {
		zipPath := filepath.Join(cfg.Paths.Output, cfg.Archive.Name)
		if err := archive.BuildZip(zipPath, cfg.Paths.Output, report.Outputs); err != nil {
			log.Error(ctx, "Failed to build archive: %v", err)
		} else {
			log.Info(ctx, "Archive written: %s", zipPath)
		}
	}

	if cfg.OpenOutput && report.Successful > 0 {
		openFolder(ctx, executor.New(), log, cfg.Paths.Output)
	}

	return nil
}

// openFolder shows the output directory in the platform file manager.
func openFolder(ctx context.Context, exec executor.Executor, log logger.Logger, path string) {
	var name string
	switch runtime.GOOS {
	case "darwin":
		name = "open"
	case "windows":
		name = "explorer"
	default:
		name = "xdg-open"
	}

	if _, err := exec.Execute(ctx, name, path); err != nil {
		log.Warn(ctx, "Could not open output folder %s: %v", path, err)
	}
}
