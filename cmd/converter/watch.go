package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/nguyentantai21042004/srt-docx/internal/config"
	"github.com/nguyentantai21042004/srt-docx/internal/converter"
	"github.com/nguyentantai21042004/srt-docx/internal/logger"
	"github.com/nguyentantai21042004/srt-docx/internal/watcher"
)

// runWatch monitors the source directory and converts each new SRT file as
// it arrives, until interrupted.
func runWatch(ctx context.Context, cfg *config.Config, conv converter.Converter, log logger.Logger) error {
	handler := func(ctx context.Context, path string) error {
		count, outPath, err := conv.ConvertFile(ctx, path)
		if err != nil {
			return err
		}
		log.Info(ctx, "[DONE] %s -> %s (%d subtitles)", filepath.Base(path), outPath, count)
		return nil
	}

	w, err := watcher.New(cfg.Paths.Source, handler, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		return err
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "Watching %s for new SRT files. Press Ctrl+C to stop", cfg.Paths.Source)

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		return err
	}

	cancel()
	return nil
}
