package converter

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/nguyentantai21042004/srt-docx/internal/scanner"
)

// ConvertAll converts the batch with bounded concurrency. Every file is
// attempted; per-file errors are collected into the report and never stop
// the remaining conversions.
func (c *implConverter) ConvertAll(ctx context.Context, files []scanner.FileInfo) Report {
	report := Report{Total: len(files)}
	if len(files) == 0 {
		return report
	}

	sem := newSemaphore(c.cfg.Performance.MaxConcurrent)
	var wg sync.WaitGroup
	var mu sync.Mutex

	for i, f := range files {
		if err := sem.acquire(ctx); err != nil {
			mu.Lock()
			report.Failed++
			report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", filepath.Base(f.Path), err))
			mu.Unlock()
			continue
		}

		wg.Add(1)
		go func(seq int, srtPath string) {
			defer wg.Done()
			defer sem.release()

			name := filepath.Base(srtPath)
			c.logger.Info(ctx, "Converting (%d/%d): %s", seq+1, len(files), name)

			count, outPath, err := c.ConvertFile(ctx, srtPath)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				report.Failed++
				report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", name, err))
				c.logger.Error(ctx, "Failed to convert %s: %v", name, err)
				return
			}

			report.Successful++
			report.Outputs = append(report.Outputs, outPath)
			c.logger.Info(ctx, "[DONE] %s -> %s (%d subtitles)", name, outPath, count)
		}(i, f.Path)
	}

	wg.Wait()
	return report
}
