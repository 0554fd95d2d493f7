package runreport

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"gaharness/internal/runtable"
)

// Aggregate summarizes every file in dir whose name matches opts and passes
// the report to visit, in directory-listing order. The first failure stops
// the pass; reports already visited stay visited. It returns the number of
// files summarized. Report.Index and Report.Total count every directory
// entry, skipped ones included; "." and ".." are not entries.
func Aggregate(ctx context.Context, dir string, opts Options, visit func(Report) error) (int, error) {
	if err := opts.Validate(); err != nil {
		return 0, err
	}
	logger := opts.logger()

	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, err
	}
	logger.Info("processing output files", zap.String("dir", dir), zap.Int("entries", len(entries)))

	processed := 0
	for i, entry := range entries {
		if err := ctx.Err(); err != nil {
			return processed, err
		}
		if entry.IsDir() || !opts.Matches(entry.Name()) {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		table, err := runtable.ReadFile(path)
		if err != nil {
			return processed, fmt.Errorf("read %s: %w", path, err)
		}
		report, err := Summarize(table, opts)
		if err != nil {
			return processed, err
		}
		report.Index = i + 1
		report.Total = len(entries)
		logger.Debug("summarized output file",
			zap.String("file", report.File),
			zap.Int("rows", table.Len()),
			zap.Float64("average", report.Average),
		)

		if err := visit(report); err != nil {
			return processed, err
		}
		processed++
	}
	logger.Info("completed processing output files", zap.Int("reports", processed))
	return processed, nil
}
