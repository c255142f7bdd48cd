// Package load orchestrates the extraction pipeline: reading discovered
// digest files, parsing them, and writing the resulting records to storage.
package load

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	trending "github.com/theskumar/github-trending"
)

// Loader runs the digest extraction pipeline. Files are processed strictly
// sequentially in the order given; there is one writer and one thread.
type Loader struct {
	// Records is the destination store.
	Records trending.RecordService

	// Stdout receives per-file progress lines; Stderr receives warnings and
	// per-file read errors.
	Stdout io.Writer
	Stderr io.Writer

	// Logger receives structured operational logs. Optional.
	Logger *slog.Logger
}

// Run processes the given files in order and returns the total number of
// records written. A file that cannot be read is reported once on Stderr and
// contributes zero records; content anomalies are reported as warnings and
// never abort a file. Run fails only on storage errors.
func (l *Loader) Run(ctx context.Context, files []trending.DigestFile) (int, error) {
	logger := l.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	total := 0
	for _, file := range files {
		content, err := os.ReadFile(file.Path)
		if err != nil {
			fmt.Fprintf(l.Stderr, "Error reading %s: %v\n", file.Path, err)
			fmt.Fprintf(l.Stdout, "Processed %s: 0 repositories\n", filepath.Base(file.Path))
			continue
		}

		records, warnings := trending.ParseDigest(file.Path, file.Date, string(content))
		for _, w := range warnings {
			fmt.Fprintln(l.Stderr, w)
		}

		count := 0
		if len(records) > 0 {
			count, err = l.Records.UpsertRecords(ctx, records)
			if err != nil {
				return total, fmt.Errorf("failed to store records from %s: %w", file.Path, err)
			}
		}
		total += count

		logger.Info("digest processed",
			"file", file.Path,
			"date", file.Date,
			"records", count,
			"warnings", len(warnings),
		)
		fmt.Fprintf(l.Stdout, "Processed %s: %d repositories\n", filepath.Base(file.Path), count)
	}

	return total, nil
}
