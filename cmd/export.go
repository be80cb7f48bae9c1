package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/desertthunder/lyrx/internal/formatter"
	"github.com/desertthunder/lyrx/internal/shared"
	"github.com/desertthunder/lyrx/internal/tasks"
	"github.com/urfave/cli/v3"
)

// readQueries reads one query per line from path ("-" for stdin), skipping blanks and # comments.
func readQueries(path string, stdin io.Reader) ([]string, error) {
	var src io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open query file: %w", err)
		}
		defer f.Close()
		src = f
	}

	queries := []string{}
	scanner := bufio.NewScanner(src)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		queries = append(queries, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read queries: %w", err)
	}
	return queries, nil
}

func parseFormats(values []string) ([]formatter.LyricsFormat, error) {
	formats := make([]formatter.LyricsFormat, 0, len(values))
	for _, v := range values {
		for part := range strings.SplitSeq(v, ",") {
			f, err := formatter.ParseLyricsFormat(part)
			if err != nil {
				return nil, err
			}
			formats = append(formats, f)
		}
	}
	return formats, nil
}

// Export downloads lyrics for every query in a file with rate-limited searches and concurrent writers.
func (r *Runner) Export(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("file")
	if path == "" {
		return fmt.Errorf("%w: --file", shared.ErrMissingArgument)
	}
	if err := r.requireLyrics(); err != nil {
		return err
	}

	queries, err := readQueries(path, os.Stdin)
	if err != nil {
		return err
	}

	formats, err := parseFormats(cmd.StringSlice("format"))
	if err != nil {
		return err
	}

	opts := tasks.BulkExportOpts{
		OutputDir:  cmd.String("dir"),
		NumWorkers: int(cmd.Int("workers")),
		RateLimit:  cmd.Float("rate"),
		Formats:    formats,
	}
	if opts.NumWorkers == 0 {
		opts.NumWorkers = r.config.Export.Workers
	}
	if opts.RateLimit == 0 {
		opts.RateLimit = r.config.Export.RateLimit
	}

	r.logger.Info("starting bulk export", "queries", len(queries), "workers", opts.NumWorkers, "rate", opts.RateLimit)
	r.writePlain("Exporting lyrics for %d queries...\n\n", len(queries))

	progressCh := make(chan tasks.ProgressUpdate, 50)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for update := range progressCh {
			switch update.Phase {
			case tasks.SearchLyrics:
				r.writePlain("🔍 %s\n", update.Message)
			case tasks.ExportLyrics:
				r.writePlain("   %s\n", update.Message)
			case tasks.WriteManifest:
				r.writePlain("\n📝 %s\n", update.Message)
			}
		}
	}()

	result, err := r.engine.BulkExport(ctx, progressCh, queries, opts)
	close(progressCh)
	<-done

	if result == nil {
		return err
	}

	r.writePlain("\n")
	r.writePlainHeader("Export Complete!")
	r.writePlain("Output: %s\n", result.OutputDirectory)
	r.writePlain("Success: %d/%d\n", result.SuccessfulExports, result.TotalQueries)
	if result.ManifestPath != "" {
		r.writePlain("Manifest: %s\n", result.ManifestPath)
	}

	if result.FailedExports > 0 {
		r.writePlain("\nFailed %d queries:\n", result.FailedExports)
		for _, res := range result.Results {
			if !res.Success {
				r.writePlain("  - %s: %v\n", res.Name(), res.Error)
			}
		}
	}

	return err
}
