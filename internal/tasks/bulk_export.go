package tasks

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/desertthunder/lyrx/internal/formatter"
	"github.com/desertthunder/lyrx/internal/models"
	"github.com/desertthunder/lyrx/internal/shared"
)

// BulkExportOpts contains configuration for bulk lyrics exports.
type BulkExportOpts struct {
	OutputDir  string                   // Base output directory (default: lyrics_export_{epoch})
	NumWorkers int                      // Concurrent file writers (default: 3, max: 10)
	RateLimit  float64                  // Searches per second (default: 2)
	Formats    []formatter.LyricsFormat // Files to write per track (default: txt and lrc)
}

// LyricsExportJob is a resolved query waiting to be written.
type LyricsExportJob struct {
	Index int
	Query string
	Track models.Track
}

// LyricsExportResult records the outcome for one query.
type LyricsExportResult struct {
	Index   int
	Query   string
	Track   *models.Track
	Files   []string
	Skipped []formatter.LyricsFormat // formats the track had no lyrics for
	Success bool
	Error   error
}

// Name is "<artist> - <track>" when the query resolved, otherwise the query itself.
func (r LyricsExportResult) Name() string {
	if r.Track == nil {
		return r.Query
	}
	return r.Track.ArtistName + " - " + r.Track.TrackName
}

// BulkExportResult summarizes a [LyricsEngine.BulkExport] run. Results are in input order.
type BulkExportResult struct {
	TotalQueries      int
	SuccessfulExports int
	FailedExports     int
	OutputDirectory   string
	ManifestPath      string
	Results           []LyricsExportResult
}

// ExportManifest is the JSON document written to export_manifest.json.
type ExportManifest struct {
	ExportedAt      time.Time       `json:"exported_at"`
	TotalQueries    int             `json:"total_queries"`
	Successful      int             `json:"successful"`
	Failed          int             `json:"failed"`
	OutputDirectory string          `json:"output_directory"`
	Entries         []ManifestEntry `json:"entries"`
}

// ManifestEntry describes one query in an [ExportManifest].
type ManifestEntry struct {
	Query    string   `json:"query"`
	TrackID  int      `json:"track_id,omitempty"`
	Artist   string   `json:"artist,omitempty"`
	Track    string   `json:"track,omitempty"`
	Duration string   `json:"duration,omitempty"`
	Files    []string `json:"files,omitempty"`
	Skipped  []string `json:"skipped,omitempty"`
	Success  bool     `json:"success"`
	Error    string   `json:"error,omitempty"`
}

// BulkExport searches every query and downloads the first result's lyrics with rate limiting and progress tracking.
//
// A single producer paces searches with a token bucket and hands resolved tracks to a pool of workers that write
// the files. Per-query failures are recorded in the result; the manifest is written even when every query fails.
func (e *LyricsEngine) BulkExport(
	ctx context.Context,
	prog chan<- ProgressUpdate,
	queries []string,
	opts BulkExportOpts,
) (*BulkExportResult, error) {
	if e.svc == nil {
		return nil, fmt.Errorf("%w: lyrics service not initialized", shared.ErrServiceUnavailable)
	}

	queries = slices.DeleteFunc(slices.Clone(queries), func(q string) bool { return strings.TrimSpace(q) == "" })
	if len(queries) == 0 {
		return nil, fmt.Errorf("%w: no queries to export", shared.ErrMissingArgument)
	}

	if opts.OutputDir == "" {
		opts.OutputDir = fmt.Sprintf("lyrics_export_%d", time.Now().Unix())
	}
	if opts.NumWorkers <= 0 {
		opts.NumWorkers = 3
	}
	if opts.NumWorkers > 10 {
		opts.NumWorkers = 10
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = 2.0
	}
	if len(opts.Formats) == 0 {
		opts.Formats = []formatter.LyricsFormat{formatter.FormatText, formatter.FormatLRC}
	}

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	total := len(queries)
	result := &BulkExportResult{
		TotalQueries:    total,
		OutputDirectory: opts.OutputDir,
		Results:         make([]LyricsExportResult, 0, total),
	}

	limiter := rate.NewLimiter(rate.Limit(opts.RateLimit), 1)

	jobs := make(chan LyricsExportJob, total)
	results := make(chan LyricsExportResult, total)

	var wg sync.WaitGroup
	for i := 0; i < opts.NumWorkers; i++ {
		wg.Add(1)
		go e.exportWorker(ctx, &wg, jobs, results, opts)
	}

	go func() {
		defer close(jobs)
		for i, query := range queries {
			if err := limiter.Wait(ctx); err != nil {
				for j := i; j < total; j++ {
					results <- LyricsExportResult{Index: j, Query: queries[j], Error: err}
				}
				return
			}

			e.sendProgress(prog, searchingUpdate(i+1, total, query))
			track, err := e.Lookup(ctx, query)
			if err != nil {
				results <- LyricsExportResult{Index: i, Query: query, Error: err}
				continue
			}

			jobs <- LyricsExportJob{Index: i, Query: query, Track: track}
			e.sendProgress(prog, exportingUpdate(i+1, total, track))
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	completed := 0
	for res := range results {
		completed++
		result.Results = append(result.Results, res)

		if res.Success {
			result.SuccessfulExports++
			e.sendProgress(prog, exportCompletedUpdate(completed, total, res.Name(), len(res.Files)))
		} else {
			result.FailedExports++
			e.sendProgress(prog, exportFailedUpdate(completed, total, res.Name(), res.Error))
		}
	}

	slices.SortFunc(result.Results, func(a, b LyricsExportResult) int { return a.Index - b.Index })

	manifestPath := filepath.Join(opts.OutputDir, "export_manifest.json")
	e.sendProgress(prog, manifestUpdate(manifestPath))
	if err := WriteManifest(result, manifestPath); err != nil {
		return result, fmt.Errorf("export completed but failed to write manifest: %w", err)
	}
	result.ManifestPath = manifestPath

	if err := ctx.Err(); err != nil {
		return result, err
	}
	return result, nil
}

// exportWorker is a worker goroutine that writes lyrics files for jobs from the jobs channel.
//
// Jobs still queued after cancellation are reported as failed so every query is accounted for.
func (e *LyricsEngine) exportWorker(
	ctx context.Context,
	wg *sync.WaitGroup,
	jobs <-chan LyricsExportJob,
	results chan<- LyricsExportResult,
	opts BulkExportOpts,
) {
	defer wg.Done()

	for job := range jobs {
		if err := ctx.Err(); err != nil {
			track := job.Track
			results <- LyricsExportResult{Index: job.Index, Query: job.Query, Track: &track, Error: err}
			continue
		}
		results <- e.exportSingleTrack(job, opts)
	}
}

// exportSingleTrack writes every requested format the track has lyrics for.
//
// A missing synced text is a skip, not a failure; the export fails only when no file could be written.
func (e *LyricsEngine) exportSingleTrack(j LyricsExportJob, opts BulkExportOpts) LyricsExportResult {
	track := j.Track
	result := LyricsExportResult{
		Index: j.Index,
		Query: j.Query,
		Track: &track,
		Files: []string{},
	}

	var errs []error
	for _, f := range opts.Formats {
		if f == formatter.FormatLRC && !track.HasSyncedLyrics() {
			result.Skipped = append(result.Skipped, f)
			continue
		}

		path, err := formatter.WriteLyricsExport(track, f, opts.OutputDir)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s export failed: %w", f, err))
			continue
		}
		result.Files = append(result.Files, path)
	}

	switch {
	case len(errs) > 0:
		result.Error = errors.Join(errs...)
	case len(result.Files) == 0:
		result.Error = fmt.Errorf("%w: %s", shared.ErrLyricsUnavailable, result.Name())
	default:
		result.Success = true
	}
	return result
}

// WriteManifest writes a JSON summary of result to path.
func WriteManifest(result *BulkExportResult, path string) error {
	manifest := ExportManifest{
		ExportedAt:      time.Now().UTC(),
		TotalQueries:    result.TotalQueries,
		Successful:      result.SuccessfulExports,
		Failed:          result.FailedExports,
		OutputDirectory: result.OutputDirectory,
		Entries:         make([]ManifestEntry, 0, len(result.Results)),
	}

	for _, r := range result.Results {
		entry := ManifestEntry{Query: r.Query, Files: r.Files, Success: r.Success}
		if r.Track != nil {
			entry.TrackID = r.Track.ID
			entry.Artist = r.Track.ArtistName
			entry.Track = r.Track.TrackName
			entry.Duration = shared.FormatDuration(r.Track.Duration)
		}
		for _, f := range r.Skipped {
			entry.Skipped = append(entry.Skipped, string(f))
		}
		if r.Error != nil {
			entry.Error = r.Error.Error()
		}
		manifest.Entries = append(manifest.Entries, entry)
	}

	data, err := shared.MarshalJSON(manifest, true)
	if err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}
