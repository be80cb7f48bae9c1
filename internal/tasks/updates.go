package tasks

import (
	"fmt"
	"net/url"

	"github.com/desertthunder/lyrx/internal/models"
)

// ProgressUpdate represents a progress event during a long-running operation.
//
// Used to send real-time updates to the CLI or UI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data for advanced UIs
}

// Operation phase enumeration
type Phase int

const (
	SearchLyrics Phase = iota
	ExportLyrics
	WriteManifest
	DumpResponses
)

func (p Phase) String() string {
	switch p {
	case SearchLyrics:
		return "search_lyrics"
	case ExportLyrics:
		return "export_lyrics"
	case WriteManifest:
		return "write_manifest"
	case DumpResponses:
		return "dump_responses"
	default:
		return ""
	}
}

func searchParams(query string) string {
	return url.Values{"q": []string{query}}.Encode()
}

func searchingUpdate(step, total int, query string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   SearchLyrics,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] Searching: %s...", step, total, query),
	}
}

func exportingUpdate(step, total int, tr models.Track) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ExportLyrics,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] Exporting: %s - %s...", step, total, tr.ArtistName, tr.TrackName),
		Data:    tr,
	}
}

func exportCompletedUpdate(step, total int, name string, filesCount int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ExportLyrics,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] ✓ %s (%d files)", step, total, name, filesCount),
	}
}

func exportFailedUpdate(step, total int, name string, err error) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ExportLyrics,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] ✗ %s: %v", step, total, name, err),
	}
}

func manifestUpdate(path string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   WriteManifest,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Writing manifest: %s", path),
	}
}

func dumpQueryUpdate(step, total int, query string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   DumpResponses,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] Fetching raw response for %q...", step, total, query),
	}
}
