// package tasks implements bulk lyrics operations against a lyrics search service.
//
// The core abstraction is LyricsEngine, which resolves queries, exports lyrics files and dumps raw responses.
// Operations emit progress updates via channels for non-blocking status reporting to CLI/UI layers.
package tasks

import (
	"context"
	"fmt"
	"strings"

	"github.com/desertthunder/lyrx/internal/models"
	"github.com/desertthunder/lyrx/internal/services"
	"github.com/desertthunder/lyrx/internal/shared"
)

// EndpointResult represents the result of fetching data from a single API path.
type EndpointResult struct {
	Query    string `json:"query"`
	Endpoint string `json:"endpoint"`
	Status   int    `json:"status,omitempty"`
	Data     any    `json:"data,omitempty"`
	Error    string `json:"error,omitempty"`
}

// DumpResult contains every raw response fetched by [LyricsEngine.Dump].
type DumpResult struct {
	Responses []EndpointResult `json:"responses"`
	Errors    []EndpointResult `json:"errors,omitempty"`
}

// APIClient defines the interface for making raw API requests.
type APIClient interface {
	Get(ctx context.Context, path string) (*services.APIResponse, error)
}

// LyricsEngine runs bulk operations against a lyrics [services.Service].
type LyricsEngine struct {
	svc services.Service
	api APIClient
}

// NewLyricsEngine creates a new LyricsEngine. api may be nil when [LyricsEngine.Dump] is not used.
func NewLyricsEngine(svc services.Service, api APIClient) *LyricsEngine {
	return &LyricsEngine{svc: svc, api: api}
}

// sendProgress sends a progress update through the channel without blocking.
func (e *LyricsEngine) sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
	default:
	}
}

// Lookup searches for query and returns the first result in server order.
func (e *LyricsEngine) Lookup(ctx context.Context, query string) (models.Track, error) {
	if e.svc == nil {
		return models.Track{}, fmt.Errorf("%w: lyrics service not initialized", shared.ErrServiceUnavailable)
	}

	results, err := e.svc.Search(ctx, query)
	if err != nil {
		return models.Track{}, err
	}
	if len(results) == 0 {
		return models.Track{}, fmt.Errorf("%w: %s", shared.ErrNoMatches, query)
	}
	return results[0], nil
}

// Dump fetches the raw search response for every query.
func (e *LyricsEngine) Dump(ctx context.Context, progress chan<- ProgressUpdate, queries []string) (*DumpResult, error) {
	if e.api == nil {
		return nil, fmt.Errorf("%w: API client not initialized", shared.ErrServiceUnavailable)
	}

	result := &DumpResult{Responses: []EndpointResult{}}
	total := len(queries)

	for i, query := range queries {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		query = strings.TrimSpace(query)
		path := "/search?" + searchParams(query)
		e.sendProgress(progress, dumpQueryUpdate(i+1, total, query))

		entry := EndpointResult{Query: query, Endpoint: path}
		resp, err := e.api.Get(ctx, path)
		switch {
		case err != nil:
			entry.Error = err.Error()
			result.Errors = append(result.Errors, entry)
		case resp.StatusCode < 200 || resp.StatusCode >= 300:
			entry.Status = resp.StatusCode
			entry.Error = fmt.Sprintf("status %d", resp.StatusCode)
			result.Errors = append(result.Errors, entry)
		default:
			entry.Status = resp.StatusCode
			entry.Data = resp.JSONData
			result.Responses = append(result.Responses, entry)
		}
	}

	return result, nil
}
