package tasks

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/desertthunder/lyrx/internal/services"
	"github.com/desertthunder/lyrx/internal/shared"
)

// fakeAPI answers raw GETs from a path-keyed table.
type fakeAPI struct {
	responses map[string]*services.APIResponse
	paths     []string
}

func (f *fakeAPI) Get(ctx context.Context, path string) (*services.APIResponse, error) {
	f.paths = append(f.paths, path)
	if resp, ok := f.responses[path]; ok {
		return resp, nil
	}
	return nil, errors.New("connection refused")
}

func TestLookup(t *testing.T) {
	t.Run("returns first result in server order", func(t *testing.T) {
		engine := NewLyricsEngine(mockLyrics(), nil)

		track, err := engine.Lookup(context.Background(), "Queen - Bohemian Rhapsody")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if track.ID != 1 {
			t.Errorf("expected track 1, got %d", track.ID)
		}
	})

	t.Run("no matches", func(t *testing.T) {
		engine := NewLyricsEngine(mockLyrics(), nil)

		_, err := engine.Lookup(context.Background(), "unknown")
		if !errors.Is(err, shared.ErrNoMatches) {
			t.Errorf("expected ErrNoMatches, got %v", err)
		}
	})

	t.Run("service error passes through", func(t *testing.T) {
		svc := mockLyrics()
		svc.Err = shared.ErrAPIRequest
		engine := NewLyricsEngine(svc, nil)

		if _, err := engine.Lookup(context.Background(), "Queen - Bohemian Rhapsody"); !errors.Is(err, shared.ErrAPIRequest) {
			t.Errorf("expected ErrAPIRequest, got %v", err)
		}
	})

	t.Run("nil service", func(t *testing.T) {
		engine := NewLyricsEngine(nil, nil)

		if _, err := engine.Lookup(context.Background(), "x"); !errors.Is(err, shared.ErrServiceUnavailable) {
			t.Errorf("expected ErrServiceUnavailable, got %v", err)
		}
	})
}

func TestDump(t *testing.T) {
	t.Run("sorts responses and errors", func(t *testing.T) {
		api := &fakeAPI{responses: map[string]*services.APIResponse{
			"/search?q=Queen": {StatusCode: http.StatusOK, IsJSON: true, JSONData: []any{}},
			"/search?q=bad":   {StatusCode: http.StatusBadGateway},
		}}
		engine := NewLyricsEngine(nil, api)

		progress := make(chan ProgressUpdate, 10)
		result, err := engine.Dump(context.Background(), progress, []string{" Queen ", "bad", "down"})
		close(progress)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if len(result.Responses) != 1 || result.Responses[0].Query != "Queen" {
			t.Errorf("expected one trimmed response, got %+v", result.Responses)
		}
		if len(result.Errors) != 2 {
			t.Fatalf("expected two errors, got %+v", result.Errors)
		}
		if result.Errors[0].Status != http.StatusBadGateway {
			t.Errorf("expected 502 recorded, got %d", result.Errors[0].Status)
		}
		if !strings.Contains(result.Errors[1].Error, "connection refused") {
			t.Errorf("expected transport error recorded, got %q", result.Errors[1].Error)
		}

		updates := 0
		for update := range progress {
			if update.Phase != DumpResponses {
				t.Errorf("expected dump phase, got %s", update.Phase)
			}
			updates++
		}
		if updates != 3 {
			t.Errorf("expected 3 progress updates, got %d", updates)
		}
	})

	t.Run("query is url encoded", func(t *testing.T) {
		api := &fakeAPI{}
		engine := NewLyricsEngine(nil, api)

		if _, err := engine.Dump(context.Background(), nil, []string{"Queen - Bohemian Rhapsody"}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if api.paths[0] != "/search?q=Queen+-+Bohemian+Rhapsody" {
			t.Errorf("unexpected path %s", api.paths[0])
		}
	})

	t.Run("cancelled context stops early", func(t *testing.T) {
		api := &fakeAPI{}
		engine := NewLyricsEngine(nil, api)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := engine.Dump(ctx, nil, []string{"a", "b"})
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
		if len(api.paths) != 0 {
			t.Errorf("expected no requests, got %v", api.paths)
		}
	})

	t.Run("nil api client", func(t *testing.T) {
		engine := NewLyricsEngine(mockLyrics(), nil)

		if _, err := engine.Dump(context.Background(), nil, []string{"a"}); !errors.Is(err, shared.ErrServiceUnavailable) {
			t.Errorf("expected ErrServiceUnavailable, got %v", err)
		}
	})
}
