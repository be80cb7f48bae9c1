// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/desertthunder/lyrx/internal/models"
)

// MockService is a test double for [services.Service].
//
// Results are looked up by exact query; unknown queries return an empty slice.
type MockService struct {
	mu      sync.Mutex
	Results map[string][]models.Track
	Err     error
	Queries []string
}

func (m *MockService) Search(ctx context.Context, query string) ([]models.Track, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Queries = append(m.Queries, query)
	if m.Err != nil {
		return nil, m.Err
	}
	if tracks, ok := m.Results[query]; ok {
		return tracks, nil
	}
	return []models.Track{}, nil
}

func (m *MockService) Name() string { return "mock" }

// Calls returns the number of searches issued so far.
func (m *MockService) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Queries)
}

// MockClipboard records writes and optionally fails them.
type MockClipboard struct {
	Text string
	Err  error
}

func (c *MockClipboard) WriteAll(text string) error {
	if c.Err != nil {
		return c.Err
	}
	c.Text = text
	return nil
}

// NewTrack builds a [models.Track] with plain lyrics and optional synced lyrics.
func NewTrack(id int, artist, title string, duration float64, plain, synced string) models.Track {
	t := models.Track{ID: id, ArtistName: artist, TrackName: title, AlbumName: title, Duration: duration}
	if plain != "" {
		t.PlainLyrics = &plain
	}
	if synced != "" {
		t.SyncedLyrics = &synced
	}
	return t
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// FCloser simulates a failure when reading response body
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error {
	return nil
}

// Body wraps s as a response body.
func Body(s string) io.ReadCloser {
	return io.NopCloser(strings.NewReader(s))
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
