// LRCLIB lyrics search [Service] implementation
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/desertthunder/lyrx/internal/models"
	"github.com/desertthunder/lyrx/internal/shared"
)

const (
	defaultLRCLibBaseURL   string = "https://lrclib.net/api"
	defaultLRCLibUserAgent string = "lyrx (https://github.com/desertthunder/lyrx)"
)

// LRCLibService implements [Service] against the public LRCLIB API.
//
// It performs exactly one GET per search with no retries or caching.
type LRCLibService struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// NewLRCLibService creates a new LRCLIB service instance.
//
// Empty baseURL and userAgent fall back to the public endpoint and a lyrx agent string; a nil client uses [http.DefaultClient].
func NewLRCLibService(baseURL, userAgent string, client *http.Client) *LRCLibService {
	if baseURL == "" {
		baseURL = defaultLRCLibBaseURL
	}
	if userAgent == "" {
		userAgent = defaultLRCLibUserAgent
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &LRCLibService{
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  userAgent,
		httpClient: client,
	}
}

// Name returns the service name.
func (l *LRCLibService) Name() string {
	return "LRCLIB"
}

// SearchURL builds GET {base}/search?q={query}.
func (l *LRCLibService) SearchURL(query string) string {
	params := url.Values{}
	params.Set("q", query)
	return fmt.Sprintf("%s/search?%s", l.baseURL, params.Encode())
}

// Search looks up tracks matching query.
//
// Calls GET /search?q= on the API.
func (l *LRCLibService) Search(ctx context.Context, query string) ([]models.Track, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: empty search query", shared.ErrInvalidInput)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.SearchURL(query), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", l.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp struct {
			Message string `json:"message"`
		}
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
			return nil, fmt.Errorf("%w: lrclib status %d: %s", shared.ErrAPIRequest, resp.StatusCode, errResp.Message)
		}
		return nil, fmt.Errorf("%w: lrclib status %d", shared.ErrAPIRequest, resp.StatusCode)
	}

	var tracks []models.Track
	if err := json.NewDecoder(resp.Body).Decode(&tracks); err != nil {
		return nil, fmt.Errorf("%w: failed to decode search results: %v", shared.ErrInvalidResponse, err)
	}

	if tracks == nil {
		tracks = []models.Track{}
	}
	return tracks, nil
}
