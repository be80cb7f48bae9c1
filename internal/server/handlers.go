package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"slices"
	"strings"

	"github.com/desertthunder/lyrx/internal/formatter"
	"github.com/desertthunder/lyrx/internal/models"
	"github.com/desertthunder/lyrx/internal/shared"
)

// Searcher performs a lyrics search; satisfied by services.Service.
type Searcher interface {
	Search(ctx context.Context, query string) ([]models.Track, error)
}

// FavoriteLoader reads saved favorites; satisfied by repositories.FavoriteRepository.
type FavoriteLoader interface {
	Load() ([]models.Track, error)
}

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg, RequestID: GetRequestID(r.Context())})
}

// ShareHandler resolves share links: it searches "<artist> <track>" and returns the track whose id matches.
type ShareHandler struct {
	searcher Searcher
}

func NewShareHandler(s Searcher) *ShareHandler {
	return &ShareHandler{searcher: s}
}

func (h *ShareHandler) Routes() []string {
	return []string{"/"}
}

// ServeHTTP writes the plain-text export, or the synced lyrics when format=lrc.
func (h *ShareHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeError(w, r, http.StatusNotFound, "not found")
		return
	}

	q := r.URL.Query()
	link, err := formatter.ParseShareParams(q)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	format := formatter.FormatText
	if raw := q.Get("format"); raw != "" {
		if format, err = formatter.ParseLyricsFormat(raw); err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
	}

	results, err := h.searcher.Search(r.Context(), link.Query())
	if err != nil {
		writeError(w, r, http.StatusBadGateway, "Failed to search for lyrics. Please try again.")
		return
	}

	i := slices.IndexFunc(results, func(t models.Track) bool { return t.ID == link.ID })
	if i < 0 {
		writeError(w, r, http.StatusNotFound, shared.ErrTrackNotFound.Error())
		return
	}

	data, err := formatter.ExportLyrics(results[i], format)
	if errors.Is(err, shared.ErrSyncedUnavailable) {
		writeError(w, r, http.StatusNotFound, err.Error())
		return
	} else if err != nil {
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `inline; filename="`+strings.ReplaceAll(formatter.Filename(results[i], format), `"`, "'")+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// SearchHandler proxies searches and returns the decoded tracks as JSON.
type SearchHandler struct {
	searcher Searcher
}

func NewSearchHandler(s Searcher) *SearchHandler {
	return &SearchHandler{searcher: s}
}

func (h *SearchHandler) Routes() []string {
	return []string{"/api/search"}
}

func (h *SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		writeError(w, r, http.StatusBadRequest, "missing q parameter")
		return
	}

	results, err := h.searcher.Search(r.Context(), query)
	if err != nil {
		writeError(w, r, http.StatusBadGateway, "Failed to search for lyrics. Please try again.")
		return
	}

	if results == nil {
		results = []models.Track{}
	}
	writeJSON(w, http.StatusOK, results)
}

// FavoritesHandler serves the locally saved favorites.
type FavoritesHandler struct {
	favorites FavoriteLoader
}

func NewFavoritesHandler(f FavoriteLoader) *FavoritesHandler {
	return &FavoritesHandler{favorites: f}
}

func (h *FavoritesHandler) Routes() []string {
	return []string{"/api/favorites"}
}

// ServeHTTP renders favorites as JSON unless format selects another export.
func (h *FavoritesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.favorites == nil {
		writeError(w, r, http.StatusServiceUnavailable, shared.ErrServiceUnavailable.Error())
		return
	}

	format := formatter.FavoritesJSON
	if raw := r.URL.Query().Get("format"); raw != "" {
		f, err := formatter.ParseFavoritesFormat(raw)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		format = f
	}

	tracks, err := h.favorites.Load()
	if err != nil && !errors.Is(err, shared.ErrCorruptEntry) {
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	data, err := formatter.ExportFavorites(tracks, format)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", favoritesContentType[format])
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

var favoritesContentType = map[formatter.FavoritesFormat]string{
	formatter.FavoritesJSON:     "application/json",
	formatter.FavoritesYAML:     "application/yaml",
	formatter.FavoritesCSV:      "text/csv; charset=utf-8",
	formatter.FavoritesMarkdown: "text/markdown; charset=utf-8",
	formatter.FavoritesText:     "text/plain; charset=utf-8",
}
