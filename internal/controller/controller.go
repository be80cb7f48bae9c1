package controller

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/desertthunder/lyrx/internal/formatter"
	"github.com/desertthunder/lyrx/internal/models"
	"github.com/desertthunder/lyrx/internal/shared"
)

// Searcher performs a lyrics search; satisfied by services.Service.
type Searcher interface {
	Search(ctx context.Context, query string) ([]models.Track, error)
}

// Clipboard receives copied lyrics and share links.
type Clipboard interface {
	WriteAll(text string) error
}

// FavoriteStore persists the favorites list.
type FavoriteStore interface {
	Load() ([]models.Track, error)
	Save(tracks []models.Track) error
}

// PreferenceStore persists display preferences.
type PreferenceStore interface {
	Load() (models.Preferences, error)
	SaveFont(font models.FontSettings) error
	SaveAnimation(a models.Animation) error
	SaveTheme(t models.Theme) error
}

// Options configures a [Controller]. Nil stores keep state in memory only.
type Options struct {
	Favorites    FavoriteStore
	Preferences  PreferenceStore
	Clipboard    Clipboard
	ShareBaseURL string
	DownloadDir  string
	Logger       *log.Logger
}

// Controller holds the view state, favorites and preferences.
type Controller struct {
	state      State
	generation uint64
	pendingID  *int

	favorites []models.Track
	prefs     models.Preferences
	location  string

	shareBase   string
	downloadDir string
	favStore    FavoriteStore
	prefStore   PreferenceStore
	clipboard   Clipboard
	logger      *log.Logger
}

// New creates a controller in the [Idle] state and loads persisted favorites and preferences.
//
// Load failures are logged and the defaults are used.
func New(opts Options) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	c := &Controller{
		state:       Idle{},
		favorites:   []models.Track{},
		prefs:       models.DefaultPreferences(),
		location:    opts.ShareBaseURL,
		shareBase:   opts.ShareBaseURL,
		downloadDir: opts.DownloadDir,
		favStore:    opts.Favorites,
		prefStore:   opts.Preferences,
		clipboard:   opts.Clipboard,
		logger:      logger,
	}

	if c.favStore != nil {
		favorites, err := c.favStore.Load()
		if err != nil {
			c.logger.Warn("failed to load favorites", "error", err)
		}
		c.favorites = dedupe(favorites)
	}

	if c.prefStore != nil {
		prefs, err := c.prefStore.Load()
		if err != nil {
			c.logger.Warn("failed to load preferences", "error", err)
		}
		c.prefs = normalize(prefs)
	}

	return c
}

// State returns the current view state.
func (c *Controller) State() State {
	return c.state
}

// Query returns the query text associated with the current state, if any.
func (c *Controller) Query() string {
	switch s := c.state.(type) {
	case Searching:
		return s.Query
	case ResultsShown:
		return s.Query
	case ErrorShown:
		return s.Query
	case TrackShown:
		if r, ok := s.Prev.(ResultsShown); ok {
			return r.Query
		}
	}
	return ""
}

// Loading reports whether a search is pending.
func (c *Controller) Loading() bool {
	_, ok := c.state.(Searching)
	return ok
}

// Submit starts a search for query.
//
// Blank queries and submits while a search is pending are ignored (ok is false).
func (c *Controller) Submit(query string) (req SearchRequest, ok bool) {
	query = strings.TrimSpace(query)
	if query == "" || c.Loading() {
		return SearchRequest{}, false
	}

	c.generation++
	c.state = Searching{Query: query, Generation: c.generation}
	c.logger.Debug("search submitted", "query", query, "generation", c.generation)
	return SearchRequest{Query: query, Generation: c.generation}, true
}

// Resolve applies the response for req. It reports false when the response is stale and was dropped.
func (c *Controller) Resolve(req SearchRequest, results []models.Track, err error) bool {
	s, ok := c.state.(Searching)
	if !ok || s.Generation != req.Generation {
		c.logger.Debug("dropping stale search response", "query", req.Query, "generation", req.Generation)
		return false
	}

	pending := c.pendingID
	c.pendingID = nil

	switch {
	case err != nil:
		c.logger.Error("search failed", "query", req.Query, "error", err)
		c.state = ErrorShown{Kind: SearchFailed, Query: req.Query, Message: searchFailedMessage}
	case len(results) == 0:
		c.state = ErrorShown{Kind: NoMatches, Query: req.Query, Message: noMatchesMessage(req.Query)}
	default:
		listing := ResultsShown{Query: req.Query, Results: results, Cursor: -1}
		c.state = listing

		if pending != nil {
			if i := slices.IndexFunc(results, func(t models.Track) bool { return t.ID == *pending }); i >= 0 {
				c.state = TrackShown{Track: results[i], Prev: listing}
			} else {
				c.logger.Warn("shared track not found in results", "id", *pending, "query", req.Query)
			}
		}
	}

	return true
}

// Search runs Submit, the search and Resolve synchronously.
//
// Returns the results on success; an error wrapping [shared.ErrNoMatches] when the search came back empty.
func (c *Controller) Search(ctx context.Context, svc Searcher, query string) ([]models.Track, error) {
	req, ok := c.Submit(query)
	if !ok {
		if strings.TrimSpace(query) == "" {
			return nil, fmt.Errorf("%w: empty search query", shared.ErrInvalidInput)
		}
		return nil, fmt.Errorf("%w: a search is already in progress", shared.ErrInvalidInput)
	}

	results, err := svc.Search(ctx, req.Query)
	c.Resolve(req, results, err)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("%w: %s", shared.ErrNoMatches, req.Query)
	}
	return results, nil
}

// Select shows track's lyrics, remembering the current listing for [Controller.Back].
func (c *Controller) Select(track models.Track) {
	var prev State = Idle{}
	switch s := c.state.(type) {
	case ResultsShown, FavoritesShown:
		prev = s
	case TrackShown:
		prev = s.Prev
	}
	c.state = TrackShown{Track: track, Prev: prev}
}

// Selected returns the displayed track, if any.
func (c *Controller) Selected() (models.Track, bool) {
	if s, ok := c.state.(TrackShown); ok {
		return s.Track, true
	}
	return models.Track{}, false
}

// Back returns from a track to its listing, and from favorites or an error to the home screen.
//
// Reports whether anything changed.
func (c *Controller) Back() bool {
	switch s := c.state.(type) {
	case TrackShown:
		switch prev := s.Prev.(type) {
		case nil:
			c.state = Idle{}
		case FavoritesShown:
			c.state = c.clampFavorites(prev)
		default:
			c.state = prev
		}
	case FavoritesShown, ErrorShown:
		c.state = Idle{}
	default:
		return false
	}
	return true
}

// OpenFavorites shows the favorites list, clearing query and results.
//
// Ignored while a search is pending.
func (c *Controller) OpenFavorites() {
	if c.Loading() {
		return
	}
	c.state = FavoritesShown{Cursor: -1}
}

// Home resets to [Idle], clearing query, results, selection and any pending share-link id.
//
// A pending search response will be dropped as stale.
func (c *Controller) Home() {
	c.state = Idle{}
	c.pendingID = nil
}

// Favorites returns a copy of the favorites in insertion order.
func (c *Controller) Favorites() []models.Track {
	return slices.Clone(c.favorites)
}

// IsFavorite reports whether a track with id is a favorite.
func (c *Controller) IsFavorite(id int) bool {
	return slices.ContainsFunc(c.favorites, func(t models.Track) bool { return t.ID == id })
}

// ToggleFavorite adds track when absent and removes it when present, then persists the list.
//
// Reports whether track is a favorite afterwards.
func (c *Controller) ToggleFavorite(track models.Track) bool {
	added := false
	if i := slices.IndexFunc(c.favorites, func(t models.Track) bool { return t.ID == track.ID }); i >= 0 {
		c.favorites = slices.Delete(c.favorites, i, i+1)
	} else {
		c.favorites = append(c.favorites, track)
		added = true
	}

	switch s := c.state.(type) {
	case FavoritesShown:
		c.state = c.clampFavorites(s)
	case TrackShown:
		if fs, ok := s.Prev.(FavoritesShown); ok {
			s.Prev = c.clampFavorites(fs)
			c.state = s
		}
	}

	c.saveFavorites()
	return added
}

// clampFavorites keeps the favorites cursor within the current list.
func (c *Controller) clampFavorites(s FavoritesShown) FavoritesShown {
	if s.Cursor >= len(c.favorites) {
		s.Cursor = len(c.favorites) - 1
	}
	return s
}

// RemoveFavorite removes the favorite with id, reporting whether it existed.
func (c *Controller) RemoveFavorite(id int) bool {
	i := slices.IndexFunc(c.favorites, func(t models.Track) bool { return t.ID == id })
	if i < 0 {
		return false
	}
	c.ToggleFavorite(c.favorites[i])
	return true
}

func (c *Controller) saveFavorites() {
	if c.favStore == nil {
		return
	}
	if err := c.favStore.Save(c.favorites); err != nil {
		c.logger.Error("failed to save favorites", "error", err)
	}
}

// listing returns the length of the highlighted list and the current cursor.
func (c *Controller) listing() (n, cursor int, ok bool) {
	switch s := c.state.(type) {
	case ResultsShown:
		return len(s.Results), s.Cursor, true
	case FavoritesShown:
		return len(c.favorites), s.Cursor, true
	}
	return 0, -1, false
}

func (c *Controller) setCursor(cursor int) {
	switch s := c.state.(type) {
	case ResultsShown:
		s.Cursor = cursor
		c.state = s
	case FavoritesShown:
		s.Cursor = cursor
		c.state = s
	}
}

// MoveDown highlights the next item, wrapping to the first.
func (c *Controller) MoveDown() {
	n, cursor, ok := c.listing()
	if !ok || n == 0 {
		return
	}
	if cursor < n-1 {
		c.setCursor(cursor + 1)
	} else {
		c.setCursor(0)
	}
}

// MoveUp highlights the previous item, wrapping to the last. With nothing highlighted it goes to the last.
func (c *Controller) MoveUp() {
	n, cursor, ok := c.listing()
	if !ok || n == 0 {
		return
	}
	if cursor > 0 {
		c.setCursor(cursor - 1)
	} else {
		c.setCursor(n - 1)
	}
}

// Cursor returns the highlighted index in the current listing, or -1.
func (c *Controller) Cursor() int {
	_, cursor, _ := c.listing()
	return cursor
}

// Confirm selects the highlighted item. Reports false when nothing is highlighted.
func (c *Controller) Confirm() bool {
	switch s := c.state.(type) {
	case ResultsShown:
		if s.Cursor >= 0 && s.Cursor < len(s.Results) {
			c.Select(s.Results[s.Cursor])
			return true
		}
	case FavoritesShown:
		if s.Cursor >= 0 && s.Cursor < len(c.favorites) {
			c.Select(c.favorites[s.Cursor])
			return true
		}
	}
	return false
}

// CopyLyrics copies the displayed track's plain lyrics to the clipboard.
//
// A clipboard failure is logged, not returned; copied reports whether the copy succeeded.
func (c *Controller) CopyLyrics() (copied bool, err error) {
	track, ok := c.Selected()
	if !ok {
		return false, shared.ErrNoTrackSelected
	}
	if !track.HasPlainLyrics() {
		return false, fmt.Errorf("%w: %s - %s", shared.ErrLyricsUnavailable, track.ArtistName, track.TrackName)
	}
	if c.clipboard == nil {
		c.logger.Warn("clipboard unavailable, lyrics not copied")
		return false, nil
	}

	if err := c.clipboard.WriteAll(track.Plain()); err != nil {
		c.logger.Error("failed to copy lyrics", "error", err)
		return false, nil
	}
	return true, nil
}

// ShareLink builds the displayed track's share link, copies it and records it as the current location.
//
// A clipboard failure is logged and the link is still returned; copied reports whether the copy succeeded.
func (c *Controller) ShareLink() (link string, copied bool, err error) {
	track, ok := c.Selected()
	if !ok {
		return "", false, shared.ErrNoTrackSelected
	}

	link, err = formatter.BuildShareLink(c.shareBase, track)
	if err != nil {
		return "", false, err
	}

	c.location = link
	if c.clipboard == nil {
		return link, false, nil
	}
	if err := c.clipboard.WriteAll(link); err != nil {
		c.logger.Warn("failed to copy share link", "error", err)
		return link, false, nil
	}
	return link, true, nil
}

// Location is the link of the most recently shared or opened track.
func (c *Controller) Location() string {
	return c.location
}

// Download writes the displayed track's lyrics to the download directory and returns the file path.
//
// lrc downloads require synced lyrics.
func (c *Controller) Download(f formatter.LyricsFormat) (string, error) {
	track, ok := c.Selected()
	if !ok {
		return "", shared.ErrNoTrackSelected
	}

	path, err := formatter.WriteLyricsExport(track, f, c.downloadDir)
	if err != nil {
		if !errors.Is(err, shared.ErrSyncedUnavailable) {
			c.logger.Error("failed to download lyrics", "format", f, "error", err)
		}
		return "", err
	}
	return path, nil
}

// OpenShareLink searches for the track in a share link and selects it once results arrive.
func (c *Controller) OpenShareLink(raw string) (SearchRequest, bool, error) {
	link, err := formatter.ParseShareLink(raw)
	if err != nil {
		return SearchRequest{}, false, err
	}

	req, ok := c.Submit(link.Query())
	if !ok {
		return SearchRequest{}, false, nil
	}

	id := link.ID
	c.pendingID = &id
	c.location = raw
	return req, true, nil
}

// Preferences returns the current display preferences.
func (c *Controller) Preferences() models.Preferences {
	return c.prefs
}

// dedupe drops tracks whose id was already seen, keeping the first occurrence.
func dedupe(tracks []models.Track) []models.Track {
	seen := make(map[int]bool, len(tracks))
	out := make([]models.Track, 0, len(tracks))
	for _, t := range tracks {
		if seen[t.ID] {
			continue
		}
		seen[t.ID] = true
		out = append(out, t)
	}
	return out
}

// normalize replaces unknown preference values with defaults
func normalize(p models.Preferences) models.Preferences {
	p.Font = p.Font.Normalize()
	if !p.Animation.Valid() {
		p.Animation = models.DefaultAnimation
	}
	if !p.Theme.Valid() {
		p.Theme = models.DefaultTheme
	}
	return p
}

// SetFontSize, SetFontFamily, SetLineHeight and SetAnimation ignore values outside their enumeration.
func (c *Controller) SetFontSize(s models.FontSize) {
	if !s.Valid() {
		return
	}
	c.prefs.Font.Size = s
	c.saveFont()
}

func (c *Controller) SetFontFamily(f models.FontFamily) {
	if !f.Valid() {
		return
	}
	c.prefs.Font.Family = f
	c.saveFont()
}

func (c *Controller) SetLineHeight(l models.LineHeight) {
	if !l.Valid() {
		return
	}
	c.prefs.Font.LineHeight = l
	c.saveFont()
}

func (c *Controller) SetAnimation(a models.Animation) {
	if !a.Valid() {
		return
	}
	c.prefs.Animation = a
	if c.prefStore == nil {
		return
	}
	if err := c.prefStore.SaveAnimation(a); err != nil {
		c.logger.Error("failed to save animation", "error", err)
	}
}

// SetTheme sets the palette.
func (c *Controller) SetTheme(t models.Theme) {
	if !t.Valid() {
		return
	}
	c.prefs.Theme = t
	if c.prefStore == nil {
		return
	}
	if err := c.prefStore.SaveTheme(t); err != nil {
		c.logger.Error("failed to save theme", "error", err)
	}
}

// ToggleTheme flips between light and dark and returns the new theme.
func (c *Controller) ToggleTheme() models.Theme {
	c.SetTheme(c.prefs.Theme.Toggle())
	return c.prefs.Theme
}

func (c *Controller) saveFont() {
	if c.prefStore == nil {
		return
	}
	if err := c.prefStore.SaveFont(c.prefs.Font); err != nil {
		c.logger.Error("failed to save font settings", "error", err)
	}
}
