package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/desertthunder/lyrx/internal/controller"
	"github.com/desertthunder/lyrx/internal/formatter"
	"github.com/desertthunder/lyrx/internal/models"
	"github.com/desertthunder/lyrx/internal/services"
	"github.com/desertthunder/lyrx/internal/shared"
)

// ExampleQueries are offered on the home screen.
var ExampleQueries = []string{
	"Queen - Bohemian Rhapsody",
	"Billy Joel - Piano Man",
	"Kendrick Lamar - Luther",
	"Michael Jackson - Billie Jean",
}

// Overlay is a panel drawn above the current view.
type Overlay int

const (
	NoOverlay Overlay = iota
	ShortcutsOverlay
	PreferencesOverlay
)

// preference rows in the display panel
const (
	prefSize = iota
	prefFamily
	prefLineHeight
	prefAnimation
	prefTheme
	prefRows
)

// Model represents the TUI application state.
//
// All view state lives in the [controller.Controller]; the model only holds widgets and overlays.
type Model struct {
	ctx    context.Context
	ctrl   *controller.Controller
	svc    services.Service
	logger *log.Logger

	input    textinput.Model
	spinner  spinner.Model
	viewport viewport.Model
	help     help.Model
	keys     keyMap

	width     int
	height    int
	overlay   Overlay
	prefRow   int
	maximized bool
	frame     int

	status    string
	statusErr bool
	statusID  int

	lyricsKey string
	pending   *controller.SearchRequest
}

// NewModel creates a new TUI model driving ctrl with searches against svc.
func NewModel(ctx context.Context, ctrl *controller.Controller, svc services.Service, logger *log.Logger) *Model {
	input := textinput.New()
	input.Prompt = "⌕ "
	input.Placeholder = ExampleQueries[0]
	input.CharLimit = 200
	input.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	return &Model{
		ctx:      ctx,
		ctrl:     ctrl,
		svc:      svc,
		logger:   logger,
		input:    input,
		spinner:  sp,
		viewport: viewport.New(0, 0),
		help:     help.New(),
		keys:     newKeyMap(),
	}
}

// WithShareLink queues a share link to be opened when the program starts.
func (m *Model) WithShareLink(link string) error {
	req, ok, err := m.ctrl.OpenShareLink(link)
	if err != nil {
		return err
	}
	if ok {
		m.pending = &req
		m.input.SetValue(req.Query)
		m.input.Blur()
	}
	return nil
}

// Init starts the cursor blink, the animation clock and any queued share-link search.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, nextFrame()}
	if m.pending != nil {
		cmds = append(cmds, m.spinner.Tick, m.search(*m.pending))
		m.pending = nil
	}
	return tea.Batch(cmds...)
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(msg.Width-8, 10)
		m.resizeViewport()

	case tea.KeyMsg:
		cmd = m.handleKey(msg)

	case Msg:
		cmd = m.handleMsg(msg)

	case spinner.TickMsg:
		if m.ctrl.Loading() {
			m.spinner, cmd = m.spinner.Update(msg)
		}

	default:
		if m.input.Focused() {
			m.input, cmd = m.input.Update(msg)
		}
	}

	m.refreshLyrics()
	return m, cmd
}

func (m *Model) handleMsg(msg Msg) tea.Cmd {
	switch msg.kind {
	case MsgSearchResolved:
		data := msg.data.(searchResolved)
		if m.ctrl.Resolve(data.req, data.results, data.err) {
			m.input.Blur()
		}
	case MsgStatusExpired:
		if id := msg.data.(int); id == m.statusID {
			m.status = ""
		}
	case MsgAnimationFrame:
		m.frame++
		return nextFrame()
	}
	return nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.forceQuit) {
		return tea.Quit
	}

	switch m.overlay {
	case ShortcutsOverlay:
		switch {
		case key.Matches(msg, m.keys.back, m.keys.shortcuts):
			m.overlay = NoOverlay
		case key.Matches(msg, m.keys.quit):
			return tea.Quit
		}
		return nil
	case PreferencesOverlay:
		return m.handlePrefsKey(msg)
	}

	if m.input.Focused() {
		return m.handleInputKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.quit):
		return tea.Quit
	case key.Matches(msg, m.keys.search):
		return m.focusSearch()
	case key.Matches(msg, m.keys.shortcuts):
		m.overlay = ShortcutsOverlay
	case key.Matches(msg, m.keys.prefs):
		m.overlay = PreferencesOverlay
	case key.Matches(msg, m.keys.back):
		m.back()
	case key.Matches(msg, m.keys.home):
		m.ctrl.Home()
		m.input.SetValue("")
		m.maximized = false
		return m.focusSearch()
	case key.Matches(msg, m.keys.favorites):
		m.ctrl.OpenFavorites()
		m.input.SetValue("")
	case key.Matches(msg, m.keys.theme):
		return m.setStatus(fmt.Sprintf("Theme: %s", m.ctrl.ToggleTheme()), false)
	case key.Matches(msg, m.keys.favorite):
		return m.toggleFavorite()
	}

	switch m.ctrl.State().(type) {
	case controller.ResultsShown, controller.FavoritesShown:
		switch {
		case key.Matches(msg, m.keys.up):
			m.ctrl.MoveUp()
		case key.Matches(msg, m.keys.down):
			m.ctrl.MoveDown()
		case key.Matches(msg, m.keys.enter):
			m.ctrl.Confirm()
		}
	case controller.TrackShown:
		return m.handleTrackKey(msg)
	case controller.Idle, controller.ErrorShown:
		if key.Matches(msg, m.keys.enter) {
			return m.focusSearch()
		}
	}
	return nil
}

func (m *Model) handleInputKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.enter):
		return m.submit(m.input.Value())
	case key.Matches(msg, m.keys.back):
		m.input.Blur()
		return nil
	case key.Matches(msg, m.keys.example) && m.input.Value() == "":
		m.input.SetValue(m.input.Placeholder)
		m.input.CursorEnd()
		m.input.Placeholder = nextExample(m.input.Placeholder)
		return nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) handleTrackKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.copy):
		copied, err := m.ctrl.CopyLyrics()
		switch {
		case err != nil:
			return m.setStatus(copyError(err), true)
		case !copied:
			return nil
		}
		return m.setStatus("Lyrics copied to clipboard", false)
	case key.Matches(msg, m.keys.share):
		link, copied, err := m.ctrl.ShareLink()
		if err != nil {
			return m.setStatus(err.Error(), true)
		}
		if copied {
			return m.setStatus("Share link copied", false)
		}
		return m.setStatus("Share link: "+link, false)
	case key.Matches(msg, m.keys.download):
		return m.download(formatter.FormatText)
	case key.Matches(msg, m.keys.synced):
		return m.download(formatter.FormatLRC)
	case key.Matches(msg, m.keys.maximize):
		m.maximized = !m.maximized
		m.resizeViewport()
		return nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return cmd
}

func (m *Model) handlePrefsKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.back, m.keys.prefs):
		m.overlay = NoOverlay
	case key.Matches(msg, m.keys.up):
		m.prefRow = (m.prefRow + prefRows - 1) % prefRows
	case key.Matches(msg, m.keys.down):
		m.prefRow = (m.prefRow + 1) % prefRows
	case key.Matches(msg, m.keys.right, m.keys.enter):
		m.cyclePref(1)
	case key.Matches(msg, m.keys.left):
		m.cyclePref(-1)
	case key.Matches(msg, m.keys.quit):
		return tea.Quit
	}
	return nil
}

// cyclePref steps the selected preference forward (dir 1) or backward (dir -1).
func (m *Model) cyclePref(dir int) {
	prefs := m.ctrl.Preferences()
	steps := 1
	switch m.prefRow {
	case prefSize:
		if dir < 0 {
			steps = len(models.FontSizes) - 1
		}
		v := prefs.Font.Size
		for range steps {
			v = v.Next()
		}
		m.ctrl.SetFontSize(v)
	case prefFamily:
		if dir < 0 {
			steps = len(models.FontFamilies) - 1
		}
		v := prefs.Font.Family
		for range steps {
			v = v.Next()
		}
		m.ctrl.SetFontFamily(v)
	case prefLineHeight:
		if dir < 0 {
			steps = len(models.LineHeights) - 1
		}
		v := prefs.Font.LineHeight
		for range steps {
			v = v.Next()
		}
		m.ctrl.SetLineHeight(v)
	case prefAnimation:
		if dir < 0 {
			steps = len(models.Animations) - 1
		}
		v := prefs.Animation
		for range steps {
			v = v.Next()
		}
		m.ctrl.SetAnimation(v)
	case prefTheme:
		m.ctrl.ToggleTheme()
	}
}

// back closes the innermost layer: input focus, then track, favorites or error.
func (m *Model) back() {
	if _, ok := m.ctrl.State().(controller.TrackShown); ok && m.maximized {
		m.maximized = false
		m.resizeViewport()
		return
	}
	m.ctrl.Back()
	if _, ok := m.ctrl.State().(controller.Idle); ok {
		m.input.SetValue("")
	}
}

func (m *Model) submit(query string) tea.Cmd {
	req, ok := m.ctrl.Submit(query)
	if !ok {
		return nil
	}
	m.input.Blur()
	m.maximized = false
	return tea.Batch(m.spinner.Tick, m.search(req))
}

// search runs the request off the event loop and reports back with [MsgSearchResolved].
func (m *Model) search(req controller.SearchRequest) tea.Cmd {
	return func() tea.Msg {
		results, err := m.svc.Search(m.ctx, req.Query)
		return searchResolvedMsg(req, results, err)
	}
}

func (m *Model) focusSearch() tea.Cmd {
	if q := m.ctrl.Query(); q != "" && m.input.Value() == "" {
		m.input.SetValue(q)
	}
	m.input.CursorEnd()
	return m.input.Focus()
}

func (m *Model) toggleFavorite() tea.Cmd {
	var track models.Track
	switch s := m.ctrl.State().(type) {
	case controller.TrackShown:
		track = s.Track
	case controller.ResultsShown:
		if s.Cursor < 0 {
			return nil
		}
		track = s.Results[s.Cursor]
	case controller.FavoritesShown:
		favorites := m.ctrl.Favorites()
		if s.Cursor < 0 || s.Cursor >= len(favorites) {
			return nil
		}
		track = favorites[s.Cursor]
	default:
		return nil
	}

	if m.ctrl.ToggleFavorite(track) {
		return m.setStatus("Added to favorites", false)
	}
	return m.setStatus("Removed from favorites", false)
}

func (m *Model) download(f formatter.LyricsFormat) tea.Cmd {
	path, err := m.ctrl.Download(f)
	if err != nil {
		if errors.Is(err, shared.ErrSyncedUnavailable) {
			return m.setStatus("Synced lyrics are not available for this track", true)
		}
		return m.setStatus(fmt.Sprintf("Download failed: %v", err), true)
	}
	return m.setStatus("Saved "+path, false)
}

func (m *Model) setStatus(s string, isErr bool) tea.Cmd {
	m.statusID++
	m.status = s
	m.statusErr = isErr
	return expireStatus(m.statusID)
}

func (m *Model) resizeViewport() {
	reserved := 12
	if m.maximized {
		reserved = 4
	}
	m.viewport.Width = max(m.width-4, 0)
	m.viewport.Height = max(m.height-reserved, 3)
	m.lyricsKey = ""
}

// refreshLyrics re-renders the viewport when the shown track, preferences or size change.
func (m *Model) refreshLyrics() {
	s, ok := m.ctrl.State().(controller.TrackShown)
	if !ok {
		m.lyricsKey = ""
		return
	}

	prefs := m.ctrl.Preferences()
	k := fmt.Sprintf("%d|%v|%d", s.Track.ID, prefs, m.viewport.Width)
	if k == m.lyricsKey {
		return
	}

	newTrack := m.lyricsKey == "" || !sameTrack(m.lyricsKey, s.Track.ID)
	m.lyricsKey = k
	m.viewport.SetContent(renderLyrics(paletteFor(prefs.Theme), s.Track, prefs.Font, m.viewport.Width))
	if newTrack {
		m.viewport.GotoTop()
	}
}

func sameTrack(lyricsKey string, id int) bool {
	var prev int
	_, err := fmt.Sscanf(lyricsKey, "%d|", &prev)
	return err == nil && prev == id
}

func nextExample(current string) string {
	for i, q := range ExampleQueries {
		if q == current {
			return ExampleQueries[(i+1)%len(ExampleQueries)]
		}
	}
	return ExampleQueries[0]
}

func copyError(err error) string {
	switch {
	case errors.Is(err, shared.ErrLyricsUnavailable):
		return "No plain lyrics to copy"
	default:
		return fmt.Sprintf("Copy failed: %v", err)
	}
}
