package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/desertthunder/lyrx/internal/controller"
	"github.com/desertthunder/lyrx/internal/models"
	"github.com/desertthunder/lyrx/internal/shared"
)

const logo = "♪ lyrx"

// View renders the UI based on the controller state.
func (m *Model) View() string {
	p := m.palette()

	switch m.overlay {
	case ShortcutsOverlay:
		return m.renderShortcuts(p)
	case PreferencesOverlay:
		return m.renderPreferences(p)
	}

	if s, ok := m.ctrl.State().(controller.TrackShown); ok && m.maximized {
		return fmt.Sprintf("%s\n%s\n%s", p.title.UnsetMarginBottom().Render(s.Track.TrackName), m.viewport.View(), m.renderFooter(p))
	}

	sections := []string{m.renderHeader(p), m.renderSearch(p), m.renderBody(p), m.renderFooter(p)}
	return strings.Join(sections, "\n")
}

func (m *Model) palette() *Palette {
	return paletteFor(m.ctrl.Preferences().Theme)
}

func (m *Model) renderHeader(p *Palette) string {
	title := p.title.Render(logo)
	if line := banner(m.ctrl.Preferences().Animation, m.frame, m.width); line != "" {
		return fmt.Sprintf("%s\n%s", p.help.Render(line), title)
	}
	return title
}

func (m *Model) renderSearch(p *Palette) string {
	box := p.box
	if m.width > 4 {
		box = box.Width(m.width - 4)
	}
	if !m.input.Focused() {
		box = box.BorderForeground(p.mutedColor)
	}
	return box.Render(m.input.View())
}

func (m *Model) renderBody(p *Palette) string {
	switch s := m.ctrl.State().(type) {
	case controller.Searching:
		return fmt.Sprintf("\n%s Searching for %s...", m.spinner.View(), p.accent.Render(s.Query))
	case controller.ResultsShown:
		return m.renderResults(p, s)
	case controller.TrackShown:
		return m.renderTrack(p, s)
	case controller.FavoritesShown:
		return m.renderFavorites(p, s)
	case controller.ErrorShown:
		return m.renderError(p, s)
	default:
		return m.renderIdle(p)
	}
}

func (m *Model) renderIdle(p *Palette) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(p.text.Render("Search by artist, song title or lyrics."))
	b.WriteString("\n\n")
	b.WriteString(p.help.Render("Try:"))
	for _, q := range ExampleQueries {
		b.WriteString("\n  " + p.accent.Render(q))
	}
	if n := len(m.ctrl.Favorites()); n > 0 {
		b.WriteString("\n\n")
		b.WriteString(p.help.Render(fmt.Sprintf("%d favorites saved. Press F to open them.", n)))
	}
	return b.String()
}

func (m *Model) listRows() int {
	// two lines per entry
	return max((m.height-12)/2, 3)
}

func (m *Model) renderList(p *Palette, tracks []models.Track, cursor int) string {
	start, end := visibleWindow(len(tracks), cursor, m.listRows())
	width := max(m.width, 40)

	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		item := trackItem{track: tracks[i], favorite: m.ctrl.IsFavorite(tracks[i].ID)}
		rows = append(rows, item.render(p, width, i == cursor))
	}
	return strings.Join(rows, "\n")
}

func (m *Model) renderResults(p *Palette, s controller.ResultsShown) string {
	header := p.ok.Render(fmt.Sprintf("%d results for %q", len(s.Results), s.Query))
	helpView := m.help.ShortHelpView([]key.Binding{m.keys.up, m.keys.down, m.keys.enter, m.keys.favorite, m.keys.back})
	return fmt.Sprintf("\n%s\n\n%s\n\n%s", header, m.renderList(p, s.Results, s.Cursor), helpView)
}

func (m *Model) renderFavorites(p *Palette, s controller.FavoritesShown) string {
	favorites := m.ctrl.Favorites()
	header := p.ok.Render(fmt.Sprintf("Favorites (%d)", len(favorites)))
	if len(favorites) == 0 {
		return fmt.Sprintf("\n%s\n\n%s", header, p.help.Render("No favorites yet. Press f on a track to save it."))
	}
	helpView := m.help.ShortHelpView([]key.Binding{m.keys.up, m.keys.down, m.keys.enter, m.keys.favorite, m.keys.back})
	return fmt.Sprintf("\n%s\n\n%s\n\n%s", header, m.renderList(p, favorites, s.Cursor), helpView)
}

func (m *Model) renderTrack(p *Palette, s controller.TrackShown) string {
	t := s.Track

	title := t.TrackName
	if m.ctrl.IsFavorite(t.ID) {
		title += " ♥"
	}

	badges := []string{p.badge(shared.FormatDuration(t.Duration))}
	if t.HasSyncedLyrics() {
		badges = append(badges, p.badge("synced"))
	}
	meta := p.help.Render(t.ArtistName)
	if t.AlbumName != "" {
		meta = p.help.Render(t.ArtistName + " • " + t.AlbumName)
	}

	helpView := m.help.ShortHelpView([]key.Binding{m.keys.favorite, m.keys.copy, m.keys.share, m.keys.download, m.keys.synced, m.keys.maximize, m.keys.back})
	return fmt.Sprintf(
		"\n%s %s\n%s\n%s\n%s",
		p.selected.Render(title), strings.Join(badges, " "), meta, m.viewport.View(), helpView,
	)
}

func (m *Model) renderError(p *Palette, s controller.ErrorShown) string {
	style := p.warn
	if s.Kind == controller.SearchFailed {
		style = p.err
	}
	return fmt.Sprintf("\n%s\n\n%s", style.Render(s.Message), p.help.Render("Press / to search again or esc to go home."))
}

func (m *Model) renderFooter(p *Palette) string {
	var status string
	if m.status != "" {
		if m.statusErr {
			status = p.err.Render(m.status)
		} else {
			status = p.ok.Render(m.status)
		}
	}
	return fmt.Sprintf("%s\n%s", status, m.help.View(m.keys))
}

func (m *Model) renderShortcuts(p *Palette) string {
	m.help.ShowAll = true
	defer func() { m.help.ShowAll = false }()

	title := p.title.Render("Keyboard shortcuts")
	return fmt.Sprintf("%s\n%s\n\n%s", title, m.help.View(m.keys), p.help.Render("esc or ? to close"))
}

func (m *Model) renderPreferences(p *Palette) string {
	prefs := m.ctrl.Preferences()
	rows := []struct {
		label string
		value string
	}{
		{"Font size", string(prefs.Font.Size)},
		{"Font family", string(prefs.Font.Family)},
		{"Line height", string(prefs.Font.LineHeight)},
		{"Animation", string(prefs.Animation)},
		{"Theme", string(prefs.Theme)},
	}

	lines := make([]string, 0, len(rows))
	for i, row := range rows {
		label := fmt.Sprintf("%-12s", row.label)
		if i == m.prefRow {
			lines = append(lines, p.selected.Render("▸ "+label)+" ‹ "+p.accent.Render(row.value)+" ›")
		} else {
			lines = append(lines, "  "+p.text.Render(label)+"   "+p.help.Render(row.value))
		}
	}

	preview := lyricsStyle(p, prefs.Font).Render("Is this the real life? Is this just fantasy?")
	panel := p.box.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	return fmt.Sprintf(
		"%s\n%s\n\n%s\n\n%s",
		p.title.Render("Display preferences"), panel, preview,
		p.help.Render("↑/↓ choose • ←/→ change • esc to close"),
	)
}
