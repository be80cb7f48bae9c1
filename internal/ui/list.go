package ui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/desertthunder/lyrx/internal/models"
	"github.com/desertthunder/lyrx/internal/shared"
)

// trackItem wraps [models.Track] for rendering in result and favorites lists.
type trackItem struct {
	track    models.Track
	favorite bool
}

func (i trackItem) Title() string { return i.track.TrackName }

func (i trackItem) Description() string {
	parts := []string{i.track.ArtistName}
	if i.track.AlbumName != "" && i.track.AlbumName != i.track.TrackName {
		parts = append(parts, i.track.AlbumName)
	}
	parts = append(parts, shared.FormatDuration(i.track.Duration))
	if i.track.HasSyncedLyrics() {
		parts = append(parts, "synced")
	}
	return strings.Join(parts, " • ")
}

// render draws the two-line entry, truncated to width cells.
func (i trackItem) render(p *Palette, width int, highlighted bool) string {
	marker, heart := "  ", ""
	if highlighted {
		marker = "▸ "
	}
	if i.favorite {
		heart = " ♥"
	}

	title := truncate(i.Title()+heart, width-2)
	desc := truncate(i.Description(), width-2)
	if highlighted {
		return fmt.Sprintf("%s%s\n  %s", p.selected.Render(marker), p.selected.Render(title), p.accent.Render(desc))
	}
	return fmt.Sprintf("%s%s\n  %s", marker, p.text.Render(title), p.help.Render(desc))
}

// visibleWindow returns the [start, end) slice of n rows of which at most rows fit, keeping cursor in view.
func visibleWindow(n, cursor, rows int) (int, int) {
	if rows <= 0 || n <= rows {
		return 0, n
	}
	cursor = min(cursor, n-1)
	start := 0
	if cursor >= rows {
		start = cursor - rows + 1
	}
	return start, start + rows
}

// truncate shortens s to width display cells with an ellipsis.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}
