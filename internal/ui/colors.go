package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/desertthunder/lyrx/internal/models"
)

var (
	darkPalette  = NewPalette("#7D56F4", "#04B575", "#FF5F87", "#FFA500", "#626262", "#EE6FF8", "#FAFAFA")
	lightPalette = NewPalette("#5A3FC0", "#027A4B", "#D70000", "#B36B00", "#8A8A8A", "#C2189B", "#1A1A1A")
)

// paletteFor returns the stylesheet for theme.
func paletteFor(theme models.Theme) *Palette {
	if theme == models.ThemeLight {
		return lightPalette
	}
	return darkPalette
}

// interface Painter defines coloring text with [lipgloss] styles
type Painter interface {
	On(string, lipgloss.Color) string // Sets background color
	As(string, lipgloss.Color) string // Sets foreground color
}

var _ Painter = (*Palette)(nil)

// struct Palette is a simple stylesheet built with named [lipgloss.Style] fields
type Palette struct {
	title    lipgloss.Style
	ok       lipgloss.Style
	err      lipgloss.Style
	warn     lipgloss.Style
	help     lipgloss.Style
	accent   lipgloss.Style
	text     lipgloss.Style
	selected lipgloss.Style
	box      lipgloss.Style

	accentColor lipgloss.Color
	mutedColor  lipgloss.Color
}

func NewPalette(t, s, e, w, h, a, fg string) *Palette {
	return &Palette{
		title:       NewBold(t).MarginBottom(1),
		ok:          NewBold(s),
		err:         NewBold(e),
		warn:        NewStyle(w),
		help:        NewEm(h),
		accent:      NewStyle(a),
		text:        NewStyle(fg),
		selected:    NewBold(a),
		box:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(t)).Padding(0, 1),
		accentColor: lipgloss.Color(a),
		mutedColor:  lipgloss.Color(h),
	}
}

// On renders s on a colored background.
func (p *Palette) On(s string, c lipgloss.Color) string {
	return lipgloss.NewStyle().Background(c).Padding(0, 1).Render(s)
}

// As renders s in color c.
func (p *Palette) As(s string, c lipgloss.Color) string {
	return lipgloss.NewStyle().Foreground(c).Render(s)
}

// badge renders a small pill such as a duration.
func (p *Palette) badge(s string) string {
	return p.On(s, p.mutedColor)
}

func NewStyle(fg string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fg))
}

func NewBold(fg string) lipgloss.Style {
	return NewStyle(fg).Bold(true)
}

func NewEm(fg string) lipgloss.Style {
	return NewStyle(fg).Italic(true)
}
