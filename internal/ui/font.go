package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/desertthunder/lyrx/internal/models"
)

// lyricsStyle maps font size and family onto terminal attributes.
//
// A terminal has one cell size, so sizes are approximated with weight, spacing and case.
func lyricsStyle(p *Palette, font models.FontSettings) lipgloss.Style {
	style := p.text

	switch font.Size {
	case models.FontSizeXS:
		style = style.Faint(true)
	case models.FontSizeSM:
		style = p.help.Italic(false)
	case models.FontSizeLG:
		style = style.Bold(true)
	case models.FontSizeXL:
		style = style.Bold(true).PaddingLeft(2)
	case models.FontSize2XL:
		style = style.Bold(true).PaddingLeft(4).Transform(strings.ToUpper)
	}

	switch font.Family {
	case models.FontFamilySerif:
		style = style.Italic(true)
	case models.FontFamilyMono:
		style = style.Background(lipgloss.Color("#303030")).Foreground(lipgloss.Color("#E4E4E4"))
	case models.FontFamilySans:
		style = style.Underline(false)
	}

	return style
}

// spaceLines applies the line height: tight drops stanza breaks, loose adds a blank line after every line.
func spaceLines(lines []string, lh models.LineHeight) []string {
	out := make([]string, 0, len(lines)*2)
	for _, line := range lines {
		blank := strings.TrimSpace(line) == ""
		switch lh {
		case models.LineHeightTight:
			if !blank {
				out = append(out, line)
			}
		case models.LineHeightLoose:
			if !blank {
				out = append(out, line, "")
			} else if len(out) > 0 && out[len(out)-1] != "" {
				out = append(out, "")
			}
		default:
			out = append(out, line)
		}
	}
	return out
}

// renderLyrics lays out plain lyrics for the viewport, wrapping at width.
func renderLyrics(p *Palette, track models.Track, font models.FontSettings, width int) string {
	if !track.HasPlainLyrics() {
		return p.help.Render("No lyrics available")
	}

	font = font.Normalize()
	style := lyricsStyle(p, font)
	if width > 8 {
		style = style.MaxWidth(width)
	}

	lines := spaceLines(strings.Split(strings.ReplaceAll(track.Plain(), "\r\n", "\n"), "\n"), font.LineHeight)

	var b strings.Builder
	if font.LineHeight == models.LineHeightRelaxed || font.LineHeight == models.LineHeightLoose {
		b.WriteString("\n")
	}
	for i, line := range lines {
		if i > 0 {
			b.WriteString("\n")
		}
		if line == "" {
			continue
		}
		if width > 8 {
			line = runewidth.Wrap(line, width-4)
		}
		b.WriteString(style.Render(line))
	}
	return b.String()
}
