package ui

import (
	"strings"

	"github.com/desertthunder/lyrx/internal/models"
)

var (
	wavePattern     = []rune("∿∽∼∽")
	starPattern     = []rune("✦ · ✧  ·  ⋆ ·   ✦  · ✧ ·    ⋆  ")
	floatingPattern = []rune("°  ∘   o  ·   °    ∘  o   ·  ")
)

// banner renders one line of the background animation at frame, width cells wide.
func banner(a models.Animation, frame, width int) string {
	if width <= 0 {
		return ""
	}

	var pattern []rune
	step := 1
	switch a {
	case models.AnimationWaves:
		pattern = wavePattern
	case models.AnimationStars:
		pattern = starPattern
		step = 0
	case models.AnimationFloating:
		pattern = floatingPattern
	default:
		return ""
	}

	var b strings.Builder
	offset := frame * step
	for i := 0; i < width; i++ {
		r := pattern[(i+offset)%len(pattern)]
		// stars twinkle in place instead of scrolling
		if a == models.AnimationStars && r != ' ' && (i+frame)%5 == 0 {
			r = '·'
		}
		b.WriteRune(r)
	}
	return b.String()
}
