package models

import (
	"fmt"
	"slices"

	"github.com/desertthunder/lyrx/internal/shared"
)

// FontSize enumerates lyrics text sizes.
type FontSize string

const (
	FontSizeXS   FontSize = "xs"
	FontSizeSM   FontSize = "sm"
	FontSizeBase FontSize = "base"
	FontSizeLG   FontSize = "lg"
	FontSizeXL   FontSize = "xl"
	FontSize2XL  FontSize = "2xl"
)

// FontFamily enumerates lyrics typefaces.
type FontFamily string

const (
	FontFamilyDefault FontFamily = "default"
	FontFamilySerif   FontFamily = "serif"
	FontFamilySans    FontFamily = "sans"
	FontFamilyMono    FontFamily = "mono"
)

// LineHeight enumerates spacing between lyric lines.
type LineHeight string

const (
	LineHeightTight   LineHeight = "tight"
	LineHeightNormal  LineHeight = "normal"
	LineHeightRelaxed LineHeight = "relaxed"
	LineHeightLoose   LineHeight = "loose"
)

// Animation enumerates background decorations.
type Animation string

const (
	AnimationNone     Animation = "none"
	AnimationStars    Animation = "stars"
	AnimationFloating Animation = "floating"
	AnimationWaves    Animation = "waves"
)

// Theme enumerates color palettes.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

var (
	FontSizes    = []FontSize{FontSizeXS, FontSizeSM, FontSizeBase, FontSizeLG, FontSizeXL, FontSize2XL}
	FontFamilies = []FontFamily{FontFamilyDefault, FontFamilySerif, FontFamilySans, FontFamilyMono}
	LineHeights  = []LineHeight{LineHeightTight, LineHeightNormal, LineHeightRelaxed, LineHeightLoose}
	Animations   = []Animation{AnimationNone, AnimationStars, AnimationFloating, AnimationWaves}
	Themes       = []Theme{ThemeLight, ThemeDark}
)

const (
	DefaultFontSize   = FontSizeBase
	DefaultFontFamily = FontFamilyDefault
	DefaultLineHeight = LineHeightRelaxed
	DefaultAnimation  = AnimationWaves
	DefaultTheme      = ThemeDark
)

func (s FontSize) Valid() bool   { return slices.Contains(FontSizes, s) }
func (f FontFamily) Valid() bool { return slices.Contains(FontFamilies, f) }
func (l LineHeight) Valid() bool { return slices.Contains(LineHeights, l) }
func (a Animation) Valid() bool  { return slices.Contains(Animations, a) }
func (t Theme) Valid() bool      { return slices.Contains(Themes, t) }

func (s FontSize) Next() FontSize     { return next(FontSizes, s) }
func (f FontFamily) Next() FontFamily { return next(FontFamilies, f) }
func (l LineHeight) Next() LineHeight { return next(LineHeights, l) }
func (a Animation) Next() Animation   { return next(Animations, a) }

// Toggle flips between light and dark.
func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// next returns the element after v, wrapping to the first; unknown values yield the first element.
func next[T comparable](all []T, v T) T {
	i := slices.Index(all, v)
	return all[(i+1)%len(all)]
}

// FontSettings controls how lyrics text is rendered.
type FontSettings struct {
	Size       FontSize   `json:"size"`
	Family     FontFamily `json:"family"`
	LineHeight LineHeight `json:"lineHeight"`
}

// DefaultFontSettings returns base size, default family and relaxed line height.
func DefaultFontSettings() FontSettings {
	return FontSettings{Size: DefaultFontSize, Family: DefaultFontFamily, LineHeight: DefaultLineHeight}
}

// Normalize replaces any unknown field with its default.
func (f FontSettings) Normalize() FontSettings {
	if !f.Size.Valid() {
		f.Size = DefaultFontSize
	}
	if !f.Family.Valid() {
		f.Family = DefaultFontFamily
	}
	if !f.LineHeight.Valid() {
		f.LineHeight = DefaultLineHeight
	}
	return f
}

// Preferences bundles every persisted display setting.
type Preferences struct {
	Font      FontSettings
	Animation Animation
	Theme     Theme
}

// DefaultPreferences returns the defaults for every setting.
func DefaultPreferences() Preferences {
	return Preferences{Font: DefaultFontSettings(), Animation: DefaultAnimation, Theme: DefaultTheme}
}

// ParseError is returned by the Parse helpers for values outside an enumeration.
type ParseError struct {
	Kind  string
	Value string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Kind, e.Value)
}

func (e *ParseError) Unwrap() error { return shared.ErrInvalidInput }

func ParseFontSize(s string) (FontSize, error) {
	if v := FontSize(s); v.Valid() {
		return v, nil
	}
	return "", &ParseError{Kind: "font size", Value: s}
}

func ParseFontFamily(s string) (FontFamily, error) {
	if v := FontFamily(s); v.Valid() {
		return v, nil
	}
	return "", &ParseError{Kind: "font family", Value: s}
}

func ParseLineHeight(s string) (LineHeight, error) {
	if v := LineHeight(s); v.Valid() {
		return v, nil
	}
	return "", &ParseError{Kind: "line height", Value: s}
}

func ParseAnimation(s string) (Animation, error) {
	if v := Animation(s); v.Valid() {
		return v, nil
	}
	return "", &ParseError{Kind: "animation", Value: s}
}

func ParseTheme(s string) (Theme, error) {
	if v := Theme(s); v.Valid() {
		return v, nil
	}
	return "", &ParseError{Kind: "theme", Value: s}
}
