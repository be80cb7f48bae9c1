package models

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/desertthunder/lyrx/internal/shared"
)

func strPtr(s string) *string { return &s }

func TestTrack(t *testing.T) {
	t.Run("Decode API Record", func(t *testing.T) {
		body := `{"id":1,"trackName":"Bohemian Rhapsody","artistName":"Queen","albumName":"A Night at the Opera","duration":354.0,"plainLyrics":"Is this the real life?","syncedLyrics":null}`

		var track Track
		if err := json.Unmarshal([]byte(body), &track); err != nil {
			t.Fatalf("failed to decode track: %v", err)
		}

		if track.ID != 1 || track.TrackName != "Bohemian Rhapsody" || track.ArtistName != "Queen" {
			t.Errorf("unexpected track %+v", track)
		}
		if track.Duration != 354 {
			t.Errorf("expected duration 354, got %v", track.Duration)
		}
		if !track.HasPlainLyrics() {
			t.Error("expected plain lyrics")
		}
		if track.HasSyncedLyrics() {
			t.Error("expected no synced lyrics")
		}
		if track.Synced() != "" {
			t.Errorf("expected empty synced text, got %q", track.Synced())
		}
	})

	t.Run("Blank Lyrics Count As Missing", func(t *testing.T) {
		track := Track{PlainLyrics: strPtr("  \n"), SyncedLyrics: strPtr("")}
		if track.HasPlainLyrics() || track.HasSyncedLyrics() {
			t.Error("blank lyrics should not count as present")
		}
		if track.Plain() != "  \n" {
			t.Errorf("Plain should return the raw text, got %q", track.Plain())
		}
	})
}

func TestPreferences(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		p := DefaultPreferences()
		if p.Font.Size != FontSizeBase || p.Font.Family != FontFamilyDefault || p.Font.LineHeight != LineHeightRelaxed {
			t.Errorf("unexpected default font settings %+v", p.Font)
		}
		if p.Animation != AnimationWaves {
			t.Errorf("expected waves, got %s", p.Animation)
		}
		if p.Theme != ThemeDark {
			t.Errorf("expected dark theme, got %s", p.Theme)
		}
	})

	t.Run("Font Settings JSON", func(t *testing.T) {
		data, err := json.Marshal(DefaultFontSettings())
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}
		if string(data) != `{"size":"base","family":"default","lineHeight":"relaxed"}` {
			t.Errorf("unexpected JSON %s", data)
		}
	})

	t.Run("Normalize", func(t *testing.T) {
		f := FontSettings{Size: "huge", Family: FontFamilyMono, LineHeight: ""}.Normalize()
		if f.Size != FontSizeBase || f.Family != FontFamilyMono || f.LineHeight != LineHeightRelaxed {
			t.Errorf("unexpected normalized settings %+v", f)
		}
	})

	t.Run("Next Wraps", func(t *testing.T) {
		if FontSize2XL.Next() != FontSizeXS {
			t.Errorf("expected 2xl to wrap to xs")
		}
		if AnimationNone.Next() != AnimationStars {
			t.Errorf("expected none -> stars")
		}
		if LineHeightLoose.Next() != LineHeightTight {
			t.Errorf("expected loose to wrap to tight")
		}
		if FontFamily("bogus").Next() != FontFamilyDefault {
			t.Errorf("unknown value should cycle to the first family")
		}
	})

	t.Run("Theme Toggle", func(t *testing.T) {
		if ThemeDark.Toggle() != ThemeLight || ThemeLight.Toggle() != ThemeDark {
			t.Error("theme toggle should flip light and dark")
		}
	})

	t.Run("Parse", func(t *testing.T) {
		if v, err := ParseFontSize("2xl"); err != nil || v != FontSize2XL {
			t.Errorf("ParseFontSize(2xl) = %v, %v", v, err)
		}
		if v, err := ParseAnimation("stars"); err != nil || v != AnimationStars {
			t.Errorf("ParseAnimation(stars) = %v, %v", v, err)
		}
		if _, err := ParseLineHeight("double"); !errors.Is(err, shared.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
		if _, err := ParseTheme("solarized"); err == nil || err.Error() != `unknown theme "solarized"` {
			t.Errorf("unexpected error %v", err)
		}
		if _, err := ParseFontFamily("comic"); err == nil {
			t.Error("expected error for unknown family")
		}
	})
}
