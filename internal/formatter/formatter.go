// package formatter renders lyrics, share links and favorites into their export formats (plain text, LRC, JSON, YAML, CSV, Markdown)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/desertthunder/lyrx/internal/models"
	"github.com/desertthunder/lyrx/internal/shared"
)

// NoLyrics is written in place of missing plain lyrics.
const NoLyrics string = "No lyrics available"

// LyricsFormat selects a downloadable lyrics file type.
type LyricsFormat string

const (
	FormatText LyricsFormat = "txt"
	FormatLRC  LyricsFormat = "lrc"
)

// ParseLyricsFormat validates a lyrics file type
func ParseLyricsFormat(s string) (LyricsFormat, error) {
	switch f := LyricsFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatLRC:
		return f, nil
	default:
		return "", fmt.Errorf("%w: lyrics format %q (expected txt or lrc)", shared.ErrUnsupportedFormat, s)
	}
}

// ExportToText renders the plain-text download: title, artist line, blank line, then lyrics.
func ExportToText(track models.Track) []byte {
	lyrics := NoLyrics
	if track.HasPlainLyrics() {
		lyrics = track.Plain()
	}
	return fmt.Appendf(nil, "%s\nBy: %s\n\n%s", track.TrackName, track.ArtistName, lyrics)
}

// ExportToLRC returns the synced lyrics verbatim.
func ExportToLRC(track models.Track) ([]byte, error) {
	if !track.HasSyncedLyrics() {
		return nil, fmt.Errorf("%w: %s - %s", shared.ErrSyncedUnavailable, track.ArtistName, track.TrackName)
	}
	return []byte(track.Synced()), nil
}

// ExportLyrics renders track in format f.
func ExportLyrics(track models.Track, f LyricsFormat) ([]byte, error) {
	switch f {
	case FormatText:
		return ExportToText(track), nil
	case FormatLRC:
		return ExportToLRC(track)
	default:
		return nil, fmt.Errorf("%w: %q", shared.ErrUnsupportedFormat, f)
	}
}

// Filename builds "<artist> - <track>.<ext>", replacing characters that are not allowed in file names.
func Filename(track models.Track, f LyricsFormat) string {
	return fmt.Sprintf("%s - %s.%s", sanitize(track.ArtistName), sanitize(track.TrackName), f)
}

var unsafeFilenameChars = strings.NewReplacer(
	"/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_", "\x00", "",
)

func sanitize(s string) string {
	return strings.TrimSpace(unsafeFilenameChars.Replace(s))
}

// WriteLyricsExport writes track to dir in format f and returns the created file path.
//
// dir defaults to the working directory and is created when missing.
func WriteLyricsExport(track models.Track, f LyricsFormat, dir string) (string, error) {
	data, err := ExportLyrics(track, f)
	if err != nil {
		return "", err
	}

	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	path := filepath.Join(dir, Filename(track, f))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write lyrics file: %w", err)
	}
	return path, nil
}

// FavoritesFormat selects an export format for the favorites list.
type FavoritesFormat string

const (
	FavoritesJSON     FavoritesFormat = "json"
	FavoritesYAML     FavoritesFormat = "yaml"
	FavoritesCSV      FavoritesFormat = "csv"
	FavoritesMarkdown FavoritesFormat = "md"
	FavoritesText     FavoritesFormat = "txt"
)

// ParseFavoritesFormat validates a favorites export format; "markdown" and "yml" are accepted as aliases
func ParseFavoritesFormat(s string) (FavoritesFormat, error) {
	switch f := strings.ToLower(strings.TrimSpace(s)); f {
	case "json", "yaml", "csv", "md", "txt":
		return FavoritesFormat(f), nil
	case "yml":
		return FavoritesYAML, nil
	case "markdown":
		return FavoritesMarkdown, nil
	default:
		return "", fmt.Errorf("%w: favorites format %q (expected json, yaml, csv, md or txt)", shared.ErrUnsupportedFormat, s)
	}
}

// ExportFavorites renders the favorites list in format f.
func ExportFavorites(tracks []models.Track, f FavoritesFormat) ([]byte, error) {
	if tracks == nil {
		tracks = []models.Track{}
	}

	switch f {
	case FavoritesJSON:
		return shared.MarshalJSON(tracks, true)
	case FavoritesYAML:
		return FavoritesToYAML(tracks)
	case FavoritesCSV:
		return FavoritesToCSV(tracks)
	case FavoritesMarkdown:
		return FavoritesToMarkdown(tracks), nil
	case FavoritesText:
		return FavoritesToText(tracks), nil
	default:
		return nil, fmt.Errorf("%w: %q", shared.ErrUnsupportedFormat, f)
	}
}

// FavoritesToYAML encodes tracks as a YAML sequence.
func FavoritesToYAML(tracks []models.Track) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(tracks); err != nil {
		return nil, fmt.Errorf("failed to encode YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode YAML: %w", err)
	}
	return buf.Bytes(), nil
}

// FavoritesToCSV writes columns: ID, Title, Artist, Album, Duration, Plain, Synced
func FavoritesToCSV(tracks []models.Track) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Title", "Artist", "Album", "Duration", "Plain", "Synced"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, track := range tracks {
		record := []string{
			strconv.Itoa(track.ID),
			track.TrackName,
			track.ArtistName,
			track.AlbumName,
			shared.FormatDuration(track.Duration),
			strconv.FormatBool(track.HasPlainLyrics()),
			strconv.FormatBool(track.HasSyncedLyrics()),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// FavoritesToMarkdown renders a numbered list with album and duration badges
func FavoritesToMarkdown(tracks []models.Track) []byte {
	var buf bytes.Buffer

	buf.WriteString("# Favorites\n\n")
	fmt.Fprintf(&buf, "**Tracks**: %d\n\n", len(tracks))

	if len(tracks) == 0 {
		buf.WriteString("_No favorites yet._\n")
		return buf.Bytes()
	}

	buf.WriteString("## Tracks\n\n")
	for i, track := range tracks {
		albumPart := ""
		if track.AlbumName != "" {
			albumPart = fmt.Sprintf(" (%s)", track.AlbumName)
		}

		badges := []string{shared.FormatDuration(track.Duration)}
		if track.HasSyncedLyrics() {
			badges = append(badges, "synced")
		}
		fmt.Fprintf(&buf, "%d. %s - %s%s [%s]\n", i+1, track.ArtistName, track.TrackName, albumPart, strings.Join(badges, "] ["))
	}

	return buf.Bytes()
}

// FavoritesToText renders one "<artist> - <track>" line per favorite
func FavoritesToText(tracks []models.Track) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "Favorites: %d\n\n", len(tracks))
	for i, track := range tracks {
		fmt.Fprintf(&buf, "%d. %s - %s\n", i+1, track.ArtistName, track.TrackName)
	}

	return buf.Bytes()
}

// WriteFavoritesExport writes the favorites list to path, or to favorites.<format> when path is empty.
func WriteFavoritesExport(tracks []models.Track, f FavoritesFormat, path string) (string, error) {
	data, err := ExportFavorites(tracks, f)
	if err != nil {
		return "", err
	}

	if path == "" {
		path = "favorites." + string(f)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write favorites file: %w", err)
	}
	return path, nil
}
