package models

import "strings"

// Track is a single record from the lyrics search API.
//
// Records are treated as immutable once decoded.
type Track struct {
	ID           int     `json:"id" yaml:"id"`
	TrackName    string  `json:"trackName" yaml:"track"`
	ArtistName   string  `json:"artistName" yaml:"artist"`
	AlbumName    string  `json:"albumName" yaml:"album"`
	Duration     float64 `json:"duration" yaml:"duration"` // seconds
	PlainLyrics  *string `json:"plainLyrics" yaml:"plain_lyrics,omitempty"`
	SyncedLyrics *string `json:"syncedLyrics" yaml:"synced_lyrics,omitempty"`
}

// HasPlainLyrics reports whether the record carries non-blank plain lyrics.
func (t Track) HasPlainLyrics() bool {
	return t.PlainLyrics != nil && strings.TrimSpace(*t.PlainLyrics) != ""
}

// HasSyncedLyrics reports whether the record carries non-blank synced lyrics.
func (t Track) HasSyncedLyrics() bool {
	return t.SyncedLyrics != nil && strings.TrimSpace(*t.SyncedLyrics) != ""
}

// Plain returns the plain lyrics or an empty string.
func (t Track) Plain() string {
	if t.PlainLyrics == nil {
		return ""
	}
	return *t.PlainLyrics
}

// Synced returns the synced lyrics or an empty string.
func (t Track) Synced() string {
	if t.SyncedLyrics == nil {
		return ""
	}
	return *t.SyncedLyrics
}
