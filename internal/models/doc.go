// Package models defines the domain types shared by the lyrx query client, view controller and persistence layer.
//
//   - [Track] : one song entry returned by the lyrics search API, carrying lyrics and metadata
//   - [FontSettings] : lyrics display size, family and line height
//   - [Animation] : background decoration drawn behind the lyrics view
//   - [Theme] : light or dark palette
//   - [Preferences] : the persisted bundle of the three display settings
//
// Every enumeration has a defined default; values that fail to parse normalize to it.
package models
