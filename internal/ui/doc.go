// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI is a thin shell over [controller.Controller], which owns every piece of view state:
//  1. Idle : search box with example queries
//  2. Searching : spinner while the lookup is in flight
//  3. ResultsShown : matching tracks with duration and synced badges
//  4. TrackShown : scrollable lyrics with copy, share and download actions
//  5. FavoritesShown : saved tracks
//  6. ErrorShown : failed or empty searches
//
// Searches run as [tea.Cmd]s and report back via the Msg union type; the controller drops stale responses.
// Display preferences (font size, family, line height, background animation and theme) are edited in an overlay and
// persisted immediately.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
