package controller

import (
	"fmt"

	"github.com/desertthunder/lyrx/internal/models"
)

// State is one of [Idle], [Searching], [ResultsShown], [TrackShown], [FavoritesShown] or [ErrorShown].
type State interface {
	isState()
}

// Idle is the home screen: empty query, no results.
type Idle struct{}

// Searching marks a submitted query awaiting its response.
type Searching struct {
	Query      string
	Generation uint64
}

// ResultsShown lists the tracks returned for Query. Cursor is -1 when nothing is highlighted.
type ResultsShown struct {
	Query   string
	Results []models.Track
	Cursor  int
}

// TrackShown displays one track's lyrics. Prev is the listing to return to.
type TrackShown struct {
	Track models.Track
	Prev  State
}

// FavoritesShown lists saved favorites. Cursor is -1 when nothing is highlighted.
type FavoritesShown struct {
	Cursor int
}

// ErrorShown reports a failed or empty search.
type ErrorShown struct {
	Kind    ErrorKind
	Query   string
	Message string
}

func (Idle) isState()           {}
func (Searching) isState()      {}
func (ResultsShown) isState()   {}
func (TrackShown) isState()     {}
func (FavoritesShown) isState() {}
func (ErrorShown) isState()     {}

// ErrorKind classifies an [ErrorShown] state.
type ErrorKind int

const (
	NoMatches ErrorKind = iota
	SearchFailed
)

func (k ErrorKind) String() string {
	switch k {
	case NoMatches:
		return "no matches"
	case SearchFailed:
		return "search failed"
	default:
		return "unknown"
	}
}

const searchFailedMessage string = "Failed to search for lyrics. Please try again."

func noMatchesMessage(query string) string {
	return fmt.Sprintf("No results found for \"%s\". Try different keywords or check spelling.", query)
}

// SearchRequest is returned by [Controller.Submit] and must be handed back to [Controller.Resolve].
type SearchRequest struct {
	Query      string
	Generation uint64
}
