package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/desertthunder/lyrx/internal/controller"
	"github.com/desertthunder/lyrx/internal/models"
)

// MsgKind enumerates all message types in the application.
type MsgKind int

// Msg represents all possible messages in the TUI (Elm-style message union).
type Msg struct {
	kind MsgKind
	data any
}

var (
	_ tea.Msg = Msg{}
)

const (
	MsgSearchResolved MsgKind = iota
	MsgStatusExpired
	MsgAnimationFrame
)

type searchResolved struct {
	req     controller.SearchRequest
	results []models.Track
	err     error
}

// searchResolvedMsg is the constructor for [MsgSearchResolved]
func searchResolvedMsg(req controller.SearchRequest, results []models.Track, err error) Msg {
	return Msg{kind: MsgSearchResolved, data: searchResolved{req, results, err}}
}

// statusExpiredMsg is the constructor for [MsgStatusExpired]; id identifies the status it clears.
func statusExpiredMsg(id int) Msg {
	return Msg{kind: MsgStatusExpired, data: id}
}

// animationFrameMsg is the constructor for [MsgAnimationFrame]
func animationFrameMsg() Msg {
	return Msg{kind: MsgAnimationFrame}
}

const (
	statusTTL     = 2 * time.Second
	frameInterval = 250 * time.Millisecond
)

func expireStatus(id int) tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return statusExpiredMsg(id) })
}

func nextFrame() tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg { return animationFrameMsg() })
}
