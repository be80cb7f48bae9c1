package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	search    key.Binding
	example   key.Binding
	up        key.Binding
	down      key.Binding
	left      key.Binding
	right     key.Binding
	enter     key.Binding
	back      key.Binding
	favorite  key.Binding
	favorites key.Binding
	home      key.Binding
	copy      key.Binding
	share     key.Binding
	download  key.Binding
	synced    key.Binding
	maximize  key.Binding
	prefs     key.Binding
	theme     key.Binding
	shortcuts key.Binding
	quit      key.Binding
	forceQuit key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		search:    key.NewBinding(key.WithKeys("ctrl+k", "/"), key.WithHelp("ctrl+k", "search")),
		example:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "example")),
		up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous")),
		right:     key.NewBinding(key.WithKeys("right", "l", " "), key.WithHelp("→/l", "next")),
		enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		favorite:  key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "favorite")),
		favorites: key.NewBinding(key.WithKeys("F"), key.WithHelp("F", "favorites")),
		home:      key.NewBinding(key.WithKeys("H"), key.WithHelp("H", "home")),
		copy:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy")),
		share:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "share")),
		download:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "save .txt")),
		synced:    key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "save .lrc")),
		maximize:  key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "maximize")),
		prefs:     key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "display")),
		theme:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		shortcuts: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "shortcuts")),
		quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		forceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.search, k.shortcuts, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.search, k.example, k.enter, k.back},
		{k.up, k.down, k.favorite, k.favorites},
		{k.copy, k.share, k.download, k.synced},
		{k.maximize, k.prefs, k.theme, k.home},
		{k.shortcuts, k.quit},
	}
}
