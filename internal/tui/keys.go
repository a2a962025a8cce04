package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds all key bindings for the TUI.
type keyMap struct {
	Quit     key.Binding
	Refresh  key.Binding
	Help     key.Binding
	NextPage key.Binding
	PrevPage key.Binding
	Pages    [pageCount]key.Binding
}

// keys is the global key map.
var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh now"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle help"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("tab", "right"),
		key.WithHelp("tab", "next page"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("shift+tab", "left"),
		key.WithHelp("shift+tab", "prev page"),
	),
	Pages: [pageCount]key.Binding{
		key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "dashboard")),
		key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "backup jobs")),
		key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "policies")),
		key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "validation")),
		key.NewBinding(key.WithKeys("5"), key.WithHelp("5", "cost analytics")),
	},
}

// helpText is the full help string displayed in the footer when help is toggled on.
const helpText = "1-5: page  tab/shift+tab: next/prev page  r: refresh  ?: toggle help  q/ctrl+c: quit"
