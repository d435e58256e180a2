package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	quit       key.Binding
	help       key.Binding
	back       key.Binding
	search     key.Binding
	nextFilter key.Binding
	prevFilter key.Binding
	season     key.Binding
	period     key.Binding
	refresh    key.Binding
	up         key.Binding
	down       key.Binding
	pageUp     key.Binding
	pageDown   key.Binding
}

var defaultKeyMap = keyMap{
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "Quit"),
	),
	help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "Help"),
	),
	back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "Back"),
	),
	search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "Search"),
	),
	nextFilter: key.NewBinding(
		key.WithKeys("tab", "right", "l"),
		key.WithHelp("tab", "Next Filter"),
	),
	prevFilter: key.NewBinding(
		key.WithKeys("shift+tab", "left", "h"),
		key.WithHelp("shift tab", "Prev Filter"),
	),
	season: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "Season"),
	),
	period: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "Period"),
	),
	refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "Refresh"),
	),
	up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑", "Up"),
	),
	down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓", "Down"),
	),
	pageUp: key.NewBinding(
		key.WithKeys("pgup", "b"),
		key.WithHelp("pgup", "Page Up"),
	),
	pageDown: key.NewBinding(
		key.WithKeys("pgdown", "f"),
		key.WithHelp("pgdn", "Page Down"),
	),
}
