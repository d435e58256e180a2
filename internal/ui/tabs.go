package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fantasyboard/fb-tui/internal/fantasy"
	"github.com/fantasyboard/fb-tui/internal/ui/styles"
	zone "github.com/lrstanley/bubblezone"
)

type tabLabel struct {
	label  string
	filter fantasy.PlayerType
}

func newTabsModel(selected fantasy.PlayerType) tea.Model {
	tabs := make([]tabLabel, 0, len(fantasy.PlayerTypes))
	for _, playerType := range fantasy.PlayerTypes {
		tabs = append(tabs, tabLabel{
			label:  playerType.Label(),
			filter: playerType,
		})
	}

	return &tabsModel{tabs: tabs, selected: selected, id: zone.NewPrefix()}
}

type tabsModel struct {
	tabs     []tabLabel
	selected fantasy.PlayerType
	width    int
	id       string
}

func (m tabsModel) Init() tea.Cmd {
	return nil
}

func (m tabsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	changed := false
	switch msg := msg.(type) {
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		for _, item := range m.tabs {
			// Check each item to see if it's in bounds.
			if zone.Get(m.id + item.label).InBounds(msg) {
				m.selected = item.filter

				return m, selectFilter(m.selected)
			}
		}

		return m, nil
	case contentViewPortSizeMsg:
		m.width = msg.width

		return m, nil
	case filterSelectedMsg:
		m.selected = msg.filter

		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, defaultKeyMap.nextFilter):
			m.selected = m.neighbour(1)
			changed = true
		case key.Matches(msg, defaultKeyMap.prevFilter):
			m.selected = m.neighbour(-1)
			changed = true
		}
	}

	if changed {
		return m, selectFilter(m.selected)
	}

	return m, nil
}

func (m tabsModel) neighbour(offset int) fantasy.PlayerType {
	for idx, tab := range m.tabs {
		if tab.filter != m.selected {
			continue
		}

		next := (idx + offset + len(m.tabs)) % len(m.tabs)

		return m.tabs[next].filter
	}

	return m.selected
}

func (m tabsModel) View() string {
	if m.width == 0 {
		return ""
	}
	var tabs []string

	for _, tab := range m.tabs {
		if tab.filter == m.selected {
			tabs = append(tabs, zone.Mark(m.id+tab.label, styles.TabsActive.Render(tab.label)))
		} else {
			tabs = append(tabs, zone.Mark(m.id+tab.label, styles.TabsInactive.Render(tab.label)))
		}
	}

	return styles.WrapX(m.width, styles.TabContainer.Width(m.width).Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...)), "x")
}
