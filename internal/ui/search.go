package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fantasyboard/fb-tui/internal/ui/styles"
	"github.com/fantasyboard/fb-tui/internal/view"
)

func newSearchModel() *searchModel {
	input := textinput.New()
	input.Placeholder = "Search players"
	input.Prompt = "🔍 "
	input.PromptStyle = styles.SearchPrompt
	input.CharLimit = 64

	return &searchModel{input: input}
}

type searchModel struct {
	input textinput.Model
	width int
}

func (m *searchModel) Init() tea.Cmd {
	return nil
}

func (m *searchModel) Focused() bool {
	return m.input.Focused()
}

func (m *searchModel) Update(msg tea.Msg) (*searchModel, tea.Cmd) {
	switch msg := msg.(type) {
	case contentViewPortSizeMsg:
		m.width = msg.width

		return m, nil
	case view.Snapshot:
		// Filter changes clear the search term upstream. Mirror that here
		// so the box does not show stale text.
		if msg.SearchTerm != m.input.Value() {
			m.input.SetValue(msg.SearchTerm)
		}

		return m, nil
	case tea.KeyMsg:
		if !m.input.Focused() {
			if key.Matches(msg, defaultKeyMap.search) {
				return m, m.input.Focus()
			}

			return m, nil
		}

		if key.Matches(msg, defaultKeyMap.back) || msg.Type == tea.KeyEnter {
			m.input.Blur()

			return m, nil
		}

		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if after := m.input.Value(); after != before {
			return m, tea.Batch(cmd, func() tea.Msg { return searchChangedMsg{term: after} })
		}

		return m, cmd
	}

	return m, nil
}

func (m *searchModel) View() string {
	if m.width == 0 {
		return ""
	}

	return lipgloss.NewStyle().Width(m.width).Render(m.input.View())
}
