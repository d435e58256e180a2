package ui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fantasyboard/fb-tui/internal/ui/styles"
	"github.com/fantasyboard/fb-tui/internal/view"
)

// revealThresholdRows is the near-bottom distance, in rendered rows, that
// triggers revealing another page. Terminal rows, so much smaller than a
// browser pixel threshold would be.
const revealThresholdRows = 6

func newPlayerTableModel() *playerTableModel {
	model := &playerTableModel{viewport: viewport.New(0, 0)}
	model.reveal = view.NewRevealController(revealThresholdRows, func() {
		model.pendingLoadMore = true
	})

	return model
}

type playerTableModel struct {
	viewport        viewport.Model
	reveal          *view.RevealController
	snapshot        view.Snapshot
	width           int
	height          int
	fetchCollected  int
	pendingLoadMore bool
}

func (m *playerTableModel) Init() tea.Cmd {
	return nil
}

func (m *playerTableModel) Update(msg tea.Msg) (*playerTableModel, tea.Cmd) {
	switch msg := msg.(type) {
	case contentViewPortSizeMsg:
		m.width = msg.width
		m.height = msg.height
		m.viewport.Width = msg.width
		m.viewport.Height = max(1, msg.height-1)
		m.viewport.SetContent(m.renderTable())

		return m, nil
	case view.Snapshot:
		m.snapshot = msg
		m.viewport.SetContent(m.renderTable())
		m.reveal.NotifyLength(len(msg.FilteredPlayers))
		if !msg.IsLoading {
			m.fetchCollected = 0
		}

		return m, nil
	case FetchProgressMsg:
		m.fetchCollected = msg.Collected

		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, defaultKeyMap.up),
			key.Matches(msg, defaultKeyMap.down),
			key.Matches(msg, defaultKeyMap.pageUp),
			key.Matches(msg, defaultKeyMap.pageDown):
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)

			return m, tea.Batch(cmd, m.observe())
		}

		return m, nil
	case tea.MouseMsg:
		if msg.Button != tea.MouseButtonWheelUp && msg.Button != tea.MouseButtonWheelDown {
			return m, nil
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)

		return m, tea.Batch(cmd, m.observe())
	}

	return m, nil
}

// observe feeds the current scroll position into the reveal controller and
// converts a fired reveal into a message for the root model.
func (m *playerTableModel) observe() tea.Cmd {
	m.reveal.Observe(view.ScrollMetrics{
		ScrollTop:      m.viewport.YOffset,
		ScrollHeight:   m.viewport.TotalLineCount(),
		ViewportHeight: m.viewport.Height,
	}, m.snapshot.HasMore)

	if m.pendingLoadMore {
		m.pendingLoadMore = false

		return requestLoadMore()
	}

	return nil
}

func (m *playerTableModel) renderTable() string {
	headers := []string{"#", "Player", "Team", "Pos"}
	for _, column := range m.snapshot.Columns {
		headers = append(headers, column.Title)
	}

	tbl := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).BorderBottom(false).BorderLeft(false).BorderRight(false).
		Width(m.width).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styles.TableHeaderStyle
			case col == 0:
				return styles.TableRankStyle
			case row%2 == 0:
				return styles.TableRowEven
			default:
				return styles.TableRowOdd
			}
		})

	for _, player := range m.snapshot.FilteredPlayers {
		row := []string{
			strconv.Itoa(player.DisplayRank),
			player.Name.Full,
			player.Team,
			player.Positions,
		}
		for _, column := range m.snapshot.Columns {
			value, found := player.Stat(column.StatID)
			if !found || value == "" {
				value = "-"
			}
			row = append(row, value)
		}
		tbl.Row(row...)
	}

	return tbl.String()
}

func (m *playerTableModel) Render(height int) string {
	if m.snapshot.IsLoading && len(m.snapshot.FilteredPlayers) == 0 {
		notice := "Loading players..."
		if m.fetchCollected > 0 {
			notice = "Loading players... " + strconv.Itoa(m.fetchCollected) + " so far"
		}

		return styles.InfoMessage.Height(height).Render(notice)
	}

	if len(m.snapshot.FilteredPlayers) == 0 {
		return styles.InfoMessage.Height(height).Render("No players match")
	}

	m.viewport.Height = max(1, height)

	return m.viewport.View()
}
