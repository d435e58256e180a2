package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/fantasyboard/fb-tui/internal/fantasy"
	"github.com/fantasyboard/fb-tui/internal/ui/styles"
	"github.com/fantasyboard/fb-tui/internal/view"
)

func newStatusBarModel(version string) *statusBarModel {
	return &statusBarModel{version: version}
}

type statusBarModel struct {
	width       int
	snapshot    view.Snapshot
	statusMsg   string
	statusError bool
	version     string
}

func (m statusBarModel) Init() tea.Cmd {
	return nil
}

func (m statusBarModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case view.Snapshot:
		m.snapshot = msg
	case statusMsg:
		m.statusMsg = msg.Message
		m.statusError = msg.Err

		return m, clearErrorAfter(clearMessageTimeout)
	case clearStatusMessageMsg:
		m.statusError = false
		m.statusMsg = ""
	case contentViewPortSizeMsg:
		m.width = msg.width
	}

	return m, nil
}

func (m statusBarModel) View() string {
	args := []string{
		styles.StatusSeason.Render(seasonLabel(m.snapshot.Season) + " " + periodLabel(m.snapshot.Period)),
		styles.StatusCounts.Render(fmt.Sprintf("%s of %s shown",
			humanize.Comma(int64(m.snapshot.TotalFilteredCount)),
			humanize.Comma(int64(m.snapshot.TotalMatchingPlayers)))),
		styles.StatusVersion.Render(m.version),
		styles.StatusHelp.Render(fmt.Sprintf("%s %s", defaultKeyMap.help.Help().Key, defaultKeyMap.help.Help().Desc)),
		m.status(),
	}

	return lipgloss.NewStyle().Width(m.width).Background(styles.Black).Render(lipgloss.JoinHorizontal(lipgloss.Top, args...))
}

func (m statusBarModel) status() string {
	if m.statusMsg != "" {
		if m.statusError {
			return styles.StatusError.Render(m.statusMsg)
		}

		return styles.StatusMessage.Render(m.statusMsg)
	}

	if m.snapshot.IsLoading {
		return styles.StatusMessage.Render("fetching")
	}

	return ""
}

func seasonLabel(season fantasy.SeasonKind) string {
	if season == fantasy.SeasonLast {
		return "Last Season"
	}

	return "This Season"
}

func periodLabel(period fantasy.StatPeriod) string {
	switch period {
	case fantasy.PeriodLastMonth:
		return "(30d)"
	case fantasy.PeriodLastWeek:
		return "(7d)"
	case fantasy.PeriodFull:
		fallthrough
	default:
		return ""
	}
}
