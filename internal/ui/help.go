package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fantasyboard/fb-tui/internal/conv"
	"github.com/fantasyboard/fb-tui/internal/ui/styles"
	"github.com/muesli/reflow/wordwrap"
)

const aboutText = "fb-tui is a terminal dashboard for browsing the full fantasy baseball " +
	"player catalog. Players are fetched in the background page by page, so the table " +
	"fills in while you browse. Filters, search and the reveal window all apply locally " +
	"without refetching; switching between batters and pitchers or changing the season " +
	"triggers a new fetch."

func newHelpModel(buildVersion string, buildDate string, buildCommit string, configPath string) helpModel {
	return helpModel{
		configPath:   configPath,
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

type helpModel struct {
	helpView     help.Model
	width        int
	configPath   string
	buildVersion string
	buildDate    string
	buildCommit  string
}

func (m helpModel) Init() tea.Cmd {
	return nil
}

func (m helpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(contentViewPortSizeMsg); ok {
		m.width = size.width
	}

	return m, nil
}

func (m helpModel) View() string {
	left := m.helpView.FullHelpView([][]key.Binding{
		{
			defaultKeyMap.search,
			defaultKeyMap.season,
			defaultKeyMap.period,
			defaultKeyMap.refresh,
			defaultKeyMap.quit,
			defaultKeyMap.help,
		},
	})

	right := m.helpView.FullHelpView([][]key.Binding{
		{
			defaultKeyMap.nextFilter,
			defaultKeyMap.prevFilter,
			defaultKeyMap.up,
			defaultKeyMap.down,
			defaultKeyMap.pageUp,
			defaultKeyMap.pageDown,
		},
	})

	helpContent := lipgloss.JoinHorizontal(lipgloss.Top,
		styles.HelpBox.Render(left), styles.HelpBox.Render(right))

	commit := m.buildCommit
	if len(commit) > 8 {
		commit = m.buildCommit[0:8]
	}

	wrapWidth := conv.Clamp(m.width-8, 40, 100)
	content := lipgloss.JoinVertical(lipgloss.Center,
		styles.InfoMessage.Render(wordwrap.String(aboutText, wrapWidth)),
		helpContent,
		styles.DetailRow("Version", m.buildVersion),
		styles.DetailRow("Commit", commit),
		styles.DetailRow("Date", m.buildDate),
		styles.DetailRow("Config Path", m.configPath),
	)

	return lipgloss.Place(lipgloss.Width(content), lipgloss.Height(content),
		lipgloss.Center, lipgloss.Center, content)
}
