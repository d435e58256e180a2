package ui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fantasyboard/fb-tui/internal/fantasy"
	"github.com/fantasyboard/fb-tui/internal/ui/styles"
	"github.com/fantasyboard/fb-tui/internal/view"
	zone "github.com/lrstanley/bubblezone"
)

// FetchRequest asks the application loop to run a comprehensive fetch for
// the selector the view manager currently wants.
type FetchRequest struct{}

// rootModel is the top level model for the ui side of the app.
type rootModel struct {
	manager      *view.Manager
	requests     chan any
	currentView  contentView
	previousView contentView
	height       int
	width        int
	tabsModel    tea.Model
	searchModel  *searchModel
	tableModel   *playerTableModel
	statusModel  tea.Model
	helpModel    tea.Model
	expired      bool
}

func newRootModel(manager *view.Manager, buildVersion string, buildDate string, buildCommit string,
	configPath string, requests chan any,
) *rootModel {
	return &rootModel{
		manager:      manager,
		requests:     requests,
		currentView:  viewMain,
		previousView: viewMain,
		tabsModel:    newTabsModel(manager.Snapshot().ActiveFilter),
		searchModel:  newSearchModel(),
		tableModel:   newPlayerTableModel(),
		statusModel:  newStatusBarModel(buildVersion),
		helpModel:    newHelpModel(buildVersion, buildDate, buildCommit, configPath),
	}
}

func (m rootModel) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("fb-tui"),
		textinput.Blink,
		m.tabsModel.Init(),
		m.searchModel.Init(),
		m.tableModel.Init(),
		m.statusModel.Init(),
		m.helpModel.Init(),
		m.refresh(),
	)
}

// refresh materializes a fresh snapshot and broadcasts it to every child
// model.
func (m rootModel) refresh() tea.Cmd {
	return func() tea.Msg {
		return m.manager.Snapshot()
	}
}

// request hands a message to the application loop without blocking Update.
func (m rootModel) request(req any) tea.Cmd {
	return func() tea.Msg {
		m.requests <- req

		return nil
	}
}

func (m rootModel) Update(inMsg tea.Msg) (tea.Model, tea.Cmd) {
	logMsg(inMsg)

	if !m.isInitialized() {
		if _, ok := inMsg.(tea.WindowSizeMsg); !ok {
			return m, nil
		}
	}

	switch msg := inMsg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.width = msg.Width

		return m.propagate(inMsg, setContentViewPortSize(m.width, m.height-2))
	case tea.KeyMsg:
		return m.updateKey(msg)
	case filterSelectedMsg:
		cmds := []tea.Cmd{m.refresh()}
		if m.manager.OnFilterChange(msg.filter) {
			cmds = append(cmds, m.request(FetchRequest{}))
		}

		return m.propagate(inMsg, cmds...)
	case searchChangedMsg:
		m.manager.OnSearchChange(msg.term)

		return m.propagate(inMsg, m.refresh())
	case loadMoreMsg:
		m.manager.LoadMore()

		return m.propagate(inMsg, m.refresh())
	case DatasetUpdatedMsg:
		return m.propagate(inMsg, m.refresh())
	case SessionExpiredMsg:
		m.expired = true

		return m.propagate(inMsg, setStatusMessage("Session expired, sign in again", true))
	}

	return m.propagate(inMsg)
}

func (m rootModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// A focused search box swallows everything except its own blur keys.
	if m.searchModel.Focused() {
		var cmd tea.Cmd
		m.searchModel, cmd = m.searchModel.Update(msg)

		return m, cmd
	}

	switch {
	case key.Matches(msg, defaultKeyMap.quit):
		if m.currentView != viewMain {
			break
		}

		return m, tea.Quit
	case key.Matches(msg, defaultKeyMap.help):
		if m.currentView == viewHelp {
			m.currentView = m.previousView
		} else {
			m.previousView = m.currentView
			m.currentView = viewHelp
		}
	case key.Matches(msg, defaultKeyMap.back):
		if m.currentView != viewMain {
			m.currentView = viewMain
		}
	case key.Matches(msg, defaultKeyMap.season):
		return m.toggleSeason()
	case key.Matches(msg, defaultKeyMap.period):
		return m.cyclePeriod()
	case key.Matches(msg, defaultKeyMap.refresh):
		return m, tea.Batch(m.request(FetchRequest{}), m.refresh())
	}

	return m.propagate(msg)
}

func (m rootModel) toggleSeason() (tea.Model, tea.Cmd) {
	next := fantasy.SeasonLast
	if m.manager.Snapshot().Season == fantasy.SeasonLast {
		next = fantasy.SeasonCurrent
	}
	m.manager.OnSeasonChange(next)

	return m, tea.Batch(m.request(FetchRequest{}), m.refresh())
}

func (m rootModel) cyclePeriod() (tea.Model, tea.Cmd) {
	var next fantasy.StatPeriod
	switch m.manager.Snapshot().Period {
	case fantasy.PeriodFull:
		next = fantasy.PeriodLastMonth
	case fantasy.PeriodLastMonth:
		next = fantasy.PeriodLastWeek
	case fantasy.PeriodLastWeek:
		fallthrough
	default:
		next = fantasy.PeriodFull
	}
	m.manager.OnPeriodChange(next)

	return m, tea.Batch(m.request(FetchRequest{}), m.refresh())
}

func (m rootModel) View() string {
	header := styles.HeaderContainerStyle.Width(m.width).Render(
		lipgloss.JoinVertical(lipgloss.Top, m.tabsModel.View(), m.searchModel.View()))
	footer := styles.FooterContainerStyle.Width(m.width).Render(m.statusModel.View())

	_, hdrHeight := lipgloss.Size(header)
	_, ftrHeight := lipgloss.Size(footer)
	contentViewPortHeight := m.height - hdrHeight - ftrHeight

	var content string
	switch m.currentView {
	case viewHelp:
		content = m.helpModel.View()
	case viewMain:
		if m.expired {
			content = styles.InfoMessage.Render("Your session has expired. Restart after signing in again.")
		} else {
			content = m.tableModel.Render(contentViewPortHeight)
		}
	}

	ctr := styles.ContentContainerStyle.Height(contentViewPortHeight).Render(content)

	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left, header, ctr, footer))
}

func (m rootModel) isInitialized() bool {
	return m.height != 0 && m.width != 0
}

func (m rootModel) propagate(msg tea.Msg, extra ...tea.Cmd) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 5, 5+len(extra))

	m.tabsModel, cmds[0] = m.tabsModel.Update(msg)
	m.searchModel, cmds[1] = m.searchModel.Update(msg)
	m.tableModel, cmds[2] = m.tableModel.Update(msg)
	m.statusModel, cmds[3] = m.statusModel.Update(msg)
	m.helpModel, cmds[4] = m.helpModel.Update(msg)

	cmds = append(cmds, extra...)

	return m, tea.Batch(cmds...)
}

// logMsg is useful for debugging events. Tail the log file ~/.config/fb-tui/fb-tui.log
func logMsg(inMsg tea.Msg) {
	// Filter out very noisy stuff
	switch inMsg.(type) {
	case view.Snapshot:
	case FetchProgressMsg:
		break
	case tea.MouseMsg:
		break
	default:
		slog.Debug("tea.Msg", slog.Any("msg", inMsg))
	}
}
