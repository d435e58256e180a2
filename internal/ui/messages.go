package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fantasyboard/fb-tui/internal/fantasy"
)

const clearMessageTimeout = time.Second * 10

type statusMsg struct {
	Message string
	Err     bool
}

func setStatusMessage(msg string, err bool) tea.Cmd {
	return func() tea.Msg {
		return statusMsg{Message: msg, Err: err}
	}
}

type clearStatusMessageMsg struct{}

func clearErrorAfter(t time.Duration) tea.Cmd {
	return tea.Tick(t, func(_ time.Time) tea.Msg {
		return clearStatusMessageMsg{}
	})
}

type contentViewPortSizeMsg struct {
	width  int
	height int
}

func setContentViewPortSize(width int, height int) tea.Cmd {
	return func() tea.Msg {
		return contentViewPortSizeMsg{width: width, height: height}
	}
}

// filterSelectedMsg is emitted by the tabs when the user picks a position
// filter, by key or by mouse.
type filterSelectedMsg struct {
	filter fantasy.PlayerType
}

func selectFilter(filter fantasy.PlayerType) tea.Cmd {
	return func() tea.Msg {
		return filterSelectedMsg{filter: filter}
	}
}

// searchChangedMsg is emitted by the search box on every edit.
type searchChangedMsg struct {
	term string
}

// loadMoreMsg asks the root model to widen the reveal window.
type loadMoreMsg struct{}

func requestLoadMore() tea.Cmd {
	return func() tea.Msg {
		return loadMoreMsg{}
	}
}

// DatasetUpdatedMsg is sent by the application when a fetch cycle finished
// and the dataset behind the view changed.
type DatasetUpdatedMsg struct{}

// FetchProgressMsg is sent by the application while a comprehensive fetch
// is underway.
type FetchProgressMsg struct {
	Collected int
}

// SessionExpiredMsg is sent by the application when the stored credential
// could not be refreshed. The UI drops into a signed-out notice.
type SessionExpiredMsg struct{}
