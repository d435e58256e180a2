package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	Accent = lipgloss.Color("#f4722b")

	Black       = lipgloss.Color("#111111")
	Gray        = lipgloss.Color("#3e3e3e")
	GrayDark    = lipgloss.Color("#2f3030")
	GrayDarkAlt = lipgloss.Color("#0f0f0f")
	White       = lipgloss.Color("#cccccc")
	Whiter      = lipgloss.Color("#aaaaaa")

	Green  = lipgloss.Color("#4d7455")
	Gold   = lipgloss.Color("#ffd700")
	Purple = lipgloss.Color("#8650ac")
	Navy   = lipgloss.Color("#476291")
	Red    = lipgloss.Color("#B8383B")

	HeaderContainerStyle  = lipgloss.NewStyle().Align(lipgloss.Center)
	ContentContainerStyle = lipgloss.NewStyle().Align(lipgloss.Center)
	FooterContainerStyle  = lipgloss.NewStyle().Align(lipgloss.Center)

	FocusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	BlurredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Background(Black)
	NoStyle      = lipgloss.NewStyle()
	HelpStyle    = BlurredStyle

	TabContainer = lipgloss.NewStyle().Align(lipgloss.Center)
	TabsInactive = lipgloss.NewStyle().Bold(true).
			Foreground(Navy).PaddingLeft(1).PaddingRight(1)
	TabsActive = lipgloss.NewStyle().
			Foreground(Purple).PaddingLeft(1).PaddingRight(1)

	TableHeaderStyle = lipgloss.NewStyle().Foreground(Accent).Bold(true).Align(lipgloss.Left)
	TableRowEven     = lipgloss.NewStyle().Foreground(White)
	TableRowOdd      = lipgloss.NewStyle().Foreground(Whiter)
	TableRankStyle   = lipgloss.NewStyle().Foreground(Gray)

	SearchPrompt = lipgloss.NewStyle().Foreground(Gold).Bold(true)

	StatusSeason  = lipgloss.NewStyle().Foreground(Green).Bold(true).PaddingRight(2).PaddingLeft(1)
	StatusCounts  = lipgloss.NewStyle().Foreground(Navy).Bold(true).PaddingRight(2)
	StatusError   = lipgloss.NewStyle().Foreground(Red).Align(lipgloss.Right).Bold(true).PaddingRight(2)
	StatusMessage = lipgloss.NewStyle().Foreground(Green).Align(lipgloss.Right).Bold(true).PaddingRight(2)
	StatusHelp    = lipgloss.NewStyle().Foreground(Gray).Bold(true).Align(lipgloss.Center)
	StatusVersion = lipgloss.NewStyle().Foreground(Green).Bold(true).Align(lipgloss.Center)

	PanelLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Align(lipgloss.Right).Width(16)
	PanelValue = lipgloss.NewStyle().Width(60)

	InfoMessage = lipgloss.NewStyle().Align(lipgloss.Center).Padding(1)

	HelpBox = lipgloss.NewStyle().Padding(3)
)

func DetailRow(label string, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		PanelLabel.Render(label+" "),
		PanelValue.Render(value))
}

// WrapX will wrap a centered string with the supplied character up to the lenth specified.
func WrapX(width int, value string, character string) string {
	all := width - lipgloss.Width(value)
	if all < 2 {
		return value
	}

	return strings.Repeat(character, all/2) + value + strings.Repeat(character, all/2)
}
