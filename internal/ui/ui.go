package ui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fantasyboard/fb-tui/internal/config"
	"github.com/fantasyboard/fb-tui/internal/conv"
	"github.com/fantasyboard/fb-tui/internal/view"
	zone "github.com/lrstanley/bubblezone"
)

var ErrUIExit = errors.New("ui error returned")

type contentView int

const (
	viewMain contentView = iota
	viewHelp
)

type UI struct {
	program *tea.Program
}

func New(ctx context.Context, userConfig config.Config, manager *view.Manager, buildVersion string,
	buildDate string, buildCommit string, configPath string, requests chan any,
) *UI {
	zone.NewGlobal()

	fps := conv.Clamp(userConfig.FPS, 1, 120)

	return &UI{
		program: tea.NewProgram(
			newRootModel(manager, buildVersion, buildDate, buildCommit, configPath, requests),
			tea.WithMouseCellMotion(),
			tea.WithAltScreen(),
			tea.WithMouseAllMotion(),
			tea.WithContext(ctx),
			tea.WithFPS(fps)),
	}
}

func (t UI) Run() error {
	if _, err := t.program.Run(); err != nil {
		return errors.Join(err, ErrUIExit)
	}

	return nil
}

func (t UI) Send(msg tea.Msg) {
	t.program.Send(msg)
}
