package main

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fantasyboard/fb-tui/internal/auth"
	"github.com/fantasyboard/fb-tui/internal/config"
	"github.com/fantasyboard/fb-tui/internal/fantasy"
	"github.com/fantasyboard/fb-tui/internal/fetch"
	"github.com/fantasyboard/fb-tui/internal/ui"
	"github.com/fantasyboard/fb-tui/internal/view"
	"golang.org/x/sync/errgroup"
)

type UI interface {
	Send(msg tea.Msg)
	Run() error
}

// App is the main application container. Very little logic is contained
// within this struct. It routes fetch requests from the UI into the fetch
// engine and pushes results and session events back.
type App struct {
	ui             UI
	config         config.Config
	views          *view.Manager
	fetcher        *fetch.Orchestrator
	client         *fantasy.Client
	requests       chan any
	configUpdates  chan config.Config
	sessionExpired chan struct{}
	uiUpdates      chan any
	budget         atomic.Int32

	fetchMu     sync.Mutex
	fetchCancel context.CancelFunc
}

// NewApp returns a new application instance. To actually start the app you
// must call Start().
func NewApp(conf config.Config, views *view.Manager, fetcher *fetch.Orchestrator, client *fantasy.Client,
	configUpdates chan config.Config, sessionExpired chan struct{},
) *App {
	app := &App{
		config:         conf,
		views:          views,
		fetcher:        fetcher,
		client:         client,
		requests:       make(chan any, 8),
		configUpdates:  configUpdates,
		sessionExpired: sessionExpired,
		uiUpdates:      make(chan any, 16),
	}
	app.budget.Store(int32(conf.MaxPlayers))

	// Progress is cosmetic, never let it block a fetch.
	fetcher.OnProgress(func(collected int) {
		select {
		case app.uiUpdates <- ui.FetchProgressMsg{Collected: collected}:
		default:
		}
	})

	return app
}

// Start brings up the background goroutines and runs the main event loop
// until the UI exits or the context is cancelled.
func (app *App) Start(ctx context.Context, done <-chan any) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	group, ctx := errgroup.WithContext(ctx)

	// Forward all queued updates to the UI.
	group.Go(func() error {
		app.uiSender(ctx)

		return nil
	})

	// Warm the game key cache and size the record budget off the probe
	// latency, then kick off the initial fetch.
	group.Go(func() error {
		app.probe(ctx)

		return nil
	})

loop:
	for {
		select {
		case req := <-app.requests:
			switch req.(type) {
			case ui.FetchRequest:
				app.startFetch(ctx)
			}
		case conf := <-app.configUpdates:
			app.onConfigUpdate(conf)
		case <-app.sessionExpired:
			app.uiUpdates <- ui.SessionExpiredMsg{}
		case <-ctx.Done():
			break loop
		case <-done:
			break loop
		}
	}

	cancel()

	return group.Wait()
}

func (app *App) onConfigUpdate(conf config.Config) {
	slog.Info("Config reloaded")
	app.config = conf
	app.budget.Store(int32(conf.MaxPlayers))
}

// probe measures one round trip against the provider before the first
// comprehensive fetch. A slow link gets the reduced record budget so the
// initial fill does not take minutes.
func (app *App) probe(ctx context.Context) {
	year := app.config.SeasonYear
	if year <= 0 {
		year = time.Now().Year()
	}

	started := time.Now()
	_, errProbe := app.client.GameKey(ctx, strconv.Itoa(year))
	latency := time.Since(started)

	if errProbe != nil {
		if errors.Is(errProbe, auth.ErrSessionExpired) || ctx.Err() != nil {
			// The sign-out path already notified the UI.
			return
		}
		slog.Warn("Game key probe failed", slog.String("error", errProbe.Error()))
	}

	if slow := time.Duration(app.config.SlowProbeMs) * time.Millisecond; slow > 0 && latency > slow {
		slog.Info("Slow connection detected, reducing record budget",
			slog.Duration("latency", latency), slog.Int("budget", app.config.MaxPlayersSlow))
		app.budget.Store(int32(app.config.MaxPlayersSlow))
	}

	select {
	case app.requests <- ui.FetchRequest{}:
	case <-ctx.Done():
	}
}

// startFetch begins a comprehensive fetch for the selector the view
// currently wants, cancelling any fetch still in flight. A result that
// lands after the user moved on is dropped by the view manager.
func (app *App) startFetch(ctx context.Context) {
	app.fetchMu.Lock()
	if app.fetchCancel != nil {
		app.fetchCancel()
	}
	fetchCtx, cancel := context.WithCancel(ctx)
	app.fetchCancel = cancel
	app.fetchMu.Unlock()

	selector := app.views.Selector()
	app.views.SetLoading(true)

	go func() {
		defer cancel()

		players := app.fetcher.FetchAll(fetchCtx, selector, int(app.budget.Load()))
		if fetchCtx.Err() != nil {
			return
		}

		if !app.views.SetDataset(selector, players) {
			slog.Debug("Dropped stale fetch result",
				slog.String("selector", selector.CacheKey()), slog.Int("records", len(players)))

			return
		}

		slog.Info("Dataset updated", slog.String("selector", selector.CacheKey()),
			slog.Int("records", len(players)))

		select {
		case app.uiUpdates <- ui.DatasetUpdatedMsg{}:
		case <-fetchCtx.Done():
		}
	}()
}

// uiSender handles forwarding all events to the UI.
func (app *App) uiSender(ctx context.Context) {
	for {
		select {
		case msg := <-app.uiUpdates:
			if app.ui != nil {
				app.ui.Send(msg)
			}
		case <-ctx.Done():
			return
		}
	}
}

func (app *App) createUI(ctx context.Context, configPath string) UI {
	if app.ui == nil {
		app.ui = ui.New(ctx, app.config, app.views, BuildVersion, BuildDate, BuildCommit, configPath, app.requests)
	}

	return app.ui
}
