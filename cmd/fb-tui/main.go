package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/fang"
	"github.com/fantasyboard/fb-tui/internal/auth"
	"github.com/fantasyboard/fb-tui/internal/config"
	"github.com/fantasyboard/fb-tui/internal/fantasy"
	"github.com/fantasyboard/fb-tui/internal/fetch"
	"github.com/fantasyboard/fb-tui/internal/prefs"
	"github.com/fantasyboard/fb-tui/internal/store"
	"github.com/fantasyboard/fb-tui/internal/view"
	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	_ "modernc.org/sqlite"
)

var (
	BuildVersion   = "master"
	BuildCommit    = "00000000"
	BuildDate      = time.Now().Format("2006-01-02T15:04:05Z")
	BuildGoVersion = runtime.Version()
	cfgFile        string
	rootCmd        = &cobra.Command{
		Use:   "fb-tui",
		Short: "Fantasy baseball stats TUI",
		Long:  `fb-tui - A terminal dashboard for browsing the full fantasy baseball player catalog`,
		RunE:  run,
	}

	versionCmd = &cobra.Command{
		Use:               "version",
		Short:             "Print version information",
		Long:              "Print detailed version information about fb-tui",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		Run:               version,
	}
)

var errApp = errors.New("application error")

func main() {
	configPath := config.Path(config.DefaultConfigName)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", configPath, "Config file path")
	rootCmd.AddCommand(versionCmd)

	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		slog.Error("Exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func version(_ *cobra.Command, _ []string) {
	fmt.Printf("fb-tui - Fantasy Baseball Terminal UI\n\n") //nolint:forbidigo
	fmt.Printf("  Version: %s\n", BuildVersion)             //nolint:forbidigo
	fmt.Printf("  Commit:  %s\n", BuildCommit)              //nolint:forbidigo
	fmt.Printf("  Built:   %s\n", BuildDate)                //nolint:forbidigo
	fmt.Printf("  Runtime: %s\n\n", BuildGoVersion)         //nolint:forbidigo
}

// run is the main entry point of fb-tui.
func run(cmd *cobra.Command, _ []string) error {
	// If PROFILE is set, it will be used as the output file path for the profiler.
	if len(os.Getenv("PROFILE")) > 0 {
		f, err := os.Create(os.Getenv("PROFILE"))
		if err != nil {
			return errors.Join(err, errApp)
		}

		if errStart := pprof.StartCPUProfile(f); errStart != nil {
			return errors.Join(errStart, errApp)
		}
		defer pprof.StopCPUProfile()
	}

	// Make sure our config & data home exists.
	if err := os.MkdirAll(path.Join(xdg.ConfigHome, config.ConfigDirName), 0o750); err != nil {
		return errors.Join(err, errApp)
	}

	configUpdates := make(chan config.Config)

	configLoader := config.NewLoader(configUpdates)
	userConfig, errConfig := configLoader.Read()
	if errConfig != nil {
		return errors.Join(errApp, errConfig)
	}

	// Setup file based logger. This is very useful for us as our console is taken over by the ui.
	level := slog.LevelInfo
	if userConfig.Debug {
		level = slog.LevelDebug
	}
	logFile, errLogger := config.LoggerInit(config.DefaultLogName, level)
	if errLogger != nil {
		return errors.Join(errLogger, errApp)
	}

	defer func(closer io.Closer) {
		if err := closer.Close(); err != nil {
			slog.Error("Failed to close log file", slog.String("error", err.Error()))
		}
	}(logFile)

	slog.Info("Starting fb-tui", slog.String("version", BuildVersion),
		slog.String("commit", BuildCommit), slog.String("date", BuildDate),
		slog.String("go", runtime.Version()))

	// Setup the sqlite database holding the persisted filter preferences.
	database, errDB := store.Open(cmd.Context(), config.Path(config.DefaultDBName), true)
	if errDB != nil {
		return errors.Join(errDB, errApp)
	}

	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Error closing database", slog.String("error", err.Error()))
		}
	}()

	views := view.NewManager(prefs.New(database))

	// Setup the credential lifecycle and the upstream client.
	httpClient := &http.Client{Timeout: config.DefaultHTTPTimeout}
	sessionExpired := make(chan struct{}, 1)
	tokens := auth.NewManager(userConfig.Credential(), userConfig.Endpoint(), httpClient, func() {
		select {
		case sessionExpired <- struct{}{}:
		default:
		}
	})

	client := fantasy.NewClient(userConfig.APIBaseURL, tokens, httpClient)
	client.SetCurrentSeason(userConfig.SeasonYear)

	done := make(chan any)
	app := NewApp(userConfig, views, fetch.NewOrchestrator(client), client, configUpdates, sessionExpired)

	go func() {
		if err := app.createUI(cmd.Context(), configLoader.Path()).Run(); err != nil {
			slog.Error("Failed to run UI", slog.String("error", err.Error()))
		}

		done <- "⚾"
	}()

	return app.Start(cmd.Context(), done)
}
