package config

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path"
	"time"

	"github.com/adrg/xdg"
	"github.com/fantasyboard/fb-tui/internal/auth"
)

var (
	errConfigRead = errors.New("failed to read config file")
	errLoggerInit = errors.New("failed to initialize logger")
)

const (
	ConfigDirName      = "fb-tui"
	DefaultConfigName  = "fb-tui"
	DefaultDBName      = "fb-tui.db"
	DefaultLogName     = "fb-tui.log"
	EnvPrefix          = "fbtui"
	DefaultHTTPTimeout = 15 * time.Second
)

type Config struct {
	APIBaseURL string `mapstructure:"api_base_url,omitempty"`
	TokenURL   string `mapstructure:"token_url,omitempty"`
	RevokeURL  string `mapstructure:"revoke_url,omitempty"`
	// ClientID/ClientSecret identify this app to the provider's token
	// endpoint. Normally supplied through the environment or a .env file,
	// never written back to the config file.
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	// The bearer credential produced by the sign-in flow. The refresh
	// lifecycle rotates these in memory only.
	AccessToken  string `mapstructure:"access_token"`
	RefreshToken string `mapstructure:"refresh_token"`
	ExpiresAt    int64  `mapstructure:"expires_at"`
	// SeasonYear overrides the current season; zero means the calendar
	// year.
	SeasonYear int `mapstructure:"season_year,omitempty"`
	// MaxPlayers caps the comprehensive fetch. MaxPlayersSlow applies
	// instead when the connection probe is slower than SlowProbeMs.
	MaxPlayers     int  `mapstructure:"max_players,omitempty"`
	MaxPlayersSlow int  `mapstructure:"max_players_slow,omitempty"`
	SlowProbeMs    int  `mapstructure:"slow_probe_ms,omitempty"`
	UpdateFreqMs   int  `mapstructure:"update_freq_ms,omitempty"`
	FPS            int  `mapstructure:"fps,omitempty"`
	Debug          bool `mapstructure:"debug"`
}

// Credential builds the bootstrap credential handed to the auth manager.
func (c Config) Credential() auth.Credential {
	return auth.Credential{
		AccessToken:  c.AccessToken,
		RefreshToken: c.RefreshToken,
		ExpiresAt:    c.ExpiresAt,
	}
}

// Endpoint builds the token endpoint description for the auth manager.
func (c Config) Endpoint() auth.Endpoint {
	return auth.Endpoint{
		TokenURL:     c.TokenURL,
		RevokeURL:    c.RevokeURL,
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
	}
}

// Path generates a path pointing to the filename under this apps defined $XDG_CONFIG_HOME.
func Path(name string) string {
	fullPath, errFullPath := xdg.ConfigFile(path.Join(ConfigDirName, name))
	if errFullPath != nil {
		panic(errFullPath)
	}

	return fullPath
}

// LoggerInit sets up the slog global handler to use a log file as we cant print to the console.
func LoggerInit(logPath string, level slog.Level) (io.Closer, error) {
	logFile, errLogFile := os.Create(path.Join(xdg.ConfigHome, ConfigDirName, logPath))
	if errLogFile != nil {
		return nil, errors.Join(errLogFile, errLoggerInit)
	}

	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{
		AddSource: false,
		Level:     level,
	}))

	slog.SetDefault(logger)

	return logFile, nil
}
