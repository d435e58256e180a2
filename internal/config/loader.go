package config

import (
	"errors"
	"log/slog"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Loader handles setting up viper, loading configuration from files, and broadcasting configuration changes.
type Loader struct {
	*viper.Viper
	changes chan<- Config
}

func NewLoader(changes chan<- Config) *Loader {
	loader := Loader{changes: changes, Viper: viper.New()}
	loader.SetDefault("api_base_url", "https://fantasysports.yahooapis.com/fantasy/v2")
	loader.SetDefault("token_url", "https://api.login.yahoo.com/oauth2/get_token")
	loader.SetDefault("revoke_url", "https://api.login.yahoo.com/oauth2/revoke")
	loader.SetDefault("client_id", "")
	loader.SetDefault("client_secret", "")
	loader.SetDefault("access_token", "")
	loader.SetDefault("refresh_token", "")
	loader.SetDefault("expires_at", 0)
	loader.SetDefault("season_year", 0)
	loader.SetDefault("max_players", 300)
	loader.SetDefault("max_players_slow", 100)
	loader.SetDefault("slow_probe_ms", 1500)
	loader.SetDefault("update_freq_ms", 2000)
	loader.SetDefault("fps", 30)
	loader.SetDefault("debug", false)
	loader.SetConfigName(DefaultConfigName)
	loader.SetConfigType("yaml")
	loader.SetEnvPrefix(EnvPrefix)
	loader.AddConfigPath(Path(""))
	loader.AddConfigPath(".")
	loader.AutomaticEnv()
	loader.WatchConfig()
	loader.OnConfigChange(loader.onConfigChange)

	return &loader
}

func (cl *Loader) Path() string {
	return cl.ConfigFileUsed()
}

func (cl *Loader) onConfigChange(in fsnotify.Event) {
	if in.Op != fsnotify.Write && in.Op != fsnotify.Rename {
		return
	}

	slog.Debug("External config reload triggered")
	config, err := cl.Read()
	if err != nil {
		slog.Error("Error reading config", slog.String("error", err.Error()))

		return
	}

	cl.changes <- config
}

func (cl *Loader) Read() (Config, error) {
	if err := cl.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return Config{}, errors.Join(err, errConfigRead)
		}
	}

	var config Config
	if err := cl.Unmarshal(&config); err != nil {
		return Config{}, errors.Join(err, errConfigRead)
	}

	return config, nil
}
