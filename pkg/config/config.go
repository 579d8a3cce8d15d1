package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// ConfigName is the settings file looked up in the config directory.
const ConfigName = "route_reroute"

// WindowSettings holds the desktop window layout.
type WindowSettings struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
}

// MusicSettings holds ambient music preferences.
type MusicSettings struct {
	Enabled bool    `mapstructure:"enabled"`
	Volume  float64 `mapstructure:"volume"`
}

// Settings are the runtime settings of the game.
type Settings struct {
	Window     WindowSettings `mapstructure:"window"`
	LogLevel   string         `mapstructure:"logLevel"`
	ConsoleLog bool           `mapstructure:"consoleLog"`
	AppName    string         `mapstructure:"appName"`
	Graphics   string         `mapstructure:"graphics"`
	Music      MusicSettings  `mapstructure:"music"`
	TuningDir  string         `mapstructure:"tuningDir"`
	StartMap   string         `mapstructure:"startMap"`
	DayLength  float64        `mapstructure:"dayLength"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.width", 1024)
	v.SetDefault("window.height", 600)
	v.SetDefault("window.title", "Route Reroute")

	v.SetDefault("logLevel", "info")
	v.SetDefault("consoleLog", true)
	v.SetDefault("appName", "route_reroute")
	v.SetDefault("graphics", "medium")

	v.SetDefault("music.enabled", true)
	v.SetDefault("music.volume", 0.6)

	v.SetDefault("tuningDir", "")
	v.SetDefault("startMap", "downtown")
	v.SetDefault("dayLength", 240.0)
}

// Load reads settings from configDir (route_reroute.yaml) and the
// ROUTE_REROUTE_* environment. A missing file is not an error.
func Load(configDir string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(ConfigName)
	v.SetConfigType("yaml")
	if configDir != "" {
		v.AddConfigPath(configDir)
	}
	v.SetEnvPrefix("ROUTE_REROUTE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("error decoding settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// ErrInvalidSettings is returned when a setting is out of range.
var ErrInvalidSettings = errors.New("invalid settings")

// Validate checks ranges that would break the game loop.
func (s *Settings) Validate() error {
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidSettings, s.Window.Width, s.Window.Height)
	}
	if s.Music.Volume < 0 || s.Music.Volume > 1 {
		return fmt.Errorf("%w: music volume %.2f not in [0,1]", ErrInvalidSettings, s.Music.Volume)
	}
	if s.DayLength <= 0 {
		return fmt.Errorf("%w: dayLength must be positive", ErrInvalidSettings)
	}
	if s.AppName == "" {
		return fmt.Errorf("%w: appName is empty", ErrInvalidSettings)
	}
	return nil
}
