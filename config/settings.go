package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"submarine/core"
)

// ErrInvalidSettings is wrapped by every validation failure
var ErrInvalidSettings = errors.New("invalid settings")

// FileName is the settings file looked up in the config directory
const FileName = "settings.json"

const configName = "settings"

type Settings struct {
	Window    WindowSettings    `mapstructure:"window"`
	Scene     SceneSettings     `mapstructure:"scene"`
	Animation AnimationSettings `mapstructure:"animation"`
	LogLevel  string            `mapstructure:"logLevel"`
}

type WindowSettings struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
	X      int    `mapstructure:"x"`
	Y      int    `mapstructure:"y"`
}

type SceneSettings struct {
	MeshSize    int  `mapstructure:"meshSize"`
	DrawTower   bool `mapstructure:"drawTower"`
	SecondLight bool `mapstructure:"secondLight"`
}

type AnimationSettings struct {
	TickMillis int    `mapstructure:"tickMillis"`
	Timestep   string `mapstructure:"timestep"`
}

// TickInterval is the timer period as a duration
func (a AnimationSettings) TickInterval() time.Duration {
	return time.Duration(a.TickMillis) * time.Millisecond
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.width", 650)
	v.SetDefault("window.height", 500)
	v.SetDefault("window.title", "Assignment 1")
	v.SetDefault("window.x", 200)
	v.SetDefault("window.y", 30)

	v.SetDefault("scene.meshSize", 16)
	v.SetDefault("scene.drawTower", false)
	v.SetDefault("scene.secondLight", false)

	v.SetDefault("animation.tickMillis", 16)
	v.SetDefault("animation.timestep", core.TimestepFixed)

	v.SetDefault("logLevel", "info")
}

// Load reads settings.json from configDir over the built-in defaults.
// A missing file is not an error; an unreadable or invalid one is.
func Load(configDir string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	if configDir != "" {
		v.SetConfigName(configName)
		v.SetConfigType("json")
		v.AddConfigPath(configDir)

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading %s: %w", FileName, err)
			}
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

// Defaults returns the settings used when no file is present. The built-in
// values always validate, so an error here is a programming mistake.
func Defaults() *Settings {
	s, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("built-in settings are invalid: %v", err))
	}
	return s
}

// Validate rejects values the scene cannot run with
func (s *Settings) Validate() error {
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidSettings, s.Window.Width, s.Window.Height)
	}
	if s.Scene.MeshSize < 1 {
		return fmt.Errorf("%w: mesh size %d", ErrInvalidSettings, s.Scene.MeshSize)
	}
	if s.Animation.TickMillis <= 0 {
		return fmt.Errorf("%w: tick interval %dms", ErrInvalidSettings, s.Animation.TickMillis)
	}
	switch s.Animation.Timestep {
	case core.TimestepFixed, core.TimestepDelta:
	default:
		return fmt.Errorf("%w: timestep %q", ErrInvalidSettings, s.Animation.Timestep)
	}
	return nil
}
