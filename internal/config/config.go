// Package config provides YAML-based application configuration loading
// for slide: storage, SSH server, metrics, logging, theme and level files.
package config

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/slide/internal/core"
)

// Config is the complete application configuration.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	SSH     SSHConfig     `yaml:"ssh"`
	Metrics MetricsConfig `yaml:"metrics"`
	Log     LogConfig     `yaml:"log"`
	Theme   ThemeConfig   `yaml:"theme"`
	Levels  LevelsConfig  `yaml:"levels"`
}

// StorageConfig locates the SQLite database.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// SSHConfig configures the wish server.
type SSHConfig struct {
	Address            string `yaml:"address"`
	HostKeyPath        string `yaml:"host_key_path"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// IdleTimeout returns the idle timeout as a duration.
func (c SSHConfig) IdleTimeout() time.Duration {
	return time.Duration(c.IdleTimeoutMinutes) * time.Minute
}

// MetricsConfig configures the Prometheus endpoint. Empty address disables it.
type MetricsConfig struct {
	Address string `yaml:"address"`
}

// LogConfig configures the charmbracelet logger.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// ThemeConfig holds the board colors as hex strings.
type ThemeConfig struct {
	PieceColors []string `yaml:"piece_colors"`
	ExtraColor  string   `yaml:"extra_color"`
}

// LevelsConfig points at a directory of extra campaign files.
type LevelsConfig struct {
	Dir string `yaml:"dir"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Storage: StorageConfig{Path: "~/.slide/slide.db"},
		SSH: SSHConfig{
			Address:            ":2222",
			HostKeyPath:        ".ssh/slide_ed25519",
			IdleTimeoutMinutes: 30,
		},
		Log: LogConfig{Level: "info"},
		Theme: ThemeConfig{
			PieceColors: append([]string(nil), core.DefaultPiecePalette[:]...),
			ExtraColor:  core.DefaultExtraColor,
		},
	}
}

// Overrides are command-line values that take precedence over the file.
// Empty fields leave the loaded value alone.
type Overrides struct {
	DBPath   string
	LogLevel string
}

// ApplyFlags overlays non-empty command-line values.
func (c *Config) ApplyFlags(o Overrides) {
	if o.DBPath != "" {
		c.Storage.Path = o.DBPath
	}
	if o.LogLevel != "" {
		c.Log.Level = o.LogLevel
	}
}

// LogLevel parses the configured log level. An empty level is info.
func (c Config) LogLevel() (log.Level, error) {
	if c.Log.Level == "" {
		return log.InfoLevel, nil
	}
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("config: %w", err)
	}
	return lvl, nil
}

// fillDefaults replaces zero values left by a partial file.
func (c *Config) fillDefaults() {
	def := Default()
	if c.Storage.Path == "" {
		c.Storage.Path = def.Storage.Path
	}
	if c.SSH.Address == "" {
		c.SSH.Address = def.SSH.Address
	}
	if c.SSH.HostKeyPath == "" {
		c.SSH.HostKeyPath = def.SSH.HostKeyPath
	}
	if c.SSH.IdleTimeoutMinutes <= 0 {
		c.SSH.IdleTimeoutMinutes = def.SSH.IdleTimeoutMinutes
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
	if len(c.Theme.PieceColors) == 0 {
		c.Theme.PieceColors = def.Theme.PieceColors
	}
	if c.Theme.ExtraColor == "" {
		c.Theme.ExtraColor = def.Theme.ExtraColor
	}
}
