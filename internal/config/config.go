// Package config provides YAML-based configuration loading for the
// snake server.
package config

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// Config is the complete server configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
	Game    GameConfig    `yaml:"game"`
	Palette PaletteConfig `yaml:"palette"`
	Storage StorageConfig `yaml:"storage"`
}

// ServerConfig defines the HTTP listener.
type ServerConfig struct {
	Address         string        `yaml:"address"`          // host:port
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"` // Graceful shutdown budget
}

// LogConfig defines logging output.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// GameConfig defines game parameters that may vary per deployment.
// Board and cell size are fixed and not configurable.
type GameConfig struct {
	Seed int64 `yaml:"seed"` // 0 = random based on time
}

// PaletteConfig defines the board colors.
type PaletteConfig struct {
	Background string `yaml:"background"`
	Grid       string `yaml:"grid"`
	Food       string `yaml:"food"`
	Snake      string `yaml:"snake"`
	Head       string `yaml:"head"`
}

// StorageConfig defines finished-game history.
type StorageConfig struct {
	DBPath      string `yaml:"db_path"`      // Empty disables history
	ScoresLimit int    `yaml:"scores_limit"` // Rows returned by /scores
}

// LogLevel parses the configured level.
func (c Config) LogLevel() (log.Level, error) {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("config: invalid log level %q: %w", c.Log.Level, err)
	}
	return lvl, nil
}

// Validate checks the configuration for values the server cannot run with.
func (c Config) Validate() error {
	if c.Server.Address == "" {
		return fmt.Errorf("config: server.address is required")
	}
	if c.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("config: server.shutdown_timeout must not be negative")
	}
	if c.Storage.ScoresLimit < 0 {
		return fmt.Errorf("config: storage.scores_limit must not be negative")
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}
