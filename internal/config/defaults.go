package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/server.yaml
var defaultServerYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Address:         ":5000",
			ShutdownTimeout: 10 * time.Second,
		},
		Log: LogConfig{
			Level: "info",
		},
		Game: GameConfig{
			Seed: 0,
		},
		Palette: PaletteConfig{
			Background: "#0d1117",
			Grid:       "#21262d",
			Food:       "#da3633",
			Snake:      "#238636",
			Head:       "#2ea043",
		},
		Storage: StorageConfig{
			DBPath:      "~/.snakesvg/games.db",
			ScoresLimit: 10,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultServerYAML
}

// fillDefaults replaces zero values with built-in defaults.
// storage.db_path is left alone: empty means history is disabled.
func (c *Config) fillDefaults() {
	d := Default()
	if c.Server.Address == "" {
		c.Server.Address = d.Server.Address
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = d.Server.ShutdownTimeout
	}
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
	p := &c.Palette
	if p.Background == "" {
		p.Background = d.Palette.Background
	}
	if p.Grid == "" {
		p.Grid = d.Palette.Grid
	}
	if p.Food == "" {
		p.Food = d.Palette.Food
	}
	if p.Snake == "" {
		p.Snake = d.Palette.Snake
	}
	if p.Head == "" {
		p.Head = d.Palette.Head
	}
	if c.Storage.ScoresLimit == 0 {
		c.Storage.ScoresLimit = d.Storage.ScoresLimit
	}
}
