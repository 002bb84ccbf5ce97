// snakesvg serves a single-player snake game as an SVG image.
//
// Usage:
//
//	snakesvg serve           - Start the HTTP server
//	snakesvg render          - Render a board to stdout without a server
//	snakesvg scores          - Show finished games
//	snakesvg config          - Print or install the default config
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.snakesvg/config.yaml, ./configs/snakesvg.yaml)
//	--seed <value>      - RNG seed for food placement (0 = random)
//	--db <path>         - Finished-game database ("" disables history)
//	--log-level <lvl>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/svg-snake/internal/config"
	"github.com/vovakirdan/svg-snake/internal/games/snake"
)

var (
	// Global flags
	flagConfigPath string
	flagSeed       int64
	flagDBPath     string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snakesvg",
	Short: "Snake over HTTP, rendered as SVG",
	Long: `snakesvg runs one snake game behind a tiny HTTP API. The board is
served as an SVG image and every request to /move/<direction> advances
the snake by one cell.

Available commands:
  serve    - Start the HTTP server
  render   - Render a board without a server
  scores   - View finished games
  config   - Print or install the default config

Examples:
  snakesvg serve
  PORT=8080 snakesvg serve
  snakesvg render --moves right,right,down > board.svg
  snakesvg scores --limit 5`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to finished-game database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the config file, then applies PORT and explicit flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfigPath)
	if err != nil {
		return cfg, err
	}
	cfg.ApplyEnv(os.Getenv)

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Game.Seed = flagSeed
	}
	if flags.Changed("db") {
		cfg.Storage.DBPath = flagDBPath
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if flags.Changed("addr") {
		cfg.Server.Address = flagAddr
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func newLogger(cfg config.Config) *log.Logger {
	level, _ := cfg.LogLevel()
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "snakesvg",
		Level:           level,
	})
}

func paletteFrom(cfg config.Config) snake.Palette {
	return snake.Palette{
		Background: cfg.Palette.Background,
		Grid:       cfg.Palette.Grid,
		Food:       cfg.Palette.Food,
		Snake:      cfg.Palette.Snake,
		Head:       cfg.Palette.Head,
	}
}
