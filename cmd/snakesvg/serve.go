package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/svg-snake/internal/core"
	"github.com/vovakirdan/svg-snake/internal/games/snake"
	"github.com/vovakirdan/svg-snake/internal/platform/web"
	"github.com/vovakirdan/svg-snake/internal/session"
	"github.com/vovakirdan/svg-snake/internal/storage"
)

var flagAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the snake HTTP server",
	Long: `Start an HTTP server hosting one shared snake game.

Endpoints:
  GET /game.svg            - Current board (never cached)
  GET /move/<direction>    - Move up, down, left or right
  GET /status              - Score, direction, game over, last move, length
  GET /reset[?redirect=/p] - Start a new game
  GET /scores              - Finished games (when history is enabled)

The PORT environment variable overrides the configured port.

Examples:
  snakesvg serve                    # Listen on :5000
  snakesvg serve --addr :8080       # Listen on port 8080
  snakesvg serve --db ""            # Disable finished-game history
  snakesvg serve --config ./my.yaml # Use specific config`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", "", "HTTP listen address (host:port)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	opts := []session.Option{
		session.WithLogger(logger),
		session.WithPalette(paletteFrom(cfg)),
	}

	var history web.History
	if cfg.Storage.DBPath != "" {
		store, err := storage.Open(cfg.Storage.DBPath)
		if err != nil {
			logger.Warn("could not open games database", "error", err)
			// Continue without history
		} else {
			defer store.Close()
			history = store
			opts = append(opts, session.WithRecorder(store))
		}
	}

	runtime := core.DefaultConfig()
	runtime.Seed = cfg.Game.Seed
	engine := snake.NewEngine(runtime, nil)
	sess := session.New(engine, opts...)

	server := web.NewServer(web.ServerConfig{
		Address:         cfg.Server.Address,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		ScoresLimit:     cfg.Storage.ScoresLimit,
	}, sess, history, logger)

	return server.ListenAndServe(context.Background())
}
