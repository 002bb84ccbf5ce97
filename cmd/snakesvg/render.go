package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/svg-snake/internal/core"
	"github.com/vovakirdan/svg-snake/internal/games/snake"
)

var (
	flagMoves string
	flagOut   string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a board to SVG without starting a server",
	Long: `Render the starting board, optionally after a comma-separated list of
moves, and write the SVG to stdout or a file. Food keeps its fixed
starting cell until eaten; use --seed for reproducible respawns.

Examples:
  snakesvg render > board.svg
  snakesvg render --moves right,right,down --out board.svg
  snakesvg render --moves up,up,up,up,up,up,up,up --seed 42`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVar(&flagMoves, "moves", "", "Comma-separated moves (up, down, left, right)")
	renderCmd.Flags().StringVar(&flagOut, "out", "", "Output file (default stdout)")
}

func runRender(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	moves, err := parseMoves(flagMoves)
	if err != nil {
		return err
	}

	runtime := core.DefaultConfig()
	runtime.Seed = cfg.Game.Seed
	engine := snake.NewEngine(runtime, nil)

	state := engine.NewState()
	for _, d := range moves {
		state = engine.Advance(state, d)
	}

	svg := snake.Render(state, paletteFrom(cfg))
	if flagOut == "" {
		_, err = cmd.OutOrStdout().Write(svg)
		return err
	}
	if err := os.WriteFile(flagOut, svg, 0o644); err != nil {
		return fmt.Errorf("cannot write %s: %w", flagOut, err)
	}
	return nil
}

func parseMoves(s string) ([]core.Direction, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var moves []core.Direction
	for _, part := range strings.Split(s, ",") {
		d, ok := core.ParseDirection(strings.TrimSpace(part))
		if !ok {
			return nil, fmt.Errorf("invalid direction %q", part)
		}
		moves = append(moves, d)
	}
	return moves, nil
}
