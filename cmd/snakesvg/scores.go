package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/svg-snake/internal/storage"
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show finished games",
	Long: `Display the top finished games recorded by the server.

Examples:
  snakesvg scores
  snakesvg scores --limit 5 --db ./games.db`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of games to show")
}

func runScores(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Storage.DBPath == "" {
		return fmt.Errorf("score history is disabled (storage.db_path is empty)")
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("opening games database: %w", err)
	}
	defer store.Close()

	ctx := context.Background()
	games, err := store.TopGames(ctx, flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}
	stats, err := store.GetStats(ctx)
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(games) == 0 {
		fmt.Fprintln(out, "No games recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Run 'snakesvg serve' and play until game over to record one.")
		return nil
	}

	styled := false
	if f, ok := out.(*os.File); ok {
		styled = term.IsTerminal(int(f.Fd()))
	}
	writeScores(out, games, stats, styled)
	return nil
}

func writeScores(w io.Writer, games []storage.GameRecord, stats *storage.Stats, styled bool) {
	var b strings.Builder
	fmt.Fprintf(&b, "  %-4s  %-6s  %-6s  %s\n", "Rank", "Score", "Length", "Ended")
	for i, g := range games {
		fmt.Fprintf(&b, "  %-4d  %-6d  %-6d  %s\n", i+1, g.Score, g.Length, g.EndedAt.Local().Format("2006-01-02 15:04"))
	}
	table := strings.TrimRight(b.String(), "\n")
	summary := fmt.Sprintf("Best: %d  Games: %d  Average: %.1f", stats.HighScore, stats.GamesCount, stats.AvgScore)

	if !styled {
		fmt.Fprintln(w, "High Scores - Snake")
		fmt.Fprintln(w)
		fmt.Fprintln(w, table)
		fmt.Fprintln(w)
		fmt.Fprintln(w, summary)
		return
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)
	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	fmt.Fprintln(w, lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("High Scores - Snake"),
		tableStyle.Render(table),
		helpStyle.Render(summary),
	))
}
