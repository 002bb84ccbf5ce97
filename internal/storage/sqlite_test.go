package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/svg-snake/internal/session"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndTopGames(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	for i, score := range []int{100, 50, 200} {
		_, err := store.SaveGame(ctx, GameRecord{
			Score:     score,
			Length:    3 + score/10,
			Direction: "right",
			StartedAt: base,
			EndedAt:   base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("SaveGame() failed: %v", err)
		}
	}

	games, err := store.TopGames(ctx, 10)
	if err != nil {
		t.Fatalf("TopGames() failed: %v", err)
	}
	if len(games) != 3 {
		t.Fatalf("Expected 3 games, got %d", len(games))
	}
	if games[0].Score != 200 || games[1].Score != 100 || games[2].Score != 50 {
		t.Errorf("Games not in expected order: %v", games)
	}
	if games[0].Length != 23 || games[0].Direction != "right" {
		t.Errorf("unexpected top game %+v", games[0])
	}
	if !games[0].EndedAt.Equal(base.Add(2 * time.Minute)) {
		t.Errorf("EndedAt = %v, expected %v", games[0].EndedAt, base.Add(2*time.Minute))
	}
	if !games[0].StartedAt.Equal(base) {
		t.Errorf("StartedAt = %v, expected %v", games[0].StartedAt, base)
	}
}

func TestStoreTopGamesLimit(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		store.SaveGame(ctx, GameRecord{Score: (i + 1) * 100, Length: 3, Direction: "up"})
	}

	games, err := store.TopGames(ctx, 3)
	if err != nil {
		t.Fatalf("TopGames() failed: %v", err)
	}
	if len(games) != 3 {
		t.Errorf("Expected 3 games with limit, got %d", len(games))
	}
	if games[0].Score != 500 || games[1].Score != 400 || games[2].Score != 300 {
		t.Errorf("Games not in expected order: %v", games)
	}
}

func TestStoreHighScoreAndStats(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	high, err := store.HighScore(ctx)
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty store, got %d", high)
	}

	stats, err := store.GetStats(ctx)
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("unexpected empty stats %+v", stats)
	}

	ended := time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)
	store.SaveGame(ctx, GameRecord{Score: 100, Length: 13, Direction: "up", EndedAt: ended.Add(-time.Hour)})
	store.SaveGame(ctx, GameRecord{Score: 300, Length: 33, Direction: "down", EndedAt: ended})

	high, _ = store.HighScore(ctx)
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}

	stats, err = store.GetStats(ctx)
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.AvgScore != 200 {
		t.Errorf("unexpected stats %+v", stats)
	}
	if !stats.LastPlayed.Equal(ended) {
		t.Errorf("LastPlayed = %v, expected %v", stats.LastPlayed, ended)
	}
}

func TestStoreRecordGame(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	var rec session.Recorder = store
	if err := rec.RecordGame(ctx, session.GameResult{Score: 40, Length: 7, Direction: "left"}); err != nil {
		t.Fatalf("RecordGame() failed: %v", err)
	}

	games, _ := store.TopGames(ctx, 0)
	if len(games) != 1 || games[0].Score != 40 || games[0].Direction != "left" {
		t.Errorf("unexpected games %+v", games)
	}
}

func TestStoreClearGames(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	store.SaveGame(ctx, GameRecord{Score: 10, Length: 4, Direction: "up"})
	if err := store.ClearGames(ctx); err != nil {
		t.Fatalf("ClearGames() failed: %v", err)
	}

	games, _ := store.TopGames(ctx, 10)
	if len(games) != 0 {
		t.Errorf("Expected 0 games after clear, got %d", len(games))
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := ExpandHome("~/.snakesvg/games.db")
	if err != nil {
		t.Fatalf("ExpandHome() failed: %v", err)
	}
	if want := filepath.Join(home, ".snakesvg", "games.db"); got != want {
		t.Errorf("ExpandHome() = %q, expected %q", got, want)
	}

	if got, _ := ExpandHome("/tmp/x.db"); got != "/tmp/x.db" {
		t.Errorf("absolute path changed to %q", got)
	}
}
