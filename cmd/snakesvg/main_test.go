package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/svg-snake/internal/core"
	"github.com/vovakirdan/svg-snake/internal/storage"
)

func TestParseMoves(t *testing.T) {
	moves, err := parseMoves("right, down,left")
	if err != nil {
		t.Fatalf("parseMoves() failed: %v", err)
	}
	expected := []core.Direction{core.DirRight, core.DirDown, core.DirLeft}
	if len(moves) != len(expected) {
		t.Fatalf("got %v, expected %v", moves, expected)
	}
	for i := range expected {
		if moves[i] != expected[i] {
			t.Errorf("move %d = %v, expected %v", i, moves[i], expected[i])
		}
	}

	if moves, err := parseMoves(""); err != nil || moves != nil {
		t.Errorf("empty moves = %v, %v", moves, err)
	}
	if _, err := parseMoves("up,sideways"); err == nil {
		t.Error("expected error for invalid move")
	}
}

func TestRenderCommand(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	out := filepath.Join(t.TempDir(), "board.svg")

	rootCmd.SetArgs([]string{"render", "--moves", "right,right", "--out", out})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	t.Cleanup(func() { flagMoves, flagOut = "", "" })

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	// Head moved from x=10 to x=12: rect at 12*20+1.
	if !strings.Contains(string(data), `<rect x="241" y="141" width="18" height="18" fill="#2ea043" opacity="1.0" rx="2"/>`) {
		t.Errorf("head not rendered at (12, 7):\n%s", data)
	}
}

func TestWriteScoresPlain(t *testing.T) {
	games := []storage.GameRecord{
		{Score: 120, Length: 15, EndedAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.Local)},
		{Score: 40, Length: 7, EndedAt: time.Date(2024, 3, 2, 11, 30, 0, 0, time.Local)},
	}
	stats := &storage.Stats{GamesCount: 2, HighScore: 120, AvgScore: 80}

	var buf bytes.Buffer
	writeScores(&buf, games, stats, false)
	out := buf.String()

	for _, want := range []string{"High Scores - Snake", "120", "2024-03-02 11:30", "Best: 120  Games: 2  Average: 80.0"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteScoresStyled(t *testing.T) {
	var buf bytes.Buffer
	writeScores(&buf, []storage.GameRecord{{Score: 10, Length: 4}}, &storage.Stats{GamesCount: 1, HighScore: 10, AvgScore: 10}, true)
	if !strings.Contains(buf.String(), "High Scores - Snake") {
		t.Errorf("styled output missing title:\n%s", buf.String())
	}
}
