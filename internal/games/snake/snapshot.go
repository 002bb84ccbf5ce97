package snake

import (
	"time"

	"github.com/vovakirdan/svg-snake/internal/core"
)

// Phase is the session-level view of the state machine.
type Phase string

const (
	PhaseActive   Phase = "active"
	PhaseGameOver Phase = "game_over"
)

// Snapshot is a flat, read-only summary of a State.
type Snapshot struct {
	Score     int
	Direction core.Direction
	GameOver  bool
	LastMove  time.Time
	SnakeLen  int
	Head      core.Point
	Food      core.Point
	Phase     Phase
}

// Snapshot returns the summary of s.
func (s State) Snapshot() Snapshot {
	phase := PhaseActive
	if s.GameOver {
		phase = PhaseGameOver
	}
	return Snapshot{
		Score:     s.Score,
		Direction: s.Direction,
		GameOver:  s.GameOver,
		LastMove:  s.LastMove,
		SnakeLen:  len(s.Snake),
		Head:      s.Head(),
		Food:      s.Food,
		Phase:     phase,
	}
}
