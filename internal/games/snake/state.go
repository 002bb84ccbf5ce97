// Package snake implements the single-player snake game served over HTTP:
// a pure movement engine and a deterministic SVG board renderer.
package snake

import (
	"time"

	"github.com/vovakirdan/svg-snake/internal/core"
)

// ScorePerFood is the score increment for each food eaten.
const ScorePerFood = 10

// State is the complete game state. The engine never mutates a State in
// place; Advance returns a new value with its own snake slice.
type State struct {
	Board     core.Size
	Snake     []core.Point // Head at index 0
	Direction core.Direction
	Food      core.Point
	Score     int
	GameOver  bool
	LastMove  time.Time
}

// NewState returns the fixed starting configuration: a three-segment snake
// heading right through the middle of the board, food at (15, 7).
func NewState(at time.Time) State {
	return State{
		Board: core.Size{W: core.BoardWidth, H: core.BoardHeight},
		Snake: []core.Point{
			{X: 10, Y: 7}, // Head
			{X: 9, Y: 7},
			{X: 8, Y: 7},
		},
		Direction: core.DirRight,
		Food:      core.Point{X: 15, Y: 7},
		LastMove:  at,
	}
}

// Head returns the head segment.
func (s State) Head() core.Point {
	if len(s.Snake) == 0 {
		return core.Point{}
	}
	return s.Snake[0]
}

// Occupies reports whether any snake segment is on p.
func (s State) Occupies(p core.Point) bool {
	return occupied(s.Snake, p)
}

// Clone returns a copy that shares no memory with s.
func (s State) Clone() State {
	c := s
	c.Snake = append([]core.Point(nil), s.Snake...)
	return c
}

func occupied(body []core.Point, p core.Point) bool {
	for _, seg := range body {
		if seg == p {
			return true
		}
	}
	return false
}
