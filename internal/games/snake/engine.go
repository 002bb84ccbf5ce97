package snake

import (
	"time"

	"github.com/vovakirdan/svg-snake/internal/core"
)

// Engine applies moves to a State. It holds only the random source used
// for food placement and the clock used for LastMove.
type Engine struct {
	board core.Size
	rng   core.Rand
	now   func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the wall clock.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// NewEngine creates an engine for cfg.Board drawing food cells from rng.
// A nil rng is seeded from cfg.Seed.
func NewEngine(cfg core.RuntimeConfig, rng core.Rand, opts ...Option) *Engine {
	if rng == nil {
		rng = core.NewRand(cfg.Seed)
	}
	e := &Engine{
		board: cfg.Board,
		rng:   rng,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewState returns a fresh starting state stamped with the engine clock.
func (e *Engine) NewState() State {
	s := NewState(e.now())
	s.Board = e.board
	return s
}

// Advance applies one move in the requested direction.
//
// A finished game is returned unchanged. A request for the exact reverse of
// the current direction is ignored and the snake keeps going straight.
// Leaving the board or running into any segment ends the game without
// moving the snake.
func (e *Engine) Advance(s State, requested core.Direction) State {
	if s.GameOver {
		return s
	}

	next := s.Clone()
	if requested.Valid() && requested != s.Direction.Opposite() {
		next.Direction = requested
	}

	head := s.Head().Add(next.Direction.Delta())

	// Tail included: it has not moved yet.
	if !s.Board.Contains(head) || occupied(s.Snake, head) {
		next.GameOver = true
		return next
	}

	body := make([]core.Point, 0, len(s.Snake)+1)
	body = append(body, head)
	body = append(body, s.Snake...)

	if head == s.Food {
		next.Score += ScorePerFood
		next.Snake = body
		next.Food = e.SpawnFood(body)
	} else {
		next.Snake = body[:len(body)-1]
	}

	next.LastMove = e.now()
	return next
}

// SpawnFood samples cells uniformly until it finds one not covered by body.
// It does not terminate if body covers the whole board.
func (e *Engine) SpawnFood(body []core.Point) core.Point {
	for {
		p := core.Point{
			X: e.rng.Intn(e.board.W),
			Y: e.rng.Intn(e.board.H),
		}
		if !occupied(body, p) {
			return p
		}
	}
}
