// Package session owns the single mutable game served by the HTTP layer.
// All reads and writes go through one mutex, so moves are applied
// atomically and concurrent requests never lose updates.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/svg-snake/internal/core"
	"github.com/vovakirdan/svg-snake/internal/games/snake"
)

// ErrInvalidDirection is returned by Move for anything but the four directions.
var ErrInvalidDirection = errors.New("session: invalid direction")

// GameResult describes a finished game.
type GameResult struct {
	Score     int
	Length    int
	Direction string
	StartedAt time.Time
	EndedAt   time.Time
}

// Recorder receives every finished game.
type Recorder interface {
	RecordGame(ctx context.Context, result GameResult) error
}

// Session serializes access to one game.
type Session struct {
	mu        sync.Mutex
	engine    *snake.Engine
	palette   snake.Palette
	state     snake.State
	startedAt time.Time
	recorder  Recorder
	logger    *log.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithRecorder stores finished games through r.
func WithRecorder(r Recorder) Option {
	return func(s *Session) {
		s.recorder = r
	}
}

// WithPalette sets the board colors.
func WithPalette(p snake.Palette) Option {
	return func(s *Session) {
		s.palette = p
	}
}

// WithLogger sets the logger used for recorder failures.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// New creates a session with a fresh game and randomly placed food.
func New(engine *snake.Engine, opts ...Option) *Session {
	s := &Session{
		engine:  engine,
		palette: snake.DefaultPalette(),
		logger:  log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.reset()
	return s
}

// reset reinitializes the game. Caller holds mu (or is the constructor).
func (s *Session) reset() {
	st := s.engine.NewState()
	st.Food = s.engine.SpawnFood(st.Snake)
	s.state = st
	s.startedAt = st.LastMove
}

// Move applies one move. A finished game is restarted first, heading in
// the requested direction with new food, and the move is applied to it.
func (s *Session) Move(ctx context.Context, dir core.Direction) (snake.Snapshot, error) {
	if !dir.Valid() {
		return snake.Snapshot{}, ErrInvalidDirection
	}

	s.mu.Lock()
	if s.state.GameOver {
		s.reset()
		s.state.Direction = dir
	}
	s.state = s.engine.Advance(s.state, dir)
	snap := s.state.Snapshot()

	var finished *GameResult
	if s.state.GameOver {
		finished = &GameResult{
			Score:     s.state.Score,
			Length:    len(s.state.Snake),
			Direction: s.state.Direction.String(),
			StartedAt: s.startedAt,
			EndedAt:   time.Now(),
		}
	}
	s.mu.Unlock()

	if finished != nil {
		s.record(ctx, *finished)
	}
	return snap, nil
}

// Reset unconditionally starts a new game.
func (s *Session) Reset() snake.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reset()
	return s.state.Snapshot()
}

// Status returns the current summary.
func (s *Session) Status() snake.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.Snapshot()
}

// State returns a deep copy of the current state.
func (s *Session) State() snake.State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.Clone()
}

// Render returns the current board as SVG.
func (s *Session) Render() []byte {
	st := s.State()
	return snake.Render(st, s.palette)
}

func (s *Session) record(ctx context.Context, result GameResult) {
	s.logger.Info("game over", "score", result.Score, "length", result.Length)
	if s.recorder == nil {
		return
	}
	if err := s.recorder.RecordGame(ctx, result); err != nil {
		s.logger.Error("could not record game", "error", err)
	}
}
