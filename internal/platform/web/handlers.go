package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/vovakirdan/svg-snake/internal/core"
	"github.com/vovakirdan/svg-snake/internal/games/snake"
	"github.com/vovakirdan/svg-snake/internal/session"
	"github.com/vovakirdan/svg-snake/internal/storage"
)

type errorResponse struct {
	Error string `json:"error"`
}

type moveResponse struct {
	Success   bool   `json:"success"`
	Direction string `json:"direction"`
	Score     int    `json:"score"`
	GameOver  bool   `json:"game_over"`
}

type statusResponse struct {
	Score       int            `json:"score"`
	Direction   core.Direction `json:"direction"`
	GameOver    bool           `json:"game_over"`
	LastMove    time.Time      `json:"last_move"`
	SnakeLength int            `json:"snake_length"`
}

type resetResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type scoresResponse struct {
	Stats  *storage.Stats       `json:"stats"`
	Scores []storage.GameRecord `json:"scores"`
}

func newStatusResponse(snap snake.Snapshot) statusResponse {
	return statusResponse{
		Score:       snap.Score,
		Direction:   snap.Direction,
		GameOver:    snap.GameOver,
		LastMove:    snap.LastMove,
		SnakeLength: snap.SnakeLen,
	}
}

func (s *Server) handleGameSVG(w http.ResponseWriter, r *http.Request) {
	noCache(w)
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(s.session.Render())
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	noCache(w)
	raw := r.PathValue("direction")

	dir, ok := core.ParseDirection(raw)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid direction"})
		return
	}

	snap, err := s.session.Move(r.Context(), dir)
	if errors.Is(err, session.ErrInvalidDirection) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid direction"})
		return
	}
	if err != nil {
		s.logger.Error("move failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}

	writeJSON(w, http.StatusOK, moveResponse{
		Success:   true,
		Direction: raw,
		Score:     snap.Score,
		GameOver:  snap.GameOver,
	})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	noCache(w)
	writeJSON(w, http.StatusOK, newStatusResponse(s.session.Status()))
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	noCache(w)

	target := r.URL.Query().Get("redirect")
	if target != "" && !safeRedirect(target) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid redirect"})
		return
	}

	s.session.Reset()
	s.logger.Info("game reset", "remote", r.RemoteAddr)

	if target != "" {
		http.Redirect(w, r, target, http.StatusFound)
		return
	}
	writeJSON(w, http.StatusOK, resetResponse{Success: true, Message: "Game reset"})
}

func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	noCache(w)
	if s.history == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "score history disabled"})
		return
	}

	limit := parseIntQuery(r, "limit", s.config.ScoresLimit)
	games, err := s.history.TopGames(r.Context(), limit)
	if err != nil {
		s.logger.Error("could not load scores", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "could not load scores"})
		return
	}
	stats, err := s.history.GetStats(r.Context())
	if err != nil {
		s.logger.Error("could not load stats", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "could not load scores"})
		return
	}
	if games == nil {
		games = []storage.GameRecord{}
	}

	writeJSON(w, http.StatusOK, scoresResponse{Stats: stats, Scores: games})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(indexHTML))
}

// safeRedirect accepts only same-site absolute paths such as "/game.svg".
func safeRedirect(target string) bool {
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, `/\`) {
		return false
	}
	u, err := url.Parse(target)
	if err != nil {
		return false
	}
	return u.Scheme == "" && u.Host == ""
}

func noCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.Header().Set("Pragma", "no-cache")
	w.Header().Set("Expires", "0")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func parseIntQuery(r *http.Request, key string, def int) int {
	v := strings.TrimSpace(r.URL.Query().Get(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

const indexHTML = `<h1>Snake Game API</h1>
<h2>Endpoints:</h2>
<ul>
    <li><code>GET /game.svg</code> - Game board SVG</li>
    <li><code>GET /move/&lt;direction&gt;</code> - Move snake (up/down/left/right)</li>
    <li><code>GET /status</code> - Game status JSON</li>
    <li><code>GET /reset</code> - Reset game</li>
    <li><code>GET /scores</code> - Finished games</li>
</ul>

<h2>Test the API:</h2>
<a href="/move/right">Move Right</a> |
<a href="/move/up">Move Up</a> |
<a href="/move/left">Move Left</a> |
<a href="/move/down">Move Down</a><br><br>
<a href="/game.svg">View Game Board</a> |
<a href="/status">Game Status</a> |
<a href="/reset">Reset Game</a>
`
