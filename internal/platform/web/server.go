// Package web exposes the snake session over HTTP.
package web

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/svg-snake/internal/session"
	"github.com/vovakirdan/svg-snake/internal/storage"
)

// History lists finished games. *storage.Store satisfies it.
type History interface {
	TopGames(ctx context.Context, limit int) ([]storage.GameRecord, error)
	GetStats(ctx context.Context) (*storage.Stats, error)
}

// ServerConfig holds configuration for the HTTP server.
type ServerConfig struct {
	// Address is the host:port to listen on (e.g., ":5000").
	Address string

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration

	// ScoresLimit is the number of games /scores returns.
	ScoresLimit int
}

// Server serves one session.
type Server struct {
	config  ServerConfig
	session *session.Session
	history History
	logger  *log.Logger
	server  *http.Server
}

// NewServer creates a server. history may be nil to disable /scores.
func NewServer(cfg ServerConfig, sess *session.Session, history History, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	if cfg.ScoresLimit <= 0 {
		cfg.ScoresLimit = 10
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}

	s := &Server{
		config:  cfg,
		session: sess,
		history: history,
		logger:  logger,
	}
	s.server = &http.Server{
		Addr:              cfg.Address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Handler returns the routed handler wrapped in request logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	s.RegisterRoutes(mux)
	return s.loggingMiddleware(mux)
}

// RegisterRoutes sets up all routes on the given mux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /game.svg", s.handleGameSVG)
	mux.HandleFunc("GET /move/{direction}", s.handleMove)
	mux.HandleFunc("GET /status", s.handleStatus)
	mux.HandleFunc("GET /reset", s.handleReset)
	mux.HandleFunc("GET /scores", s.handleScores)
	mux.HandleFunc("GET /healthz", s.handleHealth)
}

// ListenAndServe starts the server and blocks until SIGINT/SIGTERM or ctx is done.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Address)
	if err != nil {
		return fmt.Errorf("cannot listen on %s: %w", s.config.Address, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until shutdown.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.logger.Info("starting HTTP server", "address", ln.Addr().String())

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		if err != nil {
			s.logger.Error("server error", "error", err)
			return err
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()

	return s.server.Shutdown(ctx)
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.config.Address
}

// statusRecorder captures the response status for logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// loggingMiddleware logs each request.
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
			"remote", r.RemoteAddr,
		)
	})
}
