package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/pixelvide/mailto-go/pkg/cache"
	"github.com/pixelvide/mailto-go/pkg/compose"
	"github.com/pixelvide/mailto-go/pkg/config"
	"github.com/rs/zerolog"
)

// maxBodyBytes caps the size of a draft document.
const maxBodyBytes = 1 << 20

type Server struct {
	config     config.HTTPConfig
	composer   *compose.Composer
	links      *cache.LinkCache
	logger     zerolog.Logger
	router     chi.Router
	httpServer *http.Server
}

// New builds the HTTP API. links may be nil, in which case nothing is cached.
func New(cfg config.HTTPConfig, composer *compose.Composer, links *cache.LinkCache, logger zerolog.Logger) *Server {
	r := chi.NewRouter()

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	r.Use(requestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(timeout))

	s := &Server{
		config:   cfg,
		composer: composer,
		links:    links,
		logger:   logger,
		router:   r,
	}
	s.registerRoutes()
	s.httpServer = &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

// Handler returns the router, for mounting or testing.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run listens on the configured address until Close is called.
func (s *Server) Run() error {
	s.logger.Info().Str("addr", s.config.Addr).Msg("HTTP server listening")
	err := s.httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Close gracefully shuts the server down.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
