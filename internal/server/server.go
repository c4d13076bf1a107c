// Package server exposes the word cloud pipeline over HTTP.
//
// Routes:
//
//	GET    /healthz                          build info
//	POST   /v1/layout                        count and lay out, returns layout JSON
//	POST   /v1/render/{format}               full pipeline, returns one artifact
//	POST   /v1/clouds                        lay out and save a cloud
//	GET    /v1/clouds                        list saved clouds (?limit=)
//	GET    /v1/clouds/{id}                   fetch a saved cloud
//	GET    /v1/clouds/{id}/render/{format}   render a saved cloud
//	DELETE /v1/clouds/{id}                   delete a saved cloud
//
// Request bodies for the POST routes are [pipeline.Options] documents.
// Failures are answered with {"code": ..., "message": ...}.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/wordstorm/pkg/config"
	"github.com/matzehuels/wordstorm/pkg/pipeline"
	"github.com/matzehuels/wordstorm/pkg/store"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 4 << 20

// Server serves the HTTP API.
type Server struct {
	runner *pipeline.Runner
	store  store.Store
	logger *log.Logger
	cfg    config.Server
	router chi.Router
}

// New creates a server. The runner and store are shared by all requests and
// are not closed by the server.
func New(runner *pipeline.Runner, st store.Store, logger *log.Logger, cfg config.Server) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		runner: runner,
		store:  st,
		logger: logger,
		cfg:    cfg,
	}
	s.router = s.routes()
	return s
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/layout", s.handleLayout)
		r.Post("/render/{format}", s.handleRender)

		r.Route("/clouds", func(r chi.Router) {
			r.Post("/", s.handleCreateCloud)
			r.Get("/", s.handleListClouds)
			r.Get("/{id}", s.handleGetCloud)
			r.Get("/{id}/render/{format}", s.handleRenderCloud)
			r.Delete("/{id}", s.handleDeleteCloud)
		})
	})

	return r
}

// ListenAndServe listens on the configured address and serves until ctx is
// cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully, waiting up to the configured shutdown timeout for in-flight
// requests.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s.router,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()
	s.logger.Info("listening", "addr", ln.Addr().String())

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	timeout := s.cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = config.DefaultShutdownTimeout
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	s.logger.Info("shutting down", "timeout", timeout)
	start := time.Now()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.logger.Debug("server stopped", "duration", time.Since(start))
	return nil
}
