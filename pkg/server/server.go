// Package server assembles the HTTP server: routes, middleware chain,
// upload limits and graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"

	"prados-hq/legalhub/pkg/api"
	"prados-hq/legalhub/pkg/api/middleware"
	"prados-hq/legalhub/pkg/config"
	"prados-hq/legalhub/pkg/telemetry/metrics"
)

// Server is the Legal Hub HTTP server.
type Server struct {
	cfg       *config.Config
	handlers  *api.Handlers
	collector *metrics.Collector
	logger    *slog.Logger

	httpServer *http.Server
	running    atomic.Bool
}

// New assembles a server from its wired dependencies. The collector may be
// nil; the metrics endpoint is then not mounted.
func New(cfg *config.Config, handlers *api.Handlers, collector *metrics.Collector) *Server {
	s := &Server{
		cfg:       cfg,
		handlers:  handlers,
		collector: collector,
		logger:    slog.Default().With("component", "server"),
	}

	mux := handlers.Routes()
	if collector != nil && !cfg.Telemetry.Metrics.Disabled {
		mux.Handle("GET "+cfg.Telemetry.Metrics.Path, collector.Handler())
	}

	s.httpServer = &http.Server{
		Addr:           cfg.Server.ListenAddress,
		Handler:        s.buildChain(mux),
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	return s
}

// buildChain wraps the mux with the middleware chain, outermost first:
// Recovery -> Logging -> RequestID -> CORS -> Timeout -> upload limit -> mux.
func (s *Server) buildChain(mux http.Handler) http.Handler {
	handler := s.limitUploads(mux)
	handler = middleware.Timeout(s.cfg.Server.RequestTimeout)(handler)

	if !s.cfg.CORS.Disabled {
		handler = middleware.CORS(middleware.CORSConfig{
			Origins:        s.cfg.CORS.AllowedOrigins,
			AllowedMethods: s.cfg.CORS.AllowedMethods,
			AllowedHeaders: s.cfg.CORS.AllowedHeaders,
			ExposedHeaders: s.cfg.CORS.ExposedHeaders,
			MaxAge:         s.cfg.CORS.MaxAge,
		})(handler)
	}

	handler = middleware.RequestID(handler)
	handler = middleware.Logging(s.logger, s.collector)(handler)
	handler = middleware.Recovery(s.logger)(handler)
	return handler
}

// limitUploads caps request body size so oversized audio uploads fail
// instead of exhausting memory.
func (s *Server) limitUploads(next http.Handler) http.Handler {
	maxBytes := s.cfg.Server.MaxUploadBytes
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
		}
		next.ServeHTTP(w, r)
	})
}

// Start serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	s.running.Store(true)
	defer s.running.Store(false)

	errCh := make(chan error, 1)

	go func() {
		s.logger.Info("server listening", "address", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		s.logger.Info("shutting down", "timeout", s.cfg.Server.ShutdownTimeout)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}
}

// IsRunning reports whether Start is serving.
func (s *Server) IsRunning() bool {
	return s.running.Load()
}

// Handler exposes the full middleware-wrapped handler, used by tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}
