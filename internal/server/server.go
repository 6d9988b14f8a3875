// Package server exposes the extraction pipeline and index calculator over
// HTTP.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/medparse/bloodlab/internal/common"
	"github.com/medparse/bloodlab/internal/export"
	"github.com/medparse/bloodlab/internal/metrics"
)

// Server is the HTTP boundary of the service.
type Server struct {
	processor Processor
	exporter  *export.Service
	logger    *slog.Logger
	srv       *http.Server
}

// New builds the server with its middleware chain and routes.
func New(cfg common.ServerConfig, processor Processor, exporter *export.Service, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		processor: processor,
		exporter:  exporter,
		logger:    logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(slogMiddleware)
	r.Use(metrics.Metrics)
	if cfg.RateLimitRPS > 0 {
		rl := newRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
		r.Use(rl.middleware)
	}
	if cfg.MaxUploadBytes > 0 {
		r.Use(maxBytesMiddleware(cfg.MaxUploadBytes))
	}

	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())
	r.Route("/v1", func(r chi.Router) {
		r.Post("/blood-tests", s.handleBloodTests)
		r.Post("/blood-tests/export", s.handleBloodTestsExport)
		r.Post("/sii", s.handleSII)
		r.Get("/cancer-types", s.handleCancerTypes)
	})

	s.srv = &http.Server{
		Addr:         cfg.Addr,
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return s
}

// Handler exposes the router, used by tests.
func (s *Server) Handler() http.Handler { return s.srv.Handler }

// Start blocks serving HTTP until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("http server listening", "addr", s.srv.Addr)
	err := s.srv.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("http server shutting down")
	return s.srv.Shutdown(ctx)
}

func unmarshalStrict(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
