// Copyright (c) 2026 Coinage. All rights reserved.

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/forgeline/coinage/internal/core/standard"
	"github.com/forgeline/coinage/internal/core/tracker"
	"github.com/forgeline/coinage/internal/platform/config"
	"github.com/forgeline/coinage/internal/platform/constants"
	"github.com/forgeline/coinage/internal/platform/metrics"
	"github.com/forgeline/coinage/internal/platform/middleware"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
type Handlers struct {
	// Liveness is the /health handler. It always returns 200 if the process
	// is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler. It returns 200 when all deps are
	// healthy.
	Readiness http.HandlerFunc

	// Standard handles coins, duties, and KSBs across all API generations.
	Standard *standard.Handler

	// Tracker handles the in-memory duty tracking demo.
	Tracker *tracker.Handler

	// Metrics serves the Prometheus scrape endpoint.
	Metrics http.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
//
// The coin endpoints mount three times: the unversioned legacy surface at
// the root, the flat v1 documents under /v1, and the duty-nested v2
// documents under /v2. Duties and KSBs have a single unversioned surface.
func NewServer(ctx context.Context, cfg *config.Config, log *slog.Logger, limiter middleware.Limiter, collector *metrics.Metrics, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(collector.Instrument())
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(limiter, middleware.NewLocalLimiter(ctx), log))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Health probes and the metrics scrape target.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)
	r.Method(http.MethodGet, "/metrics", h.Metrics)

	// # Application API
	h.Standard.RegisterLegacyRoutes(r)

	r.Route("/v1", func(v1 chi.Router) {
		v1.Route("/coins", h.Standard.RegisterV1CoinRoutes)
		v1.Route("/tracker", h.Tracker.RegisterRoutes)
	})

	r.Route("/v2", func(v2 chi.Router) {
		v2.Route("/coins", h.Standard.RegisterV2CoinRoutes)
	})

	r.Route("/duties", h.Standard.RegisterDutyRoutes)
	r.Route("/ksbs", h.Standard.RegisterKSBRoutes)

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// Router exposes the underlying mux so tests can drive it with httptest.
func (s *Server) Router() http.Handler { return s.router }

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
