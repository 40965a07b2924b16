// Package server assembles the HTTP router and owns the listener.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/unclebandit/mvc-rest-api/internal/config"
	"github.com/unclebandit/mvc-rest-api/internal/controller"
	"github.com/unclebandit/mvc-rest-api/internal/handler"
	mw "github.com/unclebandit/mvc-rest-api/internal/middleware"
	"github.com/unclebandit/mvc-rest-api/internal/service"
)

// Deps are the collaborators the router is built from.
type Deps struct {
	Customers service.CustomerService
	Vendors   service.VendorService
	// Checks are pinged by /readyz.
	Checks map[string]handler.Pinger
}

type Server struct {
	router chi.Router
	logger zerolog.Logger
	cfg    config.ServerConfig
}

func NewServer(cfg config.ServerConfig, logger zerolog.Logger, deps Deps) *Server {
	s := &Server{
		router: chi.NewRouter(),
		logger: logger,
		cfg:    cfg,
	}

	s.setupMiddleware()
	s.setupRoutes(deps)

	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(mw.RequestLogger(s.logger))
	s.router.Use(middleware.Recoverer)
	s.router.Use(mw.Metrics)
}

func (s *Server) setupRoutes(deps Deps) {
	s.router.Handle("/metrics", promhttp.Handler())

	health := handler.NewHealthHandler(deps.Checks)
	s.router.Get("/healthz", health.Healthz)
	s.router.Get("/readyz", health.Readyz)

	routes := append(
		controller.NewCustomerController(deps.Customers).Routes(),
		controller.NewVendorController(deps.Vendors).Routes()...,
	)

	s.router.Group(func(r chi.Router) {
		r.Use(mw.RateLimit(s.cfg.RateLimit.RPS, s.cfg.RateLimit.Burst))
		for _, route := range routes {
			r.Method(route.Method, route.Pattern, route.Handler)
		}
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Run listens on the configured port until ctx is cancelled, then shuts down
// gracefully within the configured shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", ":"+s.cfg.Port)
	if err != nil {
		return fmt.Errorf("listen on port %s: %w", s.cfg.Port, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	httpServer := &http.Server{
		Handler:      s,
		ReadTimeout:  time.Duration(s.cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.cfg.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.cfg.IdleTimeout) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", ln.Addr().String()).Msg("starting API server")
		if err := httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(s.cfg.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}
