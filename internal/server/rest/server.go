// Package rest exposes the hygiene tracker services over HTTP/JSON.
package rest

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/Svmi93/projetHygieneResto-sub000/internal/logging"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
)

type Server struct {
	address         string
	logger          logging.Logger
	services        Services
	responder       responder
	registry        *prometheus.Registry
	metrics         *Metrics
	router          *mux.Router
	shutdownTimeout time.Duration
}

func NewServer(address string, l logging.Logger, svcs Services, shutdownTimeout time.Duration) *Server {
	logger := l.With("module", "rest_server")
	registry := prometheus.NewRegistry()

	s := &Server{
		address:         address,
		logger:          logger,
		services:        svcs,
		responder:       responder{logger: logger},
		registry:        registry,
		metrics:         NewMetrics(registry),
		shutdownTimeout: shutdownTimeout,
	}
	s.router = s.routes()
	return s
}

// Handler returns the fully wired router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then drains in-flight requests for at
// most shutdownTimeout.
func (s *Server) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.serve(ctx, listen)
}

func (s *Server) serve(ctx context.Context, listen net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Cancelled once Serve returns so the shutdown goroutine also exits when Serve fails.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "graceful shutdown failed", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	err := srv.Serve(listen)
	cancel()
	<-stopped
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
