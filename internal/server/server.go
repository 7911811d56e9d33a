// Package server is the local preview HTTP server used by serve mode. It
// serves the generated output tree; it is a development convenience, not
// a production surface.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// Health is the /healthz payload.
type Health struct {
	Status      string `json:"status"`
	LastBuildID string `json:"last_build_id,omitempty"`
	LastOutcome string `json:"last_outcome,omitempty"`
	Pages       int    `json:"pages"`
}

// Server serves the output directory plus health and metrics endpoints.
type Server struct {
	srv *http.Server
}

// New creates the preview server. health supplies the current build
// status; metricsHandler may be nil when metrics are disabled.
func New(port int, outputDir string, health func() Health, metricsHandler http.Handler) *Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(health())
	})
	if metricsHandler != nil {
		mux.Handle("/metrics", metricsHandler)
	}
	mux.Handle("/", http.FileServer(http.Dir(outputDir)))

	return &Server{
		srv: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		slog.Info("Preview server listening", "addr", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return <-errCh
	case err := <-errCh:
		return err
	}
}
