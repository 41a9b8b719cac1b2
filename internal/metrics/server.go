package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// Server exposes the registry over HTTP
type Server struct {
	server   *http.Server
	port     int
	endpoint string
}

// NewServer creates a metrics server for the given collectors
func NewServer(m *Metrics, port int, endpoint string) *Server {
	mux := http.NewServeMux()
	mux.Handle(endpoint, promhttp.HandlerFor(m.Registry(), promhttp.HandlerOpts{}))

	return &Server{
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
		port:     port,
		endpoint: endpoint,
	}
}

// Start serves in the background
func (s *Server) Start() {
	go func() {
		logrus.Infof("metrics server listening on :%d%s", s.port, s.endpoint)
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Error("metrics server stopped")
		}
	}()
}

// Shutdown stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
