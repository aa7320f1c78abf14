// Package api exposes the calculator over HTTP with JSON requests and
// responses, plus the health and metrics endpoints of the monitoring
// surface.
package api

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/6639835/vor-fix-calculator/internal/service"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type server struct {
	log  *slog.Logger
	calc *service.Calculator
}

// NewRouter wires the HTTP handlers with their dependencies and returns the
// root handler, wrapped with request logging and panic recovery middleware.
func NewRouter(log *slog.Logger, calc *service.Calculator, reg *prometheus.Registry) http.Handler {
	router := mux.NewRouter().StrictSlash(true)

	s := &server{log: log, calc: calc}

	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/waypoint", s.waypoint).Methods(http.MethodPost)
	api.HandleFunc("/fix", s.fix).Methods(http.MethodPost)
	api.HandleFunc("/search", s.search).Methods(http.MethodGet)

	router.HandleFunc("/healthz", s.healthz).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	return handlers.RecoveryHandler()(handlers.CombinedLoggingHandler(os.Stdout, router))
}

func (s *server) healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		s.log.Error("failed to write reply", "error", err)
	}
}
