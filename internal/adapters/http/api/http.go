// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	service "github.com/okian/contestdash/internal/app"
	"github.com/okian/contestdash/internal/domain/model"
	"github.com/okian/contestdash/internal/domain/scoring"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to the service implementation.
type Dependencies interface {
	UserDependencies
	TableDependencies
	ReloadDependencies
}

// Server wires HTTP routes for the dashboard API.
type Server struct {
	healthHandler *HealthHandler
	statsHandler  *StatsHandler
	usersHandler  *UsersHandler
	tablesHandler *TablesHandler
	reloadHandler *ReloadHandler
}

// NewServer creates a new API server with all handlers. maxLimit bounds the
// limit accepted by /latest.
func NewServer(deps Dependencies, maxLimit int) *Server {
	return &Server{
		healthHandler: NewHealthHandler(),
		statsHandler:  NewStatsHandler(deps),
		usersHandler:  NewUsersHandler(deps),
		tablesHandler: NewTablesHandler(deps, maxLimit),
		reloadHandler: NewReloadHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.Handle("/healthz", chain(s.healthHandler.HandleHealth, "healthz"))
	mux.Handle("/stats", chain(s.statsHandler.HandleStats, "stats"))
	mux.Handle("/users/", chain(s.usersHandler.HandleUser, "users"))
	mux.Handle("/latest", chain(s.tablesHandler.HandleLatest, "latest"))
	mux.Handle("/high-ratings", chain(s.tablesHandler.HandleHighRatings, "high_ratings"))
	mux.Handle("/reload", chain(s.reloadHandler.HandleReload, "reload"))
}

func chain(h http.HandlerFunc, endpoint string) http.Handler {
	return RequestIDMiddleware(MetricsMiddleware(h, endpoint))
}

// Response shapes re-exported for clients of this package.
type (
	Report      = service.Report
	TrustReport = service.TrustReport
	Insights    = model.Insights
	LatestEntry = model.LatestEntry
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type reloadResponse struct {
	Status string         `json:"status"`
	Stats  map[string]any `json:"stats,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeServiceError maps service and domain errors to HTTP responses.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case service.IsNotFound(err):
		writeError(w, http.StatusNotFound, "not_found", err)
	case errors.Is(err, scoring.ErrInvalidCredentials):
		writeError(w, http.StatusUnprocessableEntity, "invalid_credentials", err)
	case errors.Is(err, ErrBadRequest), errors.Is(err, service.ErrEmptyQuery):
		writeError(w, http.StatusBadRequest, "bad_request", err)
	case errors.Is(err, ErrLimitExceeded):
		writeError(w, http.StatusBadRequest, "limit_exceeded", err)
	case errors.Is(err, service.ErrNotStarted):
		writeError(w, http.StatusServiceUnavailable, "not_ready", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}
