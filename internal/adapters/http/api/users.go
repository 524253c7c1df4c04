package api

import (
	"context"
	"net/http"
	"strings"
)

// UserDependencies defines the per-user read operations.
type UserDependencies interface {
	Report(ctx context.Context, query string) (Report, error)
	TrustScore(ctx context.Context, query string) (TrustReport, error)
	Insights(ctx context.Context, query string) (Insights, error)
}

// UsersHandler handles /users/{query} and its sub-resources.
type UsersHandler struct {
	deps UserDependencies
}

// NewUsersHandler creates a new users handler.
func NewUsersHandler(deps UserDependencies) *UsersHandler {
	return &UsersHandler{deps: deps}
}

// HandleUser handles GET /users/{query}, /users/{query}/trust and
// /users/{query}/insights. The query is a user id or an all-digit roll number.
func (h *UsersHandler) HandleUser(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_user"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	path := strings.Trim(strings.TrimPrefix(r.URL.Path, "/users/"), "/")
	query, sub, _ := strings.Cut(path, "/")
	if strings.TrimSpace(query) == "" || strings.Contains(sub, "/") {
		writeServiceError(w, NewKind(op, ErrBadRequest))
		return
	}

	var (
		body any
		err  error
	)
	switch sub {
	case "":
		body, err = h.deps.Report(r.Context(), query)
	case "trust":
		body, err = h.deps.TrustScore(r.Context(), query)
	case "insights":
		body, err = h.deps.Insights(r.Context(), query)
	default:
		http.NotFound(w, r)
		return
	}
	if err != nil {
		writeServiceError(w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, body)
}
