package api

import (
	"context"
	"net/http"
	"strconv"
)

// TableDependencies defines the college-wide table operations.
type TableDependencies interface {
	Latest(ctx context.Context, limit int) ([]LatestEntry, error)
	HighRatings(ctx context.Context, minRating float64) ([]LatestEntry, error)
	DefaultHighRatingMin() float64
}

// TablesHandler serves the latest-ratings and high-ratings tables.
type TablesHandler struct {
	deps     TableDependencies
	maxLimit int
}

// NewTablesHandler creates a new tables handler.
func NewTablesHandler(deps TableDependencies, maxLimit int) *TablesHandler {
	return &TablesHandler{
		deps:     deps,
		maxLimit: maxLimit,
	}
}

// HandleLatest handles GET /latest?limit=N. Without limit every user is
// returned; maxLimit only bounds an explicit limit.
func (h *TablesHandler) HandleLatest(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_latest"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	n := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		v, err := strconv.Atoi(limitStr)
		if err != nil || v < 1 {
			writeServiceError(w, NewKind(op, ErrBadRequest))
			return
		}
		if v > h.maxLimit {
			writeServiceError(w, NewKind(op, ErrLimitExceeded))
			return
		}
		n = v
	}

	entries, err := h.deps.Latest(r.Context(), n)
	if err != nil {
		writeServiceError(w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// HandleHighRatings handles GET /high-ratings?min=R.
func (h *TablesHandler) HandleHighRatings(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_high_ratings"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	minRating := h.deps.DefaultHighRatingMin()
	if minStr := r.URL.Query().Get("min"); minStr != "" {
		v, err := strconv.ParseFloat(minStr, 64)
		if err != nil {
			writeServiceError(w, WrapKind(op, ErrBadRequest, err))
			return
		}
		minRating = v
	}

	entries, err := h.deps.HighRatings(r.Context(), minRating)
	if err != nil {
		writeServiceError(w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, entries)
}
