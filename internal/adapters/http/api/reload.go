package api

import (
	"context"
	"net/http"

	"github.com/okian/contestdash/pkg/logger"
)

// ReloadDependencies defines the reload operation.
type ReloadDependencies interface {
	Reload(ctx context.Context) error
	StatsProvider
}

// ReloadHandler handles workbook reloads.
type ReloadHandler struct {
	deps ReloadDependencies
}

// NewReloadHandler creates a new reload handler.
func NewReloadHandler(deps ReloadDependencies) *ReloadHandler {
	return &ReloadHandler{deps: deps}
}

// HandleReload handles POST /reload. The previous dataset stays live when
// the reload fails.
func (h *ReloadHandler) HandleReload(w http.ResponseWriter, r *http.Request) {
	const op = "api.reload"
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", NewKind(op, ErrMethodNotAllowed))
		return
	}
	if err := h.deps.Reload(r.Context()); err != nil {
		writeServiceError(w, Wrap(op, err))
		return
	}
	logger.Get().Info(r.Context(), "workbook reloaded", logger.String("request_id", RequestID(r.Context())))
	writeJSON(w, http.StatusOK, reloadResponse{Status: "reloaded", Stats: h.deps.GetStats()})
}
