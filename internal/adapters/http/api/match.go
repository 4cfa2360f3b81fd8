package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/okian/bizmatch/internal/domain/types"
)

// MatchDependencies defines the scoring operations.
type MatchDependencies interface {
	Recommendations(ctx context.Context, sessionID string, limit int) (types.Report, error)
	Detail(ctx context.Context, sessionID, modelID string) (types.ModelDetail, error)
}

// MatchHandler serves ranked recommendations and single-model detail.
type MatchHandler struct {
	deps MatchDependencies
}

// NewMatchHandler creates a new match handler.
func NewMatchHandler(deps MatchDependencies) *MatchHandler {
	return &MatchHandler{deps: deps}
}

// HandleRecommendations handles GET /sessions/{id}/recommendations?limit=N.
// Without limit the service default applies.
func (h *MatchHandler) HandleRecommendations(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeServiceError(w, ErrInvalidLimit)
			return
		}
		limit = n
	}
	report, err := h.deps.Recommendations(r.Context(), r.PathValue("id"), limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// HandleDetail handles GET /sessions/{id}/models/{modelID}.
func (h *MatchHandler) HandleDetail(w http.ResponseWriter, r *http.Request) {
	detail, err := h.deps.Detail(r.Context(), r.PathValue("id"), r.PathValue("modelID"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}
