package api

import (
	"context"
	"net/http"

	"github.com/okian/bizmatch/internal/domain/model"
	"github.com/okian/bizmatch/internal/domain/types"
)

// CatalogDependencies defines the read-only catalog views.
type CatalogDependencies interface {
	Questions() []model.Question
	Models(category, difficulty string) ([]types.ModelSummary, error)
	Model(ctx context.Context, modelID string) (types.ModelPage, error)
}

// CatalogHandler serves the questionnaire and the business model catalog.
type CatalogHandler struct {
	deps CatalogDependencies
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(deps CatalogDependencies) *CatalogHandler {
	return &CatalogHandler{deps: deps}
}

// HandleQuestions handles GET /questions.
func (h *CatalogHandler) HandleQuestions(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.deps.Questions())
}

// HandleModels handles GET /models?category=&difficulty=.
func (h *CatalogHandler) HandleModels(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	models, err := h.deps.Models(q.Get("category"), q.Get("difficulty"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, models)
}

// HandleModel handles GET /models/{id}.
func (h *CatalogHandler) HandleModel(w http.ResponseWriter, r *http.Request) {
	page, err := h.deps.Model(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}
