package api

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/okian/bizmatch/internal/domain/model"
	"github.com/okian/bizmatch/internal/domain/types"
)

// maxBodyBytes bounds answer submissions; the full questionnaire is far smaller.
const maxBodyBytes = 64 << 10

// SessionDependencies defines the session lifecycle operations.
type SessionDependencies interface {
	CreateSession(ctx context.Context) (types.SessionCreated, error)
	SaveAnswers(ctx context.Context, sessionID string, answers []model.Answer) error
	AppendAnswers(ctx context.Context, sessionID string, answers ...model.Answer) error
	Answers(ctx context.Context, sessionID string) ([]model.Answer, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

// SessionsHandler handles session and answer requests.
type SessionsHandler struct {
	deps SessionDependencies
}

// NewSessionsHandler creates a new sessions handler.
func NewSessionsHandler(deps SessionDependencies) *SessionsHandler {
	return &SessionsHandler{deps: deps}
}

// HandleCreate handles POST /sessions.
func (h *SessionsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	created, err := h.deps.CreateSession(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	w.Header().Set("Location", "/sessions/"+created.SessionID)
	writeJSON(w, http.StatusCreated, created)
}

// HandleDelete handles DELETE /sessions/{id}.
func (h *SessionsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.deps.DeleteSession(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleGetAnswers handles GET /sessions/{id}/answers.
func (h *SessionsHandler) HandleGetAnswers(w http.ResponseWriter, r *http.Request) {
	answers, err := h.deps.Answers(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, answersRequest{Answers: answers})
}

// HandleReplaceAnswers handles PUT /sessions/{id}/answers.
func (h *SessionsHandler) HandleReplaceAnswers(w http.ResponseWriter, r *http.Request) {
	answers, ok := readAnswers(w, r)
	if !ok {
		return
	}
	if err := h.deps.SaveAnswers(r.Context(), r.PathValue("id"), answers); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleAppendAnswers handles POST /sessions/{id}/answers.
func (h *SessionsHandler) HandleAppendAnswers(w http.ResponseWriter, r *http.Request) {
	answers, ok := readAnswers(w, r)
	if !ok {
		return
	}
	if err := h.deps.AppendAnswers(r.Context(), r.PathValue("id"), answers...); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func readAnswers(w http.ResponseWriter, r *http.Request) ([]model.Answer, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeServiceError(w, fmt.Errorf("%w: %w", ErrBadRequest, err))
		return nil, false
	}
	answers, err := decodeAnswers(body)
	if err != nil {
		writeServiceError(w, err)
		return nil, false
	}
	return answers, true
}
