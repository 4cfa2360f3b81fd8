// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/okian/bizmatch/internal/domain/model"
	"github.com/okian/bizmatch/internal/domain/questions"
	"github.com/okian/bizmatch/internal/domain/types"
	"github.com/okian/bizmatch/pkg/logger"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	StatsProvider

	CatalogDependencies

	CreateSession(ctx context.Context) (types.SessionCreated, error)
	SaveAnswers(ctx context.Context, sessionID string, answers []model.Answer) error
	AppendAnswers(ctx context.Context, sessionID string, answers ...model.Answer) error
	Answers(ctx context.Context, sessionID string) ([]model.Answer, error)
	DeleteSession(ctx context.Context, sessionID string) error

	Recommendations(ctx context.Context, sessionID string, limit int) (types.Report, error)
	Detail(ctx context.Context, sessionID, modelID string) (types.ModelDetail, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	log logger.Logger

	healthHandler   *HealthHandler
	statsHandler    *StatsHandler
	catalogHandler  *CatalogHandler
	sessionsHandler *SessionsHandler
	matchHandler    *MatchHandler
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithLogger sets the access logger. Requests are not logged by default.
func WithLogger(l logger.Logger) ServerOption {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, opts ...ServerOption) *Server {
	s := &Server{
		log:             logger.NewNop(),
		healthHandler:   NewHealthHandler(),
		statsHandler:    NewStatsHandler(deps),
		catalogHandler:  NewCatalogHandler(deps),
		sessionsHandler: NewSessionsHandler(deps),
		matchHandler:    NewMatchHandler(deps),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", s.instrument("healthz", s.healthHandler.HandleHealth))
	mux.HandleFunc("GET /stats", s.instrument("stats", s.statsHandler.HandleStats))

	mux.HandleFunc("GET /questions", s.instrument("questions", s.catalogHandler.HandleQuestions))
	mux.HandleFunc("GET /models", s.instrument("models", s.catalogHandler.HandleModels))
	mux.HandleFunc("GET /models/{id}", s.instrument("model", s.catalogHandler.HandleModel))

	mux.HandleFunc("POST /sessions", s.instrument("sessions", s.sessionsHandler.HandleCreate))
	mux.HandleFunc("DELETE /sessions/{id}", s.instrument("sessions", s.sessionsHandler.HandleDelete))
	mux.HandleFunc("GET /sessions/{id}/answers", s.instrument("answers", s.sessionsHandler.HandleGetAnswers))
	mux.HandleFunc("PUT /sessions/{id}/answers", s.instrument("answers", s.sessionsHandler.HandleReplaceAnswers))
	mux.HandleFunc("POST /sessions/{id}/answers", s.instrument("answers", s.sessionsHandler.HandleAppendAnswers))

	mux.HandleFunc("GET /sessions/{id}/recommendations", s.instrument("recommendations", s.matchHandler.HandleRecommendations))
	mux.HandleFunc("GET /sessions/{id}/models/{modelID}", s.instrument("model_detail", s.matchHandler.HandleDetail))
}

type errorResponse struct {
	Code    string                      `json:"code"`
	Message string                      `json:"message"`
	Details []questions.ValidationError `json:"details,omitempty"`
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
	resp := errorResponse{Code: code, Message: msg}
	var details questions.ValidationErrors
	if errors.As(err, &details) {
		resp.Details = details
	}
	writeJSON(w, status, resp)
}

// writeServiceError translates service sentinels to status codes.
func writeServiceError(w http.ResponseWriter, err error) {
	status, code := classify(err)
	writeError(w, status, code, err)
}
