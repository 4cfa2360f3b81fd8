// Package service wires the answer store, business catalog and matching
// engines behind the operations exposed by the HTTP API and CLI.
package service

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/okian/bizmatch/internal/adapters/repository"
	"github.com/okian/bizmatch/internal/domain/catalog"
	"github.com/okian/bizmatch/internal/domain/model"
	"github.com/okian/bizmatch/internal/domain/profile"
	"github.com/okian/bizmatch/internal/domain/questions"
	"github.com/okian/bizmatch/internal/domain/ranking"
	"github.com/okian/bizmatch/internal/domain/scoring"
	"github.com/okian/bizmatch/internal/domain/types"
	"github.com/okian/bizmatch/pkg/logger"
	"github.com/okian/bizmatch/pkg/metrics"
)

// Service implements the API dependencies for the matching system.
type Service struct {
	store   repository.Store
	catalog *catalog.Catalog
	scorer  *scoring.WeightedScorer
	ranker  *ranking.Ranker

	limit    int
	maxLimit int
	newID    func() string

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithStore sets the answer store. Defaults to an in-memory store.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithCatalog sets the business catalog. Defaults to the built-in catalog.
func WithCatalog(c *catalog.Catalog) Option {
	return func(s *Service) {
		if c != nil {
			s.catalog = c
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRecommendationLimit sets how many recommendations are returned when
// the caller does not ask for a count.
func WithRecommendationLimit(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.limit = n
		}
	}
}

// WithMaxRecommendationLimit caps the count a caller may ask for.
func WithMaxRecommendationLimit(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxLimit = n
		}
	}
}

// WithIDGenerator overrides session id generation.
func WithIDGenerator(fn func() string) Option {
	return func(s *Service) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		limit:    ranking.DefaultLimit,
		maxLimit: 10,
		newID:    uuid.NewString,
		logger:   logger.NewNop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.store == nil {
		s.store = repository.NewMemoryStore(context.Background())
	}
	if s.catalog == nil {
		s.catalog = catalog.Default()
	}
	if s.maxLimit < s.limit {
		s.maxLimit = s.limit
	}
	s.scorer = scoring.NewWeightedScorer()
	s.ranker = ranking.NewRanker(
		ranking.WithScorer(s.scorer),
		ranking.WithLimit(s.limit),
	)
	s.logger = s.logger.Named("service")

	metrics.UpdateCatalogModels(s.catalog.Len())
	return s
}

// Close releases the answer store.
func (s *Service) Close() error {
	return s.store.Close()
}

// Questions returns the full questionnaire.
func (s *Service) Questions() []model.Question {
	return questions.All()
}

// Models returns the catalog listing narrowed by category and difficulty.
// An empty filter lists every model; an unknown difficulty is an error.
func (s *Service) Models(category, difficulty string) ([]types.ModelSummary, error) {
	filter := types.ModelFilter{Category: strings.TrimSpace(category)}
	if difficulty != "" {
		d, ok := model.ParseDifficulty(difficulty)
		if !ok {
			return nil, fmt.Errorf("%w: unknown difficulty %q", ErrInvalidFilter, difficulty)
		}
		filter.Difficulty = d
	}

	models := s.catalog.Models()
	out := make([]types.ModelSummary, 0, len(models))
	for _, m := range models {
		if filter.Matches(m) {
			out = append(out, types.Summarize(m))
		}
	}
	return out, nil
}

// Model returns one model's page with its parsed description.
func (s *Service) Model(_ context.Context, modelID string) (types.ModelPage, error) {
	m, ok := s.catalog.Get(modelID)
	if !ok {
		return types.ModelPage{}, fmt.Errorf("%w: %s", ErrModelNotFound, modelID)
	}
	return types.NewModelPage(m, catalog.Sections(m.DetailedDescription)), nil
}

// CreateSession starts an empty questionnaire session.
func (s *Service) CreateSession(ctx context.Context) (types.SessionCreated, error) {
	id := s.newID()
	if err := s.store.Save(ctx, id, nil); err != nil {
		return types.SessionCreated{}, fmt.Errorf("create session: %w", err)
	}
	metrics.RecordSessionCreated()
	s.logger.Info(ctx, "session created", logger.String("session", id))
	return types.SessionCreated{SessionID: id}, nil
}

// SaveAnswers replaces the session's answers after validating them. A
// question answered twice keeps only its last answer.
func (s *Service) SaveAnswers(ctx context.Context, sessionID string, answers []model.Answer) error {
	if err := s.validate(ctx, sessionID, answers); err != nil {
		return err
	}
	if _, err := s.Answers(ctx, sessionID); err != nil {
		return err
	}
	answers = model.Merge(nil, answers...)
	if err := s.store.Save(ctx, sessionID, answers); err != nil {
		return fmt.Errorf("save answers: %w", err)
	}
	metrics.RecordAnswersSaved("replace", len(answers))
	s.logger.Debug(ctx, "answers replaced",
		logger.String("session", sessionID),
		logger.Int("count", len(answers)),
	)
	return nil
}

// AppendAnswers merges answers into the session, replacing earlier answers
// to the same questions.
func (s *Service) AppendAnswers(ctx context.Context, sessionID string, answers ...model.Answer) error {
	if err := s.validate(ctx, sessionID, answers); err != nil {
		return err
	}
	if err := s.store.Append(ctx, sessionID, answers...); err != nil {
		return s.storeErr("append answers", err)
	}
	metrics.RecordAnswersSaved("append", len(answers))
	s.logger.Debug(ctx, "answers appended",
		logger.String("session", sessionID),
		logger.Int("count", len(answers)),
	)
	return nil
}

// Answers returns the session's stored answers in submission order.
func (s *Service) Answers(ctx context.Context, sessionID string) ([]model.Answer, error) {
	answers, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, s.storeErr("load answers", err)
	}
	return answers, nil
}

// DeleteSession drops the session and its answers.
func (s *Service) DeleteSession(ctx context.Context, sessionID string) error {
	if err := s.store.Delete(ctx, sessionID); err != nil {
		return s.storeErr("delete session", err)
	}
	metrics.RecordSessionDeleted()
	s.logger.Info(ctx, "session deleted", logger.String("session", sessionID))
	return nil
}

// Recommendations ranks the catalog against a session's answers. A zero
// limit uses the configured default.
func (s *Service) Recommendations(ctx context.Context, sessionID string, limit int) (types.Report, error) {
	n, err := s.resolveLimit(limit)
	if err != nil {
		return types.Report{}, err
	}
	answers, err := s.Answers(ctx, sessionID)
	if err != nil {
		return types.Report{}, err
	}
	return s.report(ctx, sessionID, answers, n), nil
}

// Recommend ranks the catalog against answers that are not stored, as the
// CLI does. Answers are validated first.
func (s *Service) Recommend(ctx context.Context, answers []model.Answer, limit int) (types.Report, error) {
	n, err := s.resolveLimit(limit)
	if err != nil {
		return types.Report{}, err
	}
	if err := s.validate(ctx, "", answers); err != nil {
		return types.Report{}, err
	}
	return s.report(ctx, "", answers, n), nil
}

// Detail scores one model against a session's answers.
func (s *Service) Detail(ctx context.Context, sessionID, modelID string) (types.ModelDetail, error) {
	m, ok := s.catalog.Get(modelID)
	if !ok {
		return types.ModelDetail{}, fmt.Errorf("%w: %s", ErrModelNotFound, modelID)
	}
	answers, err := s.Answers(ctx, sessionID)
	if err != nil {
		return types.ModelDetail{}, err
	}
	return s.detail(ctx, answers, m), nil
}

// DetailFor scores one model against answers that are not stored.
func (s *Service) DetailFor(ctx context.Context, answers []model.Answer, modelID string) (types.ModelDetail, error) {
	m, ok := s.catalog.Get(modelID)
	if !ok {
		return types.ModelDetail{}, fmt.Errorf("%w: %s", ErrModelNotFound, modelID)
	}
	if err := s.validate(ctx, "", answers); err != nil {
		return types.ModelDetail{}, err
	}
	return s.detail(ctx, answers, m), nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	goroutines := runtime.NumGoroutine()

	metrics.UpdateSystemMemoryUsage(mem.HeapInuse)
	metrics.UpdateSystemGoroutineCount(goroutines)

	stats := map[string]interface{}{
		"questions":              questions.Count(),
		"catalogModels":          s.catalog.Len(),
		"recommendationLimit":    s.limit,
		"maxRecommendationLimit": s.maxLimit,
		"goroutines":             goroutines,
		"heapInUseBytes":         mem.HeapInuse,
	}
	if counter, ok := s.store.(interface{ Len() int }); ok {
		stats["sessions"] = counter.Len()
	}
	return stats
}

// PurgeExpired drops expired sessions from stores that do not expire keys
// on their own. Other stores report zero.
func (s *Service) PurgeExpired(ctx context.Context) (int64, error) {
	purger, ok := s.store.(interface {
		Purge(ctx context.Context) (int64, error)
	})
	if !ok {
		return 0, nil
	}
	n, err := purger.Purge(ctx)
	if err != nil {
		return 0, fmt.Errorf("purge sessions: %w", err)
	}
	if n > 0 {
		s.logger.Info(ctx, "expired sessions purged", logger.Int("count", int(n)))
	}
	return n, nil
}

func (s *Service) report(ctx context.Context, sessionID string, answers []model.Answer, n int) types.Report {
	set := model.NewAnswerSet(answers)
	models := s.catalog.Models()

	start := time.Now()
	results := s.ranker.RankN(set, models, n)
	s.observe("rank", start, len(models))

	for _, r := range results {
		metrics.RecordMatchScore(r.Score)
	}
	metrics.RecordRecommendationsServed(len(results))

	s.logger.Debug(ctx, "recommendations ranked",
		logger.String("session", sessionID),
		logger.Int("answered", set.Len()),
		logger.Int("returned", len(results)),
	)
	return types.NewReport(sessionID, profile.Summarize(set), results)
}

func (s *Service) detail(ctx context.Context, answers []model.Answer, m model.BusinessModel) types.ModelDetail {
	set := model.NewAnswerSet(answers)

	start := time.Now()
	result := s.ranker.Detail(set, m)
	s.observe("detail", start, 1)
	metrics.RecordMatchScore(result.Score)

	s.logger.Debug(ctx, "model scored",
		logger.String("model", m.ID),
		logger.Int("score", result.Score),
	)
	return types.ModelDetail{
		MatchResult: result,
		Sections:    catalog.Sections(m.DetailedDescription),
		Breakdown:   s.scorer.Breakdown(set, m),
	}
}

func (s *Service) observe(kind string, start time.Time, scored int) {
	metrics.RecordScoringPass(kind)
	metrics.RecordScoringLatency(float64(time.Since(start).Microseconds()) / 1000)
	metrics.RecordModelsScored(scored)
}

func (s *Service) resolveLimit(limit int) (int, error) {
	switch {
	case limit == 0:
		return s.limit, nil
	case limit < 0 || limit > s.maxLimit:
		return 0, fmt.Errorf("%w: must be between 1 and %d", ErrInvalidLimit, s.maxLimit)
	default:
		return limit, nil
	}
}

func (s *Service) validate(ctx context.Context, sessionID string, answers []model.Answer) error {
	if err := questions.Validate(answers); err != nil {
		metrics.RecordValidationFailure()
		s.logger.Debug(ctx, "answers rejected",
			logger.String("session", sessionID),
			logger.Error(err),
		)
		return fmt.Errorf("%w: %w", ErrInvalidAnswers, err)
	}
	return nil
}

func (s *Service) storeErr(op string, err error) error {
	if errors.Is(err, repository.ErrNotFound) || errors.Is(err, repository.ErrInvalidSession) {
		return fmt.Errorf("%s: %w", op, ErrSessionNotFound)
	}
	return fmt.Errorf("%s: %w", op, err)
}
