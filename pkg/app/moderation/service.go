package moderation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Setharkk/Skyent-dev/pkg/config"
	"github.com/Setharkk/Skyent-dev/pkg/domain"
	"github.com/Setharkk/Skyent-dev/pkg/domain/moderation_result"
	"github.com/Setharkk/Skyent-dev/pkg/infra/cache"
	"github.com/Setharkk/Skyent-dev/pkg/infra/database/types"
	"github.com/Setharkk/Skyent-dev/pkg/moderation"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const defaultBatchConcurrency = 4

//go:generate mockery --name=Service --dir=. --output=./mocks --filename=moderation_service_mock.go --case=underscore --with-expecter
type Service interface {
	Moderate(ctx context.Context, req *Request) (*Result, error)
	// ModerateBatch moderates each content independently; a failed item is
	// reported as a flagged "error-<type>" result instead of failing the batch.
	ModerateBatch(ctx context.Context, contents []string, req Request) []*Result
	Get(ctx context.Context, id uuid.UUID) (*Result, error)
	Providers() map[string]bool
}

type service struct {
	logger     *logrus.Logger
	aggregator *moderation.Aggregator
	repo       moderation_result.Repository
	cache      cache.Client
	cacheTTL   time.Duration
	batchLimit int
}

func NewService(
	logger *logrus.Logger,
	aggregator *moderation.Aggregator,
	repo moderation_result.Repository,
	cacheClient cache.Client,
	cfg config.ModerationConfig,
) Service {
	limit := cfg.BatchConcurrency
	if limit <= 0 {
		limit = defaultBatchConcurrency
	}
	return &service{
		logger:     logger,
		aggregator: aggregator,
		repo:       repo,
		cache:      cacheClient,
		cacheTTL:   time.Duration(cfg.CacheTTLSeconds) * time.Second,
		batchLimit: limit,
	}
}

func (s *service) Providers() map[string]bool {
	return s.aggregator.Providers()
}

func (s *service) Moderate(ctx context.Context, req *Request) (*Result, error) {
	if req == nil {
		return nil, moderation.ErrNothingToModerate
	}
	texts := nonBlank(req.Content)
	if len(texts) == 0 {
		return nil, moderation.ErrNothingToModerate
	}
	if req.ContentType == "" {
		req.ContentType = ContentText
	}
	if req.ModerationType == "" {
		req.ModerationType = TypeCombined
	}

	return s.moderate(ctx, req, texts)
}

func (s *service) moderate(ctx context.Context, req *Request, texts []string) (*Result, error) {
	var (
		verdict *moderation.Verdict
		err     error
	)
	if req.ModerationType == TypeCombined {
		verdict, err = s.aggregator.Moderate(ctx, texts, req.Providers)
	} else {
		verdict, err = s.aggregator.ModerateWith(ctx, string(req.ModerationType), texts)
	}
	if err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"moderation_type": req.ModerationType,
			"content_type":    req.ContentType,
		}).Error("moderation failed")
		return nil, err
	}

	categories, scores := verdict.StringMaps()
	result := &Result{
		ModerationID:   uuid.New(),
		Flagged:        verdict.Flagged,
		Categories:     categories,
		CategoryScores: scores,
		Provider:       verdict.Provider,
		ContentType:    req.ContentType,
		CreatedAt:      time.Now().UTC(),
	}
	if req.IncludeOriginalResponse {
		result.OriginalResponse = verdict.Raw
	}

	s.persist(ctx, req, texts, result)
	return result, nil
}

// persist is best effort: failures are logged and never surface to the caller.
func (s *service) persist(ctx context.Context, req *Request, texts []string, result *Result) {
	if s.repo != nil {
		entity := &moderation_result.ModerationResult{
			ID:             result.ModerationID,
			Content:        strings.Join(texts, "\n"),
			ContentType:    string(req.ContentType),
			ModerationType: string(req.ModerationType),
			Flagged:        result.Flagged,
			Categories:     types.BoolMap(result.Categories),
			CategoryScores: types.FloatMap(result.CategoryScores),
			Provider:       result.Provider,
			CreatedAt:      result.CreatedAt,
		}
		if err := s.repo.Save(ctx, entity); err != nil {
			s.logger.WithError(err).WithField("moderation_id", result.ModerationID).Warn("failed to save moderation result")
		}
	}
	if s.cache != nil {
		key := fmt.Sprintf(cache.ModerationKeyPattern, result.ModerationID)
		if err := s.cache.Set(ctx, key, result, s.cacheTTL); err != nil {
			s.logger.WithError(err).WithField("moderation_id", result.ModerationID).Warn("failed to cache moderation result")
		}
	}
}

func (s *service) ModerateBatch(ctx context.Context, contents []string, req Request) []*Result {
	if req.ModerationType == "" {
		req.ModerationType = TypeCombined
	}
	if req.ContentType == "" {
		req.ContentType = ContentText
	}
	results := make([]*Result, len(contents))

	var g errgroup.Group
	g.SetLimit(s.batchLimit)
	for i, content := range contents {
		g.Go(func() error {
			item := req
			item.Content = []string{content}
			res, err := s.Moderate(ctx, &item)
			if err != nil {
				results[i] = errorResult(&item, err)
				return nil
			}
			results[i] = res
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func errorResult(req *Request, err error) *Result {
	res := &Result{
		ModerationID:   uuid.New(),
		Flagged:        true,
		Categories:     map[string]bool{},
		CategoryScores: map[string]float64{},
		Provider:       "error-" + string(req.ModerationType),
		ContentType:    req.ContentType,
		CreatedAt:      time.Now().UTC(),
	}
	if req.IncludeOriginalResponse {
		res.OriginalResponse = map[string]interface{}{"error": err.Error()}
	}
	return res
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Result, error) {
	if s.cache != nil {
		var cached Result
		err := s.cache.Get(ctx, fmt.Sprintf(cache.ModerationKeyPattern, id), &cached)
		if err == nil {
			return &cached, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.logger.WithError(err).WithField("moderation_id", id).Warn("moderation cache lookup failed")
		}
	}
	if s.repo == nil {
		return nil, domain.NewNotFoundError(moderation_result.EntityName, id)
	}
	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &Result{
		ModerationID:   entity.ID,
		Flagged:        entity.Flagged,
		Categories:     entity.Categories,
		CategoryScores: entity.CategoryScores,
		Provider:       entity.Provider,
		ContentType:    ContentType(entity.ContentType),
		CreatedAt:      entity.CreatedAt,
	}, nil
}

func nonBlank(in []string) []string {
	out := make([]string, 0, len(in))
	for _, t := range in {
		if strings.TrimSpace(t) != "" {
			out = append(out, t)
		}
	}
	return out
}
