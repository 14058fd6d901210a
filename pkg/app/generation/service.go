package generation

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	appModeration "github.com/Setharkk/Skyent-dev/pkg/app/moderation"
	"github.com/Setharkk/Skyent-dev/pkg/config"
	"github.com/Setharkk/Skyent-dev/pkg/domain/content"
	"github.com/Setharkk/Skyent-dev/pkg/infra/database/types"
	"github.com/Setharkk/Skyent-dev/pkg/infra/events"
	"github.com/Setharkk/Skyent-dev/pkg/infra/prometheus"
	"github.com/Setharkk/Skyent-dev/pkg/infra/providers"
	"github.com/Setharkk/Skyent-dev/pkg/infra/providers/factory"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

//go:generate mockery --name=Service --dir=. --output=./mocks --filename=generation_service_mock.go --case=underscore --with-expecter
type Service interface {
	Generate(ctx context.Context, params *Parameters) (*content.GeneratedContent, error)
	GetContent(ctx context.Context, id uuid.UUID) (*content.GeneratedContent, error)
	ListContents(ctx context.Context, offset, limit int) ([]*content.GeneratedContent, error)
}

type service struct {
	logger     *logrus.Logger
	cfg        config.GenerationConfig
	locator    factory.ProviderLocator
	repo       content.Repository
	moderation appModeration.Service
	exporter   events.Exporter
}

func NewService(
	logger *logrus.Logger,
	cfg config.GenerationConfig,
	locator factory.ProviderLocator,
	repo content.Repository,
	moderationService appModeration.Service,
	exporter events.Exporter,
) Service {
	if exporter == nil {
		exporter = events.NewNoopExporter()
	}
	return &service{
		logger:     logger,
		cfg:        cfg,
		locator:    locator,
		repo:       repo,
		moderation: moderationService,
		exporter:   exporter,
	}
}

func (s *service) Generate(ctx context.Context, params *Parameters) (*content.GeneratedContent, error) {
	if params == nil {
		return nil, ErrEmptyPrompt
	}
	if err := params.validate(); err != nil {
		return nil, err
	}

	r, modelUsed, err := s.complete(ctx, params)
	if err != nil {
		return nil, err
	}

	gc := &content.GeneratedContent{
		ID:          uuid.New(),
		ContentType: string(params.ContentType),
		Content:     r.Content,
		Prompt:      params.Prompt,
		Tone:        string(params.Tone),
		ModelUsed:   modelUsed,
		Title:       r.Title,
		Summary:     r.Summary,
		Variants:    types.StringArray(r.Variants),
		Hashtags:    types.StringArray(r.Hashtags),
		Parameters:  parametersMap(params),
		Metadata:    types.JSONMap(r.Metadata),
		CreatedAt:   time.Now().UTC(),
	}
	if gc.Metadata == nil {
		gc.Metadata = types.JSONMap{}
	}

	if params.Moderate {
		s.attachModeration(ctx, gc)
	}

	if err := s.repo.Save(ctx, gc); err != nil {
		s.logger.WithError(err).WithField("content_id", gc.ID).Error("failed to save generated content")
		return nil, fmt.Errorf("failed to save generated content: %w", err)
	}

	evt := &events.Event{
		ID:         uuid.NewString(),
		Type:       events.ContentGenerated,
		Key:        gc.ID.String(),
		OccurredAt: gc.CreatedAt,
		Data: map[string]interface{}{
			"content_id":   gc.ID,
			"content_type": gc.ContentType,
			"model_used":   gc.ModelUsed,
		},
	}
	if err := s.exporter.Export(ctx, evt); err != nil {
		s.logger.WithError(err).WithField("content_id", gc.ID).Warn("failed to export generation event")
	}
	return gc, nil
}

// complete walks the configured provider order. The first configured provider
// answers; on failure the next configured one is tried. When no provider is
// configured a templated reply is returned.
func (s *service) complete(ctx context.Context, params *Parameters) (*reply, string, error) {
	system, prompt := systemPrompt(params), userPrompt(params)

	var (
		attempted bool
		lastErr   error
	)
	for _, name := range s.cfg.ProviderOrder {
		base, ok := s.locator.Config(name)
		if !ok {
			continue
		}
		client, err := s.locator.Get(name)
		if err != nil {
			s.logger.WithError(err).WithField("provider", name).Warn("generation provider unavailable")
			continue
		}
		attempted = true

		cfg := *base
		cfg.SystemPrompt = system
		if s.cfg.MaxTokens > 0 {
			cfg.MaxTokens = s.cfg.MaxTokens
		}
		cfg.Temperature = s.cfg.Temperature

		resp, err := client.Ask(providers.WithRequestID(ctx, uuid.NewString()), &cfg, prompt)
		if err != nil {
			prometheus.GenerationTotal.WithLabelValues(name, "error").Inc()
			s.logger.WithError(err).WithField("provider", name).Warn("generation provider failed")
			lastErr = err
			continue
		}
		prometheus.GenerationTotal.WithLabelValues(name, "success").Inc()

		r := parseReply(resp.Response)
		r.Metadata = map[string]interface{}{
			"provider":    name,
			"model":       resp.Model,
			"response_id": resp.ID,
			"usage": map[string]interface{}{
				"prompt_tokens":     resp.Usage.PromptTokens,
				"completion_tokens": resp.Usage.CompletionTokens,
				"total_tokens":      resp.Usage.TotalTokens,
			},
		}
		return r, resp.Model, nil
	}

	if attempted {
		return nil, "", fmt.Errorf("%w: %w", ErrGenerationFailed, lastErr)
	}
	s.logger.Warn("no generation provider configured, using templated content")
	prometheus.GenerationTotal.WithLabelValues(mockProvider, "success").Inc()
	return mockReply(params), mockProvider, nil
}

func (s *service) attachModeration(ctx context.Context, gc *content.GeneratedContent) {
	if s.moderation == nil {
		return
	}
	res, err := s.moderation.Moderate(ctx, &appModeration.Request{
		Content:        []string{gc.Content},
		ContentType:    appModeration.ContentText,
		ModerationType: appModeration.TypeCombined,
	})
	if err != nil {
		s.logger.WithError(err).WithField("content_id", gc.ID).Warn("moderation of generated content failed")
		gc.Metadata["moderation_error"] = err.Error()
		return
	}
	gc.Metadata["moderation"] = map[string]interface{}{
		"moderation_id":   res.ModerationID.String(),
		"flagged":         res.Flagged,
		"categories":      res.Categories,
		"category_scores": res.CategoryScores,
		"provider":        res.Provider,
	}
}

func (s *service) GetContent(ctx context.Context, id uuid.UUID) (*content.GeneratedContent, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListContents(ctx context.Context, offset, limit int) ([]*content.GeneratedContent, error) {
	if offset < 0 {
		offset = 0
	}
	switch {
	case limit <= 0:
		limit = DefaultListLimit
	case limit > MaxListLimit:
		limit = MaxListLimit
	}
	return s.repo.List(ctx, offset, limit)
}

func parametersMap(p *Parameters) types.JSONMap {
	b, err := json.Marshal(p)
	if err != nil {
		return types.JSONMap{}
	}
	var m types.JSONMap
	if err := json.Unmarshal(b, &m); err != nil {
		return types.JSONMap{}
	}
	return m
}
