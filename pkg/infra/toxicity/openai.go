package toxicity

import (
	"context"
	"fmt"

	"github.com/Setharkk/Skyent-dev/pkg/infra/httpx"
	"github.com/Setharkk/Skyent-dev/pkg/moderation"
	"github.com/sirupsen/logrus"
)

const (
	OpenAIModerationURL    = "https://api.openai.com/v1/moderations"
	DefaultModerationModel = "omni-moderation-latest"
)

type openAIModerationRequest struct {
	Input []string `json:"input"`
	Model string   `json:"model,omitempty"`
}

type openAIModerationResponse struct {
	ID      string                   `json:"id"`
	Model   string                   `json:"model"`
	Results []openAIModerationResult `json:"results"`
}

type openAIModerationResult struct {
	Flagged        bool               `json:"flagged"`
	Categories     map[string]bool    `json:"categories"`
	CategoryScores map[string]float64 `json:"category_scores"`
}

// OpenAIProvider calls the OpenAI moderation endpoint.
type OpenAIProvider struct {
	client   httpx.Client
	logger   *logrus.Logger
	apiKey   string
	endpoint string
	model    string
}

type OpenAIOption func(*OpenAIProvider)

func WithOpenAIEndpoint(endpoint string) OpenAIOption {
	return func(p *OpenAIProvider) {
		if endpoint != "" {
			p.endpoint = endpoint
		}
	}
}

func WithOpenAIModel(model string) OpenAIOption {
	return func(p *OpenAIProvider) {
		if model != "" {
			p.model = model
		}
	}
}

func NewOpenAIProvider(client httpx.Client, logger *logrus.Logger, apiKey string, opts ...OpenAIOption) *OpenAIProvider {
	p := &OpenAIProvider{
		client:   client,
		logger:   logger,
		apiKey:   apiKey,
		endpoint: OpenAIModerationURL,
		model:    DefaultModerationModel,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *OpenAIProvider) Name() string { return ProviderOpenAI }

func (p *OpenAIProvider) Available() bool { return p.apiKey != "" }

// Classify sends every text in one request. With several inputs the per-input
// results are merged: a category is flagged if any input flags it and keeps its
// highest score.
func (p *OpenAIProvider) Classify(ctx context.Context, texts []string) (*moderation.Verdict, error) {
	if !p.Available() {
		return nil, moderation.ErrProviderUnavailable
	}

	var resp openAIModerationResponse
	body, err := httpx.PostJSON(ctx, p.client, p.endpoint, map[string]string{
		"Authorization": "Bearer " + p.apiKey,
	}, openAIModerationRequest{Input: texts, Model: p.model}, &resp)
	if err != nil {
		p.logger.WithError(err).Error("failed to call openai moderation")
		return nil, fmt.Errorf("openai moderation: %w", err)
	}
	if len(resp.Results) == 0 {
		return nil, fmt.Errorf("%w: openai returned no results", ErrFailedModerationCall)
	}

	v := moderation.NewVerdict(ProviderOpenAI)
	for _, r := range resp.Results {
		for name, flagged := range r.Categories {
			v.SetRaw(name, flagged, r.CategoryScores[name])
		}
		for name, score := range r.CategoryScores {
			if _, ok := r.Categories[name]; !ok {
				v.SetRaw(name, false, score)
			}
		}
	}
	v.Raw = rawResponse(body)
	return v.Finalize(), nil
}
