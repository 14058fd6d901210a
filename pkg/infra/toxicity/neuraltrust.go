package toxicity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Setharkk/Skyent-dev/pkg/infra/httpx"
	"github.com/Setharkk/Skyent-dev/pkg/moderation"
	"github.com/sirupsen/logrus"
)

const toxicityPath = "/v1/toxicity"

type neuralTrustContent struct {
	Input []string `json:"input"`
}

type neuralTrustResponse struct {
	Categories     map[string]float64 `json:"categories,omitempty"`
	CategoryScores map[string]float64 `json:"category_scores,omitempty"`
	Scores         map[string]float64 `json:"scores,omitempty"`
}

// NeuralTrustProvider is score-only: a category is flagged when its score
// reaches the threshold.
type NeuralTrustProvider struct {
	client         httpx.Client
	logger         *logrus.Logger
	circuitBreaker httpx.CircuitBreaker
	baseURL        string
	token          string
	threshold      float64
}

func NewNeuralTrustProvider(
	client httpx.Client,
	logger *logrus.Logger,
	baseURL, token string,
	threshold float64,
) *NeuralTrustProvider {
	if threshold <= 0 || threshold > 1 {
		threshold = moderation.DefaultThreshold
	}
	return &NeuralTrustProvider{
		client:         client,
		logger:         logger,
		circuitBreaker: httpx.NewCircuitBreaker(ProviderNeuralTrust, cbTimeout, cbMaxFailures),
		baseURL:        strings.TrimRight(baseURL, "/"),
		token:          token,
		threshold:      threshold,
	}
}

func (p *NeuralTrustProvider) Name() string { return ProviderNeuralTrust }

func (p *NeuralTrustProvider) Available() bool { return p.baseURL != "" && p.token != "" }

func (p *NeuralTrustProvider) Classify(ctx context.Context, texts []string) (*moderation.Verdict, error) {
	if !p.Available() {
		return nil, moderation.ErrProviderUnavailable
	}

	var (
		result []neuralTrustResponse
		body   []byte
	)
	err := p.circuitBreaker.Execute(func() error {
		var err error
		body, err = httpx.PostJSON(ctx, p.client, p.baseURL+toxicityPath, map[string]string{
			"Token": p.token,
		}, neuralTrustContent{Input: texts}, &result)
		return err
	})
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			p.logger.WithError(err).Error("toxicity detection failed (circuit breaker)")
		}
		return nil, fmt.Errorf("%w: %w", ErrFailedModerationCall, err)
	}
	if len(result) == 0 {
		return nil, fmt.Errorf("%w: neuraltrust returned no results", ErrFailedModerationCall)
	}

	v := moderation.NewVerdict(ProviderNeuralTrust)
	for _, r := range result {
		scores := r.CategoryScores
		if len(scores) == 0 {
			scores = r.Scores
		}
		if len(scores) == 0 {
			scores = r.Categories
		}
		for name, score := range scores {
			v.SetRaw(name, score >= p.threshold, score)
		}
	}
	v.Raw = map[string]interface{}{"results": rawResults(body)}
	return v.Finalize(), nil
}

// rawResults wraps the array body so it fits the object-shaped Raw field.
func rawResults(body []byte) interface{} {
	wrapped := rawResponse(append(append([]byte(`{"r":`), body...), '}'))
	if wrapped == nil {
		return nil
	}
	return wrapped["r"]
}
