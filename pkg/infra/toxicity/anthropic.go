package toxicity

import (
	"context"
	"fmt"
	"regexp"

	"github.com/Setharkk/Skyent-dev/pkg/infra/providers"
	"github.com/Setharkk/Skyent-dev/pkg/moderation"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fastjson"
)

const (
	anthropicModerationTokens = 1000
	anthropicSystemPrompt     = "Tu es un système de modération de contenu qui analyse objectivement le texte pour détecter des contenus problématiques."
	anthropicPromptTemplate   = "Analyse de contenu pour modération:\n\n```\n%s\n```\n\n" +
		"Évalue si le contenu ci-dessus contient des éléments problématiques dans les catégories suivantes:\n" +
		"- Discours haineux\n- Harcèlement\n- Auto-mutilation\n- Contenu sexuel\n- Violence\n- Profanité/Langage grossier\n\n" +
		"Réponds uniquement au format JSON suivant:\n" +
		`{
    "flagged": true/false,
    "categories": {"hate": true/false, "harassment": true/false, "self_harm": true/false, "sexual": true/false, "violence": true/false, "profanity": true/false},
    "category_scores": {"hate": 0.0-1.0, "harassment": 0.0-1.0, "self_harm": 0.0-1.0, "sexual": 0.0-1.0, "violence": 0.0-1.0, "profanity": 0.0-1.0},
    "explanation": "brève explication"
}`
)

var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

// AnthropicProvider asks Claude for a JSON verdict.
type AnthropicProvider struct {
	client providers.Client
	config *providers.Config
	logger *logrus.Logger
}

// NewAnthropicProvider takes the configured Anthropic credentials; a nil config
// leaves the provider unavailable.
func NewAnthropicProvider(client providers.Client, config *providers.Config, logger *logrus.Logger) *AnthropicProvider {
	return &AnthropicProvider{client: client, config: config, logger: logger}
}

func (p *AnthropicProvider) Name() string { return ProviderAnthropic }

func (p *AnthropicProvider) Available() bool {
	return p.client != nil && p.config != nil && p.config.APIKey != ""
}

func (p *AnthropicProvider) Classify(ctx context.Context, texts []string) (*moderation.Verdict, error) {
	if !p.Available() {
		return nil, moderation.ErrProviderUnavailable
	}

	cfg := *p.config
	cfg.SystemPrompt = anthropicSystemPrompt
	cfg.MaxTokens = anthropicModerationTokens
	cfg.Temperature = 0

	resp, err := p.client.Ask(ctx, &cfg, fmt.Sprintf(anthropicPromptTemplate, moderation.JoinTexts(texts)))
	if err != nil {
		p.logger.WithError(err).Error("failed to call anthropic moderation")
		return nil, fmt.Errorf("anthropic moderation: %w", err)
	}

	v, err := parseAnthropicVerdict(resp.Response)
	if err != nil {
		p.logger.WithError(err).WithField("response", resp.Response).Error("invalid anthropic moderation reply")
		return nil, err
	}
	v.Raw = map[string]interface{}{
		"id":       resp.ID,
		"model":    resp.Model,
		"response": resp.Response,
	}
	return v.Finalize(), nil
}

func parseAnthropicVerdict(reply string) (*moderation.Verdict, error) {
	block := jsonObjectPattern.FindString(reply)
	if block == "" {
		return nil, fmt.Errorf("%w: no JSON object in anthropic reply", ErrFailedModerationCall)
	}
	var parser fastjson.Parser
	doc, err := parser.Parse(block)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedModerationCall, err)
	}

	v := moderation.NewVerdict(ProviderAnthropic)
	scores := doc.GetObject("category_scores")
	if categories := doc.GetObject("categories"); categories != nil {
		categories.Visit(func(key []byte, flag *fastjson.Value) {
			score := 0.0
			if scores != nil {
				if s := scores.Get(string(key)); s != nil {
					score = s.GetFloat64()
				}
			}
			v.SetRaw(string(key), flag.GetBool(), score)
		})
	}
	if scores != nil {
		scores.Visit(func(key []byte, s *fastjson.Value) {
			v.SetRaw(string(key), false, s.GetFloat64())
		})
	}
	return v, nil
}
