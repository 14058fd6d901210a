package factory

import (
	"fmt"

	"github.com/Setharkk/Skyent-dev/pkg/config"
	infrabedrock "github.com/Setharkk/Skyent-dev/pkg/infra/bedrock"
	"github.com/Setharkk/Skyent-dev/pkg/infra/httpx"
	"github.com/Setharkk/Skyent-dev/pkg/infra/providers"
	"github.com/Setharkk/Skyent-dev/pkg/infra/providers/anthropic"
	"github.com/Setharkk/Skyent-dev/pkg/infra/providers/azure"
	"github.com/Setharkk/Skyent-dev/pkg/infra/providers/bedrock"
	"github.com/Setharkk/Skyent-dev/pkg/infra/providers/gemini"
	"github.com/Setharkk/Skyent-dev/pkg/infra/providers/openai"
)

const (
	ProviderOpenAI    = "openai"
	ProviderGemini    = "gemini"
	ProviderAnthropic = "anthropic"
	ProviderBedrock   = "bedrock"
	ProviderAzure     = "azure"
)

//go:generate mockery --name=ProviderLocator --dir=. --output=./mocks --filename=provider_locator_mock.go --case=underscore --with-expecter
type ProviderLocator interface {
	Get(provider string) (providers.Client, error)
	// Config returns the credentials and default model for a provider, and
	// whether it is configured at all.
	Config(provider string) (*providers.Config, bool)
}

type providerLocator struct {
	cfg     config.ProvidersConfig
	clients map[string]providers.Client
}

func NewProviderLocator(cfg config.ProvidersConfig, httpClient httpx.Client, runtimes infrabedrock.Client) ProviderLocator {
	return &providerLocator{
		cfg: cfg,
		clients: map[string]providers.Client{
			ProviderOpenAI:    openai.NewOpenaiClient(),
			ProviderAnthropic: anthropic.NewAnthropicClient(),
			ProviderGemini:    gemini.NewGeminiClient(),
			ProviderAzure:     azure.NewAzureClient(httpClient),
			ProviderBedrock:   bedrock.NewBedrockClient(runtimes),
		},
	}
}

func (f *providerLocator) Get(provider string) (providers.Client, error) {
	c, ok := f.clients[provider]
	if !ok {
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
	return c, nil
}

func (f *providerLocator) Config(provider string) (*providers.Config, bool) {
	if !f.cfg.Configured(provider) {
		return nil, false
	}
	fromSettings := func(p config.ProviderConfig) *providers.Config {
		return &providers.Config{APIKey: p.APIKey, Endpoint: p.Endpoint, Model: p.Model}
	}
	switch provider {
	case ProviderOpenAI:
		return fromSettings(f.cfg.OpenAI), true
	case ProviderAnthropic:
		return fromSettings(f.cfg.Anthropic), true
	case ProviderGemini:
		return fromSettings(f.cfg.Gemini), true
	case ProviderAzure:
		return fromSettings(f.cfg.Azure), true
	case ProviderBedrock:
		b := f.cfg.Bedrock
		return &providers.Config{
			Model: b.Model,
			Bedrock: &infrabedrock.Credentials{
				Region:       b.Region,
				AccessKey:    b.AccessKey,
				SecretKey:    b.SecretKey,
				SessionToken: b.SessionToken,
				RoleARN:      b.RoleARN,
			},
		}, true
	default:
		return nil, false
	}
}
