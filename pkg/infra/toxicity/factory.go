package toxicity

import (
	"strings"

	"github.com/Setharkk/Skyent-dev/pkg/config"
	infrabedrock "github.com/Setharkk/Skyent-dev/pkg/infra/bedrock"
	"github.com/Setharkk/Skyent-dev/pkg/infra/httpx"
	"github.com/Setharkk/Skyent-dev/pkg/infra/providers/factory"
	"github.com/Setharkk/Skyent-dev/pkg/moderation"
	"github.com/Setharkk/Skyent-dev/pkg/nlp/tagger"
	"github.com/sirupsen/logrus"
)

// CanonicalName lowercases a provider name and resolves legacy aliases.
func CanonicalName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == ProviderDetoxify {
		return ProviderLocal
	}
	return name
}

// NewProviders builds every moderation provider. Unconfigured ones are still
// returned and report Available() == false.
func NewProviders(
	cfg *config.Config,
	logger *logrus.Logger,
	httpClient httpx.Client,
	locator factory.ProviderLocator,
	runtimes infrabedrock.Client,
	t *tagger.Tagger,
) []moderation.Provider {
	threshold := cfg.Moderation.Threshold

	anthropicClient, _ := locator.Get(factory.ProviderAnthropic)
	anthropicConfig, _ := locator.Config(factory.ProviderAnthropic)

	var guardrailCreds *infrabedrock.Credentials
	if bedrockConfig, ok := locator.Config(factory.ProviderBedrock); ok {
		guardrailCreds = bedrockConfig.Bedrock
	}

	return []moderation.Provider{
		NewOpenAIProvider(
			httpx.WithCircuitBreaker(httpClient, ProviderOpenAI, cbTimeout, cbMaxFailures),
			logger,
			cfg.Providers.OpenAI.APIKey,
		),
		NewAnthropicProvider(anthropicClient, anthropicConfig, logger),
		NewAzureProvider(
			httpx.WithCircuitBreaker(httpClient, ProviderAzure, cbTimeout, cbMaxFailures),
			logger,
			cfg.Moderation.Azure.Endpoint,
			cfg.Moderation.Azure.APIKey,
			threshold,
		),
		NewNeuralTrustProvider(
			httpClient,
			logger,
			cfg.Moderation.NeuralTrust.BaseURL,
			cfg.Moderation.NeuralTrust.Token,
			threshold,
		),
		NewBedrockGuardrailProvider(
			runtimes,
			logger,
			guardrailCreds,
			cfg.Moderation.Bedrock.GuardrailID,
			cfg.Moderation.Bedrock.Version,
		),
		NewLocalProvider(logger, t, threshold),
	}
}
