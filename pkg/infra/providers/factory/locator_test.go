package factory_test

import (
	"testing"

	"github.com/Setharkk/Skyent-dev/pkg/config"
	infrabedrock "github.com/Setharkk/Skyent-dev/pkg/infra/bedrock"
	"github.com/Setharkk/Skyent-dev/pkg/infra/httpx/mocks"
	"github.com/Setharkk/Skyent-dev/pkg/infra/providers/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderLocator(t *testing.T) {
	locator := factory.NewProviderLocator(config.ProvidersConfig{
		OpenAI:  config.ProviderConfig{APIKey: "sk", Model: "gpt-4o"},
		Bedrock: config.BedrockConfig{Region: "eu-west-3", AccessKey: "A", SecretKey: "S"},
	}, new(mocks.MockHTTPClient), infrabedrock.NewClient())

	for _, name := range []string{"openai", "anthropic", "gemini", "azure", "bedrock"} {
		c, err := locator.Get(name)
		require.NoError(t, err, name)
		assert.NotNil(t, c)
	}
	_, err := locator.Get("mistral")
	assert.Error(t, err)

	cfg, ok := locator.Config("openai")
	require.True(t, ok)
	assert.Equal(t, "sk", cfg.APIKey)
	assert.Equal(t, "gpt-4o", cfg.Model)

	_, ok = locator.Config("anthropic")
	assert.False(t, ok)

	cfg, ok = locator.Config("bedrock")
	require.True(t, ok)
	assert.Equal(t, "eu-west-3", cfg.Bedrock.Region)
}
