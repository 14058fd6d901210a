package azure

import (
	"context"
	"fmt"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Setharkk/Skyent-dev/pkg/infra/httpx"
	"github.com/Setharkk/Skyent-dev/pkg/infra/providers"
)

const (
	DefaultAPIVersion = "2024-02-15-preview"
	cognitiveScope    = "https://cognitiveservices.azure.com/.default"
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	ID      string `json:"id"`
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Usage providers.Usage `json:"usage"`
}

type client struct {
	http       httpx.Client
	credential func() (azcore.TokenCredential, error)
}

// NewAzureClient talks to Azure OpenAI deployments. Without an API key the
// default Azure identity chain supplies a bearer token.
func NewAzureClient(httpClient httpx.Client) providers.Client {
	return &client{
		http: httpClient,
		credential: func() (azcore.TokenCredential, error) {
			return azidentity.NewDefaultAzureCredential(nil)
		},
	}
}

func (c *client) Ask(
	ctx context.Context,
	config *providers.Config,
	prompt string,
) (*providers.CompletionResponse, error) {
	if config.Endpoint == "" {
		return nil, fmt.Errorf("azure endpoint is required")
	}
	if config.Model == "" {
		return nil, fmt.Errorf("%w (deployment ID)", providers.ErrMissingModel)
	}

	headers := map[string]string{}
	if config.APIKey != "" {
		headers["api-key"] = config.APIKey
	} else {
		token, err := c.token(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get Azure AD token: %w", err)
		}
		headers["Authorization"] = "Bearer " + token
	}

	var messages []chatMessage
	if config.SystemPrompt != "" {
		messages = append(messages, chatMessage{Role: "system", Content: config.SystemPrompt})
	}
	if len(config.Instructions) > 0 {
		messages = append(messages, chatMessage{Role: "user", Content: providers.FormatInstructions(config.Instructions)})
	}
	if prompt != "" {
		messages = append(messages, chatMessage{Role: "user", Content: prompt})
	}

	url := fmt.Sprintf("%s/openai/deployments/%s/chat/completions?api-version=%s",
		strings.TrimRight(config.Endpoint, "/"), config.Model, DefaultAPIVersion)

	var out chatResponse
	if _, err := httpx.PostJSON(ctx, c.http, url, headers, chatRequest{
		Messages:    messages,
		Temperature: config.Temperature,
		MaxTokens:   config.MaxTokens,
	}, &out); err != nil {
		return nil, fmt.Errorf("azure request failed: %w", err)
	}
	if len(out.Choices) == 0 || out.Choices[0].Message.Content == "" {
		return nil, providers.ErrEmptyResponse
	}

	id := out.ID
	if id == "" {
		id = providers.ResponseID(ctx, "azure")
	}
	return &providers.CompletionResponse{
		ID:       id,
		Model:    config.Model,
		Response: out.Choices[0].Message.Content,
		Usage:    out.Usage,
	}, nil
}

func (c *client) token(ctx context.Context) (string, error) {
	cred, err := c.credential()
	if err != nil {
		return "", fmt.Errorf("failed to create credential: %w", err)
	}
	token, err := cred.GetToken(ctx, policy.TokenRequestOptions{Scopes: []string{cognitiveScope}})
	if err != nil {
		return "", fmt.Errorf("failed to get token: %w", err)
	}
	return token.Token, nil
}
