package openai

import (
	"context"
	"fmt"

	"github.com/Setharkk/Skyent-dev/pkg/infra/providers"
	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
)

const DefaultModel = "gpt-4o-mini"

type client struct {
	pool providers.ClientPool[*openai.Client]
	opts []option.RequestOption
}

// NewOpenaiClient returns a client pooling one SDK client per API key and
// endpoint. Extra options are applied to every SDK client it creates.
func NewOpenaiClient(opts ...option.RequestOption) providers.Client {
	return &client{opts: opts}
}

func (c *client) Ask(
	ctx context.Context,
	config *providers.Config,
	prompt string,
) (*providers.CompletionResponse, error) {
	if config.APIKey == "" {
		return nil, providers.ErrMissingAPIKey
	}

	sdk := c.pool.Get(config.APIKey+"|"+config.Endpoint, func() *openai.Client {
		opts := append([]option.RequestOption{option.WithAPIKey(config.APIKey)}, c.opts...)
		if config.Endpoint != "" {
			opts = append(opts, option.WithBaseURL(config.Endpoint))
		}
		cli := openai.NewClient(opts...)
		return &cli
	})

	resp, err := sdk.Chat.Completions.New(ctx, buildParams(config, prompt))
	if err != nil {
		return nil, fmt.Errorf("openai request failed: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return nil, providers.ErrEmptyResponse
	}

	return &providers.CompletionResponse{
		ID:       resp.ID,
		Model:    resp.Model,
		Response: resp.Choices[0].Message.Content,
		Usage: providers.Usage{
			PromptTokens:     int(resp.Usage.PromptTokens),
			CompletionTokens: int(resp.Usage.CompletionTokens),
			TotalTokens:      int(resp.Usage.TotalTokens),
		},
	}, nil
}

func buildParams(config *providers.Config, prompt string) openai.ChatCompletionNewParams {
	var messages []openai.ChatCompletionMessageParamUnion
	if config.SystemPrompt != "" {
		messages = append(messages, openai.SystemMessage(config.SystemPrompt))
	}
	if len(config.Instructions) > 0 {
		messages = append(messages, openai.UserMessage(providers.FormatInstructions(config.Instructions)))
	}
	if prompt != "" {
		messages = append(messages, openai.UserMessage(prompt))
	}

	model := config.Model
	if model == "" {
		model = DefaultModel
	}
	params := openai.ChatCompletionNewParams{Model: model, Messages: messages}
	if config.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(config.MaxTokens))
	}
	if config.Temperature > 0 {
		params.Temperature = openai.Float(config.Temperature)
	}
	return params
}
