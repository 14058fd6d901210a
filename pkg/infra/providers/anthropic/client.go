package anthropic

import (
	"context"
	"fmt"
	"strings"

	"github.com/Setharkk/Skyent-dev/pkg/infra/providers"
	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const (
	DefaultModel     = "claude-3-5-haiku-latest"
	defaultMaxTokens = 1024
)

type client struct {
	pool providers.ClientPool[*anthropic.Client]
	opts []option.RequestOption
}

func NewAnthropicClient(opts ...option.RequestOption) providers.Client {
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

	sdk := c.pool.Get(config.APIKey, func() *anthropic.Client {
		cli := anthropic.NewClient(append([]option.RequestOption{option.WithAPIKey(config.APIKey)}, c.opts...)...)
		return &cli
	})

	message, err := sdk.Messages.New(ctx, buildParams(config, prompt))
	if err != nil {
		return nil, fmt.Errorf("anthropic request failed: %w", err)
	}

	var text strings.Builder
	for _, block := range message.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	if text.Len() == 0 {
		return nil, providers.ErrEmptyResponse
	}

	in, out := int(message.Usage.InputTokens), int(message.Usage.OutputTokens)
	return &providers.CompletionResponse{
		ID:       message.ID,
		Model:    string(message.Model),
		Response: text.String(),
		Usage:    providers.Usage{PromptTokens: in, CompletionTokens: out, TotalTokens: in + out},
	}, nil
}

// buildParams sends the instructions and the prompt as blocks of a single
// user turn.
func buildParams(config *providers.Config, prompt string) anthropic.MessageNewParams {
	var blocks []anthropic.ContentBlockParamUnion
	if len(config.Instructions) > 0 {
		blocks = append(blocks, anthropic.NewTextBlock(providers.FormatInstructions(config.Instructions)))
	}
	if prompt != "" {
		blocks = append(blocks, anthropic.NewTextBlock(prompt))
	}

	model := DefaultModel
	if config.Model != "" {
		model = config.Model
	}
	maxTokens := int64(defaultMaxTokens)
	if config.MaxTokens > 0 {
		maxTokens = int64(config.MaxTokens)
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: maxTokens,
		Messages:  []anthropic.MessageParam{anthropic.NewUserMessage(blocks...)},
	}
	if config.SystemPrompt != "" {
		params.System = []anthropic.TextBlockParam{{Text: config.SystemPrompt}}
	}
	if config.Temperature > 0 {
		params.Temperature = anthropic.Float(config.Temperature)
	}
	return params
}
