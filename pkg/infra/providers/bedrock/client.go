package bedrock

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Setharkk/Skyent-dev/pkg/infra/bedrock"
	"github.com/Setharkk/Skyent-dev/pkg/infra/providers"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
)

const (
	DefaultModel = "anthropic.claude-3-haiku-20240307-v1:0"

	ModelPrefixAnthropicClaude = "anthropic.claude"
	ModelPrefixAmazonTitan     = "amazon.titan"
	ModelPrefixMistral         = "mistral"
	ModelPrefixMetaLlama       = "meta.llama"

	anthropicVersion = "bedrock-2023-05-31"
	defaultMaxTokens = 1024
)

type claudeRequest struct {
	AnthropicVersion string              `json:"anthropic_version"`
	MaxTokens        int                 `json:"max_tokens"`
	Temperature      float64             `json:"temperature,omitempty"`
	System           string              `json:"system,omitempty"`
	Messages         []map[string]string `json:"messages"`
}

type titanRequest struct {
	InputText            string         `json:"inputText"`
	TextGenerationConfig map[string]any `json:"textGenerationConfig"`
}

type promptRequest struct {
	Prompt      string  `json:"prompt"`
	MaxTokens   int     `json:"max_tokens,omitempty"`
	MaxGenLen   int     `json:"max_gen_len,omitempty"`
	Temperature float64 `json:"temperature,omitempty"`
}

type client struct {
	runtimes bedrock.Client
}

func NewBedrockClient(runtimes bedrock.Client) providers.Client {
	return &client{runtimes: runtimes}
}

func (c *client) Ask(
	ctx context.Context,
	config *providers.Config,
	prompt string,
) (*providers.CompletionResponse, error) {
	if config.Bedrock == nil {
		return nil, fmt.Errorf("aws credentials are required")
	}
	model := config.Model
	if model == "" {
		model = DefaultModel
	}

	rt, err := c.runtimes.Runtime(ctx, *config.Bedrock)
	if err != nil {
		return nil, fmt.Errorf("failed to create Bedrock client: %w", err)
	}

	body, err := json.Marshal(prepareRequest(model, config, prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := rt.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(model),
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
		Body:        body,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to invoke model: %w", err)
	}

	text, err := parseResponse(model, resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	if text == "" {
		return nil, providers.ErrEmptyResponse
	}

	return &providers.CompletionResponse{
		ID:       providers.ResponseID(ctx, "bedrock"),
		Model:    model,
		Response: providers.StripCodeFence(text),
	}, nil
}

func fullPrompt(config *providers.Config, prompt string, withSystem bool) string {
	var b strings.Builder
	if withSystem && config.SystemPrompt != "" {
		b.WriteString(config.SystemPrompt)
		b.WriteString("\n\n")
	}
	if len(config.Instructions) > 0 {
		b.WriteString(providers.FormatInstructions(config.Instructions))
		b.WriteString("\n")
	}
	b.WriteString(prompt)
	return b.String()
}

func maxTokens(config *providers.Config) int {
	if config.MaxTokens > 0 {
		return config.MaxTokens
	}
	return defaultMaxTokens
}

func prepareRequest(model string, config *providers.Config, prompt string) any {
	switch {
	case strings.Contains(model, ModelPrefixAnthropicClaude):
		return claudeRequest{
			AnthropicVersion: anthropicVersion,
			MaxTokens:        maxTokens(config),
			Temperature:      config.Temperature,
			System:           config.SystemPrompt,
			Messages: []map[string]string{
				{"role": "user", "content": fullPrompt(config, prompt, false)},
			},
		}
	case strings.Contains(model, ModelPrefixAmazonTitan):
		genCfg := map[string]any{"maxTokenCount": maxTokens(config)}
		if config.Temperature > 0 {
			genCfg["temperature"] = config.Temperature
		}
		return titanRequest{InputText: fullPrompt(config, prompt, true), TextGenerationConfig: genCfg}
	case strings.Contains(model, ModelPrefixMetaLlama):
		return promptRequest{Prompt: fullPrompt(config, prompt, true), MaxGenLen: maxTokens(config), Temperature: config.Temperature}
	default:
		return promptRequest{Prompt: fullPrompt(config, prompt, true), MaxTokens: maxTokens(config), Temperature: config.Temperature}
	}
}

func parseResponse(model string, body []byte) (string, error) {
	switch {
	case strings.Contains(model, ModelPrefixAnthropicClaude):
		var r struct {
			Content []struct {
				Type string `json:"type"`
				Text string `json:"text"`
			} `json:"content"`
		}
		if err := json.Unmarshal(body, &r); err != nil {
			return "", err
		}
		for _, c := range r.Content {
			if c.Type == "text" {
				return c.Text, nil
			}
		}
		return "", nil
	case strings.Contains(model, ModelPrefixAmazonTitan):
		var r struct {
			Results []struct {
				OutputText string `json:"outputText"`
			} `json:"results"`
		}
		if err := json.Unmarshal(body, &r); err != nil {
			return "", err
		}
		if len(r.Results) == 0 {
			return "", nil
		}
		return r.Results[0].OutputText, nil
	case strings.Contains(model, ModelPrefixMetaLlama):
		var r struct {
			Generation string `json:"generation"`
		}
		if err := json.Unmarshal(body, &r); err != nil {
			return "", err
		}
		return r.Generation, nil
	case strings.Contains(model, ModelPrefixMistral):
		var r struct {
			Outputs []struct {
				Text string `json:"text"`
			} `json:"outputs"`
		}
		if err := json.Unmarshal(body, &r); err != nil {
			return "", err
		}
		if len(r.Outputs) == 0 {
			return "", nil
		}
		return r.Outputs[0].Text, nil
	default:
		var r map[string]any
		if err := json.Unmarshal(body, &r); err != nil {
			return "", err
		}
		for _, k := range []string{"completion", "generation", "output", "text", "response"} {
			if s, ok := r[k].(string); ok && s != "" {
				return s, nil
			}
		}
		return "", nil
	}
}
