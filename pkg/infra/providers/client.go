package providers

import (
	"context"
	"errors"

	"github.com/Setharkk/Skyent-dev/pkg/infra/bedrock"
)

var (
	ErrMissingAPIKey = errors.New("API key is required")
	ErrMissingModel  = errors.New("model is required")
	ErrEmptyResponse = errors.New("no completions returned")
)

type Config struct {
	APIKey       string               `json:"-"`
	Endpoint     string               `json:"endpoint,omitempty"`
	Model        string               `json:"model"`
	MaxTokens    int                  `json:"max_tokens,omitempty"`
	Temperature  float64              `json:"temperature,omitempty"`
	SystemPrompt string               `json:"system_prompt,omitempty"`
	Instructions []string             `json:"instructions,omitempty"`
	Bedrock      *bedrock.Credentials `json:"-"`
}

//go:generate mockery --name=Client --dir=. --output=./mocks --filename=client_mock.go --case=underscore --with-expecter
type Client interface {
	Ask(ctx context.Context, config *Config, prompt string) (*CompletionResponse, error)
}
