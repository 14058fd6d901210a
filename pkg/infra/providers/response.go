package providers

import (
	"context"
	"fmt"
	"time"
)

type CompletionResponse struct {
	ID       string `json:"id"`
	Model    string `json:"model"`
	Response string `json:"response"`
	Usage    Usage  `json:"usage"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

type requestIDKey struct{}

// WithRequestID tags outgoing completions so response ids can be correlated.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// ResponseID builds an id for providers whose API does not return one.
func ResponseID(ctx context.Context, provider string) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
		return fmt.Sprintf("%s-%s", provider, id)
	}
	return fmt.Sprintf("%s-%d", provider, time.Now().UnixNano())
}
