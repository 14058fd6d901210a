package anthropic_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/Setharkk/Skyent-dev/pkg/infra/providers"
	"github.com/Setharkk/Skyent-dev/pkg/infra/providers/anthropic"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func TestAsk_MissingAPIKey(t *testing.T) {
	_, err := anthropic.NewAnthropicClient().Ask(context.Background(), &providers.Config{}, "x")
	assert.ErrorIs(t, err, providers.ErrMissingAPIKey)
}

func TestAsk_JoinsTextBlocks(t *testing.T) {
	var gotPath string
	var sent struct {
		Messages []struct {
			Role    string `json:"role"`
			Content []struct {
				Text string `json:"text"`
			} `json:"content"`
		} `json:"messages"`
	}
	transport := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&sent); err != nil {
			return nil, err
		}
		body := `{"id":"msg_1","type":"message","role":"assistant","model":"claude-3-5-haiku-latest",
			"content":[{"type":"text","text":"{\"flagged\":"},{"type":"text","text":"false}"}],
			"stop_reason":"end_turn","usage":{"input_tokens":9,"output_tokens":4}}`
		return &http.Response{
			StatusCode: http.StatusOK,
			Header:     http.Header{"Content-Type": []string{"application/json"}},
			Body:       io.NopCloser(strings.NewReader(body)),
			Request:    r,
		}, nil
	})

	client := anthropic.NewAnthropicClient(
		option.WithHTTPClient(&http.Client{Transport: transport}),
		option.WithMaxRetries(0),
	)
	resp, err := client.Ask(context.Background(), &providers.Config{
		APIKey:       "key",
		Instructions: []string{"réponds en JSON"},
	}, "Analyse ce texte")
	require.NoError(t, err)
	assert.Equal(t, "/v1/messages", gotPath)
	require.Len(t, sent.Messages, 1)
	assert.Equal(t, "user", sent.Messages[0].Role)
	require.Len(t, sent.Messages[0].Content, 2)
	assert.Equal(t, "[Instructions]\n1. réponds en JSON\n", sent.Messages[0].Content[0].Text)
	assert.Equal(t, "Analyse ce texte", sent.Messages[0].Content[1].Text)
	assert.Equal(t, "msg_1", resp.ID)
	assert.Equal(t, `{"flagged":false}`, resp.Response)
	assert.Equal(t, 13, resp.Usage.TotalTokens)
}
