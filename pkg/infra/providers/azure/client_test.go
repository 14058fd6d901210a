package azure_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/Setharkk/Skyent-dev/pkg/infra/httpx"
	"github.com/Setharkk/Skyent-dev/pkg/infra/httpx/mocks"
	"github.com/Setharkk/Skyent-dev/pkg/infra/providers"
	"github.com/Setharkk/Skyent-dev/pkg/infra/providers/azure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAsk(t *testing.T) {
	httpClient := new(mocks.MockHTTPClient)
	httpClient.On("Do", mock.MatchedBy(func(r *http.Request) bool {
		return r.URL.String() == "https://skyent.openai.azure.com/openai/deployments/gpt4o/chat/completions?api-version="+azure.DefaultAPIVersion &&
			r.Header.Get("api-key") == "secret"
	})).Return(httpx.NewResponse(http.StatusOK, []byte(`{
		"id":"cmpl-9",
		"choices":[{"message":{"role":"assistant","content":"Voici le post"}}],
		"usage":{"prompt_tokens":3,"completion_tokens":4,"total_tokens":7}}`)), nil).Once()

	client := azure.NewAzureClient(httpClient)
	resp, err := client.Ask(context.Background(), &providers.Config{
		APIKey:   "secret",
		Endpoint: "https://skyent.openai.azure.com/",
		Model:    "gpt4o",
	}, "Rédige un post")
	require.NoError(t, err)
	assert.Equal(t, "cmpl-9", resp.ID)
	assert.Equal(t, "Voici le post", resp.Response)
	assert.Equal(t, 7, resp.Usage.TotalTokens)
	httpClient.AssertExpectations(t)
}

func TestAsk_Validation(t *testing.T) {
	client := azure.NewAzureClient(new(mocks.MockHTTPClient))
	_, err := client.Ask(context.Background(), &providers.Config{Model: "gpt4o"}, "x")
	assert.ErrorContains(t, err, "endpoint")

	_, err = client.Ask(context.Background(), &providers.Config{Endpoint: "https://x"}, "x")
	assert.ErrorIs(t, err, providers.ErrMissingModel)
}

func TestAsk_UpstreamError(t *testing.T) {
	httpClient := new(mocks.MockHTTPClient)
	httpClient.On("Do", mock.Anything).Return(httpx.NewResponse(http.StatusTooManyRequests, []byte(`{"error":"quota"}`)), nil)

	client := azure.NewAzureClient(httpClient)
	_, err := client.Ask(context.Background(), &providers.Config{APIKey: "k", Endpoint: "https://x", Model: "m"}, "x")
	var se *httpx.StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusTooManyRequests, se.StatusCode)
}
