package websearch_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/Setharkk/Skyent-dev/pkg/config"
	"github.com/Setharkk/Skyent-dev/pkg/infra/cache"
	"github.com/Setharkk/Skyent-dev/pkg/infra/httpx"
	"github.com/Setharkk/Skyent-dev/pkg/infra/httpx/mocks"
	"github.com/Setharkk/Skyent-dev/pkg/infra/websearch"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func tavilyConfig() config.WebSearchConfig {
	return config.WebSearchConfig{
		TavilyAPIKey:    "tvly-test",
		BaseURL:         "https://api.tavily.com",
		RatePerSecond:   100,
		CacheTTLSeconds: 60,
	}
}

func TestSearch_CallsTavilyAndCaches(t *testing.T) {
	httpClient := mocks.NewMockHTTPClient(t)
	httpClient.ExpectRequest(http.MethodPost, "https://api.tavily.com/search").Return(httpx.NewResponse(http.StatusOK, []byte(`{
		"results":[
			{"title":"Résultat de test 1","url":"https://example.com/1","content":"Ceci est un <b>contenu</b> de test.","score":0.9},
			{"title":"Résultat de test 2","url":"https://example.com/2","content":"Second contenu de test.","score":0.8},
			{"title":"Résultat de test 3","url":"https://example.com/3","content":"En trop.","score":0.1}
		]}`)), nil).Once()

	c := websearch.NewTavilyClient(httpClient, cache.NewMemoryClient(), logrus.New(), tavilyConfig())
	require.True(t, c.Configured())

	results, err := c.Search(context.Background(), "requête de test", 2)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Résultat de test 1", results[0].Title)
	assert.Equal(t, "https://example.com/2", results[1].URL)
	assert.Equal(t, "Ceci est un contenu de test.", results[0].Snippet)

	again, err := c.Search(context.Background(), "Requête de test", 2)
	require.NoError(t, err)
	assert.Equal(t, results, again)
}

func TestSearch_Validation(t *testing.T) {
	c := websearch.NewTavilyClient(new(mocks.MockHTTPClient), cache.NewMemoryClient(), logrus.New(), tavilyConfig())
	_, err := c.Search(context.Background(), "   ", 3)
	assert.ErrorIs(t, err, websearch.ErrEmptyQuery)
}

func TestSearch_UpstreamError(t *testing.T) {
	httpClient := new(mocks.MockHTTPClient)
	httpClient.On("Do", mock.Anything).Return(httpx.NewResponse(http.StatusUnauthorized, []byte(`{"detail":"invalid key"}`)), nil)

	c := websearch.NewTavilyClient(httpClient, cache.NewMemoryClient(), logrus.New(), tavilyConfig())
	_, err := c.Search(context.Background(), "marketing", 3)
	var se *httpx.StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusUnauthorized, se.StatusCode)
}

func TestSearch_NotConfigured(t *testing.T) {
	cfg := tavilyConfig()
	cfg.TavilyAPIKey = ""
	c := websearch.NewTavilyClient(new(mocks.MockHTTPClient), cache.NewMemoryClient(), logrus.New(), cfg)
	assert.False(t, c.Configured())

	results, err := c.Search(context.Background(), "test query", 3)
	require.NoError(t, err)
	require.Len(t, results, 3)
	for i, r := range results {
		assert.Contains(t, r.Title, "Résultat "+string(rune('1'+i)))
		assert.Contains(t, r.URL, "example.com")
		assert.Contains(t, r.Snippet, "test query")
	}
}

func TestMockResults_Clamp(t *testing.T) {
	assert.Len(t, websearch.MockResults("q", 0), websearch.DefaultResults)
	assert.Len(t, websearch.MockResults("q", 50), websearch.MaxResults)
}

func TestCleanSnippet(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "  du   texte\nsimple ", "du texte simple"},
		{"markup", "<p>Le <em>marketing</em> digital</p><script>alert(1)</script>", "Le marketing digital"},
		{"entities", "Prix &amp; qualit&eacute;", "Prix & qualité"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, websearch.CleanSnippet(tt.in))
		})
	}

	long := strings.Repeat("mot ", 200)
	got := websearch.CleanSnippet(long)
	assert.True(t, strings.HasSuffix(got, "..."))
	assert.LessOrEqual(t, len([]rune(got)), 303)
}
