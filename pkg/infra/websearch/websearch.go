package websearch

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Setharkk/Skyent-dev/pkg/config"
	"github.com/Setharkk/Skyent-dev/pkg/infra/cache"
	"github.com/Setharkk/Skyent-dev/pkg/infra/httpx"
	"github.com/Setharkk/Skyent-dev/pkg/nlp/tagger"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const (
	DefaultResults = 5
	MaxResults     = 10
	searchPath     = "/search"
	searchDepth    = "basic"
)

var ErrEmptyQuery = errors.New("search query is empty")

type Result struct {
	Title   string `json:"title" msgpack:"title"`
	URL     string `json:"url" msgpack:"url"`
	Snippet string `json:"snippet" msgpack:"snippet"`
}

//go:generate mockery --name=Searcher --dir=. --output=./mocks --filename=searcher_mock.go --case=underscore --with-expecter
type Searcher interface {
	Search(ctx context.Context, query string, n int) ([]Result, error)
	// Configured reports whether real searches can be made; otherwise Search
	// returns placeholder results.
	Configured() bool
}

type tavilyRequest struct {
	APIKey      string `json:"api_key"`
	Query       string `json:"query"`
	MaxResults  int    `json:"max_results"`
	SearchDepth string `json:"search_depth"`
}

type tavilyResponse struct {
	Results []struct {
		Title   string  `json:"title"`
		URL     string  `json:"url"`
		Content string  `json:"content"`
		Score   float64 `json:"score"`
	} `json:"results"`
}

type TavilyClient struct {
	client  httpx.Client
	cache   cache.Client
	logger  *logrus.Logger
	limiter *rate.Limiter
	apiKey  string
	baseURL string
	ttl     time.Duration
}

func NewTavilyClient(client httpx.Client, c cache.Client, logger *logrus.Logger, cfg config.WebSearchConfig) *TavilyClient {
	perSecond := cfg.RatePerSecond
	if perSecond <= 0 {
		perSecond = 2
	}
	return &TavilyClient{
		client:  client,
		cache:   c,
		logger:  logger,
		limiter: rate.NewLimiter(rate.Limit(perSecond), int(perSecond)+1),
		apiKey:  cfg.TavilyAPIKey,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		ttl:     time.Duration(cfg.CacheTTLSeconds) * time.Second,
	}
}

func (c *TavilyClient) Configured() bool { return c.apiKey != "" && c.baseURL != "" }

func (c *TavilyClient) Search(ctx context.Context, query string, n int) ([]Result, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}
	n = clampResults(n)
	if !c.Configured() {
		c.logger.WithField("query", query).Warn("web search not configured, returning placeholder results")
		return MockResults(query, n), nil
	}

	key := cacheKey(query, n)
	var cached []Result
	if err := c.cache.Get(ctx, key, &cached); err == nil {
		return cached, nil
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		c.logger.WithError(err).Warn("web search cache read failed")
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("web search rate limit: %w", err)
	}

	var resp tavilyResponse
	if _, err := httpx.PostJSON(ctx, c.client, c.baseURL+searchPath, nil, tavilyRequest{
		APIKey:      c.apiKey,
		Query:       query,
		MaxResults:  n,
		SearchDepth: searchDepth,
	}, &resp); err != nil {
		c.logger.WithError(err).WithField("query", query).Error("tavily search failed")
		return nil, fmt.Errorf("tavily search: %w", err)
	}

	results := make([]Result, 0, len(resp.Results))
	for _, r := range resp.Results {
		results = append(results, Result{
			Title:   strings.TrimSpace(r.Title),
			URL:     r.URL,
			Snippet: CleanSnippet(r.Content),
		})
		if len(results) == n {
			break
		}
	}

	if err := c.cache.Set(ctx, key, results, c.ttl); err != nil {
		c.logger.WithError(err).Warn("web search cache write failed")
	}
	return results, nil
}

// MockResults builds the placeholder results served when no search API is set up.
func MockResults(query string, n int) []Result {
	n = clampResults(n)
	results := make([]Result, 0, n)
	for i := 1; i <= n; i++ {
		results = append(results, Result{
			Title:   fmt.Sprintf("Résultat %d pour '%s'", i, query),
			URL:     "https://example.com/result/" + strconv.Itoa(i),
			Snippet: fmt.Sprintf("Ceci est un extrait simulé pour la recherche '%s'.", query),
		})
	}
	return results
}

func clampResults(n int) int {
	switch {
	case n <= 0:
		return DefaultResults
	case n > MaxResults:
		return MaxResults
	default:
		return n
	}
}

func cacheKey(query string, n int) string {
	sum := sha256.Sum256([]byte(tagger.Fold(strings.TrimSpace(query)) + "|" + strconv.Itoa(n)))
	return fmt.Sprintf(cache.WebSearchKeyPattern, hex.EncodeToString(sum[:]))
}
