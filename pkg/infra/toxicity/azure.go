package toxicity

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Setharkk/Skyent-dev/pkg/infra/httpx"
	"github.com/Setharkk/Skyent-dev/pkg/moderation"
	"github.com/sirupsen/logrus"
)

const (
	azureAnalyzePath  = "/contentsafety/text:analyze?api-version=2023-10-01"
	azureOutputType   = "FourSeverityLevels"
	azureMaxSeverity  = 6
	azureMaxTextRunes = 10000
)

var azureCategories = []string{"Hate", "SelfHarm", "Sexual", "Violence"}

type azureAnalyzeRequest struct {
	Text       string   `json:"text"`
	Categories []string `json:"categories"`
	OutputType string   `json:"outputType"`
}

type azureAnalyzeResponse struct {
	BlocklistsMatch    []interface{} `json:"blocklistsMatch"`
	CategoriesAnalysis []struct {
		Category string `json:"category"`
		Severity int    `json:"severity"`
	} `json:"categoriesAnalysis"`
}

// AzureProvider calls Azure AI Content Safety. Severities (0, 2, 4, 6) are
// scaled into [0,1] and flagged from the threshold on.
type AzureProvider struct {
	client    httpx.Client
	logger    *logrus.Logger
	endpoint  string
	apiKey    string
	threshold float64
}

func NewAzureProvider(client httpx.Client, logger *logrus.Logger, endpoint, apiKey string, threshold float64) *AzureProvider {
	if threshold <= 0 || threshold > 1 {
		threshold = moderation.DefaultThreshold
	}
	return &AzureProvider{
		client:    client,
		logger:    logger,
		endpoint:  strings.TrimRight(endpoint, "/"),
		apiKey:    apiKey,
		threshold: threshold,
	}
}

func (p *AzureProvider) Name() string { return ProviderAzure }

func (p *AzureProvider) Available() bool { return p.endpoint != "" && p.apiKey != "" }

func (p *AzureProvider) Classify(ctx context.Context, texts []string) (*moderation.Verdict, error) {
	if !p.Available() {
		return nil, moderation.ErrProviderUnavailable
	}
	text := moderation.JoinTexts(texts)
	if utf8.RuneCountInString(text) > azureMaxTextRunes {
		p.logger.WithField("length", len(text)).Warn("azure content safety input truncated")
		text = string([]rune(text)[:azureMaxTextRunes])
	}

	var resp azureAnalyzeResponse
	body, err := httpx.PostJSON(ctx, p.client, p.endpoint+azureAnalyzePath, map[string]string{
		"Ocp-Apim-Subscription-Key": p.apiKey,
	}, azureAnalyzeRequest{
		Text:       text,
		Categories: azureCategories,
		OutputType: azureOutputType,
	}, &resp)
	if err != nil {
		p.logger.WithError(err).Error("failed to call azure content safety")
		return nil, fmt.Errorf("azure content safety: %w", err)
	}

	v := moderation.NewVerdict(ProviderAzure)
	for _, c := range resp.CategoriesAnalysis {
		score := float64(c.Severity) / azureMaxSeverity
		v.SetRaw(c.Category, score >= p.threshold, score)
	}
	v.Raw = rawResponse(body)
	return v.Finalize(), nil
}
