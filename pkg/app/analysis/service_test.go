package analysis

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/Setharkk/Skyent-dev/pkg/domain"
	domainAnalysis "github.com/Setharkk/Skyent-dev/pkg/domain/analysis"
	analysismocks "github.com/Setharkk/Skyent-dev/pkg/domain/analysis/mocks"
	"github.com/Setharkk/Skyent-dev/pkg/infra/websearch"
	searchmocks "github.com/Setharkk/Skyent-dev/pkg/infra/websearch/mocks"
	"github.com/Setharkk/Skyent-dev/pkg/nlp/keywords"
	"github.com/Setharkk/Skyent-dev/pkg/nlp/sentiment"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// wordExtractor returns the first n distinct words longer than three runes.
type wordExtractor struct{}

func (wordExtractor) Extract(text string, n int) []keywords.ScoredKeyword {
	var out []keywords.ScoredKeyword
	seen := map[string]bool{}
	for _, w := range strings.Fields(strings.Trim(text, ".")) {
		w = strings.Trim(w, ".,")
		if len([]rune(w)) <= 3 || seen[w] || len(out) >= n {
			continue
		}
		seen[w] = true
		out = append(out, keywords.ScoredKeyword{Text: w, Score: 0.5})
	}
	return out
}

type firstSentence struct{}

func (firstSentence) Generate(text string, _ int) string {
	return strings.SplitN(text, ". ", 2)[0]
}

type fixedSentiment struct{}

func (fixedSentiment) Analyze(string) sentiment.Scores {
	return sentiment.Scores{Positive: 0.5, Neutral: 0.5, Compound: 0.4}
}

func newTestService(searcher websearch.Searcher, repo domainAnalysis.Repository) Service {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewService(logger, wordExtractor{}, firstSentence{}, fixedSentiment{}, searcher, repo)
}

func TestAnalyzeCampaign(t *testing.T) {
	searcher := searchmocks.NewSearcher(t)
	searcher.EXPECT().Configured().Return(true)
	searcher.EXPECT().Search(mock.Anything, "Lancement produit nouvelle gamme vélos", 2).
		Return([]websearch.Result{{Title: "Vélos 2025", URL: "https://example.com/velos", Snippet: "..."}}, nil).Once()
	searcher.EXPECT().Search(mock.Anything, "Réseaux sociaux Vélos réseaux Campagne", 2).
		Return(nil, errors.New("rate limited")).Once()

	svc := newTestService(searcher, nil)
	out, err := svc.AnalyzeCampaign(context.Background(), &Brief{
		CampaignName: "Printemps",
		BriefItems: []BriefItem{
			{Title: "Lancement produit", Content: "nouvelle gamme vélos. Disponible en avril."},
			{Title: "Réseaux sociaux", Content: "Vélos sur les réseaux. Campagne courte."},
		},
		KeywordsToExtract:     3,
		Summarize:             true,
		WebSearch:             true,
		WebSearchResultsCount: 2,
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, out.CampaignID)
	require.Len(t, out.BriefItemsAnalysis, 2)

	launch := out.BriefItemsAnalysis["Lancement produit"]
	require.Len(t, launch.Keywords, 3)
	assert.Equal(t, 1, launch.Keywords[0].ID)
	assert.Equal(t, "nouvelle gamme vélos", launch.Summary.Text)
	assert.Len(t, launch.WebResults, 1)

	social := out.BriefItemsAnalysis["Réseaux sociaux"]
	assert.Empty(t, social.WebResults)

	require.NotEmpty(t, out.Keywords)
	assert.Equal(t, "vélos", out.Keywords[0].Text)
	assert.Equal(t, 2, out.Keywords[0].Frequency)
	assert.Equal(t, []string{"Lancement produit", "Réseaux sociaux"}, out.Keywords[0].Sources)

	require.NotNil(t, out.GlobalSummary)
	assert.Equal(t, "nouvelle gamme vélos Vélos sur les réseaux", *out.GlobalSummary)
}

func TestAnalyzeCampaign_SkipsUnconfiguredSearch(t *testing.T) {
	searcher := searchmocks.NewSearcher(t)
	searcher.EXPECT().Configured().Return(false)

	svc := newTestService(searcher, nil)
	out, err := svc.AnalyzeCampaign(context.Background(), &Brief{
		CampaignName: "Été",
		BriefItems:   []BriefItem{{Title: "Plage", Content: "Collection estivale colorée."}},
		WebSearch:    true,
	})
	require.NoError(t, err)
	item := out.BriefItemsAnalysis["Plage"]
	assert.Empty(t, item.WebResults)
	assert.Nil(t, item.Summary)
	assert.Nil(t, out.GlobalSummary)
}

func TestAnalyzeCampaign_Validation(t *testing.T) {
	svc := newTestService(nil, nil)
	tests := []struct {
		name  string
		brief *Brief
	}{
		{"nil", nil},
		{"no items", &Brief{CampaignName: "x"}},
		{"no name", &Brief{BriefItems: []BriefItem{{Title: "a"}}}},
		{"too many keywords", &Brief{CampaignName: "x", BriefItems: []BriefItem{{Title: "a"}}, KeywordsToExtract: 31}},
		{"too many results", &Brief{CampaignName: "x", BriefItems: []BriefItem{{Title: "a"}}, WebSearchResultsCount: 11}},
		{"untitled item", &Brief{CampaignName: "x", BriefItems: []BriefItem{{Content: "a"}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AnalyzeCampaign(context.Background(), tt.brief)
			assert.ErrorIs(t, err, ErrInvalidBrief)
		})
	}
}

func TestAnalyzeContent_New(t *testing.T) {
	repo := analysismocks.NewRepository(t)
	repo.EXPECT().GetByHash(mock.Anything, mock.AnythingOfType("string")).
		Return(nil, domain.NewNotFoundError(domainAnalysis.EntityName, uuid.Nil))
	repo.EXPECT().Save(mock.Anything, mock.MatchedBy(func(a *domainAnalysis.Analysis) bool {
		return len(a.ContentHash) == 64 && len(a.Keywords) > 0 && a.Summary != nil && len(a.Sentiments) == 1
	})).Return(nil)

	svc := newTestService(nil, repo)
	a, err := svc.AnalyzeContent(context.Background(), &ContentRequest{
		Content:          "Notre nouvelle campagne digitale. Elle cible les jeunes actifs.",
		AnalyzeSentiment: true,
		ExtractKeywords:  true,
		CreateSummary:    true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Notre nouvelle campagne digitale", a.Summary.Text)
	assert.Equal(t, 1, a.Keywords[0].Position)
	assert.InDelta(t, 0.4, a.Sentiments[0].CompoundScore, 1e-9)
}

func TestAnalyzeContent_ReusesExisting(t *testing.T) {
	existing := &domainAnalysis.Analysis{
		ID:          uuid.New(),
		ContentHash: "abc",
		Keywords:    []domainAnalysis.Keyword{{Text: "ancien"}},
		Summary:     &domainAnalysis.Summary{Text: "ancien résumé"},
	}
	repo := analysismocks.NewRepository(t)
	repo.EXPECT().GetByHash(mock.Anything, mock.Anything).Return(existing, nil)
	repo.EXPECT().Save(mock.Anything, existing).Return(nil)

	svc := newTestService(nil, repo)
	a, err := svc.AnalyzeContent(context.Background(), &ContentRequest{Content: "texte", AnalyzeSentiment: true})
	require.NoError(t, err)
	assert.Same(t, existing, a)
	assert.Empty(t, a.Keywords)
	assert.Nil(t, a.Summary)
	assert.Len(t, a.Sentiments, 1)
}

func TestAnalyzeContent_Errors(t *testing.T) {
	repo := analysismocks.NewRepository(t)
	svc := newTestService(nil, repo)

	_, err := svc.AnalyzeContent(context.Background(), &ContentRequest{Content: "  "})
	assert.ErrorIs(t, err, domain.ErrEmptyContent)

	repo.EXPECT().GetByHash(mock.Anything, mock.Anything).Return(nil, errors.New("connection reset")).Once()
	_, err = svc.AnalyzeContent(context.Background(), &ContentRequest{Content: "texte"})
	assert.ErrorContains(t, err, "connection reset")
}

func TestListAnalyses_ClampsPaging(t *testing.T) {
	repo := analysismocks.NewRepository(t)
	repo.EXPECT().List(mock.Anything, 0, DefaultListLimit).Return([]*domainAnalysis.Analysis{}, nil).Once()
	repo.EXPECT().List(mock.Anything, 20, MaxListLimit).Return([]*domainAnalysis.Analysis{}, nil).Once()

	svc := newTestService(nil, repo)
	_, err := svc.ListAnalyses(context.Background(), -5, 0)
	require.NoError(t, err)
	_, err = svc.ListAnalyses(context.Background(), 20, 500)
	require.NoError(t, err)
}
