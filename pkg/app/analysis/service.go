package analysis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/Setharkk/Skyent-dev/pkg/domain"
	domainAnalysis "github.com/Setharkk/Skyent-dev/pkg/domain/analysis"
	"github.com/Setharkk/Skyent-dev/pkg/infra/websearch"
	"github.com/Setharkk/Skyent-dev/pkg/nlp/keywords"
	"github.com/Setharkk/Skyent-dev/pkg/nlp/sentiment"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type KeywordExtractor interface {
	Extract(text string, n int) []keywords.ScoredKeyword
}

type Summarizer interface {
	Generate(text string, k int) string
}

type SentimentAnalyzer interface {
	Analyze(text string) sentiment.Scores
}

//go:generate mockery --name=Service --dir=. --output=./mocks --filename=analysis_service_mock.go --case=underscore --with-expecter
type Service interface {
	AnalyzeCampaign(ctx context.Context, brief *Brief) (*CampaignAnalysis, error)
	// AnalyzeContent stores the analysis of content, reusing the record of an
	// identical earlier content and replacing its keyword, summary and
	// sentiment rows.
	AnalyzeContent(ctx context.Context, req *ContentRequest) (*domainAnalysis.Analysis, error)
	GetAnalysis(ctx context.Context, id uuid.UUID) (*domainAnalysis.Analysis, error)
	ListAnalyses(ctx context.Context, skip, limit int) ([]*domainAnalysis.Analysis, error)
}

type service struct {
	logger     *logrus.Logger
	extractor  KeywordExtractor
	summarizer Summarizer
	sentiment  SentimentAnalyzer
	searcher   websearch.Searcher
	repo       domainAnalysis.Repository
}

func NewService(
	logger *logrus.Logger,
	extractor KeywordExtractor,
	summarizer Summarizer,
	sentimentAnalyzer SentimentAnalyzer,
	searcher websearch.Searcher,
	repo domainAnalysis.Repository,
) Service {
	return &service{
		logger:     logger,
		extractor:  extractor,
		summarizer: summarizer,
		sentiment:  sentimentAnalyzer,
		searcher:   searcher,
		repo:       repo,
	}
}

func (s *service) AnalyzeCampaign(ctx context.Context, brief *Brief) (*CampaignAnalysis, error) {
	if err := normalizeBrief(brief); err != nil {
		return nil, err
	}

	out := &CampaignAnalysis{
		CampaignID:         uuid.New(),
		CampaignName:       brief.CampaignName,
		Description:        brief.Description,
		CreatedAt:          time.Now().UTC(),
		BriefItemsAnalysis: make(map[string]ItemAnalysis, len(brief.BriefItems)),
	}

	var (
		all       []keywords.SourcedKeyword
		summaries []string
	)
	for _, item := range brief.BriefItems {
		ia := s.analyzeItem(ctx, item, brief)
		out.BriefItemsAnalysis[item.Title] = ia
		for _, kw := range ia.Keywords {
			all = append(all, keywords.SourcedKeyword{
				ScoredKeyword: keywords.ScoredKeyword{Text: kw.Text, Score: kw.Score},
				Source:        item.Title,
			})
		}
		if ia.Summary != nil {
			summaries = append(summaries, ia.Summary.Text)
		}
	}

	out.Keywords = keywords.GroupKeywords(all)
	if brief.Summarize && len(summaries) > 0 {
		if global := s.summarizer.Generate(strings.Join(summaries, " "), globalSummarySize); global != "" {
			out.GlobalSummary = &global
		}
	}
	return out, nil
}

func normalizeBrief(brief *Brief) error {
	if brief == nil || len(brief.BriefItems) == 0 {
		return fmt.Errorf("%w: at least one brief item is required", ErrInvalidBrief)
	}
	if strings.TrimSpace(brief.CampaignName) == "" {
		return fmt.Errorf("%w: campaign name is required", ErrInvalidBrief)
	}
	if brief.KeywordsToExtract == 0 {
		brief.KeywordsToExtract = DefaultKeywords
	}
	if brief.KeywordsToExtract < 1 || brief.KeywordsToExtract > MaxKeywords {
		return fmt.Errorf("%w: keywords_to_extract must be between 1 and %d", ErrInvalidBrief, MaxKeywords)
	}
	if brief.WebSearchResultsCount == 0 {
		brief.WebSearchResultsCount = DefaultWebResults
	}
	if brief.WebSearchResultsCount < 1 || brief.WebSearchResultsCount > MaxWebResults {
		return fmt.Errorf("%w: web_search_results_count must be between 1 and %d", ErrInvalidBrief, MaxWebResults)
	}
	for _, item := range brief.BriefItems {
		if strings.TrimSpace(item.Title) == "" {
			return fmt.Errorf("%w: brief item title is required", ErrInvalidBrief)
		}
	}
	return nil
}

func (s *service) analyzeItem(ctx context.Context, item BriefItem, brief *Brief) ItemAnalysis {
	ia := ItemAnalysis{
		Title:      item.Title,
		Keywords:   []KeywordResult{},
		WebResults: []websearch.Result{},
	}
	for i, kw := range s.extractor.Extract(item.Content, brief.KeywordsToExtract) {
		ia.Keywords = append(ia.Keywords, KeywordResult{ID: i + 1, Text: kw.Text, Score: kw.Score})
	}

	if brief.Summarize {
		if text := s.summarizer.Generate(item.Content, itemSummarySentences); text != "" {
			ia.Summary = &SummaryResult{ID: 1, Text: text}
		}
	}

	if brief.WebSearch && s.searcher != nil && s.searcher.Configured() {
		terms := make([]string, 0, searchKeywords)
		for i := 0; i < len(ia.Keywords) && i < searchKeywords; i++ {
			terms = append(terms, ia.Keywords[i].Text)
		}
		query := item.Title + " " + strings.Join(terms, " ")
		results, err := s.searcher.Search(ctx, query, brief.WebSearchResultsCount)
		if err != nil {
			s.logger.WithError(err).WithField("item", item.Title).Warn("web search failed")
		} else {
			ia.WebResults = results
		}
	}
	return ia
}

func (s *service) AnalyzeContent(ctx context.Context, req *ContentRequest) (*domainAnalysis.Analysis, error) {
	if req == nil || strings.TrimSpace(req.Content) == "" {
		return nil, domain.ErrEmptyContent
	}
	sum := sha256.Sum256([]byte(req.Content))
	hash := hex.EncodeToString(sum[:])

	a, err := s.repo.GetByHash(ctx, hash)
	if err != nil {
		if !domain.IsNotFoundError(err) {
			return nil, fmt.Errorf("failed to look up analysis: %w", err)
		}
		a = &domainAnalysis.Analysis{ContentHash: hash, OriginalContent: req.Content}
	}

	a.Keywords = nil
	a.Summary = nil
	a.Sentiments = nil

	if req.ExtractKeywords {
		for i, kw := range s.extractor.Extract(req.Content, contentKeywords) {
			a.Keywords = append(a.Keywords, domainAnalysis.Keyword{
				Position: i + 1,
				Text:     truncateRunes(kw.Text, maxKeywordRunes),
				Score:    kw.Score,
			})
		}
	}
	if req.CreateSummary {
		if text := s.summarizer.Generate(req.Content, contentSummarySentences); text != "" {
			a.Summary = &domainAnalysis.Summary{Text: text}
		}
	}
	if req.AnalyzeSentiment {
		scores := s.sentiment.Analyze(req.Content)
		a.Sentiments = []domainAnalysis.SentimentAnalysis{{
			PositiveScore: scores.Positive,
			NegativeScore: scores.Negative,
			NeutralScore:  scores.Neutral,
			CompoundScore: scores.Compound,
		}}
	}

	if err := s.repo.Save(ctx, a); err != nil {
		s.logger.WithError(err).WithField("content_hash", hash).Error("failed to save analysis")
		return nil, fmt.Errorf("failed to save analysis: %w", err)
	}
	return a, nil
}

func (s *service) GetAnalysis(ctx context.Context, id uuid.UUID) (*domainAnalysis.Analysis, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListAnalyses(ctx context.Context, skip, limit int) ([]*domainAnalysis.Analysis, error) {
	if skip < 0 {
		skip = 0
	}
	switch {
	case limit <= 0:
		limit = DefaultListLimit
	case limit > MaxListLimit:
		limit = MaxListLimit
	}
	return s.repo.List(ctx, skip, limit)
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
