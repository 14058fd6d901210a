package analysis

import (
	"errors"
	"time"

	"github.com/Setharkk/Skyent-dev/pkg/infra/websearch"
	"github.com/Setharkk/Skyent-dev/pkg/nlp/keywords"
	"github.com/Setharkk/Skyent-dev/pkg/nlp/sentiment"
	"github.com/google/uuid"
)

const (
	DefaultKeywords      = 10
	MaxKeywords          = 30
	DefaultWebResults    = 3
	MaxWebResults        = 10
	itemSummarySentences = 5
	globalSummarySize    = 3
	searchKeywords       = 5

	contentKeywords         = 5
	contentSummarySentences = 3
	maxKeywordRunes         = 100

	DefaultListLimit = 10
	MaxListLimit     = 100
)

var ErrInvalidBrief = errors.New("invalid campaign brief")

type BriefItem struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type Brief struct {
	CampaignName          string
	Description           string
	BriefItems            []BriefItem
	KeywordsToExtract     int
	Summarize             bool
	WebSearch             bool
	WebSearchResultsCount int
}

type KeywordResult struct {
	ID    int     `json:"id"`
	Text  string  `json:"text"`
	Score float64 `json:"score"`
}

type SummaryResult struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
}

type ItemAnalysis struct {
	Title      string             `json:"title"`
	Keywords   []KeywordResult    `json:"keywords"`
	Summary    *SummaryResult     `json:"summary"`
	Sentiment  *sentiment.Scores  `json:"sentiment"`
	WebResults []websearch.Result `json:"web_results"`
}

type CampaignAnalysis struct {
	CampaignID         uuid.UUID               `json:"campaign_id"`
	CampaignName       string                  `json:"campaign_name"`
	Description        string                  `json:"description,omitempty"`
	CreatedAt          time.Time               `json:"created_at"`
	Keywords           []keywords.Group        `json:"keywords"`
	BriefItemsAnalysis map[string]ItemAnalysis `json:"brief_items_analysis"`
	GlobalSummary      *string                 `json:"global_summary"`
}

type ContentRequest struct {
	Content          string
	AnalyzeSentiment bool
	ExtractKeywords  bool
	CreateSummary    bool
}
