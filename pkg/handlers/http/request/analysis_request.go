package request

import (
	"errors"
	"strings"
)

type BriefItemRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type CampaignBriefRequest struct {
	CampaignName          string             `json:"campaign_name"`
	Description           string             `json:"description,omitempty"`
	BriefItems            []BriefItemRequest `json:"brief_items"`
	KeywordsToExtract     int                `json:"keywords_to_extract,omitempty"`
	Summarize             *bool              `json:"summarize,omitempty"`
	WebSearch             bool               `json:"web_search,omitempty"`
	WebSearchResultsCount int                `json:"web_search_results_count,omitempty"`
}

func (r *CampaignBriefRequest) Validate() error {
	if strings.TrimSpace(r.CampaignName) == "" {
		return errors.New("campaign_name is required")
	}
	if len(r.BriefItems) == 0 {
		return errors.New("brief_items must not be empty")
	}
	if r.KeywordsToExtract < 0 || r.KeywordsToExtract > 30 {
		return errors.New("keywords_to_extract must be between 1 and 30")
	}
	if r.WebSearchResultsCount < 0 || r.WebSearchResultsCount > 10 {
		return errors.New("web_search_results_count must be between 1 and 10")
	}
	return nil
}

type ContentAnalysisRequest struct {
	Content          string `json:"content"`
	AnalyzeSentiment *bool  `json:"analyze_sentiment,omitempty"`
	ExtractKeywords  *bool  `json:"extract_keywords,omitempty"`
	CreateSummary    *bool  `json:"create_summary,omitempty"`
}

func (r *ContentAnalysisRequest) Validate() error {
	if strings.TrimSpace(r.Content) == "" {
		return ErrContentRequired
	}
	return nil
}

// BoolOr returns def when b is unset.
func BoolOr(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}
