package response

import (
	"time"

	"github.com/Setharkk/Skyent-dev/pkg/domain/analysis"
	"github.com/google/uuid"
)

type AnalysisOutput struct {
	ID          uuid.UUID        `json:"id"`
	ContentHash string           `json:"content_hash"`
	Sentiment   *SentimentOutput `json:"sentiment,omitempty"`
	Keywords    []KeywordOutput  `json:"keywords"`
	Summary     *SummaryOutput   `json:"summary,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

type SentimentOutput struct {
	Positive float64 `json:"positive"`
	Negative float64 `json:"negative"`
	Neutral  float64 `json:"neutral"`
	Compound float64 `json:"compound"`
}

type KeywordOutput struct {
	Text  string  `json:"text"`
	Score float64 `json:"score"`
}

type SummaryOutput struct {
	Text string `json:"text"`
}

// NewAnalysisOutput reports the latest sentiment row when several exist.
func NewAnalysisOutput(a *analysis.Analysis) AnalysisOutput {
	out := AnalysisOutput{
		ID:          a.ID,
		ContentHash: a.ContentHash,
		Keywords:    make([]KeywordOutput, 0, len(a.Keywords)),
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
	for _, k := range a.Keywords {
		out.Keywords = append(out.Keywords, KeywordOutput{Text: k.Text, Score: k.Score})
	}
	if a.Summary != nil {
		out.Summary = &SummaryOutput{Text: a.Summary.Text}
	}
	if n := len(a.Sentiments); n > 0 {
		s := a.Sentiments[n-1]
		out.Sentiment = &SentimentOutput{
			Positive: s.PositiveScore,
			Negative: s.NegativeScore,
			Neutral:  s.NeutralScore,
			Compound: s.CompoundScore,
		}
	}
	return out
}

func NewAnalysisOutputs(items []*analysis.Analysis) []AnalysisOutput {
	out := make([]AnalysisOutput, 0, len(items))
	for _, a := range items {
		out = append(out, NewAnalysisOutput(a))
	}
	return out
}
