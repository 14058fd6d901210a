package keywords_test

import (
	"errors"
	"io"
	"testing"

	"github.com/Setharkk/Skyent-dev/pkg/nlp/keywords"
	"github.com/Setharkk/Skyent-dev/pkg/nlp/tagger"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const campaignSentence = "Le marketing digital transforme les entreprises modernes grâce au marketing et à l'innovation."

type failingTagger struct{}

func (failingTagger) Tag(string) ([]tagger.Token, error) {
	return nil, errors.New("malformed")
}

func newScorer() *keywords.Scorer {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return keywords.NewScorer(l, nil)
}

func texts(in []keywords.ScoredKeyword) []string {
	out := make([]string, 0, len(in))
	for _, k := range in {
		out = append(out, k.Text)
	}
	return out
}

func TestExtract_CampaignSentence(t *testing.T) {
	got := newScorer().Extract(campaignSentence, 3)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"marketing", "entreprises", "transforme"}, texts(got))
	assert.InDelta(t, 0.275, got[0].Score, 1e-9)
	assert.InDelta(t, 0.235, got[1].Score, 1e-9)
	assert.InDelta(t, 0.22, got[2].Score, 1e-9)
}

func TestExtract_TiesKeepEncounterOrder(t *testing.T) {
	got := newScorer().Extract(campaignSentence, 10)
	names := texts(got)
	require.Contains(t, names, "transforme")
	require.Contains(t, names, "innovation")
	assert.Less(t, indexOf(names, "transforme"), indexOf(names, "innovation"))
}

func TestExtract_Bounds(t *testing.T) {
	s := newScorer()
	for _, n := range []int{1, 2, 5, 50} {
		got := s.Extract(campaignSentence, n)
		assert.LessOrEqual(t, len(got), n)
		for i, k := range got {
			assert.GreaterOrEqual(t, k.Score, 0.0)
			assert.LessOrEqual(t, k.Score, 1.0)
			if i > 0 {
				assert.GreaterOrEqual(t, got[i-1].Score, k.Score)
			}
		}
	}
}

func TestExtract_Deterministic(t *testing.T) {
	s := newScorer()
	assert.Equal(t, s.Extract(campaignSentence, 5), s.Extract(campaignSentence, 5))
}

func TestExtract_LemmaGrouping(t *testing.T) {
	got := newScorer().Extract("Nos clients adorent. Chaque client compte.", 5)
	require.NotEmpty(t, got)
	assert.Equal(t, "clients", got[0].Text)
	assert.NotContains(t, texts(got), "client")
}

func TestExtract_EmptyResults(t *testing.T) {
	s := newScorer()
	assert.Empty(t, s.Extract(campaignSentence, 0))
	assert.Empty(t, s.Extract(campaignSentence, -2))
	assert.Empty(t, s.Extract("", 3))
	assert.Empty(t, s.Extract("le la les et ou", 3))

	l := logrus.New()
	l.SetOutput(io.Discard)
	failing := keywords.NewScorer(l, failingTagger{})
	got := failing.Extract(campaignSentence, 3)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestGroupKeywords(t *testing.T) {
	in := []keywords.SourcedKeyword{
		{ScoredKeyword: keywords.ScoredKeyword{Text: "Marketing", Score: 0.4}, Source: "a"},
		{ScoredKeyword: keywords.ScoredKeyword{Text: "innovation", Score: 0.3}, Source: "a"},
		{ScoredKeyword: keywords.ScoredKeyword{Text: "marketing", Score: 0.2}, Source: "b"},
		{ScoredKeyword: keywords.ScoredKeyword{Text: "MARKETING", Score: 0.3}, Source: "b"},
		{ScoredKeyword: keywords.ScoredKeyword{Text: "digital", Score: 0.1}},
	}
	groups := keywords.GroupKeywords(in)
	require.Len(t, groups, 3)

	assert.Equal(t, "Marketing", groups[0].Text)
	assert.Equal(t, 3, groups[0].Frequency)
	assert.InDelta(t, 0.3, groups[0].Score, 1e-9)
	assert.Equal(t, []string{"a", "b", "b"}, groups[0].Sources)
	assert.Len(t, groups[0].Sources, groups[0].Frequency)

	assert.Equal(t, "innovation", groups[1].Text)
	assert.Equal(t, "digital", groups[2].Text)
	assert.Empty(t, groups[2].Sources)
	assert.NotNil(t, groups[2].Sources)
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}
