package keywords

import (
	"sort"
	"unicode/utf8"

	"github.com/Setharkk/Skyent-dev/pkg/nlp/tagger"
	"github.com/sirupsen/logrus"
)

// Scoring weights. Frequency is normalized against max(minFrequencyBase,
// frequencyShare*total) and length against lengthBase.
const (
	frequencyWeight  = 0.7
	lengthWeight     = 0.3
	minFrequencyBase = 10.0
	frequencyShare   = 0.1
	lengthBase       = 20.0
	minTokenLength   = 2
)

// ScoredKeyword is a ranked term.
type ScoredKeyword struct {
	Text  string  `json:"text"`
	Score float64 `json:"score"`
}

//go:generate mockery --name=Tagger --dir=. --output=./mocks --filename=tagger_mock.go --case=underscore --with-expecter
type Tagger interface {
	Tag(text string) ([]tagger.Token, error)
}

type Scorer struct {
	logger *logrus.Logger
	tagger Tagger
}

func NewScorer(logger *logrus.Logger, t Tagger) *Scorer {
	if t == nil {
		t = tagger.New()
	}
	return &Scorer{logger: logger, tagger: t}
}

type candidate struct {
	text     string
	count    int
	totalLen int
}

// Extract returns at most n keywords ordered by score, ties kept in first-seen order.
// Tagging failures yield an empty result.
func (s *Scorer) Extract(text string, n int) []ScoredKeyword {
	if n <= 0 || text == "" {
		return []ScoredKeyword{}
	}

	tokens, err := s.tagger.Tag(text)
	if err != nil {
		s.logger.WithError(err).Debug("keyword tagging failed")
		return []ScoredKeyword{}
	}

	var (
		groups []*candidate
		index  = make(map[string]*candidate)
		total  int
	)
	for _, tok := range tokens {
		if !significant(tok) {
			continue
		}
		total++
		length := utf8.RuneCountInString(tok.Text)
		c, ok := index[tok.Lemma]
		if !ok {
			c = &candidate{text: tok.Text}
			index[tok.Lemma] = c
			groups = append(groups, c)
		}
		c.count++
		c.totalLen += length
	}
	if total == 0 {
		return []ScoredKeyword{}
	}

	base := max(minFrequencyBase, frequencyShare*float64(total))
	scored := make([]ScoredKeyword, 0, len(groups))
	for _, c := range groups {
		normFrequency := min(float64(c.count)/base, 1.0)
		avgLen := float64(c.totalLen) / float64(c.count)
		normLength := min(avgLen/lengthBase, 1.0)
		scored = append(scored, ScoredKeyword{
			Text:  c.text,
			Score: frequencyWeight*normFrequency + lengthWeight*normLength,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if len(scored) > n {
		scored = scored[:n]
	}
	return scored
}

func significant(tok tagger.Token) bool {
	return !tok.IsStop && !tok.IsPunct && !tok.IsSpace &&
		tok.POS.IsContent() &&
		utf8.RuneCountInString(tok.Text) > minTokenLength
}
