package sentiment

import (
	"math"
	"strings"

	"github.com/Setharkk/Skyent-dev/pkg/nlp/tagger"
)

const (
	negationScalar = -0.74
	normalizeAlpha = 15.0
	negationWindow = 3
)

// Scores holds proportions of positive, negative and neutral mass in [0,1]
// plus a compound polarity in [-1,1].
type Scores struct {
	Positive float64 `json:"positive_score"`
	Negative float64 `json:"negative_score"`
	Neutral  float64 `json:"neutral_score"`
	Compound float64 `json:"compound_score"`
}

type Analyzer struct {
	tagger *tagger.Tagger
}

func NewAnalyzer(t *tagger.Tagger) *Analyzer {
	if t == nil {
		t = tagger.New()
	}
	return &Analyzer{tagger: t}
}

// Analyze scores text with a valence lexicon. Empty or untaggable text is neutral.
func (a *Analyzer) Analyze(text string) Scores {
	neutral := Scores{Neutral: 1}
	tokens, err := a.tagger.Tag(text)
	if err != nil {
		return neutral
	}

	var (
		words   []tagger.Token
		valence []float64
	)
	for _, tok := range tokens {
		if tok.IsPunct || tok.IsSpace {
			continue
		}
		words = append(words, tok)
	}
	if len(words) == 0 {
		return neutral
	}

	for i, w := range words {
		v, ok := lookup(w)
		if !ok {
			valence = append(valence, 0)
			continue
		}
		negated := false
		for back := 1; back <= negationWindow && i-back >= 0; back++ {
			prev := strings.ToLower(words[i-back].Text)
			if b, ok := boosters[prev]; ok {
				if v > 0 {
					v += b
				} else {
					v -= b
				}
			}
			if _, ok := negators[prev]; ok {
				negated = true
			}
		}
		if negated {
			v *= negationScalar
		}
		valence = append(valence, v)
	}

	var sum, pos, neg, neu float64
	for _, v := range valence {
		sum += v
		switch {
		case v > 0:
			pos += v + 1
		case v < 0:
			neg += -v + 1
		default:
			neu++
		}
	}
	total := pos + neg + neu
	return Scores{
		Positive: round(pos / total),
		Negative: round(neg / total),
		Neutral:  round(neu / total),
		Compound: round(sum / math.Sqrt(sum*sum+normalizeAlpha)),
	}
}

func lookup(tok tagger.Token) (float64, bool) {
	lower := strings.ToLower(tok.Text)
	if v, ok := lexicon[lower]; ok {
		return v, true
	}
	v, ok := lexicon[tok.Lemma]
	return v, ok
}

func round(f float64) float64 {
	return math.Round(f*1000) / 1000
}
