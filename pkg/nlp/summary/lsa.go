package summary

import (
	"errors"
	"math"

	"github.com/Setharkk/Skyent-dev/pkg/nlp/tagger"
	"gonum.org/v1/gonum/mat"
)

var errFactorize = errors.New("svd factorization failed")

const (
	// DefaultTopicRatio is the share of singular dimensions kept when scoring.
	DefaultTopicRatio = 0.5
	minTopics         = 1
)

// LSARanker scores sentences with latent semantic analysis: a tf-idf
// term-by-sentence matrix is decomposed and each sentence is scored by the
// length of its sigma-weighted vector over the leading topics. Keeping every
// dimension would reduce the score to the tf-idf column norm.
type LSARanker struct {
	tagger *tagger.Tagger
	ratio  float64
}

type LSAOption func(*LSARanker)

// WithTopicRatio sets the share of singular dimensions kept, in (0, 1].
func WithTopicRatio(ratio float64) LSAOption {
	return func(r *LSARanker) {
		if ratio > 0 && ratio <= 1 {
			r.ratio = ratio
		}
	}
}

func NewLSARanker(t *tagger.Tagger, opts ...LSAOption) *LSARanker {
	r := &LSARanker{tagger: t, ratio: DefaultTopicRatio}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *LSARanker) Rank(sentences []string) ([]float64, error) {
	terms, counts, err := r.termCounts(sentences)
	if err != nil {
		return nil, err
	}

	n := len(sentences)
	a := mat.NewDense(len(terms), n, nil)
	for term, row := range terms {
		df := 0
		for j := 0; j < n; j++ {
			if counts[j][term] > 0 {
				df++
			}
		}
		idf := math.Log(float64(n)/float64(df)) + 1
		for j := 0; j < n; j++ {
			if tf := counts[j][term]; tf > 0 {
				a.Set(row, j, float64(tf)*idf)
			}
		}
	}

	return topicScores(a, r.ratio)
}

// topicScores factorizes the term-by-sentence matrix and scores sentence j
// as sqrt(sum over the leading topics of (sigma_i * v_ji)^2).
func topicScores(a *mat.Dense, ratio float64) ([]float64, error) {
	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDThin); !ok {
		return nil, errFactorize
	}
	sigma := svd.Values(nil)
	var v mat.Dense
	svd.VTo(&v)

	topics := retainedTopics(len(sigma), ratio)
	_, n := a.Dims()
	scores := make([]float64, n)
	for j := 0; j < n; j++ {
		var sum float64
		for i := 0; i < topics; i++ {
			w := sigma[i] * v.At(j, i)
			sum += w * w
		}
		scores[j] = math.Sqrt(sum)
	}
	return scores, nil
}

func retainedTopics(total int, ratio float64) int {
	k := int(math.Ceil(float64(total) * ratio))
	if k < minTopics {
		k = minTopics
	}
	if k > total {
		k = total
	}
	return k
}

func (r *LSARanker) termCounts(sentences []string) (map[string]int, []map[string]int, error) {
	terms := make(map[string]int)
	counts := make([]map[string]int, len(sentences))
	for j, s := range sentences {
		counts[j] = make(map[string]int)
		tokens, err := r.tagger.Tag(s)
		if err != nil {
			return nil, nil, err
		}
		for _, tok := range tokens {
			if tok.IsStop || tok.IsPunct || tok.IsSpace || !tok.POS.IsContent() {
				continue
			}
			if _, ok := terms[tok.Lemma]; !ok {
				terms[tok.Lemma] = len(terms)
			}
			counts[j][tok.Lemma]++
		}
	}
	if len(terms) == 0 {
		return nil, nil, ErrNoTerms
	}
	return terms, counts, nil
}
