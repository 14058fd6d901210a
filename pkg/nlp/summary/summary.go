package summary

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/Setharkk/Skyent-dev/pkg/nlp/tagger"
	"github.com/sirupsen/logrus"
)

const (
	DefaultSentences  = 5
	fallbackSeparator = ". "
)

var (
	ErrNoSentences = errors.New("no sentences to rank")
	ErrNoTerms     = errors.New("no content terms to rank sentences with")
)

// Ranker scores sentences by salience; higher is more salient.
type Ranker interface {
	Rank(sentences []string) ([]float64, error)
}

type Option func(*Generator)

func WithRanker(r Ranker) Option {
	return func(g *Generator) { g.ranker = r }
}

// WithSplitter replaces the sentence tokenizer.
func WithSplitter(split func(string) []string) Option {
	return func(g *Generator) { g.split = split }
}

type Generator struct {
	logger *logrus.Logger
	ranker Ranker
	split  func(string) []string
}

func NewGenerator(logger *logrus.Logger, opts ...Option) *Generator {
	g := &Generator{
		logger: logger,
		ranker: NewLSARanker(tagger.New()),
		split:  tagger.Sentences,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate returns an extractive summary of at most k sentences kept in
// source order. When ranking fails the first k ". "-separated fragments are
// returned instead.
func (g *Generator) Generate(text string, k int) string {
	if strings.TrimSpace(text) == "" || k <= 0 {
		return ""
	}
	out, err := g.extract(text, k)
	if err != nil {
		g.logger.WithError(err).Debug("summary ranking failed, using leading sentences")
		return Fallback(text, k)
	}
	return out
}

// Fallback joins the first k fragments of text split on ". ".
func Fallback(text string, k int) string {
	if strings.TrimSpace(text) == "" || k <= 0 {
		return ""
	}
	parts := strings.Split(text, fallbackSeparator)
	if len(parts) > k {
		parts = parts[:k]
	}
	return strings.Join(parts, fallbackSeparator) + "."
}

func (g *Generator) extract(text string, k int) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("summary ranker panicked: %v", r)
		}
	}()

	sentences := g.split(text)
	if len(sentences) == 0 {
		return "", ErrNoSentences
	}
	if len(sentences) <= k {
		return strings.Join(sentences, " "), nil
	}

	scores, err := g.ranker.Rank(sentences)
	if err != nil {
		return "", err
	}
	if len(scores) != len(sentences) {
		return "", fmt.Errorf("ranker returned %d scores for %d sentences", len(scores), len(sentences))
	}

	idx := make([]int, len(sentences))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return scores[idx[a]] > scores[idx[b]]
	})
	idx = idx[:k]
	sort.Ints(idx)

	picked := make([]string, 0, k)
	for _, i := range idx {
		picked = append(picked, sentences[i])
	}
	return strings.Join(picked, " "), nil
}
