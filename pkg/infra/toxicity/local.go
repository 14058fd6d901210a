package toxicity

import (
	"context"
	"math"
	"strings"
	"sync"

	"github.com/Setharkk/Skyent-dev/pkg/moderation"
	"github.com/Setharkk/Skyent-dev/pkg/nlp/tagger"
	"github.com/sirupsen/logrus"
)

// LocalProvider is the credential-free lexicon classifier. Each hit in a
// category halves the remaining distance to 1, so one hit scores 0.5, two
// score 0.75 and so on.
type LocalProvider struct {
	logger    *logrus.Logger
	tagger    *tagger.Tagger
	threshold float64

	once  sync.Once
	index map[string][]moderation.Category
}

func NewLocalProvider(logger *logrus.Logger, t *tagger.Tagger, threshold float64) *LocalProvider {
	if t == nil {
		t = tagger.New()
	}
	if threshold <= 0 || threshold > 1 {
		threshold = moderation.DefaultThreshold
	}
	return &LocalProvider{logger: logger, tagger: t, threshold: threshold}
}

func (p *LocalProvider) Name() string { return ProviderLocal }

func (p *LocalProvider) Available() bool { return true }

func (p *LocalProvider) load() {
	p.once.Do(func() {
		p.index = make(map[string][]moderation.Category)
		add := func(key string, c moderation.Category) {
			for _, existing := range p.index[key] {
				if existing == c {
					return
				}
			}
			p.index[key] = append(p.index[key], c)
		}
		for _, c := range moderation.Categories {
			for _, word := range lexicon[c] {
				add(word, c)
			}
		}
		p.logger.WithField("entries", len(p.index)).Debug("local toxicity lexicon loaded")
	})
}

func (p *LocalProvider) Classify(_ context.Context, texts []string) (*moderation.Verdict, error) {
	p.load()

	tokens, err := p.tagger.Tag(moderation.JoinTexts(texts))
	if err != nil {
		return nil, err
	}

	hits := make(map[moderation.Category]int)
	matches := make([]interface{}, 0)
	for _, tok := range tokens {
		if tok.IsPunct || tok.IsSpace {
			continue
		}
		lower := strings.ToLower(tok.Text)
		categories, ok := p.index[lower]
		if !ok {
			categories, ok = p.index[tok.Lemma]
		}
		if !ok {
			continue
		}
		for _, c := range categories {
			hits[c]++
		}
		matches = append(matches, lower)
	}

	v := moderation.NewVerdict(ProviderLocal)
	for _, c := range moderation.Categories {
		score := 0.0
		if n := hits[c]; n > 0 {
			score = 1 - math.Pow(0.5, float64(n))
		}
		v.Set(c, score >= p.threshold, score)
	}
	v.Raw = map[string]interface{}{"matches": matches}
	return v.Finalize(), nil
}
