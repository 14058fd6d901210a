package summary_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/Setharkk/Skyent-dev/pkg/nlp/summary"
	"github.com/Setharkk/Skyent-dev/pkg/nlp/tagger"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const article = "Le marketing digital transforme les entreprises. " +
	"Les campagnes sociales touchent de nouveaux clients. " +
	"Le marketing digital mesure chaque campagne sociale. " +
	"La météo. " +
	"Les entreprises investissent dans le marketing digital et les campagnes sociales."

type failingRanker struct{}

func (failingRanker) Rank([]string) ([]float64, error) { return nil, errors.New("ranker down") }

type panickingRanker struct{}

func (panickingRanker) Rank([]string) ([]float64, error) { panic("boom") }

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestGenerate_KeepsSourceOrder(t *testing.T) {
	g := summary.NewGenerator(quietLogger())
	out := g.Generate(article, 2)
	require.NotEmpty(t, out)

	all := tagger.Sentences(article)
	var picked []int
	for i, s := range all {
		if strings.Contains(out, s) {
			picked = append(picked, i)
		}
	}
	require.Len(t, picked, 2)
	assert.Less(t, picked[0], picked[1])
	assert.NotContains(t, out, "météo")
}

func TestGenerate_ShortTextReturnedWhole(t *testing.T) {
	g := summary.NewGenerator(quietLogger())
	assert.Equal(t, "Une phrase. Deux phrases.", g.Generate("Une phrase. Deux phrases.", 5))
}

func TestGenerate_EmptyAndNonPositive(t *testing.T) {
	g := summary.NewGenerator(quietLogger())
	assert.Equal(t, "", g.Generate("", 3))
	assert.Equal(t, "", g.Generate("   \n\t ", 3))
	assert.Equal(t, "", g.Generate(article, 0))
	assert.Equal(t, "", g.Generate(article, -1))
}

func TestGenerate_FallbackOnRankerFailure(t *testing.T) {
	text := "Premier point. Deuxième point. Troisième point. Quatrième point"
	for _, r := range []summary.Ranker{failingRanker{}, panickingRanker{}} {
		g := summary.NewGenerator(quietLogger(), summary.WithRanker(r))
		got := g.Generate(text, 2)
		assert.Equal(t, strings.Join(strings.Split(text, ". ")[:2], ". ")+".", got)
		assert.Equal(t, "Premier point. Deuxième point.", got)
	}
}

func TestGenerate_FallbackOnSplitterPanic(t *testing.T) {
	g := summary.NewGenerator(quietLogger(), summary.WithSplitter(func(string) []string { panic("tokenizer") }))
	assert.Equal(t, "Un. Deux.", g.Generate("Un. Deux. Trois", 2))
}

func TestFallback(t *testing.T) {
	assert.Equal(t, "Seule phrase.", summary.Fallback("Seule phrase", 3))
	assert.Equal(t, "A. B.", summary.Fallback("A. B. C", 2))
	assert.Equal(t, "", summary.Fallback("", 2))
	assert.Equal(t, "", summary.Fallback(" \n ", 2))
}

func TestLSARanker(t *testing.T) {
	r := summary.NewLSARanker(tagger.New(tagger.WithLanguage(tagger.French)))
	scores, err := r.Rank(tagger.Sentences(article))
	require.NoError(t, err)
	require.Len(t, scores, 5)
	for _, s := range scores {
		assert.GreaterOrEqual(t, s, 0.0)
	}
	assert.Less(t, scores[3], scores[4])

	_, err = r.Rank([]string{"le la les", "et ou"})
	assert.ErrorIs(t, err, summary.ErrNoTerms)
}
