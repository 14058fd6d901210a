package tagger_test

import (
	"testing"

	"github.com/Setharkk/Skyent-dev/pkg/nlp/tagger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func texts(tokens []tagger.Token) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, t.Text)
	}
	return out
}

func TestTag_FrenchSentence(t *testing.T) {
	tg := tagger.New()
	tokens, err := tg.Tag("Le marketing digital transforme les entreprises modernes grâce au marketing et à l'innovation.")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Le", "marketing", "digital", "transforme", "les", "entreprises", "modernes", "grâce", "au",
		"marketing", "et", "à", "l'", "innovation", ".",
	}, texts(tokens))

	byText := make(map[string]tagger.Token)
	for _, tok := range tokens {
		byText[tok.Text] = tok
	}
	assert.True(t, byText["Le"].IsStop)
	assert.True(t, byText["l'"].IsStop)
	assert.True(t, byText["."].IsPunct)
	assert.Equal(t, "entreprise", byText["entreprises"].Lemma)
	assert.Equal(t, "moderne", byText["modernes"].Lemma)
	assert.Equal(t, tagger.Adjective, byText["digital"].POS)
	assert.True(t, byText["innovation"].POS.IsContent())
}

func TestTag_TypographicApostropheAndHyphen(t *testing.T) {
	tokens, err := tagger.New(tagger.WithLanguage(tagger.French)).Tag("L’e-commerce d’aujourd'hui")
	require.NoError(t, err)
	assert.Equal(t, []string{"L'", "e-commerce", "d'", "aujourd'hui"}, texts(tokens))
	assert.Equal(t, tagger.Adverb, tokens[3].POS)
}

func TestTag_EnglishContractionsAndProperNouns(t *testing.T) {
	tokens, err := tagger.New().Tag("The company's campaigns reached Paris and the AI teams quickly.")
	require.NoError(t, err)

	byText := make(map[string]tagger.Token)
	for _, tok := range tokens {
		byText[tok.Text] = tok
	}
	assert.True(t, byText["'s"].IsStop)
	assert.Equal(t, "campaign", byText["campaigns"].Lemma)
	assert.Equal(t, tagger.ProperNoun, byText["Paris"].POS)
	assert.Equal(t, tagger.ProperNoun, byText["AI"].POS)
	assert.Equal(t, tagger.Adverb, byText["quickly"].POS)
	assert.Equal(t, tagger.Verb, byText["reached"].POS)
}

func TestTag_NumbersAndSpaces(t *testing.T) {
	tokens, err := tagger.New().Tag("2024\n\nCroissance 15 %")
	require.NoError(t, err)
	assert.Equal(t, tagger.Number, tokens[0].POS)
	assert.True(t, tokens[1].IsSpace)
	assert.Equal(t, tagger.Number, tokens[3].POS)
	assert.True(t, tokens[4].IsPunct)
}

func TestTag_InvalidUTF8(t *testing.T) {
	_, err := tagger.New().Tag("bad \xff text")
	assert.ErrorIs(t, err, tagger.ErrInvalidText)
}

func TestDetect(t *testing.T) {
	assert.Equal(t, tagger.English, tagger.Detect("The quick brown fox jumps over the lazy dog and the cat"))
	assert.Equal(t, tagger.French, tagger.Detect("Le chat dort sur le canapé et les enfants jouent"))
	assert.Equal(t, tagger.French, tagger.Detect(""))
}

func TestLemmatize(t *testing.T) {
	tests := []struct {
		word string
		lang tagger.Language
		want string
	}{
		{"journaux", tagger.French, "journal"},
		{"réseaux", tagger.French, "réseau"},
		{"prix", tagger.French, "prix"},
		{"français", tagger.French, "français"},
		{"clients", tagger.French, "client"},
		{"companies", tagger.English, "company"},
		{"businesses", tagger.English, "business"},
		{"analysis", tagger.English, "analysis"},
		{"brands", tagger.English, "brand"},
		{"les", tagger.French, "les"},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, tagger.Lemmatize(tt.word, tt.lang))
		})
	}
}

func TestSentences(t *testing.T) {
	got := tagger.Sentences("Bonjour M. Dupont. Le prix est de 3.5 euros! Vraiment? Oui, etc. et encore.\n\nNouveau paragraphe")
	assert.Equal(t, []string{
		"Bonjour M. Dupont.",
		"Le prix est de 3.5 euros!",
		"Vraiment?",
		"Oui, etc. et encore.",
		"Nouveau paragraphe",
	}, got)

	assert.Empty(t, tagger.Sentences("   "))
	assert.Equal(t, []string{"Une seule phrase sans point"}, tagger.Sentences("Une seule phrase sans point"))
}

func TestFold(t *testing.T) {
	assert.Equal(t, "evenement", tagger.Fold("Événement"))
	assert.Equal(t, "requete de test", tagger.Fold("Requête de TEST"))
	assert.Equal(t, "marketing", tagger.Fold("marketing"))
}
