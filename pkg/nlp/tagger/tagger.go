package tagger

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

var ErrInvalidText = errors.New("text is not valid UTF-8")

// Tagger is a rule-based French/English tagger: it splits text into word and
// punctuation tokens, flags stopwords, assigns a coarse POS from closed-class
// lists and suffixes, and lemmatizes plurals.
type Tagger struct {
	lang Language
}

type Option func(*Tagger)

func WithLanguage(lang Language) Option {
	return func(t *Tagger) {
		t.lang = lang
	}
}

func New(opts ...Option) *Tagger {
	t := &Tagger{lang: Auto}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Tag tokenizes and tags text. The returned tokens reference the NFC-normalized input.
func (t *Tagger) Tag(text string) ([]Token, error) {
	if !utf8.ValidString(text) {
		return nil, ErrInvalidText
	}
	text = norm.NFC.String(text)
	spans := split(text)

	lang := t.lang
	if lang == Auto || lang == "" {
		lang = detectLanguage(spans)
	}

	tokens := make([]Token, 0, len(spans))
	sentenceStart := true
	for _, s := range spans {
		tok := Token{Text: s.text, Offset: s.offset}
		switch s.kind {
		case spanSpace:
			tok.IsSpace = true
			tok.POS = Space
			tok.Lemma = s.text
		case spanPunct:
			tok.IsPunct = true
			tok.POS = Punctuation
			tok.Lemma = s.text
			if isSentenceEnd(s.text) {
				sentenceStart = true
			}
			tokens = append(tokens, tok)
			continue
		default:
			lower := strings.ToLower(s.text)
			tok.IsStop = IsStopword(lower, lang)
			tok.Lemma = Lemmatize(lower, lang)
			tok.POS = guessPOS(s.text, lower, tok.IsStop, sentenceStart, lang)
			sentenceStart = false
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

// detectLanguage votes with stopword hits; ties go to French.
func detectLanguage(spans []span) Language {
	fr, en := 0, 0
	for _, s := range spans {
		if s.kind != spanWord {
			continue
		}
		lower := strings.ToLower(s.text)
		if _, ok := frenchStopwords[lower]; ok {
			fr++
		}
		if _, ok := englishStopwords[lower]; ok {
			en++
		}
	}
	if en > fr {
		return English
	}
	return French
}

// Detect returns the language of a raw text.
func Detect(text string) Language {
	return detectLanguage(split(norm.NFC.String(text)))
}

func guessPOS(text, lower string, stop, sentenceStart bool, lang Language) POS {
	if !hasLetter(text) {
		return Number
	}
	if stop {
		return Function
	}
	if isAdverb(lower, lang) {
		return Adverb
	}
	first, _ := utf8.DecodeRuneInString(text)
	if unicode.IsUpper(first) && (!sentenceStart || isAcronym(text)) {
		return ProperNoun
	}
	if lang == English {
		return englishOpenClass(lower)
	}
	return frenchOpenClass(lower)
}

func isAdverb(lower string, lang Language) bool {
	if lang == English {
		if _, ok := englishAdverbs[lower]; ok {
			return true
		}
		return strings.HasSuffix(lower, "ly") && utf8.RuneCountInString(lower) > 4
	}
	if _, ok := frenchAdverbs[lower]; ok {
		return true
	}
	return strings.HasSuffix(lower, "amment") || strings.HasSuffix(lower, "emment") ||
		strings.HasSuffix(lower, "ément") && utf8.RuneCountInString(lower) > 7
}

func frenchOpenClass(lower string) POS {
	switch {
	case hasAnySuffix(lower, "er", "ir") && utf8.RuneCountInString(lower) > 4:
		return Verb
	case hasAnySuffix(lower, "aient", "ons", "ez", "ait", "ent") && !hasAnySuffix(lower, "ment", "ient", "dent", "gent") && utf8.RuneCountInString(lower) > 5:
		return Verb
	case hasAnySuffix(lower, "eux", "euse", "if", "ive", "able", "ible", "el", "elle", "ique", "al", "ale", "aire", "ant", "ante"):
		return Adjective
	default:
		return Noun
	}
}

func englishOpenClass(lower string) POS {
	switch {
	case hasAnySuffix(lower, "ize", "ise", "ify", "ate") && utf8.RuneCountInString(lower) > 5:
		return Verb
	case hasAnySuffix(lower, "ed") && utf8.RuneCountInString(lower) > 4:
		return Verb
	case hasAnySuffix(lower, "ful", "ous", "ive", "able", "ible", "al", "ic", "less", "ish"):
		return Adjective
	default:
		return Noun
	}
}

func hasAnySuffix(s string, suffixes ...string) bool {
	for _, suf := range suffixes {
		if strings.HasSuffix(s, suf) {
			return true
		}
	}
	return false
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

func isAcronym(s string) bool {
	if utf8.RuneCountInString(s) < 2 {
		return false
	}
	for _, r := range s {
		if unicode.IsLetter(r) && !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

func isSentenceEnd(p string) bool {
	return p == "." || p == "!" || p == "?" || p == "…"
}
