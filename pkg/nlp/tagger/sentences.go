package tagger

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

var abbreviations = wordSet(
	"m", "mm", "mme", "mlle", "dr", "pr", "st", "ste", "etc", "cf", "p", "av", "env", "ex", "vol", "no",
	"mr", "mrs", "ms", "prof", "inc", "ltd", "co", "corp", "vs", "e.g", "i.e", "jr", "sr", "fig", "approx",
)

// Sentences splits text on terminal punctuation. A period does not end a
// sentence after a known abbreviation or a single initial, between digits
// (3.5), or when the next word starts in lowercase.
func Sentences(text string) []string {
	text = norm.NFC.String(strings.TrimSpace(text))
	if text == "" {
		return nil
	}

	var (
		out   []string
		start int
	)
	emit := func(end int) {
		s := strings.TrimSpace(text[start:end])
		if s != "" {
			out = append(out, strings.Join(strings.Fields(s), " "))
		}
		start = end
	}

	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		switch {
		case r == '\n' && i+size < len(text) && text[i+size] == '\n':
			emit(i)
		case r == '!' || r == '?' || r == '…':
			end := consumeClosers(text, i+size)
			emit(end)
			i = end
			continue
		case r == '.':
			end := consumeClosers(text, i+size)
			if isBoundary(text, start, i, end) {
				emit(end)
				i = end
				continue
			}
		}
		i += size
	}
	emit(len(text))
	return out
}

// consumeClosers extends a boundary over repeated terminators and closing quotes.
func consumeClosers(text string, i int) int {
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if r == '.' || r == '!' || r == '?' || r == '"' || r == '»' || r == ')' || r == '”' || r == '…' {
			i += size
			continue
		}
		break
	}
	return i
}

func isBoundary(text string, sentenceStart, dot, after int) bool {
	if after >= len(text) {
		return true
	}
	next, _ := utf8.DecodeRuneInString(text[after:])
	if !unicode.IsSpace(next) {
		// 3.5, www.site.fr
		return false
	}

	word := lastWord(text[sentenceStart:dot])
	lower := strings.ToLower(word)
	if _, ok := abbreviations[lower]; ok {
		return false
	}
	if utf8.RuneCountInString(word) == 1 && unicode.IsUpper([]rune(word)[0]) {
		return false
	}

	rest := strings.TrimLeftFunc(text[after:], unicode.IsSpace)
	if rest == "" {
		return true
	}
	first, _ := utf8.DecodeRuneInString(rest)
	return !unicode.IsLower(first)
}

func lastWord(s string) string {
	s = strings.TrimRightFunc(s, func(r rune) bool { return !isWordRune(r) && r != '.' })
	i := strings.LastIndexFunc(s, func(r rune) bool { return !isWordRune(r) && r != '.' })
	return s[i+1:]
}
