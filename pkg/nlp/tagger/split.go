package tagger

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type spanKind int

const (
	spanWord spanKind = iota
	spanPunct
	spanSpace
)

type span struct {
	text   string
	offset int
	kind   spanKind
}

// split cuts NFC text into words, punctuation and line-break runs. Hyphens and
// apostrophes inside a word are kept, except French elisions (l', d', qu') and
// English contractions ('s, 't) which become their own token.
func split(text string) []span {
	var spans []span
	i := 0
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		switch {
		case unicode.IsSpace(r):
			j := i
			for j < len(text) {
				r2, s2 := utf8.DecodeRuneInString(text[j:])
				if !unicode.IsSpace(r2) {
					break
				}
				j += s2
			}
			if strings.ContainsRune(text[i:j], '\n') {
				spans = append(spans, span{text: text[i:j], offset: i, kind: spanSpace})
			}
			i = j
		case isWordRune(r):
			j := i + size
			for j < len(text) {
				r2, s2 := utf8.DecodeRuneInString(text[j:])
				if isWordRune(r2) {
					j += s2
					continue
				}
				if (r2 == '-' || isApostrophe(r2)) && j+s2 < len(text) {
					next, _ := utf8.DecodeRuneInString(text[j+s2:])
					if isWordRune(next) {
						j += s2
						continue
					}
				}
				break
			}
			spans = append(spans, splitApostrophes(text[i:j], i)...)
			i = j
		default:
			spans = append(spans, span{text: text[i : i+size], offset: i, kind: spanPunct})
			i += size
		}
	}
	return spans
}

func splitApostrophes(word string, offset int) []span {
	idx := strings.IndexAny(word, "'’")
	if idx <= 0 {
		return []span{{text: word, offset: offset, kind: spanWord}}
	}
	_, apoSize := utf8.DecodeRuneInString(word[idx:])
	left := word[:idx]
	right := word[idx+apoSize:]
	lowerLeft := strings.ToLower(left)
	lowerRight := strings.ToLower(right)

	if _, ok := elisions[lowerLeft]; ok {
		// normalize the typographic apostrophe so stopword lookups match
		head := span{text: left + "'", offset: offset, kind: spanWord}
		return append([]span{head}, splitApostrophes(right, offset+idx+apoSize)...)
	}
	if _, ok := contractions[lowerRight]; ok {
		return []span{
			{text: left, offset: offset, kind: spanWord},
			{text: "'" + right, offset: offset + idx, kind: spanWord},
		}
	}
	return []span{{text: word, offset: offset, kind: spanWord}}
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r)
}

func isApostrophe(r rune) bool {
	return r == '\'' || r == '’'
}
