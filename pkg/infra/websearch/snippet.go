package websearch

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

const maxSnippetRunes = 300

// CleanSnippet strips markup from a result extract: script and style bodies
// are dropped, entities decoded and whitespace collapsed. Long extracts are
// cut on a word boundary.
func CleanSnippet(content string) string {
	if !strings.ContainsAny(content, "<&") {
		return truncateWords(strings.Join(strings.Fields(content), " "))
	}

	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return truncateWords(strings.Join(strings.Fields(content), " "))
	}

	var text strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if n.Data == "script" || n.Data == "style" || n.Data == "noscript" {
				return
			}
		}
		if n.Type == html.TextNode {
			text.WriteString(n.Data)
			text.WriteString(" ")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(doc)

	return truncateWords(strings.Join(strings.Fields(text.String()), " "))
}

func truncateWords(s string) string {
	if utf8.RuneCountInString(s) <= maxSnippetRunes {
		return s
	}
	cut := string([]rune(s)[:maxSnippetRunes])
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return cut + "..."
}
