package generation

import (
	"regexp"

	"github.com/valyala/fastjson"
)

var jsonBlock = regexp.MustCompile(`(?s)\{.*\}`)

// parseReply reads the JSON object embedded in a model answer. Answers without
// a usable object are kept verbatim as the content.
func parseReply(text string) *reply {
	raw := &reply{Content: text, Variants: []string{}, Hashtags: []string{}}

	block := jsonBlock.FindString(text)
	if block == "" {
		return raw
	}
	var p fastjson.Parser
	v, err := p.Parse(block)
	if err != nil {
		return raw
	}
	content := string(v.GetStringBytes("content"))
	if content == "" {
		return raw
	}
	return &reply{
		Content:  content,
		Variants: stringArray(v, "variants"),
		Hashtags: stringArray(v, "hashtags"),
		Title:    string(v.GetStringBytes("title")),
		Summary:  string(v.GetStringBytes("summary")),
	}
}

func stringArray(v *fastjson.Value, key string) []string {
	out := []string{}
	for _, item := range v.GetArray(key) {
		if b, err := item.StringBytes(); err == nil && len(b) > 0 {
			out = append(out, string(b))
		}
	}
	return out
}
