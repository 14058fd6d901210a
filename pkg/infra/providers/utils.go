package providers

import (
	"strconv"
	"strings"
)

const instructionsHeader = "[Instructions]\n"

// FormatInstructions numbers the non-blank generation rules under a fixed
// header so every provider sees the same prompt block.
func FormatInstructions(instr []string) string {
	var b strings.Builder
	b.WriteString(instructionsHeader)
	n := 0
	for _, rule := range instr {
		rule = strings.TrimSpace(rule)
		if rule == "" {
			continue
		}
		n++
		b.WriteString(strconv.Itoa(n))
		b.WriteString(". ")
		b.WriteString(rule)
		b.WriteByte('\n')
	}
	return b.String()
}

// StripCodeFence removes a surrounding ```json fence some models add.
func StripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 && !strings.ContainsAny(s[:i], "{[\"") {
		s = s[i+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
