// Package llmjson extracts machine-readable JSON from LLM chat replies,
// which often arrive wrapped in markdown code fences or surrounded by
// prose.
package llmjson

import (
	"regexp"
	"strings"
)

var fenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*\n?(.*?)\\s*```")

// Extract returns the JSON payload embedded in an LLM reply. It strips
// markdown code fences and, failing that, falls back to the outermost
// array or object literal in the text.
func Extract(output []byte) []byte {
	s := strings.TrimSpace(string(output))

	if strings.HasPrefix(s, "```") {
		if m := fenceRe.FindStringSubmatch(s); len(m) > 1 {
			s = strings.TrimSpace(m[1])
		}
	}

	if strings.HasPrefix(s, "[") || strings.HasPrefix(s, "{") {
		return []byte(s)
	}

	// Prose around the payload: take the outermost bracketed span.
	for _, pair := range [][2]string{{"[", "]"}, {"{", "}"}} {
		start := strings.Index(s, pair[0])
		end := strings.LastIndex(s, pair[1])
		if start >= 0 && end > start {
			return []byte(s[start : end+1])
		}
	}

	return []byte(s)
}
