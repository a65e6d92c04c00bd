package utils

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/text"
)

// CleanMarkdown strips an outer markdown code fence from a model response,
// leaving the payload ready for rendering or parsing.
func CleanMarkdown(input string) string {
	cleaned := strings.TrimSpace(input)

	if strings.HasPrefix(cleaned, "```") && strings.HasSuffix(cleaned, "```") {
		cleaned = strings.TrimSuffix(cleaned, "```")
		cleaned = strings.TrimPrefix(cleaned, "```")
		// Drop a language tag like "json" or "markdown" on the fence line.
		if idx := strings.IndexByte(cleaned, '\n'); idx >= 0 {
			first := strings.TrimSpace(cleaned[:idx])
			if first != "" && !strings.ContainsAny(first, " \t{[") {
				cleaned = cleaned[idx+1:]
			}
		}
		cleaned = strings.TrimSpace(cleaned)
	}

	return cleaned
}

// ValidMarkdown reports whether the input parses as Markdown. Goldmark is
// very permissive, so this only guards against truly broken output.
func ValidMarkdown(input string) bool {
	parser := goldmark.DefaultParser()
	reader := text.NewReader([]byte(input))
	return parser.Parse(reader) != nil
}
