package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractHTMLText pulls visible text out of an HTML document, dropping
// script and style content. Used for filings downloaded as HTML rather
// than PDF.
func ExtractHTMLText(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("script, style, noscript").Remove()

	text := doc.Find("body").Text()
	if text == "" {
		text = doc.Text()
	}

	// Collapse runs of whitespace left behind by removed markup.
	fields := strings.Fields(text)
	return strings.Join(fields, " "), nil
}
