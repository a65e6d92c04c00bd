package pdf

import (
	"bytes"
	"strings"
)

// Format identifies the uploaded document's container format.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatHTML Format = "html"
	FormatText Format = "text"
)

// DetectFormat decides the document format from the filename extension,
// falling back to content sniffing when the extension is inconclusive.
func DetectFormat(filename string, data []byte) Format {
	lower := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(lower, ".pdf"):
		return FormatPDF
	case strings.HasSuffix(lower, ".html"), strings.HasSuffix(lower, ".htm"):
		return FormatHTML
	case strings.HasSuffix(lower, ".txt"), strings.HasSuffix(lower, ".md"):
		return FormatText
	}

	if bytes.HasPrefix(data, []byte("%PDF-")) {
		return FormatPDF
	}
	trimmed := bytes.TrimSpace(data)
	if bytes.HasPrefix(trimmed, []byte("<")) {
		return FormatHTML
	}
	return FormatText
}

// ExtractAny extracts text from data in whatever format it is in. PDF
// uploads also report their page count; other formats report zero pages.
func ExtractAny(filename string, data []byte) (*ExtractResult, error) {
	switch DetectFormat(filename, data) {
	case FormatPDF:
		return ExtractText(data)
	case FormatHTML:
		text, err := ExtractHTMLText(data)
		if err != nil {
			return nil, err
		}
		return &ExtractResult{Text: text}, nil
	default:
		return &ExtractResult{Text: string(data)}, nil
	}
}
