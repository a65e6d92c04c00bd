// Package pdf handles uploaded document ingestion: PDF text extraction,
// page rasterization for multimodal LLM questions, and HTML/plain-text
// fallbacks for non-PDF uploads.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"
)

// ExtractResult carries everything pulled from a document in one pass.
// PageCount is recorded while the reader is live so callers never have to
// touch a released document handle to report it.
type ExtractResult struct {
	Text      string   `json:"text"`
	Pages     []string `json:"pages,omitempty"`
	PageCount int      `json:"page_count"`
}

// ExtractText extracts plain text from an in-memory PDF.
func ExtractText(data []byte) (*ExtractResult, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}

	result := &ExtractResult{PageCount: reader.NumPage()}

	var buf bytes.Buffer
	content, err := reader.GetPlainText()
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF content: %w", err)
	}
	if _, err := buf.ReadFrom(content); err != nil {
		return nil, fmt.Errorf("failed to buffer PDF text: %w", err)
	}
	result.Text = buf.String()

	// Per-page text for callers that want page-scoped context. Pages are
	// 1-indexed in the reader.
	for i := 1; i <= result.PageCount; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			result.Pages = append(result.Pages, "")
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// A single unreadable page should not sink the document.
			result.Pages = append(result.Pages, "")
			continue
		}
		result.Pages = append(result.Pages, text)
	}

	return result, nil
}
