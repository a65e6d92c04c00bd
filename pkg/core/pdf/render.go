package pdf

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/png"

	"github.com/gen2brain/go-fitz"
)

// PageImage is one rasterized page, PNG-encoded.
type PageImage struct {
	PageNumber int    `json:"page_number"` // 1-indexed
	PNG        []byte `json:"-"`
}

// DataURL returns the page as a base64 data URL suitable for inline image
// payloads to a chat API.
func (p PageImage) DataURL() string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(p.PNG)
}

// RenderPages rasterizes every page of an in-memory PDF to PNG at the given
// DPI (150 is the usual choice for LLM vision input). The page count is
// taken while the document is open; the handle is released on return.
func RenderPages(data []byte, dpi float64) ([]PageImage, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF for rendering: %w", err)
	}
	defer doc.Close()

	pageCount := doc.NumPage()
	images := make([]PageImage, 0, pageCount)

	for i := 0; i < pageCount; i++ {
		img, err := doc.ImageDPI(i, dpi)
		if err != nil {
			return nil, fmt.Errorf("failed to render page %d: %w", i+1, err)
		}

		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("failed to encode page %d: %w", i+1, err)
		}

		images = append(images, PageImage{PageNumber: i + 1, PNG: buf.Bytes()})
	}

	return images, nil
}
