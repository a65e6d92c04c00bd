// Package llm contains the chat-completion providers used to answer
// questions about uploaded documents. Providers share a single request
// shape carrying the system prompt, the user question, extracted document
// text and optional rasterized page images for multimodal models.
package llm

import (
	"context"
	"fmt"
	"strings"
)

// ImagePart is one PNG-encoded document page attached to a request.
type ImagePart struct {
	PageNumber int
	PNG        []byte
}

// ChatRequest is one document-grounded question.
type ChatRequest struct {
	SystemPrompt string
	Question     string
	DocumentText string      // extracted text, may be empty for image-only questions
	Images       []ImagePart // page rasters, used by multimodal providers only
	// Options carries provider-specific overrides: "model", "api_key",
	// "temperature", "response_format".
	Options map[string]interface{}
}

// Provider is the interface for all chat-completion backends.
type Provider interface {
	GenerateResponse(ctx context.Context, req ChatRequest) (string, error)
	// Name reports the provider identifier used in models.yaml.
	Name() string
}

// Config holds per-provider construction settings. The API key is resolved
// once here (env or config file) and scoped to the provider instance;
// there is no process-wide mutable key state. A per-request
// Options["api_key"] still overrides it.
type Config struct {
	APIKey string
	Model  string
}

// userPrompt assembles the text sent as the user turn: the question plus
// the extracted document content, delimited so the model does not confuse
// instructions with document text.
func userPrompt(req ChatRequest) string {
	if req.DocumentText == "" {
		return req.Question
	}

	var b strings.Builder
	fmt.Fprintf(&b, "My question: %s\n\n", req.Question)
	b.WriteString("Document content:\n---\n")
	b.WriteString(req.DocumentText)
	b.WriteString("\n---\n")
	return b.String()
}

// optString reads a string override from the request options.
func optString(req ChatRequest, key string) string {
	if val, ok := req.Options[key].(string); ok {
		return val
	}
	return ""
}

// optFloat reads a numeric override from the request options.
func optFloat(req ChatRequest, key string, fallback float64) float64 {
	if val, ok := req.Options[key].(float64); ok {
		return val
	}
	return fallback
}
