package llm

import (
	"context"
	"fmt"
	"os"
	"strings"

	"google.golang.org/genai"
)

// GeminiProvider answers document questions through the Gemini API using
// the official GenAI SDK. It is the only multimodal provider here: page
// rasters are attached as inline PNG parts.
type GeminiProvider struct {
	cfg Config
}

var _ Provider = (*GeminiProvider)(nil)

// NewGeminiProvider builds a provider whose API key is resolved at
// construction time (config value first, GEMINI_API_KEY as fallback).
func NewGeminiProvider(cfg Config) *GeminiProvider {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.Model == "" {
		cfg.Model = "gemini-2.0-flash-exp"
	}
	return &GeminiProvider{cfg: cfg}
}

func (p *GeminiProvider) Name() string { return "gemini" }

// GenerateResponse sends a generateContent request with the document text
// and any attached page images.
func (p *GeminiProvider) GenerateResponse(ctx context.Context, req ChatRequest) (string, error) {
	apiKey := p.cfg.APIKey
	if val := optString(req, "api_key"); val != "" {
		apiKey = val
	}
	if apiKey == "" {
		return "", fmt.Errorf("GEMINI_API_KEY not configured")
	}

	model := p.cfg.Model
	if val := optString(req, "model"); val != "" {
		model = val
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create GenAI client: %w", err)
	}

	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(optFloat(req, "temperature", 0.3))),
	}

	// JSON mode: explicit request option, or a heuristic on the prompts.
	if val, ok := req.Options["response_format"].(map[string]interface{}); ok {
		if val["type"] == "json_object" {
			config.ResponseMIMEType = "application/json"
		}
	} else if strings.Contains(strings.ToLower(req.SystemPrompt), "json") {
		config.ResponseMIMEType = "application/json"
	}

	if req.SystemPrompt != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.SystemPrompt}},
		}
	}

	parts := []*genai.Part{{Text: userPrompt(req)}}
	for _, img := range req.Images {
		parts = append(parts, &genai.Part{
			InlineData: &genai.Blob{MIMEType: "image/png", Data: img.PNG},
		})
	}
	contents := []*genai.Content{{Role: "user", Parts: parts}}

	result, err := client.Models.GenerateContent(ctx, model, contents, config)
	if err != nil {
		return "", fmt.Errorf("gemini generation failed: %w", err)
	}

	return result.Text(), nil
}
