package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
)

// DeepSeekProvider calls the DeepSeek chat-completions endpoint directly.
// DeepSeek is text-only: attached page images are dropped and the model
// works from the extracted document text alone.
type DeepSeekProvider struct {
	cfg Config
}

var _ Provider = (*DeepSeekProvider)(nil)

func NewDeepSeekProvider(cfg Config) *DeepSeekProvider {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("DEEPSEEK_API_KEY")
	}
	if cfg.Model == "" {
		cfg.Model = "deepseek-chat"
	}
	return &DeepSeekProvider{cfg: cfg}
}

func (p *DeepSeekProvider) Name() string { return "deepseek" }

type deepSeekMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type deepSeekRequest struct {
	Model          string            `json:"model"`
	Messages       []deepSeekMessage `json:"messages"`
	MaxTokens      int               `json:"max_tokens"`
	Temperature    float64           `json:"temperature"`
	Stream         bool              `json:"stream"`
	ResponseFormat struct {
		Type string `json:"type"`
	} `json:"response_format"`
}

type deepSeekResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (p *DeepSeekProvider) GenerateResponse(ctx context.Context, req ChatRequest) (string, error) {
	apiKey := p.cfg.APIKey
	if val := optString(req, "api_key"); val != "" {
		apiKey = val
	}
	if apiKey == "" {
		return "", fmt.Errorf("DEEPSEEK_API_KEY not configured")
	}

	model := p.cfg.Model
	if val := optString(req, "model"); val != "" {
		model = val
	}

	if len(req.Images) > 0 {
		fmt.Printf("[LLM] deepseek is text-only, dropping %d page image(s)\n", len(req.Images))
	}

	body := deepSeekRequest{
		Model: model,
		Messages: []deepSeekMessage{
			{Role: "system", Content: req.SystemPrompt},
			{Role: "user", Content: userPrompt(req)},
		},
		MaxTokens:   4096,
		Temperature: optFloat(req, "temperature", 0.3),
	}
	body.ResponseFormat.Type = "text"
	if val, ok := req.Options["response_format"].(map[string]interface{}); ok {
		if t, ok := val["type"].(string); ok && t != "" {
			body.ResponseFormat.Type = t
		}
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to marshal deepseek request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST",
		"https://api.deepseek.com/chat/completions", bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := http.DefaultClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("deepseek api call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("deepseek api returned status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var result deepSeekResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode deepseek response: %w", err)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("deepseek returned no choices")
	}

	return result.Choices[0].Message.Content, nil
}
