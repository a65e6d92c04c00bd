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

// QwenProvider calls the native DashScope text-generation endpoint. Like
// DeepSeek it is wired text-only here.
type QwenProvider struct {
	cfg Config
}

var _ Provider = (*QwenProvider)(nil)

func NewQwenProvider(cfg Config) *QwenProvider {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("DASHSCOPE_API_KEY")
	}
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("QWEN_API_KEY")
	}
	if cfg.Model == "" {
		cfg.Model = "qwen-max"
	}
	return &QwenProvider{cfg: cfg}
}

func (p *QwenProvider) Name() string { return "qwen" }

func (p *QwenProvider) GenerateResponse(ctx context.Context, req ChatRequest) (string, error) {
	apiKey := p.cfg.APIKey
	if val := optString(req, "api_key"); val != "" {
		apiKey = val
	}
	if apiKey == "" {
		return "", fmt.Errorf("DASHSCOPE_API_KEY or QWEN_API_KEY not configured")
	}

	model := p.cfg.Model
	if val := optString(req, "model"); val != "" {
		model = val
	}

	reqBody := map[string]interface{}{
		"model": model,
		"input": map[string]interface{}{
			"messages": []map[string]string{
				{"role": "system", "content": req.SystemPrompt},
				{"role": "user", "content": userPrompt(req)},
			},
		},
		"parameters": map[string]interface{}{
			"result_format": "message",
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal qwen request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST",
		"https://dashscope.aliyuncs.com/api/v1/services/aigc/text-generation/generation",
		bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := http.DefaultClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("qwen api call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("qwen api returned status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var result struct {
		Output struct {
			Choices []struct {
				Message struct {
					Content string `json:"content"`
				} `json:"message"`
			} `json:"choices"`
			Text string `json:"text"`
		} `json:"output"`
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode qwen response: %w", err)
	}
	if result.Code != "" {
		return "", fmt.Errorf("qwen api error: %s - %s", result.Code, result.Message)
	}

	if len(result.Output.Choices) > 0 {
		return result.Output.Choices[0].Message.Content, nil
	}
	if result.Output.Text != "" {
		return result.Output.Text, nil
	}
	return "", fmt.Errorf("qwen returned empty output")
}
