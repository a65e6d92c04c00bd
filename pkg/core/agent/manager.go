// Package agent manages the configured chat providers and routes document
// questions to the active one.
package agent

import (
	"context"
	"fmt"

	"findoc_analyst/pkg/core/llm"
)

// Config mirrors config/models.yaml.
type Config struct {
	ActiveProvider string                    `yaml:"active_provider"`
	Providers      map[string]ProviderConfig `yaml:"providers"`
}

// ProviderConfig is the per-provider block in models.yaml.
type ProviderConfig struct {
	Model       string `yaml:"model"`
	Description string `yaml:"description"`
}

// Manager holds the provider registry and the active selection.
type Manager struct {
	config    Config
	providers map[string]llm.Provider
}

// NewManager builds the provider registry from config. API keys come from
// the environment at construction; models come from the yaml block.
func NewManager(config Config) *Manager {
	modelFor := func(name string) string {
		if pc, ok := config.Providers[name]; ok {
			return pc.Model
		}
		return ""
	}

	return &Manager{
		config: config,
		providers: map[string]llm.Provider{
			"gemini":   llm.NewGeminiProvider(llm.Config{Model: modelFor("gemini")}),
			"deepseek": llm.NewDeepSeekProvider(llm.Config{Model: modelFor("deepseek")}),
			"qwen":     llm.NewQwenProvider(llm.Config{Model: modelFor("qwen")}),
		},
	}
}

// ActiveProvider returns the currently selected provider, falling back to
// gemini when the configured name is unknown.
func (m *Manager) ActiveProvider() llm.Provider {
	if p, ok := m.providers[m.config.ActiveProvider]; ok {
		return p
	}
	return m.providers["gemini"]
}

// ProviderByName retrieves a provider by its registry name, or nil.
func (m *Manager) ProviderByName(name string) llm.Provider {
	return m.providers[name]
}

// Ask routes a chat request to the active provider.
func (m *Manager) Ask(ctx context.Context, req llm.ChatRequest) (string, error) {
	return m.ActiveProvider().GenerateResponse(ctx, req)
}

// SetActiveProvider switches the global active provider at runtime.
func (m *Manager) SetActiveProvider(name string) error {
	if _, ok := m.providers[name]; !ok {
		return fmt.Errorf("provider %s not found", name)
	}
	m.config.ActiveProvider = name
	fmt.Printf("[AGENT] active provider set to: %s\n", name)
	return nil
}

// ActiveProviderName reports the configured provider name.
func (m *Manager) ActiveProviderName() string {
	return m.config.ActiveProvider
}

// ProviderNames lists all registered providers.
func (m *Manager) ProviderNames() []string {
	names := make([]string, 0, len(m.providers))
	for name := range m.providers {
		names = append(names, name)
	}
	return names
}
