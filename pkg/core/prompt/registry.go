package prompt

import (
	"fmt"
	"sync"
)

// Registry holds all loaded prompt templates.
type Registry struct {
	prompts map[string]*Template
	mu      sync.RWMutex
}

var globalRegistry *Registry
var once sync.Once

// Get returns the global registry singleton, pre-seeded with the built-in
// defaults.
func Get() *Registry {
	once.Do(func() {
		globalRegistry = &Registry{prompts: make(map[string]*Template)}
		for _, t := range builtinTemplates {
			globalRegistry.prompts[t.ID] = t
		}
	})
	return globalRegistry
}

// Register adds or replaces a template.
func (r *Registry) Register(t *Template) error {
	if t.ID == "" {
		return fmt.Errorf("prompt ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.prompts[t.ID] = t
	return nil
}

// SystemPrompt returns the system prompt string for an ID.
func (r *Registry) SystemPrompt(id string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if t, ok := r.prompts[id]; ok {
		return t.SystemPrompt, nil
	}
	return "", fmt.Errorf("prompt not found: %s", id)
}

// List returns all registered prompt IDs.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.prompts))
	for id := range r.prompts {
		ids = append(ids, id)
	}
	return ids
}

// Count reports the number of registered templates.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.prompts)
}
