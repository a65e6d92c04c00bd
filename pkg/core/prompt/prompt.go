// Package prompt provides a small prompt library for the document chat.
// Prompts ship as built-in defaults and can be overridden by JSON files
// loaded at startup, so wording changes need no code changes.
package prompt

// Template is a reusable system prompt with metadata.
type Template struct {
	ID           string `json:"id"`            // e.g. "chat.document_qa"
	Name         string `json:"name"`          // human-readable name
	Category     string `json:"category"`      // "chat", "extraction", ...
	Description  string `json:"description"`   // purpose of the prompt
	SystemPrompt string `json:"system_prompt"` // the prompt content
	Version      string `json:"version"`
}
