package prompt

import (
	"strings"
	"testing"
)

func TestBuiltinsRegistered(t *testing.T) {
	for _, id := range []string{DocumentQA, StructuredExtraction, DocumentSummary} {
		s, err := Get().SystemPrompt(id)
		if err != nil {
			t.Errorf("builtin %s missing: %v", id, err)
		}
		if s == "" {
			t.Errorf("builtin %s has empty system prompt", id)
		}
	}
}

func TestStructuredExtractionMentionsJSON(t *testing.T) {
	// The Gemini provider switches to JSON response mode on this keyword.
	s, err := Get().SystemPrompt(StructuredExtraction)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(strings.ToLower(s), "json") {
		t.Error("extraction prompt must ask for JSON output")
	}
}

func TestRegisterOverridesBuiltin(t *testing.T) {
	err := Get().Register(&Template{ID: DocumentSummary, SystemPrompt: "override"})
	if err != nil {
		t.Fatal(err)
	}
	s, _ := Get().SystemPrompt(DocumentSummary)
	if s != "override" {
		t.Errorf("expected override, got %q", s)
	}

	// Restore for other tests.
	for _, tpl := range builtinTemplates {
		if tpl.ID == DocumentSummary {
			Get().Register(tpl)
		}
	}
}

func TestSystemPromptOrFallback(t *testing.T) {
	if got := SystemPromptOr("no.such.id", "fallback"); got != "fallback" {
		t.Errorf("expected fallback, got %q", got)
	}
	if got := SystemPromptOr(DocumentQA, "fallback"); got == "fallback" {
		t.Error("expected the registered prompt, not the fallback")
	}
}

func TestRegisterRejectsEmptyID(t *testing.T) {
	if err := Get().Register(&Template{}); err == nil {
		t.Error("expected error for empty ID")
	}
}
