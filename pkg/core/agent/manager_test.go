package agent

import "testing"

func TestManagerActiveProviderSelection(t *testing.T) {
	mgr := NewManager(Config{ActiveProvider: "deepseek"})

	if got := mgr.ActiveProvider().Name(); got != "deepseek" {
		t.Errorf("expected deepseek, got %s", got)
	}
}

func TestManagerFallsBackToGemini(t *testing.T) {
	mgr := NewManager(Config{ActiveProvider: "no-such-provider"})

	if got := mgr.ActiveProvider().Name(); got != "gemini" {
		t.Errorf("expected gemini fallback, got %s", got)
	}
}

func TestManagerSwitchProvider(t *testing.T) {
	mgr := NewManager(Config{ActiveProvider: "gemini"})

	if err := mgr.SetActiveProvider("qwen"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := mgr.ActiveProviderName(); got != "qwen" {
		t.Errorf("expected qwen, got %s", got)
	}

	if err := mgr.SetActiveProvider("gpt-9"); err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestManagerProviderByName(t *testing.T) {
	mgr := NewManager(Config{})

	if mgr.ProviderByName("gemini") == nil {
		t.Error("gemini should be registered")
	}
	if mgr.ProviderByName("missing") != nil {
		t.Error("unknown names should return nil")
	}
}
