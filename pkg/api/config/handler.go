// Package config exposes the provider configuration endpoints: list the
// registered chat providers and switch the active one at runtime.
package config

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"

	"findoc_analyst/pkg/core/agent"
)

// Handler serves provider configuration requests.
type Handler struct {
	agentMgr *agent.Manager
}

func NewHandler(mgr *agent.Manager) *Handler {
	return &Handler{agentMgr: mgr}
}

// Response describes the current provider selection.
type Response struct {
	ActiveProvider string   `json:"active_provider"`
	Available      []string `json:"available"`
}

// SwitchRequest names the provider to activate.
type SwitchRequest struct {
	Provider string `json:"provider"`
}

// HandleConfig returns the active provider and the registry contents.
func (h *Handler) HandleConfig(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	if r.Method != "GET" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	available := h.agentMgr.ProviderNames()
	sort.Strings(available)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Response{
		ActiveProvider: h.agentMgr.ActiveProviderName(),
		Available:      available,
	})
}

// HandleSwitch activates the named provider for subsequent chat requests.
func (h *Handler) HandleSwitch(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != "POST" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req SwitchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	if req.Provider == "" {
		writeError(w, http.StatusBadRequest, fmt.Errorf("provider is required"))
		return
	}

	if err := h.agentMgr.SetActiveProvider(req.Provider); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"message": fmt.Sprintf("Success: Switched to %s", req.Provider),
	})
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
