// Package quote exposes the stock lookup endpoints: raw analysis, the
// formatted investment summary and multi-symbol comparison.
package quote

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"findoc_analyst/pkg/core/docanalyzer"
	"findoc_analyst/pkg/core/market"
)

// Handler serves quote lookups through a shared market client.
type Handler struct {
	client *market.Client
}

func NewHandler(client *market.Client) *Handler {
	return &Handler{client: client}
}

// HandleQuote returns the full QuoteAnalysis for ?symbol=. Lookup failures
// come back as an error record with status 200: a missing ticker is a
// domain answer, not a server fault.
func (h *Handler) HandleQuote(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	if r.Method != "GET" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	symbol := r.URL.Query().Get("symbol")
	if symbol == "" {
		writeError(w, http.StatusBadRequest, fmt.Errorf("symbol query parameter is required"))
		return
	}

	analysis, err := h.client.GetStockAnalysis(r.Context(), symbol)
	if err != nil {
		if errors.Is(err, market.ErrNoData) {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(market.ErrorRecord(err))
			return
		}
		writeError(w, http.StatusBadGateway, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(analysis)
}

// HandleSummary returns the formatted investment summary as plain text.
func (h *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	if r.Method != "GET" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	symbol := r.URL.Query().Get("symbol")
	if symbol == "" {
		writeError(w, http.StatusBadRequest, fmt.Errorf("symbol query parameter is required"))
		return
	}

	analysis, err := h.client.GetStockAnalysis(r.Context(), symbol)
	if err != nil {
		// The summary formatter owns the error rendering.
		analysis = market.ErrorRecord(err)
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, docanalyzer.FormatSummary(analysis))
}

// HandleCompare tabulates ?symbols=a,b,c. Failing symbols are skipped.
func (h *Handler) HandleCompare(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	if r.Method != "GET" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	raw := r.URL.Query().Get("symbols")
	if raw == "" {
		writeError(w, http.StatusBadRequest, fmt.Errorf("symbols query parameter is required"))
		return
	}

	var symbols []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			symbols = append(symbols, s)
		}
	}

	rows := h.client.CompareStocks(r.Context(), symbols)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rows)
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
