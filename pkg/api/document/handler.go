// Package document exposes the upload-and-analyze endpoint: extract text
// from the uploaded file, run the text analyzer and return the findings.
package document

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"findoc_analyst/pkg/core/docanalyzer"
	"findoc_analyst/pkg/core/pdf"
	"findoc_analyst/pkg/core/store"
)

// maxUploadBytes bounds the multipart form we are willing to buffer.
const maxUploadBytes = 32 << 20

// Handler serves document analysis requests.
type Handler struct {
	repo *store.AnalysisRepo // nil when persistence is off
}

func NewHandler(repo *store.AnalysisRepo) *Handler {
	return &Handler{repo: repo}
}

// AnalyzeResponse is the JSON shape returned to the UI.
type AnalyzeResponse struct {
	Filename     string                   `json:"filename"`
	DocumentType docanalyzer.DocumentType `json:"document_type"`
	Metrics      docanalyzer.MetricSet    `json:"metrics"`
	Ratios       docanalyzer.RatioSet     `json:"ratios"`
	Dates        []string                 `json:"dates"`
	PageCount    int                      `json:"page_count"`
	Preview      string                   `json:"preview"`
	AnalysisID   string                   `json:"analysis_id,omitempty"`
}

// HandleAnalyze accepts a multipart upload ("file") and returns the full
// analysis of its text.
func (h *Handler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
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

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid multipart form: %w", err))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("missing file field: %w", err))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Errorf("failed to read upload: %w", err))
		return
	}

	extracted, err := pdf.ExtractAny(header.Filename, data)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, fmt.Errorf("failed to extract text: %w", err))
		return
	}

	metrics := docanalyzer.ExtractMetrics(extracted.Text)
	resp := AnalyzeResponse{
		Filename:     header.Filename,
		DocumentType: docanalyzer.ClassifyDocument(extracted.Text),
		Metrics:      metrics,
		Ratios:       docanalyzer.ComputeRatios(metrics),
		Dates:        docanalyzer.ExtractDates(extracted.Text),
		PageCount:    extracted.PageCount,
		Preview:      preview(extracted.Text, 500),
	}

	if h.repo != nil {
		id, err := h.repo.Save(r.Context(), &store.DocumentAnalysis{
			Filename:     resp.Filename,
			DocumentType: resp.DocumentType,
			PageCount:    resp.PageCount,
			Metrics:      resp.Metrics,
			Ratios:       resp.Ratios,
			Dates:        resp.Dates,
		})
		if err != nil {
			fmt.Printf("[DOCUMENT] failed to persist analysis: %v\n", err)
		} else {
			resp.AnalysisID = id.String()
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// HandleHistory lists recently stored analyses.
func (h *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	if r.Method != "GET" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if h.repo == nil {
		writeError(w, http.StatusServiceUnavailable, fmt.Errorf("persistence not configured"))
		return
	}

	analyses, err := h.repo.Recent(r.Context(), 20)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(analyses)
}

func preview(text string, n int) string {
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n]) + "..."
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
