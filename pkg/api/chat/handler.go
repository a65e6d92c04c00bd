// Package chat exposes the PDF question-answering endpoints: free-form
// questions routed to the active LLM provider, and structured metric
// extraction for cross-checking the regex analyzer.
package chat

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"

	"findoc_analyst/pkg/core/agent"
	"findoc_analyst/pkg/core/docanalyzer"
	"findoc_analyst/pkg/core/llm"
	"findoc_analyst/pkg/core/pdf"
	"findoc_analyst/pkg/core/prompt"
	"findoc_analyst/pkg/core/store"
	"findoc_analyst/pkg/core/utils"
)

const maxUploadBytes = 32 << 20

// renderDPI matches the raster density the upstream chat used for page
// images.
const renderDPI = 150

// Handler serves chat requests through the configured agent manager.
type Handler struct {
	agentMgr *agent.Manager
	chats    *store.ChatRepo // nil when persistence is off
}

func NewHandler(mgr *agent.Manager, chats *store.ChatRepo) *Handler {
	return &Handler{agentMgr: mgr, chats: chats}
}

// AskResponse carries the model's answer.
type AskResponse struct {
	Answer    string `json:"answer"`
	Provider  string `json:"provider"`
	PageCount int    `json:"page_count"`
}

// HandleAsk accepts a multipart upload ("file"), a "question" field and an
// optional "include_images" flag, and returns the model's answer grounded
// in the document.
func (h *Handler) HandleAsk(w http.ResponseWriter, r *http.Request) {
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

	upload, err := readUpload(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	question := r.FormValue("question")
	if question == "" {
		writeError(w, http.StatusBadRequest, fmt.Errorf("question is required"))
		return
	}

	extracted, err := pdf.ExtractAny(upload.filename, upload.data)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, fmt.Errorf("failed to extract text: %w", err))
		return
	}

	req := llm.ChatRequest{
		SystemPrompt: prompt.SystemPromptOr(prompt.DocumentQA,
			"You are a helpful assistant that reads financial documents."),
		Question:     question,
		DocumentText: extracted.Text,
	}

	// Page images only help multimodal providers; the text-only ones drop
	// them with a log line.
	if r.FormValue("include_images") == "true" && pdf.DetectFormat(upload.filename, upload.data) == pdf.FormatPDF {
		images, err := pdf.RenderPages(upload.data, renderDPI)
		if err != nil {
			fmt.Printf("[CHAT] page rendering failed, continuing text-only: %v\n", err)
		} else {
			for _, img := range images {
				req.Images = append(req.Images, llm.ImagePart{PageNumber: img.PageNumber, PNG: img.PNG})
			}
		}
	}

	answer, err := h.agentMgr.Ask(r.Context(), req)
	if err != nil {
		writeError(w, http.StatusBadGateway, fmt.Errorf("chat completion failed: %w", err))
		return
	}
	answer = utils.CleanMarkdown(answer)

	providerName := h.agentMgr.ActiveProviderName()
	h.persist(r, providerName, question, answer)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(AskResponse{
		Answer:    answer,
		Provider:  providerName,
		PageCount: extracted.PageCount,
	})
}

// ExtractResponse compares the model's reading of the document with the
// regex extractor's.
type ExtractResponse struct {
	LLMMetrics   docanalyzer.MetricSet `json:"llm_metrics"`
	RegexMetrics docanalyzer.MetricSet `json:"regex_metrics"`
	Provider     string                `json:"provider"`
}

// HandleExtract runs the structured-extraction prompt against the upload
// and returns both metric sets side by side.
func (h *Handler) HandleExtract(w http.ResponseWriter, r *http.Request) {
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

	upload, err := readUpload(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	extracted, err := pdf.ExtractAny(upload.filename, upload.data)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, fmt.Errorf("failed to extract text: %w", err))
		return
	}

	req := llm.ChatRequest{
		SystemPrompt: prompt.SystemPromptOr(prompt.StructuredExtraction,
			"Extract revenue, eps and net_income as JSON."),
		Question:     "Extract the financial metrics from this document.",
		DocumentText: extracted.Text,
		Options: map[string]interface{}{
			"response_format": map[string]interface{}{"type": "json_object"},
		},
	}

	raw, err := h.agentMgr.Ask(r.Context(), req)
	if err != nil {
		writeError(w, http.StatusBadGateway, fmt.Errorf("chat completion failed: %w", err))
		return
	}

	var llmMetrics docanalyzer.MetricSet
	if err := utils.DecodeLenient(raw, &llmMetrics); err != nil {
		writeError(w, http.StatusBadGateway, fmt.Errorf("model returned undecodable metrics: %w", err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ExtractResponse{
		LLMMetrics:   llmMetrics,
		RegexMetrics: docanalyzer.ExtractMetrics(extracted.Text),
		Provider:     h.agentMgr.ActiveProviderName(),
	})
}

type uploadedFile struct {
	filename string
	data     []byte
}

func readUpload(r *http.Request) (*uploadedFile, error) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return nil, fmt.Errorf("invalid multipart form: %w", err)
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, fmt.Errorf("missing file field: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	return &uploadedFile{filename: header.Filename, data: data}, nil
}

func (h *Handler) persist(r *http.Request, provider, question, answer string) {
	if h.chats == nil {
		return
	}

	msg := store.ChatMessage{Provider: provider, Question: question, Answer: answer}
	if idStr := r.FormValue("analysis_id"); idStr != "" {
		if id, err := uuid.Parse(idStr); err == nil {
			msg.AnalysisID = id
		}
	}
	if _, err := h.chats.Save(r.Context(), &msg); err != nil {
		fmt.Printf("[CHAT] failed to persist exchange: %v\n", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
