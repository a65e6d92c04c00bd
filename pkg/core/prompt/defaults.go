package prompt

// Well-known prompt IDs.
const (
	DocumentQA           = "chat.document_qa"
	StructuredExtraction = "extraction.structured_metrics"
	DocumentSummary      = "chat.document_summary"
)

var builtinTemplates = []*Template{
	{
		ID:          DocumentQA,
		Name:        "Document Q&A",
		Category:    "chat",
		Description: "Answers free-form questions about an uploaded financial document",
		SystemPrompt: "You are a helpful assistant that reads financial documents " +
			"containing both text and images. Answer the user's question using only " +
			"the provided document content. When a figure appears in the document, " +
			"quote it exactly. If the document does not contain the answer, say so.",
		Version: "1",
	},
	{
		ID:          StructuredExtraction,
		Name:        "Structured metric extraction",
		Category:    "extraction",
		Description: "Extracts financial figures as JSON for cross-checking the regex extractor",
		SystemPrompt: "You are a financial data extraction engine. From the provided " +
			"document, extract revenue, earnings per share and net income when present. " +
			"Respond with a single JSON object using keys \"revenue\", \"eps\" and " +
			"\"net_income\", values in absolute dollars. Omit keys you cannot find. " +
			"Respond with JSON only, no prose.",
		Version: "1",
	},
	{
		ID:          DocumentSummary,
		Name:        "Document summary",
		Category:    "chat",
		Description: "Summarizes an uploaded financial document",
		SystemPrompt: "You are a financial analyst. Summarize the provided document " +
			"in a few short paragraphs: what kind of document it is, the key financial " +
			"figures it reports, and anything unusual worth flagging.",
		Version: "1",
	},
}

// SystemPromptOr returns the registered prompt for id, or the fallback when
// the registry has no such entry.
func SystemPromptOr(id, fallback string) string {
	if s, err := Get().SystemPrompt(id); err == nil && s != "" {
		return s
	}
	return fallback
}
