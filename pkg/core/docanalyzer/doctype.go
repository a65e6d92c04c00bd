package docanalyzer

import "strings"

// classificationRule pairs a keyword group with its label. Rules are
// evaluated top to bottom; the first group with any keyword present in the
// lowercased text decides the label, regardless of how many later groups
// also match.
type classificationRule struct {
	keywords []string
	label    DocumentType
}

var classificationRules = []classificationRule{
	{[]string{"10-k", "annual report", "form 10-k"}, DocTypeAnnualReport},
	{[]string{"10-q", "quarterly report", "form 10-q"}, DocTypeQuarterlyReport},
	{[]string{"earnings call", "earnings transcript", "quarterly earnings"}, DocTypeEarningsTranscript},
	{[]string{"research report", "analyst report", "investment research"}, DocTypeResearchReport},
	{[]string{"prospectus", "offering memorandum"}, DocTypeProspectus},
	{[]string{"balance sheet", "income statement", "cash flow"}, DocTypeFinancialStatement},
}

// ClassifyDocument assigns a document-type label by keyword presence.
// It is total: any input, including empty text, yields exactly one label,
// falling back to the generic DocTypeGeneric when no group matches.
func ClassifyDocument(text string) DocumentType {
	lower := strings.ToLower(text)

	for _, rule := range classificationRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.label
			}
		}
	}

	return DocTypeGeneric
}
