package docanalyzer

import "testing"

func TestClassifyDocumentPriorityOrder(t *testing.T) {
	// "10-K" outranks "balance sheet" even though both groups match:
	// priority order decides, not match count.
	text := "Form 10-K filing. Consolidated balance sheet and cash flow statements follow."

	if got := ClassifyDocument(text); got != DocTypeAnnualReport {
		t.Errorf("expected %q, got %q", DocTypeAnnualReport, got)
	}
}

func TestClassifyDocumentCaseInsensitive(t *testing.T) {
	if got := ClassifyDocument("ANNUAL REPORT for fiscal 2023"); got != DocTypeAnnualReport {
		t.Errorf("expected %q, got %q", DocTypeAnnualReport, got)
	}
}

func TestClassifyDocumentAllGroups(t *testing.T) {
	cases := []struct {
		text string
		want DocumentType
	}{
		{"form 10-q for the quarter ended", DocTypeQuarterlyReport},
		{"Q3 earnings call transcript", DocTypeEarningsTranscript},
		{"initiating coverage: analyst report", DocTypeResearchReport},
		{"preliminary offering memorandum", DocTypeProspectus},
		{"consolidated income statement", DocTypeFinancialStatement},
	}

	for _, tc := range cases {
		if got := ClassifyDocument(tc.text); got != tc.want {
			t.Errorf("ClassifyDocument(%q) = %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestClassifyDocumentGenericFallback(t *testing.T) {
	if got := ClassifyDocument("a memo about office furniture"); got != DocTypeGeneric {
		t.Errorf("expected generic label, got %q", got)
	}
	if got := ClassifyDocument(""); got != DocTypeGeneric {
		t.Errorf("expected generic label for empty input, got %q", got)
	}
}
