// Package docanalyzer provides pure text analysis for financial documents:
// metric extraction, ratio computation, document-type classification, date
// extraction and investment summary formatting. Every function is stateless
// and single-pass; callers may invoke them concurrently.
package docanalyzer

// MetricSet maps a metric name to its value in base units (dollars, or
// dollars per share for EPS). A missing key means "not found"; extraction
// never writes zero placeholders.
//
// Extracted keys: "revenue", "eps", "net_income".
// Caller-supplied keys: "stock_price", "current_revenue", "previous_revenue".
type MetricSet map[string]float64

// RatioSet maps a ratio name to a percentage or unitless value. A ratio is
// present only when its inputs exist and its denominator is positive.
//
// Keys: "pe_ratio", "revenue_growth", "profit_margin".
type RatioSet map[string]float64

// DocumentType is a fixed classification label for a financial document.
type DocumentType string

const (
	DocTypeAnnualReport       DocumentType = "Annual Report (10-K)"
	DocTypeQuarterlyReport    DocumentType = "Quarterly Report (10-Q)"
	DocTypeEarningsTranscript DocumentType = "Earnings Call Transcript"
	DocTypeResearchReport     DocumentType = "Research Report"
	DocTypeProspectus         DocumentType = "Investment Prospectus"
	DocTypeFinancialStatement DocumentType = "Financial Statement"
	DocTypeGeneric            DocumentType = "Financial Document"
)

// PriceChanges holds percentage price moves over trailing windows.
type PriceChanges struct {
	OneDay   float64 `json:"1_day"`
	OneWeek  float64 `json:"1_week"`
	OneMonth float64 `json:"1_month"`
}

// TechnicalIndicators holds simple technical analysis values.
type TechnicalIndicators struct {
	MA20       float64 `json:"ma_20"`
	MA50       float64 `json:"ma_50"`
	Volatility float64 `json:"volatility"` // annualized, percent
}

// Fundamentals holds per-company fundamental figures.
type Fundamentals struct {
	EPS          float64 `json:"eps"`
	Revenue      float64 `json:"revenue"`
	ProfitMargin float64 `json:"profit_margin"` // percent
	DebtToEquity float64 `json:"debt_to_equity"`
}

// QuoteAnalysis is the market-data record consumed by FormatSummary. It is
// constructed by the market package (or any other collaborator); this
// package only reads it. A non-empty Error marks the record as an error
// result and all numeric fields are ignored.
type QuoteAnalysis struct {
	Symbol       string              `json:"symbol"`
	CompanyName  string              `json:"company_name"`
	Sector       string              `json:"sector"`
	CurrentPrice float64             `json:"current_price"`
	MarketCap    float64             `json:"market_cap"`
	PERatio      float64             `json:"pe_ratio"`
	PriceChanges PriceChanges        `json:"price_changes"`
	Technical    TechnicalIndicators `json:"technical_indicators"`
	Fundamentals Fundamentals        `json:"fundamentals"`
	Error        string              `json:"error,omitempty"`
}
