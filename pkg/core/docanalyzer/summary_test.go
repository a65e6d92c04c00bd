package docanalyzer

import (
	"strings"
	"testing"
)

func TestFormatSummaryErrorRecord(t *testing.T) {
	out := FormatSummary(QuoteAnalysis{Error: "No data found for symbol"})

	if !strings.Contains(out, "No data found for symbol") {
		t.Errorf("expected the error text in the output, got %q", out)
	}
	if strings.Contains(out, "$") || strings.Contains(out, "%") {
		t.Errorf("error path must not render numeric fields, got %q", out)
	}
	if strings.Contains(out, "\n") {
		t.Errorf("error path should be a single line, got %q", out)
	}
}

func TestFormatSummarySuccessPath(t *testing.T) {
	a := QuoteAnalysis{
		Symbol:       "AAPL",
		CompanyName:  "Apple Inc.",
		Sector:       "Technology",
		CurrentPrice: 189.456,
		MarketCap:    2914000000000,
		PERatio:      29.876,
		PriceChanges: PriceChanges{OneDay: 1.234, OneWeek: -2.5, OneMonth: 5.678},
		Technical:    TechnicalIndicators{MA20: 185.1, MA50: 180.25, Volatility: 22.333},
		Fundamentals: Fundamentals{ProfitMargin: 25.31},
	}

	out := FormatSummary(a)

	for _, want := range []string{
		"Investment Summary for AAPL",
		"**Company**: Apple Inc.",
		"**Sector**: Technology",
		"$189.46",               // price, 2dp
		"+1.23%",                // signed 1-day change
		"-2.50%",                // signed 1-week change
		"+5.68%",                // signed 1-month change
		"P/E Ratio: 29.88",      // 2dp
		"$2,914,000,000,000",    // market cap, thousands separators, 0dp
		"Profit Margin: 25.31%", // 2dp
		"Volatility: 22.33%",    // 2dp
		"20-day MA: $185.10",
		"50-day MA: $180.25",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in summary:\n%s", want, out)
		}
	}
}

func TestCommaSeparated(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{987654, "987,654"},
		{2914000000, "2,914,000,000"},
		{-45000, "-45,000"},
	}

	for _, tc := range cases {
		if got := commaSeparated(tc.in); got != tc.want {
			t.Errorf("commaSeparated(%f) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
