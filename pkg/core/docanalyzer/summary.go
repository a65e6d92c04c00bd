package docanalyzer

import (
	"fmt"
	"strings"
)

// FormatSummary renders a human-readable investment summary from a quote
// analysis record. An error record (non-empty Error field) produces a
// single line embedding the upstream error text and touches no numeric
// field. In the success path the record is assumed fully populated by the
// market-data collaborator.
func FormatSummary(a QuoteAnalysis) string {
	if a.Error != "" {
		return fmt.Sprintf("Unable to generate summary: %s", a.Error)
	}

	var b strings.Builder

	fmt.Fprintf(&b, "📊 **Investment Summary for %s**\n\n", a.Symbol)
	fmt.Fprintf(&b, "**Company**: %s\n", a.CompanyName)
	fmt.Fprintf(&b, "**Sector**: %s\n", a.Sector)
	fmt.Fprintf(&b, "**Current Price**: $%.2f\n\n", a.CurrentPrice)

	b.WriteString("**Performance**:\n")
	fmt.Fprintf(&b, "- 1 Day: %+.2f%%\n", a.PriceChanges.OneDay)
	fmt.Fprintf(&b, "- 1 Week: %+.2f%%\n", a.PriceChanges.OneWeek)
	fmt.Fprintf(&b, "- 1 Month: %+.2f%%\n\n", a.PriceChanges.OneMonth)

	b.WriteString("**Key Metrics**:\n")
	fmt.Fprintf(&b, "- P/E Ratio: %.2f\n", a.PERatio)
	fmt.Fprintf(&b, "- Market Cap: $%s\n", commaSeparated(a.MarketCap))
	fmt.Fprintf(&b, "- Profit Margin: %.2f%%\n", a.Fundamentals.ProfitMargin)
	fmt.Fprintf(&b, "- Volatility: %.2f%%\n\n", a.Technical.Volatility)

	b.WriteString("**Technical Analysis**:\n")
	fmt.Fprintf(&b, "- 20-day MA: $%.2f\n", a.Technical.MA20)
	fmt.Fprintf(&b, "- 50-day MA: $%.2f\n", a.Technical.MA50)

	return b.String()
}

// commaSeparated formats a value rounded to whole units with thousands
// separators, e.g. 2914000000 -> "2,914,000,000".
func commaSeparated(v float64) string {
	s := fmt.Sprintf("%.0f", v)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)

	out := strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return out
}
