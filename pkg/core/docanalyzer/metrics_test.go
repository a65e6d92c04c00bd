package docanalyzer

import (
	"math"
	"testing"
)

func TestExtractMetricsScalesMagnitudeSuffixes(t *testing.T) {
	text := "Total revenue: $1,234.5 million and EPS: $3.21"

	metrics := ExtractMetrics(text)

	// 1,234.5 million -> 1.2345 billion in absolute dollars
	rev, ok := metrics["revenue"]
	if !ok {
		t.Fatal("expected revenue key")
	}
	if math.Abs(rev-1234500000.0) > 0.01 {
		t.Errorf("expected revenue 1234500000.0, got %f", rev)
	}

	eps, ok := metrics["eps"]
	if !ok {
		t.Fatal("expected eps key")
	}
	if eps != 3.21 {
		t.Errorf("expected eps 3.21, got %f", eps)
	}

	if _, ok := metrics["net_income"]; ok {
		t.Error("net_income should be absent when the text has no net income figure")
	}
}

func TestExtractMetricsBillionSuffix(t *testing.T) {
	metrics := ExtractMetrics("Revenue: $2.5 billion for the fiscal year")

	if got := metrics["revenue"]; got != 2.5e9 {
		t.Errorf("expected 2.5e9, got %f", got)
	}
}

func TestExtractMetricsShortSuffixCaseInsensitive(t *testing.T) {
	// "B" and "b" both mean billion, "M" and "m" million.
	metrics := ExtractMetrics("net income: 3.2B")
	if got := metrics["net_income"]; got != 3.2e9 {
		t.Errorf("expected 3.2e9 for 'B' suffix, got %f", got)
	}

	metrics = ExtractMetrics("net income: 450 m")
	if got := metrics["net_income"]; got != 450e6 {
		t.Errorf("expected 4.5e8 for 'm' suffix, got %f", got)
	}
}

func TestExtractMetricsNoSuffixLeavesValueUnscaled(t *testing.T) {
	metrics := ExtractMetrics("Revenue: $987,654")

	if got := metrics["revenue"]; got != 987654 {
		t.Errorf("expected 987654, got %f", got)
	}
}

func TestExtractMetricsFirstPatternWins(t *testing.T) {
	// Both "revenue" (pattern 1) and "sales" (pattern 2) appear; the first
	// family pattern with a hit decides, so the sales figure is ignored.
	metrics := ExtractMetrics("revenue: $100 million while sales: $900 million")

	if got := metrics["revenue"]; got != 100e6 {
		t.Errorf("expected 100e6 from the revenue pattern, got %f", got)
	}
}

func TestExtractMetricsFirstMatchOnly(t *testing.T) {
	metrics := ExtractMetrics("revenue: $10 million ... revenue: $20 million")

	if got := metrics["revenue"]; got != 10e6 {
		t.Errorf("expected the first occurrence (10e6), got %f", got)
	}
}

func TestExtractMetricsEmptyInput(t *testing.T) {
	metrics := ExtractMetrics("")

	if len(metrics) != 0 {
		t.Errorf("expected empty MetricSet for empty input, got %v", metrics)
	}
}

func TestExtractMetricsMissingFamiliesOmitKeys(t *testing.T) {
	metrics := ExtractMetrics("EPS: 1.50")

	if len(metrics) != 1 {
		t.Fatalf("expected only the eps key, got %v", metrics)
	}
	if metrics["eps"] != 1.50 {
		t.Errorf("expected eps 1.50, got %f", metrics["eps"])
	}
}

func TestExtractMetricsCaseInsensitivePatterns(t *testing.T) {
	metrics := ExtractMetrics("NET INCOME: $42 MILLION")

	if got := metrics["net_income"]; got != 42e6 {
		t.Errorf("expected 42e6, got %f", got)
	}
}
