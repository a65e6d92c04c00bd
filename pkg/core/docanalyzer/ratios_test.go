package docanalyzer

import (
	"math"
	"testing"
)

func TestComputeRatiosPERatio(t *testing.T) {
	ratios := ComputeRatios(MetricSet{"stock_price": 150, "eps": 5})

	pe, ok := ratios["pe_ratio"]
	if !ok {
		t.Fatal("expected pe_ratio key")
	}
	if pe != 30.0 {
		t.Errorf("expected pe_ratio 30.0, got %f", pe)
	}
}

func TestComputeRatiosZeroDenominatorGuard(t *testing.T) {
	// revenue == 0 must omit profit_margin, never divide.
	ratios := ComputeRatios(MetricSet{"net_income": 50, "revenue": 0})

	if _, ok := ratios["profit_margin"]; ok {
		t.Error("profit_margin must be omitted when revenue is zero")
	}

	// eps == 0 likewise guards pe_ratio.
	ratios = ComputeRatios(MetricSet{"stock_price": 100, "eps": 0})
	if _, ok := ratios["pe_ratio"]; ok {
		t.Error("pe_ratio must be omitted when eps is zero")
	}
}

func TestComputeRatiosRevenueGrowth(t *testing.T) {
	ratios := ComputeRatios(MetricSet{"current_revenue": 120, "previous_revenue": 100})

	// (120 - 100) / 100 * 100 = 20%
	if got := ratios["revenue_growth"]; math.Abs(got-20.0) > 1e-9 {
		t.Errorf("expected revenue_growth 20.0, got %f", got)
	}
}

func TestComputeRatiosProfitMargin(t *testing.T) {
	ratios := ComputeRatios(MetricSet{"net_income": 25, "revenue": 200})

	// 25 / 200 * 100 = 12.5%
	if got := ratios["profit_margin"]; math.Abs(got-12.5) > 1e-9 {
		t.Errorf("expected profit_margin 12.5, got %f", got)
	}
}

func TestComputeRatiosIndependentGating(t *testing.T) {
	// Only the profit margin inputs are present; the other two ratios are
	// omitted without blocking it.
	ratios := ComputeRatios(MetricSet{"net_income": 10, "revenue": 100})

	if len(ratios) != 1 {
		t.Fatalf("expected exactly one ratio, got %v", ratios)
	}
	if ratios["profit_margin"] != 10.0 {
		t.Errorf("expected profit_margin 10.0, got %f", ratios["profit_margin"])
	}
}

func TestComputeRatiosEmptyInput(t *testing.T) {
	if ratios := ComputeRatios(MetricSet{}); len(ratios) != 0 {
		t.Errorf("expected empty RatioSet, got %v", ratios)
	}
}
