package docanalyzer

// ComputeRatios derives financial ratios from whatever metrics were found.
// Each ratio is independently gated on its inputs: a missing numerator or a
// non-positive denominator omits the key rather than producing NaN or Inf.
func ComputeRatios(metrics MetricSet) RatioSet {
	ratios := RatioSet{}

	// Price to earnings, when the caller supplied a stock price.
	price, hasPrice := metrics["stock_price"]
	eps, hasEPS := metrics["eps"]
	if hasPrice && hasEPS && eps > 0 {
		ratios["pe_ratio"] = price / eps
	}

	// Period-over-period revenue growth, percent.
	current, hasCurrent := metrics["current_revenue"]
	previous, hasPrevious := metrics["previous_revenue"]
	if hasCurrent && hasPrevious && previous > 0 {
		ratios["revenue_growth"] = (current - previous) / previous * 100
	}

	// Profit margin, percent.
	income, hasIncome := metrics["net_income"]
	revenue, hasRevenue := metrics["revenue"]
	if hasIncome && hasRevenue && revenue > 0 {
		ratios["profit_margin"] = income / revenue * 100
	}

	return ratios
}
