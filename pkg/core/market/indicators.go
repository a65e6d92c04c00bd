// Package market fetches stock quotes and price history and derives the
// technical indicators that feed the investment summary: moving averages,
// trailing price changes and annualized volatility.
package market

import "math"

// tradingDaysPerYear is the standard annualization factor for daily returns.
const tradingDaysPerYear = 252

// SMA returns the simple moving average of the last window closes.
// Returns 0 when the series is shorter than the window.
func SMA(closes []float64, window int) float64 {
	if window <= 0 || len(closes) < window {
		return 0
	}

	sum := 0.0
	for _, c := range closes[len(closes)-window:] {
		sum += c
	}
	return sum / float64(window)
}

// PriceChange returns the percentage change from the close barsAgo bars
// back to the latest close. Returns 0 when the series is too short or the
// reference close is zero.
func PriceChange(closes []float64, barsAgo int) float64 {
	if barsAgo <= 0 || len(closes) <= barsAgo {
		return 0
	}

	latest := closes[len(closes)-1]
	ref := closes[len(closes)-1-barsAgo]
	if ref == 0 {
		return 0
	}
	return (latest - ref) / ref * 100
}

// AnnualizedVolatility returns the sample standard deviation of daily
// returns scaled by sqrt(252), as a percentage.
func AnnualizedVolatility(closes []float64) float64 {
	if len(closes) < 3 {
		return 0
	}

	returns := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		if closes[i-1] == 0 {
			continue
		}
		returns = append(returns, closes[i]/closes[i-1]-1)
	}
	if len(returns) < 2 {
		return 0
	}

	mean := 0.0
	for _, r := range returns {
		mean += r
	}
	mean /= float64(len(returns))

	variance := 0.0
	for _, r := range returns {
		d := r - mean
		variance += d * d
	}
	variance /= float64(len(returns) - 1)

	return math.Sqrt(variance) * math.Sqrt(tradingDaysPerYear) * 100
}
