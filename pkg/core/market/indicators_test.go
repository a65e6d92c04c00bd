package market

import (
	"math"
	"testing"
)

func TestSMA(t *testing.T) {
	closes := []float64{1, 2, 3, 4, 5}

	// Last 3 closes: (3+4+5)/3 = 4
	if got := SMA(closes, 3); got != 4.0 {
		t.Errorf("expected 4.0, got %f", got)
	}

	// Window longer than series yields 0, not a partial mean.
	if got := SMA(closes, 10); got != 0 {
		t.Errorf("expected 0 for short series, got %f", got)
	}
}

func TestPriceChange(t *testing.T) {
	closes := []float64{100, 110, 121}

	// One bar back: (121 - 110) / 110 * 100 = 10%
	if got := PriceChange(closes, 1); math.Abs(got-10.0) > 1e-9 {
		t.Errorf("expected 10.0, got %f", got)
	}

	// Two bars back: (121 - 100) / 100 * 100 = 21%
	if got := PriceChange(closes, 2); math.Abs(got-21.0) > 1e-9 {
		t.Errorf("expected 21.0, got %f", got)
	}

	// Too few bars.
	if got := PriceChange(closes, 5); got != 0 {
		t.Errorf("expected 0 for short series, got %f", got)
	}
}

func TestAnnualizedVolatility(t *testing.T) {
	// Alternating +10% / ~-9.09% daily returns.
	closes := []float64{100, 110, 100, 110, 100}

	// Returns: 1/10, -1/11, 1/10, -1/11; mean = 1/220.
	// Deviations are +-21/220 exactly, so the sample variance is
	// 4*(21/220)^2/3 = 147/12100 and stddev = sqrt(147)/110.
	want := math.Sqrt(147) / 110 * math.Sqrt(252) * 100

	if got := AnnualizedVolatility(closes); math.Abs(got-want) > 1e-6 {
		t.Errorf("expected %f, got %f", want, got)
	}
}

func TestAnnualizedVolatilityFlatSeries(t *testing.T) {
	closes := []float64{50, 50, 50, 50}

	if got := AnnualizedVolatility(closes); got != 0 {
		t.Errorf("flat series should have zero volatility, got %f", got)
	}
}
