package market

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"findoc_analyst/pkg/core/docanalyzer"
)

// stubQuoteServer serves canned chart and quote payloads for one symbol.
func stubQuoteServer(t *testing.T, closes []float64) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/v8/finance/chart/"):
			ptrs := make([]*float64, len(closes))
			for i := range closes {
				ptrs[i] = &closes[i]
			}
			resp := map[string]interface{}{
				"chart": map[string]interface{}{
					"result": []map[string]interface{}{{
						"meta": map[string]interface{}{
							"symbol":             "TEST",
							"longName":           "Test Corp",
							"regularMarketPrice": closes[len(closes)-1],
						},
						"indicators": map[string]interface{}{
							"quote": []map[string]interface{}{{"close": ptrs}},
						},
					}},
				},
			}
			json.NewEncoder(w).Encode(resp)

		case strings.HasPrefix(r.URL.Path, "/v7/finance/quote"):
			fmt.Fprint(w, `{"quoteResponse":{"result":[{
				"longName":"Test Corp",
				"sector":"Technology",
				"marketCap":5000000000,
				"trailingPE":21.5,
				"epsTrailingTwelveMonths":4.2,
				"totalRevenue":1200000000,
				"profitMargins":0.18,
				"debtToEquity":80.5
			}]}}`)

		default:
			http.NotFound(w, r)
		}
	}))
}

// syntheticCloses builds n bars ending at 100 with a gentle ramp.
func syntheticCloses(n int) []float64 {
	closes := make([]float64, n)
	for i := range closes {
		closes[i] = 100 - float64(n-1-i)*0.1
	}
	return closes
}

func TestGetStockAnalysis(t *testing.T) {
	closes := syntheticCloses(60)
	srv := stubQuoteServer(t, closes)
	defer srv.Close()

	client := NewClientWithBaseURL(srv.URL)
	analysis, err := client.GetStockAnalysis(context.Background(), "test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if analysis.Symbol != "TEST" {
		t.Errorf("symbol should be uppercased, got %q", analysis.Symbol)
	}
	if analysis.CompanyName != "Test Corp" {
		t.Errorf("unexpected company name %q", analysis.CompanyName)
	}
	if analysis.Sector != "Technology" {
		t.Errorf("unexpected sector %q", analysis.Sector)
	}
	if analysis.CurrentPrice != 100 {
		t.Errorf("expected last close 100, got %f", analysis.CurrentPrice)
	}
	if analysis.MarketCap != 5000000000 {
		t.Errorf("unexpected market cap %f", analysis.MarketCap)
	}
	// profitMargins arrives as a fraction and is stored as a percent.
	if analysis.Fundamentals.ProfitMargin != 18.0 {
		t.Errorf("expected profit margin 18.0, got %f", analysis.Fundamentals.ProfitMargin)
	}

	// Ramp of +0.1/day: 1-day change = 0.1/99.9*100.
	wantOneDay := 0.1 / 99.9 * 100
	if diff := analysis.PriceChanges.OneDay - wantOneDay; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("expected 1-day change %f, got %f", wantOneDay, analysis.PriceChanges.OneDay)
	}

	if analysis.Technical.MA20 == 0 || analysis.Technical.MA50 == 0 {
		t.Error("expected both moving averages on a 60-bar series")
	}
}

func TestGetStockAnalysisShortHistory(t *testing.T) {
	srv := stubQuoteServer(t, syntheticCloses(10))
	defer srv.Close()

	client := NewClientWithBaseURL(srv.URL)
	_, err := client.GetStockAnalysis(context.Background(), "TEST")
	if !errors.Is(err, ErrNoData) {
		t.Errorf("expected ErrNoData for a 10-bar series, got %v", err)
	}
}

func TestGetStockAnalysisCaches(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/v8/") {
			hits++
		}
		http.NotFound(w, r)
	}))
	defer srv.Close()

	client := NewClientWithBaseURL(srv.URL)
	closes := syntheticCloses(60)
	client.cache.put("TEST", docanalyzer.QuoteAnalysis{Symbol: "TEST", CurrentPrice: closes[len(closes)-1]})

	analysis, err := client.GetStockAnalysis(context.Background(), "TEST")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if analysis.CurrentPrice != 100 {
		t.Errorf("expected cached analysis, got %+v", analysis)
	}
	if hits != 0 {
		t.Errorf("cache hit should not reach the network, saw %d fetches", hits)
	}
}

func TestAnalysisCacheExpiry(t *testing.T) {
	cache := newAnalysisCache(10 * time.Millisecond)
	cache.put("X", docanalyzer.QuoteAnalysis{Symbol: "X"})

	if _, ok := cache.get("X"); !ok {
		t.Fatal("expected fresh entry to hit")
	}

	time.Sleep(20 * time.Millisecond)
	if _, ok := cache.get("X"); ok {
		t.Error("expected expired entry to miss")
	}
}

func TestErrorRecord(t *testing.T) {
	record := ErrorRecord(ErrNoData)

	if record.Error != "No data found for symbol" {
		t.Errorf("unexpected error text %q", record.Error)
	}

	out := docanalyzer.FormatSummary(record)
	if !strings.Contains(out, "No data found for symbol") {
		t.Errorf("summary should embed the error text, got %q", out)
	}
}

func TestCompareStocksSkipsFailures(t *testing.T) {
	srv := stubQuoteServer(t, syntheticCloses(60))
	defer srv.Close()

	client := NewClientWithBaseURL(srv.URL)

	rows := client.CompareStocks(context.Background(), []string{"TEST"})
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].Symbol != "TEST" || rows[0].Price != 100 {
		t.Errorf("unexpected row %+v", rows[0])
	}

	srv.Close()
	client.cache = newAnalysisCache(time.Minute)
	rows = client.CompareStocks(context.Background(), []string{"GONE"})
	if len(rows) != 0 {
		t.Errorf("expected failing symbols to be skipped, got %v", rows)
	}
}
