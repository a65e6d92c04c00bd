package market

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"findoc_analyst/pkg/core/docanalyzer"
)

// ErrNoData is returned when the quote source has no price history for a
// symbol. Its text feeds the user-facing error record verbatim.
var ErrNoData = errors.New("No data found for symbol")

const defaultChartURL = "https://query1.finance.yahoo.com"

// userAgent mirrors a desktop browser; the quote endpoints reject the Go
// default agent.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"

// Client fetches quotes and daily price history from the Yahoo chart API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	cache      *analysisCache
}

// NewClient builds a client with a 15 second timeout and a 5 minute
// analysis cache.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    defaultChartURL,
		cache:      newAnalysisCache(5 * time.Minute),
	}
}

// NewClientWithBaseURL is used by tests to point at a stub server.
func NewClientWithBaseURL(base string) *Client {
	c := NewClient()
	c.baseURL = base
	return c
}

// chartResponse is the subset of the v8 chart payload we consume.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol             string  `json:"symbol"`
				LongName           string  `json:"longName"`
				ShortName          string  `json:"shortName"`
				RegularMarketPrice float64 `json:"regularMarketPrice"`
			} `json:"meta"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// quoteResponse is the subset of the v7 quote payload we consume.
type quoteResponse struct {
	QuoteResponse struct {
		Result []struct {
			LongName                   string  `json:"longName"`
			Sector                     string  `json:"sector"`
			MarketCap                  float64 `json:"marketCap"`
			TrailingPE                 float64 `json:"trailingPE"`
			EPSTrailingTwelveMonths    float64 `json:"epsTrailingTwelveMonths"`
			Revenue                    float64 `json:"totalRevenue"`
			ProfitMargins              float64 `json:"profitMargins"`
			DebtToEquity               float64 `json:"debtToEquity"`
			RegularMarketPreviousClose float64 `json:"regularMarketPreviousClose"`
		} `json:"result"`
	} `json:"quoteResponse"`
}

// GetStockAnalysis fetches ~1y of daily closes plus quote metadata and
// derives the indicator set. Results are cached per symbol for the cache
// TTL.
func (c *Client) GetStockAnalysis(ctx context.Context, symbol string) (docanalyzer.QuoteAnalysis, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return docanalyzer.QuoteAnalysis{}, fmt.Errorf("symbol is required")
	}

	if cached, ok := c.cache.get(symbol); ok {
		return cached, nil
	}

	closes, meta, err := c.fetchDailyCloses(ctx, symbol)
	if err != nil {
		return docanalyzer.QuoteAnalysis{}, err
	}
	if len(closes) < 22 {
		// Not enough bars for the 1-month change window.
		return docanalyzer.QuoteAnalysis{}, ErrNoData
	}

	analysis := docanalyzer.QuoteAnalysis{
		Symbol:       symbol,
		CompanyName:  meta.name,
		CurrentPrice: closes[len(closes)-1],
		PriceChanges: docanalyzer.PriceChanges{
			OneDay:   PriceChange(closes, 1),
			OneWeek:  PriceChange(closes, 5),
			OneMonth: PriceChange(closes, 21),
		},
		Technical: docanalyzer.TechnicalIndicators{
			MA20:       SMA(closes, 20),
			MA50:       SMA(closes, 50),
			Volatility: AnnualizedVolatility(closes),
		},
	}

	// Fundamentals are best-effort: the chart data alone is enough for a
	// usable analysis when the quote endpoint is unavailable.
	if err := c.fillFundamentals(ctx, symbol, &analysis); err != nil {
		fmt.Printf("[MARKET] quote metadata unavailable for %s: %v\n", symbol, err)
	}

	c.cache.put(symbol, analysis)
	return analysis, nil
}

type chartMeta struct {
	name string
}

// fetchDailyCloses pulls one year of daily bars, dropping null closes
// (holidays, halts).
func (c *Client) fetchDailyCloses(ctx context.Context, symbol string) ([]float64, chartMeta, error) {
	endpoint := fmt.Sprintf("%s/v8/finance/chart/%s?range=1y&interval=1d", c.baseURL, url.PathEscape(symbol))

	var payload chartResponse
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, chartMeta{}, err
	}

	if payload.Chart.Error != nil {
		return nil, chartMeta{}, ErrNoData
	}
	if len(payload.Chart.Result) == 0 || len(payload.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, chartMeta{}, ErrNoData
	}

	result := payload.Chart.Result[0]
	closes := make([]float64, 0, len(result.Indicators.Quote[0].Close))
	for _, v := range result.Indicators.Quote[0].Close {
		if v != nil {
			closes = append(closes, *v)
		}
	}
	if len(closes) == 0 {
		return nil, chartMeta{}, ErrNoData
	}

	name := result.Meta.LongName
	if name == "" {
		name = result.Meta.ShortName
	}
	if name == "" {
		name = "N/A"
	}
	return closes, chartMeta{name: name}, nil
}

// fillFundamentals adds company metadata from the v7 quote endpoint.
func (c *Client) fillFundamentals(ctx context.Context, symbol string, analysis *docanalyzer.QuoteAnalysis) error {
	endpoint := fmt.Sprintf("%s/v7/finance/quote?symbols=%s", c.baseURL, url.QueryEscape(symbol))

	var payload quoteResponse
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return err
	}
	if len(payload.QuoteResponse.Result) == 0 {
		return fmt.Errorf("empty quote result")
	}

	r := payload.QuoteResponse.Result[0]
	if r.LongName != "" {
		analysis.CompanyName = r.LongName
	}
	analysis.Sector = r.Sector
	if analysis.Sector == "" {
		analysis.Sector = "N/A"
	}
	analysis.MarketCap = r.MarketCap
	analysis.PERatio = r.TrailingPE
	analysis.Fundamentals = docanalyzer.Fundamentals{
		EPS:          r.EPSTrailingTwelveMonths,
		Revenue:      r.Revenue,
		ProfitMargin: r.ProfitMargins * 100,
		DebtToEquity: r.DebtToEquity,
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, target interface{}) error {
	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("quote fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNoData
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("quote source returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("failed to decode quote response: %w", err)
	}
	return nil
}

// ErrorRecord wraps an upstream failure as the error-record shape the
// summary formatter renders.
func ErrorRecord(err error) docanalyzer.QuoteAnalysis {
	return docanalyzer.QuoteAnalysis{Error: err.Error()}
}
