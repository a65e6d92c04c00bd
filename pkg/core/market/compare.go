package market

import (
	"context"
	"fmt"

	"findoc_analyst/pkg/core/docanalyzer"
)

// ComparisonRow is one symbol's line in a multi-stock comparison table.
type ComparisonRow struct {
	Symbol     string  `json:"symbol"`
	Company    string  `json:"company"`
	Price      float64 `json:"price"`
	MarketCap  float64 `json:"market_cap"`
	PERatio    float64 `json:"pe_ratio"`
	Change1D   float64 `json:"change_1d"`
	Change1M   float64 `json:"change_1m"`
	Volatility float64 `json:"volatility"`
}

// CompareStocks analyzes each symbol and tabulates the results. Symbols
// that fail to resolve are skipped, matching the tolerant behavior of the
// summary path: a bad ticker should not sink the whole table.
func (c *Client) CompareStocks(ctx context.Context, symbols []string) []ComparisonRow {
	rows := make([]ComparisonRow, 0, len(symbols))

	for _, symbol := range symbols {
		analysis, err := c.GetStockAnalysis(ctx, symbol)
		if err != nil {
			fmt.Printf("[MARKET] skipping %s in comparison: %v\n", symbol, err)
			continue
		}
		rows = append(rows, rowFromAnalysis(analysis))
	}

	return rows
}

func rowFromAnalysis(a docanalyzer.QuoteAnalysis) ComparisonRow {
	return ComparisonRow{
		Symbol:     a.Symbol,
		Company:    a.CompanyName,
		Price:      a.CurrentPrice,
		MarketCap:  a.MarketCap,
		PERatio:    a.PERatio,
		Change1D:   a.PriceChanges.OneDay,
		Change1M:   a.PriceChanges.OneMonth,
		Volatility: a.Technical.Volatility,
	}
}
