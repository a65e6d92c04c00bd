package market

import (
	"sync"
	"time"

	"findoc_analyst/pkg/core/docanalyzer"
)

// analysisCache is an in-memory per-symbol cache with a fixed TTL. Quote
// lookups are repeated every time a summary, a comparison and an analysis
// are rendered for the same symbol; a short TTL absorbs that burst without
// serving stale intraday data for long.
type analysisCache struct {
	ttl     time.Duration
	mu      sync.RWMutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	analysis docanalyzer.QuoteAnalysis
	storedAt time.Time
}

func newAnalysisCache(ttl time.Duration) *analysisCache {
	return &analysisCache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
	}
}

func (c *analysisCache) get(symbol string) (docanalyzer.QuoteAnalysis, bool) {
	c.mu.RLock()
	entry, ok := c.entries[symbol]
	c.mu.RUnlock()

	if !ok || time.Since(entry.storedAt) > c.ttl {
		return docanalyzer.QuoteAnalysis{}, false
	}
	return entry.analysis, true
}

func (c *analysisCache) put(symbol string, analysis docanalyzer.QuoteAnalysis) {
	c.mu.Lock()
	c.entries[symbol] = cacheEntry{analysis: analysis, storedAt: time.Now()}
	c.mu.Unlock()
}
