package memory

import (
	"context"
	"sync"

	"github.com/SscSPs/acme_marketplace/internal/apperrors"
	"github.com/SscSPs/acme_marketplace/internal/core/domain"
	portsrepo "github.com/SscSPs/acme_marketplace/internal/core/ports/repositories"
)

// ExchangeRateCache keeps one entry per ordered currency pair in memory.
// Entries are never evicted.
type ExchangeRateCache struct {
	mu      sync.RWMutex
	entries map[string]domain.ExchangeRateEntry
}

// NewExchangeRateCache creates an empty cache.
func NewExchangeRateCache() *ExchangeRateCache {
	return &ExchangeRateCache{entries: make(map[string]domain.ExchangeRateEntry)}
}

var _ portsrepo.ExchangeRateCacheFacade = (*ExchangeRateCache)(nil)

// FindCacheEntry returns a copy of the entry for the pair or apperrors.ErrNotFound.
func (c *ExchangeRateCache) FindCacheEntry(_ context.Context, sourceCurrency, targetCurrency string) (*domain.ExchangeRateEntry, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[domain.PairKey(sourceCurrency, targetCurrency)]
	if !ok {
		return nil, apperrors.NewNotFoundError("exchange rate not cached")
	}
	return &entry, nil
}

// UpsertCacheEntry stores entry, replacing any entry for the same pair.
func (c *ExchangeRateCache) UpsertCacheEntry(_ context.Context, entry domain.ExchangeRateEntry) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[entry.Key()] = entry
	return nil
}

// Len returns the number of cached pairs.
func (c *ExchangeRateCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
