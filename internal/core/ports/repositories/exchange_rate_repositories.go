package repositories

import (
	"context"

	"github.com/SscSPs/acme_marketplace/internal/core/domain"
)

// ExchangeRateCacheReader defines read operations for cached exchange rates
type ExchangeRateCacheReader interface {
	// FindCacheEntry returns the entry for the ordered pair or apperrors.ErrNotFound.
	FindCacheEntry(ctx context.Context, sourceCurrency, targetCurrency string) (*domain.ExchangeRateEntry, error)
}

// ExchangeRateCacheWriter defines write operations for cached exchange rates
type ExchangeRateCacheWriter interface {
	// UpsertCacheEntry stores entry, overwriting any entry for the same pair.
	UpsertCacheEntry(ctx context.Context, entry domain.ExchangeRateEntry) error
}

// ExchangeRateCacheFacade combines all exchange rate cache interfaces
type ExchangeRateCacheFacade interface {
	ExchangeRateCacheReader
	ExchangeRateCacheWriter
}
