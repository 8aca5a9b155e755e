package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/acme_marketplace/internal/apperrors"
	"github.com/SscSPs/acme_marketplace/internal/core/domain"
	"github.com/SscSPs/acme_marketplace/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExchangeRateCache_FindMissing(t *testing.T) {
	cache := memory.NewExchangeRateCache()

	entry, err := cache.FindCacheEntry(context.Background(), "USD", "EUR")
	assert.Nil(t, entry)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestExchangeRateCache_UpsertIsIdempotent(t *testing.T) {
	ctx := context.Background()
	cache := memory.NewExchangeRateCache()
	entry := domain.ExchangeRateEntry{
		SourceCurrency: "USD",
		TargetCurrency: "EUR",
		Rate:           decimal.RequireFromString("0.90"),
		ObservedAt:     time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	require.NoError(t, cache.UpsertCacheEntry(ctx, entry))
	require.NoError(t, cache.UpsertCacheEntry(ctx, entry))

	got, err := cache.FindCacheEntry(ctx, "USD", "EUR")
	require.NoError(t, err)
	assert.Equal(t, entry, *got)
	assert.Equal(t, 1, cache.Len())
}

func TestExchangeRateCache_UpsertOverwritesPairOnly(t *testing.T) {
	ctx := context.Background()
	cache := memory.NewExchangeRateCache()
	observed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, cache.UpsertCacheEntry(ctx, domain.ExchangeRateEntry{SourceCurrency: "USD", TargetCurrency: "EUR", Rate: decimal.RequireFromString("0.90"), ObservedAt: observed}))
	require.NoError(t, cache.UpsertCacheEntry(ctx, domain.ExchangeRateEntry{SourceCurrency: "EUR", TargetCurrency: "USD", Rate: decimal.RequireFromString("1.11"), ObservedAt: observed}))
	require.NoError(t, cache.UpsertCacheEntry(ctx, domain.ExchangeRateEntry{SourceCurrency: "USD", TargetCurrency: "EUR", Rate: decimal.RequireFromString("0.95"), ObservedAt: observed.Add(time.Hour)}))

	got, err := cache.FindCacheEntry(ctx, "USD", "EUR")
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("0.95").Equal(got.Rate))
	assert.Equal(t, observed.Add(time.Hour), got.ObservedAt)

	reverse, err := cache.FindCacheEntry(ctx, "EUR", "USD")
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("1.11").Equal(reverse.Rate))
	assert.Equal(t, 2, cache.Len())
}

func TestExchangeRateCache_ReturnedEntryIsACopy(t *testing.T) {
	ctx := context.Background()
	cache := memory.NewExchangeRateCache()
	require.NoError(t, cache.UpsertCacheEntry(ctx, domain.ExchangeRateEntry{SourceCurrency: "USD", TargetCurrency: "EUR", Rate: decimal.NewFromInt(1)}))

	got, err := cache.FindCacheEntry(ctx, "USD", "EUR")
	require.NoError(t, err)
	got.Rate = decimal.NewFromInt(5)

	again, err := cache.FindCacheEntry(ctx, "USD", "EUR")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(1).Equal(again.Rate))
}

func TestExchangeRateCache_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	cache := memory.NewExchangeRateCache()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_ = cache.UpsertCacheEntry(ctx, domain.ExchangeRateEntry{SourceCurrency: "USD", TargetCurrency: "EUR", Rate: decimal.NewFromInt(int64(i + 1))})
		}(i)
		go func() {
			defer wg.Done()
			_, _ = cache.FindCacheEntry(ctx, "USD", "EUR")
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, cache.Len())
}
