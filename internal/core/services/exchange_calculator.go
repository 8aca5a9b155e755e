package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/acme_marketplace/internal/apperrors"
	"github.com/SscSPs/acme_marketplace/internal/core/domain"
	portsrepo "github.com/SscSPs/acme_marketplace/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/acme_marketplace/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
)

// exchangeCalculator converts money using cached rates and refreshes stale
// pairs from the rate source.
type exchangeCalculator struct {
	BaseService
	cache  portsrepo.ExchangeRateCacheFacade
	source portssvc.ExchangeRateSource
	group  singleflight.Group
}

// CalculatorOption is a functional option for configuring the exchange calculator
type CalculatorOption func(*exchangeCalculator)

// WithCalculatorClock replaces the calculator's clock.
func WithCalculatorClock(now func() time.Time) CalculatorOption {
	return func(c *exchangeCalculator) {
		c.Clock = now
	}
}

// NewExchangeCalculator creates a new exchange calculator over cache and source.
func NewExchangeCalculator(cache portsrepo.ExchangeRateCacheFacade, source portssvc.ExchangeRateSource, options ...CalculatorOption) portssvc.ExchangeCalculatorSvc {
	c := &exchangeCalculator{
		cache:  cache,
		source: source,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

var _ portssvc.ExchangeCalculatorSvc = (*exchangeCalculator)(nil)

// rateLookup is the shared result of one get-or-refresh call.
type rateLookup struct {
	entry     domain.ExchangeRateEntry
	fromCache bool
}

func (c *exchangeCalculator) Convert(ctx context.Context, amount domain.Money, targetCurrency string, staleness time.Duration) (*domain.Conversion, error) {
	if err := domain.ValidateCurrencyCode(amount.Currency); err != nil {
		return nil, err
	}
	if err := domain.ValidateCurrencyCode(targetCurrency); err != nil {
		return nil, err
	}

	if amount.Currency == targetCurrency {
		return &domain.Conversion{
			Source: amount,
			Target: amount,
			Rate:   decimal.NewFromInt(1),
			AsOf:   c.Now(),
		}, nil
	}

	if staleness <= 0 {
		staleness = domain.DefaultExchangeRateStaleness
	}

	lookup, err := c.getOrRefresh(ctx, amount.Currency, targetCurrency, staleness)
	if err != nil {
		return nil, err
	}

	return &domain.Conversion{
		Source:    amount,
		Target:    amount.Convert(lookup.entry.Rate, targetCurrency),
		Rate:      lookup.entry.Rate,
		AsOf:      lookup.entry.ObservedAt,
		FromCache: lookup.fromCache,
	}, nil
}

// getOrRefresh returns a fresh entry for the pair, fetching and upserting a
// new one when the cached entry is missing or stale. Concurrent calls for the
// same pair and staleness share one execution.
func (c *exchangeCalculator) getOrRefresh(ctx context.Context, source, target string, staleness time.Duration) (rateLookup, error) {
	key := domain.PairKey(source, target) + "|" + staleness.String()

	// The shared refresh outlives any single caller; each caller stops
	// waiting when its own context ends.
	callerCtx := ctx
	ctx = context.WithoutCancel(ctx)
	flight := c.group.DoChan(key, func() (interface{}, error) {
		cached, err := c.cache.FindCacheEntry(ctx, source, target)
		switch {
		case err == nil:
			if cached.IsFresh(c.Now(), staleness) {
				c.LogDebug(ctx, "Using cached exchange rate",
					slog.String("pair", key),
					slog.Time("observed_at", cached.ObservedAt))
				return rateLookup{entry: *cached, fromCache: true}, nil
			}
		case errors.Is(err, apperrors.ErrNotFound):
		default:
			c.LogError(ctx, err, "Failed to read exchange rate cache", slog.String("pair", key))
			return nil, fmt.Errorf("failed to read exchange rate cache: %w", err)
		}

		rate, observedAt, err := c.source.FetchRate(ctx, source, target)
		if err != nil {
			c.LogError(ctx, err, "Rate source failed", slog.String("source", source), slog.String("target", target))
			if errors.Is(err, apperrors.ErrRateUnavailable) {
				return nil, err
			}
			return nil, fmt.Errorf("%w: %s to %s: %v", apperrors.ErrRateUnavailable, source, target, err)
		}
		// Same precision as the stored column, so cache hits agree with the first conversion.
		rate = rate.Round(domain.RateDecimalPlaces)
		if !rate.IsPositive() {
			return nil, fmt.Errorf("%w: %s to %s: non-positive rate %s", apperrors.ErrRateUnavailable, source, target, rate)
		}
		if observedAt.IsZero() {
			observedAt = c.Now()
		}

		entry := domain.ExchangeRateEntry{
			SourceCurrency: source,
			TargetCurrency: target,
			Rate:           rate,
			ObservedAt:     observedAt,
		}
		if err := c.cache.UpsertCacheEntry(ctx, entry); err != nil {
			c.LogError(ctx, err, "Failed to store exchange rate", slog.String("pair", key))
			return nil, fmt.Errorf("failed to store exchange rate: %w", err)
		}

		c.LogInfo(ctx, "Exchange rate refreshed",
			slog.String("source", source),
			slog.String("target", target),
			slog.String("rate", rate.String()))
		return rateLookup{entry: entry, fromCache: false}, nil
	})

	select {
	case <-callerCtx.Done():
		return rateLookup{}, fmt.Errorf("exchange rate lookup for %s to %s: %w", source, target, callerCtx.Err())
	case res := <-flight:
		if res.Err != nil {
			return rateLookup{}, res.Err
		}
		return res.Val.(rateLookup), nil
	}
}
