package pgsql

import (
	"context"
	"net/http"

	"github.com/SscSPs/acme_marketplace/internal/apperrors"
	"github.com/SscSPs/acme_marketplace/internal/core/domain"
	portsrepo "github.com/SscSPs/acme_marketplace/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxExchangeRateCacheRepository stores the exchange rate cache in money_exchange_cache.
type PgxExchangeRateCacheRepository struct {
	BaseRepository
}

// NewPgxExchangeRateCacheRepository creates a new PgxExchangeRateCacheRepository.
func NewPgxExchangeRateCacheRepository(db *pgxpool.Pool) *PgxExchangeRateCacheRepository {
	return &PgxExchangeRateCacheRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.ExchangeRateCacheFacade = (*PgxExchangeRateCacheRepository)(nil)

// FindCacheEntry retrieves the cached rate for an ordered currency pair.
func (r *PgxExchangeRateCacheRepository) FindCacheEntry(ctx context.Context, sourceCurrency, targetCurrency string) (*domain.ExchangeRateEntry, error) {
	query := `
		SELECT source_currency, target_currency, rate, observed_at
		FROM money_exchange_cache
		WHERE source_currency = $1 AND target_currency = $2;
	`
	var entry domain.ExchangeRateEntry
	err := r.Pool.QueryRow(ctx, query, sourceCurrency, targetCurrency).Scan(
		&entry.SourceCurrency, &entry.TargetCurrency, &entry.Rate, &entry.ObservedAt,
	)
	if err != nil {
		return nil, notFoundOr(err, "exchange rate")
	}
	entry.ObservedAt = entry.ObservedAt.UTC()
	return &entry, nil
}

// UpsertCacheEntry inserts the entry or overwrites the row for the same pair.
func (r *PgxExchangeRateCacheRepository) UpsertCacheEntry(ctx context.Context, entry domain.ExchangeRateEntry) error {
	query := `
		INSERT INTO money_exchange_cache (source_currency, target_currency, rate, observed_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (source_currency, target_currency) DO UPDATE SET
			rate = EXCLUDED.rate,
			observed_at = EXCLUDED.observed_at;
	`
	if _, err := r.Pool.Exec(ctx, query, entry.SourceCurrency, entry.TargetCurrency, entry.Rate, entry.ObservedAt); err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to upsert exchange rate", err)
	}
	return nil
}
