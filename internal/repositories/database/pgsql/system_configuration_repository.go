package pgsql

import (
	"context"
	"net/http"
	"time"

	"github.com/SscSPs/acme_marketplace/internal/apperrors"
	"github.com/SscSPs/acme_marketplace/internal/core/domain"
	portsrepo "github.com/SscSPs/acme_marketplace/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxSystemConfigurationRepository reads and writes the single row of system_configuration.
type PgxSystemConfigurationRepository struct {
	BaseRepository
}

// NewPgxSystemConfigurationRepository creates a new PgxSystemConfigurationRepository.
func NewPgxSystemConfigurationRepository(db *pgxpool.Pool) *PgxSystemConfigurationRepository {
	return &PgxSystemConfigurationRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.SystemConfigurationRepositoryFacade = (*PgxSystemConfigurationRepository)(nil)

func (r *PgxSystemConfigurationRepository) FindSystemConfiguration(ctx context.Context) (*domain.SystemConfiguration, error) {
	query := `
		SELECT base_currency, available_currencies,
			weak_spam_terms, weak_spam_threshold,
			strong_spam_terms, strong_spam_threshold,
			exchange_rate_staleness_seconds, last_updated_at, last_updated_by
		FROM system_configuration
		WHERE id = 1;
	`
	var (
		cfg                     domain.SystemConfiguration
		available, weak, strong string
		stalenessSeconds        int64
	)
	err := r.Pool.QueryRow(ctx, query).Scan(
		&cfg.BaseCurrency, &available,
		&weak, &cfg.WeakSpam.Threshold,
		&strong, &cfg.StrongSpam.Threshold,
		&stalenessSeconds, &cfg.LastUpdatedAt, &cfg.LastUpdatedBy,
	)
	if err != nil {
		return nil, notFoundOr(err, "system configuration")
	}
	cfg.AvailableCurrencies = domain.SplitList(available)
	cfg.WeakSpam.Terms = domain.SplitList(weak)
	cfg.StrongSpam.Terms = domain.SplitList(strong)
	cfg.ExchangeRateStaleness = time.Duration(stalenessSeconds) * time.Second
	return &cfg, nil
}

func (r *PgxSystemConfigurationRepository) SaveSystemConfiguration(ctx context.Context, cfg domain.SystemConfiguration) error {
	query := `
		INSERT INTO system_configuration (
			id, base_currency, available_currencies,
			weak_spam_terms, weak_spam_threshold,
			strong_spam_terms, strong_spam_threshold,
			exchange_rate_staleness_seconds, last_updated_at, last_updated_by
		) VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			base_currency = EXCLUDED.base_currency,
			available_currencies = EXCLUDED.available_currencies,
			weak_spam_terms = EXCLUDED.weak_spam_terms,
			weak_spam_threshold = EXCLUDED.weak_spam_threshold,
			strong_spam_terms = EXCLUDED.strong_spam_terms,
			strong_spam_threshold = EXCLUDED.strong_spam_threshold,
			exchange_rate_staleness_seconds = EXCLUDED.exchange_rate_staleness_seconds,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		cfg.BaseCurrency, domain.JoinList(cfg.AvailableCurrencies),
		domain.JoinList(cfg.WeakSpam.Terms), cfg.WeakSpam.Threshold,
		domain.JoinList(cfg.StrongSpam.Terms), cfg.StrongSpam.Threshold,
		int64(cfg.Staleness()/time.Second), cfg.LastUpdatedAt, cfg.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to save system configuration", err)
	}
	return nil
}
