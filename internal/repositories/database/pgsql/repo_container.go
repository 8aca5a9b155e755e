package pgsql

import (
	portsrepo "github.com/SscSPs/acme_marketplace/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the PostgreSQL repositories over dbPool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:          NewPgxUserRepository(dbPool),
		SystemConfigRepo:  NewPgxSystemConfigurationRepository(dbPool),
		ExchangeCacheRepo: NewPgxExchangeRateCacheRepository(dbPool),
		ItemRepo:          NewPgxItemRepository(dbPool),
		ChimpumRepo:       NewPgxChimpumRepository(dbPool),
		PatronageRepo:     NewPgxPatronageRepository(dbPool),
	}
}
