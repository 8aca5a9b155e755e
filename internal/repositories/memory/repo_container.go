package memory

import (
	"github.com/SscSPs/acme_marketplace/internal/core/domain"
	portsrepo "github.com/SscSPs/acme_marketplace/internal/core/ports/repositories"
)

// NewRepositoryProvider wires in-memory repositories seeded with cfg.
func NewRepositoryProvider(cfg domain.SystemConfiguration) portsrepo.RepositoryProvider {
	chimpumRepo := NewChimpumRepository()
	return portsrepo.RepositoryProvider{
		UserRepo:          NewUserRepository(),
		SystemConfigRepo:  NewSystemConfigurationRepository(cfg),
		ExchangeCacheRepo: NewExchangeRateCache(),
		ItemRepo:          NewItemRepository(chimpumRepo),
		ChimpumRepo:       chimpumRepo,
		PatronageRepo:     NewPatronageRepository(),
	}
}
