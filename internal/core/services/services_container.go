package services

import (
	portsrepo "github.com/SscSPs/acme_marketplace/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/acme_marketplace/internal/core/ports/services"
	"github.com/SscSPs/acme_marketplace/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, rateSource portssvc.ExchangeRateSource) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The calculator is shared so that refreshes of one pair are collapsed across services
	calculator := NewExchangeCalculator(repos.ExchangeCacheRepo, rateSource)
	container.Exchange = NewMoneyExchangeService(calculator, repos.SystemConfigRepo)

	container.Auth = NewAuthService(cfg, repos.UserRepo)
	container.SystemConfig = NewSystemConfigurationService(repos.SystemConfigRepo)
	container.Item = NewItemService(repos.ItemRepo, repos.SystemConfigRepo, container.Exchange)
	container.Chimpum = NewChimpumService(repos.ChimpumRepo, repos.ItemRepo, repos.SystemConfigRepo, container.Exchange)
	container.Patronage = NewPatronageService(repos.PatronageRepo, repos.UserRepo, repos.SystemConfigRepo)

	return container
}
