package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/SscSPs/acme_marketplace/internal/core/domain"
	portsrepo "github.com/SscSPs/acme_marketplace/internal/core/ports/repositories"
)

// SystemConfigurationRepository holds the configuration record in memory.
type SystemConfigurationRepository struct {
	mu  sync.RWMutex
	cfg domain.SystemConfiguration
}

// NewSystemConfigurationRepository starts from cfg.
func NewSystemConfigurationRepository(cfg domain.SystemConfiguration) *SystemConfigurationRepository {
	return &SystemConfigurationRepository{cfg: cloneConfiguration(cfg)}
}

var _ portsrepo.SystemConfigurationRepositoryFacade = (*SystemConfigurationRepository)(nil)

func (r *SystemConfigurationRepository) FindSystemConfiguration(_ context.Context) (*domain.SystemConfiguration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cfg := cloneConfiguration(r.cfg)
	return &cfg, nil
}

func (r *SystemConfigurationRepository) SaveSystemConfiguration(_ context.Context, cfg domain.SystemConfiguration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cfg = cloneConfiguration(cfg)
	return nil
}

// cloneConfiguration copies the slices so callers cannot mutate the stored record.
func cloneConfiguration(cfg domain.SystemConfiguration) domain.SystemConfiguration {
	cfg.AvailableCurrencies = slices.Clone(cfg.AvailableCurrencies)
	cfg.WeakSpam.Terms = slices.Clone(cfg.WeakSpam.Terms)
	cfg.StrongSpam.Terms = slices.Clone(cfg.StrongSpam.Terms)
	return cfg
}
