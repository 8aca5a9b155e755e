package repositories

import (
	"context"

	"github.com/SscSPs/acme_marketplace/internal/core/domain"
)

// SystemConfigurationReader loads the single system-wide configuration record
type SystemConfigurationReader interface {
	FindSystemConfiguration(ctx context.Context) (*domain.SystemConfiguration, error)
}

// SystemConfigurationWriter replaces the configuration record
type SystemConfigurationWriter interface {
	SaveSystemConfiguration(ctx context.Context, cfg domain.SystemConfiguration) error
}

// SystemConfigurationRepositoryFacade combines the configuration repository interfaces
type SystemConfigurationRepositoryFacade interface {
	SystemConfigurationReader
	SystemConfigurationWriter
}
