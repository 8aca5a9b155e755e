package services

import (
	"context"

	"github.com/SscSPs/acme_marketplace/internal/core/domain"
	"github.com/SscSPs/acme_marketplace/internal/dto"
)

// SystemConfigurationReaderSvc defines read operations for the configuration record
type SystemConfigurationReaderSvc interface {
	// GetSystemConfiguration returns a snapshot of the configuration record.
	GetSystemConfiguration(ctx context.Context) (*domain.SystemConfiguration, error)
}

// SystemConfigurationWriterSvc defines write operations for the configuration record
type SystemConfigurationWriterSvc interface {
	// UpdateSystemConfiguration replaces the configuration record. Administrators only.
	UpdateSystemConfiguration(ctx context.Context, principal domain.Principal, req dto.UpdateSystemConfigurationRequest) (*domain.SystemConfiguration, error)
}

// SystemConfigurationSvcFacade combines the configuration service interfaces
type SystemConfigurationSvcFacade interface {
	SystemConfigurationReaderSvc
	SystemConfigurationWriterSvc
}
