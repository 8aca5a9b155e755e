package services

import (
	"context"

	"github.com/SscSPs/acme_marketplace/internal/core/domain"
	"github.com/SscSPs/acme_marketplace/internal/dto"
)

// PatronagePatronSvc defines the operations available to patrons
type PatronagePatronSvc interface {
	CreatePatronage(ctx context.Context, principal domain.Principal, req dto.PatronageRequest) (*domain.Patronage, error)
	UpdatePatronage(ctx context.Context, principal domain.Principal, patronageID string, req dto.PatronageRequest) (*domain.Patronage, error)
	PublishPatronage(ctx context.Context, principal domain.Principal, patronageID string) (*domain.Patronage, error)
	ListMyPatronages(ctx context.Context, principal domain.Principal) ([]domain.Patronage, error)
}

// PatronageInventorSvc defines the operations available to inventors
type PatronageInventorSvc interface {
	ListReceivedPatronages(ctx context.Context, principal domain.Principal) ([]domain.Patronage, error)
	DecidePatronage(ctx context.Context, principal domain.Principal, patronageID string, status domain.PatronageStatus) (*domain.Patronage, error)
}

// PatronageSvcFacade combines all patronage service interfaces
type PatronageSvcFacade interface {
	PatronagePatronSvc
	PatronageInventorSvc
}
