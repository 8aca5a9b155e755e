package repositories

import (
	"context"

	"github.com/SscSPs/acme_marketplace/internal/core/domain"
)

// PatronageReader defines read operations for patronages
type PatronageReader interface {
	FindPatronageByID(ctx context.Context, patronageID string) (*domain.Patronage, error)
	FindPatronageByCode(ctx context.Context, code string) (*domain.Patronage, error)
	FindPatronagesByPatron(ctx context.Context, patronID string) ([]domain.Patronage, error)
	// FindPublishedPatronagesByInventor lists published proposals addressed to an inventor.
	FindPublishedPatronagesByInventor(ctx context.Context, inventorID string) ([]domain.Patronage, error)
}

// PatronageWriter defines write operations for patronages
type PatronageWriter interface {
	SavePatronage(ctx context.Context, patronage domain.Patronage) error
	UpdatePatronage(ctx context.Context, patronage domain.Patronage) error
}

// PatronageRepositoryFacade combines all patronage repository interfaces
type PatronageRepositoryFacade interface {
	PatronageReader
	PatronageWriter
}
