package repositories

import (
	"context"

	"github.com/SscSPs/acme_marketplace/internal/core/domain"
)

// ChimpumReader defines read operations for chimpums
type ChimpumReader interface {
	FindChimpumByID(ctx context.Context, chimpumID string) (*domain.Chimpum, error)
	FindChimpumByCode(ctx context.Context, code string) (*domain.Chimpum, error)
	FindChimpumsByInventor(ctx context.Context, inventorID string) ([]domain.Chimpum, error)
}

// ChimpumWriter defines write operations for chimpums
type ChimpumWriter interface {
	SaveChimpum(ctx context.Context, chimpum domain.Chimpum) error
	DeleteChimpum(ctx context.Context, chimpumID string) error
}

// ChimpumRepositoryFacade combines all chimpum repository interfaces
type ChimpumRepositoryFacade interface {
	ChimpumReader
	ChimpumWriter
}
