package repositories

import (
	"context"

	"github.com/SscSPs/acme_marketplace/internal/core/domain"
)

// ItemReader defines read operations for items
type ItemReader interface {
	FindItemByID(ctx context.Context, itemID string) (*domain.Item, error)
	// FindItemByCode returns apperrors.ErrNotFound when no item uses code.
	FindItemByCode(ctx context.Context, code string) (*domain.Item, error)
	FindItemsByInventor(ctx context.Context, inventorID string) ([]domain.Item, error)
	FindPublishedItemsByType(ctx context.Context, itemType domain.ItemType) ([]domain.Item, error)
}

// ItemWriter defines write operations for items
type ItemWriter interface {
	SaveItem(ctx context.Context, item domain.Item) error
	UpdateItem(ctx context.Context, item domain.Item) error
	// DeleteItem removes the item together with the chimpums attached to it.
	DeleteItem(ctx context.Context, itemID string) error
}

// ItemRepositoryFacade combines all item repository interfaces
type ItemRepositoryFacade interface {
	ItemReader
	ItemWriter
}
