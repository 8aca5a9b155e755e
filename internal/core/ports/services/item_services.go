package services

import (
	"context"

	"github.com/SscSPs/acme_marketplace/internal/core/domain"
	"github.com/SscSPs/acme_marketplace/internal/dto"
)

// ItemReaderSvc defines read operations for items
type ItemReaderSvc interface {
	ListMyItems(ctx context.Context, principal domain.Principal) ([]domain.Item, error)
	GetMyItem(ctx context.Context, principal domain.Principal, itemID string) (*domain.Item, error)
	ListPublishedItems(ctx context.Context, itemType domain.ItemType) ([]domain.Item, error)
}

// ItemWriterSvc defines write operations for items
type ItemWriterSvc interface {
	CreateItem(ctx context.Context, principal domain.Principal, req dto.CreateItemRequest) (*domain.Item, error)
	PublishItem(ctx context.Context, principal domain.Principal, itemID string) (*domain.Item, error)
	DeleteItem(ctx context.Context, principal domain.Principal, itemID string) error
}

// ItemSvcFacade combines all item service interfaces
type ItemSvcFacade interface {
	ItemReaderSvc
	ItemWriterSvc
}
