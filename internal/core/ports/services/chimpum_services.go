package services

import (
	"context"

	"github.com/SscSPs/acme_marketplace/internal/core/domain"
	"github.com/SscSPs/acme_marketplace/internal/dto"
)

// ChimpumSvcFacade manages an inventor's chimpums.
type ChimpumSvcFacade interface {
	CreateChimpum(ctx context.Context, principal domain.Principal, itemID string, req dto.CreateChimpumRequest) (*domain.Chimpum, error)
	ListMyChimpums(ctx context.Context, principal domain.Principal) ([]domain.Chimpum, error)
	GetMyChimpum(ctx context.Context, principal domain.Principal, chimpumID string) (*domain.Chimpum, error)
	DeleteChimpum(ctx context.Context, principal domain.Principal, chimpumID string) error
}
