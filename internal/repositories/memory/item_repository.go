package memory

import (
	"context"
	"sync"

	"github.com/SscSPs/acme_marketplace/internal/apperrors"
	"github.com/SscSPs/acme_marketplace/internal/core/domain"
	portsrepo "github.com/SscSPs/acme_marketplace/internal/core/ports/repositories"
)

// ItemRepository stores items in memory. Deleting an item also deletes its
// chimpums from chimpums.
type ItemRepository struct {
	mu       sync.RWMutex
	items    map[string]domain.Item
	chimpums *ChimpumRepository
}

// NewItemRepository creates an empty item repository.
func NewItemRepository(chimpums *ChimpumRepository) *ItemRepository {
	return &ItemRepository{items: make(map[string]domain.Item), chimpums: chimpums}
}

var _ portsrepo.ItemRepositoryFacade = (*ItemRepository)(nil)

func (r *ItemRepository) FindItemByID(_ context.Context, itemID string) (*domain.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, ok := r.items[itemID]
	if !ok {
		return nil, apperrors.NewNotFoundError("item not found")
	}
	return &item, nil
}

func (r *ItemRepository) FindItemByCode(_ context.Context, code string) (*domain.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, item := range r.items {
		if item.Code == code {
			return &item, nil
		}
	}
	return nil, apperrors.NewNotFoundError("item not found")
}

func (r *ItemRepository) FindItemsByInventor(_ context.Context, inventorID string) ([]domain.Item, error) {
	return r.filter(func(i domain.Item) bool { return i.InventorID == inventorID }), nil
}

func (r *ItemRepository) FindPublishedItemsByType(_ context.Context, itemType domain.ItemType) ([]domain.Item, error) {
	return r.filter(func(i domain.Item) bool { return i.Published && i.Type == itemType }), nil
}

func (r *ItemRepository) filter(keep func(domain.Item) bool) []domain.Item {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Item, 0)
	for _, item := range r.items {
		if keep(item) {
			out = append(out, item)
		}
	}
	sortByCreation(out, func(i domain.Item) domain.AuditFields { return i.AuditFields })
	return out
}

func (r *ItemRepository) SaveItem(_ context.Context, item domain.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.items {
		if existing.Code == item.Code {
			return apperrors.ErrDuplicate
		}
	}
	r.items[item.ItemID] = item
	return nil
}

func (r *ItemRepository) UpdateItem(_ context.Context, item domain.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[item.ItemID]; !ok {
		return apperrors.NewNotFoundError("item not found")
	}
	for id, existing := range r.items {
		if id != item.ItemID && existing.Code == item.Code {
			return apperrors.ErrDuplicate
		}
	}
	r.items[item.ItemID] = item
	return nil
}

func (r *ItemRepository) DeleteItem(_ context.Context, itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[itemID]; !ok {
		return apperrors.NewNotFoundError("item not found")
	}
	if r.chimpums != nil {
		r.chimpums.deleteByItem(itemID)
	}
	delete(r.items, itemID)
	return nil
}
