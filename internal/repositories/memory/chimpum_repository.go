package memory

import (
	"context"
	"sync"

	"github.com/SscSPs/acme_marketplace/internal/apperrors"
	"github.com/SscSPs/acme_marketplace/internal/core/domain"
	portsrepo "github.com/SscSPs/acme_marketplace/internal/core/ports/repositories"
)

// ChimpumRepository stores chimpums in memory.
type ChimpumRepository struct {
	mu       sync.RWMutex
	chimpums map[string]domain.Chimpum
}

// NewChimpumRepository creates an empty chimpum repository.
func NewChimpumRepository() *ChimpumRepository {
	return &ChimpumRepository{chimpums: make(map[string]domain.Chimpum)}
}

var _ portsrepo.ChimpumRepositoryFacade = (*ChimpumRepository)(nil)

func (r *ChimpumRepository) FindChimpumByID(_ context.Context, chimpumID string) (*domain.Chimpum, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.chimpums[chimpumID]
	if !ok {
		return nil, apperrors.NewNotFoundError("chimpum not found")
	}
	return &c, nil
}

func (r *ChimpumRepository) FindChimpumByCode(_ context.Context, code string) (*domain.Chimpum, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.chimpums {
		if c.Code == code {
			return &c, nil
		}
	}
	return nil, apperrors.NewNotFoundError("chimpum not found")
}

func (r *ChimpumRepository) FindChimpumsByInventor(_ context.Context, inventorID string) ([]domain.Chimpum, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Chimpum, 0)
	for _, c := range r.chimpums {
		if c.InventorID == inventorID {
			out = append(out, c)
		}
	}
	sortByCreation(out, func(c domain.Chimpum) domain.AuditFields { return c.AuditFields })
	return out, nil
}

func (r *ChimpumRepository) SaveChimpum(_ context.Context, chimpum domain.Chimpum) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.chimpums {
		if c.Code == chimpum.Code {
			return apperrors.ErrDuplicate
		}
	}
	r.chimpums[chimpum.ChimpumID] = chimpum
	return nil
}

func (r *ChimpumRepository) DeleteChimpum(_ context.Context, chimpumID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.chimpums[chimpumID]; !ok {
		return apperrors.NewNotFoundError("chimpum not found")
	}
	delete(r.chimpums, chimpumID)
	return nil
}

func (r *ChimpumRepository) deleteByItem(itemID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, c := range r.chimpums {
		if c.ItemID == itemID {
			delete(r.chimpums, id)
		}
	}
}
