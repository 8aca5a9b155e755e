package memory

import (
	"context"
	"sync"

	"github.com/SscSPs/acme_marketplace/internal/apperrors"
	"github.com/SscSPs/acme_marketplace/internal/core/domain"
	portsrepo "github.com/SscSPs/acme_marketplace/internal/core/ports/repositories"
)

// PatronageRepository stores patronages in memory.
type PatronageRepository struct {
	mu         sync.RWMutex
	patronages map[string]domain.Patronage
}

// NewPatronageRepository creates an empty patronage repository.
func NewPatronageRepository() *PatronageRepository {
	return &PatronageRepository{patronages: make(map[string]domain.Patronage)}
}

var _ portsrepo.PatronageRepositoryFacade = (*PatronageRepository)(nil)

func (r *PatronageRepository) FindPatronageByID(_ context.Context, patronageID string) (*domain.Patronage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.patronages[patronageID]
	if !ok {
		return nil, apperrors.NewNotFoundError("patronage not found")
	}
	return &p, nil
}

func (r *PatronageRepository) FindPatronageByCode(_ context.Context, code string) (*domain.Patronage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.patronages {
		if p.Code == code {
			return &p, nil
		}
	}
	return nil, apperrors.NewNotFoundError("patronage not found")
}

func (r *PatronageRepository) FindPatronagesByPatron(_ context.Context, patronID string) ([]domain.Patronage, error) {
	return r.filter(func(p domain.Patronage) bool { return p.PatronID == patronID }), nil
}

func (r *PatronageRepository) FindPublishedPatronagesByInventor(_ context.Context, inventorID string) ([]domain.Patronage, error) {
	return r.filter(func(p domain.Patronage) bool { return p.Published && p.InventorID == inventorID }), nil
}

func (r *PatronageRepository) filter(keep func(domain.Patronage) bool) []domain.Patronage {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Patronage, 0)
	for _, p := range r.patronages {
		if keep(p) {
			out = append(out, p)
		}
	}
	sortByCreation(out, func(p domain.Patronage) domain.AuditFields { return p.AuditFields })
	return out
}

func (r *PatronageRepository) SavePatronage(_ context.Context, patronage domain.Patronage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.patronages {
		if p.Code == patronage.Code {
			return apperrors.ErrDuplicate
		}
	}
	r.patronages[patronage.PatronageID] = patronage
	return nil
}

func (r *PatronageRepository) UpdatePatronage(_ context.Context, patronage domain.Patronage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.patronages[patronage.PatronageID]; !ok {
		return apperrors.NewNotFoundError("patronage not found")
	}
	for id, p := range r.patronages {
		if id != patronage.PatronageID && p.Code == patronage.Code {
			return apperrors.ErrDuplicate
		}
	}
	r.patronages[patronage.PatronageID] = patronage
	return nil
}
