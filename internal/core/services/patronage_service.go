package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/acme_marketplace/internal/apperrors"
	"github.com/SscSPs/acme_marketplace/internal/core/domain"
	portsrepo "github.com/SscSPs/acme_marketplace/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/acme_marketplace/internal/core/ports/services"
	"github.com/SscSPs/acme_marketplace/internal/dto"
	"github.com/google/uuid"
)

const (
	keyPatronageTooClose        = "patronage.form.error.too-close"
	keyPatronageShortDuration   = "patronage.form.error.insufficient-duration"
	keyPatronageBudgetCurrency  = "patronage.form.error.currency-not-available"
	keyPatronageUnknownInventor = "patronage.form.error.inventor-not-found"
	keyPatronageAlreadyDecided  = "patronage.form.error.already-decided"
)

type patronageService struct {
	BaseService
	patronageRepo portsrepo.PatronageRepositoryFacade
	userRepo      portsrepo.UserReader
	configRepo    portsrepo.SystemConfigurationReader
}

// NewPatronageService creates a new patronage service.
func NewPatronageService(patronageRepo portsrepo.PatronageRepositoryFacade, userRepo portsrepo.UserReader, configRepo portsrepo.SystemConfigurationReader) portssvc.PatronageSvcFacade {
	return &patronageService{
		patronageRepo: patronageRepo,
		userRepo:      userRepo,
		configRepo:    configRepo,
	}
}

var _ portssvc.PatronageSvcFacade = (*patronageService)(nil)

func (s *patronageService) CreatePatronage(ctx context.Context, principal domain.Principal, req dto.PatronageRequest) (*domain.Patronage, error) {
	if principal.Role != domain.RolePatron {
		return nil, apperrors.NewForbiddenError("only patrons may propose patronages")
	}

	// Truncated so a start date of exactly one month later passes.
	now := s.Now().Truncate(time.Second)
	patronage := domain.Patronage{
		PatronageID:    uuid.NewString(),
		PatronID:       principal.UserID,
		Status:         domain.PatronageProposed,
		CreationMoment: now,
		Published:      false,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     principal.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: principal.UserID,
		},
	}
	applyPatronageRequest(&patronage, req)

	if err := s.validate(ctx, patronage); err != nil {
		return nil, err
	}

	if err := s.patronageRepo.SavePatronage(ctx, patronage); err != nil {
		s.LogError(ctx, err, "Failed to save patronage", slog.String("patronage_id", patronage.PatronageID))
		return nil, fmt.Errorf("failed to save patronage: %w", err)
	}

	s.LogInfo(ctx, "Patronage proposed",
		slog.String("patronage_id", patronage.PatronageID),
		slog.String("inventor_id", patronage.InventorID))
	return &patronage, nil
}

func (s *patronageService) UpdatePatronage(ctx context.Context, principal domain.Principal, patronageID string, req dto.PatronageRequest) (*domain.Patronage, error) {
	patronage, err := s.findEditable(ctx, principal, patronageID)
	if err != nil {
		return nil, err
	}

	applyPatronageRequest(patronage, req)
	if err := s.validate(ctx, *patronage); err != nil {
		return nil, err
	}

	patronage.LastUpdatedAt = s.Now()
	patronage.LastUpdatedBy = principal.UserID
	if err := s.patronageRepo.UpdatePatronage(ctx, *patronage); err != nil {
		s.LogError(ctx, err, "Failed to update patronage", slog.String("patronage_id", patronageID))
		return nil, fmt.Errorf("failed to update patronage: %w", err)
	}

	s.LogInfo(ctx, "Patronage updated", slog.String("patronage_id", patronageID))
	return patronage, nil
}

func (s *patronageService) PublishPatronage(ctx context.Context, principal domain.Principal, patronageID string) (*domain.Patronage, error) {
	patronage, err := s.findEditable(ctx, principal, patronageID)
	if err != nil {
		return nil, err
	}
	if err := s.validate(ctx, *patronage); err != nil {
		return nil, err
	}

	patronage.Published = true
	patronage.LastUpdatedAt = s.Now()
	patronage.LastUpdatedBy = principal.UserID
	if err := s.patronageRepo.UpdatePatronage(ctx, *patronage); err != nil {
		s.LogError(ctx, err, "Failed to publish patronage", slog.String("patronage_id", patronageID))
		return nil, fmt.Errorf("failed to publish patronage: %w", err)
	}

	s.LogInfo(ctx, "Patronage published", slog.String("patronage_id", patronageID))
	return patronage, nil
}

func (s *patronageService) ListMyPatronages(ctx context.Context, principal domain.Principal) ([]domain.Patronage, error) {
	patronages, err := s.patronageRepo.FindPatronagesByPatron(ctx, principal.UserID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list patronages", slog.String("patron_id", principal.UserID))
		return nil, fmt.Errorf("failed to list patronages: %w", err)
	}
	return patronages, nil
}

func (s *patronageService) ListReceivedPatronages(ctx context.Context, principal domain.Principal) ([]domain.Patronage, error) {
	patronages, err := s.patronageRepo.FindPublishedPatronagesByInventor(ctx, principal.UserID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list received patronages", slog.String("inventor_id", principal.UserID))
		return nil, fmt.Errorf("failed to list received patronages: %w", err)
	}
	return patronages, nil
}

func (s *patronageService) DecidePatronage(ctx context.Context, principal domain.Principal, patronageID string, status domain.PatronageStatus) (*domain.Patronage, error) {
	if status != domain.PatronageAccepted && status != domain.PatronageDenied {
		return nil, apperrors.NewValidationError("status must be ACCEPTED or DENIED")
	}

	patronage, err := s.findPatronage(ctx, patronageID)
	if err != nil {
		return nil, err
	}
	// Unpublished proposals are invisible to the inventor.
	if !patronage.Published {
		return nil, apperrors.NewNotFoundError("patronage not found")
	}
	if err := s.AuthorizeOwner(ctx, principal, domain.RoleInventor, patronage.InventorID, "patronage"); err != nil {
		return nil, err
	}
	if patronage.Status != domain.PatronageProposed {
		var errs apperrors.FieldErrors
		errs.Add("status", keyPatronageAlreadyDecided)
		return nil, errs.Err()
	}

	patronage.Status = status
	patronage.LastUpdatedAt = s.Now()
	patronage.LastUpdatedBy = principal.UserID
	if err := s.patronageRepo.UpdatePatronage(ctx, *patronage); err != nil {
		s.LogError(ctx, err, "Failed to update patronage status", slog.String("patronage_id", patronageID))
		return nil, fmt.Errorf("failed to update patronage status: %w", err)
	}

	s.LogInfo(ctx, "Patronage decided",
		slog.String("patronage_id", patronageID),
		slog.String("status", string(status)))
	return patronage, nil
}

func (s *patronageService) findPatronage(ctx context.Context, patronageID string) (*domain.Patronage, error) {
	patronage, err := s.patronageRepo.FindPatronageByID(ctx, patronageID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("patronage not found")
		}
		s.LogError(ctx, err, "Failed to find patronage", slog.String("patronage_id", patronageID))
		return nil, fmt.Errorf("failed to find patronage: %w", err)
	}
	return patronage, nil
}

// findEditable returns a patronage the principal owns and has not published.
func (s *patronageService) findEditable(ctx context.Context, principal domain.Principal, patronageID string) (*domain.Patronage, error) {
	patronage, err := s.findPatronage(ctx, patronageID)
	if err != nil {
		return nil, err
	}
	if err := s.AuthorizeOwner(ctx, principal, domain.RolePatron, patronage.PatronID, "patronage"); err != nil {
		return nil, err
	}
	if patronage.Published {
		return nil, apperrors.NewForbiddenError("published patronages cannot be changed")
	}
	return patronage, nil
}

func applyPatronageRequest(p *domain.Patronage, req dto.PatronageRequest) {
	p.InventorID = req.InventorID
	p.Code = req.Code
	p.LegalStuff = req.LegalStuff
	p.Budget = req.Budget.ToDomain()
	p.StartDate = req.StartDate
	p.EndDate = req.EndDate
	p.MoreInfo = req.MoreInfo
}

func (s *patronageService) validate(ctx context.Context, p domain.Patronage) error {
	cfg, err := s.configRepo.FindSystemConfiguration(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load system configuration")
		return fmt.Errorf("failed to load system configuration: %w", err)
	}

	v := newFormValidator(*cfg)
	v.noSpam("legalStuff", p.LegalStuff)
	v.noSpam("moreInfo", p.MoreInfo)

	inventor, err := s.userRepo.FindUserByID(ctx, p.InventorID)
	switch {
	case err == nil:
		v.state(inventor.Role == domain.RoleInventor, "inventorID", keyPatronageUnknownInventor)
	case errors.Is(err, apperrors.ErrNotFound):
		v.state(false, "inventorID", keyPatronageUnknownInventor)
	default:
		s.LogError(ctx, err, "Failed to find inventor", slog.String("inventor_id", p.InventorID))
		return fmt.Errorf("failed to find inventor: %w", err)
	}

	err = v.uniqueCode("code", func() (bool, error) {
		existing, err := s.patronageRepo.FindPatronageByCode(ctx, p.Code)
		return codeHeldByOther(existing, err, func(o *domain.Patronage) bool { return o.PatronageID != p.PatronageID })
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to check patronage code", slog.String("code", p.Code))
		return fmt.Errorf("failed to check patronage code: %w", err)
	}

	earliestStart := p.CreationMoment.AddDate(0, 1, 0)
	v.state(!p.StartDate.Before(earliestStart), "startDate", keyPatronageTooClose)
	if !v.hasErrors("startDate") && !v.hasErrors("endDate") {
		v.state(!p.EndDate.Before(p.StartDate.AddDate(0, 1, 0)), "endDate", keyPatronageShortDuration)
	}

	if !v.hasErrors("budget") {
		v.availableCurrency("budget", p.Budget, keyPatronageBudgetCurrency)
		v.state(p.Budget.IsPositive(), "budget", keyBudgetPositive)
	}

	return v.err()
}
