package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/acme_marketplace/internal/apperrors"
	"github.com/SscSPs/acme_marketplace/internal/core/domain"
	portsrepo "github.com/SscSPs/acme_marketplace/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/acme_marketplace/internal/core/ports/services"
	"github.com/SscSPs/acme_marketplace/internal/dto"
	"github.com/google/uuid"
)

const (
	keyChimpumBudgetCurrency = "chimpum.form.error.budget-currency-not-available"
	keyChimpumEndBeforeStart = "chimpum.form.error.end-before-start"
)

type chimpumService struct {
	BaseService
	chimpumRepo portsrepo.ChimpumRepositoryFacade
	itemRepo    portsrepo.ItemReader
	configRepo  portsrepo.SystemConfigurationReader
	exchange    portssvc.MoneyExchangeSvc
}

// NewChimpumService creates a new chimpum service.
func NewChimpumService(chimpumRepo portsrepo.ChimpumRepositoryFacade, itemRepo portsrepo.ItemReader, configRepo portsrepo.SystemConfigurationReader, exchange portssvc.MoneyExchangeSvc) portssvc.ChimpumSvcFacade {
	return &chimpumService{
		chimpumRepo: chimpumRepo,
		itemRepo:    itemRepo,
		configRepo:  configRepo,
		exchange:    exchange,
	}
}

var _ portssvc.ChimpumSvcFacade = (*chimpumService)(nil)

func (s *chimpumService) CreateChimpum(ctx context.Context, principal domain.Principal, itemID string, req dto.CreateChimpumRequest) (*domain.Chimpum, error) {
	item, err := s.itemRepo.FindItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("item not found")
		}
		s.LogError(ctx, err, "Failed to find item", slog.String("item_id", itemID))
		return nil, fmt.Errorf("failed to find item: %w", err)
	}
	if err := s.AuthorizeOwner(ctx, principal, domain.RoleInventor, item.InventorID, "item"); err != nil {
		return nil, err
	}

	cfg, err := s.configRepo.FindSystemConfiguration(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load system configuration")
		return nil, fmt.Errorf("failed to load system configuration: %w", err)
	}

	now := s.Now()
	chimpum := domain.Chimpum{
		ChimpumID:      uuid.NewString(),
		ItemID:         item.ItemID,
		InventorID:     principal.UserID,
		Code:           req.Code,
		Title:          req.Title,
		Description:    req.Description,
		CreationMoment: now,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Budget:         req.Budget.ToDomain(),
		MoreInfo:       req.MoreInfo,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     principal.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: principal.UserID,
		},
	}

	v := newFormValidator(*cfg)
	v.noSpam("title", chimpum.Title)
	v.noSpam("description", chimpum.Description)

	err = v.uniqueCode("code", func() (bool, error) {
		existing, err := s.chimpumRepo.FindChimpumByCode(ctx, chimpum.Code)
		return codeHeldByOther(existing, err, func(*domain.Chimpum) bool { return true })
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to check chimpum code", slog.String("code", chimpum.Code))
		return nil, fmt.Errorf("failed to check chimpum code: %w", err)
	}

	if !v.hasErrors("budget") {
		v.availableCurrency("budget", chimpum.Budget, keyChimpumBudgetCurrency)
		v.state(chimpum.Budget.IsPositive(), "budget", keyBudgetPositive)
	}
	v.state(chimpum.EndDate.After(chimpum.StartDate), "endDate", keyChimpumEndBeforeStart)

	if err := v.err(); err != nil {
		return nil, err
	}

	conversion, err := s.exchange.ToBaseCurrency(ctx, chimpum.Budget, *cfg)
	if err != nil {
		s.LogError(ctx, err, "Failed to convert chimpum budget", slog.String("budget", chimpum.Budget.String()))
		return nil, fmt.Errorf("failed to convert budget: %w", err)
	}
	chimpum.ConvertedBudget = conversion.Target
	chimpum.ExchangeDate = conversion.AsOf

	if err := s.chimpumRepo.SaveChimpum(ctx, chimpum); err != nil {
		s.LogError(ctx, err, "Failed to save chimpum", slog.String("chimpum_id", chimpum.ChimpumID))
		return nil, fmt.Errorf("failed to save chimpum: %w", err)
	}

	s.LogInfo(ctx, "Chimpum created",
		slog.String("chimpum_id", chimpum.ChimpumID),
		slog.String("item_id", chimpum.ItemID))
	return &chimpum, nil
}

func (s *chimpumService) ListMyChimpums(ctx context.Context, principal domain.Principal) ([]domain.Chimpum, error) {
	chimpums, err := s.chimpumRepo.FindChimpumsByInventor(ctx, principal.UserID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list chimpums", slog.String("inventor_id", principal.UserID))
		return nil, fmt.Errorf("failed to list chimpums: %w", err)
	}
	return chimpums, nil
}

func (s *chimpumService) GetMyChimpum(ctx context.Context, principal domain.Principal, chimpumID string) (*domain.Chimpum, error) {
	chimpum, err := s.chimpumRepo.FindChimpumByID(ctx, chimpumID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("chimpum not found")
		}
		s.LogError(ctx, err, "Failed to find chimpum", slog.String("chimpum_id", chimpumID))
		return nil, fmt.Errorf("failed to find chimpum: %w", err)
	}
	if err := s.AuthorizeOwner(ctx, principal, domain.RoleInventor, chimpum.InventorID, "chimpum"); err != nil {
		return nil, err
	}
	return chimpum, nil
}

func (s *chimpumService) DeleteChimpum(ctx context.Context, principal domain.Principal, chimpumID string) error {
	chimpum, err := s.GetMyChimpum(ctx, principal, chimpumID)
	if err != nil {
		return err
	}
	if err := s.chimpumRepo.DeleteChimpum(ctx, chimpum.ChimpumID); err != nil {
		s.LogError(ctx, err, "Failed to delete chimpum", slog.String("chimpum_id", chimpum.ChimpumID))
		return fmt.Errorf("failed to delete chimpum: %w", err)
	}
	s.LogInfo(ctx, "Chimpum deleted", slog.String("chimpum_id", chimpum.ChimpumID))
	return nil
}
