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
	keyRetailPriceCurrency  = "item.form.error.retail-price-currency-not-available"
	keyComponentPositive    = "item.form.error.retail-price-component-positive"
	keyToolZeroOrPositive   = "item.form.error.retail-price-tool-zero-or-positive"
	keyItemAlreadyPublished = "item.form.error.already-published"
)

type itemService struct {
	BaseService
	itemRepo   portsrepo.ItemRepositoryFacade
	configRepo portsrepo.SystemConfigurationReader
	exchange   portssvc.MoneyExchangeSvc
}

// NewItemService creates a new item service.
func NewItemService(itemRepo portsrepo.ItemRepositoryFacade, configRepo portsrepo.SystemConfigurationReader, exchange portssvc.MoneyExchangeSvc) portssvc.ItemSvcFacade {
	return &itemService{
		itemRepo:   itemRepo,
		configRepo: configRepo,
		exchange:   exchange,
	}
}

var _ portssvc.ItemSvcFacade = (*itemService)(nil)

func (s *itemService) ListMyItems(ctx context.Context, principal domain.Principal) ([]domain.Item, error) {
	items, err := s.itemRepo.FindItemsByInventor(ctx, principal.UserID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list items", slog.String("inventor_id", principal.UserID))
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return items, nil
}

func (s *itemService) GetMyItem(ctx context.Context, principal domain.Principal, itemID string) (*domain.Item, error) {
	item, err := s.findItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if err := s.AuthorizeOwner(ctx, principal, domain.RoleInventor, item.InventorID, "item"); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *itemService) ListPublishedItems(ctx context.Context, itemType domain.ItemType) ([]domain.Item, error) {
	if !itemType.IsValid() {
		return nil, apperrors.NewValidationError("type must be COMPONENT or TOOL")
	}
	items, err := s.itemRepo.FindPublishedItemsByType(ctx, itemType)
	if err != nil {
		s.LogError(ctx, err, "Failed to list published items", slog.String("type", string(itemType)))
		return nil, fmt.Errorf("failed to list published items: %w", err)
	}
	return items, nil
}

func (s *itemService) CreateItem(ctx context.Context, principal domain.Principal, req dto.CreateItemRequest) (*domain.Item, error) {
	if principal.Role != domain.RoleInventor {
		return nil, apperrors.NewForbiddenError("only inventors may create items")
	}

	cfg, err := s.configRepo.FindSystemConfiguration(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load system configuration")
		return nil, fmt.Errorf("failed to load system configuration: %w", err)
	}

	now := s.Now()
	item := domain.Item{
		ItemID:      uuid.NewString(),
		InventorID:  principal.UserID,
		Type:        req.Type,
		Name:        req.Name,
		Code:        req.Code,
		Technology:  req.Technology,
		Description: req.Description,
		RetailPrice: req.RetailPrice.ToDomain(),
		MoreInfo:    req.MoreInfo,
		Published:   false,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     principal.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: principal.UserID,
		},
	}

	if err := s.validate(ctx, *cfg, item); err != nil {
		return nil, err
	}

	conversion, err := s.exchange.ToBaseCurrency(ctx, item.RetailPrice, *cfg)
	if err != nil {
		s.LogError(ctx, err, "Failed to convert retail price", slog.String("price", item.RetailPrice.String()))
		return nil, fmt.Errorf("failed to convert retail price: %w", err)
	}
	item.ConvertedPrice = conversion.Target
	item.ExchangeDate = conversion.AsOf

	if err := s.itemRepo.SaveItem(ctx, item); err != nil {
		s.LogError(ctx, err, "Failed to save item", slog.String("item_id", item.ItemID))
		return nil, fmt.Errorf("failed to save item: %w", err)
	}

	s.LogInfo(ctx, "Item created", slog.String("item_id", item.ItemID), slog.String("code", item.Code))
	return &item, nil
}

func (s *itemService) PublishItem(ctx context.Context, principal domain.Principal, itemID string) (*domain.Item, error) {
	item, err := s.GetMyItem(ctx, principal, itemID)
	if err != nil {
		return nil, err
	}
	if item.Published {
		var errs apperrors.FieldErrors
		errs.Add("published", keyItemAlreadyPublished)
		return nil, errs.Err()
	}

	cfg, err := s.configRepo.FindSystemConfiguration(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load system configuration")
		return nil, fmt.Errorf("failed to load system configuration: %w", err)
	}
	if err := s.validate(ctx, *cfg, *item); err != nil {
		return nil, err
	}

	item.Published = true
	item.LastUpdatedAt = s.Now()
	item.LastUpdatedBy = principal.UserID
	if err := s.itemRepo.UpdateItem(ctx, *item); err != nil {
		s.LogError(ctx, err, "Failed to publish item", slog.String("item_id", item.ItemID))
		return nil, fmt.Errorf("failed to publish item: %w", err)
	}

	s.LogInfo(ctx, "Item published", slog.String("item_id", item.ItemID))
	return item, nil
}

func (s *itemService) DeleteItem(ctx context.Context, principal domain.Principal, itemID string) error {
	item, err := s.GetMyItem(ctx, principal, itemID)
	if err != nil {
		return err
	}
	if item.Published {
		return apperrors.NewForbiddenError("published items cannot be deleted")
	}
	if err := s.itemRepo.DeleteItem(ctx, item.ItemID); err != nil {
		s.LogError(ctx, err, "Failed to delete item", slog.String("item_id", item.ItemID))
		return fmt.Errorf("failed to delete item: %w", err)
	}
	s.LogInfo(ctx, "Item deleted", slog.String("item_id", item.ItemID))
	return nil
}

func (s *itemService) findItem(ctx context.Context, itemID string) (*domain.Item, error) {
	item, err := s.itemRepo.FindItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("item not found")
		}
		s.LogError(ctx, err, "Failed to find item", slog.String("item_id", itemID))
		return nil, fmt.Errorf("failed to find item: %w", err)
	}
	return item, nil
}

// validate runs the item form checks. The code may be held by item itself.
func (s *itemService) validate(ctx context.Context, cfg domain.SystemConfiguration, item domain.Item) error {
	v := newFormValidator(cfg)

	v.noSpam("name", item.Name)
	v.noSpam("technology", item.Technology)
	v.noSpam("description", item.Description)
	v.noSpam("moreInfo", item.MoreInfo)

	err := v.uniqueCode("code", func() (bool, error) {
		existing, err := s.itemRepo.FindItemByCode(ctx, item.Code)
		return codeHeldByOther(existing, err, func(i *domain.Item) bool { return i.ItemID != item.ItemID })
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to check item code", slog.String("code", item.Code))
		return fmt.Errorf("failed to check item code: %w", err)
	}

	if !v.hasErrors("retailPrice") {
		price := item.RetailPrice
		v.availableCurrency("retailPrice", price, keyRetailPriceCurrency)
		switch item.Type {
		case domain.ItemComponent:
			v.state(price.IsPositive(), "retailPrice", keyComponentPositive)
		case domain.ItemTool:
			v.state(!price.IsNegative(), "retailPrice", keyToolZeroOrPositive)
		default:
			v.state(false, "type", "item.form.error.invalid-type")
		}
	}

	return v.err()
}

// codeHeldByOther interprets a find-by-code result. ErrNotFound means the
// code is free; a found record counts only when other reports true for it.
func codeHeldByOther[T any](existing *T, err error, other func(*T) bool) (bool, error) {
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return existing != nil && other(existing), nil
}
