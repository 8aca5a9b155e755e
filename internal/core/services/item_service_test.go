package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/acme_marketplace/internal/apperrors"
	"github.com/SscSPs/acme_marketplace/internal/core/domain"
	"github.com/SscSPs/acme_marketplace/internal/dto"
	"github.com/stretchr/testify/suite"
)

type ItemServiceTestSuite struct {
	suite.Suite
	market *marketplace
	ctx    context.Context
	owner  domain.Principal
}

func (suite *ItemServiceTestSuite) SetupTest() {
	suite.market = newMarketplace()
	suite.ctx = context.Background()
	suite.owner = inventor()
}

func (suite *ItemServiceTestSuite) itemRequest(code string, itemType domain.ItemType, price dto.MoneyRequest) dto.CreateItemRequest {
	return dto.CreateItemRequest{
		Type:        itemType,
		Name:        "Soldering station",
		Code:        code,
		Technology:  "Ceramic heater",
		Description: "Temperature controlled soldering station",
		RetailPrice: price,
		MoreInfo:    "https://example.com/station",
	}
}

func (suite *ItemServiceTestSuite) TestCreateItem_ConvertsPriceToBaseCurrency() {
	item, err := suite.market.services.Item.CreateItem(suite.ctx, suite.owner,
		suite.itemRequest("ABC-123", domain.ItemComponent, moneyRequest("100", "USD")))

	suite.Require().NoError(err)
	suite.NotEmpty(item.ItemID)
	suite.Equal(suite.owner.UserID, item.InventorID)
	suite.False(item.Published)
	suite.True(item.ConvertedPrice.Equal(money("90", "EUR")), "got %s", item.ConvertedPrice)
	suite.False(item.ExchangeDate.IsZero())

	stored, err := suite.market.services.Item.GetMyItem(suite.ctx, suite.owner, item.ItemID)
	suite.Require().NoError(err)
	suite.Equal(item.Code, stored.Code)
}

func (suite *ItemServiceTestSuite) TestCreateItem_BaseCurrencyPriceUnchanged() {
	item, err := suite.market.services.Item.CreateItem(suite.ctx, suite.owner,
		suite.itemRequest("ABC-124", domain.ItemTool, moneyRequest("0", "EUR")))

	suite.Require().NoError(err)
	suite.True(item.ConvertedPrice.Equal(item.RetailPrice))
	suite.WithinDuration(time.Now(), item.ExchangeDate, time.Minute)
}

func (suite *ItemServiceTestSuite) TestCreateItem_FormErrors() {
	_, err := suite.market.services.Item.CreateItem(suite.ctx, suite.owner,
		suite.itemRequest("DUP-1", domain.ItemComponent, moneyRequest("10", "EUR")))
	suite.Require().NoError(err)

	cases := []struct {
		name  string
		edit  func(*dto.CreateItemRequest)
		field string
		key   string
	}{
		{"spam name", func(r *dto.CreateItemRequest) { r.Name = "cheap viagra" }, "name", "form.error.spam"},
		{"weak spam description", func(r *dto.CreateItemRequest) { r.Description = "sexy station from nigeria" }, "description", "form.error.spam"},
		{"duplicated code", func(r *dto.CreateItemRequest) { r.Code = "DUP-1" }, "code", "form.error.duplicated"},
		{"currency not available", func(r *dto.CreateItemRequest) { r.RetailPrice = moneyRequest("10", "JPY") }, "retailPrice", "item.form.error.retail-price-currency-not-available"},
		{"component must cost", func(r *dto.CreateItemRequest) { r.RetailPrice = moneyRequest("0", "EUR") }, "retailPrice", "item.form.error.retail-price-component-positive"},
		{"tool not negative", func(r *dto.CreateItemRequest) {
			r.Type = domain.ItemTool
			r.RetailPrice = moneyRequest("-1", "EUR")
		}, "retailPrice", "item.form.error.retail-price-tool-zero-or-positive"},
	}
	for _, tc := range cases {
		suite.Run(tc.name, func() {
			req := suite.itemRequest("NEW-1", domain.ItemComponent, moneyRequest("10", "EUR"))
			tc.edit(&req)

			item, err := suite.market.services.Item.CreateItem(suite.ctx, suite.owner, req)

			suite.Nil(item)
			suite.ErrorIs(err, apperrors.ErrValidation)
			assertFieldError(suite.T(), err, tc.field, tc.key)
		})
	}
}

func (suite *ItemServiceTestSuite) TestCreateItem_RequiresInventor() {
	_, err := suite.market.services.Item.CreateItem(suite.ctx, patron(),
		suite.itemRequest("P-1", domain.ItemTool, moneyRequest("1", "EUR")))

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *ItemServiceTestSuite) TestCreateItem_UnknownRateSurfaces() {
	cfg, err := suite.market.repos.SystemConfigRepo.FindSystemConfiguration(suite.ctx)
	suite.Require().NoError(err)
	cfg.AvailableCurrencies = append(cfg.AvailableCurrencies, "CHF")
	suite.Require().NoError(suite.market.repos.SystemConfigRepo.SaveSystemConfiguration(suite.ctx, *cfg))

	_, err = suite.market.services.Item.CreateItem(suite.ctx, suite.owner,
		suite.itemRequest("CHF-1", domain.ItemTool, moneyRequest("5", "CHF")))

	suite.ErrorIs(err, apperrors.ErrRateUnavailable)
	items, err := suite.market.services.Item.ListMyItems(suite.ctx, suite.owner)
	suite.Require().NoError(err)
	suite.Empty(items)
}

func (suite *ItemServiceTestSuite) TestPublishItem() {
	item, err := suite.market.services.Item.CreateItem(suite.ctx, suite.owner,
		suite.itemRequest("PUB-1", domain.ItemTool, moneyRequest("15", "GBP")))
	suite.Require().NoError(err)

	_, err = suite.market.services.Item.PublishItem(suite.ctx, inventor(), item.ItemID)
	suite.ErrorIs(err, apperrors.ErrForbidden)

	published, err := suite.market.services.Item.PublishItem(suite.ctx, suite.owner, item.ItemID)
	suite.Require().NoError(err)
	suite.True(published.Published)

	_, err = suite.market.services.Item.PublishItem(suite.ctx, suite.owner, item.ItemID)
	assertFieldError(suite.T(), err, "published", "item.form.error.already-published")

	tools, err := suite.market.services.Item.ListPublishedItems(suite.ctx, domain.ItemTool)
	suite.Require().NoError(err)
	suite.Len(tools, 1)
	components, err := suite.market.services.Item.ListPublishedItems(suite.ctx, domain.ItemComponent)
	suite.Require().NoError(err)
	suite.Empty(components)

	_, err = suite.market.services.Item.ListPublishedItems(suite.ctx, domain.ItemType("GADGET"))
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ItemServiceTestSuite) TestDeleteItem() {
	item, err := suite.market.services.Item.CreateItem(suite.ctx, suite.owner,
		suite.itemRequest("DEL-1", domain.ItemTool, moneyRequest("1", "EUR")))
	suite.Require().NoError(err)

	suite.ErrorIs(suite.market.services.Item.DeleteItem(suite.ctx, inventor(), item.ItemID), apperrors.ErrForbidden)
	suite.Require().NoError(suite.market.services.Item.DeleteItem(suite.ctx, suite.owner, item.ItemID))

	_, err = suite.market.services.Item.GetMyItem(suite.ctx, suite.owner, item.ItemID)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ItemServiceTestSuite) TestDeleteItem_PublishedRefused() {
	item, err := suite.market.services.Item.CreateItem(suite.ctx, suite.owner,
		suite.itemRequest("DEL-2", domain.ItemTool, moneyRequest("1", "EUR")))
	suite.Require().NoError(err)
	_, err = suite.market.services.Item.PublishItem(suite.ctx, suite.owner, item.ItemID)
	suite.Require().NoError(err)

	err = suite.market.services.Item.DeleteItem(suite.ctx, suite.owner, item.ItemID)

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func TestItemService(t *testing.T) {
	suite.Run(t, new(ItemServiceTestSuite))
}
