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

type ChimpumServiceTestSuite struct {
	suite.Suite
	market *marketplace
	ctx    context.Context
	owner  domain.Principal
	item   *domain.Item
}

func (suite *ChimpumServiceTestSuite) SetupTest() {
	suite.market = newMarketplace()
	suite.ctx = context.Background()
	suite.owner = inventor()

	item, err := suite.market.services.Item.CreateItem(suite.ctx, suite.owner, dto.CreateItemRequest{
		Type:        domain.ItemComponent,
		Name:        "Stepper motor",
		Code:        "MOT-001",
		Technology:  "Hybrid stepper",
		Description: "Two phase stepper motor",
		RetailPrice: moneyRequest("25", "EUR"),
	})
	suite.Require().NoError(err)
	suite.item = item
}

func (suite *ChimpumServiceTestSuite) chimpumRequest(code string) dto.CreateChimpumRequest {
	start := time.Now().AddDate(0, 1, 0)
	return dto.CreateChimpumRequest{
		Code:        code,
		Title:       "Motor bundle",
		Description: "Bundle of motors for workshops",
		StartDate:   start,
		EndDate:     start.AddDate(0, 2, 0),
		Budget:      moneyRequest("100", "GBP"),
	}
}

func (suite *ChimpumServiceTestSuite) TestCreateChimpum_ConvertsBudget() {
	chimpum, err := suite.market.services.Chimpum.CreateChimpum(suite.ctx, suite.owner, suite.item.ItemID, suite.chimpumRequest("CH-1"))

	suite.Require().NoError(err)
	suite.Equal(suite.item.ItemID, chimpum.ItemID)
	suite.Equal(suite.owner.UserID, chimpum.InventorID)
	suite.True(chimpum.ConvertedBudget.Equal(money("115", "EUR")), "got %s", chimpum.ConvertedBudget)

	mine, err := suite.market.services.Chimpum.ListMyChimpums(suite.ctx, suite.owner)
	suite.Require().NoError(err)
	suite.Len(mine, 1)
}

func (suite *ChimpumServiceTestSuite) TestCreateChimpum_FormErrors() {
	_, err := suite.market.services.Chimpum.CreateChimpum(suite.ctx, suite.owner, suite.item.ItemID, suite.chimpumRequest("CH-TAKEN"))
	suite.Require().NoError(err)

	cases := []struct {
		name  string
		edit  func(*dto.CreateChimpumRequest)
		field string
		key   string
	}{
		{"spam title", func(r *dto.CreateChimpumRequest) { r.Title = "viagra" }, "title", "form.error.spam"},
		{"duplicated code", func(r *dto.CreateChimpumRequest) { r.Code = "CH-TAKEN" }, "code", "form.error.duplicated"},
		{"currency not available", func(r *dto.CreateChimpumRequest) { r.Budget = moneyRequest("10", "JPY") }, "budget", "chimpum.form.error.budget-currency-not-available"},
		{"budget not positive", func(r *dto.CreateChimpumRequest) { r.Budget = moneyRequest("0", "EUR") }, "budget", "form.error.budget-positive"},
		{"end before start", func(r *dto.CreateChimpumRequest) { r.EndDate = r.StartDate.Add(-time.Hour) }, "endDate", "chimpum.form.error.end-before-start"},
	}
	for _, tc := range cases {
		suite.Run(tc.name, func() {
			req := suite.chimpumRequest("CH-NEW")
			tc.edit(&req)

			_, err := suite.market.services.Chimpum.CreateChimpum(suite.ctx, suite.owner, suite.item.ItemID, req)

			assertFieldError(suite.T(), err, tc.field, tc.key)
		})
	}
}

func (suite *ChimpumServiceTestSuite) TestCreateChimpum_ItemAccess() {
	_, err := suite.market.services.Chimpum.CreateChimpum(suite.ctx, inventor(), suite.item.ItemID, suite.chimpumRequest("CH-2"))
	suite.ErrorIs(err, apperrors.ErrForbidden)

	_, err = suite.market.services.Chimpum.CreateChimpum(suite.ctx, suite.owner, "missing", suite.chimpumRequest("CH-3"))
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ChimpumServiceTestSuite) TestDeleteChimpum() {
	chimpum, err := suite.market.services.Chimpum.CreateChimpum(suite.ctx, suite.owner, suite.item.ItemID, suite.chimpumRequest("CH-4"))
	suite.Require().NoError(err)

	suite.ErrorIs(suite.market.services.Chimpum.DeleteChimpum(suite.ctx, inventor(), chimpum.ChimpumID), apperrors.ErrForbidden)
	suite.Require().NoError(suite.market.services.Chimpum.DeleteChimpum(suite.ctx, suite.owner, chimpum.ChimpumID))

	_, err = suite.market.services.Chimpum.GetMyChimpum(suite.ctx, suite.owner, chimpum.ChimpumID)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ChimpumServiceTestSuite) TestDeletingItemRemovesChimpums() {
	chimpum, err := suite.market.services.Chimpum.CreateChimpum(suite.ctx, suite.owner, suite.item.ItemID, suite.chimpumRequest("CH-5"))
	suite.Require().NoError(err)

	suite.Require().NoError(suite.market.services.Item.DeleteItem(suite.ctx, suite.owner, suite.item.ItemID))

	_, err = suite.market.services.Chimpum.GetMyChimpum(suite.ctx, suite.owner, chimpum.ChimpumID)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestChimpumService(t *testing.T) {
	suite.Run(t, new(ChimpumServiceTestSuite))
}
