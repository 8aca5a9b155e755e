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

type PatronageServiceTestSuite struct {
	suite.Suite
	market   *marketplace
	ctx      context.Context
	patron   domain.Principal
	inventor domain.Principal
}

func (suite *PatronageServiceTestSuite) SetupTest() {
	suite.market = newMarketplace()
	suite.ctx = context.Background()
	suite.patron = patron()

	user, err := suite.market.services.Auth.Register(suite.ctx, dto.RegisterRequest{
		Username: "ada",
		Password: "correct-horse",
		Name:     "Ada",
		Role:     domain.RoleInventor,
	})
	suite.Require().NoError(err)
	suite.inventor = domain.Principal{UserID: user.UserID, Role: domain.RoleInventor}
}

func (suite *PatronageServiceTestSuite) patronageRequest(code string) dto.PatronageRequest {
	start := time.Now().AddDate(0, 2, 0)
	return dto.PatronageRequest{
		InventorID: suite.inventor.UserID,
		Code:       code,
		LegalStuff: "Standard patronage agreement",
		Budget:     moneyRequest("5000", "EUR"),
		StartDate:  start,
		EndDate:    start.AddDate(0, 2, 0),
	}
}

func (suite *PatronageServiceTestSuite) propose(code string) *domain.Patronage {
	patronage, err := suite.market.services.Patronage.CreatePatronage(suite.ctx, suite.patron, suite.patronageRequest(code))
	suite.Require().NoError(err)
	return patronage
}

func (suite *PatronageServiceTestSuite) TestCreatePatronage() {
	patronage := suite.propose("PA-1")

	suite.Equal(domain.PatronageProposed, patronage.Status)
	suite.False(patronage.Published)
	suite.Equal(suite.patron.UserID, patronage.PatronID)

	mine, err := suite.market.services.Patronage.ListMyPatronages(suite.ctx, suite.patron)
	suite.Require().NoError(err)
	suite.Len(mine, 1)
	received, err := suite.market.services.Patronage.ListReceivedPatronages(suite.ctx, suite.inventor)
	suite.Require().NoError(err)
	suite.Empty(received)
}

func (suite *PatronageServiceTestSuite) TestCreatePatronage_FormErrors() {
	suite.propose("PA-TAKEN")

	cases := []struct {
		name  string
		edit  func(*dto.PatronageRequest)
		field string
		key   string
	}{
		{"spam legal stuff", func(r *dto.PatronageRequest) { r.LegalStuff = "you've won one million" }, "legalStuff", "form.error.spam"},
		{"duplicated code", func(r *dto.PatronageRequest) { r.Code = "PA-TAKEN" }, "code", "form.error.duplicated"},
		{"start too close", func(r *dto.PatronageRequest) { r.StartDate = time.Now().AddDate(0, 0, 7) }, "startDate", "patronage.form.error.too-close"},
		{"too short", func(r *dto.PatronageRequest) { r.EndDate = r.StartDate.AddDate(0, 0, 10) }, "endDate", "patronage.form.error.insufficient-duration"},
		{"currency not available", func(r *dto.PatronageRequest) { r.Budget = moneyRequest("10", "JPY") }, "budget", "patronage.form.error.currency-not-available"},
		{"budget not positive", func(r *dto.PatronageRequest) { r.Budget = moneyRequest("-5", "EUR") }, "budget", "form.error.budget-positive"},
		{"unknown inventor", func(r *dto.PatronageRequest) { r.InventorID = "nobody" }, "inventorID", "patronage.form.error.inventor-not-found"},
	}
	for _, tc := range cases {
		suite.Run(tc.name, func() {
			req := suite.patronageRequest("PA-NEW")
			tc.edit(&req)

			_, err := suite.market.services.Patronage.CreatePatronage(suite.ctx, suite.patron, req)

			assertFieldError(suite.T(), err, tc.field, tc.key)
		})
	}
}

func (suite *PatronageServiceTestSuite) TestCreatePatronage_PatronOnly() {
	_, err := suite.market.services.Patronage.CreatePatronage(suite.ctx, suite.inventor, suite.patronageRequest("PA-2"))

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *PatronageServiceTestSuite) TestUpdatePatronage_KeepsOwnCode() {
	patronage := suite.propose("PA-3")
	req := suite.patronageRequest("PA-3")
	req.LegalStuff = "Revised agreement"

	updated, err := suite.market.services.Patronage.UpdatePatronage(suite.ctx, suite.patron, patronage.PatronageID, req)

	suite.Require().NoError(err)
	suite.Equal("Revised agreement", updated.LegalStuff)

	_, err = suite.market.services.Patronage.UpdatePatronage(suite.ctx, patron(), patronage.PatronageID, req)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *PatronageServiceTestSuite) TestPublishedPatronageIsFrozen() {
	patronage := suite.propose("PA-4")

	_, err := suite.market.services.Patronage.PublishPatronage(suite.ctx, suite.patron, patronage.PatronageID)
	suite.Require().NoError(err)

	_, err = suite.market.services.Patronage.UpdatePatronage(suite.ctx, suite.patron, patronage.PatronageID, suite.patronageRequest("PA-4"))
	suite.ErrorIs(err, apperrors.ErrForbidden)
	_, err = suite.market.services.Patronage.PublishPatronage(suite.ctx, suite.patron, patronage.PatronageID)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *PatronageServiceTestSuite) TestDecidePatronage() {
	patronage := suite.propose("PA-5")

	_, err := suite.market.services.Patronage.DecidePatronage(suite.ctx, suite.inventor, patronage.PatronageID, domain.PatronageAccepted)
	suite.ErrorIs(err, apperrors.ErrNotFound, "unpublished proposals are not visible")

	_, err = suite.market.services.Patronage.PublishPatronage(suite.ctx, suite.patron, patronage.PatronageID)
	suite.Require().NoError(err)

	received, err := suite.market.services.Patronage.ListReceivedPatronages(suite.ctx, suite.inventor)
	suite.Require().NoError(err)
	suite.Len(received, 1)

	_, err = suite.market.services.Patronage.DecidePatronage(suite.ctx, inventor(), patronage.PatronageID, domain.PatronageAccepted)
	suite.ErrorIs(err, apperrors.ErrForbidden)

	_, err = suite.market.services.Patronage.DecidePatronage(suite.ctx, suite.inventor, patronage.PatronageID, domain.PatronageProposed)
	suite.ErrorIs(err, apperrors.ErrValidation)

	decided, err := suite.market.services.Patronage.DecidePatronage(suite.ctx, suite.inventor, patronage.PatronageID, domain.PatronageDenied)
	suite.Require().NoError(err)
	suite.Equal(domain.PatronageDenied, decided.Status)

	_, err = suite.market.services.Patronage.DecidePatronage(suite.ctx, suite.inventor, patronage.PatronageID, domain.PatronageAccepted)
	assertFieldError(suite.T(), err, "status", "patronage.form.error.already-decided")
}

func TestPatronageService(t *testing.T) {
	suite.Run(t, new(PatronageServiceTestSuite))
}
