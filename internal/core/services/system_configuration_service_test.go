package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/acme_marketplace/internal/apperrors"
	"github.com/SscSPs/acme_marketplace/internal/core/domain"
	"github.com/SscSPs/acme_marketplace/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var administrator = domain.Principal{UserID: "admin-1", Role: domain.RoleAdministrator}

func validConfigurationRequest() dto.UpdateSystemConfigurationRequest {
	return dto.UpdateSystemConfigurationRequest{
		BaseCurrency:          "USD",
		AvailableCurrencies:   []string{"usd", "EUR", "USD", "JPY"},
		WeakSpamTerms:         []string{"free money", " "},
		WeakSpamThreshold:     30,
		StrongSpamTerms:       []string{"casino"},
		StrongSpamThreshold:   5,
		ExchangeRateStaleness: "6h",
	}
}

func TestSystemConfigurationService_Update(t *testing.T) {
	market := newMarketplace()
	ctx := context.Background()

	cfg, err := market.services.SystemConfig.UpdateSystemConfiguration(ctx, administrator, validConfigurationRequest())
	require.NoError(t, err)

	assert.Equal(t, "USD", cfg.BaseCurrency)
	assert.Equal(t, []string{"USD", "EUR", "JPY"}, cfg.AvailableCurrencies)
	assert.Equal(t, []string{"free money"}, cfg.WeakSpam.Terms)
	assert.Equal(t, 6*time.Hour, cfg.ExchangeRateStaleness)
	assert.Equal(t, administrator.UserID, cfg.LastUpdatedBy)

	stored, err := market.services.SystemConfig.GetSystemConfiguration(ctx)
	require.NoError(t, err)
	assert.Equal(t, cfg.AvailableCurrencies, stored.AvailableCurrencies)
	assert.True(t, stored.AcceptsCurrency("JPY"))
}

func TestSystemConfigurationService_UpdateAdministratorOnly(t *testing.T) {
	market := newMarketplace()

	_, err := market.services.SystemConfig.UpdateSystemConfiguration(context.Background(), inventor(), validConfigurationRequest())

	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestSystemConfigurationService_UpdateFormErrors(t *testing.T) {
	cases := []struct {
		name  string
		edit  func(*dto.UpdateSystemConfigurationRequest)
		field string
		key   string
	}{
		{"base not available", func(r *dto.UpdateSystemConfigurationRequest) { r.BaseCurrency = "GBP" }, "baseCurrency", "form.error.base-currency-not-available"},
		{"invalid available code", func(r *dto.UpdateSystemConfigurationRequest) { r.AvailableCurrencies = []string{"USD", "XYZ1"} }, "availableCurrencies", "form.error.invalid-currency"},
		{"no currencies", func(r *dto.UpdateSystemConfigurationRequest) { r.AvailableCurrencies = nil }, "availableCurrencies", "form.error.empty"},
		{"weak threshold", func(r *dto.UpdateSystemConfigurationRequest) { r.WeakSpamThreshold = 101 }, "weakSpamThreshold", "form.error.threshold-range"},
		{"strong threshold", func(r *dto.UpdateSystemConfigurationRequest) { r.StrongSpamThreshold = -1 }, "strongSpamThreshold", "form.error.threshold-range"},
		{"staleness unparsable", func(r *dto.UpdateSystemConfigurationRequest) { r.ExchangeRateStaleness = "daily" }, "exchangeRateStaleness", "form.error.staleness-positive"},
		{"staleness zero", func(r *dto.UpdateSystemConfigurationRequest) { r.ExchangeRateStaleness = "0s" }, "exchangeRateStaleness", "form.error.staleness-positive"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			market := newMarketplace()
			req := validConfigurationRequest()
			tc.edit(&req)

			_, err := market.services.SystemConfig.UpdateSystemConfiguration(context.Background(), administrator, req)

			assertFieldError(t, err, tc.field, tc.key)

			stored, err := market.services.SystemConfig.GetSystemConfiguration(context.Background())
			require.NoError(t, err)
			assert.Equal(t, "EUR", stored.BaseCurrency, "a rejected update must not be stored")
		})
	}
}
