package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/acme_marketplace/internal/core/domain"
	"github.com/SscSPs/acme_marketplace/internal/core/services"
	"github.com/SscSPs/acme_marketplace/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMoneyExchangeService_UsesConfiguredStaleness(t *testing.T) {
	cfg := domain.DefaultSystemConfiguration()
	cfg.ExchangeRateStaleness = 6 * time.Hour
	calculator := new(MockExchangeCalculator)
	svc := services.NewMoneyExchangeService(calculator, memory.NewSystemConfigurationRepository(cfg))

	expected := &domain.Conversion{Source: money("10", "USD"), Target: money("9", "EUR"), Rate: decimal.RequireFromString("0.9")}
	calculator.On("Convert", mock.Anything, money("10", "USD"), "EUR", 6*time.Hour).Return(expected, nil).Once()

	conversion, err := svc.Exchange(context.Background(), money("10", "USD"), " eur ")

	require.NoError(t, err)
	assert.Same(t, expected, conversion)
	calculator.AssertExpectations(t)
}

func TestMoneyExchangeService_ToBaseCurrency(t *testing.T) {
	cfg := domain.DefaultSystemConfiguration()
	calculator := new(MockExchangeCalculator)
	svc := services.NewMoneyExchangeService(calculator, memory.NewSystemConfigurationRepository(cfg))

	expected := &domain.Conversion{Source: money("5", "GBP"), Target: money("6", "EUR")}
	calculator.On("Convert", mock.Anything, money("5", "GBP"), "EUR", domain.DefaultExchangeRateStaleness).Return(expected, nil).Once()

	conversion, err := svc.ToBaseCurrency(context.Background(), money("5", "GBP"), cfg)

	require.NoError(t, err)
	assert.Equal(t, "EUR", conversion.Target.Currency)
	calculator.AssertExpectations(t)
}
