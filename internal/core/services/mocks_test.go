package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/acme_marketplace/internal/core/domain"
	portsrepo "github.com/SscSPs/acme_marketplace/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/acme_marketplace/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock ExchangeRateCache ---
type MockExchangeRateCache struct {
	mock.Mock
}

func (m *MockExchangeRateCache) FindCacheEntry(ctx context.Context, sourceCurrency, targetCurrency string) (*domain.ExchangeRateEntry, error) {
	args := m.Called(ctx, sourceCurrency, targetCurrency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRateEntry), args.Error(1)
}

func (m *MockExchangeRateCache) UpsertCacheEntry(ctx context.Context, entry domain.ExchangeRateEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

var _ portsrepo.ExchangeRateCacheFacade = (*MockExchangeRateCache)(nil)

// --- Mock ExchangeRateSource ---
type MockRateSource struct {
	mock.Mock
}

func (m *MockRateSource) FetchRate(ctx context.Context, sourceCurrency, targetCurrency string) (decimal.Decimal, time.Time, error) {
	args := m.Called(ctx, sourceCurrency, targetCurrency)
	return args.Get(0).(decimal.Decimal), args.Get(1).(time.Time), args.Error(2)
}

var _ portssvc.ExchangeRateSource = (*MockRateSource)(nil)

// --- Mock ExchangeCalculator ---
type MockExchangeCalculator struct {
	mock.Mock
}

func (m *MockExchangeCalculator) Convert(ctx context.Context, amount domain.Money, targetCurrency string, staleness time.Duration) (*domain.Conversion, error) {
	args := m.Called(ctx, amount, targetCurrency, staleness)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Conversion), args.Error(1)
}

var _ portssvc.ExchangeCalculatorSvc = (*MockExchangeCalculator)(nil)

func money(amount, currency string) domain.Money {
	return domain.Money{Amount: decimal.RequireFromString(amount), Currency: currency}
}
