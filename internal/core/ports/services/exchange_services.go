package services

import (
	"context"
	"time"

	"github.com/SscSPs/acme_marketplace/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExchangeRateSource is the external collaborator that quotes exchange rates.
type ExchangeRateSource interface {
	// FetchRate returns the rate to multiply a source amount by and the moment
	// the quote refers to. Fails with apperrors.ErrRateUnavailable.
	FetchRate(ctx context.Context, sourceCurrency, targetCurrency string) (decimal.Decimal, time.Time, error)
}

// ExchangeCalculatorSvc converts money between currencies using the rate cache.
type ExchangeCalculatorSvc interface {
	Convert(ctx context.Context, amount domain.Money, targetCurrency string, staleness time.Duration) (*domain.Conversion, error)
}

// MoneyExchangeSvc converts money under the current system configuration.
type MoneyExchangeSvc interface {
	// Exchange converts amount into targetCurrency using the configured staleness policy.
	Exchange(ctx context.Context, amount domain.Money, targetCurrency string) (*domain.Conversion, error)

	// ToBaseCurrency converts amount into the configured base currency.
	ToBaseCurrency(ctx context.Context, amount domain.Money, cfg domain.SystemConfiguration) (*domain.Conversion, error)
}
