package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/acme_marketplace/internal/core/domain"
	portsrepo "github.com/SscSPs/acme_marketplace/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/acme_marketplace/internal/core/ports/services"
)

// moneyExchangeService applies the configured staleness policy and base
// currency to the exchange calculator.
type moneyExchangeService struct {
	BaseService
	calculator portssvc.ExchangeCalculatorSvc
	configRepo portsrepo.SystemConfigurationReader
}

// NewMoneyExchangeService creates a new money exchange service.
func NewMoneyExchangeService(calculator portssvc.ExchangeCalculatorSvc, configRepo portsrepo.SystemConfigurationReader) portssvc.MoneyExchangeSvc {
	return &moneyExchangeService{
		calculator: calculator,
		configRepo: configRepo,
	}
}

var _ portssvc.MoneyExchangeSvc = (*moneyExchangeService)(nil)

func (s *moneyExchangeService) Exchange(ctx context.Context, amount domain.Money, targetCurrency string) (*domain.Conversion, error) {
	cfg, err := s.configRepo.FindSystemConfiguration(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load system configuration")
		return nil, fmt.Errorf("failed to load system configuration: %w", err)
	}

	conversion, err := s.calculator.Convert(ctx, amount, domain.NormalizeCurrencyCode(targetCurrency), cfg.Staleness())
	if err != nil {
		s.LogError(ctx, err, "Money exchange failed",
			slog.String("amount", amount.String()),
			slog.String("target", targetCurrency))
		return nil, err
	}
	return conversion, nil
}

func (s *moneyExchangeService) ToBaseCurrency(ctx context.Context, amount domain.Money, cfg domain.SystemConfiguration) (*domain.Conversion, error) {
	return s.calculator.Convert(ctx, amount, cfg.BaseCurrency, cfg.Staleness())
}
