package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/acme_marketplace/internal/apperrors"
	"github.com/SscSPs/acme_marketplace/internal/core/domain"
	portsrepo "github.com/SscSPs/acme_marketplace/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/acme_marketplace/internal/core/ports/services"
	"github.com/SscSPs/acme_marketplace/internal/dto"
)

type systemConfigurationService struct {
	BaseService
	configRepo portsrepo.SystemConfigurationRepositoryFacade
}

// NewSystemConfigurationService creates a new system configuration service.
func NewSystemConfigurationService(configRepo portsrepo.SystemConfigurationRepositoryFacade) portssvc.SystemConfigurationSvcFacade {
	return &systemConfigurationService{configRepo: configRepo}
}

var _ portssvc.SystemConfigurationSvcFacade = (*systemConfigurationService)(nil)

func (s *systemConfigurationService) GetSystemConfiguration(ctx context.Context) (*domain.SystemConfiguration, error) {
	cfg, err := s.configRepo.FindSystemConfiguration(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load system configuration")
		return nil, fmt.Errorf("failed to load system configuration: %w", err)
	}
	return cfg, nil
}

func (s *systemConfigurationService) UpdateSystemConfiguration(ctx context.Context, principal domain.Principal, req dto.UpdateSystemConfigurationRequest) (*domain.SystemConfiguration, error) {
	if principal.Role != domain.RoleAdministrator {
		return nil, apperrors.NewForbiddenError("only administrators may change the system configuration")
	}

	var errs apperrors.FieldErrors

	available := make([]string, 0, len(req.AvailableCurrencies))
	seen := make(map[string]bool, len(req.AvailableCurrencies))
	for _, code := range req.AvailableCurrencies {
		code = domain.NormalizeCurrencyCode(code)
		if domain.ValidateCurrencyCode(code) != nil {
			errs.Add("availableCurrencies", "form.error.invalid-currency")
			continue
		}
		if !seen[code] {
			seen[code] = true
			available = append(available, code)
		}
	}
	errs.State(len(available) > 0, "availableCurrencies", "form.error.empty")

	base := domain.NormalizeCurrencyCode(req.BaseCurrency)
	if errs.State(domain.ValidateCurrencyCode(base) == nil, "baseCurrency", "form.error.invalid-currency") {
		errs.State(seen[base], "baseCurrency", "form.error.base-currency-not-available")
	}

	errs.State(validThreshold(req.WeakSpamThreshold), "weakSpamThreshold", "form.error.threshold-range")
	errs.State(validThreshold(req.StrongSpamThreshold), "strongSpamThreshold", "form.error.threshold-range")

	staleness, err := time.ParseDuration(req.ExchangeRateStaleness)
	errs.State(err == nil && staleness > 0, "exchangeRateStaleness", "form.error.staleness-positive")

	if err := errs.Err(); err != nil {
		return nil, err
	}

	cfg := domain.SystemConfiguration{
		BaseCurrency:          base,
		AvailableCurrencies:   available,
		WeakSpam:              domain.SpamRule{Terms: cleanTerms(req.WeakSpamTerms), Threshold: req.WeakSpamThreshold},
		StrongSpam:            domain.SpamRule{Terms: cleanTerms(req.StrongSpamTerms), Threshold: req.StrongSpamThreshold},
		ExchangeRateStaleness: staleness,
		LastUpdatedAt:         s.Now(),
		LastUpdatedBy:         principal.UserID,
	}

	if err := s.configRepo.SaveSystemConfiguration(ctx, cfg); err != nil {
		s.LogError(ctx, err, "Failed to save system configuration")
		return nil, fmt.Errorf("failed to save system configuration: %w", err)
	}

	s.LogInfo(ctx, "System configuration updated",
		slog.String("base_currency", cfg.BaseCurrency),
		slog.Int("available_currencies", len(cfg.AvailableCurrencies)))
	return &cfg, nil
}

func validThreshold(v float64) bool {
	return v >= 0 && v <= 100
}

// cleanTerms drops blank terms; the stored list is ';' separated.
func cleanTerms(terms []string) []string {
	return domain.SplitList(domain.JoinList(terms))
}
