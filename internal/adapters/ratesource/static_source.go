package ratesource

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/acme_marketplace/internal/apperrors"
	"github.com/SscSPs/acme_marketplace/internal/core/domain"
	portssvc "github.com/SscSPs/acme_marketplace/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

const inversePrecision = 10

// StaticSource serves a fixed rate table. Used for development and when no
// rate source URL is configured.
type StaticSource struct {
	rates map[string]decimal.Decimal
}

var _ portssvc.ExchangeRateSource = (*StaticSource)(nil)

// NewStaticSource builds a source from rates keyed by domain.PairKey.
func NewStaticSource(rates map[string]decimal.Decimal) *StaticSource {
	return &StaticSource{rates: rates}
}

// ParseStaticRates parses "EUR:USD=1.08;EUR:GBP=0.85".
func ParseStaticRates(raw string) (*StaticSource, error) {
	rates := make(map[string]decimal.Decimal)
	for _, pair := range domain.SplitList(raw) {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid static rate %q: missing '='", pair)
		}
		source, target, ok := strings.Cut(strings.TrimSpace(key), ":")
		if !ok {
			return nil, fmt.Errorf("invalid static rate %q: missing ':'", pair)
		}
		source = domain.NormalizeCurrencyCode(source)
		target = domain.NormalizeCurrencyCode(target)
		if err := domain.ValidateCurrencyCode(source); err != nil {
			return nil, err
		}
		if err := domain.ValidateCurrencyCode(target); err != nil {
			return nil, err
		}
		rate, err := decimal.NewFromString(strings.TrimSpace(value))
		if err != nil || !rate.IsPositive() {
			return nil, fmt.Errorf("invalid static rate %q: rate must be a positive number", pair)
		}
		rates[domain.PairKey(source, target)] = rate
	}
	return NewStaticSource(rates), nil
}

// FetchRate implements portssvc.ExchangeRateSource. Missing pairs fall back
// to the inverse of the opposite pair. The observation time is left zero.
func (s *StaticSource) FetchRate(_ context.Context, sourceCurrency, targetCurrency string) (decimal.Decimal, time.Time, error) {
	if rate, ok := s.rates[domain.PairKey(sourceCurrency, targetCurrency)]; ok {
		return rate, time.Time{}, nil
	}
	if inverse, ok := s.rates[domain.PairKey(targetCurrency, sourceCurrency)]; ok {
		return decimal.NewFromInt(1).DivRound(inverse, inversePrecision), time.Time{}, nil
	}
	return decimal.Zero, time.Time{}, fmt.Errorf("%w: no static rate for %s to %s", apperrors.ErrRateUnavailable, sourceCurrency, targetCurrency)
}
