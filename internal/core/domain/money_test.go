package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/acme_marketplace/internal/apperrors"
	"github.com/SscSPs/acme_marketplace/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCurrencyCode(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantErr bool
	}{
		{name: "euro", code: "EUR", wantErr: false},
		{name: "dollar", code: "USD", wantErr: false},
		{name: "yen", code: "JPY", wantErr: false},
		{name: "lower case", code: "eur", wantErr: true},
		{name: "too short", code: "EU", wantErr: true},
		{name: "too long", code: "EURO", wantErr: true},
		{name: "unknown code", code: "ABC", wantErr: true},
		{name: "empty", code: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := domain.ValidateCurrencyCode(tt.code)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrInvalidCurrencyCode)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewMoney_NormalizesCode(t *testing.T) {
	m, err := domain.NewMoney(decimal.NewFromInt(10), " usd ")
	require.NoError(t, err)
	assert.Equal(t, "USD", m.Currency)

	_, err = domain.NewMoney(decimal.NewFromInt(10), "XXXX")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCurrencyCode)
}

func TestMoney_Convert(t *testing.T) {
	tests := []struct {
		name   string
		source domain.Money
		rate   string
		target string
		want   string
	}{
		{name: "usd to eur", source: domain.Money{Amount: decimal.NewFromInt(100), Currency: "USD"}, rate: "0.90", target: "EUR", want: "90"},
		{name: "rounds to cents", source: domain.Money{Amount: decimal.RequireFromString("10.555"), Currency: "GBP"}, rate: "1.17", target: "EUR", want: "12.35"},
		{name: "zero decimal target", source: domain.Money{Amount: decimal.RequireFromString("12.34"), Currency: "EUR"}, rate: "161.2", target: "JPY", want: "1989"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.source.Convert(decimal.RequireFromString(tt.rate), tt.target)
			assert.Equal(t, tt.target, got.Currency)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got.Amount), "got %s", got.Amount)
		})
	}
}

func TestMoney_SignAndString(t *testing.T) {
	m := domain.Money{Amount: decimal.RequireFromString("-1.5"), Currency: "EUR"}
	assert.True(t, m.IsNegative())
	assert.False(t, m.IsPositive())
	assert.Equal(t, "-1.50 EUR", m.String())
	assert.True(t, m.Equal(domain.Money{Amount: decimal.RequireFromString("-1.50"), Currency: "EUR"}))
}

func TestExchangeRateEntry_IsFresh(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	entry := domain.ExchangeRateEntry{SourceCurrency: "USD", TargetCurrency: "EUR", ObservedAt: now.Add(-time.Hour)}

	assert.True(t, entry.IsFresh(now, 24*time.Hour))
	assert.False(t, entry.IsFresh(now, time.Hour))
	assert.False(t, entry.IsFresh(now, 30*time.Minute))
	assert.Equal(t, "USD:EUR", entry.Key())
}
