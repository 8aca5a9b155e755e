package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Money is an amount in a specific currency.
type Money struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

// NewMoney builds a Money after validating the currency code.
func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	code := NormalizeCurrencyCode(currency)
	if err := ValidateCurrencyCode(code); err != nil {
		return Money{}, err
	}
	return Money{Amount: amount, Currency: code}, nil
}

// Validate checks the currency code of m.
func (m Money) Validate() error {
	return ValidateCurrencyCode(m.Currency)
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.Amount.IsPositive()
}

// IsNegative reports whether the amount is strictly below zero.
func (m Money) IsNegative() bool {
	return m.Amount.IsNegative()
}

// Convert multiplies m by rate and re-denominates it in target, rounded to
// the target currency's minor units.
func (m Money) Convert(rate decimal.Decimal, target string) Money {
	return Money{
		Amount:   m.Amount.Mul(rate).Round(DecimalPlaces(target)),
		Currency: target,
	}
}

// Equal compares amount by value and currency by code.
func (m Money) Equal(other Money) bool {
	return m.Currency == other.Currency && m.Amount.Equal(other.Amount)
}

func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.Amount.StringFixed(DecimalPlaces(m.Currency)), m.Currency)
}
