package dto

import (
	"github.com/SscSPs/acme_marketplace/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MoneyRequest is a monetary amount as posted by clients.
type MoneyRequest struct {
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Currency string          `json:"currency" binding:"required,len=3,uppercase,iso4217"`
}

// ToDomain converts the request into a domain.Money.
func (m MoneyRequest) ToDomain() domain.Money {
	return domain.Money{Amount: m.Amount, Currency: domain.NormalizeCurrencyCode(m.Currency)}
}
