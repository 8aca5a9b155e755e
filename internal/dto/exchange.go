package dto

import (
	"time"

	"github.com/SscSPs/acme_marketplace/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExchangeQuery is the query string of a money exchange request.
type ExchangeQuery struct {
	Amount   string `form:"amount" binding:"required"`
	Currency string `form:"currency" binding:"required,len=3"`
	Target   string `form:"target" binding:"required,len=3"`
}

// ExchangeResponse defines the structure for API responses containing a conversion.
type ExchangeResponse struct {
	Source    domain.Money    `json:"source"`
	Target    domain.Money    `json:"target"`
	Rate      decimal.Decimal `json:"rate"`
	AsOf      time.Time       `json:"asOf"`
	FromCache bool            `json:"fromCache"`
}

// ToExchangeResponse converts a domain.Conversion to ExchangeResponse DTO
func ToExchangeResponse(c *domain.Conversion) ExchangeResponse {
	return ExchangeResponse{
		Source:    c.Source,
		Target:    c.Target,
		Rate:      c.Rate,
		AsOf:      c.AsOf,
		FromCache: c.FromCache,
	}
}
