package dto

import (
	"time"

	"github.com/SscSPs/acme_marketplace/internal/core/domain"
)

// UpdateSystemConfigurationRequest replaces the system configuration record.
type UpdateSystemConfigurationRequest struct {
	BaseCurrency          string   `json:"baseCurrency" binding:"required,len=3,uppercase,iso4217"`
	AvailableCurrencies   []string `json:"availableCurrencies" binding:"required,min=1,dive,len=3,uppercase,iso4217"`
	WeakSpamTerms         []string `json:"weakSpamTerms"`
	WeakSpamThreshold     float64  `json:"weakSpamThreshold" binding:"gte=0,lte=100"`
	StrongSpamTerms       []string `json:"strongSpamTerms"`
	StrongSpamThreshold   float64  `json:"strongSpamThreshold" binding:"gte=0,lte=100"`
	ExchangeRateStaleness string   `json:"exchangeRateStaleness" binding:"required"` // Go duration, e.g. "24h"
}

// SystemConfigurationResponse is the API view of the configuration record.
type SystemConfigurationResponse struct {
	BaseCurrency          string    `json:"baseCurrency"`
	AvailableCurrencies   []string  `json:"availableCurrencies"`
	WeakSpamTerms         []string  `json:"weakSpamTerms"`
	WeakSpamThreshold     float64   `json:"weakSpamThreshold"`
	StrongSpamTerms       []string  `json:"strongSpamTerms"`
	StrongSpamThreshold   float64   `json:"strongSpamThreshold"`
	ExchangeRateStaleness string    `json:"exchangeRateStaleness"`
	LastUpdatedAt         time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy         string    `json:"lastUpdatedBy"`
}

// CurrenciesResponse lists the currencies money may be expressed in.
type CurrenciesResponse struct {
	BaseCurrency        string   `json:"baseCurrency"`
	AvailableCurrencies []string `json:"availableCurrencies"`
}

// ToSystemConfigurationResponse converts the domain record to its DTO
func ToSystemConfigurationResponse(c *domain.SystemConfiguration) SystemConfigurationResponse {
	return SystemConfigurationResponse{
		BaseCurrency:          c.BaseCurrency,
		AvailableCurrencies:   c.AvailableCurrencies,
		WeakSpamTerms:         c.WeakSpam.Terms,
		WeakSpamThreshold:     c.WeakSpam.Threshold,
		StrongSpamTerms:       c.StrongSpam.Terms,
		StrongSpamThreshold:   c.StrongSpam.Threshold,
		ExchangeRateStaleness: c.Staleness().String(),
		LastUpdatedAt:         c.LastUpdatedAt,
		LastUpdatedBy:         c.LastUpdatedBy,
	}
}
