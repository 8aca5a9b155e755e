package domain

import (
	"slices"
	"strings"
	"time"
)

// SpamRule is one tier of banned terms with its tolerance, expressed as a
// percentage of the words in a text.
type SpamRule struct {
	Terms     []string `json:"terms"`
	Threshold float64  `json:"threshold"`
}

// SystemConfiguration is the system-wide settings record. Services receive it
// as a snapshot per operation instead of reading ambient state.
type SystemConfiguration struct {
	BaseCurrency          string        `json:"baseCurrency"`
	AvailableCurrencies   []string      `json:"availableCurrencies"`
	WeakSpam              SpamRule      `json:"weakSpam"`
	StrongSpam            SpamRule      `json:"strongSpam"`
	ExchangeRateStaleness time.Duration `json:"exchangeRateStaleness"`
	LastUpdatedAt         time.Time     `json:"lastUpdatedAt"`
	LastUpdatedBy         string        `json:"lastUpdatedBy"`
}

// AcceptsCurrency reports whether code is one of the available currencies.
func (c SystemConfiguration) AcceptsCurrency(code string) bool {
	return slices.Contains(c.AvailableCurrencies, code)
}

// Staleness returns the configured staleness window or the default.
func (c SystemConfiguration) Staleness() time.Duration {
	if c.ExchangeRateStaleness <= 0 {
		return DefaultExchangeRateStaleness
	}
	return c.ExchangeRateStaleness
}

// SplitList parses a ';' separated list as stored in the configuration
// record, dropping blanks.
func SplitList(raw string) []string {
	parts := strings.Split(raw, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// JoinList is the inverse of SplitList.
func JoinList(values []string) string {
	return strings.Join(values, ";")
}

// DefaultSystemConfiguration is the record a fresh installation starts with.
func DefaultSystemConfiguration() SystemConfiguration {
	return SystemConfiguration{
		BaseCurrency:          "EUR",
		AvailableCurrencies:   []string{"EUR", "USD", "GBP"},
		StrongSpam:            SpamRule{Terms: []string{"sex", "hard core", "viagra", "cialis"}, Threshold: 10},
		WeakSpam:              SpamRule{Terms: []string{"sexy", "nigeria", "you've won", "one million"}, Threshold: 25},
		ExchangeRateStaleness: DefaultExchangeRateStaleness,
	}
}
