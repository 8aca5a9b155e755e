package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultExchangeRateStaleness is used when the system configuration does not
// carry a positive staleness window.
const DefaultExchangeRateStaleness = 24 * time.Hour

// RateDecimalPlaces is the precision rates are stored with.
const RateDecimalPlaces = 12

// ExchangeRateEntry is the last known rate for an ordered currency pair.
type ExchangeRateEntry struct {
	SourceCurrency string          `json:"sourceCurrency"`
	TargetCurrency string          `json:"targetCurrency"`
	Rate           decimal.Decimal `json:"rate"`
	ObservedAt     time.Time       `json:"observedAt"`
}

// Key identifies the pair the entry belongs to.
func (e ExchangeRateEntry) Key() string {
	return PairKey(e.SourceCurrency, e.TargetCurrency)
}

// IsFresh reports whether the entry may be reused at now under the given
// staleness window.
func (e ExchangeRateEntry) IsFresh(now time.Time, staleness time.Duration) bool {
	return now.Sub(e.ObservedAt) < staleness
}

// PairKey builds the lookup key for an ordered (source, target) pair.
func PairKey(source, target string) string {
	return source + ":" + target
}

// Conversion is the outcome of converting Source into another currency.
type Conversion struct {
	Source    Money           `json:"source"`
	Target    Money           `json:"target"`
	Rate      decimal.Decimal `json:"rate"`
	AsOf      time.Time       `json:"asOf"`
	FromCache bool            `json:"fromCache"`
}
