package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/acme_marketplace/internal/apperrors"
	"github.com/go-playground/validator/v10"
)

var codeValidator = validator.New()

// Zero-decimal currencies per ISO 4217: no minor units.
var zeroDecimalCurrencies = map[string]bool{
	"BIF": true, "CLP": true, "DJF": true, "GNF": true,
	"JPY": true, "KMF": true, "KRW": true, "MGA": true,
	"PYG": true, "RWF": true, "UGX": true, "VND": true,
	"VUV": true, "XAF": true, "XOF": true, "XPF": true,
}

// ValidateCurrencyCode checks that code is a recognised ISO 4217 code written
// as three upper-case letters.
func ValidateCurrencyCode(code string) error {
	if err := codeValidator.Var(code, "required,len=3,uppercase,iso4217"); err != nil {
		return fmt.Errorf("%w: %q", apperrors.ErrInvalidCurrencyCode, code)
	}
	return nil
}

// NormalizeCurrencyCode trims and upper-cases a user supplied code.
func NormalizeCurrencyCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// DecimalPlaces returns the number of minor-unit digits for the currency.
func DecimalPlaces(code string) int32 {
	if zeroDecimalCurrencies[code] {
		return 0
	}
	return 2
}
