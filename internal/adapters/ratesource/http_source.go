package ratesource

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/SscSPs/acme_marketplace/internal/apperrors"
	portssvc "github.com/SscSPs/acme_marketplace/internal/core/ports/services"
	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
)

// HTTPSource quotes rates from an exchangeratesapi.io compatible
// "latest" endpoint.
type HTTPSource struct {
	cli *resty.Client
}

// NewHTTPSource creates a source for baseURL. Every call is bounded by
// timeout in addition to the caller's context.
func NewHTTPSource(baseURL, apiKey string, timeout time.Duration) *HTTPSource {
	cli := resty.New()
	cli.SetBaseURL(baseURL)
	cli.SetTimeout(timeout)
	if apiKey != "" {
		cli.SetQueryParam("access_key", apiKey)
	}
	return &HTTPSource{cli: cli}
}

var _ portssvc.ExchangeRateSource = (*HTTPSource)(nil)

type latestRatesError struct {
	Code int    `json:"code"`
	Type string `json:"type"`
	Info string `json:"info"`
}

type latestRatesResponse struct {
	Success   *bool                      `json:"success"`
	Timestamp int64                      `json:"timestamp"`
	Base      string                     `json:"base"`
	Date      string                     `json:"date"`
	Rates     map[string]decimal.Decimal `json:"rates"`
	Error     *latestRatesError          `json:"error"`
}

// FetchRate implements portssvc.ExchangeRateSource.
func (s *HTTPSource) FetchRate(ctx context.Context, sourceCurrency, targetCurrency string) (decimal.Decimal, time.Time, error) {
	var res latestRatesResponse
	resp, err := s.cli.R().
		SetContext(ctx).
		SetQueryParam("base", sourceCurrency).
		SetQueryParam("symbols", targetCurrency).
		SetResult(&res).
		Get("latest")
	if err != nil {
		return decimal.Zero, time.Time{}, fmt.Errorf("%w: request to rate source failed: %v", apperrors.ErrRateUnavailable, transportCause(err))
	}
	if resp.IsError() {
		return decimal.Zero, time.Time{}, fmt.Errorf("%w: rate source returned %s", apperrors.ErrRateUnavailable, resp.Status())
	}
	if res.Success != nil && !*res.Success {
		info := "unknown error"
		if res.Error != nil {
			info = fmt.Sprintf("%d %s", res.Error.Code, res.Error.Info)
		}
		return decimal.Zero, time.Time{}, fmt.Errorf("%w: %s", apperrors.ErrRateUnavailable, info)
	}

	rate, ok := res.Rates[targetCurrency]
	if !ok || !rate.IsPositive() {
		return decimal.Zero, time.Time{}, fmt.Errorf("%w: no rate for %s to %s", apperrors.ErrRateUnavailable, sourceCurrency, targetCurrency)
	}

	return rate, observedAt(res), nil
}

// transportCause strips the request URL, which carries the access key, from
// a transport error.
func transportCause(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}

// observedAt prefers the quote timestamp, then the quote date. Zero means unknown.
func observedAt(res latestRatesResponse) time.Time {
	if res.Timestamp > 0 {
		return time.Unix(res.Timestamp, 0).UTC()
	}
	if res.Date != "" {
		if d, err := time.Parse(time.DateOnly, res.Date); err == nil {
			return d
		}
	}
	return time.Time{}
}
