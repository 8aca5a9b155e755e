package ratesource_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/acme_marketplace/internal/adapters/ratesource"
	"github.com/SscSPs/acme_marketplace/internal/apperrors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRatesServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/latest", r.URL.Path)
		assert.Equal(t, "USD", r.URL.Query().Get("base"))
		assert.Equal(t, "EUR", r.URL.Query().Get("symbols"))
		assert.Equal(t, "key-123", r.URL.Query().Get("access_key"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestHTTPSource_FetchRate(t *testing.T) {
	srv := newRatesServer(t, http.StatusOK, `{"success":true,"timestamp":1767225600,"base":"USD","date":"2026-01-01","rates":{"EUR":0.9012}}`)
	source := ratesource.NewHTTPSource(srv.URL, "key-123", time.Second)

	rate, observedAt, err := source.FetchRate(context.Background(), "USD", "EUR")
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("0.9012").Equal(rate))
	assert.Equal(t, time.Unix(1767225600, 0).UTC(), observedAt)
}

func TestHTTPSource_FallsBackToDate(t *testing.T) {
	srv := newRatesServer(t, http.StatusOK, `{"base":"USD","date":"2026-01-01","rates":{"EUR":"0.90"}}`)
	source := ratesource.NewHTTPSource(srv.URL, "key-123", time.Second)

	_, observedAt, err := source.FetchRate(context.Background(), "USD", "EUR")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), observedAt)
}

func TestHTTPSource_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "api error", status: http.StatusOK, body: `{"success":false,"error":{"code":101,"info":"invalid access key"}}`},
		{name: "missing symbol", status: http.StatusOK, body: `{"success":true,"rates":{"GBP":0.8}}`},
		{name: "server error", status: http.StatusInternalServerError, body: `{}`},
		{name: "zero rate", status: http.StatusOK, body: `{"success":true,"rates":{"EUR":0}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newRatesServer(t, tt.status, tt.body)
			source := ratesource.NewHTTPSource(srv.URL, "key-123", time.Second)

			_, _, err := source.FetchRate(context.Background(), "USD", "EUR")
			assert.ErrorIs(t, err, apperrors.ErrRateUnavailable)
		})
	}
}

func TestHTTPSource_TransportErrorHidesAccessKey(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	baseURL := srv.URL
	srv.Close()
	source := ratesource.NewHTTPSource(baseURL, "SUPERSECRETKEY", time.Second)

	_, _, err := source.FetchRate(context.Background(), "USD", "EUR")

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrRateUnavailable)
	assert.NotContains(t, err.Error(), "SUPERSECRETKEY")
	assert.NotContains(t, err.Error(), "access_key")
}

func TestStaticSource(t *testing.T) {
	source, err := ratesource.ParseStaticRates("EUR:USD=1.25; eur:gbp=0.85")
	require.NoError(t, err)

	rate, observedAt, err := source.FetchRate(context.Background(), "EUR", "USD")
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("1.25").Equal(rate))
	assert.True(t, observedAt.IsZero())

	inverse, _, err := source.FetchRate(context.Background(), "USD", "EUR")
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("0.8").Equal(inverse))

	_, _, err = source.FetchRate(context.Background(), "USD", "JPY")
	assert.ErrorIs(t, err, apperrors.ErrRateUnavailable)
}

func TestParseStaticRates_Invalid(t *testing.T) {
	for _, raw := range []string{"EURUSD=1", "EUR:USD", "EUR:USD=-1", "EUR:ABC=1"} {
		_, err := ratesource.ParseStaticRates(raw)
		assert.Error(t, err, raw)
	}
}
