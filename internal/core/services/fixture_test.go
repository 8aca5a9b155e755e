package services_test

import (
	"testing"
	"time"

	"github.com/SscSPs/acme_marketplace/internal/adapters/ratesource"
	"github.com/SscSPs/acme_marketplace/internal/apperrors"
	"github.com/SscSPs/acme_marketplace/internal/core/domain"
	portsrepo "github.com/SscSPs/acme_marketplace/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/acme_marketplace/internal/core/ports/services"
	"github.com/SscSPs/acme_marketplace/internal/core/services"
	"github.com/SscSPs/acme_marketplace/internal/dto"
	"github.com/SscSPs/acme_marketplace/internal/platform/config"
	"github.com/SscSPs/acme_marketplace/internal/repositories/memory"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test-secret-key-that-is-long-enough"

// marketplace wires the real services over in-memory repositories and a
// static rate table.
type marketplace struct {
	repos    portsrepo.RepositoryProvider
	services *portssvc.ServiceContainer
}

func newMarketplace() *marketplace {
	cfg := &config.Config{
		JWTSecret:         testJWTSecret,
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "acme-test",
	}
	repos := memory.NewRepositoryProvider(domain.DefaultSystemConfiguration())
	source := ratesource.NewStaticSource(map[string]decimal.Decimal{
		"USD:EUR": decimal.RequireFromString("0.90"),
		"GBP:EUR": decimal.RequireFromString("1.15"),
	})
	return &marketplace{
		repos:    repos,
		services: services.NewServiceContainer(cfg, repos, source),
	}
}

func inventor() domain.Principal {
	return domain.Principal{UserID: uuid.NewString(), Role: domain.RoleInventor}
}

func patron() domain.Principal {
	return domain.Principal{UserID: uuid.NewString(), Role: domain.RolePatron}
}

func moneyRequest(amount, currency string) dto.MoneyRequest {
	return dto.MoneyRequest{Amount: decimal.RequireFromString(amount), Currency: currency}
}

func assertFieldError(t *testing.T, err error, field, key string) {
	t.Helper()
	var fieldErrs *apperrors.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Contains(t, fieldErrs.Fields(), apperrors.FieldError{Field: field, Key: key})
}
