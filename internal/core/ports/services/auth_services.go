package services

import (
	"context"
	"time"

	"github.com/SscSPs/acme_marketplace/internal/core/domain"
	"github.com/SscSPs/acme_marketplace/internal/dto"
)

// AuthSvcFacade registers users and issues access tokens.
type AuthSvcFacade interface {
	// Register creates an inventor or patron account.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// Login checks credentials and returns a signed access token with its expiry.
	Login(ctx context.Context, req dto.LoginRequest) (string, time.Time, error)

	// ListInventors lists the inventors a patron can address proposals to.
	ListInventors(ctx context.Context) ([]domain.User, error)

	// EnsureAdministrator creates the administrator account when no user holds username.
	EnsureAdministrator(ctx context.Context, username, password string) error
}
