package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/acme_marketplace/internal/apperrors"
	"github.com/SscSPs/acme_marketplace/internal/core/domain"
	portsrepo "github.com/SscSPs/acme_marketplace/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/acme_marketplace/internal/core/ports/services"
	"github.com/SscSPs/acme_marketplace/internal/dto"
	"github.com/SscSPs/acme_marketplace/internal/platform/config"
	"github.com/SscSPs/acme_marketplace/internal/utils"
	"github.com/google/uuid"
)

// authService registers users and issues JWT access tokens.
type authService struct {
	BaseService
	cfg      *config.Config
	userRepo portsrepo.UserRepositoryFacade
}

// NewAuthService creates a new instance of authService.
func NewAuthService(cfg *config.Config, userRepo portsrepo.UserRepositoryFacade) portssvc.AuthSvcFacade {
	return &authService{
		cfg:      cfg,
		userRepo: userRepo,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	if req.Role != domain.RoleInventor && req.Role != domain.RolePatron {
		return nil, apperrors.NewValidationError("role must be INVENTOR or PATRON")
	}
	return s.createUser(ctx, req.Username, req.Password, req.Name, req.Role)
}

func (s *authService) createUser(ctx context.Context, username, password, name string, role domain.Role) (*domain.User, error) {
	hash, err := utils.HashPassword(password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, err
	}

	now := s.Now()
	userID := uuid.NewString()
	user := domain.User{
		UserID:       userID,
		Username:     username,
		PasswordHash: hash,
		Name:         name,
		Role:         role,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("username %q: %w", username, apperrors.ErrDuplicate)
		}
		s.LogError(ctx, err, "Failed to save user", slog.String("username", username))
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	s.LogInfo(ctx, "User registered", slog.String("user_id", user.UserID), slog.String("role", string(role)))
	return &user, nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (string, time.Time, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", time.Time{}, apperrors.ErrUnauthorized
		}
		s.LogError(ctx, err, "Failed to find user for login")
		return "", time.Time{}, fmt.Errorf("failed to find user: %w", err)
	}

	if err := utils.CheckPasswordHash(req.Password, user.PasswordHash); err != nil {
		if errors.Is(err, utils.ErrPasswordMismatch) {
			s.LogDebug(ctx, "Password mismatch", slog.String("user_id", user.UserID))
			return "", time.Time{}, apperrors.ErrUnauthorized
		}
		return "", time.Time{}, err
	}

	token, expiresAt, err := utils.GenerateJWT(user.UserID, user.Role, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer, s.Now())
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token", slog.String("user_id", user.UserID))
		return "", time.Time{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	return token, expiresAt, nil
}

func (s *authService) ListInventors(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.FindUsersByRole(ctx, domain.RoleInventor)
	if err != nil {
		s.LogError(ctx, err, "Failed to list inventors")
		return nil, fmt.Errorf("failed to list inventors: %w", err)
	}
	return users, nil
}

func (s *authService) EnsureAdministrator(ctx context.Context, username, password string) error {
	_, err := s.userRepo.FindUserByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("failed to look up administrator: %w", err)
	}
	if _, err := s.createUser(ctx, username, password, "Administrator", domain.RoleAdministrator); err != nil {
		return err
	}
	return nil
}
