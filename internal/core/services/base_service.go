package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/acme_marketplace/internal/apperrors"
	"github.com/SscSPs/acme_marketplace/internal/core/domain"
	"github.com/SscSPs/acme_marketplace/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	// Clock returns the current time. Defaults to time.Now.
	Clock func() time.Time
}

// Now returns the service clock's current time.
func (s *BaseService) Now() time.Time {
	if s.Clock == nil {
		return time.Now()
	}
	return s.Clock()
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// AuthorizeOwner checks that principal holds role and owns the resource.
func (s *BaseService) AuthorizeOwner(ctx context.Context, principal domain.Principal, role domain.Role, ownerID, resource string) error {
	if principal.Role != role || principal.UserID != ownerID {
		s.LogDebug(ctx, "Principal does not own resource",
			slog.String("user_id", principal.UserID),
			slog.String("role", string(principal.Role)),
			slog.String("resource", resource))
		return apperrors.NewForbiddenError("not allowed to access this " + resource)
	}
	return nil
}
