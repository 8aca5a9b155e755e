package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/acme_marketplace/internal/apperrors"
	"github.com/SscSPs/acme_marketplace/internal/core/domain"
	"github.com/SscSPs/acme_marketplace/internal/dto"
	"github.com/SscSPs/acme_marketplace/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondServiceError maps an error returned by a service onto an HTTP response.
// action names the failed operation in the 500 body, e.g. "create item".
func respondServiceError(c *gin.Context, err error, action string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var fieldErrs *apperrors.FieldErrors
	if errors.As(err, &fieldErrs) {
		logger.Warn("Form validation failed", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse{Error: "Validation failed", Fields: fieldErrs.Fields()})
		return
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperrors.ErrInvalidCurrencyCode), errors.Is(err, apperrors.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, apperrors.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, apperrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperrors.ErrDuplicate):
		status = http.StatusConflict
	case errors.Is(err, apperrors.ErrRateUnavailable):
		status = http.StatusServiceUnavailable
	}

	if status == http.StatusInternalServerError {
		logger.Error("Failed to "+action, slog.String("error", err.Error()))
		c.JSON(status, dto.ErrorResponse{Error: "Failed to " + action})
		return
	}

	logger.Warn("Request rejected", slog.String("action", action), slog.Int("status", status), slog.String("error", err.Error()))
	if status == http.StatusServiceUnavailable {
		// Rate source details stay in the logs.
		c.JSON(status, dto.ErrorResponse{Error: "Exchange rate unavailable"})
		return
	}
	c.JSON(status, dto.ErrorResponse{Error: publicMessage(err)})
}

// publicMessage prefers the AppError message over the full wrapped chain.
func publicMessage(err error) string {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}

func respondBindError(c *gin.Context, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
}

// principalFrom fetches the authenticated principal, answering 401 when absent.
func principalFrom(c *gin.Context) (domain.Principal, bool) {
	principal, ok := middleware.GetPrincipalFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Principal not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
	}
	return principal, ok
}
