package dto

import "github.com/SscSPs/acme_marketplace/internal/apperrors"

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse lists the form fields that failed validation.
type ValidationErrorResponse struct {
	Error  string                 `json:"error"`
	Fields []apperrors.FieldError `json:"fields"`
}
