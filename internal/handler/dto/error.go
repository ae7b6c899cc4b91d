package dto

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/worktrackhq/worktrack/internal/domain"
)

// ErrorResponse is the standard error payload.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail holds the error code and message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewErrorResponse creates an ErrorResponse with the given code and message.
func NewErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	}
}

// MapDomainError converts a domain error into an HTTP status, error code and
// client-facing message. Unknown errors map to 500 and are logged; their
// detail never reaches the client.
func MapDomainError(err error) (int, string, string) {
	switch {
	case errors.Is(err, domain.ErrProjectNotFound):
		return http.StatusNotFound, "PROJECT_NOT_FOUND", "project not found"
	case errors.Is(err, domain.ErrTaskNotFound):
		return http.StatusNotFound, "TASK_NOT_FOUND", "task not found"
	case errors.Is(err, domain.ErrStatusRequired),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrInvalidPriority),
		errors.Is(err, domain.ErrTitleRequired),
		errors.Is(err, domain.ErrNameRequired),
		errors.Is(err, domain.ErrInvalidDate):
		return http.StatusUnprocessableEntity, "VALIDATION_ERROR", err.Error()
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, "CONFLICT", "resource was modified concurrently, retry the request"
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrInvalidToken),
		errors.Is(err, domain.ErrUserInactive):
		return http.StatusUnauthorized, "UNAUTHORIZED", "authentication required"
	default:
		slog.Error("internal error", "error", err)
		return http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error"
	}
}
