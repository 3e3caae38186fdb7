package common

import (
	"fmt"
	"net/http"

	ierr "github.com/gigsters-app/gigsters/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorResponse represents a standardized error response
type ErrorResponse struct {
	Error struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details,omitempty"`
	} `json:"error"`
}

// CreateErrorResponse creates a standardized error response
func CreateErrorResponse(code string, message string, details map[string]any) *ErrorResponse {
	var resp ErrorResponse
	resp.Error.Code = code
	resp.Error.Message = message
	if len(details) > 0 {
		resp.Error.Details = details
	}
	return &resp
}

// SendError renders err with the status of its kind. Database and system errors
// are reported generically and logged by the caller.
func SendError(c echo.Context, err error) error {
	status := ierr.HTTPStatusFromErr(err)
	if status >= http.StatusInternalServerError {
		c.Logger().Errorf("request failed: %+v", err)
		return c.JSON(status, CreateErrorResponse(ierr.Code(err), "internal server error", nil))
	}
	return c.JSON(status, CreateErrorResponse(ierr.Code(err), ierr.DisplayMessage(err), ierr.ReportableDetails(err)))
}

// SendValidationError sends a validation error response
func SendValidationError(c echo.Context, field, message string) error {
	details := map[string]any{
		field: message,
	}
	return c.JSON(http.StatusBadRequest, CreateErrorResponse(ierr.ErrCodeValidation, "validation failed", details))
}

// SendClientError sends a client error response
func SendClientError(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, CreateErrorResponse(ierr.ErrCodeValidation, message, nil))
}

// SendNotFoundError sends a not found error response
func SendNotFoundError(c echo.Context, resource string) error {
	return c.JSON(http.StatusNotFound, CreateErrorResponse(ierr.ErrCodeNotFound, fmt.Sprintf("%s not found", resource), nil))
}

// SendUnauthorizedError sends an unauthorized error response
func SendUnauthorizedError(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, CreateErrorResponse("unauthorized", "Unauthorized access", nil))
}

// SendForbiddenError sends a forbidden error response
func SendForbiddenError(c echo.Context) error {
	return c.JSON(http.StatusForbidden, CreateErrorResponse(ierr.ErrCodePermissionDenied, "permission denied", nil))
}
