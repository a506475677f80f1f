package response

import (
	"net/http"

	domainerrors "charity/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorResponse defines the structure for error responses.
// Detail is either a message or a list of field errors.
type ErrorResponse struct {
	Detail any `json:"detail"`
}

// MessageResponse defines the structure for acknowledgement responses
type MessageResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Success returns data as the response body
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// Message returns an acknowledgement message
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, MessageResponse{Message: message})
}

// MessageWithData returns an acknowledgement message with the created resource
func MessageWithData(c echo.Context, statusCode int, message string, data any) error {
	return c.JSON(statusCode, MessageResponse{Message: message, Data: data})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, detail any) error {
	return c.JSON(statusCode, ErrorResponse{Detail: detail})
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, message string) error {
	return Error(c, http.StatusInternalServerError, message)
}

// Detail builds the client-facing detail of an application error.
// Validation failures list every rejected field; other errors expose their message.
func Detail(appErr domainerrors.AppError) any {
	var validationErr *domainerrors.ValidationError
	if errors.As(appErr, &validationErr) {
		return validationErr.Fields
	}

	return appErr.Message()
}

// HandleAppError renders client errors directly. Server errors and unknown errors
// are returned so the central error handler can log them.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError {
		return Error(c, appErr.HTTPCode(), Detail(appErr))
	}

	return errors.WithStack(err)
}
