package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() any      // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   any
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message string, details any) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() any {
	return e.details
}

// Predefined error types
var (
	// Identifier errors
	ErrInvalidChildID = NewBaseError(
		http.StatusBadRequest,
		"INVALID_IDENTIFIER",
		"Invalid child ID",
		nil,
	)

	ErrInvalidStoryID = NewBaseError(
		http.StatusBadRequest,
		"INVALID_IDENTIFIER",
		"Invalid story ID",
		nil,
	)

	// Lookup errors
	ErrChildNotFound = NewBaseError(
		http.StatusNotFound,
		"CHILD_NOT_FOUND",
		"Child not found",
		nil,
	)

	ErrNoFeaturedChild = NewBaseError(
		http.StatusNotFound,
		"NO_FEATURED_CHILD",
		"No featured child found",
		nil,
	)

	ErrStoryNotFound = NewBaseError(
		http.StatusNotFound,
		"STORY_NOT_FOUND",
		"Story not found",
		nil,
	)

	// Request errors
	ErrInvalidRequestBody = NewBaseError(
		http.StatusUnprocessableEntity,
		"INVALID_REQUEST_BODY",
		"Invalid request body",
		nil,
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error, please try again later",
		nil,
	)
)

// InvalidFieldIdentifier reports a malformed identifier inside a request body.
func InvalidFieldIdentifier(field string) *BaseError {
	return NewBaseError(
		http.StatusBadRequest,
		"INVALID_IDENTIFIER",
		"Invalid "+field,
		[]FieldError{{Field: field, Message: field + " must be a 24-character hexadecimal identifier"}},
	)
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error to errors.Is and errors.As.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database operation failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() any {
	return e.details
}
