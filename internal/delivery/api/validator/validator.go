// Package validator adapts the request schema validator to echo.
package validator

import (
	"charity/internal/domain/schema"

	"github.com/labstack/echo/v4"
)

// New returns the validator installed on the echo server.
func New() echo.Validator {
	return schema.NewValidator()
}
