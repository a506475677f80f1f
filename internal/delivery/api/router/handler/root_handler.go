package handler

import (
	"net/http"

	"charity/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

const welcomeMessage = "Welcome to the Charity API"

// Root greets API clients.
func Root(c echo.Context) error {
	return response.Message(c, http.StatusOK, welcomeMessage)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
