// Package handler wires the HTTP surface of the server. The server only
// serves the client bundle and a health check; all business data stays on
// the device running the client.
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthResponse is the body returned by the health endpoint.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// HealthHandler handles the unauthenticated health check.
type HealthHandler struct{}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Check handles GET /api/health
func (h *HealthHandler) Check(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:  "ok",
		Message: "Server is running",
	})
}
