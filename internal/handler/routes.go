package handler

import (
	"strings"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// RegisterRoutes sets up the health endpoint and static asset serving.
// Unknown paths fall back to index.html so client-side routing works.
func RegisterRoutes(e *echo.Echo, healthHandler *HealthHandler, staticDir string) {
	e.GET("/api/health", healthHandler.Check)

	e.Use(echomiddleware.StaticWithConfig(echomiddleware.StaticConfig{
		Root:  staticDir,
		HTML5: true,
		Skipper: func(c echo.Context) bool {
			return strings.HasPrefix(c.Request().URL.Path, "/api/")
		},
	}))
}
