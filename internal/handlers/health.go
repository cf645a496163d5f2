package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthResponse is the body of the liveness endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}

// HealthGet reports that the web process is up. It does not probe the
// external API.
func HealthGet(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}
