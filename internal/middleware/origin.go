package middleware

import (
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/controldoc/web/internal/upstream"
)

// RequestOrigin records the scheme and host the request arrived on, so the
// upstream client can resolve a relative API base against it.
func RequestOrigin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		origin := &url.URL{Scheme: c.Scheme(), Host: req.Host}
		c.SetRequest(req.WithContext(upstream.WithOrigin(req.Context(), origin)))
		return next(c)
	}
}
