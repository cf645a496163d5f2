package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/controldoc/web/internal/guard"
	"github.com/controldoc/web/internal/metrics"
	"github.com/controldoc/web/internal/session"
)

// RouteGuard redirects unauthenticated visitors away from the dashboard and
// authenticated visitors away from the login page. Paths outside both are
// passed through untouched. The query string survives the redirect.
func RouteGuard(store session.Store, routes guard.Routes, m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			_, hasToken := store.Token(req)

			class := routes.Classify(req.URL.Path)
			action := routes.Decide(req.URL.Path, hasToken)

			if !action.IsRedirect() {
				m.ObserveGuard(class.String(), "allow")
				return next(c)
			}

			m.ObserveGuard(class.String(), "redirect")
			FromContext(req.Context()).Debug("route guard redirect",
				"path", req.URL.Path,
				"class", class.String(),
				"location", action.Location,
			)

			location := action.Location
			if req.URL.RawQuery != "" {
				location += "?" + req.URL.RawQuery
			}
			return c.Redirect(http.StatusSeeOther, location)
		}
	}
}
