package server

import (
	"github.com/labstack/echo-contrib/echoprometheus"

	"github.com/controldoc/web/internal/handlers"
	"github.com/controldoc/web/internal/middleware"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() error {
	rateLimiter := middleware.RateLimiter(s.Cfg.LoginRateLimit)

	s.E.GET(s.Routes.LoginPath, s.authHandler.LoginGet)
	s.E.POST(s.Routes.LoginPath, s.authHandler.LoginPost, rateLimiter)
	s.E.GET(s.Routes.DashboardPath, s.dashboardHandler.DashboardGet)

	s.E.GET("/health", handlers.HealthGet)
	s.E.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: s.Registry,
	}))

	return s.staticFS()
}
