package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/controldoc/web/internal/assets"
	"github.com/controldoc/web/internal/config"
	"github.com/controldoc/web/internal/guard"
	"github.com/controldoc/web/internal/handlers"
	"github.com/controldoc/web/internal/metrics"
	appmiddleware "github.com/controldoc/web/internal/middleware"
	"github.com/controldoc/web/internal/rendering"
	appsession "github.com/controldoc/web/internal/session"
	"github.com/controldoc/web/internal/upstream"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E        *echo.Echo
	Cfg      *config.Config
	Registry *prometheus.Registry
	Metrics  *metrics.Metrics
	Routes   guard.Routes

	store            appsession.Store
	upstream         *upstream.Client
	authHandler      *handlers.AuthHandler
	dashboardHandler *handlers.DashboardHandler
}

// Option customises a Server.
type Option func(*Server)

// WithSessionStore replaces the cookie-backed session store.
func WithSessionStore(store appsession.Store) Option {
	return func(s *Server) { s.store = store }
}

// WithRegistry makes the server register its metrics on reg instead of a
// fresh registry.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(s *Server) { s.Registry = reg }
}

// New creates a Server with all middleware and routes registered.
func New(cfg *config.Config, opts ...Option) (*Server, error) {
	s := &Server{
		Cfg:    cfg,
		Routes: guard.DefaultRoutes(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.Registry == nil {
		s.Registry = prometheus.NewRegistry()
		s.Registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	s.Metrics = metrics.New(s.Registry)

	if s.store == nil {
		s.store = appsession.NewCookieStore(cfg.CookieSecure, cfg.TokenMaxAge)
	}
	s.upstream = upstream.New(cfg.APIBaseURL, cfg.UpstreamTimeout, upstream.WithMetrics(s.Metrics))

	renderer := rendering.NewUniversalRenderer()
	s.authHandler = handlers.NewAuthHandler(s.upstream, s.store, renderer, s.Routes)
	s.dashboardHandler = handlers.NewDashboardHandler(s.upstream, s.store, renderer)

	e := echo.New()
	e.HideBanner = true
	setupErrorHandling(e)

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Logger())
	e.Use(appmiddleware.Logger)
	e.Use(middleware.Recover())
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "controldoc",
		Subsystem:  "http",
		Registerer: s.Registry,
	}))

	// Flash messages: plain-post login errors and the post-login notice.
	flashStore := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	flashStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
		Secure:   cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
	e.Use(session.Middleware(flashStore))

	e.Use(appmiddleware.RequestOrigin)
	e.Use(appmiddleware.RouteGuard(s.store, s.Routes, s.Metrics))

	s.E = e

	if err := s.RegisterRoutes(); err != nil {
		return nil, err
	}
	return s, nil
}

// staticFS resolves the static asset tree from configuration.
func (s *Server) staticFS() error {
	fsys, err := assets.Static(s.Cfg.StaticDir)
	if err != nil {
		return fmt.Errorf("static assets: %w", err)
	}
	s.E.StaticFS("/static", fsys)
	return nil
}
