package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"

	"github.com/gorilla/sessions"
	echosession "github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	"github.com/controldoc/web/internal/domain"
	"github.com/controldoc/web/internal/guard"
	"github.com/controldoc/web/internal/rendering"
	"github.com/controldoc/web/internal/session"
)

const testSessionSecret = "a-very-secret-key-for-testing-!"

// fakeLoginAPI records calls and answers with a fixed result.
type fakeLoginAPI struct {
	mu    sync.Mutex
	calls []domain.Credentials
	token string
	err   error
}

func (f *fakeLoginAPI) Login(_ context.Context, email, password string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, domain.Credentials{Email: email, Password: password})
	return f.token, f.err
}

func (f *fakeLoginAPI) Calls() []domain.Credentials {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.Credentials(nil), f.calls...)
}

// fakeStatisticsAPI answers with fixed counts or an error.
type fakeStatisticsAPI struct {
	mu     sync.Mutex
	tokens []string
	stats  domain.Statistics
	err    error
}

func (f *fakeStatisticsAPI) FetchStatistics(_ context.Context, token string) (domain.Statistics, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tokens = append(f.tokens, token)
	if f.err != nil {
		return domain.Statistics{}, f.err
	}
	return f.stats, nil
}

// newTestEcho wires the handlers the way the server does, minus the guard.
func newTestEcho(login LoginAPI, stats StatisticsAPI, store session.Store) *echo.Echo {
	e := echo.New()
	e.Use(echosession.Middleware(sessions.NewCookieStore([]byte(testSessionSecret))))

	renderer := rendering.NewUniversalRenderer()
	authHandler := NewAuthHandler(login, store, renderer, guard.DefaultRoutes())
	dashboardHandler := NewDashboardHandler(stats, store, renderer)

	e.GET("/", authHandler.LoginGet)
	e.POST("/", authHandler.LoginPost)
	e.GET("/dashboard", dashboardHandler.DashboardGet)
	e.GET("/health", HealthGet)
	return e
}

func postLogin(e *echo.Echo, email, password string, htmx bool) *httptest.ResponseRecorder {
	form := url.Values{}
	form.Set("email", email)
	form.Set("password", password)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}
