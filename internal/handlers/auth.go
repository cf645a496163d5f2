package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	hxhttp "maragu.dev/gomponents-htmx/http"

	"github.com/controldoc/web/internal/guard"
	"github.com/controldoc/web/internal/middleware"
	"github.com/controldoc/web/internal/rendering"
	"github.com/controldoc/web/internal/session"
	"github.com/controldoc/web/internal/upstream"
	"github.com/controldoc/web/internal/view"
	"github.com/controldoc/web/internal/view/dto/auth"
	"github.com/controldoc/web/web/src/templates/layouts"
	"github.com/controldoc/web/web/src/templates/pages"
)

// Messages shown when a login attempt fails.
const (
	MsgLoginFailed = "No se pudo iniciar sesión"
	MsgUnexpected  = "Error inesperado"
)

// MsgLoginSucceeded is flashed on the dashboard after a successful login.
const MsgLoginSucceeded = "Sesión iniciada"

// LoginAPI exchanges credentials for a session token.
type LoginAPI interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// AuthHandler serves the login screen and its form submission.
type AuthHandler struct {
	api      LoginAPI
	store    session.Store
	renderer rendering.Renderer
	routes   guard.Routes
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(api LoginAPI, store session.Store, renderer rendering.Renderer, routes guard.Routes) *AuthHandler {
	return &AuthHandler{
		api:      api,
		store:    store,
		renderer: renderer,
		routes:   routes,
	}
}

// LoginGet renders the login page. A failed plain-form attempt leaves its
// message and email in the flash session; both are shown once.
func (h *AuthHandler) LoginGet(c echo.Context) error {
	data := auth.LoginData{Email: view.GetFormEmail(c)}

	flashes := view.GetFlashData(c)
	if len(flashes.Error) > 0 {
		data.Error = flashes.Error[0]
		flashes.Error = nil
	}

	page := layouts.Base("Iniciar sesión", flashes, pages.Login(data))
	return h.renderer.RenderPage(c, http.StatusOK, page)
}

// LoginPost submits the credentials to the external API. On success the token
// is stored and the browser is sent to the dashboard exactly once; on failure
// the form is shown again with a message and no navigation happens.
func (h *AuthHandler) LoginPost(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return h.loginFailed(c, req.Email, MsgLoginFailed)
	}
	req.Email = strings.TrimSpace(req.Email)

	logger := middleware.FromContext(c.Request().Context())

	token, err := h.api.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		logger.Info("login rejected", "error", err)
		return h.loginFailed(c, req.Email, loginErrorMessage(err))
	}

	h.store.SetToken(c.Response(), token)
	view.SetFlashSuccess(c, MsgLoginSucceeded)
	logger.Info("login succeeded")

	if hxhttp.IsRequest(c.Request().Header) {
		hxhttp.SetRedirect(c.Response().Header(), h.routes.DashboardPath)
		return c.NoContent(http.StatusOK)
	}
	return c.Redirect(http.StatusSeeOther, h.routes.DashboardPath)
}

func (h *AuthHandler) loginFailed(c echo.Context, email, message string) error {
	if hxhttp.IsRequest(c.Request().Header) {
		form := pages.LoginForm(auth.LoginData{Email: email, Error: message})
		return h.renderer.RenderPage(c, http.StatusOK, form)
	}

	view.SetFormError(c, message, email)
	return c.Redirect(http.StatusSeeOther, h.routes.LoginPath)
}

// loginErrorMessage picks the text shown for a failed login: the API's own
// detail when it sent one, otherwise a generic message.
func loginErrorMessage(err error) string {
	if detail, ok := upstream.Detail(err); ok {
		return detail
	}
	if errors.Is(err, upstream.ErrNetworkFailure) {
		return MsgUnexpected
	}
	return MsgLoginFailed
}
