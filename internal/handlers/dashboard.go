package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/controldoc/web/internal/domain"
	"github.com/controldoc/web/internal/middleware"
	"github.com/controldoc/web/internal/rendering"
	"github.com/controldoc/web/internal/session"
	"github.com/controldoc/web/internal/view"
	"github.com/controldoc/web/internal/view/dto/dashboard"
	"github.com/controldoc/web/web/src/templates/layouts"
	"github.com/controldoc/web/web/src/templates/pages"
)

// StatisticsAPI fetches the document status counts.
type StatisticsAPI interface {
	FetchStatistics(ctx context.Context, token string) (domain.Statistics, error)
}

// DashboardHandler serves the dashboard page.
type DashboardHandler struct {
	api      StatisticsAPI
	store    session.Store
	renderer rendering.Renderer
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(api StatisticsAPI, store session.Store, renderer rendering.Renderer) *DashboardHandler {
	return &DashboardHandler{api: api, store: store, renderer: renderer}
}

// DashboardGet fetches the counts once and renders them. A failed fetch
// never fails the page: it renders zeros with a warning, still with 200.
func (h *DashboardHandler) DashboardGet(c echo.Context) error {
	ctx := c.Request().Context()
	token, _ := h.store.Token(c.Request())

	data := dashboard.DashboardData{DisplayName: session.DisplayName(token)}

	stats, err := h.api.FetchStatistics(ctx, token)
	if err != nil {
		middleware.FromContext(ctx).Warn("statistics unavailable", "error", err)
		data.Unavailable = true
	} else {
		data.Stats = stats
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")
	page := layouts.Base("Panel", view.GetFlashData(c), pages.Dashboard(data))
	return h.renderer.RenderPage(c, http.StatusOK, page)
}
