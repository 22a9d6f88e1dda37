package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (api *API) studentAnalytics(ctx echo.Context) error {
	summary, err := api.analytics.Compute(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return api.respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, summary)
}

func (api *API) analyticsOverview(ctx echo.Context) error {
	overview, err := api.analytics.Overview(ctx.Request().Context())
	if err != nil {
		return api.respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, overview)
}
