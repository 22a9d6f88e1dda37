package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eslsoft/prepnet/internal/entity"
	"github.com/eslsoft/prepnet/internal/usecase"
)

type loginRequest struct {
	ID       string `json:"unique_id"`
	Password string `json:"password"`
}

type registerRequest struct {
	ID          string `json:"unique_id"`
	Password    string `json:"password"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DateOfBirth string `json:"date_of_birth"`
}

type updateAnalyticsRequest struct {
	UpdatedBy string                  `json:"updated_by"`
	Analytics entity.ProfileAnalytics `json:"analytics"`
}

func (api *API) login(ctx echo.Context) error {
	var req loginRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "malformed login request")
	}

	user, err := api.users.Authenticate(ctx.Request().Context(), req.ID, req.Password)
	if err != nil {
		return api.respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, user)
}

func (api *API) register(ctx echo.Context) error {
	var req registerRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "malformed registration request")
	}

	user, err := api.users.Register(ctx.Request().Context(), usecase.RegisterInput{
		ID:          req.ID,
		Password:    req.Password,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DateOfBirth: req.DateOfBirth,
	})
	if err != nil {
		return api.respondError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, user)
}

func (api *API) listUsers(ctx echo.Context) error {
	users, err := api.users.ListUsers(ctx.Request().Context())
	if err != nil {
		return api.respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, users)
}

func (api *API) getUser(ctx echo.Context) error {
	user, err := api.users.GetUser(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return api.respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, user)
}

func (api *API) removeUser(ctx echo.Context) error {
	if err := api.users.RemoveUser(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return api.respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *API) updateAnalytics(ctx echo.Context) error {
	var req updateAnalyticsRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "malformed analytics update")
	}

	err := api.users.UpdateAnalytics(ctx.Request().Context(), ctx.Param("id"), req.Analytics, req.UpdatedBy)
	if err != nil {
		return api.respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}
