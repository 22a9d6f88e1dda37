package httpapi

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eslsoft/prepnet/internal/entity"
)

type errorResponse struct {
	Error string `json:"error"`
}

// respondError maps domain sentinel errors onto HTTP statuses. Anything
// unrecognized is a 500 with the detail kept out of the response body.
func (api *API) respondError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	message := "internal error"

	switch {
	case errors.Is(err, entity.ErrInvalidCredentials):
		status, message = http.StatusUnauthorized, err.Error()
	case errors.Is(err, entity.ErrUserNotFound),
		errors.Is(err, entity.ErrTopicNotFound),
		errors.Is(err, entity.ErrResultNotFound):
		status, message = http.StatusNotFound, err.Error()
	case errors.Is(err, entity.ErrUserAlreadyExists):
		status, message = http.StatusConflict, err.Error()
	case errors.Is(err, entity.ErrMasterProtected):
		status, message = http.StatusForbidden, err.Error()
	case errors.Is(err, entity.ErrInvalidUserID),
		errors.Is(err, entity.ErrInvalidTopicTitle):
		status, message = http.StatusBadRequest, err.Error()
	default:
		api.logger.WithError(err).WithField("path", ctx.Path()).Error("request failed")
	}

	return ctx.JSON(status, errorResponse{Error: message})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{Error: message})
}
