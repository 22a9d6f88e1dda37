package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eslsoft/prepnet/internal/entity"
)

type addTopicRequest struct {
	Title      string `json:"title"`
	Category   string `json:"category"`
	Difficulty string `json:"difficulty"`
}

func (api *API) listTopics(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	if category := ctx.QueryParam("category"); category != "" {
		topics, err := api.syllabus.ListTopicsByCategory(reqCtx, category)
		if err != nil {
			return api.respondError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, topics)
	}

	topics, err := api.syllabus.ListTopics(reqCtx)
	if err != nil {
		return api.respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, topics)
}

func (api *API) getTopic(ctx echo.Context) error {
	topic, err := api.syllabus.GetTopic(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return api.respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, topic)
}

func (api *API) addTopic(ctx echo.Context) error {
	var req addTopicRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "malformed topic request")
	}

	topic, err := api.syllabus.AddTopic(ctx.Request().Context(),
		req.Title, req.Category, entity.ParseDifficulty(req.Difficulty))
	if err != nil {
		return api.respondError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, topic)
}

func (api *API) listQuestions(ctx echo.Context) error {
	questions, err := api.syllabus.ListQuestions(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return api.respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, questions)
}
