package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eslsoft/prepnet/internal/usecase"
)

type submitResultRequest struct {
	StudentID  string `json:"student_id"`
	TopicID    string `json:"topic_id"`
	TopicTitle string `json:"topic_title"`

	// Either a pre-computed score or the raw answer sheet. When answers are
	// present they win and the score is derived server-side.
	Score     *int  `json:"score"`
	Answers   []int `json:"answers"`
	TimeTaken *int  `json:"time_taken"`
}

func (api *API) submitResult(ctx echo.Context) error {
	var req submitResultRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "malformed result submission")
	}
	if req.StudentID == "" || req.TopicID == "" {
		return badRequest(ctx, "student_id and topic_id are required")
	}

	reqCtx := ctx.Request().Context()

	var score int
	switch {
	case req.Answers != nil:
		questions, err := api.syllabus.ListQuestions(reqCtx, req.TopicID)
		if err != nil {
			return api.respondError(ctx, err)
		}
		if len(questions) == 0 {
			return badRequest(ctx, "topic has no questions to grade against")
		}
		score = usecase.Grade(questions, req.Answers)
	case req.Score != nil:
		score = *req.Score
	default:
		return badRequest(ctx, "either score or answers must be supplied")
	}
	if score < 0 || score > 100 {
		return badRequest(ctx, "score must be between 0 and 100")
	}

	result, err := api.results.SubmitResult(reqCtx, usecase.SubmitInput{
		StudentID:  req.StudentID,
		TopicID:    req.TopicID,
		TopicTitle: req.TopicTitle,
		Score:      score,
		TimeTaken:  req.TimeTaken,
	})
	if err != nil {
		return api.respondError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, result)
}

func (api *API) listResults(ctx echo.Context) error {
	results, err := api.results.ListResults(ctx.Request().Context())
	if err != nil {
		return api.respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, results)
}

func (api *API) getResult(ctx echo.Context) error {
	result, err := api.results.GetResult(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return api.respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, result)
}

func (api *API) listStudentResults(ctx echo.Context) error {
	results, err := api.results.ListStudentResults(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return api.respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, results)
}

func (api *API) listRemoteResults(ctx echo.Context) error {
	results, err := api.results.ListRemoteResults(ctx.Request().Context())
	if err != nil {
		return api.respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, results)
}
