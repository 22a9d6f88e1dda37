// Package httpapi exposes the application over a JSON REST surface.
package httpapi

import (
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/eslsoft/prepnet/internal/usecase"
)

// API bundles the handlers for every route group.
type API struct {
	users     usecase.UserUsecase
	syllabus  usecase.SyllabusUsecase
	results   usecase.ResultUsecase
	analytics usecase.AnalyticsUsecase
	logger    *logrus.Logger
}

// New wires the usecases into an API instance.
func New(
	users usecase.UserUsecase,
	syllabus usecase.SyllabusUsecase,
	results usecase.ResultUsecase,
	analytics usecase.AnalyticsUsecase,
	logger *logrus.Logger,
) *API {
	return &API{
		users:     users,
		syllabus:  syllabus,
		results:   results,
		analytics: analytics,
		logger:    logger,
	}
}

// Register mounts every route under g.
func (api *API) Register(g *echo.Group) {
	g.POST("/login", api.login)
	g.POST("/register", api.register)

	g.GET("/users", api.listUsers)
	g.GET("/users/:id", api.getUser)
	g.DELETE("/users/:id", api.removeUser)
	g.PUT("/users/:id/analytics", api.updateAnalytics)

	g.GET("/topics", api.listTopics)
	g.POST("/topics", api.addTopic)
	g.GET("/topics/:id", api.getTopic)
	g.GET("/topics/:id/questions", api.listQuestions)

	g.POST("/results", api.submitResult)
	g.GET("/results", api.listResults)
	g.GET("/results/:id", api.getResult)
	g.GET("/results/remote", api.listRemoteResults)

	g.GET("/students/:id/results", api.listStudentResults)
	g.GET("/students/:id/analytics", api.studentAnalytics)
	g.GET("/analytics/overview", api.analyticsOverview)
}
