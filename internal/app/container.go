// Package app wires the application dependencies by hand, outermost last.
package app

import (
	"github.com/sirupsen/logrus"

	"github.com/eslsoft/prepnet/internal/adapter/httpapi"
	adapterrepo "github.com/eslsoft/prepnet/internal/adapter/repository"
	"github.com/eslsoft/prepnet/internal/infrastructure/backup"
	"github.com/eslsoft/prepnet/internal/infrastructure/config"
	"github.com/eslsoft/prepnet/internal/infrastructure/database"
	"github.com/eslsoft/prepnet/internal/infrastructure/server"
	"github.com/eslsoft/prepnet/internal/usecase"
)

// Container aggregates the application dependencies.
type Container struct {
	Config *config.Config
	Logger *logrus.Logger
	Server *server.Server
}

// New builds the full dependency graph. The returned cleanup releases the
// database handle and must run after the server has stopped.
func New(cfg *config.Config) (*Container, func(), error) {
	logger, err := server.NewLogger(cfg)
	if err != nil {
		return nil, nil, err
	}

	db, closeDB, err := database.Open(cfg)
	if err != nil {
		return nil, nil, err
	}

	userRepo := adapterrepo.NewUserRepository(db)
	topicRepo := adapterrepo.NewTopicRepository(db)
	questionRepo := adapterrepo.NewQuestionRepository(db)
	resultRepo := adapterrepo.NewResultRepository(db)
	backups := backup.NewGitHubStore(cfg)

	users := usecase.NewUserUsecase(userRepo, backups, logger)
	syllabus := usecase.NewSyllabusUsecase(topicRepo, questionRepo)
	results := usecase.NewResultUsecase(resultRepo, topicRepo, backups, logger)
	analytics := usecase.NewAnalyticsUsecase(resultRepo)

	api := httpapi.New(users, syllabus, results, analytics, logger)
	srv := server.NewServer(cfg, logger, api)

	return &Container{
		Config: cfg,
		Logger: logger,
		Server: srv,
	}, closeDB, nil
}
