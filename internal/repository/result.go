package repository

import (
	"context"

	"github.com/eslsoft/prepnet/internal/entity"
)

// ResultRepository defines data access for test results.
type ResultRepository interface {
	Create(ctx context.Context, result *entity.TestResult) error
	// GetByID returns (nil, nil) when the id is unknown.
	GetByID(ctx context.Context, id string) (*entity.TestResult, error)
	// List returns every stored result, newest first.
	List(ctx context.Context) ([]*entity.TestResult, error)
	// ListByStudent returns one student's results, newest first.
	ListByStudent(ctx context.Context, studentID string) ([]*entity.TestResult, error)
	UpdateSynced(ctx context.Context, id string, synced bool) error

	// Aggregates for the master overview, computed in SQL.
	CategoryStats(ctx context.Context) ([]entity.CategoryStat, error)
	DifficultyStats(ctx context.Context) ([]entity.DifficultyStat, error)
	StudentStats(ctx context.Context) ([]entity.StudentStat, error)
}
