package repository

import (
	"context"

	"github.com/eslsoft/prepnet/internal/entity"
)

// TopicRepository defines data access for syllabus topics.
type TopicRepository interface {
	Create(ctx context.Context, topic *entity.Topic) error
	// GetByID returns (nil, nil) when the id is unknown.
	GetByID(ctx context.Context, id string) (*entity.Topic, error)
	// List returns all topics ordered by category, difficulty, title.
	List(ctx context.Context) ([]*entity.Topic, error)
	ListByCategory(ctx context.Context, category string) ([]*entity.Topic, error)
}

// QuestionRepository defines data access for quiz questions.
// Questions are seeded only; there is no runtime mutation.
type QuestionRepository interface {
	ListByTopic(ctx context.Context, topicID string) ([]*entity.Question, error)
}
