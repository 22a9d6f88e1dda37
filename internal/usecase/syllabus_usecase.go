package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/eslsoft/prepnet/internal/entity"
	"github.com/eslsoft/prepnet/internal/repository"
)

// SyllabusUsecase manages topics and their questions.
type SyllabusUsecase interface {
	ListTopics(ctx context.Context) ([]*entity.Topic, error)
	ListTopicsByCategory(ctx context.Context, category string) ([]*entity.Topic, error)
	GetTopic(ctx context.Context, id string) (*entity.Topic, error)
	// AddTopic creates a custom topic with a fresh id. Category defaults to
	// "Custom" and difficulty to Intermediate.
	AddTopic(ctx context.Context, title, category string, difficulty entity.Difficulty) (*entity.Topic, error)
	ListQuestions(ctx context.Context, topicID string) ([]*entity.Question, error)
}

// NewSyllabusUsecase wires the topic and question repositories.
func NewSyllabusUsecase(topics repository.TopicRepository, questions repository.QuestionRepository) SyllabusUsecase {
	return &syllabusUsecase{
		topics:    topics,
		questions: questions,
		clock:     time.Now,
	}
}

type syllabusUsecase struct {
	topics    repository.TopicRepository
	questions repository.QuestionRepository
	clock     func() time.Time
}

func (s *syllabusUsecase) ListTopics(ctx context.Context) ([]*entity.Topic, error) {
	return s.topics.List(ctx)
}

func (s *syllabusUsecase) ListTopicsByCategory(ctx context.Context, category string) ([]*entity.Topic, error) {
	return s.topics.ListByCategory(ctx, category)
}

func (s *syllabusUsecase) GetTopic(ctx context.Context, id string) (*entity.Topic, error) {
	topic, err := s.topics.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if topic == nil {
		return nil, entity.ErrTopicNotFound
	}
	return topic, nil
}

func (s *syllabusUsecase) AddTopic(ctx context.Context, title, category string, difficulty entity.Difficulty) (*entity.Topic, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, entity.ErrInvalidTopicTitle
	}

	topic := &entity.Topic{
		ID:         fmt.Sprintf("custom-%s", uuid.NewString()[:8]),
		Title:      title,
		Category:   strings.TrimSpace(category),
		Difficulty: difficulty,
	}
	topic.Normalize(s.clock())

	if err := s.topics.Create(ctx, topic); err != nil {
		return nil, err
	}
	return topic, nil
}

func (s *syllabusUsecase) ListQuestions(ctx context.Context, topicID string) ([]*entity.Question, error) {
	return s.questions.ListByTopic(ctx, topicID)
}

// Grade counts the correct answers in a completed attempt and converts the
// tally into a 0-100 percentage. Unanswered questions count as wrong.
func Grade(questions []*entity.Question, answers []int) int {
	correct := 0
	for i, q := range questions {
		if i < len(answers) && answers[i] == q.CorrectAnswer {
			correct++
		}
	}
	return entity.Score(correct, len(questions))
}
