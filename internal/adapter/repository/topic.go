package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/eslsoft/prepnet/internal/entity"
	"github.com/eslsoft/prepnet/internal/repository"
)

type topicRepository struct{ db *sql.DB }

// NewTopicRepository returns the SQLite-backed topic store.
func NewTopicRepository(db *sql.DB) repository.TopicRepository {
	return &topicRepository{db: db}
}

func (r *topicRepository) Create(ctx context.Context, topic *entity.Topic) error {
	query := `
		INSERT INTO topics (id, title, category, difficulty_level, created_at)
		VALUES (?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		topic.ID, topic.Title, topic.Category, string(topic.Difficulty), topic.CreatedAt)
	if err != nil {
		return fmt.Errorf("create topic: %w", err)
	}
	return nil
}

func (r *topicRepository) GetByID(ctx context.Context, id string) (*entity.Topic, error) {
	query := `
		SELECT id, title, category, difficulty_level, created_at
		FROM topics
		WHERE id = ?
	`
	topic, err := scanTopic(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get topic: %w", err)
	}
	return topic, nil
}

func (r *topicRepository) List(ctx context.Context) ([]*entity.Topic, error) {
	query := `
		SELECT id, title, category, difficulty_level, created_at
		FROM topics
		ORDER BY category, difficulty_level, title
	`
	return r.queryTopics(ctx, query)
}

func (r *topicRepository) ListByCategory(ctx context.Context, category string) ([]*entity.Topic, error) {
	query := `
		SELECT id, title, category, difficulty_level, created_at
		FROM topics
		WHERE category = ?
		ORDER BY difficulty_level, title
	`
	return r.queryTopics(ctx, query, category)
}

func (r *topicRepository) queryTopics(ctx context.Context, query string, args ...any) ([]*entity.Topic, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	defer rows.Close()

	var topics []*entity.Topic
	for rows.Next() {
		topic, err := scanTopic(rows)
		if err != nil {
			return nil, fmt.Errorf("scan topic: %w", err)
		}
		topics = append(topics, topic)
	}
	return topics, rows.Err()
}

func scanTopic(row rowScanner) (*entity.Topic, error) {
	var (
		topic      entity.Topic
		difficulty string
	)
	if err := row.Scan(&topic.ID, &topic.Title, &topic.Category, &difficulty, &topic.CreatedAt); err != nil {
		return nil, err
	}
	topic.Difficulty = entity.Difficulty(difficulty)
	return &topic, nil
}
