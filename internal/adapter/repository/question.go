package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/eslsoft/prepnet/internal/entity"
	"github.com/eslsoft/prepnet/internal/repository"
)

type questionRepository struct{ db *sql.DB }

// NewQuestionRepository returns the SQLite-backed question store.
func NewQuestionRepository(db *sql.DB) repository.QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) ListByTopic(ctx context.Context, topicID string) ([]*entity.Question, error) {
	query := `
		SELECT id, topic_id, question_text, option_a, option_b, option_c, option_d,
			correct_answer, explanation
		FROM questions
		WHERE topic_id = ?
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query, topicID)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	defer rows.Close()

	var questions []*entity.Question
	for rows.Next() {
		var (
			q           entity.Question
			explanation sql.NullString
		)
		if err := rows.Scan(&q.ID, &q.TopicID, &q.Text,
			&q.Options[0], &q.Options[1], &q.Options[2], &q.Options[3],
			&q.CorrectAnswer, &explanation); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		q.Explanation = explanation.String
		questions = append(questions, &q)
	}
	return questions, rows.Err()
}
