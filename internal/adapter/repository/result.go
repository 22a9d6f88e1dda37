package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/eslsoft/prepnet/internal/entity"
	"github.com/eslsoft/prepnet/internal/repository"
)

type resultRepository struct{ db *sql.DB }

// NewResultRepository returns the SQLite-backed test result store.
func NewResultRepository(db *sql.DB) repository.ResultRepository {
	return &resultRepository{db: db}
}

func (r *resultRepository) Create(ctx context.Context, result *entity.TestResult) error {
	query := `
		INSERT INTO test_results
			(id, student_id, topic_id, topic_title, category, score, time_taken, github_synced, submitted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		result.ID, result.StudentID, result.TopicID, result.TopicTitle, result.Category,
		result.Score, nullableInt(result.TimeTaken), result.Synced, result.SubmittedAt)
	if err != nil {
		return fmt.Errorf("create test result: %w", err)
	}
	return nil
}

func (r *resultRepository) GetByID(ctx context.Context, id string) (*entity.TestResult, error) {
	query := `
		SELECT id, student_id, topic_id, topic_title, category, score, time_taken, github_synced, submitted_at
		FROM test_results
		WHERE id = ?
	`
	result, err := scanResult(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get test result: %w", err)
	}
	return result, nil
}

func (r *resultRepository) List(ctx context.Context) ([]*entity.TestResult, error) {
	query := `
		SELECT id, student_id, topic_id, topic_title, category, score, time_taken, github_synced, submitted_at
		FROM test_results
		ORDER BY submitted_at DESC, id DESC
	`
	return r.queryResults(ctx, query)
}

func (r *resultRepository) ListByStudent(ctx context.Context, studentID string) ([]*entity.TestResult, error) {
	query := `
		SELECT id, student_id, topic_id, topic_title, category, score, time_taken, github_synced, submitted_at
		FROM test_results
		WHERE student_id = ?
		ORDER BY submitted_at DESC, id DESC
	`
	return r.queryResults(ctx, query, studentID)
}

func (r *resultRepository) UpdateSynced(ctx context.Context, id string, synced bool) error {
	_, err := r.db.ExecContext(ctx, `UPDATE test_results SET github_synced = ? WHERE id = ?`, synced, id)
	if err != nil {
		return fmt.Errorf("update result sync flag: %w", err)
	}
	return nil
}

func (r *resultRepository) CategoryStats(ctx context.Context) ([]entity.CategoryStat, error) {
	query := `
		SELECT COALESCE(NULLIF(category, ''), 'General') AS cat, AVG(score), COUNT(id)
		FROM test_results
		GROUP BY cat
		ORDER BY cat
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("category stats: %w", err)
	}
	defer rows.Close()

	var stats []entity.CategoryStat
	for rows.Next() {
		var s entity.CategoryStat
		if err := rows.Scan(&s.Category, &s.AverageScore, &s.TestCount); err != nil {
			return nil, fmt.Errorf("scan category stat: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func (r *resultRepository) DifficultyStats(ctx context.Context) ([]entity.DifficultyStat, error) {
	query := `
		SELECT t.difficulty_level, AVG(tr.score), COUNT(tr.id)
		FROM test_results tr
		JOIN topics t ON tr.topic_id = t.id
		GROUP BY t.difficulty_level
		ORDER BY t.difficulty_level
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("difficulty stats: %w", err)
	}
	defer rows.Close()

	var stats []entity.DifficultyStat
	for rows.Next() {
		var (
			s          entity.DifficultyStat
			difficulty string
		)
		if err := rows.Scan(&difficulty, &s.AverageScore, &s.TestCount); err != nil {
			return nil, fmt.Errorf("scan difficulty stat: %w", err)
		}
		s.Difficulty = entity.Difficulty(difficulty)
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func (r *resultRepository) StudentStats(ctx context.Context) ([]entity.StudentStat, error) {
	query := `
		SELECT student_id, COUNT(id), AVG(score), MAX(score)
		FROM test_results
		GROUP BY student_id
		ORDER BY student_id
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("student stats: %w", err)
	}
	defer rows.Close()

	var stats []entity.StudentStat
	for rows.Next() {
		var s entity.StudentStat
		if err := rows.Scan(&s.StudentID, &s.TotalTests, &s.AverageScore, &s.BestScore); err != nil {
			return nil, fmt.Errorf("scan student stat: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func (r *resultRepository) queryResults(ctx context.Context, query string, args ...any) ([]*entity.TestResult, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list test results: %w", err)
	}
	defer rows.Close()

	var results []*entity.TestResult
	for rows.Next() {
		result, err := scanResult(rows)
		if err != nil {
			return nil, fmt.Errorf("scan test result: %w", err)
		}
		results = append(results, result)
	}
	return results, rows.Err()
}

func scanResult(row rowScanner) (*entity.TestResult, error) {
	var (
		result    entity.TestResult
		timeTaken sql.NullInt64
	)
	if err := row.Scan(&result.ID, &result.StudentID, &result.TopicID, &result.TopicTitle,
		&result.Category, &result.Score, &timeTaken, &result.Synced, &result.SubmittedAt); err != nil {
		return nil, err
	}
	if timeTaken.Valid {
		v := int(timeTaken.Int64)
		result.TimeTaken = &v
	}
	return &result, nil
}

func nullableInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}
