package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/eslsoft/prepnet/internal/entity"
	"github.com/eslsoft/prepnet/internal/repository"
	"github.com/mattn/go-sqlite3"
)

type userRepository struct{ db *sql.DB }

// NewUserRepository returns the SQLite-backed user store.
func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	analytics, err := json.Marshal(user.Analytics)
	if err != nil {
		return fmt.Errorf("encode analytics profile: %w", err)
	}

	query := `
		INSERT INTO users (unique_id, role, password_hash, first_name, last_name,
			date_of_birth, github_synced, created_at, profile_analytics)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = r.db.ExecContext(ctx, query,
		user.ID, user.Role.Code(), user.PasswordHash,
		nullIfEmpty(user.FirstName), nullIfEmpty(user.LastName), nullIfEmpty(user.DateOfBirth),
		user.Synced, user.CreatedAt, string(analytics),
	)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
			return entity.ErrUserAlreadyExists
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	query := `
		SELECT unique_id, role, password_hash, first_name, last_name,
			date_of_birth, github_synced, created_at, profile_analytics
		FROM users
		WHERE unique_id = ?
	`
	user, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

func (r *userRepository) List(ctx context.Context) ([]*entity.User, error) {
	query := `
		SELECT unique_id, role, password_hash, first_name, last_name,
			date_of_birth, github_synced, created_at, profile_analytics
		FROM users
		ORDER BY role, unique_id
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []*entity.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE unique_id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func (r *userRepository) UpdateSynced(ctx context.Context, id string, synced bool) error {
	_, err := r.db.ExecContext(ctx, `UPDATE users SET github_synced = ? WHERE unique_id = ?`, synced, id)
	if err != nil {
		return fmt.Errorf("update user sync flag: %w", err)
	}
	return nil
}

func (r *userRepository) UpdateAnalytics(ctx context.Context, id string, analytics entity.ProfileAnalytics) error {
	analytics.Normalize()
	payload, err := json.Marshal(analytics)
	if err != nil {
		return fmt.Errorf("encode analytics profile: %w", err)
	}
	_, err = r.db.ExecContext(ctx, `UPDATE users SET profile_analytics = ? WHERE unique_id = ?`, string(payload), id)
	if err != nil {
		return fmt.Errorf("update analytics profile: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*entity.User, error) {
	var (
		user      entity.User
		role      string
		first     sql.NullString
		last      sql.NullString
		dob       sql.NullString
		analytics sql.NullString
	)
	if err := row.Scan(&user.ID, &role, &user.PasswordHash, &first, &last,
		&dob, &user.Synced, &user.CreatedAt, &analytics); err != nil {
		return nil, err
	}
	user.Role = entity.ParseRole(role)
	user.FirstName = first.String
	user.LastName = last.String
	user.DateOfBirth = dob.String
	if analytics.Valid && analytics.String != "" {
		// Tolerate malformed stored profiles: fall back to a zero profile
		// instead of failing the read.
		_ = json.Unmarshal([]byte(analytics.String), &user.Analytics)
	}
	user.Analytics.Normalize()
	return &user, nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
