package repository

import (
	"context"

	"github.com/eslsoft/prepnet/internal/entity"
)

// UserRepository defines data access for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	// GetByID returns (nil, nil) when the id is unknown.
	GetByID(ctx context.Context, id string) (*entity.User, error)
	// List returns all users ordered by role, then id.
	List(ctx context.Context) ([]*entity.User, error)
	Delete(ctx context.Context, id string) error
	UpdateSynced(ctx context.Context, id string, synced bool) error
	UpdateAnalytics(ctx context.Context, id string, analytics entity.ProfileAnalytics) error
}
