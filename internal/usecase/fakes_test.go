package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/eslsoft/prepnet/internal/entity"
)

func silentLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: map[string]*entity.User{}}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	if _, ok := f.users[user.ID]; ok {
		return entity.ErrUserAlreadyExists
	}
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	clone := *user
	return &clone, nil
}

func (f *fakeUserRepo) List(_ context.Context) ([]*entity.User, error) {
	users := make([]*entity.User, 0, len(f.users))
	for _, u := range f.users {
		users = append(users, u)
	}
	return users, nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id string) error {
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) UpdateSynced(_ context.Context, id string, synced bool) error {
	user, ok := f.users[id]
	if !ok {
		return entity.ErrUserNotFound
	}
	user.Synced = synced
	return nil
}

func (f *fakeUserRepo) UpdateAnalytics(_ context.Context, id string, analytics entity.ProfileAnalytics) error {
	user, ok := f.users[id]
	if !ok {
		return entity.ErrUserNotFound
	}
	user.Analytics = analytics
	return nil
}

type fakeTopicRepo struct {
	topics map[string]*entity.Topic
}

func newFakeTopicRepo(topics ...*entity.Topic) *fakeTopicRepo {
	repo := &fakeTopicRepo{topics: map[string]*entity.Topic{}}
	for _, t := range topics {
		repo.topics[t.ID] = t
	}
	return repo
}

func (f *fakeTopicRepo) Create(_ context.Context, topic *entity.Topic) error {
	clone := *topic
	f.topics[topic.ID] = &clone
	return nil
}

func (f *fakeTopicRepo) GetByID(_ context.Context, id string) (*entity.Topic, error) {
	topic, ok := f.topics[id]
	if !ok {
		return nil, nil
	}
	clone := *topic
	return &clone, nil
}

func (f *fakeTopicRepo) List(_ context.Context) ([]*entity.Topic, error) {
	topics := make([]*entity.Topic, 0, len(f.topics))
	for _, t := range f.topics {
		topics = append(topics, t)
	}
	return topics, nil
}

func (f *fakeTopicRepo) ListByCategory(_ context.Context, category string) ([]*entity.Topic, error) {
	var topics []*entity.Topic
	for _, t := range f.topics {
		if t.Category == category {
			topics = append(topics, t)
		}
	}
	return topics, nil
}

type fakeQuestionRepo struct {
	byTopic map[string][]*entity.Question
}

func (f *fakeQuestionRepo) ListByTopic(_ context.Context, topicID string) ([]*entity.Question, error) {
	return f.byTopic[topicID], nil
}

type fakeResultRepo struct {
	results []*entity.TestResult

	categoryStats   []entity.CategoryStat
	difficultyStats []entity.DifficultyStat
	studentStats    []entity.StudentStat
}

func (f *fakeResultRepo) Create(_ context.Context, result *entity.TestResult) error {
	clone := *result
	// Prepend to keep the newest-first contract of the real store.
	f.results = append([]*entity.TestResult{&clone}, f.results...)
	return nil
}

func (f *fakeResultRepo) GetByID(_ context.Context, id string) (*entity.TestResult, error) {
	for _, r := range f.results {
		if r.ID == id {
			clone := *r
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeResultRepo) List(_ context.Context) ([]*entity.TestResult, error) {
	return f.results, nil
}

func (f *fakeResultRepo) ListByStudent(_ context.Context, studentID string) ([]*entity.TestResult, error) {
	var results []*entity.TestResult
	for _, r := range f.results {
		if r.StudentID == studentID {
			results = append(results, r)
		}
	}
	return results, nil
}

func (f *fakeResultRepo) UpdateSynced(_ context.Context, id string, synced bool) error {
	for _, r := range f.results {
		if r.ID == id {
			r.Synced = synced
			return nil
		}
	}
	return entity.ErrResultNotFound
}

func (f *fakeResultRepo) CategoryStats(_ context.Context) ([]entity.CategoryStat, error) {
	return f.categoryStats, nil
}

func (f *fakeResultRepo) DifficultyStats(_ context.Context) ([]entity.DifficultyStat, error) {
	return f.difficultyStats, nil
}

func (f *fakeResultRepo) StudentStats(_ context.Context) ([]entity.StudentStat, error) {
	return f.studentStats, nil
}

// fakeBackupStore records puts and can be forced to fail or report itself
// unconfigured.
type fakeBackupStore struct {
	disabled bool
	failPut  bool

	puts    map[string][]byte
	objects []json.RawMessage
}

func newFakeBackupStore() *fakeBackupStore {
	return &fakeBackupStore{puts: map[string][]byte{}}
}

func (f *fakeBackupStore) Put(_ context.Context, path string, payload []byte) error {
	if f.disabled {
		return entity.ErrBackupDisabled
	}
	if f.failPut {
		return errors.New("remote unavailable")
	}
	f.puts[path] = payload
	return nil
}

func (f *fakeBackupStore) List(_ context.Context, _ string) ([]json.RawMessage, error) {
	if f.disabled {
		return nil, entity.ErrBackupDisabled
	}
	return f.objects, nil
}
