package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/eslsoft/prepnet/internal/entity"
	"github.com/eslsoft/prepnet/internal/repository"
)

// SubmitInput carries one completed quiz attempt.
type SubmitInput struct {
	StudentID  string
	TopicID    string
	TopicTitle string
	Score      int
	TimeTaken  *int
}

// ResultUsecase records and serves test results. Submissions are written to
// the durable store first, then mirrored best-effort to the backup store.
type ResultUsecase interface {
	SubmitResult(ctx context.Context, input SubmitInput) (*entity.TestResult, error)
	ListResults(ctx context.Context) ([]*entity.TestResult, error)
	ListStudentResults(ctx context.Context, studentID string) ([]*entity.TestResult, error)
	GetResult(ctx context.Context, id string) (*entity.TestResult, error)
	// ListRemoteResults bulk-fetches the advisory result copies held by the
	// backup store. It is a separate read path, never reconciled with the
	// durable store.
	ListRemoteResults(ctx context.Context) ([]*entity.TestResult, error)
}

// NewResultUsecase wires the result repository with topic lookups (for
// category threading) and the backup store.
func NewResultUsecase(results repository.ResultRepository, topics repository.TopicRepository,
	backups repository.BackupStore, logger *logrus.Logger) ResultUsecase {
	return &resultUsecase{
		results: results,
		topics:  topics,
		backups: backups,
		logger:  logger,
		clock:   time.Now,
	}
}

type resultUsecase struct {
	results repository.ResultRepository
	topics  repository.TopicRepository
	backups repository.BackupStore
	logger  *logrus.Logger
	clock   func() time.Time
}

func (r *resultUsecase) SubmitResult(ctx context.Context, input SubmitInput) (*entity.TestResult, error) {
	result := &entity.TestResult{
		ID:          fmt.Sprintf("result-%s", uuid.NewString()[:8]),
		StudentID:   input.StudentID,
		TopicID:     input.TopicID,
		TopicTitle:  input.TopicTitle,
		Score:       input.Score,
		TimeTaken:   input.TimeTaken,
		SubmittedAt: r.clock(),
	}

	// Thread the topic's category into the record so analytics can group by
	// it without a join. An unknown topic leaves the category empty.
	topic, err := r.topics.GetByID(ctx, input.TopicID)
	if err != nil {
		return nil, err
	}
	if topic != nil {
		result.Category = topic.Category
		if result.TopicTitle == "" {
			result.TopicTitle = topic.Title
		}
	}

	if err := r.results.Create(ctx, result); err != nil {
		return nil, err
	}

	if r.mirrorResult(ctx, result) {
		result.Synced = true
		if err := r.results.UpdateSynced(ctx, result.ID, true); err != nil {
			r.logger.WithError(err).WithField("result", result.ID).Warn("record result sync flag")
		}
	}
	return result, nil
}

func (r *resultUsecase) ListResults(ctx context.Context) ([]*entity.TestResult, error) {
	return r.results.List(ctx)
}

func (r *resultUsecase) ListStudentResults(ctx context.Context, studentID string) ([]*entity.TestResult, error) {
	return r.results.ListByStudent(ctx, studentID)
}

func (r *resultUsecase) GetResult(ctx context.Context, id string) (*entity.TestResult, error) {
	result, err := r.results.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, entity.ErrResultNotFound
	}
	return result, nil
}

func (r *resultUsecase) ListRemoteResults(ctx context.Context) ([]*entity.TestResult, error) {
	payloads, err := r.backups.List(ctx, "test_results")
	if err != nil {
		if errors.Is(err, entity.ErrBackupDisabled) {
			return []*entity.TestResult{}, nil
		}
		r.logger.WithError(err).Warn("list remote results")
		return []*entity.TestResult{}, nil
	}

	results := make([]*entity.TestResult, 0, len(payloads))
	for _, payload := range payloads {
		var result entity.TestResult
		if err := json.Unmarshal(payload, &result); err != nil {
			r.logger.WithError(err).Warn("decode remote result, skipping")
			continue
		}
		results = append(results, &result)
	}
	return results, nil
}

func (r *resultUsecase) mirrorResult(ctx context.Context, result *entity.TestResult) bool {
	payload, err := json.Marshal(result)
	if err != nil {
		r.logger.WithError(err).WithField("result", result.ID).Warn("encode result backup")
		return false
	}
	path := fmt.Sprintf("test_results/%s_%s_%s.json",
		result.StudentID, result.SubmittedAt.Format("20060102_150405"), result.ID)
	if err := r.backups.Put(ctx, path, payload); err != nil {
		if errors.Is(err, entity.ErrBackupDisabled) {
			r.logger.WithField("result", result.ID).Debug("backup store disabled, keeping record local")
		} else {
			r.logger.WithError(err).WithField("result", result.ID).Warn("mirror result to backup store")
		}
		return false
	}
	return true
}
