package repository_test

import (
	"context"
	"testing"
	"time"

	adapter "github.com/eslsoft/prepnet/internal/adapter/repository"
	"github.com/eslsoft/prepnet/internal/entity"
)

func seedResult(t *testing.T, repo interface {
	Create(ctx context.Context, result *entity.TestResult) error
}, result *entity.TestResult) {
	t.Helper()
	if err := repo.Create(context.Background(), result); err != nil {
		t.Fatalf("create result %s: %v", result.ID, err)
	}
}

func TestResultRepositoryRoundTrip(t *testing.T) {
	db := newSeededDB(t)
	repo := adapter.NewResultRepository(db)
	ctx := context.Background()

	taken := 420
	result := &entity.TestResult{
		ID:          "result-aaaa1111",
		StudentID:   "student1",
		TopicID:     "reading-1",
		TopicTitle:  "Reading Comprehension Basics",
		Category:    "Reading",
		Score:       75,
		TimeTaken:   &taken,
		SubmittedAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}
	seedResult(t, repo, result)

	got, err := repo.GetByID(ctx, "result-aaaa1111")
	if err != nil {
		t.Fatal(err)
	}
	if got == nil {
		t.Fatal("stored result not found")
	}
	if got.Category != "Reading" || got.Score != 75 {
		t.Errorf("round trip lost fields: %+v", got)
	}
	if got.TimeTaken == nil || *got.TimeTaken != 420 {
		t.Errorf("time taken = %v, want 420", got.TimeTaken)
	}

	if missing, err := repo.GetByID(ctx, "ghost"); err != nil || missing != nil {
		t.Errorf("unknown id: got (%v, %v), want (nil, nil)", missing, err)
	}
}

func TestResultRepositoryListNewestFirst(t *testing.T) {
	db := newSeededDB(t)
	repo := adapter.NewResultRepository(db)
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	seedResult(t, repo, &entity.TestResult{
		ID: "result-old", StudentID: "student1", TopicID: "reading-1",
		TopicTitle: "t", Score: 40, SubmittedAt: base,
	})
	seedResult(t, repo, &entity.TestResult{
		ID: "result-new", StudentID: "student1", TopicID: "reading-2",
		TopicTitle: "t", Score: 90, SubmittedAt: base.Add(time.Hour),
	})
	seedResult(t, repo, &entity.TestResult{
		ID: "result-other", StudentID: "student2", TopicID: "reading-1",
		TopicTitle: "t", Score: 60, SubmittedAt: base.Add(2 * time.Hour),
	})

	all, err := repo.List(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 || all[0].ID != "result-other" || all[2].ID != "result-old" {
		t.Errorf("list order wrong: %v", ids(all))
	}

	mine, err := repo.ListByStudent(context.Background(), "student1")
	if err != nil {
		t.Fatal(err)
	}
	if len(mine) != 2 || mine[0].ID != "result-new" {
		t.Errorf("student list wrong: %v", ids(mine))
	}
}

func TestResultRepositoryStats(t *testing.T) {
	db := newSeededDB(t)
	repo := adapter.NewResultRepository(db)
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	// reading-1 is Beginner, reading-2 Intermediate in the seed data.
	seedResult(t, repo, &entity.TestResult{
		ID: "result-1", StudentID: "student1", TopicID: "reading-1",
		TopicTitle: "t", Category: "Reading", Score: 80, SubmittedAt: base,
	})
	seedResult(t, repo, &entity.TestResult{
		ID: "result-2", StudentID: "student1", TopicID: "reading-2",
		TopicTitle: "t", Category: "Reading", Score: 60, SubmittedAt: base,
	})
	// Legacy row without a category lands in the General bucket.
	seedResult(t, repo, &entity.TestResult{
		ID: "result-3", StudentID: "student2", TopicID: "reading-1",
		TopicTitle: "t", Score: 100, SubmittedAt: base,
	})

	categories, err := repo.CategoryStats(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(categories) != 2 {
		t.Fatalf("got %d category buckets, want 2: %+v", len(categories), categories)
	}
	if categories[0].Category != "General" || categories[0].TestCount != 1 || categories[0].AverageScore != 100 {
		t.Errorf("General bucket: %+v", categories[0])
	}
	if categories[1].Category != "Reading" || categories[1].TestCount != 2 || categories[1].AverageScore != 70 {
		t.Errorf("Reading bucket: %+v", categories[1])
	}

	difficulties, err := repo.DifficultyStats(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	byLevel := map[entity.Difficulty]entity.DifficultyStat{}
	for _, s := range difficulties {
		byLevel[s.Difficulty] = s
	}
	if s := byLevel[entity.DifficultyBeginner]; s.TestCount != 2 || s.AverageScore != 90 {
		t.Errorf("Beginner bucket: %+v", s)
	}
	if s := byLevel[entity.DifficultyIntermediate]; s.TestCount != 1 || s.AverageScore != 60 {
		t.Errorf("Intermediate bucket: %+v", s)
	}

	students, err := repo.StudentStats(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(students) != 2 {
		t.Fatalf("got %d student rows, want 2", len(students))
	}
	if s := students[0]; s.StudentID != "student1" || s.TotalTests != 2 || s.AverageScore != 70 || s.BestScore != 80 {
		t.Errorf("student1 stats: %+v", s)
	}
}

func TestResultRepositoryUpdateSynced(t *testing.T) {
	db := newSeededDB(t)
	repo := adapter.NewResultRepository(db)
	ctx := context.Background()

	seedResult(t, repo, &entity.TestResult{
		ID: "result-1", StudentID: "student1", TopicID: "reading-1",
		TopicTitle: "t", Score: 50, SubmittedAt: time.Now().UTC(),
	})
	if err := repo.UpdateSynced(ctx, "result-1", true); err != nil {
		t.Fatal(err)
	}
	got, _ := repo.GetByID(ctx, "result-1")
	if !got.Synced {
		t.Error("sync flag not persisted")
	}
}

func ids(results []*entity.TestResult) []string {
	out := make([]string, 0, len(results))
	for _, r := range results {
		out = append(out, r.ID)
	}
	return out
}
