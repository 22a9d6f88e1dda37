package httpapi_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"

	"github.com/eslsoft/prepnet/internal/adapter/httpapi"
	adapterrepo "github.com/eslsoft/prepnet/internal/adapter/repository"
	"github.com/eslsoft/prepnet/internal/entity"
	"github.com/eslsoft/prepnet/internal/infrastructure/backup"
	"github.com/eslsoft/prepnet/internal/infrastructure/config"
	"github.com/eslsoft/prepnet/internal/infrastructure/database"
	"github.com/eslsoft/prepnet/internal/usecase"
)

// setup builds the API over a seeded in-memory store with mirroring disabled.
func setup(t *testing.T) *echo.Echo {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	db.SetMaxOpenConns(1)

	ctx := context.Background()
	if err := database.Migrate(ctx, db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := database.Seed(ctx, db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	userRepo := adapterrepo.NewUserRepository(db)
	topicRepo := adapterrepo.NewTopicRepository(db)
	questionRepo := adapterrepo.NewQuestionRepository(db)
	resultRepo := adapterrepo.NewResultRepository(db)
	backups := backup.NewGitHubStore(&config.Config{})

	api := httpapi.New(
		usecase.NewUserUsecase(userRepo, backups, logger),
		usecase.NewSyllabusUsecase(topicRepo, questionRepo),
		usecase.NewResultUsecase(resultRepo, topicRepo, backups, logger),
		usecase.NewAnalyticsUsecase(resultRepo),
		logger,
	)

	e := echo.New()
	api.Register(e.Group("/api"))
	return e
}

func doJSON(t *testing.T, e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

func TestLoginEndpoint(t *testing.T) {
	e := setup(t)

	// Seed accounts carry no password, so any password works.
	rec := doJSON(t, e, http.MethodPost, "/api/login", `{"unique_id":"student1","password":"whatever"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var user entity.User
	decode(t, rec, &user)
	if user.ID != "student1" || user.Role != entity.RoleStudent {
		t.Errorf("logged in user: %+v", user)
	}

	rec = doJSON(t, e, http.MethodPost, "/api/login", `{"unique_id":"ghost"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("unknown user status = %d, want 401", rec.Code)
	}
}

func TestRegisterEndpoint(t *testing.T) {
	e := setup(t)

	rec := doJSON(t, e, http.MethodPost, "/api/register", `{"unique_id":"newkid","password":"pw","first_name":"New"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var user entity.User
	decode(t, rec, &user)
	if user.Role != entity.RoleStudent {
		t.Errorf("role = %q, want student", user.Role)
	}
	if user.Synced {
		t.Error("mirroring is disabled, record must be unsynced")
	}

	rec = doJSON(t, e, http.MethodPost, "/api/register", `{"unique_id":"newkid"}`)
	if rec.Code != http.StatusConflict {
		t.Errorf("duplicate status = %d, want 409", rec.Code)
	}
}

func TestRemoveUserEndpoint(t *testing.T) {
	e := setup(t)

	rec := doJSON(t, e, http.MethodDelete, "/api/users/KRURA", "")
	if rec.Code != http.StatusForbidden {
		t.Errorf("master delete status = %d, want 403", rec.Code)
	}
	rec = doJSON(t, e, http.MethodDelete, "/api/users/student2", "")
	if rec.Code != http.StatusNoContent {
		t.Errorf("student delete status = %d, want 204", rec.Code)
	}
	rec = doJSON(t, e, http.MethodGet, "/api/users/student2", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("deleted user status = %d, want 404", rec.Code)
	}
}

func TestTopicsEndpoint(t *testing.T) {
	e := setup(t)

	rec := doJSON(t, e, http.MethodGet, "/api/topics", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var topics []entity.Topic
	decode(t, rec, &topics)
	if len(topics) != 22 {
		t.Errorf("got %d topics, want 22", len(topics))
	}

	rec = doJSON(t, e, http.MethodGet, "/api/topics?category=Reading", "")
	decode(t, rec, &topics)
	if len(topics) != 5 {
		t.Errorf("got %d Reading topics, want 5", len(topics))
	}

	rec = doJSON(t, e, http.MethodPost, "/api/topics", `{"title":"Phrasal Verbs","difficulty":"advanced"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("add topic status = %d, body %s", rec.Code, rec.Body.String())
	}
	var topic entity.Topic
	decode(t, rec, &topic)
	if topic.Category != "Custom" || topic.Difficulty != entity.DifficultyAdvanced {
		t.Errorf("added topic: %+v", topic)
	}

	rec = doJSON(t, e, http.MethodPost, "/api/topics", `{"title":"  "}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("blank title status = %d, want 400", rec.Code)
	}
}

func TestSubmitResultEndpointGradesAnswers(t *testing.T) {
	e := setup(t)

	rec := doJSON(t, e, http.MethodGet, "/api/topics/reading-1/questions", "")
	var questions []entity.Question
	decode(t, rec, &questions)
	if len(questions) == 0 {
		t.Fatal("seeded topic has no questions")
	}

	// Answer everything correctly except the first question.
	answers := make([]int, len(questions))
	for i, q := range questions {
		answers[i] = q.CorrectAnswer
	}
	answers[0] = (questions[0].CorrectAnswer + 1) % 4

	body, _ := json.Marshal(map[string]any{
		"student_id": "student1",
		"topic_id":   "reading-1",
		"answers":    answers,
	})
	rec = doJSON(t, e, http.MethodPost, "/api/results", string(body))
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var result entity.TestResult
	decode(t, rec, &result)
	want := entity.Score(len(questions)-1, len(questions))
	if result.Score != want {
		t.Errorf("score = %d, want %d", result.Score, want)
	}
	if result.Category != "Reading" {
		t.Errorf("category = %q, want Reading", result.Category)
	}
	if result.TopicTitle == "" {
		t.Error("topic title not filled from the catalog")
	}
}

func TestSubmitResultEndpointValidation(t *testing.T) {
	e := setup(t)

	rec := doJSON(t, e, http.MethodPost, "/api/results", `{"topic_id":"reading-1","score":50}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing student status = %d, want 400", rec.Code)
	}
	rec = doJSON(t, e, http.MethodPost, "/api/results", `{"student_id":"student1","topic_id":"reading-1"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing score status = %d, want 400", rec.Code)
	}
	rec = doJSON(t, e, http.MethodPost, "/api/results", `{"student_id":"student1","topic_id":"reading-1","score":140}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("out of range score status = %d, want 400", rec.Code)
	}
}

func TestStudentAnalyticsEndpoint(t *testing.T) {
	e := setup(t)

	for _, body := range []string{
		`{"student_id":"student1","topic_id":"reading-1","score":90}`,
		`{"student_id":"student1","topic_id":"reading-2","score":85}`,
	} {
		if rec := doJSON(t, e, http.MethodPost, "/api/results", body); rec.Code != http.StatusCreated {
			t.Fatalf("submit status = %d", rec.Code)
		}
	}

	rec := doJSON(t, e, http.MethodGet, "/api/students/student1/analytics", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var summary entity.PerformanceSummary
	decode(t, rec, &summary)
	if summary.TotalTests != 2 || summary.AverageScore != 87.5 {
		t.Errorf("summary: %+v", summary)
	}
	if len(summary.Strengths) != 1 || !strings.HasPrefix(summary.Strengths[0], "Reading") {
		t.Errorf("strengths: %v", summary.Strengths)
	}

	// A student with no results gets the zero-valued summary.
	rec = doJSON(t, e, http.MethodGet, "/api/students/student2/analytics", "")
	decode(t, rec, &summary)
	if summary.TotalTests != 0 || len(summary.PerformanceTrend) != 0 {
		t.Errorf("zero state: %+v", summary)
	}
}

func TestRemoteResultsEndpointDisabled(t *testing.T) {
	e := setup(t)

	rec := doJSON(t, e, http.MethodGet, "/api/results/remote", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var results []entity.TestResult
	decode(t, rec, &results)
	if len(results) != 0 {
		t.Errorf("got %d remote results without a configured mirror", len(results))
	}
}
