package entity

import (
	"math"
	"time"
)

// TestResult records one completed quiz attempt. Immutable once stored.
// Category is denormalized from the owning topic at submission time so the
// analytics engine can group without a join.
type TestResult struct {
	ID          string    `json:"id"`
	StudentID   string    `json:"student_id"`
	TopicID     string    `json:"topic_id"`
	TopicTitle  string    `json:"topic_title"`
	Category    string    `json:"category"`
	Score       int       `json:"score"`
	TimeTaken   *int      `json:"time_taken,omitempty"`
	Synced      bool      `json:"github_synced"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// CategoryOrDefault returns the stored category, falling back to the bucket
// used for results recorded before categories were threaded through.
func (r *TestResult) CategoryOrDefault() string {
	if r.Category == "" {
		return "General"
	}
	return r.Category
}

// Score converts a correct-answer count into a 0-100 percentage,
// rounded half away from zero.
func Score(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}
