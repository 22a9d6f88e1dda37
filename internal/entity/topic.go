package entity

import "time"

// Topic is a syllabus unit grouping one or more questions.
type Topic struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Category   string     `json:"category"`
	Difficulty Difficulty `json:"difficulty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// Normalize applies the defaults used when a master adds a topic at runtime.
func (t *Topic) Normalize(now time.Time) {
	if t.Category == "" {
		t.Category = "Custom"
	}
	t.Difficulty = NormalizeDifficulty(t.Difficulty)
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
}
