package entity

// Question is a four-option multiple-choice question owned by a topic.
// CorrectAnswer indexes into Options (0-3).
type Question struct {
	ID            string    `json:"id"`
	TopicID       string    `json:"topic_id"`
	Text          string    `json:"question_text"`
	Options       [4]string `json:"options"`
	CorrectAnswer int       `json:"correct_answer"`
	Explanation   string    `json:"explanation,omitempty"`
}
