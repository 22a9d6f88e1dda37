package database

import (
	"context"
	"database/sql"
	"fmt"
)

type seedUser struct {
	id   string
	role string
}

type seedTopic struct {
	id         string
	title      string
	category   string
	difficulty string
}

type seedQuestion struct {
	id          string
	topicID     string
	text        string
	options     [4]string
	correct     int
	explanation string
}

// MasterUserID is the seeded administrator account. It is protected from
// deletion by convention.
const MasterUserID = "KRURA"

var defaultUsers = []seedUser{
	{MasterUserID, "master"},
	{"student1", "student"},
	{"student2", "student"},
}

var defaultTopics = []seedTopic{
	// Reading domain
	{"reading-1", "Reading Comprehension Basics", "Reading", "Beginner"},
	{"reading-2", "Academic Vocabulary in Context", "Reading", "Intermediate"},
	{"reading-3", "Text Analysis and Interpretation", "Reading", "Advanced"},
	{"reading-4", "Compare and Contrast Texts", "Reading", "Intermediate"},
	{"reading-5", "Making Inferences from Text", "Reading", "Advanced"},

	// Listening domain
	{"listening-1", "Basic Listening Comprehension", "Listening", "Beginner"},
	{"listening-2", "Academic Discussions", "Listening", "Intermediate"},
	{"listening-3", "Lecture Comprehension", "Listening", "Advanced"},
	{"listening-4", "Following Multi-step Instructions", "Listening", "Intermediate"},

	// Speaking domain
	{"speaking-1", "Basic Oral Communication", "Speaking", "Beginner"},
	{"speaking-2", "Academic Presentations", "Speaking", "Intermediate"},
	{"speaking-3", "Argumentative Speaking", "Speaking", "Advanced"},
	{"speaking-4", "Collaborative Discussions", "Speaking", "Intermediate"},

	// Writing domain
	{"writing-1", "Sentence Structure and Grammar", "Writing", "Beginner"},
	{"writing-2", "Paragraph Development", "Writing", "Intermediate"},
	{"writing-3", "Essay Writing and Organization", "Writing", "Advanced"},
	{"writing-4", "Research and Citation Skills", "Writing", "Advanced"},
	{"writing-5", "Persuasive Writing Techniques", "Writing", "Intermediate"},

	// Language functions
	{"function-1", "Describing and Explaining", "Language Functions", "Beginner"},
	{"function-2", "Comparing and Contrasting", "Language Functions", "Intermediate"},
	{"function-3", "Arguing and Justifying", "Language Functions", "Advanced"},
	{"function-4", "Sequencing and Narrating", "Language Functions", "Intermediate"},
}

var defaultQuestions = []seedQuestion{
	{
		"q-read-1-1", "reading-1",
		"What is the main purpose of previewing a text before reading?",
		[4]string{"To finish reading faster", "To understand the text structure and content", "To find spelling errors", "To count the pages"}, 1,
		"Previewing helps readers understand what to expect and activates prior knowledge.",
	},
	{
		"q-read-1-2", "reading-1",
		"Which strategy helps identify the main idea of a paragraph?",
		[4]string{"Reading only the first word", "Looking for repeated keywords and concepts", "Counting sentences", "Skipping difficult words"}, 1,
		"Main ideas are often supported by repeated keywords and key concepts throughout the paragraph.",
	},
	{
		"q-read-2-1", "reading-2",
		"In academic texts, what does \"synthesize\" mean?",
		[4]string{"To break apart", "To combine information from multiple sources", "To memorize", "To translate"}, 1,
		"Synthesis involves combining information from different sources to create new understanding.",
	},
	{
		"q-read-2-2", "reading-2",
		"The word \"inference\" in academic writing refers to:",
		[4]string{"Direct quotes from text", "Conclusions drawn from evidence", "Summary statements", "Title headings"}, 1,
		"Inferences are logical conclusions based on evidence and reasoning.",
	},
	{
		"q-read-3-1", "reading-3",
		"When analyzing author's purpose, which question is most important?",
		[4]string{"How long is the text?", "Why did the author write this text?", "When was it published?", "Who is the publisher?"}, 1,
		"Understanding author's purpose is key to text analysis and critical reading.",
	},
	{
		"q-listen-1-1", "listening-1",
		"Active listening requires:",
		[4]string{"Just hearing words", "Full attention and engagement", "Taking notes only", "Memorizing everything"}, 1,
		"Active listening involves engaged attention, processing, and response.",
	},
	{
		"q-listen-1-2", "listening-1",
		"What helps improve listening comprehension?",
		[4]string{"Listening to music", "Predicting content and asking questions", "Speaking loudly", "Reading while listening"}, 1,
		"Prediction and questioning enhance comprehension by activating prior knowledge.",
	},
	{
		"q-listen-2-1", "listening-2",
		"In academic discussions, \"discourse markers\" help listeners:",
		[4]string{"Count speakers", "Follow the flow of ideas", "Remember names", "Take breaks"}, 1,
		"Discourse markers like \"however,\" \"furthermore\" signal relationships between ideas.",
	},
	{
		"q-write-1-1", "writing-1",
		"A complete sentence must have:",
		[4]string{"Many adjectives", "A subject and predicate", "Five words minimum", "Perfect spelling"}, 1,
		"Complete sentences require both a subject (who/what) and predicate (action/description).",
	},
	{
		"q-write-1-2", "writing-1",
		"Which sentence shows correct subject-verb agreement?",
		[4]string{"The students is studying", "The student are studying", "The students are studying", "The student were studying"}, 2,
		"Plural subjects require plural verbs: \"students are\" not \"students is.\"",
	},
	{
		"q-write-2-1", "writing-2",
		"A well-developed paragraph should have:",
		[4]string{"Only one sentence", "A topic sentence and supporting details", "No punctuation", "Random ideas"}, 1,
		"Effective paragraphs start with a topic sentence and include relevant supporting details.",
	},
	{
		"q-write-3-1", "writing-3",
		"The introduction paragraph should:",
		[4]string{"Include the conclusion", "Present the thesis and hook the reader", "List all evidence", "Be the longest paragraph"}, 1,
		"Introductions present the main argument (thesis) and engage reader interest.",
	},
	{
		"q-func-1-1", "function-1",
		"When describing a process, which transition words are most helpful?",
		[4]string{"However, but, although", "First, next, then, finally", "In conclusion, therefore", "For example, such as"}, 1,
		"Sequential transitions help readers follow step-by-step processes clearly.",
	},
	{
		"q-func-2-1", "function-2",
		"Which phrase signals a contrast?",
		[4]string{"In addition", "On the other hand", "For instance", "As a result"}, 1,
		"\"On the other hand\" explicitly signals that contrasting information follows.",
	},
	{
		"q-speak-2-1", "speaking-2",
		"Effective academic presentations should:",
		[4]string{"Read directly from notes", "Include clear organization and visual aids", "Speak very quickly", "Avoid eye contact"}, 1,
		"Good presentations are well-organized, use visual support, and engage the audience.",
	},
}

// Seed inserts the default accounts, syllabus topics and sample questions.
// Every statement is INSERT OR IGNORE, so seeding is safe to repeat.
func Seed(ctx context.Context, db *sql.DB) error {
	for _, u := range defaultUsers {
		if _, err := db.ExecContext(ctx,
			`INSERT OR IGNORE INTO users (unique_id, role, profile_analytics) VALUES (?, ?, '{}')`,
			u.id, u.role,
		); err != nil {
			return fmt.Errorf("seed user %s: %w", u.id, err)
		}
	}

	for _, t := range defaultTopics {
		if _, err := db.ExecContext(ctx,
			`INSERT OR IGNORE INTO topics (id, title, category, difficulty_level) VALUES (?, ?, ?, ?)`,
			t.id, t.title, t.category, t.difficulty,
		); err != nil {
			return fmt.Errorf("seed topic %s: %w", t.id, err)
		}
	}

	for _, q := range defaultQuestions {
		if _, err := db.ExecContext(ctx,
			`INSERT OR IGNORE INTO questions
				(id, topic_id, question_text, option_a, option_b, option_c, option_d, correct_answer, explanation)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			q.id, q.topicID, q.text, q.options[0], q.options[1], q.options[2], q.options[3], q.correct, q.explanation,
		); err != nil {
			return fmt.Errorf("seed question %s: %w", q.id, err)
		}
	}

	return nil
}
